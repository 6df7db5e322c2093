package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chekout/admin/internal/services/admin/storage"
)

// CreateProduct persists a new product record.
func (s *Store) CreateProduct(ctx context.Context, product storage.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(product.ID) == "" {
		return fmt.Errorf("product id is required")
	}
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if product.PriceCents < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	if product.UpdatedAt.IsZero() {
		product.UpdatedAt = product.CreatedAt
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO products (id, name, price_cents, category_id, stock, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID, product.Name, product.PriceCents, product.CategoryID,
		product.Stock, boolToInt(product.IsActive),
		toMillis(product.CreatedAt), toMillis(product.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	s.notifyChange("products")
	return nil
}

// GetProduct loads one product by id.
func (s *Store) GetProduct(ctx context.Context, productID string) (storage.Product, error) {
	if err := ctx.Err(); err != nil {
		return storage.Product{}, err
	}
	if strings.TrimSpace(productID) == "" {
		return storage.Product{}, fmt.Errorf("product id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, name, price_cents, category_id, stock, is_active, created_at, updated_at
		FROM products WHERE id = ?`, productID)
	return scanProduct(row)
}

// UpdateProduct replaces the editable fields of a product.
func (s *Store) UpdateProduct(ctx context.Context, product storage.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(product.ID) == "" {
		return fmt.Errorf("product id is required")
	}
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if product.PriceCents < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	if product.UpdatedAt.IsZero() {
		product.UpdatedAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx, `
		UPDATE products
		SET name = ?, price_cents = ?, category_id = ?, stock = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		product.Name, product.PriceCents, product.CategoryID, product.Stock,
		boolToInt(product.IsActive), toMillis(product.UpdatedAt), product.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("products")
	return nil
}

// SetProductActive flips only the active flag and the update timestamp.
func (s *Store) SetProductActive(ctx context.Context, productID string, active bool, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(productID) == "" {
		return fmt.Errorf("product id is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx, `
		UPDATE products SET is_active = ?, updated_at = ? WHERE id = ?`,
		boolToInt(active), toMillis(now), productID)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("products")
	return nil
}

// DeleteProduct removes a product.
func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(productID) == "" {
		return fmt.Errorf("product id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("products")
	return nil
}

// ListProducts returns one filtered page of products, newest first.
func (s *Store) ListProducts(ctx context.Context, filter storage.ListFilter, page storage.Page) (storage.ProductPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.ProductPage{}, err
	}
	pageSize := clampPageSize(page.Size)
	offset, err := parsePageToken(page.Token)
	if err != nil {
		return storage.ProductPage{}, err
	}

	query := `
		SELECT id, name, price_cents, category_id, stock, is_active, created_at, updated_at
		FROM products`
	params := make([]any, 0, len(filter.Params)+2)
	if filter.Clause != "" {
		query += " WHERE " + filter.Clause
		params = append(params, filter.Params...)
	}
	query += " ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	params = append(params, pageSize, offset)

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return storage.ProductPage{}, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []storage.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return storage.ProductPage{}, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return storage.ProductPage{}, fmt.Errorf("list products: %w", err)
	}

	return storage.ProductPage{
		Products:      products,
		NextPageToken: nextPageToken(offset, pageSize, len(products)),
	}, nil
}

// CountProducts returns the total number of products.
func (s *Store) CountProducts(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func scanProduct(row rowScanner) (storage.Product, error) {
	var product storage.Product
	var isActive, createdAt, updatedAt int64
	err := row.Scan(&product.ID, &product.Name, &product.PriceCents, &product.CategoryID,
		&product.Stock, &isActive, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Product{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Product{}, fmt.Errorf("scan product: %w", err)
	}
	product.IsActive = intToBool(isActive)
	product.CreatedAt = fromMillis(createdAt)
	product.UpdatedAt = fromMillis(updatedAt)
	return product, nil
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
