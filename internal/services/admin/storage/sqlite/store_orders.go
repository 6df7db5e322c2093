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

// InsertOrder persists an order summary row. The console itself never creates
// orders; this feeds test fixtures and the storefront import path.
func (s *Store) InsertOrder(ctx context.Context, order storage.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(order.ID) == "" {
		return fmt.Errorf("order id is required")
	}
	if order.TotalCents < 0 {
		return fmt.Errorf("order total must not be negative")
	}
	if strings.TrimSpace(order.Status) == "" {
		order.Status = "pending"
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, total_cents, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		order.ID, order.UserID, order.TotalCents, order.Status, toMillis(order.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert order: %w", err)
	}
	s.notifyChange("orders")
	return nil
}

// GetOrder loads one order by id.
func (s *Store) GetOrder(ctx context.Context, orderID string) (storage.Order, error) {
	if err := ctx.Err(); err != nil {
		return storage.Order{}, err
	}
	if strings.TrimSpace(orderID) == "" {
		return storage.Order{}, fmt.Errorf("order id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, user_id, total_cents, status, created_at
		FROM orders WHERE id = ?`, orderID)
	return scanOrder(row)
}

// ListOrders returns one filtered page of orders, newest first.
func (s *Store) ListOrders(ctx context.Context, filter storage.ListFilter, page storage.Page) (storage.OrderPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.OrderPage{}, err
	}
	pageSize := clampPageSize(page.Size)
	offset, err := parsePageToken(page.Token)
	if err != nil {
		return storage.OrderPage{}, err
	}

	query := `SELECT id, user_id, total_cents, status, created_at FROM orders`
	params := make([]any, 0, len(filter.Params)+2)
	if filter.Clause != "" {
		query += " WHERE " + filter.Clause
		params = append(params, filter.Params...)
	}
	query += " ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	params = append(params, pageSize, offset)

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return storage.OrderPage{}, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []storage.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return storage.OrderPage{}, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return storage.OrderPage{}, fmt.Errorf("list orders: %w", err)
	}

	return storage.OrderPage{
		Orders:        orders,
		NextPageToken: nextPageToken(offset, pageSize, len(orders)),
	}, nil
}

// CountOrders returns the total number of orders.
func (s *Store) CountOrders(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

// SumOrderRevenue returns the total order value in cents across all orders.
func (s *Store) SumOrderRevenue(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var total int64
	err := s.sqlDB.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_cents), 0) FROM orders`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum order revenue: %w", err)
	}
	return total, nil
}

func scanOrder(row rowScanner) (storage.Order, error) {
	var order storage.Order
	var createdAt int64
	err := row.Scan(&order.ID, &order.UserID, &order.TotalCents, &order.Status, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Order{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Order{}, fmt.Errorf("scan order: %w", err)
	}
	order.CreatedAt = fromMillis(createdAt)
	return order, nil
}
