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

// CreateCategory persists a new category record.
func (s *Store) CreateCategory(ctx context.Context, category storage.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(category.ID) == "" {
		return fmt.Errorf("category id is required")
	}
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("category name is required")
	}
	if strings.TrimSpace(category.Slug) == "" {
		return fmt.Errorf("category slug is required")
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	if category.UpdatedAt.IsZero() {
		category.UpdatedAt = category.CreatedAt
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO categories (id, name, slug, parent_id, sort_order, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		category.ID, category.Name, category.Slug, category.ParentID,
		category.SortOrder, boolToInt(category.IsActive),
		toMillis(category.CreatedAt), toMillis(category.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert category: %w", err)
	}
	s.notifyChange("categories")
	return nil
}

// GetCategory loads one category by id.
func (s *Store) GetCategory(ctx context.Context, categoryID string) (storage.Category, error) {
	if err := ctx.Err(); err != nil {
		return storage.Category{}, err
	}
	if strings.TrimSpace(categoryID) == "" {
		return storage.Category{}, fmt.Errorf("category id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, name, slug, parent_id, sort_order, is_active, created_at, updated_at
		FROM categories WHERE id = ?`, categoryID)
	return scanCategory(row)
}

// UpdateCategory renames a category and updates its slug.
func (s *Store) UpdateCategory(ctx context.Context, categoryID, name, slug string, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(categoryID) == "" {
		return fmt.Errorf("category id is required")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("category name is required")
	}
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf("category slug is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx, `
		UPDATE categories SET name = ?, slug = ?, updated_at = ? WHERE id = ?`,
		name, slug, toMillis(now), categoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("update category: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("categories")
	return nil
}

// SetCategoryActive flips only the active flag and the update timestamp. Every
// other column keeps its current value.
func (s *Store) SetCategoryActive(ctx context.Context, categoryID string, active bool, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(categoryID) == "" {
		return fmt.Errorf("category id is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx, `
		UPDATE categories SET is_active = ?, updated_at = ? WHERE id = ?`,
		boolToInt(active), toMillis(now), categoryID)
	if err != nil {
		return fmt.Errorf("set category active: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("categories")
	return nil
}

// MoveCategory reparents a category and sets its sort order. Cycle checks
// belong to the caller, which sees the whole tree.
func (s *Store) MoveCategory(ctx context.Context, categoryID, newParentID string, sortOrder int, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(categoryID) == "" {
		return fmt.Errorf("category id is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx, `
		UPDATE categories SET parent_id = ?, sort_order = ?, updated_at = ? WHERE id = ?`,
		newParentID, sortOrder, toMillis(now), categoryID)
	if err != nil {
		return fmt.Errorf("move category: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("categories")
	return nil
}

// DeleteCategory removes a category.
func (s *Store) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(categoryID) == "" {
		return fmt.Errorf("category id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, categoryID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("categories")
	return nil
}

// ListCategories returns every category ordered by sort order then name.
func (s *Store) ListCategories(ctx context.Context) ([]storage.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, name, slug, parent_id, sort_order, is_active, created_at, updated_at
		FROM categories ORDER BY sort_order, name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []storage.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func scanCategory(row rowScanner) (storage.Category, error) {
	var category storage.Category
	var isActive, createdAt, updatedAt int64
	err := row.Scan(&category.ID, &category.Name, &category.Slug, &category.ParentID,
		&category.SortOrder, &isActive, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Category{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Category{}, fmt.Errorf("scan category: %w", err)
	}
	category.IsActive = intToBool(isActive)
	category.CreatedAt = fromMillis(createdAt)
	category.UpdatedAt = fromMillis(updatedAt)
	return category, nil
}
