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

// CreateUser persists a new user record.
func (s *Store) CreateUser(ctx context.Context, user storage.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(user.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("user email is required")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO users (id, email, display_name, is_admin, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.DisplayName, boolToInt(user.IsAdmin),
		toMillis(user.CreatedAt), toMillis(user.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	s.notifyChange("users")
	return nil
}

// GetUser loads one user by id.
func (s *Store) GetUser(ctx context.Context, userID string) (storage.User, error) {
	if err := ctx.Err(); err != nil {
		return storage.User{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return storage.User{}, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, email, display_name, is_admin, created_at, updated_at
		FROM users WHERE id = ?`, userID)
	return scanUser(row)
}

// ListUsers returns one page of users ordered by creation time, newest first.
func (s *Store) ListUsers(ctx context.Context, page storage.Page) (storage.UserPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.UserPage{}, err
	}
	pageSize := clampPageSize(page.Size)
	offset, err := parsePageToken(page.Token)
	if err != nil {
		return storage.UserPage{}, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, email, display_name, is_admin, created_at, updated_at
		FROM users ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		pageSize, offset)
	if err != nil {
		return storage.UserPage{}, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []storage.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return storage.UserPage{}, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return storage.UserPage{}, fmt.Errorf("list users: %w", err)
	}

	return storage.UserPage{
		Users:         users,
		NextPageToken: nextPageToken(offset, pageSize, len(users)),
	}, nil
}

// CountUsers returns the total number of users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// GetProfile loads the profile attached to a user.
func (s *Store) GetProfile(ctx context.Context, userID string) (storage.Profile, error) {
	if err := ctx.Err(); err != nil {
		return storage.Profile{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return storage.Profile{}, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT user_id, full_name, phone, created_at, updated_at
		FROM profiles WHERE user_id = ?`, userID)

	var profile storage.Profile
	var createdAt, updatedAt int64
	err := row.Scan(&profile.UserID, &profile.FullName, &profile.Phone, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Profile{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	profile.CreatedAt = fromMillis(createdAt)
	profile.UpdatedAt = fromMillis(updatedAt)
	return profile, nil
}

// PutProfile inserts or replaces the profile for a user.
func (s *Store) PutProfile(ctx context.Context, profile storage.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(profile.UserID) == "" {
		return fmt.Errorf("user id is required")
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = now
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO profiles (user_id, full_name, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			full_name = excluded.full_name,
			phone = excluded.phone,
			updated_at = excluded.updated_at`,
		profile.UserID, profile.FullName, profile.Phone,
		toMillis(profile.CreatedAt), toMillis(profile.UpdatedAt))
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	s.notifyChange("profiles")
	return nil
}

// ListAddresses returns all addresses for a user ordered by label.
func (s *Store) ListAddresses(ctx context.Context, userID string) ([]storage.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, user_id, label, street, city, country, postal_code, updated_at
		FROM addresses WHERE user_id = ? ORDER BY label, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	var addresses []storage.Address
	for rows.Next() {
		var addr storage.Address
		var updatedAt int64
		if err := rows.Scan(&addr.ID, &addr.UserID, &addr.Label, &addr.Street,
			&addr.City, &addr.Country, &addr.PostalCode, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addr.UpdatedAt = fromMillis(updatedAt)
		addresses = append(addresses, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

// PutAddress inserts or replaces one address. A conflicting id owned by a
// different user is left untouched.
func (s *Store) PutAddress(ctx context.Context, address storage.Address) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(address.ID) == "" {
		return fmt.Errorf("address id is required")
	}
	if strings.TrimSpace(address.UserID) == "" {
		return fmt.Errorf("user id is required")
	}
	if address.UpdatedAt.IsZero() {
		address.UpdatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO addresses (id, user_id, label, street, city, country, postal_code, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			street = excluded.street,
			city = excluded.city,
			country = excluded.country,
			postal_code = excluded.postal_code,
			updated_at = excluded.updated_at
		WHERE addresses.user_id = excluded.user_id`,
		address.ID, address.UserID, address.Label, address.Street,
		address.City, address.Country, address.PostalCode, toMillis(address.UpdatedAt))
	if err != nil {
		return fmt.Errorf("put address: %w", err)
	}
	s.notifyChange("addresses")
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (storage.User, error) {
	var user storage.User
	var isAdmin, createdAt, updatedAt int64
	err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &isAdmin, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.User{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.User{}, fmt.Errorf("scan user: %w", err)
	}
	user.IsAdmin = intToBool(isAdmin)
	user.CreatedAt = fromMillis(createdAt)
	user.UpdatedAt = fromMillis(updatedAt)
	return user, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "constraint failed")
}
