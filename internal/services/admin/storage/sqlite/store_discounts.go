package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chekout/admin/internal/commerce/discount"
	"github.com/chekout/admin/internal/services/admin/storage"
)

// InsertDiscountKeys persists a batch of generated keys in one transaction.
// Either the whole batch lands or none of it does.
func (s *Store) InsertDiscountKeys(ctx context.Context, keys []storage.DiscountKey) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("at least one discount key is required")
	}

	dbTx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert discount keys: %w", err)
	}
	defer func() { _ = dbTx.Rollback() }()

	now := time.Now().UTC()
	for _, key := range keys {
		if strings.TrimSpace(key.ID) == "" {
			return fmt.Errorf("discount key id is required")
		}
		if strings.TrimSpace(key.Code) == "" {
			return fmt.Errorf("discount key code is required")
		}
		if key.CreatedAt.IsZero() {
			key.CreatedAt = now
		}
		_, err := dbTx.ExecContext(ctx, `
			INSERT INTO discount_keys (id, code, tier, percent, used_by, used_at, revoked_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			key.ID, key.Code, string(key.Tier), key.Percent, key.UsedBy,
			toNullMillis(key.UsedAt), toNullMillis(key.RevokedAt), toMillis(key.CreatedAt))
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrAlreadyExists
			}
			return fmt.Errorf("insert discount key: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit insert discount keys: %w", err)
	}
	s.notifyChange("discount_keys")
	return nil
}

// GetDiscountKeyByCode loads one key by its code.
func (s *Store) GetDiscountKeyByCode(ctx context.Context, code string) (storage.DiscountKey, error) {
	if err := ctx.Err(); err != nil {
		return storage.DiscountKey{}, err
	}
	if strings.TrimSpace(code) == "" {
		return storage.DiscountKey{}, fmt.Errorf("discount key code is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, code, tier, percent, used_by, used_at, revoked_at, created_at
		FROM discount_keys WHERE code = ?`, code)
	return scanDiscountKey(row)
}

// ListDiscountKeys returns every key, newest first.
func (s *Store) ListDiscountKeys(ctx context.Context) ([]storage.DiscountKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, code, tier, percent, used_by, used_at, revoked_at, created_at
		FROM discount_keys ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list discount keys: %w", err)
	}
	defer rows.Close()

	var keys []storage.DiscountKey
	for rows.Next() {
		key, err := scanDiscountKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list discount keys: %w", err)
	}
	return keys, nil
}

// MarkDiscountKeyUsed records single-use consumption. A key already used or
// revoked is reported as ErrNotFound by the guarded update.
func (s *Store) MarkDiscountKeyUsed(ctx context.Context, keyID, usedBy string, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(keyID) == "" {
		return fmt.Errorf("discount key id is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx, `
		UPDATE discount_keys SET used_by = ?, used_at = ?
		WHERE id = ? AND used_at IS NULL AND revoked_at IS NULL`,
		usedBy, toMillis(now), keyID)
	if err != nil {
		return fmt.Errorf("mark discount key used: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("discount_keys")
	return nil
}

// RevokeDiscountKey retires an unused key.
func (s *Store) RevokeDiscountKey(ctx context.Context, keyID string, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(keyID) == "" {
		return fmt.Errorf("discount key id is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx, `
		UPDATE discount_keys SET revoked_at = ?
		WHERE id = ? AND revoked_at IS NULL`,
		toMillis(now), keyID)
	if err != nil {
		return fmt.Errorf("revoke discount key: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("discount_keys")
	return nil
}

func scanDiscountKey(row rowScanner) (storage.DiscountKey, error) {
	var key storage.DiscountKey
	var tier string
	var usedAt, revokedAt sql.NullInt64
	var createdAt int64
	err := row.Scan(&key.ID, &key.Code, &tier, &key.Percent, &key.UsedBy,
		&usedAt, &revokedAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.DiscountKey{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.DiscountKey{}, fmt.Errorf("scan discount key: %w", err)
	}
	key.Tier = discount.Tier(tier)
	key.UsedAt = fromNullMillis(usedAt)
	key.RevokedAt = fromNullMillis(revokedAt)
	key.CreatedAt = fromMillis(createdAt)
	return key, nil
}
