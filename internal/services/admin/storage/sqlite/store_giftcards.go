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

// CreateGiftCard persists a new gift card.
func (s *Store) CreateGiftCard(ctx context.Context, card storage.GiftCard) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(card.ID) == "" {
		return fmt.Errorf("gift card id is required")
	}
	if strings.TrimSpace(card.Code) == "" {
		return fmt.Errorf("gift card code is required")
	}
	if card.AmountCents <= 0 {
		return fmt.Errorf("gift card amount must be positive")
	}
	if card.ExpiresAt.IsZero() {
		return fmt.Errorf("gift card expiry is required")
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now().UTC()
	}
	if card.UpdatedAt.IsZero() {
		card.UpdatedAt = card.CreatedAt
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO gift_cards (id, code, amount_cents, recipient, message, is_used, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		card.ID, card.Code, card.AmountCents, card.Recipient, card.Message,
		boolToInt(card.IsUsed), toMillis(card.ExpiresAt),
		toMillis(card.CreatedAt), toMillis(card.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert gift card: %w", err)
	}
	s.notifyChange("gift_cards")
	return nil
}

// GetGiftCardByCode loads one gift card by its code.
func (s *Store) GetGiftCardByCode(ctx context.Context, code string) (storage.GiftCard, error) {
	if err := ctx.Err(); err != nil {
		return storage.GiftCard{}, err
	}
	if strings.TrimSpace(code) == "" {
		return storage.GiftCard{}, fmt.Errorf("gift card code is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, code, amount_cents, recipient, message, is_used, expires_at, created_at, updated_at
		FROM gift_cards WHERE code = ?`, code)
	return scanGiftCard(row)
}

// ListGiftCards returns every gift card, newest first.
func (s *Store) ListGiftCards(ctx context.Context) ([]storage.GiftCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, code, amount_cents, recipient, message, is_used, expires_at, created_at, updated_at
		FROM gift_cards ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list gift cards: %w", err)
	}
	defer rows.Close()

	var cards []storage.GiftCard
	for rows.Next() {
		card, err := scanGiftCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list gift cards: %w", err)
	}
	return cards, nil
}

// RedeemGiftCard marks a card used and records the redemption transaction in
// one database transaction. A card already marked used is reported as
// ErrNotFound by the guarded update.
func (s *Store) RedeemGiftCard(ctx context.Context, cardID string, tx storage.GiftCardTransaction, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(cardID) == "" {
		return fmt.Errorf("gift card id is required")
	}
	if strings.TrimSpace(tx.ID) == "" {
		return fmt.Errorf("transaction id is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}

	dbTx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin redeem: %w", err)
	}
	defer func() { _ = dbTx.Rollback() }()

	result, err := dbTx.ExecContext(ctx, `
		UPDATE gift_cards SET is_used = 1, updated_at = ?
		WHERE id = ? AND is_used = 0`, toMillis(now), cardID)
	if err != nil {
		return fmt.Errorf("mark gift card used: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}

	_, err = dbTx.ExecContext(ctx, `
		INSERT INTO gift_card_transactions (id, gift_card_id, order_id, amount_cents, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		tx.ID, cardID, tx.OrderID, tx.AmountCents, toMillis(tx.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert gift card transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit redeem: %w", err)
	}
	s.notifyChange("gift_cards")
	return nil
}

// ListGiftCardTransactions returns all redemptions for a card, newest first.
func (s *Store) ListGiftCardTransactions(ctx context.Context, cardID string) ([]storage.GiftCardTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cardID) == "" {
		return nil, fmt.Errorf("gift card id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, gift_card_id, order_id, amount_cents, created_at
		FROM gift_card_transactions WHERE gift_card_id = ?
		ORDER BY created_at DESC, id`, cardID)
	if err != nil {
		return nil, fmt.Errorf("list gift card transactions: %w", err)
	}
	defer rows.Close()

	var txs []storage.GiftCardTransaction
	for rows.Next() {
		var tx storage.GiftCardTransaction
		var createdAt int64
		if err := rows.Scan(&tx.ID, &tx.GiftCardID, &tx.OrderID, &tx.AmountCents, &createdAt); err != nil {
			return nil, fmt.Errorf("scan gift card transaction: %w", err)
		}
		tx.CreatedAt = fromMillis(createdAt)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list gift card transactions: %w", err)
	}
	return txs, nil
}

func scanGiftCard(row rowScanner) (storage.GiftCard, error) {
	var card storage.GiftCard
	var isUsed, expiresAt, createdAt, updatedAt int64
	err := row.Scan(&card.ID, &card.Code, &card.AmountCents, &card.Recipient, &card.Message,
		&isUsed, &expiresAt, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.GiftCard{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.GiftCard{}, fmt.Errorf("scan gift card: %w", err)
	}
	card.IsUsed = intToBool(isUsed)
	card.ExpiresAt = fromMillis(expiresAt)
	card.CreatedAt = fromMillis(createdAt)
	card.UpdatedAt = fromMillis(updatedAt)
	return card, nil
}
