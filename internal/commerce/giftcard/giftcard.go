// Package giftcard implements stored-value code issuance and redemption rules.
package giftcard

import (
	"crypto/rand"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/chekout/admin/internal/platform/errors"
)

// validityYears is how long a card stays redeemable after issuance.
const validityYears = 1

// codePattern matches issued gift card codes.
var codePattern = regexp.MustCompile(`^CHK-[0-9]{4}-[0-9]{4}$`)

// Card is a stored-value code with amount, recipient, expiry, and usage flag.
type Card struct {
	ID          string
	Code        string
	AmountCents int64
	Recipient   string
	Message     string
	IsUsed      bool
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Issue validates the inputs and returns a new unissued card record.
// The code follows CHK-####-#### and the expiry lands exactly one year after
// the issue time.
func Issue(amountCents int64, recipient, message string, now time.Time) (Card, error) {
	if amountCents <= 0 {
		return Card{}, apperrors.New(apperrors.CodeGiftCardInvalidAmount, "gift card amount must be positive")
	}
	recipient = strings.TrimSpace(recipient)
	if _, err := mail.ParseAddress(recipient); err != nil {
		return Card{}, apperrors.Wrap(apperrors.CodeGiftCardInvalidRecipient, "invalid recipient email", err)
	}
	code, err := NewCode()
	if err != nil {
		return Card{}, fmt.Errorf("generate gift card code: %w", err)
	}
	now = now.UTC()
	return Card{
		Code:        code,
		AmountCents: amountCents,
		Recipient:   recipient,
		Message:     strings.TrimSpace(message),
		IsUsed:      false,
		ExpiresAt:   now.AddDate(validityYears, 0, 0),
		CreatedAt:   now,
	}, nil
}

// NewCode returns a fresh CHK-####-#### code.
func NewCode() (string, error) {
	digits, err := randomDigits(8)
	if err != nil {
		return "", err
	}
	return "CHK-" + digits[:4] + "-" + digits[4:], nil
}

// ValidCode reports whether value matches the issued code format.
func ValidCode(value string) bool {
	return codePattern.MatchString(strings.TrimSpace(value))
}

// CheckRedeemable reports whether the card can be redeemed at the given time.
func CheckRedeemable(card Card, now time.Time) error {
	if card.IsUsed {
		return apperrors.New(apperrors.CodeGiftCardAlreadyUsed, "gift card already used")
	}
	if !card.ExpiresAt.After(now) {
		return apperrors.WithMetadata(apperrors.CodeGiftCardExpired, "gift card expired",
			map[string]string{"ExpiresAt": card.ExpiresAt.UTC().Format("2006-01-02")})
	}
	return nil
}

// Totals summarizes a set of cards for the gift cards page header.
type Totals struct {
	Count       int
	ActiveCount int
	TotalCents  int64
	ActiveCents int64
}

// Summarize sums card amounts, splitting "active" (unused and unexpired at
// now) from the overall totals.
func Summarize(cards []Card, now time.Time) Totals {
	var totals Totals
	for _, card := range cards {
		totals.Count++
		totals.TotalCents += card.AmountCents
		if !card.IsUsed && card.ExpiresAt.After(now) {
			totals.ActiveCount++
			totals.ActiveCents += card.AmountCents
		}
	}
	return totals
}

func randomDigits(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = '0' + b%10
	}
	return string(out), nil
}
