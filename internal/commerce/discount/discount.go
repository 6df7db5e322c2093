// Package discount implements single-use percentage discount keys of fixed tiers.
package discount

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/chekout/admin/internal/platform/errors"
)

// Tier is a fixed discount tier.
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// MaxBatchSize caps how many keys one generate request may mint.
const MaxBatchSize = 500

// codePattern matches 8-digit discount key codes.
var codePattern = regexp.MustCompile(`^[0-9]{8}$`)

// tierPercent maps each tier to its discount percentage.
var tierPercent = map[Tier]int{
	TierBronze: 5,
	TierSilver: 10,
	TierGold:   15,
}

// Key is a single-use percentage-discount code.
type Key struct {
	ID        string
	Code      string
	Tier      Tier
	Percent   int
	UsedBy    string
	UsedAt    time.Time
	RevokedAt time.Time
	CreatedAt time.Time
}

// ParseTier normalizes a tier name.
func ParseTier(value string) (Tier, error) {
	tier := Tier(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := tierPercent[tier]; !ok {
		return "", apperrors.WithMetadata(apperrors.CodeDiscountInvalidTier, "unknown discount tier",
			map[string]string{"Tier": value})
	}
	return tier, nil
}

// Percent returns the discount percentage for a tier.
func (t Tier) Percent() int {
	return tierPercent[t]
}

// Tiers lists the known tiers in ascending discount order.
func Tiers() []Tier {
	return []Tier{TierBronze, TierSilver, TierGold}
}

// Generate mints count fresh keys of the given tier.
func Generate(tier Tier, count int, now time.Time) ([]Key, error) {
	if _, ok := tierPercent[tier]; !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeDiscountInvalidTier, "unknown discount tier",
			map[string]string{"Tier": string(tier)})
	}
	if count < 1 || count > MaxBatchSize {
		return nil, apperrors.WithMetadata(apperrors.CodeDiscountInvalidCount, "invalid key count",
			map[string]string{"Max": fmt.Sprintf("%d", MaxBatchSize)})
	}

	now = now.UTC()
	keys := make([]Key, 0, count)
	seen := make(map[string]bool, count)
	for len(keys) < count {
		code, err := newCode()
		if err != nil {
			return nil, err
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		keys = append(keys, Key{
			Code:      code,
			Tier:      tier,
			Percent:   tierPercent[tier],
			CreatedAt: now,
		})
	}
	return keys, nil
}

// ValidCode reports whether value looks like an 8-digit key code.
func ValidCode(value string) bool {
	return codePattern.MatchString(strings.TrimSpace(value))
}

// CheckUsable reports whether the key can still be applied to an order.
func CheckUsable(key Key) error {
	if !key.RevokedAt.IsZero() {
		return apperrors.New(apperrors.CodeDiscountKeyRevoked, "discount key revoked")
	}
	if key.UsedBy != "" || !key.UsedAt.IsZero() {
		return apperrors.New(apperrors.CodeDiscountKeyUsed, "discount key already used")
	}
	return nil
}

func newCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	out := make([]byte, 8)
	for i, b := range buf {
		out[i] = '0' + b%10
	}
	return string(out), nil
}
