package giftcard

import (
	"regexp"
	"testing"
	"time"

	apperrors "github.com/chekout/admin/internal/platform/errors"
)

func TestIssueProducesWellFormedCard(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	card, err := Issue(5000, "sam@example.com", "happy birthday", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if !regexp.MustCompile(`^CHK-\d{4}-\d{4}$`).MatchString(card.Code) {
		t.Fatalf("unexpected code format: %q", card.Code)
	}
	if card.IsUsed {
		t.Fatal("expected new card to be unused")
	}
	want := time.Date(2027, 3, 10, 12, 0, 0, 0, time.UTC)
	if !card.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry exactly one year later (%v), got %v", want, card.ExpiresAt)
	}
	if card.AmountCents != 5000 {
		t.Fatalf("expected amount 5000, got %d", card.AmountCents)
	}
}

func TestIssueRejectsNonPositiveAmount(t *testing.T) {
	_, err := Issue(0, "sam@example.com", "", time.Now())
	if apperrors.CodeOf(err) != apperrors.CodeGiftCardInvalidAmount {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestIssueRejectsBadRecipient(t *testing.T) {
	_, err := Issue(100, "not-an-email", "", time.Now())
	if apperrors.CodeOf(err) != apperrors.CodeGiftCardInvalidRecipient {
		t.Fatalf("expected invalid recipient, got %v", err)
	}
}

func TestValidCode(t *testing.T) {
	if !ValidCode("CHK-1234-5678") {
		t.Fatal("expected valid code to pass")
	}
	if ValidCode("CHK-12345678") || ValidCode("chk-1234-5678") || ValidCode("CHK-12a4-5678") {
		t.Fatal("expected malformed codes to fail")
	}
}

func TestCheckRedeemable(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	card := Card{AmountCents: 100, ExpiresAt: now.AddDate(0, 6, 0)}

	if err := CheckRedeemable(card, now); err != nil {
		t.Fatalf("expected redeemable: %v", err)
	}

	used := card
	used.IsUsed = true
	if apperrors.CodeOf(CheckRedeemable(used, now)) != apperrors.CodeGiftCardAlreadyUsed {
		t.Fatal("expected already-used rejection")
	}

	expired := card
	expired.ExpiresAt = now.AddDate(0, -1, 0)
	err := CheckRedeemable(expired, now)
	if apperrors.CodeOf(err) != apperrors.CodeGiftCardExpired {
		t.Fatalf("expected expired rejection, got %v", err)
	}
	if apperrors.MetadataOf(err)["ExpiresAt"] == "" {
		t.Fatal("expected expiry date metadata")
	}
}

func TestSummarizeSplitsActiveFromTotal(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	cards := []Card{
		{AmountCents: 1000, ExpiresAt: now.AddDate(1, 0, 0)},               // active
		{AmountCents: 2000, ExpiresAt: now.AddDate(1, 0, 0), IsUsed: true}, // used
		{AmountCents: 4000, ExpiresAt: now.AddDate(0, -1, 0)},              // expired
	}

	totals := Summarize(cards, now)
	if totals.Count != 3 || totals.TotalCents != 7000 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.ActiveCount != 1 || totals.ActiveCents != 1000 {
		t.Fatalf("unexpected active totals: %+v", totals)
	}
}

func TestNewCodeUnpredictable(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := NewCode()
		if err != nil {
			t.Fatalf("new code: %v", err)
		}
		if !ValidCode(code) {
			t.Fatalf("generated invalid code %q", code)
		}
		seen[code] = true
	}
	if len(seen) < 45 {
		t.Fatalf("expected mostly unique codes, got %d unique of 50", len(seen))
	}
}
