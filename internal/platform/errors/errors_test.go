package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorWrapUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeNotFound, "load product", cause)

	if err.Error() != "load product" {
		t.Fatalf("expected internal message, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to match via errors.Is")
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	first := New(CodeRoleHasAssignments, "role busy")
	second := New(CodeRoleHasAssignments, "different message")

	if !errors.Is(first, second) {
		t.Fatal("expected errors with same code to match")
	}
	if errors.Is(first, New(CodeNotFound, "nope")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(nil); got != CodeUnknown {
		t.Fatalf("expected unknown for nil, got %s", got)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != CodeUnknown {
		t.Fatalf("expected unknown for plain error, got %s", got)
	}
	if got := CodeOf(New(CodeGiftCardExpired, "expired")); got != CodeGiftCardExpired {
		t.Fatalf("expected gift card expired, got %s", got)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeProductNameEmpty, http.StatusBadRequest},
		{CodeCategoryCycle, http.StatusConflict},
		{CodeRoleHasAssignments, http.StatusConflict},
		{CodeRoleLevelTooLow, http.StatusForbidden},
		{CodeSessionExpired, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("code %s: expected %d, got %d", tc.code, tc.want, got)
		}
	}
}

func TestMetadataOf(t *testing.T) {
	err := WithMetadata(CodeRoleHasAssignments, "role busy", map[string]string{"Count": "3"})
	meta := MetadataOf(err)
	if meta["Count"] != "3" {
		t.Fatalf("expected count metadata, got %v", meta)
	}
	if MetadataOf(fmt.Errorf("plain")) != nil {
		t.Fatal("expected nil metadata for plain error")
	}
}
