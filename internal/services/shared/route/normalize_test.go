package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/products/", nil)

	if !RedirectTrailingSlash(recorder, request) {
		t.Fatal("expected redirect for trailing slash")
	}
	if recorder.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", recorder.Code)
	}
	if location := recorder.Header().Get("Location"); location != "/products" {
		t.Fatalf("expected /products, got %q", location)
	}
}

func TestRedirectTrailingSlashNoChange(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/products", nil)

	if RedirectTrailingSlash(recorder, request) {
		t.Fatal("expected no redirect for canonical path")
	}
}

func TestRedirectTrailingSlashRoot(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	if RedirectTrailingSlash(recorder, request) {
		t.Fatal("expected no redirect for root")
	}
}
