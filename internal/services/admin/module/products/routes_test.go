package products

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall    string
	lastProduct string
}

func (f *fakeService) HandleProductsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "products_page"
}

func (f *fakeService) HandleProductsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "products_table"
}

func (f *fakeService) HandleProductCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "products_create"
}

func (f *fakeService) HandleProductDetail(_ http.ResponseWriter, _ *http.Request, productID string) {
	f.lastCall = "products_detail"
	f.lastProduct = productID
}

func (f *fakeService) HandleProductToggle(_ http.ResponseWriter, _ *http.Request, productID string) {
	f.lastCall = "products_toggle"
	f.lastProduct = productID
}

func (f *fakeService) HandleProductDelete(_ http.ResponseWriter, _ *http.Request, productID string) {
	f.lastCall = "products_delete"
	f.lastProduct = productID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path        string
		method      string
		wantCode    int
		wantCall    string
		wantProduct string
	}{
		{path: "/products", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "products_page"},
		{path: "/products/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "products_table"},
		{path: "/products/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "products_create"},
		{path: "/products/p-1", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "products_detail", wantProduct: "p-1"},
		{path: "/products/p-1/toggle", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "products_toggle", wantProduct: "p-1"},
		{path: "/products/p-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "products_delete", wantProduct: "p-1"},
		{path: "/products/p-1/unknown", method: http.MethodGet, wantCode: http.StatusNotFound},
		{path: "/products/p-1/toggle/extra", method: http.MethodPost, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastProduct = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastProduct != tc.wantProduct {
				t.Fatalf("lastProduct = %q, want %q", svc.lastProduct, tc.wantProduct)
			}
		})
	}
}

func TestHandleProductPathRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	req := httptest.NewRequest(http.MethodGet, "/products/p-1/", nil)
	rec := httptest.NewRecorder()
	HandleProductPath(rec, req, svc)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if svc.lastCall != "" {
		t.Fatalf("expected no handler call, got %q", svc.lastCall)
	}
}
