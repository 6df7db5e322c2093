package categories

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall     string
	lastCategory string
}

func (f *fakeService) HandleCategoriesPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "categories_page"
}

func (f *fakeService) HandleCategoriesTree(http.ResponseWriter, *http.Request) {
	f.lastCall = "categories_tree"
}

func (f *fakeService) HandleCategoryCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "categories_create"
}

func (f *fakeService) HandleCategoryDetail(_ http.ResponseWriter, _ *http.Request, categoryID string) {
	f.lastCall = "categories_detail"
	f.lastCategory = categoryID
}

func (f *fakeService) HandleCategoryToggle(_ http.ResponseWriter, _ *http.Request, categoryID string) {
	f.lastCall = "categories_toggle"
	f.lastCategory = categoryID
}

func (f *fakeService) HandleCategoryMove(_ http.ResponseWriter, _ *http.Request, categoryID string) {
	f.lastCall = "categories_move"
	f.lastCategory = categoryID
}

func (f *fakeService) HandleCategoryDelete(_ http.ResponseWriter, _ *http.Request, categoryID string) {
	f.lastCall = "categories_delete"
	f.lastCategory = categoryID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path         string
		method       string
		wantCode     int
		wantCall     string
		wantCategory string
	}{
		{path: "/categories", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "categories_page"},
		{path: "/categories/tree", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "categories_tree"},
		{path: "/categories/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "categories_create"},
		{path: "/categories/c-1", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "categories_detail", wantCategory: "c-1"},
		{path: "/categories/c-1/toggle", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "categories_toggle", wantCategory: "c-1"},
		{path: "/categories/c-1/move", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "categories_move", wantCategory: "c-1"},
		{path: "/categories/c-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "categories_delete", wantCategory: "c-1"},
		{path: "/categories/c-1/unknown", method: http.MethodGet, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastCategory = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastCategory != tc.wantCategory {
				t.Fatalf("lastCategory = %q, want %q", svc.lastCategory, tc.wantCategory)
			}
		})
	}
}
