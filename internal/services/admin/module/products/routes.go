package products

import (
	"net/http"
	"strings"

	sharedpath "github.com/chekout/admin/internal/services/admin/module/sharedpath"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	sharedroute "github.com/chekout/admin/internal/services/shared/route"
)

// Service defines product route handlers consumed by this route module.
type Service interface {
	HandleProductsPage(w http.ResponseWriter, r *http.Request)
	HandleProductsTable(w http.ResponseWriter, r *http.Request)
	HandleProductCreate(w http.ResponseWriter, r *http.Request)
	HandleProductDetail(w http.ResponseWriter, r *http.Request, productID string)
	HandleProductToggle(w http.ResponseWriter, r *http.Request, productID string)
	HandleProductDelete(w http.ResponseWriter, r *http.Request, productID string)
}

// RegisterRoutes wires product routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Products, service.HandleProductsPage)
	mux.HandleFunc(routepath.ProductsTable, service.HandleProductsTable)
	mux.HandleFunc(routepath.ProductsCreate, service.HandleProductCreate)
	mux.HandleFunc(routepath.ProductsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleProductPath(w, r, service)
	})
}

// HandleProductPath parses product detail subroutes and dispatches to service handlers.
func HandleProductPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.ProductsPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 2 && parts[1] == "toggle" {
		service.HandleProductToggle(w, r, parts[0])
		return
	}
	if len(parts) == 2 && parts[1] == "delete" {
		service.HandleProductDelete(w, r, parts[0])
		return
	}
	if len(parts) == 1 {
		service.HandleProductDetail(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}
