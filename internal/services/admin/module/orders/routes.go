package orders

import (
	"net/http"
	"strings"

	sharedpath "github.com/chekout/admin/internal/services/admin/module/sharedpath"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	sharedroute "github.com/chekout/admin/internal/services/shared/route"
)

// Service defines order route handlers consumed by this route module.
type Service interface {
	HandleOrdersPage(w http.ResponseWriter, r *http.Request)
	HandleOrdersTable(w http.ResponseWriter, r *http.Request)
	HandleOrderDetail(w http.ResponseWriter, r *http.Request, orderID string)
}

// RegisterRoutes wires order routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Orders, service.HandleOrdersPage)
	mux.HandleFunc(routepath.OrdersTable, service.HandleOrdersTable)
	mux.HandleFunc(routepath.OrdersPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleOrderPath(w, r, service)
	})
}

// HandleOrderPath parses order detail subroutes and dispatches to service handlers.
func HandleOrderPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.OrdersPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 1 {
		service.HandleOrderDetail(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}
