package discountkeys

import (
	"net/http"
	"strings"

	sharedpath "github.com/chekout/admin/internal/services/admin/module/sharedpath"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	sharedroute "github.com/chekout/admin/internal/services/shared/route"
)

// Service defines discount key route handlers consumed by this route module.
type Service interface {
	HandleDiscountKeysPage(w http.ResponseWriter, r *http.Request)
	HandleDiscountKeysTable(w http.ResponseWriter, r *http.Request)
	HandleDiscountKeyGenerate(w http.ResponseWriter, r *http.Request)
	HandleDiscountKeyCheck(w http.ResponseWriter, r *http.Request)
	HandleDiscountKeyRevoke(w http.ResponseWriter, r *http.Request, keyID string)
}

// RegisterRoutes wires discount key routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.DiscountKeys, service.HandleDiscountKeysPage)
	mux.HandleFunc(routepath.DiscountKeysTable, service.HandleDiscountKeysTable)
	mux.HandleFunc(routepath.DiscountKeysGenerate, service.HandleDiscountKeyGenerate)
	mux.HandleFunc(routepath.DiscountKeysCheck, service.HandleDiscountKeyCheck)
	mux.HandleFunc(routepath.DiscountKeysPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleDiscountKeyPath(w, r, service)
	})
}

// HandleDiscountKeyPath parses discount key subroutes and dispatches to service handlers.
func HandleDiscountKeyPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.DiscountKeysPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 2 && parts[1] == "revoke" {
		service.HandleDiscountKeyRevoke(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}
