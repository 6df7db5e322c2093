package categories

import (
	"net/http"
	"strings"

	sharedpath "github.com/chekout/admin/internal/services/admin/module/sharedpath"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	sharedroute "github.com/chekout/admin/internal/services/shared/route"
)

// Service defines category route handlers consumed by this route module.
type Service interface {
	HandleCategoriesPage(w http.ResponseWriter, r *http.Request)
	HandleCategoriesTree(w http.ResponseWriter, r *http.Request)
	HandleCategoryCreate(w http.ResponseWriter, r *http.Request)
	HandleCategoryDetail(w http.ResponseWriter, r *http.Request, categoryID string)
	HandleCategoryToggle(w http.ResponseWriter, r *http.Request, categoryID string)
	HandleCategoryMove(w http.ResponseWriter, r *http.Request, categoryID string)
	HandleCategoryDelete(w http.ResponseWriter, r *http.Request, categoryID string)
}

// RegisterRoutes wires category routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Categories, service.HandleCategoriesPage)
	mux.HandleFunc(routepath.CategoriesTree, service.HandleCategoriesTree)
	mux.HandleFunc(routepath.CategoriesCreate, service.HandleCategoryCreate)
	mux.HandleFunc(routepath.CategoriesPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleCategoryPath(w, r, service)
	})
}

// HandleCategoryPath parses category subroutes and dispatches to service handlers.
func HandleCategoryPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.CategoriesPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 2 {
		switch parts[1] {
		case "toggle":
			service.HandleCategoryToggle(w, r, parts[0])
			return
		case "move":
			service.HandleCategoryMove(w, r, parts[0])
			return
		case "delete":
			service.HandleCategoryDelete(w, r, parts[0])
			return
		}
	}
	if len(parts) == 1 {
		service.HandleCategoryDetail(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}
