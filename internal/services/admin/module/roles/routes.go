package roles

import (
	"net/http"
	"strings"

	sharedpath "github.com/chekout/admin/internal/services/admin/module/sharedpath"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	sharedroute "github.com/chekout/admin/internal/services/shared/route"
)

// Service defines role route handlers consumed by this route module.
type Service interface {
	HandleRolesPage(w http.ResponseWriter, r *http.Request)
	HandleRolesTable(w http.ResponseWriter, r *http.Request)
	HandleRoleCreate(w http.ResponseWriter, r *http.Request)
	HandleRoleDetail(w http.ResponseWriter, r *http.Request, roleID string)
	HandleRoleDelete(w http.ResponseWriter, r *http.Request, roleID string)
	HandleRoleAssign(w http.ResponseWriter, r *http.Request, roleID string)
	HandleRoleRemove(w http.ResponseWriter, r *http.Request, roleID string)
}

// RegisterRoutes wires role routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Roles, service.HandleRolesPage)
	mux.HandleFunc(routepath.RolesTable, service.HandleRolesTable)
	mux.HandleFunc(routepath.RolesCreate, service.HandleRoleCreate)
	mux.HandleFunc(routepath.RolesPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleRolePath(w, r, service)
	})
}

// HandleRolePath parses role subroutes and dispatches to service handlers.
func HandleRolePath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.RolesPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 2 {
		switch parts[1] {
		case "delete":
			service.HandleRoleDelete(w, r, parts[0])
			return
		case "assign":
			service.HandleRoleAssign(w, r, parts[0])
			return
		case "remove":
			service.HandleRoleRemove(w, r, parts[0])
			return
		}
	}
	if len(parts) == 1 {
		service.HandleRoleDetail(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}
