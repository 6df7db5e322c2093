package admin

import (
	"log"
	"net/http"
	"time"

	"golang.org/x/text/message"

	"github.com/chekout/admin/internal/commerce/role"
	"github.com/chekout/admin/internal/platform/requestctx"
	"github.com/chekout/admin/internal/services/admin/i18n"
	categoriesmodule "github.com/chekout/admin/internal/services/admin/module/categories"
	dashboardmodule "github.com/chekout/admin/internal/services/admin/module/dashboard"
	discountkeysmodule "github.com/chekout/admin/internal/services/admin/module/discountkeys"
	giftcardsmodule "github.com/chekout/admin/internal/services/admin/module/giftcards"
	ordersmodule "github.com/chekout/admin/internal/services/admin/module/orders"
	productsmodule "github.com/chekout/admin/internal/services/admin/module/products"
	rolesmodule "github.com/chekout/admin/internal/services/admin/module/roles"
	usersmodule "github.com/chekout/admin/internal/services/admin/module/users"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	"github.com/chekout/admin/internal/services/admin/static"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
	"github.com/chekout/admin/internal/services/admin/transport/httpmux"
	"github.com/chekout/admin/internal/services/admin/watch"
)

// Handler routes admin console requests.
type Handler struct {
	store storage.Store
	hub   *watch.Hub
	now   func() time.Time
}

// NewHandler builds the HTTP handler for the admin console.
func NewHandler(store storage.Store, hub *watch.Hub) http.Handler {
	handler := &Handler{
		store: store,
		hub:   hub,
		now:   time.Now,
	}
	return handler.routes()
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	pc := templates.PageContext{
		Lang: lang,
		Loc:  loc,
	}
	if r != nil && r.URL != nil {
		pc.CurrentPath = r.URL.Path
		pc.CurrentQuery = r.URL.RawQuery
	}
	return pc
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	consoleMux := http.NewServeMux()
	if h.hub != nil {
		consoleMux.Handle(routepath.Watch, h.hub.Handler())
	}
	dashboardmodule.RegisterRoutes(consoleMux, h)
	productsmodule.RegisterRoutes(consoleMux, h)
	categoriesmodule.RegisterRoutes(consoleMux, h)
	usersmodule.RegisterRoutes(consoleMux, h)
	ordersmodule.RegisterRoutes(consoleMux, h)
	giftcardsmodule.RegisterRoutes(consoleMux, h)
	discountkeysmodule.RegisterRoutes(consoleMux, h)
	rolesmodule.RegisterRoutes(consoleMux, h)

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS, nil)
	httpmux.MountConsoleRoutes(rootMux, consoleMux)
	return rootMux
}

// grants resolves the effective authority of the requesting operator.
//
// Requests without an authenticated admin identity (auth middleware disabled)
// run with full authority so local setups stay usable.
func (h *Handler) grants(r *http.Request) role.Grants {
	adminID := requestctx.AdminIDFromContext(r.Context())
	if adminID == "" {
		return superuserGrants()
	}
	assigned, err := h.store.ListRolesForUser(r.Context(), adminID)
	if err != nil {
		log.Printf("list roles for %s: %v", adminID, err)
		return role.Grants{Permissions: map[role.Resource]role.Access{}}
	}
	domainRoles := make([]role.Role, 0, len(assigned))
	for _, stored := range assigned {
		domainRoles = append(domainRoles, role.Role{
			ID:          stored.ID,
			Name:        stored.Name,
			Level:       stored.Level,
			Permissions: stored.Permissions,
		})
	}
	return role.Effective(domainRoles)
}

func superuserGrants() role.Grants {
	permissions := make(map[role.Resource]role.Access, len(role.Resources()))
	for _, resource := range role.Resources() {
		permissions[resource] = role.AccessWrite
	}
	return role.Grants{Level: 1 << 30, Permissions: permissions}
}
