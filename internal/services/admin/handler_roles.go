package admin

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/chekout/admin/internal/commerce/role"
	apperrors "github.com/chekout/admin/internal/platform/errors"
	"github.com/chekout/admin/internal/platform/id"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
)

// HandleRolesPage renders the role list.
func (h *Handler) HandleRolesPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	grants, ok := h.requireRead(w, r, lang, role.ResourceRoles)
	if !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadRolesView(r, loc, grants)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	view.Message = noticeMessage(loc, r)
	renderPage(w, r,
		templates.RolesContent(pc, view),
		templates.RolesPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.roles"))
}

// HandleRolesTable renders just the role table for HTMX swaps.
func (h *Handler) HandleRolesTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	grants, ok := h.requireRead(w, r, lang, role.ResourceRoles)
	if !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadRolesView(r, loc, grants)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	table := templates.RolesTable(pc, view)
	renderPage(w, r, table, table, htmxLocalizedPageTitle(loc, "title.roles"))
}

// HandleRoleCreate renders the create form and accepts submissions.
func (h *Handler) HandleRoleCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pc := h.pageContext(lang, loc, r)

	if r.Method == http.MethodGet {
		if _, ok := h.requireRead(w, r, lang, role.ResourceRoles); !ok {
			return
		}
		form := templates.RoleFormView{Resources: permissionFields(loc, nil)}
		renderPage(w, r,
			templates.RoleFormContent(pc, form),
			templates.RoleFormPage(pc, form),
			htmxLocalizedPageTitle(loc, "title.roles"))
		return
	}
	if !requirePost(w, r) {
		return
	}
	grants := h.grants(r)

	parsed, err := parseRoleForm(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	// Creating a role the operator could not manage would mint authority
	// beyond their own.
	if err := grants.RequireManage(parsed); err != nil {
		renderError(w, lang, err)
		return
	}
	roleID, err := id.NewID()
	if err != nil {
		renderError(w, lang, err)
		return
	}
	now := h.now().UTC()
	record := storage.Role{
		ID:          roleID,
		Name:        parsed.Name,
		Level:       parsed.Level,
		Permissions: parsed.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.store.CreateRole(r.Context(), record); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Roles, "roles.created")
}

// HandleRoleDetail renders the edit form and accepts updates.
func (h *Handler) HandleRoleDetail(w http.ResponseWriter, r *http.Request, roleID string) {
	loc, lang := h.localizer(w, r)
	pc := h.pageContext(lang, loc, r)

	if r.Method == http.MethodGet {
		if _, ok := h.requireRead(w, r, lang, role.ResourceRoles); !ok {
			return
		}
		record, err := h.store.GetRole(r.Context(), roleID)
		if err != nil {
			renderError(w, lang, err)
			return
		}
		form := templates.RoleFormView{
			ID:        record.ID,
			Name:      record.Name,
			Level:     strconv.Itoa(record.Level),
			Resources: permissionFields(loc, record.Permissions),
		}
		renderPage(w, r,
			templates.RoleFormContent(pc, form),
			templates.RoleFormPage(pc, form),
			htmxLocalizedPageTitle(loc, "title.roles"))
		return
	}
	if !requirePost(w, r) {
		return
	}
	grants := h.grants(r)

	current, err := h.store.GetRole(r.Context(), roleID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if err := grants.RequireManage(role.Role{ID: current.ID, Level: current.Level}); err != nil {
		renderError(w, lang, err)
		return
	}
	parsed, err := parseRoleForm(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if err := grants.RequireManage(parsed); err != nil {
		renderError(w, lang, err)
		return
	}
	record := storage.Role{
		ID:          current.ID,
		Name:        parsed.Name,
		Level:       parsed.Level,
		Permissions: parsed.Permissions,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   h.now().UTC(),
	}
	if err := h.store.UpdateRole(r.Context(), record); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Roles, "roles.updated")
}

// HandleRoleDelete removes a role that has no remaining assignments.
func (h *Handler) HandleRoleDelete(w http.ResponseWriter, r *http.Request, roleID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	grants := h.grants(r)

	current, err := h.store.GetRole(r.Context(), roleID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if err := grants.RequireManage(role.Role{ID: current.ID, Level: current.Level}); err != nil {
		renderError(w, lang, err)
		return
	}
	assignments, err := h.store.CountRoleAssignments(r.Context(), roleID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if assignments > 0 {
		renderError(w, lang, apperrors.WithMetadata(apperrors.CodeRoleHasAssignments, "role still assigned",
			map[string]string{"Count": strconv.Itoa(assignments)}))
		return
	}
	if err := h.store.DeleteRole(r.Context(), roleID); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Roles, "roles.deleted")
}

// HandleRoleAssign grants the role to the posted user.
func (h *Handler) HandleRoleAssign(w http.ResponseWriter, r *http.Request, roleID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	grants := h.grants(r)

	current, err := h.store.GetRole(r.Context(), roleID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if err := grants.RequireManage(role.Role{ID: current.ID, Level: current.Level}); err != nil {
		renderError(w, lang, err)
		return
	}
	userID := strings.TrimSpace(r.PostFormValue("user_id"))
	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		renderError(w, lang, err)
		return
	}
	if err := h.store.AssignRole(r.Context(), userID, roleID); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.UserDetail(userID), "users.role_assigned")
}

// HandleRoleRemove revokes the role from the posted user.
func (h *Handler) HandleRoleRemove(w http.ResponseWriter, r *http.Request, roleID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	grants := h.grants(r)

	current, err := h.store.GetRole(r.Context(), roleID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if err := grants.RequireManage(role.Role{ID: current.ID, Level: current.Level}); err != nil {
		renderError(w, lang, err)
		return
	}
	userID := strings.TrimSpace(r.PostFormValue("user_id"))
	if err := h.store.RemoveRole(r.Context(), userID, roleID); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.UserDetail(userID), "users.role_removed")
}

func (h *Handler) loadRolesView(r *http.Request, loc *message.Printer, grants role.Grants) (templates.RolesPageView, error) {
	records, err := h.store.ListRoles(r.Context())
	if err != nil {
		return templates.RolesPageView{}, err
	}
	rows := make([]templates.RoleRow, 0, len(records))
	for _, record := range records {
		assignments, err := h.store.CountRoleAssignments(r.Context(), record.ID)
		if err != nil {
			return templates.RolesPageView{}, err
		}
		rows = append(rows, templates.RoleRow{
			ID:          record.ID,
			Name:        record.Name,
			Level:       strconv.Itoa(record.Level),
			Permissions: summarizePermissions(loc, record.Permissions),
			Assigned:    strconv.Itoa(assignments),
			CanManage:   grants.CanManage(role.Role{ID: record.ID, Level: record.Level}),
		})
	}
	return templates.RolesPageView{Rows: rows}, nil
}

// parseRoleForm reads and validates the role form into a domain role.
func parseRoleForm(r *http.Request) (role.Role, error) {
	if err := r.ParseForm(); err != nil {
		return role.Role{}, apperrors.Wrap(apperrors.CodeUnknown, "parse form", err)
	}
	level, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("level")))
	if err != nil {
		return role.Role{}, apperrors.New(apperrors.CodeRoleInvalidLevel, "role level must be positive")
	}
	parsed := role.Role{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Level:       level,
		Permissions: map[role.Resource]role.Access{},
	}
	for _, resource := range role.Resources() {
		switch r.PostFormValue("perm_" + string(resource)) {
		case string(role.AccessRead):
			parsed.Permissions[resource] = role.AccessRead
		case string(role.AccessWrite):
			parsed.Permissions[resource] = role.AccessWrite
		}
	}
	if err := role.Validate(parsed); err != nil {
		return role.Role{}, err
	}
	return parsed, nil
}

func permissionFields(loc *message.Printer, permissions map[role.Resource]role.Access) []templates.RolePermissionField {
	fields := make([]templates.RolePermissionField, 0, len(role.Resources()))
	for _, resource := range role.Resources() {
		fields = append(fields, templates.RolePermissionField{
			Resource: string(resource),
			Label:    loc.Sprintf("resource." + string(resource)),
			Access:   string(permissions[resource]),
		})
	}
	return fields
}

func summarizePermissions(loc *message.Printer, permissions map[role.Resource]role.Access) string {
	var parts []string
	for _, pair := range role.SortedPermissions(permissions) {
		accessKey := "roles.access_read"
		if pair.Access == role.AccessWrite {
			accessKey = "roles.access_write"
		}
		parts = append(parts, loc.Sprintf("resource."+string(pair.Resource))+": "+loc.Sprintf(accessKey))
	}
	return strings.Join(parts, ", ")
}
