package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/chekout/admin/internal/commerce/role"
	apperrors "github.com/chekout/admin/internal/platform/errors"
	"github.com/chekout/admin/internal/platform/id"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
)

// HandleUsersPage renders the paged user list.
func (h *Handler) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceUsers); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadUsersView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	view.Message = noticeMessage(loc, r)
	renderPage(w, r,
		templates.UsersContent(pc, view),
		templates.UsersPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.users"))
}

// HandleUsersTable renders just the user table for HTMX swaps.
func (h *Handler) HandleUsersTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceUsers); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadUsersView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	table := templates.UsersTable(pc, view)
	renderPage(w, r, table, table, htmxLocalizedPageTitle(loc, "title.users"))
}

// HandleUserDetail renders one user with profile, addresses, and roles.
func (h *Handler) HandleUserDetail(w http.ResponseWriter, r *http.Request, userID string) {
	loc, lang := h.localizer(w, r)
	grants, ok := h.requireRead(w, r, lang, role.ResourceUsers)
	if !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	view := templates.UserDetailView{
		Message:     noticeMessage(loc, r),
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   formatDate(user.CreatedAt),
	}

	profile, err := h.store.GetProfile(r.Context(), userID)
	if err == nil {
		view.FullName = profile.FullName
		view.Phone = profile.Phone
	} else if !errors.Is(err, storage.ErrNotFound) {
		renderError(w, lang, err)
		return
	}

	addresses, err := h.store.ListAddresses(r.Context(), userID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	for _, address := range addresses {
		view.Addresses = append(view.Addresses, templates.AddressRow{
			ID:         address.ID,
			Label:      address.Label,
			Street:     address.Street,
			City:       address.City,
			Country:    address.Country,
			PostalCode: address.PostalCode,
		})
	}

	assigned, err := h.store.ListRolesForUser(r.Context(), userID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	assignedIDs := make(map[string]bool, len(assigned))
	for _, stored := range assigned {
		assignedIDs[stored.ID] = true
		view.Roles = append(view.Roles, templates.UserRoleRow{
			ID:    stored.ID,
			Name:  stored.Name,
			Level: strconv.Itoa(stored.Level),
		})
	}

	// Only roles the operator outranks are offered for assignment.
	allRoles, err := h.store.ListRoles(r.Context())
	if err != nil {
		renderError(w, lang, err)
		return
	}
	for _, stored := range allRoles {
		if assignedIDs[stored.ID] {
			continue
		}
		if !grants.CanManage(role.Role{ID: stored.ID, Level: stored.Level}) {
			continue
		}
		view.RoleOptions = append(view.RoleOptions, templates.RoleOption{ID: stored.ID, Label: stored.Name})
	}

	renderPage(w, r,
		templates.UserDetailContent(pc, view),
		templates.UserDetailPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.users"))
}

// HandleUserProfile upserts the editable profile half of a user record.
func (h *Handler) HandleUserProfile(w http.ResponseWriter, r *http.Request, userID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceUsers); !ok {
		return
	}
	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		renderError(w, lang, err)
		return
	}

	fullName := strings.TrimSpace(r.PostFormValue("full_name"))
	if fullName == "" {
		renderError(w, lang, apperrors.New(apperrors.CodeProfileNameEmpty, "profile full name is required"))
		return
	}
	now := h.now().UTC()
	profile := storage.Profile{
		UserID:    userID,
		FullName:  fullName,
		Phone:     strings.TrimSpace(r.PostFormValue("phone")),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.store.PutProfile(r.Context(), profile); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.UserDetail(userID), "users.profile_saved")
}

// HandleUserAddress upserts one shipping address on a user record. Profile
// and address saves are independent calls; one failing leaves the other
// applied.
func (h *Handler) HandleUserAddress(w http.ResponseWriter, r *http.Request, userID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceUsers); !ok {
		return
	}
	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		renderError(w, lang, err)
		return
	}

	street := strings.TrimSpace(r.PostFormValue("street"))
	if street == "" {
		renderError(w, lang, apperrors.New(apperrors.CodeAddressStreetEmpty, "address street is required"))
		return
	}
	addressID := strings.TrimSpace(r.PostFormValue("address_id"))
	if addressID == "" {
		generated, err := id.NewID()
		if err != nil {
			renderError(w, lang, err)
			return
		}
		addressID = generated
	}
	address := storage.Address{
		ID:         addressID,
		UserID:     userID,
		Label:      strings.TrimSpace(r.PostFormValue("label")),
		Street:     street,
		City:       strings.TrimSpace(r.PostFormValue("city")),
		Country:    strings.TrimSpace(r.PostFormValue("country")),
		PostalCode: strings.TrimSpace(r.PostFormValue("postal_code")),
		UpdatedAt:  h.now().UTC(),
	}
	if err := h.store.PutAddress(r.Context(), address); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.UserDetail(userID), "users.address_saved")
}

// HandleUserRoleAssign grants a role to a user from the user detail page.
func (h *Handler) HandleUserRoleAssign(w http.ResponseWriter, r *http.Request, userID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	grants := h.grants(r)

	roleID := strings.TrimSpace(r.PostFormValue("role_id"))
	target, err := h.store.GetRole(r.Context(), roleID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if err := grants.RequireManage(role.Role{ID: target.ID, Level: target.Level}); err != nil {
		renderError(w, lang, err)
		return
	}
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

func (h *Handler) loadUsersView(r *http.Request) (templates.UsersPageView, error) {
	page, err := h.store.ListUsers(r.Context(), pageFromQuery(r.URL.Query()))
	if err != nil {
		return templates.UsersPageView{}, err
	}
	rows := make([]templates.UserRow, 0, len(page.Users))
	for _, user := range page.Users {
		rows = append(rows, templates.UserRow{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Admin:       user.IsAdmin,
			CreatedAt:   formatDate(user.CreatedAt),
		})
	}
	return templates.UsersPageView{Rows: rows, NextPageToken: page.NextPageToken}, nil
}
