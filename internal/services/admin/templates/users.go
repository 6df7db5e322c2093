package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/chekout/admin/internal/services/admin/routepath"
)

// UsersPageView provides data for the users page.
type UsersPageView struct {
	Message       string
	Rows          []UserRow
	NextPageToken string
}

// UserRow represents a row in the users table.
type UserRow struct {
	ID          string
	Email       string
	DisplayName string
	Admin       bool
	CreatedAt   string
}

// UserDetailView provides data for the user detail page.
type UserDetailView struct {
	Message     string
	ID          string
	Email       string
	DisplayName string
	CreatedAt   string
	FullName    string
	Phone       string
	Addresses   []AddressRow
	Roles       []UserRoleRow
	RoleOptions []RoleOption
}

// AddressRow is one shipping address on the user detail page.
type AddressRow struct {
	ID         string
	Label      string
	Street     string
	City       string
	Country    string
	PostalCode string
}

// UserRoleRow is one assigned role on the user detail page.
type UserRoleRow struct {
	ID    string
	Name  string
	Level string
}

// RoleOption is one entry in the assignable role selector.
type RoleOption struct {
	ID    string
	Label string
}

// UsersTable renders just the user table for HTMX swaps.
func UsersTable(pc PageContext, view UsersPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		m.raw(`<div id="users-table">`)
		m.raw(`<table><thead><tr>`)
		for _, key := range []string{"users.email", "users.display_name", "users.admin", "users.created"} {
			m.raw(`<th>`).text(T(pc.Loc, key)).raw(`</th>`)
		}
		m.raw(`</tr></thead><tbody>`)
		if len(view.Rows) == 0 {
			m.raw(`<tr><td colspan="4" class="empty">`).text(T(pc.Loc, "users.empty")).raw(`</td></tr>`)
		}
		for _, row := range view.Rows {
			m.raw(`<tr>`)
			m.raw(`<td><a`).attr("href", routepath.UserDetail(row.ID)).raw(`>`).text(row.Email).raw(`</a></td>`)
			m.raw(`<td>`).text(row.DisplayName).raw(`</td>`)
			m.raw(`<td>`)
			if row.Admin {
				m.text(T(pc.Loc, "users.admin_yes"))
			} else {
				m.text(T(pc.Loc, "users.admin_no"))
			}
			m.raw(`</td>`)
			m.raw(`<td>`).text(row.CreatedAt).raw(`</td>`)
			m.raw(`</tr>`)
		}
		m.raw(`</tbody></table>`)
		if view.NextPageToken != "" {
			m.raw(`<a class="pagination-next"`).
				attr("href", AppendQueryParam(routepath.Users, "page_token", view.NextPageToken)).
				raw(`>`).text(T(pc.Loc, "pagination.next")).raw(`</a>`)
		}
		m.raw(`</div>`)
		_, err := io.WriteString(w, m.String())
		return err
	})
}

// UsersContent renders the user list section.
func UsersContent(pc PageContext, view UsersPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{Title: T(pc.Loc, "users.heading")})
		renderFlash(m, view.Message)
		if _, err := io.WriteString(w, m.String()); err != nil {
			return err
		}
		return UsersTable(pc, view).Render(ctx, w)
	})
}

// UsersPage renders the full users document.
func UsersPage(pc PageContext, view UsersPageView) templ.Component {
	return Layout(pc, "title.users", UsersContent(pc, view))
}

// UserDetailContent renders the user detail and profile form.
func UserDetailContent(pc PageContext, view UserDetailView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{
			Title: view.Email,
			Breadcrumbs: []Breadcrumb{
				{Label: T(pc.Loc, "nav.users"), URL: routepath.Users},
				{Label: view.Email},
			},
		})
		renderFlash(m, view.Message)

		m.raw(`<section class="user-meta"><dl>`)
		m.raw(`<dt>`).text(T(pc.Loc, "users.display_name")).raw(`</dt><dd>`).text(view.DisplayName).raw(`</dd>`)
		m.raw(`<dt>`).text(T(pc.Loc, "users.created")).raw(`</dt><dd>`).text(view.CreatedAt).raw(`</dd>`)
		m.raw(`</dl></section>`)

		m.raw(`<h2>`).text(T(pc.Loc, "users.profile")).raw(`</h2>`)
		m.raw(`<form method="post"`).attr("action", routepath.UserProfile(view.ID)).raw(` class="edit-form">`)
		m.raw(`<label>`).text(T(pc.Loc, "users.full_name")).raw(`<input type="text" name="full_name"`).attr("value", view.FullName).raw(`></label>`)
		m.raw(`<label>`).text(T(pc.Loc, "users.phone")).raw(`<input type="text" name="phone"`).attr("value", view.Phone).raw(`></label>`)
		m.raw(`<button type="submit">`).text(T(pc.Loc, "action.save")).raw(`</button>`)
		m.raw(`</form>`)

		m.raw(`<h2>`).text(T(pc.Loc, "users.addresses")).raw(`</h2>`)
		if len(view.Addresses) == 0 {
			m.raw(`<p class="empty">`).text(T(pc.Loc, "users.no_addresses")).raw(`</p>`)
		}
		for _, addr := range view.Addresses {
			renderAddressForm(m, pc, view.ID, addr)
		}
		m.raw(`<h3>`).text(T(pc.Loc, "users.add_address")).raw(`</h3>`)
		renderAddressForm(m, pc, view.ID, AddressRow{})

		m.raw(`<h2>`).text(T(pc.Loc, "users.roles")).raw(`</h2>`)
		if len(view.Roles) == 0 {
			m.raw(`<p class="empty">`).text(T(pc.Loc, "users.no_roles")).raw(`</p>`)
		} else {
			m.raw(`<table><thead><tr><th>`).text(T(pc.Loc, "roles.name")).raw(`</th><th>`).
				text(T(pc.Loc, "roles.level")).raw(`</th><th></th></tr></thead><tbody>`)
			for _, assigned := range view.Roles {
				m.raw(`<tr><td>`).text(assigned.Name).raw(`</td><td>`).text(assigned.Level).raw(`</td><td>`)
				m.raw(`<form method="post"`).attr("action", routepath.RoleRemove(assigned.ID)).raw(` class="inline">`)
				m.raw(`<input type="hidden" name="user_id"`).attr("value", view.ID).raw(`>`)
				m.raw(`<button type="submit">`).text(T(pc.Loc, "action.remove")).raw(`</button></form>`)
				m.raw(`</td></tr>`)
			}
			m.raw(`</tbody></table>`)
		}
		if len(view.RoleOptions) > 0 {
			m.raw(`<form method="post"`).attr("action", routepath.UserRoles(view.ID)).raw(` class="inline">`)
			m.raw(`<select name="role_id">`)
			for _, option := range view.RoleOptions {
				m.raw(`<option`).attr("value", option.ID).raw(`>`).text(option.Label).raw(`</option>`)
			}
			m.raw(`</select>`)
			m.raw(`<button type="submit">`).text(T(pc.Loc, "action.assign")).raw(`</button>`)
			m.raw(`</form>`)
		}

		_, err := io.WriteString(w, m.String())
		return err
	})
}

func renderAddressForm(m *markup, pc PageContext, userID string, addr AddressRow) {
	m.raw(`<form method="post"`).attr("action", routepath.UserAddress(userID)).raw(` class="edit-form address-form">`)
	if addr.ID != "" {
		m.raw(`<input type="hidden" name="address_id"`).attr("value", addr.ID).raw(`>`)
	}
	m.raw(`<label>`).text(T(pc.Loc, "users.address_label")).raw(`<input type="text" name="label"`).attr("value", addr.Label).raw(`></label>`)
	m.raw(`<label>`).text(T(pc.Loc, "users.street")).raw(`<input type="text" name="street"`).attr("value", addr.Street).raw(`></label>`)
	m.raw(`<label>`).text(T(pc.Loc, "users.city")).raw(`<input type="text" name="city"`).attr("value", addr.City).raw(`></label>`)
	m.raw(`<label>`).text(T(pc.Loc, "users.country")).raw(`<input type="text" name="country"`).attr("value", addr.Country).raw(`></label>`)
	m.raw(`<label>`).text(T(pc.Loc, "users.postal_code")).raw(`<input type="text" name="postal_code"`).attr("value", addr.PostalCode).raw(`></label>`)
	m.raw(`<button type="submit">`).text(T(pc.Loc, "action.save")).raw(`</button>`)
	m.raw(`</form>`)
}

// UserDetailPage renders the full user detail document.
func UserDetailPage(pc PageContext, view UserDetailView) templ.Component {
	return Layout(pc, "title.users", UserDetailContent(pc, view))
}
