package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/chekout/admin/internal/services/admin/routepath"
)

// RolesPageView provides data for the roles page.
type RolesPageView struct {
	Message string
	Rows    []RoleRow
}

// RoleRow represents a row in the roles table.
type RoleRow struct {
	ID          string
	Name        string
	Level       string
	Permissions string
	Assigned    string
	CanManage   bool
}

// RoleFormView carries the create/edit role form state.
type RoleFormView struct {
	ID        string
	Name      string
	Level     string
	Resources []RolePermissionField
}

// RolePermissionField is one resource row in the permission grid.
type RolePermissionField struct {
	Resource string
	Label    string
	Access   string
}

// RolesTable renders just the role table for HTMX swaps.
func RolesTable(pc PageContext, view RolesPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		m.raw(`<div id="roles-table">`)
		m.raw(`<table><thead><tr>`)
		for _, key := range []string{"roles.name", "roles.level", "roles.permissions", "roles.assigned", "roles.actions"} {
			m.raw(`<th>`).text(T(pc.Loc, key)).raw(`</th>`)
		}
		m.raw(`</tr></thead><tbody>`)
		if len(view.Rows) == 0 {
			m.raw(`<tr><td colspan="5" class="empty">`).text(T(pc.Loc, "roles.empty")).raw(`</td></tr>`)
		}
		for _, row := range view.Rows {
			m.raw(`<tr>`)
			m.raw(`<td><a`).attr("href", routepath.Role(row.ID)).raw(`>`).text(row.Name).raw(`</a></td>`)
			m.raw(`<td>`).text(row.Level).raw(`</td>`)
			m.raw(`<td>`).text(row.Permissions).raw(`</td>`)
			m.raw(`<td>`).text(row.Assigned).raw(`</td>`)
			m.raw(`<td>`)
			if row.CanManage {
				postButton(m, routepath.RoleDelete(row.ID), T(pc.Loc, "action.delete"))
			}
			m.raw(`</td>`)
			m.raw(`</tr>`)
		}
		m.raw(`</tbody></table></div>`)
		_, err := io.WriteString(w, m.String())
		return err
	})
}

// RolesContent renders the role list section.
func RolesContent(pc PageContext, view RolesPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{
			Title:       T(pc.Loc, "roles.heading"),
			ActionURL:   routepath.RolesCreate,
			ActionLabel: T(pc.Loc, "roles.new"),
		})
		renderFlash(m, view.Message)
		if _, err := io.WriteString(w, m.String()); err != nil {
			return err
		}
		return RolesTable(pc, view).Render(ctx, w)
	})
}

// RolesPage renders the full roles document.
func RolesPage(pc PageContext, view RolesPageView) templ.Component {
	return Layout(pc, "title.roles", RolesContent(pc, view))
}

// RoleFormContent renders the role create/edit form with a permission grid.
func RoleFormContent(pc PageContext, form RoleFormView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		action := routepath.RolesCreate
		titleKey := "roles.new"
		if form.ID != "" {
			action = routepath.Role(form.ID)
			titleKey = "roles.edit"
		}

		m := &markup{}
		renderHeading(m, PageHeading{
			Title: T(pc.Loc, titleKey),
			Breadcrumbs: []Breadcrumb{
				{Label: T(pc.Loc, "nav.roles"), URL: routepath.Roles},
				{Label: T(pc.Loc, titleKey)},
			},
		})

		m.raw(`<form method="post"`).attr("action", action).raw(` class="edit-form">`)
		m.raw(`<label>`).text(T(pc.Loc, "roles.name")).raw(`<input type="text" name="name" required`).attr("value", form.Name).raw(`></label>`)
		m.raw(`<label>`).text(T(pc.Loc, "roles.level")).raw(`<input type="number" name="level" min="0" required`).attr("value", form.Level).raw(`></label>`)

		m.raw(`<table class="permission-grid"><thead><tr>`)
		m.raw(`<th>`).text(T(pc.Loc, "roles.resource")).raw(`</th>`)
		m.raw(`<th>`).text(T(pc.Loc, "roles.access_none")).raw(`</th>`)
		m.raw(`<th>`).text(T(pc.Loc, "roles.access_read")).raw(`</th>`)
		m.raw(`<th>`).text(T(pc.Loc, "roles.access_write")).raw(`</th>`)
		m.raw(`</tr></thead><tbody>`)
		for _, field := range form.Resources {
			name := "perm_" + field.Resource
			m.raw(`<tr><td>`).text(field.Label).raw(`</td>`)
			for _, access := range []string{"", "read", "write"} {
				m.raw(`<td><input type="radio"`).attr("name", name).attr("value", access)
				if field.Access == access {
					m.raw(` checked`)
				}
				m.raw(`></td>`)
			}
			m.raw(`</tr>`)
		}
		m.raw(`</tbody></table>`)

		m.raw(`<button type="submit">`).text(T(pc.Loc, "action.save")).raw(`</button>`)
		m.raw(`</form>`)

		_, err := io.WriteString(w, m.String())
		return err
	})
}

// RoleFormPage renders the full role form document.
func RoleFormPage(pc PageContext, form RoleFormView) templ.Component {
	return Layout(pc, "title.roles", RoleFormContent(pc, form))
}
