package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/chekout/admin/internal/services/admin/routepath"
)

// CategoriesPageView provides data for the categories page.
type CategoriesPageView struct {
	Message string
	Rows    []CategoryTreeRow
}

// CategoryTreeRow is one category rendered at its tree depth.
type CategoryTreeRow struct {
	ID        string
	Name      string
	Slug      string
	Depth     int
	Active    bool
	UpdatedAt string
	// ParentOptions lists valid move targets for this row.
	ParentOptions []CategoryOption
}

// CategoriesTree renders the indented category tree for HTMX swaps.
func CategoriesTree(pc PageContext, view CategoriesPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		m.raw(`<div id="categories-tree">`)
		m.raw(`<table><thead><tr>`)
		for _, key := range []string{"categories.name", "categories.slug", "categories.status", "categories.updated", "categories.actions"} {
			m.raw(`<th>`).text(T(pc.Loc, key)).raw(`</th>`)
		}
		m.raw(`</tr></thead><tbody>`)
		if len(view.Rows) == 0 {
			m.raw(`<tr><td colspan="5" class="empty">`).text(T(pc.Loc, "categories.empty")).raw(`</td></tr>`)
		}
		for _, row := range view.Rows {
			m.raw(`<tr>`)
			m.raw(`<td>`)
			if row.Depth > 0 {
				m.raw(`<span class="indent">`).text(strings.Repeat("— ", row.Depth)).raw(`</span>`)
			}
			m.raw(`<a`).attr("href", routepath.Category(row.ID)).raw(`>`).text(row.Name).raw(`</a></td>`)
			m.raw(`<td>`).text(row.Slug).raw(`</td>`)
			m.raw(`<td>`).text(statusLabel(pc.Loc, row.Active)).raw(`</td>`)
			m.raw(`<td>`).text(row.UpdatedAt).raw(`</td>`)
			m.raw(`<td>`)
			postButton(m, routepath.CategoryToggle(row.ID), T(pc.Loc, "action.toggle"))
			renderMoveForm(m, pc, row)
			postButton(m, routepath.CategoryDelete(row.ID), T(pc.Loc, "action.delete"))
			m.raw(`</td>`)
			m.raw(`</tr>`)
		}
		m.raw(`</tbody></table></div>`)
		_, err := io.WriteString(w, m.String())
		return err
	})
}

func renderMoveForm(m *markup, pc PageContext, row CategoryTreeRow) {
	m.raw(`<form method="post"`).attr("action", routepath.CategoryMove(row.ID)).raw(` class="inline">`)
	m.raw(`<select name="parent_id">`)
	m.raw(`<option value="">`).text(T(pc.Loc, "categories.root")).raw(`</option>`)
	for _, option := range row.ParentOptions {
		m.raw(`<option`).attr("value", option.ID).raw(`>`).text(option.Label).raw(`</option>`)
	}
	m.raw(`</select>`)
	m.raw(`<button type="submit">`).text(T(pc.Loc, "categories.move")).raw(`</button>`)
	m.raw(`</form>`)
}

// CategoriesContent renders the category page section.
func CategoriesContent(pc PageContext, view CategoriesPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{
			Title:       T(pc.Loc, "categories.heading"),
			ActionURL:   routepath.CategoriesCreate,
			ActionLabel: T(pc.Loc, "categories.new"),
		})
		renderFlash(m, view.Message)
		if _, err := io.WriteString(w, m.String()); err != nil {
			return err
		}
		return CategoriesTree(pc, view).Render(ctx, w)
	})
}

// CategoriesPage renders the full categories document.
func CategoriesPage(pc PageContext, view CategoriesPageView) templ.Component {
	return Layout(pc, "title.categories", CategoriesContent(pc, view))
}

// CategoryFormView carries the create/rename form state.
type CategoryFormView struct {
	ID        string
	Name      string
	Slug      string
	ParentID  string
	SortOrder int
	Parents   []CategoryOption
}

// CategoryFormContent renders the category create/rename form.
func CategoryFormContent(pc PageContext, form CategoryFormView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		action := routepath.CategoriesCreate
		titleKey := "categories.new"
		if form.ID != "" {
			action = routepath.Category(form.ID)
			titleKey = "categories.edit"
		}

		m := &markup{}
		renderHeading(m, PageHeading{
			Title: T(pc.Loc, titleKey),
			Breadcrumbs: []Breadcrumb{
				{Label: T(pc.Loc, "nav.categories"), URL: routepath.Categories},
				{Label: T(pc.Loc, titleKey)},
			},
		})

		m.raw(`<form method="post"`).attr("action", action).raw(` class="edit-form">`)
		m.raw(`<label>`).text(T(pc.Loc, "categories.name")).raw(`<input type="text" name="name" required`).attr("value", form.Name).raw(`></label>`)
		m.raw(`<label>`).text(T(pc.Loc, "categories.slug")).raw(`<input type="text" name="slug" required`).attr("value", form.Slug).raw(`></label>`)
		if form.ID == "" {
			m.raw(`<label>`).text(T(pc.Loc, "categories.parent")).raw(`<select name="parent_id">`)
			m.raw(`<option value="">`).text(T(pc.Loc, "categories.root")).raw(`</option>`)
			for _, option := range form.Parents {
				m.raw(`<option`).attr("value", option.ID)
				if option.ID == form.ParentID {
					m.raw(` selected`)
				}
				m.raw(`>`).text(option.Label).raw(`</option>`)
			}
			m.raw(`</select></label>`)
			m.raw(`<label>`).text(T(pc.Loc, "categories.sort_order")).raw(`<input type="number" name="sort_order"`).attr("value", strconv.Itoa(form.SortOrder)).raw(`></label>`)
		}
		m.raw(`<button type="submit">`).text(T(pc.Loc, "action.save")).raw(`</button>`)
		m.raw(`</form>`)

		_, err := io.WriteString(w, m.String())
		return err
	})
}

// CategoryFormPage renders the full category form document.
func CategoryFormPage(pc PageContext, form CategoryFormView) templ.Component {
	return Layout(pc, "title.categories", CategoryFormContent(pc, form))
}
