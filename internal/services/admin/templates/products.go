package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/chekout/admin/internal/services/admin/routepath"
)

// ProductsPageView provides data for the products page.
type ProductsPageView struct {
	Message       string
	Filter        string
	Rows          []ProductRow
	NextPageToken string
	Form          *ProductFormView
}

// ProductRow represents a row in the products table.
type ProductRow struct {
	ID        string
	Name      string
	Price     string
	Category  string
	Stock     string
	Active    bool
	UpdatedAt string
}

// ProductFormView carries the create/edit form state.
type ProductFormView struct {
	ID         string
	Name       string
	PriceCents string
	CategoryID string
	Stock      string
	Active     bool
	Categories []CategoryOption
}

// CategoryOption is one entry in the category selector.
type CategoryOption struct {
	ID    string
	Label string
}

// ProductsTable renders just the product table for HTMX swaps.
func ProductsTable(pc PageContext, view ProductsPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		m.raw(`<div id="products-table">`)
		m.raw(`<table><thead><tr>`)
		for _, key := range []string{"products.name", "products.price", "products.category", "products.stock", "products.status", "products.actions"} {
			m.raw(`<th>`).text(T(pc.Loc, key)).raw(`</th>`)
		}
		m.raw(`</tr></thead><tbody>`)
		if len(view.Rows) == 0 {
			m.raw(`<tr><td colspan="6" class="empty">`).text(T(pc.Loc, "products.empty")).raw(`</td></tr>`)
		}
		for _, row := range view.Rows {
			m.raw(`<tr>`)
			m.raw(`<td><a`).attr("href", routepath.Product(row.ID)).raw(`>`).text(row.Name).raw(`</a></td>`)
			m.raw(`<td>`).text(row.Price).raw(`</td>`)
			m.raw(`<td>`).text(row.Category).raw(`</td>`)
			m.raw(`<td>`).text(row.Stock).raw(`</td>`)
			m.raw(`<td>`).text(statusLabel(pc.Loc, row.Active)).raw(`</td>`)
			m.raw(`<td>`)
			postButton(m, routepath.ProductToggle(row.ID), T(pc.Loc, "action.toggle"))
			postButton(m, routepath.ProductDelete(row.ID), T(pc.Loc, "action.delete"))
			m.raw(`</td>`)
			m.raw(`</tr>`)
		}
		m.raw(`</tbody></table>`)
		if view.NextPageToken != "" {
			nextURL := AppendQueryParam(routepath.Products, "page_token", view.NextPageToken)
			if view.Filter != "" {
				nextURL = AppendQueryParam(nextURL, "filter", view.Filter)
			}
			m.raw(`<a class="pagination-next"`).attr("href", nextURL).raw(`>`).text(T(pc.Loc, "pagination.next")).raw(`</a>`)
		}
		m.raw(`</div>`)
		_, err := io.WriteString(w, m.String())
		return err
	})
}

// ProductsContent renders the full product list section.
func ProductsContent(pc PageContext, view ProductsPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{
			Title:       T(pc.Loc, "products.heading"),
			ActionURL:   routepath.ProductsCreate,
			ActionLabel: T(pc.Loc, "products.new"),
		})
		renderFlash(m, view.Message)

		m.raw(`<form method="get"`).attr("action", routepath.Products).raw(` class="filter">`)
		m.raw(`<input type="text" name="filter"`).attr("value", view.Filter).
			attr("placeholder", T(pc.Loc, "products.filter")).raw(`>`)
		m.raw(`<button type="submit">`).text(T(pc.Loc, "action.apply")).raw(`</button>`)
		m.raw(`</form>`)

		if _, err := io.WriteString(w, m.String()); err != nil {
			return err
		}
		return ProductsTable(pc, view).Render(ctx, w)
	})
}

// ProductsPage renders the full products document.
func ProductsPage(pc PageContext, view ProductsPageView) templ.Component {
	return Layout(pc, "title.products", ProductsContent(pc, view))
}

// ProductFormContent renders the product create/edit form.
func ProductFormContent(pc PageContext, form ProductFormView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		action := routepath.ProductsCreate
		titleKey := "products.new"
		if form.ID != "" {
			action = routepath.Product(form.ID)
			titleKey = "products.edit"
		}

		m := &markup{}
		renderHeading(m, PageHeading{
			Title: T(pc.Loc, titleKey),
			Breadcrumbs: []Breadcrumb{
				{Label: T(pc.Loc, "nav.products"), URL: routepath.Products},
				{Label: T(pc.Loc, titleKey)},
			},
		})

		m.raw(`<form method="post"`).attr("action", action).raw(` class="edit-form">`)
		m.raw(`<label>`).text(T(pc.Loc, "products.name")).raw(`<input type="text" name="name" required`).attr("value", form.Name).raw(`></label>`)
		m.raw(`<label>`).text(T(pc.Loc, "products.price_cents")).raw(`<input type="number" name="price_cents" min="0" required`).attr("value", form.PriceCents).raw(`></label>`)
		m.raw(`<label>`).text(T(pc.Loc, "products.stock")).raw(`<input type="number" name="stock" min="0"`).attr("value", form.Stock).raw(`></label>`)
		m.raw(`<label>`).text(T(pc.Loc, "products.category")).raw(`<select name="category_id">`)
		m.raw(`<option value="">`).text(T(pc.Loc, "products.no_category")).raw(`</option>`)
		for _, option := range form.Categories {
			m.raw(`<option`).attr("value", option.ID)
			if option.ID == form.CategoryID {
				m.raw(` selected`)
			}
			m.raw(`>`).text(option.Label).raw(`</option>`)
		}
		m.raw(`</select></label>`)
		m.raw(`<label class="checkbox"><input type="checkbox" name="is_active" value="true"`)
		if form.Active {
			m.raw(` checked`)
		}
		m.raw(`>`).text(T(pc.Loc, "products.active")).raw(`</label>`)
		m.raw(`<button type="submit">`).text(T(pc.Loc, "action.save")).raw(`</button>`)
		m.raw(`</form>`)

		_, err := io.WriteString(w, m.String())
		return err
	})
}

// ProductFormPage renders the full product form document.
func ProductFormPage(pc PageContext, form ProductFormView) templ.Component {
	return Layout(pc, "title.products", ProductFormContent(pc, form))
}

func statusLabel(loc Localizer, active bool) string {
	if active {
		return T(loc, "status.active")
	}
	return T(loc, "status.inactive")
}
