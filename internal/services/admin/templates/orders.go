package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/chekout/admin/internal/services/admin/routepath"
)

// OrdersPageView provides data for the orders page.
type OrdersPageView struct {
	Message       string
	Filter        string
	Revenue       string
	Rows          []OrderRow
	NextPageToken string
}

// OrderRow represents a row in the orders table.
type OrderRow struct {
	ID        string
	UserID    string
	Total     string
	Status    string
	CreatedAt string
}

// OrderDetailView provides data for the order detail page.
type OrderDetailView struct {
	ID        string
	UserID    string
	UserEmail string
	Total     string
	Status    string
	CreatedAt string
}

// OrdersTable renders just the order table for HTMX swaps. The change feed
// script dispatches chekout:change on the body, which makes HTMX re-fetch the
// whole block with the current filter applied.
func OrdersTable(pc PageContext, view OrdersPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		refreshURL := routepath.OrdersTable
		if view.Filter != "" {
			refreshURL = AppendQueryParam(refreshURL, "filter", view.Filter)
		}
		m := &markup{}
		m.raw(`<div id="orders-table"`).
			attr("hx-get", refreshURL).
			attr("hx-trigger", "chekout:change from:body").
			attr("hx-swap", "outerHTML").
			raw(`>`)
		m.raw(`<p class="revenue">`).text(T(pc.Loc, "orders.revenue", view.Revenue)).raw(`</p>`)
		m.raw(`<table><thead><tr>`)
		for _, key := range []string{"orders.id", "orders.user", "orders.total", "orders.status", "orders.date"} {
			m.raw(`<th>`).text(T(pc.Loc, key)).raw(`</th>`)
		}
		m.raw(`</tr></thead><tbody>`)
		if len(view.Rows) == 0 {
			m.raw(`<tr><td colspan="5" class="empty">`).text(T(pc.Loc, "orders.empty")).raw(`</td></tr>`)
		}
		for _, row := range view.Rows {
			m.raw(`<tr>`)
			m.raw(`<td><a`).attr("href", routepath.OrderDetail(row.ID)).raw(`>`).text(row.ID).raw(`</a></td>`)
			m.raw(`<td>`).text(row.UserID).raw(`</td>`)
			m.raw(`<td>`).text(row.Total).raw(`</td>`)
			m.raw(`<td>`).text(row.Status).raw(`</td>`)
			m.raw(`<td>`).text(row.CreatedAt).raw(`</td>`)
			m.raw(`</tr>`)
		}
		m.raw(`</tbody></table>`)
		if view.NextPageToken != "" {
			nextURL := AppendQueryParam(routepath.Orders, "page_token", view.NextPageToken)
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

// OrdersContent renders the order list section.
func OrdersContent(pc PageContext, view OrdersPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{Title: T(pc.Loc, "orders.heading")})
		renderFlash(m, view.Message)

		m.raw(`<form method="get"`).attr("action", routepath.Orders).raw(` class="filter">`)
		m.raw(`<input type="text" name="filter"`).attr("value", view.Filter).
			attr("placeholder", T(pc.Loc, "orders.filter")).raw(`>`)
		m.raw(`<button type="submit">`).text(T(pc.Loc, "action.apply")).raw(`</button>`)
		m.raw(`</form>`)

		m.raw(`<div`).attr("data-watch-endpoint", routepath.Watch).raw(`></div>`)

		if _, err := io.WriteString(w, m.String()); err != nil {
			return err
		}
		return OrdersTable(pc, view).Render(ctx, w)
	})
}

// OrdersPage renders the full orders document.
func OrdersPage(pc PageContext, view OrdersPageView) templ.Component {
	return Layout(pc, "title.orders", OrdersContent(pc, view))
}

// OrderDetailContent renders one order summary.
func OrderDetailContent(pc PageContext, view OrderDetailView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{
			Title: T(pc.Loc, "orders.detail_heading", view.ID),
			Breadcrumbs: []Breadcrumb{
				{Label: T(pc.Loc, "nav.orders"), URL: routepath.Orders},
				{Label: view.ID},
			},
		})
		m.raw(`<dl class="order-detail">`)
		m.raw(`<dt>`).text(T(pc.Loc, "orders.user")).raw(`</dt><dd>`)
		if view.UserEmail != "" {
			m.raw(`<a`).attr("href", routepath.UserDetail(view.UserID)).raw(`>`).text(view.UserEmail).raw(`</a>`)
		} else {
			m.text(view.UserID)
		}
		m.raw(`</dd>`)
		m.raw(`<dt>`).text(T(pc.Loc, "orders.total")).raw(`</dt><dd>`).text(view.Total).raw(`</dd>`)
		m.raw(`<dt>`).text(T(pc.Loc, "orders.status")).raw(`</dt><dd>`).text(view.Status).raw(`</dd>`)
		m.raw(`<dt>`).text(T(pc.Loc, "orders.date")).raw(`</dt><dd>`).text(view.CreatedAt).raw(`</dd>`)
		m.raw(`</dl>`)
		_, err := io.WriteString(w, m.String())
		return err
	})
}

// OrderDetailPage renders the full order detail document.
func OrderDetailPage(pc PageContext, view OrderDetailView) templ.Component {
	return Layout(pc, "title.orders", OrderDetailContent(pc, view))
}
