package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/chekout/admin/internal/services/admin/routepath"
)

// DashboardView provides data for the dashboard page.
type DashboardView struct {
	ProductCount    int
	UserCount       int
	OrderCount      int
	Revenue         string
	GiftCardsActive string
	GiftCardsTotal  string
}

type dashboardStat struct {
	labelKey string
	value    string
	url      string
}

// DashboardContent renders the dashboard stat cards.
func DashboardContent(pc PageContext, view DashboardView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		// The change feed script dispatches chekout:change on the body, which
		// makes HTMX re-fetch this whole block.
		m.raw(`<div id="dashboard-content"`).
			attr("hx-get", routepath.DashboardContent).
			attr("hx-trigger", "chekout:change from:body").
			attr("hx-swap", "outerHTML").
			raw(`>`)
		renderHeading(m, PageHeading{Title: T(pc.Loc, "dashboard.heading")})

		stats := []dashboardStat{
			{"dashboard.products", formatCount(view.ProductCount), routepath.Products},
			{"dashboard.users", formatCount(view.UserCount), routepath.Users},
			{"dashboard.orders", formatCount(view.OrderCount), routepath.Orders},
			{"dashboard.revenue", view.Revenue, routepath.Orders},
			{"dashboard.gift_cards_active", view.GiftCardsActive, routepath.GiftCards},
			{"dashboard.gift_cards_total", view.GiftCardsTotal, routepath.GiftCards},
		}

		m.raw(`<section class="stat-grid">`)
		for _, stat := range stats {
			m.raw(`<a class="stat-card"`).attr("href", stat.url).raw(`>`)
			m.raw(`<span class="stat-value">`).text(stat.value).raw(`</span>`)
			m.raw(`<span class="stat-label">`).text(T(pc.Loc, stat.labelKey)).raw(`</span>`)
			m.raw(`</a>`)
		}
		m.raw(`</section>`)
		m.raw(`<div`).attr("data-watch-endpoint", routepath.Watch).raw(`></div>`)
		m.raw(`</div>`)

		_, err := io.WriteString(w, m.String())
		return err
	})
}

// DashboardPage renders the full dashboard document.
func DashboardPage(pc PageContext, view DashboardView) templ.Component {
	return Layout(pc, "title.dashboard", DashboardContent(pc, view))
}
