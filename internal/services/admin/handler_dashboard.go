package admin

import (
	"context"
	"log"
	"net/http"

	"github.com/chekout/admin/internal/commerce/giftcard"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	"github.com/chekout/admin/internal/services/admin/templates"
)

// HandleDashboard renders the console landing page.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	loc, lang := h.localizer(w, r)
	pc := h.pageContext(lang, loc, r)
	view := h.loadDashboard(r.Context())
	renderPage(w, r,
		templates.DashboardContent(pc, view),
		templates.DashboardPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.dashboard"))
}

// HandleDashboardContent renders the stat grid for HTMX refreshes.
func (h *Handler) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pc := h.pageContext(lang, loc, r)
	view := h.loadDashboard(r.Context())
	renderPage(w, r,
		templates.DashboardContent(pc, view),
		templates.DashboardPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.dashboard"))
}

func (h *Handler) loadDashboard(ctx context.Context) templates.DashboardView {
	var view templates.DashboardView

	products, err := h.store.CountProducts(ctx)
	if err != nil {
		log.Printf("count products: %v", err)
	}
	users, err := h.store.CountUsers(ctx)
	if err != nil {
		log.Printf("count users: %v", err)
	}
	orders, err := h.store.CountOrders(ctx)
	if err != nil {
		log.Printf("count orders: %v", err)
	}
	revenue, err := h.store.SumOrderRevenue(ctx)
	if err != nil {
		log.Printf("sum order revenue: %v", err)
	}

	view.ProductCount = products
	view.UserCount = users
	view.OrderCount = orders
	view.Revenue = formatCents(revenue)

	cards, err := h.store.ListGiftCards(ctx)
	if err != nil {
		log.Printf("list gift cards: %v", err)
	}
	domainCards := make([]giftcard.Card, 0, len(cards))
	for _, card := range cards {
		domainCards = append(domainCards, giftcard.Card{
			AmountCents: card.AmountCents,
			IsUsed:      card.IsUsed,
			ExpiresAt:   card.ExpiresAt,
		})
	}
	totals := giftcard.Summarize(domainCards, h.now())
	view.GiftCardsActive = formatCents(totals.ActiveCents)
	view.GiftCardsTotal = formatCents(totals.TotalCents)
	return view
}
