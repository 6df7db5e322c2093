package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/chekout/admin/internal/commerce/role"
	"github.com/chekout/admin/internal/services/admin/filter"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
)

// HandleOrdersPage renders the read-only order list.
func (h *Handler) HandleOrdersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceOrders); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadOrdersView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	renderPage(w, r,
		templates.OrdersContent(pc, view),
		templates.OrdersPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.orders"))
}

// HandleOrdersTable renders just the order table for HTMX swaps.
func (h *Handler) HandleOrdersTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceOrders); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadOrdersView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	table := templates.OrdersTable(pc, view)
	renderPage(w, r, table, table, htmxLocalizedPageTitle(loc, "title.orders"))
}

// HandleOrderDetail renders one order summary.
func (h *Handler) HandleOrderDetail(w http.ResponseWriter, r *http.Request, orderID string) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceOrders); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	order, err := h.store.GetOrder(r.Context(), orderID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	view := templates.OrderDetailView{
		ID:        order.ID,
		UserID:    order.UserID,
		Total:     formatCents(order.TotalCents),
		Status:    order.Status,
		CreatedAt: formatDateTime(order.CreatedAt),
	}
	user, err := h.store.GetUser(r.Context(), order.UserID)
	if err == nil {
		view.UserEmail = user.Email
	} else if !errors.Is(err, storage.ErrNotFound) {
		renderError(w, lang, err)
		return
	}

	renderPage(w, r,
		templates.OrderDetailContent(pc, view),
		templates.OrderDetailPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.orders"))
}

func (h *Handler) loadOrdersView(r *http.Request) (templates.OrdersPageView, error) {
	query := r.URL.Query()
	filterStr := strings.TrimSpace(query.Get("filter"))
	listFilter, err := filter.ParseOrderFilter(filterStr)
	if err != nil {
		return templates.OrdersPageView{}, err
	}

	page, err := h.store.ListOrders(r.Context(), listFilter, pageFromQuery(query))
	if err != nil {
		return templates.OrdersPageView{}, err
	}
	rows := make([]templates.OrderRow, 0, len(page.Orders))
	var revenueCents int64
	for _, order := range page.Orders {
		revenueCents += order.TotalCents
		rows = append(rows, templates.OrderRow{
			ID:        order.ID,
			UserID:    order.UserID,
			Total:     formatCents(order.TotalCents),
			Status:    order.Status,
			CreatedAt: formatDateTime(order.CreatedAt),
		})
	}
	return templates.OrdersPageView{
		Filter:        filterStr,
		Revenue:       formatCents(revenueCents),
		Rows:          rows,
		NextPageToken: page.NextPageToken,
	}, nil
}
