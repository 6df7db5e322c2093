package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/chekout/admin/internal/services/admin/routepath"
)

// GiftCardsPageView provides data for the gift cards page.
type GiftCardsPageView struct {
	Message     string
	ActiveValue string
	TotalValue  string
	Rows        []GiftCardRow
}

// GiftCardRow represents a row in the gift cards table.
type GiftCardRow struct {
	Code      string
	Amount    string
	Recipient string
	Used      bool
	Expired   bool
	ExpiresAt string
}

// GiftCardFormView carries the issue form state.
type GiftCardFormView struct {
	Amount    string
	Recipient string
	Message   string
}

// GiftCardDetailView provides data for one card and its redemptions.
type GiftCardDetailView struct {
	Message      string
	Code         string
	Amount       string
	Recipient    string
	Note         string
	Used         bool
	Expired      bool
	ExpiresAt    string
	CreatedAt    string
	Transactions []GiftCardTransactionRow
}

// GiftCardTransactionRow is one redemption row.
type GiftCardTransactionRow struct {
	OrderID   string
	Amount    string
	CreatedAt string
}

// GiftCardsTable renders just the gift card table for HTMX swaps.
func GiftCardsTable(pc PageContext, view GiftCardsPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		m.raw(`<div id="gift-cards-table">`)
		m.raw(`<table><thead><tr>`)
		for _, key := range []string{"giftcards.code", "giftcards.amount", "giftcards.recipient", "giftcards.state", "giftcards.expires"} {
			m.raw(`<th>`).text(T(pc.Loc, key)).raw(`</th>`)
		}
		m.raw(`</tr></thead><tbody>`)
		if len(view.Rows) == 0 {
			m.raw(`<tr><td colspan="5" class="empty">`).text(T(pc.Loc, "giftcards.empty")).raw(`</td></tr>`)
		}
		for _, row := range view.Rows {
			m.raw(`<tr>`)
			m.raw(`<td><a`).attr("href", routepath.GiftCard(row.Code)).raw(`><code>`).text(row.Code).raw(`</code></a></td>`)
			m.raw(`<td>`).text(row.Amount).raw(`</td>`)
			m.raw(`<td>`).text(row.Recipient).raw(`</td>`)
			m.raw(`<td>`).text(giftCardStateLabel(pc.Loc, row)).raw(`</td>`)
			m.raw(`<td>`).text(row.ExpiresAt).raw(`</td>`)
			m.raw(`</tr>`)
		}
		m.raw(`</tbody></table></div>`)
		_, err := io.WriteString(w, m.String())
		return err
	})
}

func giftCardStateLabel(loc Localizer, row GiftCardRow) string {
	switch {
	case row.Used:
		return T(loc, "giftcards.state_used")
	case row.Expired:
		return T(loc, "giftcards.state_expired")
	default:
		return T(loc, "giftcards.state_active")
	}
}

// GiftCardsContent renders the gift card page section.
func GiftCardsContent(pc PageContext, view GiftCardsPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{
			Title:       T(pc.Loc, "giftcards.heading"),
			ActionURL:   routepath.GiftCardsCreate,
			ActionLabel: T(pc.Loc, "giftcards.new"),
		})
		renderFlash(m, view.Message)

		m.raw(`<section class="stat-grid">`)
		m.raw(`<div class="stat-card"><span class="stat-value">`).text(view.ActiveValue).raw(`</span><span class="stat-label">`).
			text(T(pc.Loc, "giftcards.summary_active")).raw(`</span></div>`)
		m.raw(`<div class="stat-card"><span class="stat-value">`).text(view.TotalValue).raw(`</span><span class="stat-label">`).
			text(T(pc.Loc, "giftcards.summary_total")).raw(`</span></div>`)
		m.raw(`</section>`)

		if _, err := io.WriteString(w, m.String()); err != nil {
			return err
		}
		return GiftCardsTable(pc, view).Render(ctx, w)
	})
}

// GiftCardsPage renders the full gift cards document.
func GiftCardsPage(pc PageContext, view GiftCardsPageView) templ.Component {
	return Layout(pc, "title.giftcards", GiftCardsContent(pc, view))
}

// GiftCardFormContent renders the issue form.
func GiftCardFormContent(pc PageContext, form GiftCardFormView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{
			Title: T(pc.Loc, "giftcards.new"),
			Breadcrumbs: []Breadcrumb{
				{Label: T(pc.Loc, "nav.gift_cards"), URL: routepath.GiftCards},
				{Label: T(pc.Loc, "giftcards.new")},
			},
		})

		m.raw(`<form method="post"`).attr("action", routepath.GiftCardsCreate).raw(` class="edit-form">`)
		m.raw(`<label>`).text(T(pc.Loc, "giftcards.amount_cents")).raw(`<input type="number" name="amount_cents" min="1" required`).attr("value", form.Amount).raw(`></label>`)
		m.raw(`<label>`).text(T(pc.Loc, "giftcards.recipient")).raw(`<input type="email" name="recipient" required`).attr("value", form.Recipient).raw(`></label>`)
		m.raw(`<label>`).text(T(pc.Loc, "giftcards.message")).raw(`<textarea name="message">`).text(form.Message).raw(`</textarea></label>`)
		m.raw(`<button type="submit">`).text(T(pc.Loc, "giftcards.issue")).raw(`</button>`)
		m.raw(`</form>`)

		_, err := io.WriteString(w, m.String())
		return err
	})
}

// GiftCardFormPage renders the full issue form document.
func GiftCardFormPage(pc PageContext, form GiftCardFormView) templ.Component {
	return Layout(pc, "title.giftcards", GiftCardFormContent(pc, form))
}

// GiftCardDetailContent renders one gift card and its redemption history.
func GiftCardDetailContent(pc PageContext, view GiftCardDetailView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{
			Title: view.Code,
			Breadcrumbs: []Breadcrumb{
				{Label: T(pc.Loc, "nav.gift_cards"), URL: routepath.GiftCards},
				{Label: view.Code},
			},
		})
		renderFlash(m, view.Message)

		m.raw(`<dl class="gift-card-detail">`)
		m.raw(`<dt>`).text(T(pc.Loc, "giftcards.amount")).raw(`</dt><dd>`).text(view.Amount).raw(`</dd>`)
		m.raw(`<dt>`).text(T(pc.Loc, "giftcards.recipient")).raw(`</dt><dd>`).text(view.Recipient).raw(`</dd>`)
		if view.Note != "" {
			m.raw(`<dt>`).text(T(pc.Loc, "giftcards.message")).raw(`</dt><dd>`).text(view.Note).raw(`</dd>`)
		}
		m.raw(`<dt>`).text(T(pc.Loc, "giftcards.expires")).raw(`</dt><dd>`).text(view.ExpiresAt).raw(`</dd>`)
		m.raw(`<dt>`).text(T(pc.Loc, "giftcards.created")).raw(`</dt><dd>`).text(view.CreatedAt).raw(`</dd>`)
		m.raw(`</dl>`)

		if !view.Used && !view.Expired {
			m.raw(`<form method="post"`).attr("action", routepath.GiftCardRedeem(view.Code)).raw(` class="inline">`)
			m.raw(`<label>`).text(T(pc.Loc, "giftcards.order")).raw(`<input type="text" name="order_id"></label>`)
			m.raw(`<button type="submit">`).text(T(pc.Loc, "giftcards.redeem")).raw(`</button>`)
			m.raw(`</form>`)
		}

		m.raw(`<h2>`).text(T(pc.Loc, "giftcards.transactions")).raw(`</h2>`)
		if len(view.Transactions) == 0 {
			m.raw(`<p class="empty">`).text(T(pc.Loc, "giftcards.no_transactions")).raw(`</p>`)
		} else {
			m.raw(`<table><thead><tr><th>`).text(T(pc.Loc, "giftcards.order")).raw(`</th><th>`).
				text(T(pc.Loc, "giftcards.amount")).raw(`</th><th>`).
				text(T(pc.Loc, "giftcards.redeemed_at")).raw(`</th></tr></thead><tbody>`)
			for _, tx := range view.Transactions {
				m.raw(`<tr><td>`).text(tx.OrderID).raw(`</td><td>`).text(tx.Amount).raw(`</td><td>`).text(tx.CreatedAt).raw(`</td></tr>`)
			}
			m.raw(`</tbody></table>`)
		}

		_, err := io.WriteString(w, m.String())
		return err
	})
}

// GiftCardDetailPage renders the full gift card detail document.
func GiftCardDetailPage(pc PageContext, view GiftCardDetailView) templ.Component {
	return Layout(pc, "title.giftcards", GiftCardDetailContent(pc, view))
}
