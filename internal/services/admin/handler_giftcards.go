package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/chekout/admin/internal/commerce/giftcard"
	"github.com/chekout/admin/internal/commerce/role"
	apperrors "github.com/chekout/admin/internal/platform/errors"
	"github.com/chekout/admin/internal/platform/id"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
)

// HandleGiftCardsPage renders the gift card list with outstanding totals.
func (h *Handler) HandleGiftCardsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceGiftCards); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadGiftCardsView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	view.Message = noticeMessage(loc, r)
	renderPage(w, r,
		templates.GiftCardsContent(pc, view),
		templates.GiftCardsPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.giftcards"))
}

// HandleGiftCardsTable renders just the gift card table for HTMX swaps.
func (h *Handler) HandleGiftCardsTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceGiftCards); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadGiftCardsView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	table := templates.GiftCardsTable(pc, view)
	renderPage(w, r, table, table, htmxLocalizedPageTitle(loc, "title.giftcards"))
}

// HandleGiftCardIssue renders the issue form and mints new cards.
func (h *Handler) HandleGiftCardIssue(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pc := h.pageContext(lang, loc, r)

	if r.Method == http.MethodGet {
		if _, ok := h.requireRead(w, r, lang, role.ResourceGiftCards); !ok {
			return
		}
		form := templates.GiftCardFormView{}
		renderPage(w, r,
			templates.GiftCardFormContent(pc, form),
			templates.GiftCardFormPage(pc, form),
			htmxLocalizedPageTitle(loc, "title.giftcards"))
		return
	}
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceGiftCards); !ok {
		return
	}

	amountCents, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("amount_cents")), 10, 64)
	if err != nil {
		renderError(w, lang, apperrors.New(apperrors.CodeGiftCardInvalidAmount, "gift card amount must be positive"))
		return
	}
	card, err := giftcard.Issue(amountCents, r.PostFormValue("recipient"), r.PostFormValue("message"), h.now())
	if err != nil {
		renderError(w, lang, err)
		return
	}
	cardID, err := id.NewID()
	if err != nil {
		renderError(w, lang, err)
		return
	}
	record := storage.GiftCard{
		ID:          cardID,
		Code:        card.Code,
		AmountCents: card.AmountCents,
		Recipient:   card.Recipient,
		Message:     card.Message,
		IsUsed:      false,
		ExpiresAt:   card.ExpiresAt,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.CreatedAt,
	}
	if err := h.store.CreateGiftCard(r.Context(), record); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.GiftCards, "giftcards.issued", card.Code)
}

// HandleGiftCardDetail renders one card with its redemption history.
func (h *Handler) HandleGiftCardDetail(w http.ResponseWriter, r *http.Request, code string) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceGiftCards); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	if !giftcard.ValidCode(code) {
		renderError(w, lang, apperrors.New(apperrors.CodeGiftCardUnknownCode, "unknown gift card code"))
		return
	}
	card, err := h.store.GetGiftCardByCode(r.Context(), code)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	transactions, err := h.store.ListGiftCardTransactions(r.Context(), card.ID)
	if err != nil {
		renderError(w, lang, err)
		return
	}

	view := templates.GiftCardDetailView{
		Message:   noticeMessage(loc, r),
		Code:      card.Code,
		Amount:    formatCents(card.AmountCents),
		Recipient: card.Recipient,
		Note:      card.Message,
		Used:      card.IsUsed,
		Expired:   !card.ExpiresAt.After(h.now()),
		ExpiresAt: formatDate(card.ExpiresAt),
		CreatedAt: formatDate(card.CreatedAt),
	}
	for _, tx := range transactions {
		view.Transactions = append(view.Transactions, templates.GiftCardTransactionRow{
			OrderID:   tx.OrderID,
			Amount:    formatCents(tx.AmountCents),
			CreatedAt: formatDateTime(tx.CreatedAt),
		})
	}

	renderPage(w, r,
		templates.GiftCardDetailContent(pc, view),
		templates.GiftCardDetailPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.giftcards"))
}

// HandleGiftCardRedeem marks a card used and records the transaction. The
// store rejects a card already marked used, so a double submit cannot record
// two redemptions.
func (h *Handler) HandleGiftCardRedeem(w http.ResponseWriter, r *http.Request, code string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceGiftCards); !ok {
		return
	}

	if !giftcard.ValidCode(code) {
		renderError(w, lang, apperrors.New(apperrors.CodeGiftCardUnknownCode, "unknown gift card code"))
		return
	}
	record, err := h.store.GetGiftCardByCode(r.Context(), code)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	now := h.now().UTC()
	card := giftcard.Card{
		AmountCents: record.AmountCents,
		IsUsed:      record.IsUsed,
		ExpiresAt:   record.ExpiresAt,
	}
	if err := giftcard.CheckRedeemable(card, now); err != nil {
		renderError(w, lang, err)
		return
	}

	txID, err := id.NewID()
	if err != nil {
		renderError(w, lang, err)
		return
	}
	tx := storage.GiftCardTransaction{
		ID:          txID,
		GiftCardID:  record.ID,
		OrderID:     strings.TrimSpace(r.PostFormValue("order_id")),
		AmountCents: record.AmountCents,
		CreatedAt:   now,
	}
	if err := h.store.RedeemGiftCard(r.Context(), record.ID, tx, now); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.GiftCard(code), "giftcards.redeemed")
}

func (h *Handler) loadGiftCardsView(r *http.Request) (templates.GiftCardsPageView, error) {
	records, err := h.store.ListGiftCards(r.Context())
	if err != nil {
		return templates.GiftCardsPageView{}, err
	}

	now := h.now()
	cards := make([]giftcard.Card, 0, len(records))
	rows := make([]templates.GiftCardRow, 0, len(records))
	for _, record := range records {
		cards = append(cards, giftcard.Card{
			AmountCents: record.AmountCents,
			IsUsed:      record.IsUsed,
			ExpiresAt:   record.ExpiresAt,
		})
		rows = append(rows, templates.GiftCardRow{
			Code:      record.Code,
			Amount:    formatCents(record.AmountCents),
			Recipient: record.Recipient,
			Used:      record.IsUsed,
			Expired:   !record.ExpiresAt.After(now),
			ExpiresAt: formatDate(record.ExpiresAt),
		})
	}
	totals := giftcard.Summarize(cards, now)
	return templates.GiftCardsPageView{
		ActiveValue: formatCents(totals.ActiveCents),
		TotalValue:  formatCents(totals.TotalCents),
		Rows:        rows,
	}, nil
}
