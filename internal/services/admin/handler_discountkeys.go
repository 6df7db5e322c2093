package admin

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/chekout/admin/internal/commerce/discount"
	"github.com/chekout/admin/internal/commerce/role"
	apperrors "github.com/chekout/admin/internal/platform/errors"
	"github.com/chekout/admin/internal/platform/id"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
)

// HandleDiscountKeysPage renders the key list and generate form.
func (h *Handler) HandleDiscountKeysPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceDiscountKeys); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadDiscountKeysView(r, loc)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	view.Message = noticeMessage(loc, r)
	renderPage(w, r,
		templates.DiscountKeysContent(pc, view),
		templates.DiscountKeysPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.discountkeys"))
}

// HandleDiscountKeysTable renders just the key table for HTMX swaps.
func (h *Handler) HandleDiscountKeysTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceDiscountKeys); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadDiscountKeysView(r, loc)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	table := templates.DiscountKeysTable(pc, view)
	renderPage(w, r, table, table, htmxLocalizedPageTitle(loc, "title.discountkeys"))
}

// HandleDiscountKeyGenerate mints a batch of keys of one tier.
func (h *Handler) HandleDiscountKeyGenerate(w http.ResponseWriter, r *http.Request) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceDiscountKeys); !ok {
		return
	}

	tier, err := discount.ParseTier(r.PostFormValue("tier"))
	if err != nil {
		renderError(w, lang, err)
		return
	}
	count, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("count")))
	if err != nil {
		renderError(w, lang, apperrors.WithMetadata(apperrors.CodeDiscountInvalidCount, "invalid key count",
			map[string]string{"Max": strconv.Itoa(discount.MaxBatchSize)}))
		return
	}
	keys, err := discount.Generate(tier, count, h.now())
	if err != nil {
		renderError(w, lang, err)
		return
	}

	records := make([]storage.DiscountKey, 0, len(keys))
	for _, key := range keys {
		keyID, err := id.NewID()
		if err != nil {
			renderError(w, lang, err)
			return
		}
		records = append(records, storage.DiscountKey{
			ID:        keyID,
			Code:      key.Code,
			Tier:      key.Tier,
			Percent:   key.Percent,
			CreatedAt: key.CreatedAt,
		})
	}
	if err := h.store.InsertDiscountKeys(r.Context(), records); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.DiscountKeys, "discountkeys.generated", strconv.Itoa(len(records)))
}

// HandleDiscountKeyCheck reports whether a typed code is still usable. The
// result renders inline on the keys page rather than as an error response so
// an operator can check codes in a row.
func (h *Handler) HandleDiscountKeyCheck(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceDiscountKeys); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadDiscountKeysView(r, loc)
	if err != nil {
		renderError(w, lang, err)
		return
	}

	code := strings.TrimSpace(r.URL.Query().Get("code"))
	view.CheckCode = code
	view.CheckResult = h.checkDiscountCode(r, loc, code)
	renderPage(w, r,
		templates.DiscountKeysContent(pc, view),
		templates.DiscountKeysPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.discountkeys"))
}

func (h *Handler) checkDiscountCode(r *http.Request, loc *message.Printer, code string) string {
	if !discount.ValidCode(code) {
		return loc.Sprintf("discountkeys.check_unknown")
	}
	record, err := h.store.GetDiscountKeyByCode(r.Context(), code)
	if err != nil {
		return loc.Sprintf("discountkeys.check_unknown")
	}
	key := discount.Key{
		UsedBy:    record.UsedBy,
		UsedAt:    record.UsedAt,
		RevokedAt: record.RevokedAt,
	}
	switch checkErr := discount.CheckUsable(key); {
	case checkErr == nil:
		return loc.Sprintf("discountkeys.check_valid", loc.Sprintf("tier."+string(record.Tier)), record.Percent)
	case apperrors.CodeOf(checkErr) == apperrors.CodeDiscountKeyRevoked:
		return loc.Sprintf("discountkeys.check_revoked")
	default:
		return loc.Sprintf("discountkeys.check_used")
	}
}

// HandleDiscountKeyRevoke permanently retires an unused key.
func (h *Handler) HandleDiscountKeyRevoke(w http.ResponseWriter, r *http.Request, keyID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceDiscountKeys); !ok {
		return
	}
	if err := h.store.RevokeDiscountKey(r.Context(), keyID, h.now().UTC()); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.DiscountKeys, "discountkeys.revoked")
}

func (h *Handler) loadDiscountKeysView(r *http.Request, loc *message.Printer) (templates.DiscountKeysPageView, error) {
	records, err := h.store.ListDiscountKeys(r.Context())
	if err != nil {
		return templates.DiscountKeysPageView{}, err
	}

	tiers := make([]templates.TierOption, 0, len(discount.Tiers()))
	for _, tier := range discount.Tiers() {
		tiers = append(tiers, templates.TierOption{
			Value:   string(tier),
			Label:   loc.Sprintf("tier." + string(tier)),
			Percent: strconv.Itoa(tier.Percent()) + "%",
		})
	}

	rows := make([]templates.DiscountKeyRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, templates.DiscountKeyRow{
			ID:        record.ID,
			Code:      record.Code,
			Tier:      loc.Sprintf("tier." + string(record.Tier)),
			Percent:   strconv.Itoa(record.Percent) + "%",
			Used:      record.UsedBy != "" || !record.UsedAt.IsZero(),
			Revoked:   !record.RevokedAt.IsZero(),
			UsedBy:    record.UsedBy,
			CreatedAt: formatDateTime(record.CreatedAt),
		})
	}
	return templates.DiscountKeysPageView{Tiers: tiers, Rows: rows}, nil
}
