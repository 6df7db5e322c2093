package admin

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/chekout/admin/internal/commerce/role"
	apperrors "github.com/chekout/admin/internal/platform/errors"
	errcat "github.com/chekout/admin/internal/platform/errors/i18n"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
	sharedhtmx "github.com/chekout/admin/internal/services/shared/htmx"
)

func isHTMXRequest(r *http.Request) bool {
	return sharedhtmx.IsHTMXRequest(r)
}

func htmxLocalizedPageTitle(loc *message.Printer, titleKey string) string {
	if loc == nil {
		return sharedhtmx.TitleTag(templates.Brand)
	}
	return sharedhtmx.TitleTag(templates.PageTitle(loc, titleKey))
}

// renderPage renders page components with consistent HTMX and non-HTMX behavior.
func renderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string) {
	sharedhtmx.RenderPage(w, r, fragment, full, htmxTitle)
}

// redirectTo sends the browser to target after a mutation, with the HTMX
// redirect header when the request came from HTMX.
func redirectTo(w http.ResponseWriter, r *http.Request, target string) {
	if isHTMXRequest(r) {
		w.Header().Set("Location", target)
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// redirectWithNotice redirects to target carrying a flash message key.
func redirectWithNotice(w http.ResponseWriter, r *http.Request, target, noticeKey string, args ...string) {
	target = templates.AppendQueryParam(target, "notice", noticeKey)
	if len(args) > 0 {
		target = templates.AppendQueryParam(target, "arg", args[0])
	}
	redirectTo(w, r, target)
}

// noticeKeys whitelists flash message keys accepted from the query string.
var noticeKeys = map[string]bool{
	"products.created":       true,
	"products.updated":       true,
	"products.deleted":       true,
	"categories.created":     true,
	"categories.renamed":     true,
	"categories.moved":       true,
	"categories.deleted":     true,
	"users.profile_saved":    true,
	"users.address_saved":    true,
	"users.role_assigned":    true,
	"users.role_removed":     true,
	"giftcards.issued":       true,
	"giftcards.redeemed":     true,
	"discountkeys.generated": true,
	"discountkeys.revoked":   true,
	"roles.created":          true,
	"roles.updated":          true,
	"roles.deleted":          true,
}

// noticeMessage resolves the flash message for a page load, if any.
func noticeMessage(loc *message.Printer, r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	key := r.URL.Query().Get("notice")
	if !noticeKeys[key] {
		return ""
	}
	arg := r.URL.Query().Get("arg")
	switch key {
	case "discountkeys.generated":
		count, err := strconv.Atoi(arg)
		if err != nil {
			return ""
		}
		return loc.Sprintf(key, count)
	case "giftcards.issued":
		return loc.Sprintf(key, arg)
	default:
		return loc.Sprintf(key)
	}
}

// renderError writes a localized error response for a failed operation.
func renderError(w http.ResponseWriter, lang string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, errcat.GetCatalog(lang).Format(string(apperrors.CodeNotFound), nil), http.StatusNotFound)
		return
	}
	if errors.Is(err, storage.ErrAlreadyExists) {
		http.Error(w, errcat.GetCatalog(lang).Format(string(apperrors.CodeAlreadyExists), nil), http.StatusConflict)
		return
	}
	code := apperrors.CodeOf(err)
	msg := errcat.GetCatalog(lang).Format(string(code), apperrors.MetadataOf(err))
	http.Error(w, msg, code.HTTPStatus())
}

// requireRead enforces read access on a resource before rendering a page.
func (h *Handler) requireRead(w http.ResponseWriter, r *http.Request, lang string, resource role.Resource) (role.Grants, bool) {
	grants := h.grants(r)
	if !grants.CanRead(resource) {
		renderError(w, lang, apperrors.New(apperrors.CodeRolePermissionDenied, "read access required for "+string(resource)))
		return grants, false
	}
	return grants, true
}

// requireWrite enforces write access on a resource before a mutation.
func (h *Handler) requireWrite(w http.ResponseWriter, r *http.Request, lang string, resource role.Resource) (role.Grants, bool) {
	grants := h.grants(r)
	if err := grants.RequireWrite(resource); err != nil {
		renderError(w, lang, err)
		return grants, false
	}
	return grants, true
}

// requirePost rejects non-POST mutation requests.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// pageFromQuery reads pagination parameters for list requests.
func pageFromQuery(query url.Values) storage.Page {
	page := storage.Page{Token: query.Get("page_token")}
	if raw := query.Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			page.Size = size
		}
	}
	return page
}

// formatCents renders a cent amount as a dollar string.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}
