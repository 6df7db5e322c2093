package giftcards

import (
	"net/http"
	"strings"

	sharedpath "github.com/chekout/admin/internal/services/admin/module/sharedpath"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	sharedroute "github.com/chekout/admin/internal/services/shared/route"
)

// Service defines gift card route handlers consumed by this route module.
type Service interface {
	HandleGiftCardsPage(w http.ResponseWriter, r *http.Request)
	HandleGiftCardsTable(w http.ResponseWriter, r *http.Request)
	HandleGiftCardIssue(w http.ResponseWriter, r *http.Request)
	HandleGiftCardDetail(w http.ResponseWriter, r *http.Request, code string)
	HandleGiftCardRedeem(w http.ResponseWriter, r *http.Request, code string)
}

// RegisterRoutes wires gift card routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.GiftCards, service.HandleGiftCardsPage)
	mux.HandleFunc(routepath.GiftCardsTable, service.HandleGiftCardsTable)
	mux.HandleFunc(routepath.GiftCardsCreate, service.HandleGiftCardIssue)
	mux.HandleFunc(routepath.GiftCardsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleGiftCardPath(w, r, service)
	})
}

// HandleGiftCardPath parses gift card subroutes and dispatches to service handlers.
func HandleGiftCardPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.GiftCardsPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 2 && parts[1] == "redeem" {
		service.HandleGiftCardRedeem(w, r, parts[0])
		return
	}
	if len(parts) == 1 {
		service.HandleGiftCardDetail(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}
