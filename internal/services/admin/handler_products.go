package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/chekout/admin/internal/commerce/role"
	apperrors "github.com/chekout/admin/internal/platform/errors"
	"github.com/chekout/admin/internal/platform/id"
	"github.com/chekout/admin/internal/services/admin/filter"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
)

// HandleProductsPage renders the product list with filtering and paging.
func (h *Handler) HandleProductsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceProducts); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadProductsView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	view.Message = noticeMessage(loc, r)
	renderPage(w, r,
		templates.ProductsContent(pc, view),
		templates.ProductsPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.products"))
}

// HandleProductsTable renders just the product table for HTMX swaps.
func (h *Handler) HandleProductsTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceProducts); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadProductsView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	table := templates.ProductsTable(pc, view)
	renderPage(w, r, table, table, htmxLocalizedPageTitle(loc, "title.products"))
}

// HandleProductCreate renders the create form and accepts submissions.
func (h *Handler) HandleProductCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pc := h.pageContext(lang, loc, r)

	if r.Method == http.MethodGet {
		if _, ok := h.requireRead(w, r, lang, role.ResourceProducts); !ok {
			return
		}
		form := templates.ProductFormView{Active: true, Categories: h.categoryOptions(r.Context())}
		renderPage(w, r,
			templates.ProductFormContent(pc, form),
			templates.ProductFormPage(pc, form),
			htmxLocalizedPageTitle(loc, "title.products"))
		return
	}
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceProducts); !ok {
		return
	}

	product, err := h.parseProductForm(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	productID, err := id.NewID()
	if err != nil {
		renderError(w, lang, err)
		return
	}
	product.ID = productID
	now := h.now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := h.store.CreateProduct(r.Context(), product); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Products, "products.created")
}

// HandleProductDetail renders the edit form and accepts updates.
func (h *Handler) HandleProductDetail(w http.ResponseWriter, r *http.Request, productID string) {
	loc, lang := h.localizer(w, r)
	pc := h.pageContext(lang, loc, r)

	if r.Method == http.MethodGet {
		if _, ok := h.requireRead(w, r, lang, role.ResourceProducts); !ok {
			return
		}
		product, err := h.store.GetProduct(r.Context(), productID)
		if err != nil {
			renderError(w, lang, err)
			return
		}
		form := templates.ProductFormView{
			ID:         product.ID,
			Name:       product.Name,
			PriceCents: strconv.FormatInt(product.PriceCents, 10),
			CategoryID: product.CategoryID,
			Stock:      strconv.Itoa(product.Stock),
			Active:     product.IsActive,
			Categories: h.categoryOptions(r.Context()),
		}
		renderPage(w, r,
			templates.ProductFormContent(pc, form),
			templates.ProductFormPage(pc, form),
			htmxLocalizedPageTitle(loc, "title.products"))
		return
	}
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceProducts); !ok {
		return
	}

	current, err := h.store.GetProduct(r.Context(), productID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	updated, err := h.parseProductForm(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = h.now().UTC()
	if err := h.store.UpdateProduct(r.Context(), updated); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Products, "products.updated")
}

// HandleProductToggle flips a product's active flag.
func (h *Handler) HandleProductToggle(w http.ResponseWriter, r *http.Request, productID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceProducts); !ok {
		return
	}
	product, err := h.store.GetProduct(r.Context(), productID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if err := h.store.SetProductActive(r.Context(), productID, !product.IsActive, h.now().UTC()); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Products, "products.updated")
}

// HandleProductDelete removes a product.
func (h *Handler) HandleProductDelete(w http.ResponseWriter, r *http.Request, productID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceProducts); !ok {
		return
	}
	if err := h.store.DeleteProduct(r.Context(), productID); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Products, "products.deleted")
}

func (h *Handler) loadProductsView(r *http.Request) (templates.ProductsPageView, error) {
	query := r.URL.Query()
	filterStr := strings.TrimSpace(query.Get("filter"))
	listFilter, err := filter.ParseProductFilter(filterStr)
	if err != nil {
		return templates.ProductsPageView{}, err
	}

	page, err := h.store.ListProducts(r.Context(), listFilter, pageFromQuery(query))
	if err != nil {
		return templates.ProductsPageView{}, err
	}

	categoryNames := h.categoryNames(r.Context())
	rows := make([]templates.ProductRow, 0, len(page.Products))
	for _, product := range page.Products {
		rows = append(rows, templates.ProductRow{
			ID:        product.ID,
			Name:      product.Name,
			Price:     formatCents(product.PriceCents),
			Category:  categoryNames[product.CategoryID],
			Stock:     strconv.Itoa(product.Stock),
			Active:    product.IsActive,
			UpdatedAt: formatDateTime(product.UpdatedAt),
		})
	}
	return templates.ProductsPageView{
		Filter:        filterStr,
		Rows:          rows,
		NextPageToken: page.NextPageToken,
	}, nil
}

func (h *Handler) parseProductForm(r *http.Request) (storage.Product, error) {
	if err := r.ParseForm(); err != nil {
		return storage.Product{}, apperrors.Wrap(apperrors.CodeUnknown, "parse form", err)
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		return storage.Product{}, apperrors.New(apperrors.CodeProductNameEmpty, "product name is required")
	}
	priceCents, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("price_cents")), 10, 64)
	if err != nil || priceCents <= 0 {
		return storage.Product{}, apperrors.New(apperrors.CodeProductInvalidPrice, "product price must be positive")
	}
	stock := 0
	if raw := strings.TrimSpace(r.PostFormValue("stock")); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil || stock < 0 {
			return storage.Product{}, apperrors.New(apperrors.CodeProductInvalidStock, "product stock cannot be negative")
		}
	}
	categoryID := strings.TrimSpace(r.PostFormValue("category_id"))
	if categoryID != "" {
		if _, err := h.store.GetCategory(r.Context(), categoryID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return storage.Product{}, apperrors.New(apperrors.CodeProductUnknownCategory, "category does not exist")
			}
			return storage.Product{}, err
		}
	}
	return storage.Product{
		Name:       name,
		PriceCents: priceCents,
		CategoryID: categoryID,
		Stock:      stock,
		IsActive:   r.PostFormValue("is_active") == "true",
	}, nil
}

func (h *Handler) categoryOptions(ctx context.Context) []templates.CategoryOption {
	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		log.Printf("list categories: %v", err)
		return nil
	}
	options := make([]templates.CategoryOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, templates.CategoryOption{ID: c.ID, Label: c.Name})
	}
	return options
}

func (h *Handler) categoryNames(ctx context.Context) map[string]string {
	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		log.Printf("list categories: %v", err)
		return nil
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}
