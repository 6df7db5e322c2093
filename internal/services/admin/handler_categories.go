package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/chekout/admin/internal/commerce/category"
	"github.com/chekout/admin/internal/commerce/role"
	apperrors "github.com/chekout/admin/internal/platform/errors"
	"github.com/chekout/admin/internal/platform/id"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
)

// HandleCategoriesPage renders the category tree.
func (h *Handler) HandleCategoriesPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceCategories); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadCategoriesView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	view.Message = noticeMessage(loc, r)
	renderPage(w, r,
		templates.CategoriesContent(pc, view),
		templates.CategoriesPage(pc, view),
		htmxLocalizedPageTitle(loc, "title.categories"))
}

// HandleCategoriesTree renders just the tree for HTMX swaps.
func (h *Handler) HandleCategoriesTree(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if _, ok := h.requireRead(w, r, lang, role.ResourceCategories); !ok {
		return
	}
	pc := h.pageContext(lang, loc, r)

	view, err := h.loadCategoriesView(r)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	tree := templates.CategoriesTree(pc, view)
	renderPage(w, r, tree, tree, htmxLocalizedPageTitle(loc, "title.categories"))
}

// HandleCategoryCreate renders the create form and accepts submissions.
func (h *Handler) HandleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pc := h.pageContext(lang, loc, r)

	if r.Method == http.MethodGet {
		if _, ok := h.requireRead(w, r, lang, role.ResourceCategories); !ok {
			return
		}
		form := templates.CategoryFormView{Parents: h.categoryOptions(r.Context())}
		renderPage(w, r,
			templates.CategoryFormContent(pc, form),
			templates.CategoryFormPage(pc, form),
			htmxLocalizedPageTitle(loc, "title.categories"))
		return
	}
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceCategories); !ok {
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		renderError(w, lang, apperrors.New(apperrors.CodeCategoryNameEmpty, "category name is required"))
		return
	}
	slug := strings.TrimSpace(r.PostFormValue("slug"))
	if slug == "" {
		renderError(w, lang, apperrors.New(apperrors.CodeCategorySlugEmpty, "category slug is required"))
		return
	}
	parentID := strings.TrimSpace(r.PostFormValue("parent_id"))
	if parentID != "" {
		if _, err := h.store.GetCategory(r.Context(), parentID); err != nil {
			renderError(w, lang, apperrors.New(apperrors.CodeCategoryUnknownParent, "parent category does not exist"))
			return
		}
	}
	sortOrder, _ := strconv.Atoi(strings.TrimSpace(r.PostFormValue("sort_order")))

	categoryID, err := id.NewID()
	if err != nil {
		renderError(w, lang, err)
		return
	}
	now := h.now().UTC()
	record := storage.Category{
		ID:        categoryID,
		Name:      name,
		Slug:      slug,
		ParentID:  parentID,
		SortOrder: sortOrder,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.store.CreateCategory(r.Context(), record); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Categories, "categories.created")
}

// HandleCategoryDetail renders the rename form and accepts updates.
func (h *Handler) HandleCategoryDetail(w http.ResponseWriter, r *http.Request, categoryID string) {
	loc, lang := h.localizer(w, r)
	pc := h.pageContext(lang, loc, r)

	if r.Method == http.MethodGet {
		if _, ok := h.requireRead(w, r, lang, role.ResourceCategories); !ok {
			return
		}
		record, err := h.store.GetCategory(r.Context(), categoryID)
		if err != nil {
			renderError(w, lang, err)
			return
		}
		form := templates.CategoryFormView{
			ID:       record.ID,
			Name:     record.Name,
			Slug:     record.Slug,
			ParentID: record.ParentID,
		}
		renderPage(w, r,
			templates.CategoryFormContent(pc, form),
			templates.CategoryFormPage(pc, form),
			htmxLocalizedPageTitle(loc, "title.categories"))
		return
	}
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceCategories); !ok {
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		renderError(w, lang, apperrors.New(apperrors.CodeCategoryNameEmpty, "category name is required"))
		return
	}
	slug := strings.TrimSpace(r.PostFormValue("slug"))
	if slug == "" {
		renderError(w, lang, apperrors.New(apperrors.CodeCategorySlugEmpty, "category slug is required"))
		return
	}
	if err := h.store.UpdateCategory(r.Context(), categoryID, name, slug, h.now().UTC()); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Categories, "categories.renamed")
}

// HandleCategoryToggle flips a category's active flag without touching the
// rest of the record.
func (h *Handler) HandleCategoryToggle(w http.ResponseWriter, r *http.Request, categoryID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceCategories); !ok {
		return
	}
	record, err := h.store.GetCategory(r.Context(), categoryID)
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if err := h.store.SetCategoryActive(r.Context(), categoryID, !record.IsActive, h.now().UTC()); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectTo(w, r, routepath.Categories)
}

// HandleCategoryMove reparents a category after cycle validation.
func (h *Handler) HandleCategoryMove(w http.ResponseWriter, r *http.Request, categoryID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceCategories); !ok {
		return
	}

	newParentID := strings.TrimSpace(r.PostFormValue("parent_id"))
	records, err := h.store.ListCategories(r.Context())
	if err != nil {
		renderError(w, lang, err)
		return
	}
	if err := category.ValidateMove(toDomainCategories(records), categoryID, newParentID); err != nil {
		renderError(w, lang, err)
		return
	}

	sortOrder := 0
	for _, record := range records {
		if record.ID == categoryID {
			sortOrder = record.SortOrder
		}
	}
	if err := h.store.MoveCategory(r.Context(), categoryID, newParentID, sortOrder, h.now().UTC()); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Categories, "categories.moved")
}

// HandleCategoryDelete removes a category; children become roots on the next
// tree build since their parent link dangles.
func (h *Handler) HandleCategoryDelete(w http.ResponseWriter, r *http.Request, categoryID string) {
	_, lang := h.localizer(w, r)
	if !requirePost(w, r) {
		return
	}
	if _, ok := h.requireWrite(w, r, lang, role.ResourceCategories); !ok {
		return
	}
	if err := h.store.DeleteCategory(r.Context(), categoryID); err != nil {
		renderError(w, lang, err)
		return
	}
	redirectWithNotice(w, r, routepath.Categories, "categories.deleted")
}

func (h *Handler) loadCategoriesView(r *http.Request) (templates.CategoriesPageView, error) {
	records, err := h.store.ListCategories(r.Context())
	if err != nil {
		return templates.CategoriesPageView{}, err
	}
	byID := make(map[string]storage.Category, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	domain := toDomainCategories(records)
	flattened := category.Flatten(category.BuildTree(domain))
	rows := make([]templates.CategoryTreeRow, 0, len(flattened))
	for _, node := range flattened {
		record := byID[node.ID]
		rows = append(rows, templates.CategoryTreeRow{
			ID:            node.ID,
			Name:          node.Name,
			Slug:          node.Slug,
			Depth:         node.Depth,
			Active:        node.IsActive,
			UpdatedAt:     formatDateTime(record.UpdatedAt),
			ParentOptions: moveTargets(domain, node.ID),
		})
	}
	return templates.CategoriesPageView{Rows: rows}, nil
}

// moveTargets lists categories the given one may legally move under.
func moveTargets(categories []category.Category, categoryID string) []templates.CategoryOption {
	options := make([]templates.CategoryOption, 0, len(categories))
	for _, candidate := range categories {
		if candidate.ID == categoryID {
			continue
		}
		if category.ValidateMove(categories, categoryID, candidate.ID) != nil {
			continue
		}
		options = append(options, templates.CategoryOption{ID: candidate.ID, Label: candidate.Name})
	}
	return options
}

func toDomainCategories(records []storage.Category) []category.Category {
	out := make([]category.Category, 0, len(records))
	for _, record := range records {
		out = append(out, category.Category{
			ID:        record.ID,
			Name:      record.Name,
			Slug:      record.Slug,
			ParentID:  record.ParentID,
			SortOrder: record.SortOrder,
			IsActive:  record.IsActive,
		})
	}
	return out
}
