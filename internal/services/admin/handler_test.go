package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/chekout/admin/internal/commerce/discount"
	"github.com/chekout/admin/internal/commerce/role"
	"github.com/chekout/admin/internal/platform/requestctx"
	"github.com/chekout/admin/internal/services/admin/storage"
	"github.com/chekout/admin/internal/services/admin/templates"
)

// fakeStore is an in-memory storage.Store for handler tests.
type fakeStore struct {
	users        []storage.User
	profiles     map[string]storage.Profile
	addresses    map[string][]storage.Address
	products     []storage.Product
	categories   []storage.Category
	orders       []storage.Order
	giftCards    []storage.GiftCard
	transactions map[string][]storage.GiftCardTransaction
	discountKeys []storage.DiscountKey
	roles        []storage.Role
	assignments  map[string][]string // userID -> roleIDs
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles:     map[string]storage.Profile{},
		addresses:    map[string][]storage.Address{},
		transactions: map[string][]storage.GiftCardTransaction{},
		assignments:  map[string][]string{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, user storage.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeStore) GetUser(_ context.Context, userID string) (storage.User, error) {
	for _, user := range f.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return storage.User{}, storage.ErrNotFound
}

func (f *fakeStore) ListUsers(_ context.Context, _ storage.Page) (storage.UserPage, error) {
	return storage.UserPage{Users: f.users}, nil
}

func (f *fakeStore) CountUsers(context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeStore) GetProfile(_ context.Context, userID string) (storage.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return storage.Profile{}, storage.ErrNotFound
	}
	return profile, nil
}

func (f *fakeStore) PutProfile(_ context.Context, profile storage.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeStore) ListAddresses(_ context.Context, userID string) ([]storage.Address, error) {
	return f.addresses[userID], nil
}

func (f *fakeStore) PutAddress(_ context.Context, address storage.Address) error {
	for i, existing := range f.addresses[address.UserID] {
		if existing.ID == address.ID {
			f.addresses[address.UserID][i] = address
			return nil
		}
	}
	f.addresses[address.UserID] = append(f.addresses[address.UserID], address)
	return nil
}

func (f *fakeStore) CreateProduct(_ context.Context, product storage.Product) error {
	f.products = append(f.products, product)
	return nil
}

func (f *fakeStore) GetProduct(_ context.Context, productID string) (storage.Product, error) {
	for _, product := range f.products {
		if product.ID == productID {
			return product, nil
		}
	}
	return storage.Product{}, storage.ErrNotFound
}

func (f *fakeStore) UpdateProduct(_ context.Context, product storage.Product) error {
	for i := range f.products {
		if f.products[i].ID == product.ID {
			f.products[i] = product
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) SetProductActive(_ context.Context, productID string, active bool, now time.Time) error {
	for i := range f.products {
		if f.products[i].ID == productID {
			f.products[i].IsActive = active
			f.products[i].UpdatedAt = now
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) DeleteProduct(_ context.Context, productID string) error {
	for i := range f.products {
		if f.products[i].ID == productID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) ListProducts(_ context.Context, _ storage.ListFilter, _ storage.Page) (storage.ProductPage, error) {
	return storage.ProductPage{Products: f.products}, nil
}

func (f *fakeStore) CountProducts(context.Context) (int, error) {
	return len(f.products), nil
}

func (f *fakeStore) CreateCategory(_ context.Context, category storage.Category) error {
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeStore) GetCategory(_ context.Context, categoryID string) (storage.Category, error) {
	for _, category := range f.categories {
		if category.ID == categoryID {
			return category, nil
		}
	}
	return storage.Category{}, storage.ErrNotFound
}

func (f *fakeStore) UpdateCategory(_ context.Context, categoryID, name, slug string, now time.Time) error {
	for i := range f.categories {
		if f.categories[i].ID == categoryID {
			f.categories[i].Name = name
			f.categories[i].Slug = slug
			f.categories[i].UpdatedAt = now
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) SetCategoryActive(_ context.Context, categoryID string, active bool, now time.Time) error {
	for i := range f.categories {
		if f.categories[i].ID == categoryID {
			f.categories[i].IsActive = active
			f.categories[i].UpdatedAt = now
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) MoveCategory(_ context.Context, categoryID, newParentID string, sortOrder int, now time.Time) error {
	for i := range f.categories {
		if f.categories[i].ID == categoryID {
			f.categories[i].ParentID = newParentID
			f.categories[i].SortOrder = sortOrder
			f.categories[i].UpdatedAt = now
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) DeleteCategory(_ context.Context, categoryID string) error {
	for i := range f.categories {
		if f.categories[i].ID == categoryID {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) ListCategories(context.Context) ([]storage.Category, error) {
	return f.categories, nil
}

func (f *fakeStore) InsertOrder(_ context.Context, order storage.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeStore) GetOrder(_ context.Context, orderID string) (storage.Order, error) {
	for _, order := range f.orders {
		if order.ID == orderID {
			return order, nil
		}
	}
	return storage.Order{}, storage.ErrNotFound
}

func (f *fakeStore) ListOrders(_ context.Context, _ storage.ListFilter, _ storage.Page) (storage.OrderPage, error) {
	return storage.OrderPage{Orders: f.orders}, nil
}

func (f *fakeStore) CountOrders(context.Context) (int, error) {
	return len(f.orders), nil
}

func (f *fakeStore) SumOrderRevenue(context.Context) (int64, error) {
	var total int64
	for _, order := range f.orders {
		total += order.TotalCents
	}
	return total, nil
}

func (f *fakeStore) CreateGiftCard(_ context.Context, card storage.GiftCard) error {
	f.giftCards = append(f.giftCards, card)
	return nil
}

func (f *fakeStore) GetGiftCardByCode(_ context.Context, code string) (storage.GiftCard, error) {
	for _, card := range f.giftCards {
		if card.Code == code {
			return card, nil
		}
	}
	return storage.GiftCard{}, storage.ErrNotFound
}

func (f *fakeStore) ListGiftCards(context.Context) ([]storage.GiftCard, error) {
	return f.giftCards, nil
}

func (f *fakeStore) RedeemGiftCard(_ context.Context, cardID string, tx storage.GiftCardTransaction, now time.Time) error {
	for i := range f.giftCards {
		if f.giftCards[i].ID == cardID {
			f.giftCards[i].IsUsed = true
			f.giftCards[i].UpdatedAt = now
			f.transactions[cardID] = append(f.transactions[cardID], tx)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) ListGiftCardTransactions(_ context.Context, cardID string) ([]storage.GiftCardTransaction, error) {
	return f.transactions[cardID], nil
}

func (f *fakeStore) InsertDiscountKeys(_ context.Context, keys []storage.DiscountKey) error {
	f.discountKeys = append(f.discountKeys, keys...)
	return nil
}

func (f *fakeStore) GetDiscountKeyByCode(_ context.Context, code string) (storage.DiscountKey, error) {
	for _, key := range f.discountKeys {
		if key.Code == code {
			return key, nil
		}
	}
	return storage.DiscountKey{}, storage.ErrNotFound
}

func (f *fakeStore) ListDiscountKeys(context.Context) ([]storage.DiscountKey, error) {
	return f.discountKeys, nil
}

func (f *fakeStore) MarkDiscountKeyUsed(_ context.Context, keyID, usedBy string, now time.Time) error {
	for i := range f.discountKeys {
		if f.discountKeys[i].ID == keyID {
			f.discountKeys[i].UsedBy = usedBy
			f.discountKeys[i].UsedAt = now
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) RevokeDiscountKey(_ context.Context, keyID string, now time.Time) error {
	for i := range f.discountKeys {
		if f.discountKeys[i].ID == keyID {
			f.discountKeys[i].RevokedAt = now
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) CreateRole(_ context.Context, r storage.Role) error {
	f.roles = append(f.roles, r)
	return nil
}

func (f *fakeStore) GetRole(_ context.Context, roleID string) (storage.Role, error) {
	for _, r := range f.roles {
		if r.ID == roleID {
			return r, nil
		}
	}
	return storage.Role{}, storage.ErrNotFound
}

func (f *fakeStore) UpdateRole(_ context.Context, updated storage.Role) error {
	for i := range f.roles {
		if f.roles[i].ID == updated.ID {
			f.roles[i] = updated
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) DeleteRole(_ context.Context, roleID string) error {
	for i := range f.roles {
		if f.roles[i].ID == roleID {
			f.roles = append(f.roles[:i], f.roles[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) ListRoles(context.Context) ([]storage.Role, error) {
	return f.roles, nil
}

func (f *fakeStore) ListRolesForUser(ctx context.Context, userID string) ([]storage.Role, error) {
	var assigned []storage.Role
	for _, roleID := range f.assignments[userID] {
		r, err := f.GetRole(ctx, roleID)
		if err != nil {
			return nil, err
		}
		assigned = append(assigned, r)
	}
	return assigned, nil
}

func (f *fakeStore) CountRoleAssignments(_ context.Context, roleID string) (int, error) {
	count := 0
	for _, roleIDs := range f.assignments {
		for _, assigned := range roleIDs {
			if assigned == roleID {
				count++
			}
		}
	}
	return count, nil
}

func (f *fakeStore) AssignRole(_ context.Context, userID, roleID string) error {
	for _, assigned := range f.assignments[userID] {
		if assigned == roleID {
			return storage.ErrAlreadyExists
		}
	}
	f.assignments[userID] = append(f.assignments[userID], roleID)
	return nil
}

func (f *fakeStore) RemoveRole(_ context.Context, userID, roleID string) error {
	roleIDs := f.assignments[userID]
	for i, assigned := range roleIDs {
		if assigned == roleID {
			f.assignments[userID] = append(roleIDs[:i], roleIDs[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) RoleLevel(ctx context.Context, userID string) (int, error) {
	level := 0
	assigned, err := f.ListRolesForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	for _, r := range assigned {
		if r.Level > level {
			level = r.Level
		}
	}
	return level, nil
}

func (f *fakeStore) Close() error { return nil }

func seedStore(store *fakeStore) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	store.categories = []storage.Category{
		{ID: "cat-1", Name: "Electronics", Slug: "electronics", SortOrder: 1, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "cat-2", Name: "Laptops", Slug: "laptops", ParentID: "cat-1", SortOrder: 1, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	store.products = []storage.Product{
		{ID: "p-1", Name: "Carbon Keyboard", PriceCents: 12900, CategoryID: "cat-1", Stock: 12, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	store.users = []storage.User{
		{ID: "u-1", Email: "dana@example.com", DisplayName: "Dana", CreatedAt: now, UpdatedAt: now},
	}
	store.orders = []storage.Order{
		{ID: "o-1", UserID: "u-1", TotalCents: 25900, Status: "paid", CreatedAt: now},
	}
	store.giftCards = []storage.GiftCard{
		{ID: "g-1", Code: "CHK-1234-5678", AmountCents: 5000, Recipient: "dana@example.com", ExpiresAt: now.AddDate(1, 0, 0), CreatedAt: now, UpdatedAt: now},
	}
	store.discountKeys = []storage.DiscountKey{
		{ID: "k-1", Code: "12345678", Tier: discount.TierGold, Percent: 15, CreatedAt: now},
	}
	store.roles = []storage.Role{
		{ID: "role-1", Name: "Catalog Editor", Level: 10, Permissions: map[role.Resource]role.Access{
			role.ResourceProducts:   role.AccessWrite,
			role.ResourceCategories: role.AccessRead,
		}, CreatedAt: now, UpdatedAt: now},
	}
}

func assertContains(t *testing.T, body, expected string) {
	t.Helper()
	if !strings.Contains(body, expected) {
		t.Fatalf("expected body to contain %q\nbody: %s", expected, body)
	}
}

func assertNotContains(t *testing.T, body, unexpected string) {
	t.Helper()
	if strings.Contains(body, unexpected) {
		t.Fatalf("expected body to not contain %q", unexpected)
	}
}

// TestPageRendering verifies layout rendering based on HTMX requests.
func TestPageRendering(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	tests := []struct {
		name        string
		path        string
		htmx        bool
		contains    []string
		notContains []string
	}{
		{
			name: "dashboard full page",
			path: "/",
			contains: []string{
				"<!DOCTYPE html>",
				templates.Brand,
				"stat-grid",
			},
		},
		{
			name: "products full page",
			path: "/products",
			contains: []string{
				"<!DOCTYPE html>",
				templates.Brand,
				"Carbon Keyboard",
			},
		},
		{
			name: "products htmx",
			path: "/products",
			htmx: true,
			contains: []string{
				"Carbon Keyboard",
				"<title>",
			},
			notContains: []string{
				"<!DOCTYPE html>",
				"<html",
			},
		},
		{
			name: "categories full page",
			path: "/categories",
			contains: []string{
				"Electronics",
				"Laptops",
			},
		},
		{
			name: "users full page",
			path: "/users",
			contains: []string{
				"dana@example.com",
			},
		},
		{
			name: "orders full page",
			path: "/orders",
			contains: []string{
				"$259.00",
				"Revenue: $259.00",
				"data-watch-endpoint",
				`hx-trigger="chekout:change from:body"`,
			},
		},
		{
			name: "gift cards full page",
			path: "/gift-cards",
			contains: []string{
				"CHK-1234-5678",
				"$50.00",
			},
		},
		{
			name: "discount keys full page",
			path: "/discount-keys",
			contains: []string{
				"12345678",
				"15%",
			},
		},
		{
			name: "roles full page",
			path: "/roles",
			contains: []string{
				"Catalog Editor",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://example.com"+tc.path, nil)
			if tc.htmx {
				req.Header.Set("HX-Request", "true")
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			if recorder.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
			}

			body := recorder.Body.String()
			for _, expected := range tc.contains {
				assertContains(t, body, expected)
			}
			for _, unexpected := range tc.notContains {
				assertNotContains(t, body, unexpected)
			}
		})
	}
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "http://example.com"+path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestProductCreate(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/products/create", url.Values{
		"name":        {"Walnut Desk"},
		"price_cents": {"45900"},
		"stock":       {"3"},
		"category_id": {"cat-1"},
		"is_active":   {"true"},
	})

	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusSeeOther, recorder.Body.String())
	}
	if location := recorder.Header().Get("Location"); !strings.Contains(location, "notice=products.created") {
		t.Fatalf("location = %q, want created notice", location)
	}
	if len(store.products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(store.products))
	}
	created := store.products[1]
	if created.Name != "Walnut Desk" || created.PriceCents != 45900 || created.Stock != 3 {
		t.Fatalf("unexpected product: %+v", created)
	}
	if !created.IsActive {
		t.Fatal("expected product to be active")
	}
}

func TestProductCreateRejectsBadInput(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	tests := []struct {
		name string
		form url.Values
	}{
		{
			name: "empty name",
			form: url.Values{"name": {""}, "price_cents": {"100"}},
		},
		{
			name: "zero price",
			form: url.Values{"name": {"Desk"}, "price_cents": {"0"}},
		},
		{
			name: "negative stock",
			form: url.Values{"name": {"Desk"}, "price_cents": {"100"}, "stock": {"-1"}},
		},
		{
			name: "unknown category",
			form: url.Values{"name": {"Desk"}, "price_cents": {"100"}, "category_id": {"cat-missing"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := postForm(handler, "/products/create", tc.form)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
			}
		})
	}
	if len(store.products) != 1 {
		t.Fatalf("expected no new products, got %d", len(store.products))
	}
}

func TestProductToggle(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/products/p-1/toggle", url.Values{})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusSeeOther)
	}
	if store.products[0].IsActive {
		t.Fatal("expected product to be deactivated")
	}

	recorder = postForm(handler, "/products/p-1/toggle", url.Values{})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusSeeOther)
	}
	if !store.products[0].IsActive {
		t.Fatal("expected product to be reactivated")
	}
}

func TestProductDetailNotFound(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/products/p-missing", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusNotFound)
	}
}

func TestCategoryMoveRejectsCycle(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	// cat-2 is a child of cat-1; moving cat-1 under cat-2 closes a loop.
	recorder := postForm(handler, "/categories/cat-1/move", url.Values{
		"parent_id": {"cat-2"},
	})
	if recorder.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusConflict, recorder.Body.String())
	}
	if store.categories[0].ParentID != "" {
		t.Fatal("expected category to stay in place")
	}
}

func TestCategoryMove(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	store.categories = append(store.categories, storage.Category{
		ID: "cat-3", Name: "Accessories", Slug: "accessories", IsActive: true,
	})
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/categories/cat-3/move", url.Values{
		"parent_id": {"cat-2"},
	})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusSeeOther, recorder.Body.String())
	}
	if store.categories[2].ParentID != "cat-2" {
		t.Fatalf("parent = %q, want cat-2", store.categories[2].ParentID)
	}
}

func TestUserProfileSave(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/users/u-1/profile", url.Values{
		"full_name": {"Dana Waters"},
		"phone":     {"555-0101"},
	})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusSeeOther, recorder.Body.String())
	}
	profile := store.profiles["u-1"]
	if profile.FullName != "Dana Waters" || profile.Phone != "555-0101" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	recorder = postForm(handler, "/users/u-1/profile", url.Values{"full_name": {""}})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
}

func TestUserAddressSave(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/users/u-1/address", url.Values{
		"label":       {"Home"},
		"street":      {"12 Harbor Way"},
		"city":        {"Porto"},
		"country":     {"PT"},
		"postal_code": {"4000-123"},
	})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusSeeOther, recorder.Body.String())
	}
	if location := recorder.Header().Get("Location"); !strings.Contains(location, "notice=users.address_saved") {
		t.Fatalf("location = %q, want address saved notice", location)
	}
	saved := store.addresses["u-1"]
	if len(saved) != 1 {
		t.Fatalf("expected 1 address, got %d", len(saved))
	}
	if saved[0].Street != "12 Harbor Way" || saved[0].City != "Porto" || saved[0].ID == "" {
		t.Fatalf("unexpected address: %+v", saved[0])
	}

	// Posting the stored id updates in place instead of adding a row.
	recorder = postForm(handler, "/users/u-1/address", url.Values{
		"address_id":  {saved[0].ID},
		"label":       {"Home"},
		"street":      {"14 Harbor Way"},
		"city":        {"Porto"},
		"country":     {"PT"},
		"postal_code": {"4000-123"},
	})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusSeeOther, recorder.Body.String())
	}
	if len(store.addresses["u-1"]) != 1 {
		t.Fatalf("expected update in place, got %d addresses", len(store.addresses["u-1"]))
	}
	if store.addresses["u-1"][0].Street != "14 Harbor Way" {
		t.Fatalf("street = %q, want updated street", store.addresses["u-1"][0].Street)
	}

	recorder = postForm(handler, "/users/u-1/address", url.Values{"street": {""}})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
}

func TestGiftCardIssue(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/gift-cards/create", url.Values{
		"amount_cents": {"7500"},
		"recipient":    {"sam@example.com"},
		"message":      {"Happy birthday"},
	})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusSeeOther, recorder.Body.String())
	}
	if location := recorder.Header().Get("Location"); !strings.Contains(location, "notice=giftcards.issued") {
		t.Fatalf("location = %q, want issued notice", location)
	}
	if len(store.giftCards) != 2 {
		t.Fatalf("expected 2 gift cards, got %d", len(store.giftCards))
	}
	issued := store.giftCards[1]
	if issued.AmountCents != 7500 || issued.Recipient != "sam@example.com" {
		t.Fatalf("unexpected card: %+v", issued)
	}

	recorder = postForm(handler, "/gift-cards/create", url.Values{
		"amount_cents": {"-5"},
		"recipient":    {"sam@example.com"},
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
}

func TestGiftCardRedeem(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/gift-cards/CHK-1234-5678/redeem", url.Values{
		"order_id": {"o-1"},
	})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusSeeOther, recorder.Body.String())
	}
	if location := recorder.Header().Get("Location"); !strings.Contains(location, "notice=giftcards.redeemed") {
		t.Fatalf("location = %q, want redeemed notice", location)
	}
	if !store.giftCards[0].IsUsed {
		t.Fatal("expected card marked used")
	}
	txs := store.transactions["g-1"]
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if txs[0].OrderID != "o-1" || txs[0].AmountCents != 5000 {
		t.Fatalf("unexpected transaction: %+v", txs[0])
	}

	// A used card cannot be redeemed again.
	recorder = postForm(handler, "/gift-cards/CHK-1234-5678/redeem", url.Values{})
	if recorder.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusConflict)
	}

	recorder = postForm(handler, "/gift-cards/BAD-CODE/redeem", url.Values{})
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusNotFound)
	}
}

func TestDiscountKeyCheck(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "http://example.com"+path, nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)
		return recorder
	}

	recorder := get("/discount-keys/check?code=12345678")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	assertContains(t, recorder.Body.String(), "15% off")

	recorder = get("/discount-keys/check?code=99999999")
	assertContains(t, recorder.Body.String(), "No key matches")

	store.discountKeys[0].UsedBy = "u-1"
	recorder = get("/discount-keys/check?code=12345678")
	assertContains(t, recorder.Body.String(), "already been used")
}

func TestDiscountKeyGenerate(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/discount-keys/generate", url.Values{
		"tier":  {"silver"},
		"count": {"5"},
	})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusSeeOther, recorder.Body.String())
	}
	if location := recorder.Header().Get("Location"); !strings.Contains(location, "notice=discountkeys.generated") {
		t.Fatalf("location = %q, want generated notice", location)
	}
	if len(store.discountKeys) != 6 {
		t.Fatalf("expected 6 keys, got %d", len(store.discountKeys))
	}
	for _, key := range store.discountKeys[1:] {
		if key.Tier != discount.TierSilver || key.Percent != 10 {
			t.Fatalf("unexpected key: %+v", key)
		}
	}

	recorder = postForm(handler, "/discount-keys/generate", url.Values{
		"tier":  {"silver"},
		"count": {"501"},
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
}

func TestDiscountKeyRevoke(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/discount-keys/k-1/revoke", url.Values{})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusSeeOther)
	}
	if store.discountKeys[0].RevokedAt.IsZero() {
		t.Fatal("expected key to be revoked")
	}
}

func TestRoleDeleteBlockedWhileAssigned(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	store.assignments["u-1"] = []string{"role-1"}
	handler := NewHandler(store, nil)

	recorder := postForm(handler, "/roles/role-1/delete", url.Values{})
	if recorder.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusConflict, recorder.Body.String())
	}
	if len(store.roles) != 1 {
		t.Fatal("expected role to remain")
	}
}

func TestPermissionEnforcement(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	store.assignments["op-1"] = []string{"role-1"}
	handler := NewHandler(store, nil)

	send := func(method, path string, form url.Values) *httptest.ResponseRecorder {
		var req *http.Request
		if method == http.MethodPost {
			req = httptest.NewRequest(method, "http://example.com"+path, strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		} else {
			req = httptest.NewRequest(method, "http://example.com"+path, nil)
		}
		req = req.WithContext(requestctx.WithAdminID(req.Context(), "op-1"))
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)
		return recorder
	}

	// Write access on products allows mutations.
	recorder := send(http.MethodPost, "/products/p-1/toggle", url.Values{})
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("toggle status = %d, want %d", recorder.Code, http.StatusSeeOther)
	}

	// Read-only access on categories blocks mutations but not pages.
	recorder = send(http.MethodGet, "/categories", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("categories page status = %d, want %d", recorder.Code, http.StatusOK)
	}
	recorder = send(http.MethodPost, "/categories/cat-1/toggle", url.Values{})
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("category toggle status = %d, want %d", recorder.Code, http.StatusForbidden)
	}

	// No grant on orders blocks even the page.
	recorder = send(http.MethodGet, "/orders", nil)
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("orders page status = %d, want %d", recorder.Code, http.StatusForbidden)
	}
}

func TestMutationRejectsGet(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/products/p-1/toggle", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusMethodNotAllowed)
	}
}

func TestFlashNotice(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/products?notice=products.created", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	assertContains(t, recorder.Body.String(), "flash")

	// Unlisted notice keys are ignored rather than echoed.
	req = httptest.NewRequest(http.MethodGet, "http://example.com/products?notice=<script>", nil)
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	assertNotContains(t, recorder.Body.String(), "<script>")
}

func TestHTMXRedirectHeader(t *testing.T) {
	store := newFakeStore()
	seedStore(store)
	handler := NewHandler(store, nil)

	form := url.Values{"full_name": {"Dana Waters"}}
	req := httptest.NewRequest(http.MethodPost, "http://example.com/users/u-1/profile", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusSeeOther)
	}
	if redirect := recorder.Header().Get("HX-Redirect"); !strings.Contains(redirect, "/users/u-1") {
		t.Fatalf("HX-Redirect = %q, want user detail", redirect)
	}
}
