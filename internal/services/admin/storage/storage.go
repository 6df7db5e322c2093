// Package storage defines the records and interfaces backing the admin console.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/chekout/admin/internal/commerce/discount"
	"github.com/chekout/admin/internal/commerce/role"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on insert.
var ErrAlreadyExists = errors.New("record already exists")

// User is a platform account visible to the admin console.
type User struct {
	ID          string
	Email       string
	DisplayName string
	IsAdmin     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Profile carries the editable profile half of a user record.
type Profile struct {
	UserID    string
	FullName  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address is one shipping address attached to a user.
type Address struct {
	ID         string
	UserID     string
	Label      string
	Street     string
	City       string
	Country    string
	PostalCode string
	UpdatedAt  time.Time
}

// Product is a catalog item.
type Product struct {
	ID         string
	Name       string
	PriceCents int64
	CategoryID string
	Stock      int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Category is a flat category record; tree shape is derived in memory.
type Category struct {
	ID        string
	Name      string
	Slug      string
	ParentID  string
	SortOrder int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Order is a read-only order summary row.
type Order struct {
	ID         string
	UserID     string
	TotalCents int64
	Status     string
	CreatedAt  time.Time
}

// GiftCard is a stored-value code record.
type GiftCard struct {
	ID          string
	Code        string
	AmountCents int64
	Recipient   string
	Message     string
	IsUsed      bool
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GiftCardTransaction records one redemption against a gift card.
type GiftCardTransaction struct {
	ID          string
	GiftCardID  string
	OrderID     string
	AmountCents int64
	CreatedAt   time.Time
}

// DiscountKey is a single-use percentage discount code record.
type DiscountKey struct {
	ID        string
	Code      string
	Tier      discount.Tier
	Percent   int
	UsedBy    string
	UsedAt    time.Time
	RevokedAt time.Time
	CreatedAt time.Time
}

// Role is a stored admin role; permissions persist as JSON.
type Role struct {
	ID          string
	Name        string
	Level       int
	Permissions map[role.Resource]role.Access
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListFilter carries a compiled filter condition for list queries.
type ListFilter struct {
	// Clause is a SQL WHERE fragment with ? placeholders; empty means no filter.
	Clause string
	// Params are the positional parameters for Clause.
	Params []any
}

// Page bounds one page of list results.
type Page struct {
	Size  int
	Token string
}

// UserPage is one page of user rows plus the continuation token.
type UserPage struct {
	Users         []User
	NextPageToken string
}

// ProductPage is one page of product rows plus the continuation token.
type ProductPage struct {
	Products      []Product
	NextPageToken string
}

// OrderPage is one page of order rows plus the continuation token.
type OrderPage struct {
	Orders        []Order
	NextPageToken string
}

// UserStore persists users, profiles, and addresses.
type UserStore interface {
	CreateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, userID string) (User, error)
	ListUsers(ctx context.Context, page Page) (UserPage, error)
	CountUsers(ctx context.Context) (int, error)
	GetProfile(ctx context.Context, userID string) (Profile, error)
	PutProfile(ctx context.Context, profile Profile) error
	ListAddresses(ctx context.Context, userID string) ([]Address, error)
	PutAddress(ctx context.Context, address Address) error
}

// ProductStore persists catalog products.
type ProductStore interface {
	CreateProduct(ctx context.Context, product Product) error
	GetProduct(ctx context.Context, productID string) (Product, error)
	UpdateProduct(ctx context.Context, product Product) error
	SetProductActive(ctx context.Context, productID string, active bool, now time.Time) error
	DeleteProduct(ctx context.Context, productID string) error
	ListProducts(ctx context.Context, filter ListFilter, page Page) (ProductPage, error)
	CountProducts(ctx context.Context) (int, error)
}

// CategoryStore persists the flat category records.
type CategoryStore interface {
	CreateCategory(ctx context.Context, category Category) error
	GetCategory(ctx context.Context, categoryID string) (Category, error)
	UpdateCategory(ctx context.Context, categoryID, name, slug string, now time.Time) error
	SetCategoryActive(ctx context.Context, categoryID string, active bool, now time.Time) error
	MoveCategory(ctx context.Context, categoryID, newParentID string, sortOrder int, now time.Time) error
	DeleteCategory(ctx context.Context, categoryID string) error
	ListCategories(ctx context.Context) ([]Category, error)
}

// OrderStore reads order summaries; orders are written by the storefront, not
// the console.
type OrderStore interface {
	InsertOrder(ctx context.Context, order Order) error
	GetOrder(ctx context.Context, orderID string) (Order, error)
	ListOrders(ctx context.Context, filter ListFilter, page Page) (OrderPage, error)
	CountOrders(ctx context.Context) (int, error)
	SumOrderRevenue(ctx context.Context) (int64, error)
}

// GiftCardStore persists gift cards and their redemption transactions.
type GiftCardStore interface {
	CreateGiftCard(ctx context.Context, card GiftCard) error
	GetGiftCardByCode(ctx context.Context, code string) (GiftCard, error)
	ListGiftCards(ctx context.Context) ([]GiftCard, error)
	RedeemGiftCard(ctx context.Context, cardID string, tx GiftCardTransaction, now time.Time) error
	ListGiftCardTransactions(ctx context.Context, cardID string) ([]GiftCardTransaction, error)
}

// DiscountKeyStore persists single-use discount keys.
type DiscountKeyStore interface {
	InsertDiscountKeys(ctx context.Context, keys []DiscountKey) error
	GetDiscountKeyByCode(ctx context.Context, code string) (DiscountKey, error)
	ListDiscountKeys(ctx context.Context) ([]DiscountKey, error)
	MarkDiscountKeyUsed(ctx context.Context, keyID, usedBy string, now time.Time) error
	RevokeDiscountKey(ctx context.Context, keyID string, now time.Time) error
}

// RoleStore persists roles and assignments. RoleLevel, AssignRole, and
// RemoveRole mirror the storage procedure names the backend schema exposes.
type RoleStore interface {
	CreateRole(ctx context.Context, r Role) error
	GetRole(ctx context.Context, roleID string) (Role, error)
	UpdateRole(ctx context.Context, r Role) error
	DeleteRole(ctx context.Context, roleID string) error
	ListRoles(ctx context.Context) ([]Role, error)
	ListRolesForUser(ctx context.Context, userID string) ([]Role, error)
	CountRoleAssignments(ctx context.Context, roleID string) (int, error)
	AssignRole(ctx context.Context, userID, roleID string) error
	RemoveRole(ctx context.Context, userID, roleID string) error
	RoleLevel(ctx context.Context, userID string) (int, error)
}

// Store is the composite interface the admin console depends on.
type Store interface {
	UserStore
	ProductStore
	CategoryStore
	OrderStore
	GiftCardStore
	DiscountKeyStore
	RoleStore
	Close() error
}
