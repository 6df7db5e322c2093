// Package routepath centralizes the console's route constants and builders.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/"
	DashboardContent = "/dashboard/content"
)

const (
	StaticPrefix = "/static/"
)

const (
	Watch = "/watch"
)

const (
	Products       = "/products"
	ProductsCreate = "/products/create"
	ProductsTable  = "/products/table"
	ProductsPrefix = "/products/"
)

const (
	Categories       = "/categories"
	CategoriesCreate = "/categories/create"
	CategoriesTree   = "/categories/tree"
	CategoriesPrefix = "/categories/"
)

const (
	Users       = "/users"
	UsersTable  = "/users/table"
	UsersPrefix = "/users/"
)

const (
	Orders       = "/orders"
	OrdersTable  = "/orders/table"
	OrdersPrefix = "/orders/"
)

const (
	GiftCards       = "/gift-cards"
	GiftCardsCreate = "/gift-cards/create"
	GiftCardsTable  = "/gift-cards/table"
	GiftCardsPrefix = "/gift-cards/"
)

const (
	DiscountKeys         = "/discount-keys"
	DiscountKeysGenerate = "/discount-keys/generate"
	DiscountKeysCheck    = "/discount-keys/check"
	DiscountKeysTable    = "/discount-keys/table"
	DiscountKeysPrefix   = "/discount-keys/"
)

const (
	Roles       = "/roles"
	RolesCreate = "/roles/create"
	RolesTable  = "/roles/table"
	RolesPrefix = "/roles/"
)

func Product(productID string) string {
	return Products + "/" + escapeSegment(productID)
}

func ProductToggle(productID string) string {
	return Product(productID) + "/toggle"
}

func ProductDelete(productID string) string {
	return Product(productID) + "/delete"
}

func Category(categoryID string) string {
	return Categories + "/" + escapeSegment(categoryID)
}

func CategoryToggle(categoryID string) string {
	return Category(categoryID) + "/toggle"
}

func CategoryMove(categoryID string) string {
	return Category(categoryID) + "/move"
}

func CategoryDelete(categoryID string) string {
	return Category(categoryID) + "/delete"
}

func UserDetail(userID string) string {
	return Users + "/" + escapeSegment(userID)
}

func UserProfile(userID string) string {
	return UserDetail(userID) + "/profile"
}

func UserRoles(userID string) string {
	return UserDetail(userID) + "/roles"
}

// UserAddress returns the address save route for one user.
func UserAddress(userID string) string {
	return UserDetail(userID) + "/address"
}

func OrderDetail(orderID string) string {
	return Orders + "/" + escapeSegment(orderID)
}

func GiftCard(code string) string {
	return GiftCards + "/" + escapeSegment(code)
}

// GiftCardRedeem returns the redeem route for one card.
func GiftCardRedeem(code string) string {
	return GiftCard(code) + "/redeem"
}

func DiscountKeyRevoke(keyID string) string {
	return DiscountKeys + "/" + escapeSegment(keyID) + "/revoke"
}

func Role(roleID string) string {
	return Roles + "/" + escapeSegment(roleID)
}

func RoleDelete(roleID string) string {
	return Role(roleID) + "/delete"
}

func RoleAssign(roleID string) string {
	return Role(roleID) + "/assign"
}

func RoleRemove(roleID string) string {
	return Role(roleID) + "/remove"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
