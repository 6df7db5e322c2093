package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Titles
	message.SetString(lang, "title.dashboard", "%s | Dashboard")
	message.SetString(lang, "title.products", "%s | Products")
	message.SetString(lang, "title.categories", "%s | Categories")
	message.SetString(lang, "title.users", "%s | Users")
	message.SetString(lang, "title.orders", "%s | Orders")
	message.SetString(lang, "title.giftcards", "%s | Gift Cards")
	message.SetString(lang, "title.discountkeys", "%s | Discount Keys")
	message.SetString(lang, "title.roles", "%s | Roles")

	// Navigation
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.products", "Products")
	message.SetString(lang, "nav.categories", "Categories")
	message.SetString(lang, "nav.users", "Users")
	message.SetString(lang, "nav.orders", "Orders")
	message.SetString(lang, "nav.gift_cards", "Gift Cards")
	message.SetString(lang, "nav.discount_keys", "Discount Keys")
	message.SetString(lang, "nav.roles", "Roles")

	// Shared actions
	message.SetString(lang, "action.toggle", "Toggle")
	message.SetString(lang, "action.delete", "Delete")
	message.SetString(lang, "action.save", "Save")
	message.SetString(lang, "action.apply", "Apply")
	message.SetString(lang, "action.revoke", "Revoke")
	message.SetString(lang, "action.assign", "Assign")
	message.SetString(lang, "action.remove", "Remove")
	message.SetString(lang, "pagination.next", "Next page")
	message.SetString(lang, "status.active", "Active")
	message.SetString(lang, "status.inactive", "Inactive")

	// Dashboard
	message.SetString(lang, "dashboard.heading", "Dashboard")
	message.SetString(lang, "dashboard.products", "Products")
	message.SetString(lang, "dashboard.users", "Users")
	message.SetString(lang, "dashboard.orders", "Orders")
	message.SetString(lang, "dashboard.revenue", "Revenue")
	message.SetString(lang, "dashboard.gift_cards_active", "Gift card value outstanding")
	message.SetString(lang, "dashboard.gift_cards_total", "Gift card value issued")

	// Products
	message.SetString(lang, "products.heading", "Products")
	message.SetString(lang, "products.new", "New product")
	message.SetString(lang, "products.edit", "Edit product")
	message.SetString(lang, "products.name", "Name")
	message.SetString(lang, "products.price", "Price")
	message.SetString(lang, "products.price_cents", "Price (cents)")
	message.SetString(lang, "products.category", "Category")
	message.SetString(lang, "products.no_category", "No category")
	message.SetString(lang, "products.stock", "Stock")
	message.SetString(lang, "products.status", "Status")
	message.SetString(lang, "products.actions", "Actions")
	message.SetString(lang, "products.active", "Active")
	message.SetString(lang, "products.filter", "Filter, e.g. price_cents > 1000 AND is_active = true")
	message.SetString(lang, "products.empty", "No products found.")
	message.SetString(lang, "products.created", "Product created.")
	message.SetString(lang, "products.updated", "Product updated.")
	message.SetString(lang, "products.deleted", "Product deleted.")

	// Categories
	message.SetString(lang, "categories.heading", "Categories")
	message.SetString(lang, "categories.new", "New category")
	message.SetString(lang, "categories.edit", "Edit category")
	message.SetString(lang, "categories.name", "Name")
	message.SetString(lang, "categories.slug", "Slug")
	message.SetString(lang, "categories.parent", "Parent")
	message.SetString(lang, "categories.root", "Top level")
	message.SetString(lang, "categories.sort_order", "Sort order")
	message.SetString(lang, "categories.status", "Status")
	message.SetString(lang, "categories.updated", "Updated")
	message.SetString(lang, "categories.actions", "Actions")
	message.SetString(lang, "categories.move", "Move")
	message.SetString(lang, "categories.empty", "No categories yet.")
	message.SetString(lang, "categories.created", "Category created.")
	message.SetString(lang, "categories.renamed", "Category updated.")
	message.SetString(lang, "categories.moved", "Category moved.")
	message.SetString(lang, "categories.deleted", "Category deleted.")

	// Users
	message.SetString(lang, "users.heading", "Users")
	message.SetString(lang, "users.email", "Email")
	message.SetString(lang, "users.display_name", "Display name")
	message.SetString(lang, "users.admin", "Admin")
	message.SetString(lang, "users.admin_yes", "Yes")
	message.SetString(lang, "users.admin_no", "No")
	message.SetString(lang, "users.created", "Created")
	message.SetString(lang, "users.empty", "No users found.")
	message.SetString(lang, "users.profile", "Profile")
	message.SetString(lang, "users.full_name", "Full name")
	message.SetString(lang, "users.phone", "Phone")
	message.SetString(lang, "users.addresses", "Addresses")
	message.SetString(lang, "users.no_addresses", "No addresses on file.")
	message.SetString(lang, "users.add_address", "Add address")
	message.SetString(lang, "users.address_label", "Label")
	message.SetString(lang, "users.street", "Street")
	message.SetString(lang, "users.city", "City")
	message.SetString(lang, "users.country", "Country")
	message.SetString(lang, "users.postal_code", "Postal code")
	message.SetString(lang, "users.roles", "Roles")
	message.SetString(lang, "users.no_roles", "No roles assigned.")
	message.SetString(lang, "users.profile_saved", "Profile saved.")
	message.SetString(lang, "users.address_saved", "Address saved.")
	message.SetString(lang, "users.role_assigned", "Role assigned.")
	message.SetString(lang, "users.role_removed", "Role removed.")

	// Orders
	message.SetString(lang, "orders.heading", "Orders")
	message.SetString(lang, "orders.id", "Order")
	message.SetString(lang, "orders.user", "Customer")
	message.SetString(lang, "orders.total", "Total")
	message.SetString(lang, "orders.status", "Status")
	message.SetString(lang, "orders.date", "Date")
	message.SetString(lang, "orders.filter", "Filter, e.g. status = \"paid\"")
	message.SetString(lang, "orders.empty", "No orders found.")
	message.SetString(lang, "orders.revenue", "Revenue: %s")
	message.SetString(lang, "orders.detail_heading", "Order %s")

	// Gift cards
	message.SetString(lang, "giftcards.heading", "Gift Cards")
	message.SetString(lang, "giftcards.new", "Issue gift card")
	message.SetString(lang, "giftcards.issue", "Issue")
	message.SetString(lang, "giftcards.code", "Code")
	message.SetString(lang, "giftcards.amount", "Amount")
	message.SetString(lang, "giftcards.amount_cents", "Amount (cents)")
	message.SetString(lang, "giftcards.recipient", "Recipient")
	message.SetString(lang, "giftcards.message", "Message")
	message.SetString(lang, "giftcards.state", "State")
	message.SetString(lang, "giftcards.state_active", "Active")
	message.SetString(lang, "giftcards.state_used", "Used")
	message.SetString(lang, "giftcards.state_expired", "Expired")
	message.SetString(lang, "giftcards.expires", "Expires")
	message.SetString(lang, "giftcards.created", "Issued")
	message.SetString(lang, "giftcards.empty", "No gift cards issued.")
	message.SetString(lang, "giftcards.summary_active", "Outstanding value")
	message.SetString(lang, "giftcards.summary_total", "Issued value")
	message.SetString(lang, "giftcards.issued", "Gift card %s issued.")
	message.SetString(lang, "giftcards.transactions", "Redemptions")
	message.SetString(lang, "giftcards.no_transactions", "No redemptions yet.")
	message.SetString(lang, "giftcards.order", "Order")
	message.SetString(lang, "giftcards.redeemed_at", "Redeemed")
	message.SetString(lang, "giftcards.redeem", "Redeem")
	message.SetString(lang, "giftcards.redeemed", "Gift card redeemed.")

	// Discount keys
	message.SetString(lang, "discountkeys.heading", "Discount Keys")
	message.SetString(lang, "discountkeys.generate", "Generate")
	message.SetString(lang, "discountkeys.code", "Code")
	message.SetString(lang, "discountkeys.tier", "Tier")
	message.SetString(lang, "discountkeys.percent", "Discount")
	message.SetString(lang, "discountkeys.state", "State")
	message.SetString(lang, "discountkeys.state_unused", "Unused")
	message.SetString(lang, "discountkeys.state_used", "Used by %s")
	message.SetString(lang, "discountkeys.state_revoked", "Revoked")
	message.SetString(lang, "discountkeys.created", "Created")
	message.SetString(lang, "discountkeys.actions", "Actions")
	message.SetString(lang, "discountkeys.empty", "No discount keys yet.")
	message.SetString(lang, "discountkeys.generated", "Generated %d keys.")
	message.SetString(lang, "discountkeys.revoked", "Key revoked.")
	message.SetString(lang, "discountkeys.check", "Check code")
	message.SetString(lang, "discountkeys.check_valid", "Valid %s key (%d%% off).")
	message.SetString(lang, "discountkeys.check_used", "This key has already been used.")
	message.SetString(lang, "discountkeys.check_revoked", "This key was revoked.")
	message.SetString(lang, "discountkeys.check_unknown", "No key matches that code.")
	message.SetString(lang, "tier.bronze", "Bronze")
	message.SetString(lang, "tier.silver", "Silver")
	message.SetString(lang, "tier.gold", "Gold")

	// Roles
	message.SetString(lang, "roles.heading", "Roles")
	message.SetString(lang, "roles.new", "New role")
	message.SetString(lang, "roles.edit", "Edit role")
	message.SetString(lang, "roles.name", "Name")
	message.SetString(lang, "roles.level", "Level")
	message.SetString(lang, "roles.permissions", "Permissions")
	message.SetString(lang, "roles.assigned", "Assigned")
	message.SetString(lang, "roles.actions", "Actions")
	message.SetString(lang, "roles.resource", "Resource")
	message.SetString(lang, "roles.access_none", "None")
	message.SetString(lang, "roles.access_read", "Read")
	message.SetString(lang, "roles.access_write", "Write")
	message.SetString(lang, "roles.empty", "No roles defined.")
	message.SetString(lang, "roles.created", "Role created.")
	message.SetString(lang, "roles.updated", "Role updated.")
	message.SetString(lang, "roles.deleted", "Role deleted.")
	message.SetString(lang, "resource.products", "Products")
	message.SetString(lang, "resource.categories", "Categories")
	message.SetString(lang, "resource.users", "Users")
	message.SetString(lang, "resource.orders", "Orders")
	message.SetString(lang, "resource.gift_cards", "Gift Cards")
	message.SetString(lang, "resource.discount_keys", "Discount Keys")
	message.SetString(lang, "resource.roles", "Roles")
}
