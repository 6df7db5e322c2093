package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeProductNameEmpty         = "PRODUCT_NAME_EMPTY"
	CodeProductInvalidPrice      = "PRODUCT_INVALID_PRICE"
	CodeProductInvalidStock      = "PRODUCT_INVALID_STOCK"
	CodeProductUnknownCategory   = "PRODUCT_UNKNOWN_CATEGORY"
	CodeCategoryNameEmpty        = "CATEGORY_NAME_EMPTY"
	CodeCategorySlugEmpty        = "CATEGORY_SLUG_EMPTY"
	CodeCategoryCycle            = "CATEGORY_MOVE_CREATES_CYCLE"
	CodeCategoryUnknownParent    = "CATEGORY_UNKNOWN_PARENT"
	CodeUserEmptyID              = "USER_EMPTY_ID"
	CodeUserInvalidEmail         = "USER_INVALID_EMAIL"
	CodeProfileNameEmpty         = "PROFILE_NAME_EMPTY"
	CodeAddressStreetEmpty       = "ADDRESS_STREET_EMPTY"
	CodeGiftCardInvalidAmount    = "GIFT_CARD_INVALID_AMOUNT"
	CodeGiftCardInvalidRecipient = "GIFT_CARD_INVALID_RECIPIENT"
	CodeGiftCardExpired          = "GIFT_CARD_EXPIRED"
	CodeGiftCardAlreadyUsed      = "GIFT_CARD_ALREADY_USED"
	CodeGiftCardUnknownCode      = "GIFT_CARD_UNKNOWN_CODE"
	CodeDiscountInvalidTier      = "DISCOUNT_INVALID_TIER"
	CodeDiscountKeyUsed          = "DISCOUNT_KEY_USED"
	CodeDiscountKeyRevoked       = "DISCOUNT_KEY_REVOKED"
	CodeDiscountUnknownKey       = "DISCOUNT_UNKNOWN_KEY"
	CodeDiscountInvalidCount     = "DISCOUNT_INVALID_COUNT"
	CodeRoleNameEmpty            = "ROLE_NAME_EMPTY"
	CodeRoleInvalidLevel         = "ROLE_INVALID_LEVEL"
	CodeRoleHasAssignments       = "ROLE_HAS_ASSIGNMENTS"
	CodeRoleLevelTooLow          = "ROLE_LEVEL_TOO_LOW"
	CodeRolePermissionDenied     = "ROLE_PERMISSION_DENIED"
	CodeSessionInvalid           = "SESSION_INVALID"
	CodeSessionExpired           = "SESSION_EXPIRED"
	CodeNotFound                 = "NOT_FOUND"
	CodeAlreadyExists            = "ALREADY_EXISTS"
	CodeUnknown                  = "UNKNOWN"
)

func init() {
	RegisterCatalog("en-US", NewCatalog("en-US", map[Code]string{
		CodeProductNameEmpty:         "Product name is required.",
		CodeProductInvalidPrice:      "Product price must be greater than zero.",
		CodeProductInvalidStock:      "Product stock cannot be negative.",
		CodeProductUnknownCategory:   "The selected category does not exist.",
		CodeCategoryNameEmpty:        "Category name is required.",
		CodeCategorySlugEmpty:        "Category slug is required.",
		CodeCategoryCycle:            "A category cannot be moved into one of its own subcategories.",
		CodeCategoryUnknownParent:    "The selected parent category does not exist.",
		CodeUserEmptyID:              "User ID is required.",
		CodeUserInvalidEmail:         "A valid email address is required.",
		CodeProfileNameEmpty:         "Full name is required.",
		CodeAddressStreetEmpty:       "Street address is required.",
		CodeGiftCardInvalidAmount:    "Gift card amount must be greater than zero.",
		CodeGiftCardInvalidRecipient: "A valid recipient email is required.",
		CodeGiftCardExpired:          "This gift card expired on {{.ExpiresAt}}.",
		CodeGiftCardAlreadyUsed:      "This gift card has already been used.",
		CodeGiftCardUnknownCode:      "No gift card matches this code.",
		CodeDiscountInvalidTier:      "Unknown discount tier {{.Tier}}.",
		CodeDiscountKeyUsed:          "This discount key has already been used.",
		CodeDiscountKeyRevoked:       "This discount key has been revoked.",
		CodeDiscountUnknownKey:       "No discount key matches this code.",
		CodeDiscountInvalidCount:     "Key count must be between 1 and {{.Max}}.",
		CodeRoleNameEmpty:            "Role name is required.",
		CodeRoleInvalidLevel:         "Role level must be greater than zero.",
		CodeRoleHasAssignments:       "This role is still assigned to {{.Count}} admin(s) and cannot be deleted.",
		CodeRoleLevelTooLow:          "Your role level does not allow managing this role.",
		CodeRolePermissionDenied:     "You do not have permission to perform this action.",
		CodeSessionInvalid:           "Your session is invalid. Please sign in again.",
		CodeSessionExpired:           "Your session has expired. Please sign in again.",
		CodeNotFound:                 "The requested record was not found.",
		CodeAlreadyExists:            "A record with this identifier already exists.",
		CodeUnknown:                  "Operation failed. Please try again.",
	}))
}
