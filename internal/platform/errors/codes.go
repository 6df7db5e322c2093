// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Product errors
	CodeProductNameEmpty       Code = "PRODUCT_NAME_EMPTY"
	CodeProductInvalidPrice    Code = "PRODUCT_INVALID_PRICE"
	CodeProductInvalidStock    Code = "PRODUCT_INVALID_STOCK"
	CodeProductUnknownCategory Code = "PRODUCT_UNKNOWN_CATEGORY"

	// Category errors
	CodeCategoryNameEmpty     Code = "CATEGORY_NAME_EMPTY"
	CodeCategorySlugEmpty     Code = "CATEGORY_SLUG_EMPTY"
	CodeCategoryCycle         Code = "CATEGORY_MOVE_CREATES_CYCLE"
	CodeCategoryUnknownParent Code = "CATEGORY_UNKNOWN_PARENT"

	// User/profile errors
	CodeUserEmptyID        Code = "USER_EMPTY_ID"
	CodeUserInvalidEmail   Code = "USER_INVALID_EMAIL"
	CodeProfileNameEmpty   Code = "PROFILE_NAME_EMPTY"
	CodeAddressStreetEmpty Code = "ADDRESS_STREET_EMPTY"

	// Gift card errors
	CodeGiftCardInvalidAmount    Code = "GIFT_CARD_INVALID_AMOUNT"
	CodeGiftCardInvalidRecipient Code = "GIFT_CARD_INVALID_RECIPIENT"
	CodeGiftCardExpired          Code = "GIFT_CARD_EXPIRED"
	CodeGiftCardAlreadyUsed      Code = "GIFT_CARD_ALREADY_USED"
	CodeGiftCardUnknownCode      Code = "GIFT_CARD_UNKNOWN_CODE"

	// Discount key errors
	CodeDiscountInvalidTier  Code = "DISCOUNT_INVALID_TIER"
	CodeDiscountKeyUsed      Code = "DISCOUNT_KEY_USED"
	CodeDiscountKeyRevoked   Code = "DISCOUNT_KEY_REVOKED"
	CodeDiscountUnknownKey   Code = "DISCOUNT_UNKNOWN_KEY"
	CodeDiscountInvalidCount Code = "DISCOUNT_INVALID_COUNT"

	// Role errors
	CodeRoleNameEmpty        Code = "ROLE_NAME_EMPTY"
	CodeRoleInvalidLevel     Code = "ROLE_INVALID_LEVEL"
	CodeRoleHasAssignments   Code = "ROLE_HAS_ASSIGNMENTS"
	CodeRoleLevelTooLow      Code = "ROLE_LEVEL_TOO_LOW"
	CodeRolePermissionDenied Code = "ROLE_PERMISSION_DENIED"

	// Auth errors
	CodeSessionInvalid Code = "SESSION_INVALID"
	CodeSessionExpired Code = "SESSION_EXPIRED"

	// Storage errors
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeProductNameEmpty,
		CodeProductInvalidPrice,
		CodeProductInvalidStock,
		CodeProductUnknownCategory,
		CodeCategoryNameEmpty,
		CodeCategorySlugEmpty,
		CodeCategoryUnknownParent,
		CodeUserEmptyID,
		CodeUserInvalidEmail,
		CodeProfileNameEmpty,
		CodeAddressStreetEmpty,
		CodeGiftCardInvalidAmount,
		CodeGiftCardInvalidRecipient,
		CodeDiscountInvalidTier,
		CodeDiscountInvalidCount,
		CodeRoleNameEmpty,
		CodeRoleInvalidLevel:
		return http.StatusBadRequest

	// Conflict - state disallows the operation
	case CodeCategoryCycle,
		CodeGiftCardExpired,
		CodeGiftCardAlreadyUsed,
		CodeDiscountKeyUsed,
		CodeDiscountKeyRevoked,
		CodeRoleHasAssignments,
		CodeAlreadyExists:
		return http.StatusConflict

	// Forbidden - caller lacks authority
	case CodeRoleLevelTooLow,
		CodeRolePermissionDenied:
		return http.StatusForbidden

	// Unauthorized - missing or invalid session
	case CodeSessionInvalid,
		CodeSessionExpired:
		return http.StatusUnauthorized

	case CodeNotFound,
		CodeGiftCardUnknownCode,
		CodeDiscountUnknownKey:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
