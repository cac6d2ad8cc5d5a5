package services

import (
	"errors"

	"littlelemon/authz"
)

// Domain errors the controllers translate to HTTP statuses. Anything
// not listed here surfaces as a 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")

	ErrQuantityInvalid  = errors.New("quantity must be at least 1")
	ErrPriceInvalid     = errors.New("price must be at least 5")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrMenuItemInUse    = errors.New("menu item appears in existing orders")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has menu items")
	ErrDuplicate        = errors.New("already exists")

	ErrUserNotFound     = errors.New("user not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartItemNotFound = errors.New("cart item not found")

	ErrOrderNotFound     = errors.New("order not found")
	ErrNoFields          = errors.New("no updatable fields in request")
	ErrCrewInvalid       = errors.New("delivery crew user does not exist")
	ErrTransitionInvalid = errors.New("invalid status transition")
	ErrAlreadyDelivered  = errors.New("order already delivered")
)

// AuthzError wraps a deny decision so controllers can answer 403 with
// the reason the table gave.
type AuthzError struct {
	Reason authz.DenyReason
}

func (e *AuthzError) Error() string {
	return string(e.Reason)
}

func Denied(d authz.Decision) error {
	return &AuthzError{Reason: d.Reason}
}
