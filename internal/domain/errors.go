package domain

import "errors"

// Error taxonomy surfaced to callers. The boundary layer maps each kind
// to a distinct response status.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidProduct    = errors.New("invalid product fields")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrStatusTransition  = errors.New("illegal status transition")
)
