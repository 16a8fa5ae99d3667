package models

import (
	"errors"
	"fmt"
)

// Common errors used throughout the application
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrTicketNotFound  = errors.New("match ticket not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUnauthorized    = errors.New("unauthorized access")
	ErrDuplicateEntry  = errors.New("duplicate entry")

	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password; the two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthenticated is returned when a cart or checkout operation is
	// attempted without a valid user identity.
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrEmptyCart is returned when checkout is attempted with zero lines.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError reports a missing or malformed required field. No mutation
// is performed when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LimitExceededError reports a cart mutation that would violate the
// per-match ticket cap or the per-product quantity cap. The cart is left
// unchanged.
type LimitExceededError struct {
	ItemID string
	Limit  int
	Scope  string // "match" or "product"
}

func (e *LimitExceededError) Error() string {
	if e.Scope == "match" {
		return fmt.Sprintf("cannot hold more than %d tickets for match %s", e.Limit, e.ItemID)
	}
	return fmt.Sprintf("cannot hold more than %d units of product %s", e.Limit, e.ItemID)
}

// InsufficientStockError reports a requested quantity that exceeds the
// authoritative stock, at verification or decrement time.
type InsufficientStockError struct {
	ItemID    string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (requested: %d, available: %d)",
		e.ItemID, e.Requested, e.Available)
}
