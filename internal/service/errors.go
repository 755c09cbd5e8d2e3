package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyPaid        = errors.New("order already paid")
	ErrIntentMismatch     = errors.New("payment intent does not belong to this order")
	ErrNotDeletable       = errors.New("order can no longer be deleted")
	ErrTransitionDenied   = errors.New("status transition not allowed")

	// ErrGateway marks payment gateway failures; the caller sees a generic
	// upstream failure, the detail stays in the logs.
	ErrGateway = errors.New("payment gateway failure")
)

// ValidationError carries field-level detail for malformed requests.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
