package marketplace

import "errors"

// Business-rule failures are distinct sentinel values so callers can branch
// on cause instead of parsing a generic failure. Store IO errors are never
// wrapped into these; they propagate as-is.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProductNotFound    = errors.New("product not found")
	ErrItemNotFound       = errors.New("item not found in cart")
	ErrEmptyCart          = errors.New("no items in cart")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrNotOwner           = errors.New("not authorized for this resource")
	ErrValidation         = errors.New("missing required field")
)
