package models

import "errors"

var (
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrItemNotFound      = errors.New("item not found in cart")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrNegativePrice     = errors.New("prices must not be negative")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidCategory   = errors.New("invalid medicine category")
	ErrInvalidExpiryDate = errors.New("expiry date must be in YYYY-MM-DD format")
	ErrNegativeStock     = errors.New("stock must not be negative")
	ErrForbidden         = errors.New("not authorized to access this resource")
	ErrEmailTaken        = errors.New("email already registered")
)
