package errors

import (
	"errors"
)

var (
	ErrEmptyAuth        = errors.New("missing authorization")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrNotAdmin         = errors.New("admin role required")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidDataURL   = errors.New("invalid data url")
	ErrEmailTaken       = errors.New("this email is already registered, please sign in instead")
	ErrUserNotFound     = errors.New("no account found with this email")
	ErrPasswordMismatch = errors.New("incorrect password, please try again")
)
