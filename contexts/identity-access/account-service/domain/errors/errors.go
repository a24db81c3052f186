package errors

import "errors"

var (
	ErrInvalidAccountInput = errors.New("invalid account input")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrTokenInvalid        = errors.New("access token is invalid")
	ErrForbidden           = errors.New("role is not allowed to perform this action")
	ErrConflict            = errors.New("account store conflict")
)
