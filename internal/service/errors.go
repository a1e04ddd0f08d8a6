package service

import "errors"

// Client-input and auth error taxonomy for the credential lifecycle. Every
// value maps to a specific HTTP response in the handler layer; none is
// transient, so callers never retry. Anything else bubbling out of the
// store or the hasher is an internal error and must stay opaque to clients.
var (
	ErrInvalidPhoneFormat    = errors.New("phone number must start with 010")
	ErrInvalidPhoneLength    = errors.New("phone number must be exactly 11 digits")
	ErrDuplicatePhone        = errors.New("phone number already registered")
	ErrInvalidPasswordFormat = errors.New("password must be 6-12 letters or digits")
	ErrDuplicatePassword     = errors.New("new password must differ from the current one")
	ErrInvalidPhone          = errors.New("unknown phone number")
	ErrInvalidPassword       = errors.New("incorrect password")
)
