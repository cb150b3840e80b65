package common

import "errors"

// Callers match these with errors.Is; transports map them onto status codes.
var (
	// repository specific errors
	ErrNotFound     = errors.New("not found")
	ErrCorruptSlate = errors.New("corrupt todo slate")

	// service specific errors
	ErrInternal        = errors.New("internal error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotOwner        = errors.New("card belongs to another user")
	ErrValidation      = errors.New("validation error")

	// token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// client specific errors
	ErrUnavailable = errors.New("server unavailable")
)
