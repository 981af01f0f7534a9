package errors

import "errors"

var (
	ErrUnauthorized = errors.New("no valid acting identity")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidCheck = errors.New("invalid check kind")
)
