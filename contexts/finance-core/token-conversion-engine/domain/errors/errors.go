package errors

import "errors"

var (
	ErrInvalidPrice = errors.New("price must be a finite non-negative decimal")
)
