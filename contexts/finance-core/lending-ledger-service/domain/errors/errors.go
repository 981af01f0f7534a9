package errors

import "errors"

var (
	ErrInvalidRecordInput    = errors.New("lending record input is invalid")
	ErrInvalidTokenAmount    = errors.New("token amount must be a positive integer")
	ErrRecordNotFound        = errors.New("lending record not found")
	ErrRecordAlreadyAccepted = errors.New("lending record is already accepted")
	ErrBalanceExceedsTotal   = errors.New("token balance cannot exceed total tokens lent")
	ErrConcurrentUpdate      = errors.New("lending record was modified concurrently")
)
