package ledger

import "errors"

var (
	// ErrInsufficientBalance is returned when a pull would take an account
	// below zero.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned for zero-amount movements; callers skip
	// zero fees before reaching the ledger.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)
