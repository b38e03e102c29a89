package gateway

import "errors"

var (
	// ErrSlippageExceeded is returned when the net amount after fees falls
	// below the caller's declared minimum.
	ErrSlippageExceeded = errors.New("net amount below declared minimum")

	// ErrUnauthorized is returned when the caller lacks the capability an
	// operation requires.
	ErrUnauthorized = errors.New("caller lacks the required capability")

	// ErrTransferFailed wraps any failure of the underlying ledger or
	// bridge messenger. The enclosing database transaction rolls back, so
	// no partial fee collection survives.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrReentrantCall is returned when a transfer entry point is entered
	// again before the in-flight request completed.
	ErrReentrantCall = errors.New("reentrant call rejected")

	// ErrInvalidDestination is returned by the fixed-destination variant
	// when the destination is not exactly 32 bytes.
	ErrInvalidDestination = errors.New("destination must be exactly 32 bytes")

	// ErrMissingFeeRecipient is returned when a caller fee rate is set but
	// no recipient account was supplied for it.
	ErrMissingFeeRecipient = errors.New("caller fee requires a fee recipient")
)
