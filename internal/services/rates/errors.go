package rates

import "errors"

var (
	// ErrInvalidRate is returned when a configured rate is >= 100%.
	// Invalid rates are rejected at configuration time and can never
	// reach fee computation.
	ErrInvalidRate = errors.New("fee rate must be below 10000 basis points")

	// ErrUnauthorized is returned when a caller without the owner
	// capability attempts an administrative operation.
	ErrUnauthorized = errors.New("caller lacks the fee admin capability")
)
