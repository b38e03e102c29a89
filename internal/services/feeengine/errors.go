package feeengine

import "errors"

// ErrFeeRateExceeded is returned when the combined platform and caller rate
// reaches or exceeds 100%. Individual rates are validated at configuration
// time, but the caller rate is request-supplied, so the sum is checked on
// every computation.
var ErrFeeRateExceeded = errors.New("combined fee rate must stay below 10000 basis points")
