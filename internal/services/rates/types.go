package rates

// BasisPoints is a fee rate in 1/10000ths. The full rate domain is
// [0, Denominator); Denominator itself (100%) is never a valid rate.
type BasisPoints uint32

// Denominator is the basis-point scale: 10000 bp == 100%.
const Denominator BasisPoints = 10_000

// Valid reports whether the rate is inside the configurable domain.
func (bp BasisPoints) Valid() bool {
	return bp < Denominator
}

// Override is the two-case per-asset rate. Explicit(0) is a real
// "charge nothing" override, distinguishable from NotSet, which falls back
// to the default rate. No sentinel value exists in the rate domain.
type Override struct {
	Rate     BasisPoints `json:"rate"`
	Explicit bool        `json:"explicit"`
}
