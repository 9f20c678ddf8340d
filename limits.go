package whole

// Numeric traits for Whole, in the manner of a numeric-limits table.
// Accessors that have no meaningful value for an unbounded integer
// (Max, Epsilon, RoundError, Infinity, QuietNaN, SignalingNaN,
// DenormMin) are deliberately not declared: referencing one fails to
// compile, which is the intended misuse signal. Returning a zero value
// instead would misreport "no such value" as "the value is zero".
const (
	IsSpecialized = true
	IsSigned      = false
	IsInteger     = true
	IsExact       = true
	Radix         = 2
	IsBounded     = false
	IsModulo      = false
	Traps         = false

	// an unbounded type has no fixed digit count
	Digits   = 0
	Digits10 = 0
)

// Min returns the smallest representable value, which is zero.
func Min() *Whole {
	return New()
}
