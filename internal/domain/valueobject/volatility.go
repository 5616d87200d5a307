package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Volatility – immutable value object
// ---------------------------------------------------------------------------

// Volatility classifies month-over-month revenue variability.
type Volatility struct {
	value string
}

const (
	volatilityLow    = "LOW"
	volatilityMedium = "MEDIUM"
	volatilityHigh   = "HIGH"
)

var (
	VolatilityLow    = Volatility{value: volatilityLow}
	VolatilityMedium = Volatility{value: volatilityMedium}
	VolatilityHigh   = Volatility{value: volatilityHigh}
)

var validVolatilities = map[string]Volatility{
	volatilityLow:    VolatilityLow,
	volatilityMedium: VolatilityMedium,
	volatilityHigh:   VolatilityHigh,
}

// NewVolatility creates a Volatility from a raw string.
// An empty string defaults to MEDIUM.
func NewVolatility(s string) (Volatility, error) {
	if s == "" {
		return VolatilityMedium, nil
	}
	v, ok := validVolatilities[s]
	if !ok {
		return Volatility{}, fmt.Errorf("invalid volatility level: %q", s)
	}
	return v, nil
}

// String returns the string representation of the volatility level.
func (v Volatility) String() string { return v.value }

// IsZero returns true if the volatility has not been initialised.
func (v Volatility) IsZero() bool { return v.value == "" }

// Equal returns true when both levels carry the same value.
func (v Volatility) Equal(other Volatility) bool { return v.value == other.value }
