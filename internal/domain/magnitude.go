package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Magnitude is an exact rational number. The zero value is 0.
type Magnitude struct {
	r *big.Rat
}

// NewMagnitude returns the magnitude n.
func NewMagnitude(n int64) Magnitude {
	return Magnitude{r: new(big.Rat).SetInt64(n)}
}

// NewMagnitudeFromRat copies r into a magnitude.
func NewMagnitudeFromRat(r *big.Rat) Magnitude {
	if r == nil {
		return Magnitude{}
	}
	return Magnitude{r: new(big.Rat).Set(r)}
}

// NewMagnitudeFromDecimal converts d exactly.
func NewMagnitudeFromDecimal(d decimal.Decimal) Magnitude {
	return Magnitude{r: d.Rat()}
}

// ParseMagnitude parses an integer, decimal ("1.25", "2e3") or fraction ("1/3").
func ParseMagnitude(s string) (Magnitude, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Magnitude{}, fmt.Errorf("%w: %q", ErrInvalidMagnitude, s)
	}
	return Magnitude{r: r}, nil
}

func (m Magnitude) rat() *big.Rat {
	if m.r == nil {
		return new(big.Rat)
	}
	return m.r
}

// Add returns m + other.
func (m Magnitude) Add(other Magnitude) Magnitude {
	return Magnitude{r: new(big.Rat).Add(m.rat(), other.rat())}
}

// Subtract returns m - other.
func (m Magnitude) Subtract(other Magnitude) Magnitude {
	return Magnitude{r: new(big.Rat).Sub(m.rat(), other.rat())}
}

// Multiply returns m * other.
func (m Magnitude) Multiply(other Magnitude) Magnitude {
	return Magnitude{r: new(big.Rat).Mul(m.rat(), other.rat())}
}

// MultiplyRat returns m * r.
func (m Magnitude) MultiplyRat(r *big.Rat) Magnitude {
	return Magnitude{r: new(big.Rat).Mul(m.rat(), r)}
}

// Divide returns m / other, or ErrDivisionByZero.
func (m Magnitude) Divide(other Magnitude) (Magnitude, error) {
	if other.IsZero() {
		return Magnitude{}, ErrDivisionByZero
	}
	return Magnitude{r: new(big.Rat).Quo(m.rat(), other.rat())}, nil
}

// Cmp compares m and other and returns -1, 0 or +1.
func (m Magnitude) Cmp(other Magnitude) int {
	return m.rat().Cmp(other.rat())
}

// Sign returns -1, 0 or +1.
func (m Magnitude) Sign() int {
	return m.rat().Sign()
}

// IsZero reports whether m is 0.
func (m Magnitude) IsZero() bool {
	return m.Sign() == 0
}

// Rat returns a copy of the underlying rational.
func (m Magnitude) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat())
}

// Float64 returns the nearest float64 value.
func (m Magnitude) Float64() float64 {
	f, _ := m.rat().Float64()
	return f
}

// String renders integers plainly and other values as a reduced fraction.
func (m Magnitude) String() string {
	return m.rat().RatString()
}

// Decimal rounds m to places fractional digits using mode. Negative places
// are treated as 0.
func (m Magnitude) Decimal(places int32, mode RoundingMode) decimal.Decimal {
	if places < 0 {
		places = 0
	}
	r := m.rat()
	num := decimal.NewFromBigInt(r.Num(), 0)
	q, rem := num.QuoRem(decimal.NewFromBigInt(r.Denom(), 0), places+1)
	if !rem.IsZero() {
		// A sticky digit below the guard digit keeps inexact values off
		// the half-way and grid points, so one rounding step is exact.
		q = q.Add(decimal.New(int64(num.Sign()), -(places + 2)))
	}
	return mode.round(q, places)
}

// RoundingMode selects how Magnitude.Decimal discards digits.
type RoundingMode uint8

const (
	RoundHalfUp RoundingMode = iota
	RoundHalfEven
	RoundDown
	RoundUp
	RoundFloor
	RoundCeiling
)

var roundingModeNames = map[RoundingMode]string{
	RoundHalfUp:   "half_up",
	RoundHalfEven: "half_even",
	RoundDown:     "down",
	RoundUp:       "up",
	RoundFloor:    "floor",
	RoundCeiling:  "ceiling",
}

// ParseRoundingMode accepts the names returned by RoundingMode.String.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for mode, name := range roundingModeNames {
		if name == s {
			return mode, nil
		}
	}
	return RoundHalfUp, fmt.Errorf("unknown rounding mode %q", s)
}

// String implements fmt.Stringer.
func (m RoundingMode) String() string {
	if name, ok := roundingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

func (m RoundingMode) round(d decimal.Decimal, places int32) decimal.Decimal {
	switch m {
	case RoundHalfUp:
		return d.Round(places)
	case RoundHalfEven:
		return d.RoundBank(places)
	case RoundDown:
		return d.RoundDown(places)
	case RoundUp:
		return d.RoundUp(places)
	case RoundFloor:
		return d.RoundFloor(places)
	case RoundCeiling:
		return d.RoundCeil(places)
	default:
		return d.Round(places)
	}
}
