package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrEmptyCollection is returned when a chooser strategy is invoked
	// with zero quantities.
	ErrEmptyCollection = errors.New("empty quantity collection")

	// ErrDimensionMismatch is returned when two quantities are related
	// (compared or converted) although their dimensions are not rebase-equal.
	// This is usually wrapped in a DimensionMismatchError.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIllegalComposition indicates a broken algebra invariant. It is never
	// returned to callers; it is carried by IllegalCompositionError panics.
	ErrIllegalComposition = errors.New("illegal composition")

	// ErrUnknownUnit is returned when a unit id is not part of the catalog,
	// or when a registry has no conversion factor for an atomic unit.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnknownDimension is returned when a dimension name is not part of the catalog.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrUnknownPrefix is returned when a prefix name is not recognized.
	ErrUnknownPrefix = errors.New("unknown prefix")

	// ErrDivisionByZero is returned by Magnitude.Divide for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidMagnitude is returned when a magnitude literal cannot be parsed.
	ErrInvalidMagnitude = errors.New("invalid magnitude")
)

// DimensionMismatchError describes a failed attempt to relate two units
// whose dimensions differ.
type DimensionMismatchError struct {
	From Unit
	To   Unit
}

// Error implements the error interface.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot relate %s (%s) to %s (%s)",
		ErrDimensionMismatch,
		e.From.ID(), e.From.Type().Rebase().ID(),
		e.To.ID(), e.To.Type().Rebase().ID())
}

// Is reports whether target is ErrDimensionMismatch so callers can use errors.Is.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// IllegalCompositionError signals a bug in the algebra, e.g. a composite
// observed with a zero exponent after construction. It is raised with panic.
type IllegalCompositionError struct {
	Reason string
}

// Error implements the error interface.
func (e *IllegalCompositionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIllegalComposition, e.Reason)
}

// Is reports whether target is ErrIllegalComposition.
func (e *IllegalCompositionError) Is(target error) bool {
	return target == ErrIllegalComposition
}

func illegalComposition(format string, args ...any) {
	panic(&IllegalCompositionError{Reason: fmt.Sprintf(format, args...)})
}
