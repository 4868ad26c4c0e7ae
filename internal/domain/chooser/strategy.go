package chooser

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/unitcalc/unitcalc/internal/domain"
)

// ErrUnknownKind is returned for strategy names outside the closed set.
var ErrUnknownKind = errors.New("unknown chooser strategy")

// Configuration relates quantities expressed in different units.
type Configuration interface {
	// Compare returns a negative number, zero or a positive number when a
	// is smaller than, equal to or larger than b.
	Compare(a, b domain.Quantity) (int, error)

	// ConvertTo expresses q in target.
	ConvertTo(q domain.Quantity, target domain.Unit) (domain.Quantity, error)
}

// Strategy picks one representative quantity from a collection.
type Strategy interface {
	// Choose returns the representative of quantities. An empty collection
	// fails with domain.ErrEmptyCollection.
	Choose(quantities []domain.Quantity, cfg Configuration) (domain.Quantity, error)

	// Kind identifies the strategy.
	Kind() Kind
}

// Kind enumerates the available strategies.
type Kind uint8

const (
	KindMin Kind = iota
	KindMax
	KindMedian
	KindAverage
)

var kindNames = [...]string{
	KindMin:     "min",
	KindMax:     "max",
	KindMedian:  "median",
	KindAverage: "average",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps "min", "max", "median" or "average" to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// strategy is the single implementation of Strategy; behavior is selected
// by kind.
type strategy struct {
	kind Kind
}

// New returns the strategy of the given kind.
func New(kind Kind) (Strategy, error) {
	if int(kind) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return strategy{kind: kind}, nil
}

// Min returns the strategy choosing the smallest quantity. The first of
// several equal minima wins.
func Min() Strategy { return strategy{kind: KindMin} }

// Max returns the strategy choosing the largest quantity. The first of
// several equal maxima wins.
func Max() Strategy { return strategy{kind: KindMax} }

// Median returns the strategy choosing the middle quantity. For an even
// count it returns the mean of the two middle quantities, expressed in the
// unit of the lower one.
func Median() Strategy { return strategy{kind: KindMedian} }

// Average returns the strategy choosing the arithmetic mean, expressed in
// the unit of the first quantity.
func Average() Strategy { return strategy{kind: KindAverage} }

func (s strategy) Kind() Kind {
	return s.kind
}

// Choose implements Strategy.
func (s strategy) Choose(quantities []domain.Quantity, cfg Configuration) (domain.Quantity, error) {
	if len(quantities) == 0 {
		return domain.Quantity{}, fmt.Errorf("%s: %w", s.kind, domain.ErrEmptyCollection)
	}

	var (
		out domain.Quantity
		err error
	)
	switch s.kind {
	case KindMin:
		out, err = extreme(quantities, cfg, -1)
	case KindMax:
		out, err = extreme(quantities, cfg, 1)
	case KindMedian:
		out, err = median(quantities, cfg)
	case KindAverage:
		out, err = average(quantities, cfg)
	default:
		return domain.Quantity{}, fmt.Errorf("%w: %d", ErrUnknownKind, s.kind)
	}
	if err != nil {
		return domain.Quantity{}, fmt.Errorf("%s: %w", s.kind, err)
	}
	return out, nil
}

// extreme returns the first quantity q for which no later quantity compares
// strictly beyond it in direction (-1 for min, +1 for max).
func extreme(quantities []domain.Quantity, cfg Configuration, direction int) (domain.Quantity, error) {
	best := quantities[0]
	for _, q := range quantities[1:] {
		c, err := cfg.Compare(q, best)
		if err != nil {
			return domain.Quantity{}, err
		}
		if c*direction > 0 {
			best = q
		}
	}
	return best, nil
}

func median(quantities []domain.Quantity, cfg Configuration) (domain.Quantity, error) {
	sorted := slices.Clone(quantities)

	var cmpErr error
	slices.SortStableFunc(sorted, func(a, b domain.Quantity) int {
		if cmpErr != nil {
			return 0
		}
		c, err := cfg.Compare(a, b)
		if err != nil {
			cmpErr = err
			return 0
		}
		return c
	})
	if cmpErr != nil {
		return domain.Quantity{}, cmpErr
	}

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}

	lower := sorted[mid-1]
	upper, err := cfg.ConvertTo(sorted[mid], lower.Unit)
	if err != nil {
		return domain.Quantity{}, err
	}
	m, err := lower.Magnitude.Add(upper.Magnitude).Divide(domain.NewMagnitude(2))
	if err != nil {
		return domain.Quantity{}, err
	}
	return domain.NewQuantity(m, lower.Unit), nil
}

func average(quantities []domain.Quantity, cfg Configuration) (domain.Quantity, error) {
	unit := quantities[0].Unit
	var sum domain.Magnitude
	for _, q := range quantities {
		converted, err := cfg.ConvertTo(q, unit)
		if err != nil {
			return domain.Quantity{}, err
		}
		sum = sum.Add(converted.Magnitude)
	}
	m, err := sum.Divide(domain.NewMagnitude(int64(len(quantities))))
	if err != nil {
		return domain.Quantity{}, err
	}
	return domain.NewQuantity(m, unit), nil
}
