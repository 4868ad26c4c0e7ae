package registry

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/unitcalc/unitcalc/internal/domain"
)

// Registry is the reference conversion registry. It knows the exact scale
// of every catalog unit relative to the coherent base units (METER, GRAM,
// SECOND, ...) and the aliases of catalog units and dimensions.
//
// A Registry is immutable once New returns and safe for concurrent use.
type Registry struct {
	factors    map[string]*big.Rat
	references map[string]struct{}
	aliases    map[aliasKey][]string
	logger     *slog.Logger
}

// Option customizes a Registry built by New.
type Option func(*Registry) error

// WithFactor registers an atomic unit whose magnitude is factor times the
// reference unit of its dimension. factor is a rational literal such as
// "3600" or "0.3048" and must be positive.
func WithFactor(u domain.Unit, factor string) Option {
	return func(r *Registry) error {
		if !u.IsAtomic() {
			return fmt.Errorf("factor for %s: only atomic units carry factors", u.ID())
		}
		f, ok := new(big.Rat).SetString(factor)
		if !ok || f.Sign() <= 0 {
			return fmt.Errorf("factor for %s: %w: %q", u.ID(), domain.ErrInvalidMagnitude, factor)
		}
		r.factors[u.Name()] = f
		return nil
	}
}

// WithReferenceUnit registers an atomic unit with scale 1.
func WithReferenceUnit(u domain.Unit) Option {
	return func(r *Registry) error {
		if !u.IsAtomic() {
			return fmt.Errorf("reference unit %s must be atomic", u.ID())
		}
		r.references[u.Name()] = struct{}{}
		return nil
	}
}

// WithAliases adds aliases of the given kind for a catalog unit or
// dimension, identified by its catalog name ("METER", "PRESSURE_STRESS").
func WithAliases(name string, kind AliasKind, aliases ...string) Option {
	return func(r *Registry) error {
		if _, err := domain.LookupUnit(name); err == nil {
			r.addAliases(aliasKey{target: unitTarget, name: name, kind: kind}, aliases)
			return nil
		}
		if _, err := domain.LookupDimension(name); err == nil {
			r.addAliases(aliasKey{target: dimensionTarget, name: name, kind: kind}, aliases)
			return nil
		}
		return fmt.Errorf("aliases for %q: %w", name, domain.ErrUnknownUnit)
	}
}

// WithLogger sets the logger used for conversion diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) error {
		if logger != nil {
			r.logger = logger
		}
		return nil
	}
}

// New returns a registry preloaded with the catalog's base units,
// non-coherent conversion factors and default aliases, then applies opts.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		factors:    make(map[string]*big.Rat),
		references: make(map[string]struct{}),
		aliases:    make(map[aliasKey][]string),
		logger:     slog.Default(),
	}

	defaults := make([]Option, 0, len(baseUnits)+len(defaultFactors))
	for _, u := range baseUnits {
		defaults = append(defaults, WithReferenceUnit(u))
	}
	for _, f := range defaultFactors {
		defaults = append(defaults, WithFactor(f.unit, f.factor))
	}
	defaults = append(defaults, defaultAliases()...)

	for _, opt := range append(defaults, opts...) {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to build registry: %w", err)
		}
	}
	r.logger = r.logger.With(slog.String("component", "registry"))
	return r, nil
}

var baseUnits = []domain.Unit{
	domain.Meter, domain.Gram, domain.Second, domain.Ampere,
	domain.Kelvin, domain.Mole, domain.Candela, domain.Bit,
}

var defaultFactors = []struct {
	unit   domain.Unit
	factor string
}{
	{domain.Minute, "60"},
	{domain.Hour, "3600"},
	{domain.Day, "86400"},
	{domain.Week, "604800"},
	{domain.Foot, "0.3048"},
	{domain.Inch, "0.0254"},
	{domain.Mile, "1609.344"},
	{domain.Pound, "453.59237"},
	{domain.Byte, "8"},
}

// Scale returns the exact factor that converts a magnitude in u into the
// coherent base units of u's dimension.
func (r *Registry) Scale(u domain.Unit) (*big.Rat, error) {
	scale := u.Prefix().Factor()
	switch {
	case u.IsDimensionless():
		return scale, nil
	case u.IsAtomic():
		base, err := r.atomicScale(u)
		if err != nil {
			return nil, err
		}
		return scale.Mul(scale, base), nil
	}
	for _, t := range u.Terms() {
		s, err := r.Scale(t.Component)
		if err != nil {
			return nil, err
		}
		scale.Mul(scale, ratPow(s, t.Exponent))
	}
	return scale, nil
}

func (r *Registry) atomicScale(u domain.Unit) (*big.Rat, error) {
	if def, ok := u.Definition(); ok {
		return r.Scale(def)
	}
	if f, ok := r.factors[u.Name()]; ok {
		return new(big.Rat).Set(f), nil
	}
	if _, ok := r.references[u.Name()]; ok {
		return big.NewRat(1, 1), nil
	}
	return nil, fmt.Errorf("%w: no conversion factor for %s", domain.ErrUnknownUnit, u.Name())
}

// ConvertTo expresses q in target. It fails with a *domain.DimensionMismatchError
// when the types of the two units are not rebase-equal.
func (r *Registry) ConvertTo(q domain.Quantity, target domain.Unit) (domain.Quantity, error) {
	if !q.Unit.Type().RebaseEquals(target.Type()) {
		return domain.Quantity{}, &domain.DimensionMismatchError{From: q.Unit, To: target}
	}
	if q.Unit.Equal(target) {
		return q, nil
	}

	from, err := r.Scale(q.Unit)
	if err != nil {
		return domain.Quantity{}, fmt.Errorf("convert %s: %w", q, err)
	}
	to, err := r.Scale(target)
	if err != nil {
		return domain.Quantity{}, fmt.Errorf("convert %s to %s: %w", q, target.ID(), err)
	}

	out := domain.NewQuantity(q.Magnitude.MultiplyRat(from.Quo(from, to)), target)
	r.logger.Debug("converted quantity",
		slog.String("from", q.String()),
		slog.String("to", out.String()))
	return out, nil
}

// Compare orders a and b after expressing b in a's unit.
func (r *Registry) Compare(a, b domain.Quantity) (int, error) {
	converted, err := r.ConvertTo(b, a.Unit)
	if err != nil {
		return 0, err
	}
	return a.Magnitude.Cmp(converted.Magnitude), nil
}

func ratPow(r *big.Rat, exp int) *big.Rat {
	out := big.NewRat(1, 1)
	base := new(big.Rat).Set(r)
	if exp < 0 {
		base.Inv(base)
		exp = -exp
	}
	for i := 0; i < exp; i++ {
		out.Mul(out, base)
	}
	return out
}
