package domain

import (
	"strconv"
)

// oneID is the identifier rendered for the dimensionless unit.
const oneID = "ONE"

// Unit is an immutable unit of measure. An atomic unit has its own id,
// dimension and prefix, and may carry a definition in terms of other units
// (NEWTON is defined as KILOGRAM·METER·SECOND⁻²). A composite unit maps
// other units to nonzero integer exponents and has one overall prefix.
// The zero value is the dimensionless unit One.
type Unit struct {
	id         string
	dimension  Dimension
	definition *Unit
	prefix     Prefix
	terms      []Term[Unit]
	key        string
}

// One is the dimensionless unit with scale 1.
var One = Unit{}

// NewUnit creates an atomic unit with no definition. Base units and units
// whose scale is only known to a conversion registry (HOUR, FOOT) are
// created this way.
func NewUnit(id string, dimension Dimension) Unit {
	if id == "" {
		illegalComposition("atomic unit requires an id")
	}
	u := Unit{id: id, dimension: dimension}
	u.key = u.computeKey()
	return u
}

// NewDerivedUnit creates a named atomic unit defined by another unit
// expression. It panics with IllegalCompositionError when dimension does not
// match the definition's type.
func NewDerivedUnit(id string, dimension Dimension, definition Unit) Unit {
	if !dimension.RebaseEquals(definition.Type()) {
		illegalComposition("unit %s declared as %s but defined as %s",
			id, dimension.Rebase().ID(), definition.Type().Rebase().ID())
	}
	u := NewUnit(id, dimension)
	u.definition = &definition
	return u
}

// UnitBuilder accumulates (unit, exponent) pairs and an overall prefix.
type UnitBuilder struct {
	acc    accumulator[Unit]
	prefix Prefix
}

// NewUnitBuilder returns an empty builder.
func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{}
}

// Add merges component^exponent into the builder. Exponents of repeated
// components are summed. A dimensionless component only contributes its
// prefix raised to exponent.
func (b *UnitBuilder) Add(component Unit, exponent int) *UnitBuilder {
	if component.IsDimensionless() {
		b.prefix = b.prefix.Multiply(component.prefix.Pow(exponent))
		return b
	}
	b.acc.add(component, exponent)
	return b
}

// WithPrefix composes p into the overall prefix of the unit being built.
func (b *UnitBuilder) WithPrefix(p Prefix) *UnitBuilder {
	b.prefix = b.prefix.Multiply(p)
	return b
}

func (b *UnitBuilder) addTerms(terms []Term[Unit], scale int) *UnitBuilder {
	for _, t := range terms {
		b.Add(t.Component, t.Exponent*scale)
	}
	return b
}

// Build returns the accumulated unit. Zero exponents are dropped; an empty
// result is One (carrying any accumulated prefix) and a single atomic
// component with exponent 1 is returned as that unit with the overall
// prefix applied.
func (b *UnitBuilder) Build() Unit {
	terms := b.acc.terms()
	switch {
	case len(terms) == 0:
		return One.AddPrefix(b.prefix)
	case len(terms) == 1 && terms[0].Exponent == 1 && terms[0].Component.IsAtomic():
		return terms[0].Component.AddPrefix(b.prefix)
	}
	u := Unit{terms: terms, prefix: b.prefix}
	u.key = u.computeKey()
	return u
}

// IsAtomic reports whether u is an atomic unit.
func (u Unit) IsAtomic() bool {
	return u.id != ""
}

// Name returns the id of an atomic unit without its prefix symbol, or ""
// for a composite unit.
func (u Unit) Name() string {
	return u.id
}

// IsDimensionless reports whether u has no components. A dimensionless
// unit may still carry a prefix (a pure scale factor).
func (u Unit) IsDimensionless() bool {
	return u.id == "" && len(u.terms) == 0
}

// Prefix returns the prefix of an atomic unit, or the overall prefix of a
// composite one.
func (u Unit) Prefix() Prefix {
	return u.prefix
}

// Definition returns the unit expression a named unit is defined by. The
// prefix of u itself is not applied to the returned unit.
func (u Unit) Definition() (Unit, bool) {
	if u.definition == nil {
		return Unit{}, false
	}
	return *u.definition, true
}

// Terms returns the (component, exponent) pairs of u in insertion order.
// An atomic unit yields itself, prefix included, with exponent 1.
func (u Unit) Terms() []Term[Unit] {
	if u.IsAtomic() {
		return []Term[Unit]{{Component: u, Exponent: 1}}
	}
	out := make([]Term[Unit], len(u.terms))
	copy(out, u.terms)
	return out
}

// overall is the prefix applied to the term list as a whole. Atomic units
// keep their prefix on the component itself.
func (u Unit) overall() Prefix {
	if u.IsAtomic() {
		return NoPrefix
	}
	return u.prefix
}

// Multiply sums the exponents of both operands and composes their prefixes.
func (u Unit) Multiply(other Unit) Unit {
	return NewUnitBuilder().
		WithPrefix(u.overall()).
		addTerms(u.Terms(), 1).
		WithPrefix(other.overall()).
		addTerms(other.Terms(), 1).
		Build()
}

// Divide returns u * other⁻¹.
func (u Unit) Divide(other Unit) Unit {
	return u.Multiply(other.Inverse())
}

// Inverse negates every exponent and inverts the overall prefix.
func (u Unit) Inverse() Unit {
	return u.Pow(-1)
}

// Pow multiplies every exponent by n and raises the overall prefix to n.
func (u Unit) Pow(n int) Unit {
	return NewUnitBuilder().
		WithPrefix(u.overall().Pow(n)).
		addTerms(u.Terms(), n).
		Build()
}

// AddPrefix returns u with p composed into its prefix.
func (u Unit) AddPrefix(p Prefix) Unit {
	if p.IsIdentity() {
		return u
	}
	out := u
	out.prefix = u.prefix.Multiply(p)
	out.key = out.computeKey()
	return out
}

// withoutPrefix returns u with the identity prefix.
func (u Unit) withoutPrefix() Unit {
	return u.AddPrefix(u.prefix.Inverse())
}

// Rebase expands every nested composite component into its own terms until
// only atomic components remain. The prefix of a nested composite is raised
// to the outer exponent and folded into the overall prefix; atomic
// components keep their own prefixes.
func (u Unit) Rebase() Unit {
	if u.IsAtomic() || u.IsDimensionless() {
		return u
	}
	b := NewUnitBuilder().WithPrefix(u.prefix)
	for _, t := range u.terms {
		if t.Component.IsAtomic() {
			b.Add(t.Component, t.Exponent)
			continue
		}
		nested := t.Component.Rebase()
		b.WithPrefix(nested.overall().Pow(t.Exponent))
		b.addTerms(nested.Terms(), t.Exponent)
	}
	return b.Build()
}

// RebaseEquals reports whether u and other have the same rebased form.
func (u Unit) RebaseEquals(other Unit) bool {
	return u.Rebase().Equal(other.Rebase())
}

// Type returns the dimension of u: the product of each component's
// dimension raised to its exponent. Component dimensions are merged term
// by term, so Type(a.Multiply(b)) equals a.Type().Multiply(b.Type()).
func (u Unit) Type() Dimension {
	if u.IsAtomic() {
		return u.dimension
	}
	b := NewDimensionBuilder()
	for _, t := range u.terms {
		b.addTerms(t.Component.Type().Terms(), t.Exponent)
	}
	return b.Build()
}

// Equal reports structural equality, prefixes included, ignoring term order.
func (u Unit) Equal(other Unit) bool {
	return u.canonicalKey() == other.canonicalKey()
}

// ID renders u with its prefix symbol in front of the first rendered term.
func (u Unit) ID() string {
	symbol := u.prefix.Symbol()
	switch {
	case u.IsAtomic():
		return symbol + u.id
	case u.IsDimensionless():
		return symbol + oneID
	}
	return symbol + renderTerms(u.terms, Unit.ID)
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return u.ID()
}

func (u Unit) canonicalKey() string {
	if u.key != "" {
		return u.key
	}
	return u.computeKey()
}

func (u Unit) computeKey() string {
	var scale string
	if !u.prefix.IsIdentity() {
		scale = "[" + strconv.Itoa(u.prefix.decimal) + "," + strconv.Itoa(u.prefix.binary) + "]"
	}
	if u.IsAtomic() {
		return strconv.Quote(u.id) + scale
	}
	return scale + termsKey(u.terms)
}
