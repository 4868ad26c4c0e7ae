package domain

import "strconv"

// dimensionlessID is the identifier rendered for NON.
const dimensionlessID = "NON"

// Dimension is a physical kind independent of scale. It is either atomic
// (an opaque id such as "LENGTH") or a composite mapping of other dimensions
// to nonzero integer exponents. Dimensions are immutable values; the zero
// value is the dimensionless dimension NON.
//
// Equality is structural and ignores term order, while ID renders the terms
// in the order they were first added.
type Dimension struct {
	id    string
	terms []Term[Dimension]
	key   string
}

// NON is the unique dimensionless dimension.
var NON = Dimension{}

// NewDimension creates an atomic dimension with the given id.
func NewDimension(id string) Dimension {
	if id == "" {
		illegalComposition("atomic dimension requires an id")
	}
	return Dimension{id: id, key: strconv.Quote(id)}
}

// DimensionBuilder accumulates (dimension, exponent) pairs. Adding the same
// component twice sums the exponents; zero exponents are only dropped by Build.
type DimensionBuilder struct {
	acc accumulator[Dimension]
}

// NewDimensionBuilder returns an empty builder.
func NewDimensionBuilder() *DimensionBuilder {
	return &DimensionBuilder{}
}

// Add merges component^exponent into the builder. Adding NON has no effect.
func (b *DimensionBuilder) Add(component Dimension, exponent int) *DimensionBuilder {
	if component.IsDimensionless() {
		return b
	}
	b.acc.add(component, exponent)
	return b
}

func (b *DimensionBuilder) addTerms(terms []Term[Dimension], scale int) *DimensionBuilder {
	for _, t := range terms {
		b.Add(t.Component, t.Exponent*scale)
	}
	return b
}

// Build returns the accumulated dimension. An empty result is NON and a
// single atomic component with exponent 1 is returned as that component.
func (b *DimensionBuilder) Build() Dimension {
	terms := b.acc.terms()
	switch {
	case len(terms) == 0:
		return NON
	case len(terms) == 1 && terms[0].Exponent == 1 && terms[0].Component.IsAtomic():
		return terms[0].Component
	}
	return Dimension{terms: terms, key: termsKey(terms)}
}

// IsAtomic reports whether d is an atomic dimension.
func (d Dimension) IsAtomic() bool {
	return d.id != ""
}

// IsDimensionless reports whether d is NON.
func (d Dimension) IsDimensionless() bool {
	return d.id == "" && len(d.terms) == 0
}

// Terms returns the (component, exponent) pairs of d in insertion order.
// An atomic dimension yields itself with exponent 1 and NON yields nothing.
func (d Dimension) Terms() []Term[Dimension] {
	if d.IsAtomic() {
		return []Term[Dimension]{{Component: d, Exponent: 1}}
	}
	out := make([]Term[Dimension], len(d.terms))
	copy(out, d.terms)
	return out
}

// Multiply sums the exponents of both operands. The result keeps d's
// surviving components in order, followed by the new components of other.
func (d Dimension) Multiply(other Dimension) Dimension {
	return NewDimensionBuilder().
		addTerms(d.Terms(), 1).
		addTerms(other.Terms(), 1).
		Build()
}

// Divide returns d * other⁻¹.
func (d Dimension) Divide(other Dimension) Dimension {
	return d.Multiply(other.Inverse())
}

// Inverse negates every exponent.
func (d Dimension) Inverse() Dimension {
	return d.Pow(-1)
}

// Pow multiplies every exponent by n. Pow(0) is NON.
func (d Dimension) Pow(n int) Dimension {
	return NewDimensionBuilder().addTerms(d.Terms(), n).Build()
}

// Rebase expands every composite component into its own terms, multiplying
// nested exponents by the outer exponent, until only atomic components remain.
func (d Dimension) Rebase() Dimension {
	if d.IsAtomic() {
		return d
	}
	b := NewDimensionBuilder()
	for _, t := range d.terms {
		if t.Component.IsAtomic() {
			b.Add(t.Component, t.Exponent)
			continue
		}
		b.addTerms(t.Component.Rebase().Terms(), t.Exponent)
	}
	return b.Build()
}

// RebaseEquals reports whether d and other describe the same physical
// dimension, however they are composed.
func (d Dimension) RebaseEquals(other Dimension) bool {
	return d.Rebase().Equal(other.Rebase())
}

// Equal reports structural equality, ignoring term order.
func (d Dimension) Equal(other Dimension) bool {
	return d.canonicalKey() == other.canonicalKey()
}

// ID renders d as "(component)ⁿ" pairs in insertion order.
func (d Dimension) ID() string {
	switch {
	case d.IsAtomic():
		return d.id
	case d.IsDimensionless():
		return dimensionlessID
	}
	return renderTerms(d.terms, Dimension.ID)
}

// String implements fmt.Stringer.
func (d Dimension) String() string {
	return d.ID()
}

func (d Dimension) canonicalKey() string {
	if d.key != "" {
		return d.key
	}
	if d.IsAtomic() {
		return strconv.Quote(d.id)
	}
	return termsKey(d.terms)
}
