package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// SimplifyConfig controls how Unit.Simplify rewrites a unit. It is an
// immutable value; use NewSimplifyConfig to build one.
type SimplifyConfig struct {
	recursive        bool
	substituteNamed  bool
	mergePrefixes    bool
	preferPrefixForm bool
}

// NewSimplifyConfig returns a configuration with the given flags:
//
//   - recursive: named units defined as a prefix applied to another unit
//     (KILOGRAM) are expanded into that prefixed unit instead of being
//     kept as opaque atoms.
//   - substituteNamed: named catalog units may replace parts of the base
//     expansion. Without it every expandable unit ends in base form.
//   - mergePrefixes: prefixes carried by atomic components of an expanded
//     result are folded into its overall prefix.
//   - preferPrefixForm: prefer a catalog unit with a named prefix (mNEWTON).
//     When false, a derived unit is rewritten to its own definition one
//     level deep and other composites have named groups factored out of
//     their base form (VOLT·METER).
func NewSimplifyConfig(recursive, substituteNamed, mergePrefixes, preferPrefixForm bool) SimplifyConfig {
	return SimplifyConfig{
		recursive:        recursive,
		substituteNamed:  substituteNamed,
		mergePrefixes:    mergePrefixes,
		preferPrefixForm: preferPrefixForm,
	}
}

// DefaultSimplifyConfig enables every flag.
var DefaultSimplifyConfig = NewSimplifyConfig(true, true, true, true)

func (c SimplifyConfig) Recursive() bool        { return c.recursive }
func (c SimplifyConfig) SubstituteNamed() bool  { return c.substituteNamed }
func (c SimplifyConfig) MergePrefixes() bool    { return c.mergePrefixes }
func (c SimplifyConfig) PreferPrefixForm() bool { return c.preferPrefixForm }

// String implements fmt.Stringer.
func (c SimplifyConfig) String() string {
	return fmt.Sprintf("recursive=%t substitute_named=%t merge_prefixes=%t prefer_prefix_form=%t",
		c.recursive, c.substituteNamed, c.mergePrefixes, c.preferPrefixForm)
}

// rewrite is one candidate form tried by Simplify.
type rewrite uint8

const (
	rewriteIdentity rewrite = iota
	rewriteDefinition
	rewriteGroups
	rewritePrefixed
	rewriteExpanded
)

// plan lists the candidates in the order they are tried. The first one
// that applies wins; rewriteExpanded always applies.
func (c SimplifyConfig) plan() []rewrite {
	plan := []rewrite{rewriteIdentity}
	switch {
	case !c.substituteNamed:
	case c.preferPrefixForm:
		plan = append(plan, rewritePrefixed)
	default:
		plan = append(plan, rewriteDefinition, rewriteGroups)
	}
	return append(plan, rewriteExpanded)
}

// Simplify rewrites u into an equivalent unit chosen by cfg. The result
// always has the same scale and a rebase-equal type as u, and simplifying
// it again with the same cfg returns it unchanged.
func (u Unit) Simplify(cfg SimplifyConfig) Unit {
	for _, r := range cfg.plan() {
		if out, ok := r.apply(u, cfg); ok {
			return out
		}
	}
	return baseForm(u, cfg)
}

func (r rewrite) apply(u Unit, cfg SimplifyConfig) (Unit, bool) {
	switch r {
	case rewriteIdentity:
		if u.IsDimensionless() || (u.IsAtomic() && !expandable(u, cfg.recursive)) {
			return u, true
		}
		return Unit{}, false
	case rewriteDefinition:
		if !u.IsAtomic() {
			return u, isDefinitionForm(u)
		}
		def, ok := u.Definition()
		if !ok {
			return Unit{}, false
		}
		return def.AddPrefix(u.prefix), true
	case rewriteGroups:
		return substituteGroups(u, cfg)
	case rewritePrefixed:
		return substitutePrefixed(u, cfg)
	case rewriteExpanded:
		return baseForm(u, cfg), true
	default:
		illegalComposition("unknown rewrite %d", r)
		return Unit{}, false
	}
}

// expandable reports whether the atomic unit u has a definition Simplify may
// replace it with. Prefix-defined units are only expanded when recursive.
func expandable(u Unit, recursive bool) bool {
	def, ok := u.Definition()
	if !ok {
		return false
	}
	return recursive || !def.IsAtomic()
}

// expand replaces every expandable named unit by its definition, applying
// the prefix of the instance being replaced.
func expand(u Unit, recursive bool) Unit {
	switch {
	case u.IsAtomic():
		if !expandable(u, recursive) {
			return u
		}
		def, _ := u.Definition()
		return expand(def, recursive).AddPrefix(u.prefix)
	case u.IsDimensionless():
		return u
	}
	out := One.AddPrefix(u.prefix)
	for _, t := range u.terms {
		out = out.Multiply(expand(t.Component, recursive).Pow(t.Exponent))
	}
	return out
}

// mergeComponentPrefixes moves the prefixes of atomic components into the
// overall prefix. An atomic unit keeps its prefix.
func (u Unit) mergeComponentPrefixes() Unit {
	if u.IsAtomic() || u.IsDimensionless() {
		return u
	}
	b := NewUnitBuilder().WithPrefix(u.prefix)
	for _, t := range u.terms {
		c := t.Component
		if c.IsAtomic() && !c.prefix.IsIdentity() {
			b.WithPrefix(c.prefix.Pow(t.Exponent))
			c = c.withoutPrefix()
		}
		b.Add(c, t.Exponent)
	}
	return b.Build()
}

// baseForm fully expands u under cfg.
func baseForm(u Unit, cfg SimplifyConfig) Unit {
	out := expand(u, cfg.recursive).Rebase()
	if cfg.mergePrefixes {
		out = out.mergeComponentPrefixes()
	}
	return out
}

// isDefinitionForm reports whether the composite u is, up to its overall
// prefix, the definition of a catalog unit (COULOMB·VOLT⁻¹).
func isDefinitionForm(u Unit) bool {
	shape := u.withoutPrefix()
	for _, n := range knownUnits {
		def, ok := n.Definition()
		if ok && !def.IsAtomic() && def.withoutPrefix().Equal(shape) {
			return true
		}
	}
	return false
}

// substitutePrefixed looks for a catalog unit N and a named prefix p such
// that u has the base form of N scaled by p. An unprefixed match is only
// taken when N is kept as is by Simplify, otherwise a second pass would
// expand it again.
func substitutePrefixed(u Unit, cfg SimplifyConfig) (Unit, bool) {
	if u.IsDimensionless() {
		return Unit{}, false
	}
	base := baseForm(u, cfg)
	shape := base.withoutPrefix()

	type match struct {
		unit   Unit
		prefix Prefix
	}
	var prefixed *match
	for _, n := range knownUnits {
		if n.Equal(u) {
			continue
		}
		nb := baseForm(n, cfg)
		if !nb.withoutPrefix().Equal(shape) {
			continue
		}
		p := base.prefix.Multiply(nb.prefix.Inverse())
		if p.IsIdentity() {
			if !expandable(n, cfg.recursive) {
				return n, true
			}
			continue
		}
		if p.IsNamed() && prefixed == nil {
			prefixed = &match{unit: n, prefix: p}
		}
	}
	if prefixed == nil {
		return Unit{}, false
	}
	return prefixed.unit.AddPrefix(prefixed.prefix), true
}

// group is a derived catalog unit with its base form under some cfg.
type group struct {
	unit Unit
	base Unit
	size int
}

// namedGroups returns the derived catalog units whose base form has at
// least two components, largest total exponent first. Ties keep catalog
// order.
func namedGroups(cfg SimplifyConfig) []group {
	var groups []group
	for _, n := range knownUnits {
		if _, ok := n.Definition(); !ok {
			continue
		}
		base := baseForm(n, cfg)
		terms := base.Terms()
		if len(terms) < 2 {
			continue
		}
		size := 0
		for _, t := range terms {
			size += absInt(t.Exponent)
		}
		groups = append(groups, group{unit: n, base: base, size: size})
	}
	slices.SortStableFunc(groups, func(a, b group) int {
		return cmp.Compare(b.size, a.size)
	})
	return groups
}

// substituteGroups factors named groups out of the base form of the
// composite u, one at a time and largest first, and keeps what is left in
// base form. A group matching the whole base form is skipped at the first
// step, so the result never collapses to a lone derived unit.
func substituteGroups(u Unit, cfg SimplifyConfig) (Unit, bool) {
	if u.IsAtomic() || u.IsDimensionless() {
		return Unit{}, false
	}
	groups := namedGroups(cfg)
	rest := baseForm(u, cfg)
	b := NewUnitBuilder()
	found := false
	for {
		next, g, k, ok := factorGroup(rest, groups, found)
		if !ok {
			break
		}
		b.Add(g.unit, k)
		rest, found = next, true
	}
	if !found {
		return Unit{}, false
	}
	return b.WithPrefix(rest.overall()).addTerms(rest.Terms(), 1).Build(), true
}

// factorGroup finds the first group g and sign k such that g^k divides rest
// term by term, and returns rest·g⁻ᵏ.
func factorGroup(rest Unit, groups []group, allowWhole bool) (Unit, group, int, bool) {
	have := make(map[string]int)
	for _, t := range rest.Terms() {
		have[t.Component.canonicalKey()] = t.Exponent
	}
	for _, g := range groups {
		for _, k := range []int{1, -1} {
			if !divides(have, g.base, k) {
				continue
			}
			next := rest.Multiply(g.base.Pow(-k))
			if !allowWhole && next.IsDimensionless() {
				continue
			}
			return next, g, k, true
		}
	}
	return Unit{}, group{}, 0, false
}

// divides reports whether every component of base^k appears in have with
// the same sign and at least the same magnitude.
func divides(have map[string]int, base Unit, k int) bool {
	for _, t := range base.Terms() {
		want := t.Exponent * k
		got := have[t.Component.canonicalKey()]
		if got == 0 || (got > 0) != (want > 0) || absInt(got) < absInt(want) {
			return false
		}
	}
	return true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
