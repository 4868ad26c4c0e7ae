package domain

import (
	"slices"
	"strconv"
	"strings"
)

// Term is one (component, exponent) pair of a composite Dimension or Unit.
type Term[T any] struct {
	Component T
	Exponent  int
}

// keyed is implemented by values with an order-independent structural key.
type keyed interface {
	canonicalKey() string
}

// accumulator is an insertion-ordered map from component to exponent.
// Repeated components are merged by adding exponents; zero exponents are
// kept until terms() is called so later merges still see partial sums.
type accumulator[T keyed] struct {
	entries []Term[T]
	index   map[string]int
}

func (a *accumulator[T]) add(component T, exponent int) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	key := component.canonicalKey()
	if i, ok := a.index[key]; ok {
		a.entries[i].Exponent += exponent
		return
	}
	a.index[key] = len(a.entries)
	a.entries = append(a.entries, Term[T]{Component: component, Exponent: exponent})
}

// terms returns the accumulated entries in insertion order with zero
// exponents removed.
func (a *accumulator[T]) terms() []Term[T] {
	out := make([]Term[T], 0, len(a.entries))
	for _, t := range a.entries {
		if t.Exponent != 0 {
			out = append(out, t)
		}
	}
	return out
}

// termsKey builds the order-independent key of a term list. Terms are
// sorted by component key so that {a:1,b:2} and {b:2,a:1} share a key.
func termsKey[T keyed](terms []Term[T]) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		if t.Exponent == 0 {
			illegalComposition("zero exponent for component %s", t.Component.canonicalKey())
		}
		parts[i] = t.Component.canonicalKey() + "^" + strconv.Itoa(t.Exponent)
	}
	slices.Sort(parts)
	return "{" + strings.Join(parts, ",") + "}"
}

// renderTerms renders terms as "(id)ⁿ" pairs in their stored order.
func renderTerms[T any](terms []Term[T], id func(T) string) string {
	var b strings.Builder
	for _, t := range terms {
		b.WriteByte('(')
		b.WriteString(id(t.Component))
		b.WriteByte(')')
		b.WriteString(Superscript(t.Exponent))
	}
	return b.String()
}
