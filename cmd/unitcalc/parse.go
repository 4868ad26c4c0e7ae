package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unitcalc/unitcalc/internal/domain"
)

// factor is one term of an expression such as "k.METER^2".
type factor struct {
	prefix   string
	name     string
	exponent int
}

// parseFactors splits "A^2*k.B/C" into factors. Factors after a '/' get
// their exponent negated.
func parseFactors(expr string) ([]factor, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}

	var factors []factor
	sign := 1
	for len(expr) > 0 {
		end := strings.IndexAny(expr, "*/")
		token := expr
		if end >= 0 {
			token = expr[:end]
		}
		f, err := parseFactor(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}
		f.exponent *= sign
		factors = append(factors, f)

		if end < 0 {
			break
		}
		if expr[end] == '/' {
			sign = -1
		}
		expr = expr[end+1:]
		if strings.TrimSpace(expr) == "" {
			return nil, fmt.Errorf("dangling operator in expression")
		}
	}
	return factors, nil
}

func parseFactor(token string) (factor, error) {
	f := factor{name: token, exponent: 1}
	if name, exp, ok := strings.Cut(token, "^"); ok {
		n, err := strconv.Atoi(exp)
		if err != nil {
			return factor{}, fmt.Errorf("invalid exponent in %q: %w", token, err)
		}
		f.name, f.exponent = name, n
	}
	if prefix, name, ok := strings.Cut(f.name, "."); ok {
		f.prefix, f.name = prefix, name
	}
	if f.name == "" {
		return factor{}, fmt.Errorf("missing name in %q", token)
	}
	return f, nil
}

// parseUnit resolves a unit expression built from catalog unit ids.
func parseUnit(expr string) (domain.Unit, error) {
	factors, err := parseFactors(expr)
	if err != nil {
		return domain.One, err
	}

	b := domain.NewUnitBuilder()
	for _, f := range factors {
		u, err := domain.LookupUnit(f.name)
		if err != nil {
			return domain.One, err
		}
		if f.prefix != "" {
			p, err := domain.LookupPrefix(f.prefix)
			if err != nil {
				return domain.One, err
			}
			u = u.AddPrefix(p)
		}
		b.Add(u, f.exponent)
	}
	return b.Build(), nil
}

// parseDimension resolves a dimension expression built from catalog names.
func parseDimension(expr string) (domain.Dimension, error) {
	factors, err := parseFactors(expr)
	if err != nil {
		return domain.NON, err
	}

	b := domain.NewDimensionBuilder()
	for _, f := range factors {
		if f.prefix != "" {
			return domain.NON, fmt.Errorf("dimension %q cannot carry a prefix", f.name)
		}
		d, err := domain.LookupDimension(f.name)
		if err != nil {
			return domain.NON, err
		}
		b.Add(d, f.exponent)
	}
	return b.Build(), nil
}

// parseQuantity parses "MAGNITUDE:UNIT", e.g. "1.5:k.METER".
func parseQuantity(arg string) (domain.Quantity, error) {
	mag, unit, ok := strings.Cut(arg, ":")
	if !ok {
		return domain.Quantity{}, fmt.Errorf("quantity %q must be written MAGNITUDE:UNIT", arg)
	}
	m, err := domain.ParseMagnitude(mag)
	if err != nil {
		return domain.Quantity{}, err
	}
	u, err := parseUnit(unit)
	if err != nil {
		return domain.Quantity{}, err
	}
	return domain.NewQuantity(m, u), nil
}
