package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// Prefix is a multiplicative scale factor 10^decimal · 2^binary attached to a
// unit. Composing prefixes adds their orders, so kilo∘kilo has the scale of
// mega whether or not the result has a name. Prefix values are comparable
// with ==; the zero value is NoPrefix.
type Prefix struct {
	decimal int
	binary  int
}

type prefixInfo struct {
	name   string
	symbol string
	prefix Prefix
}

// NoPrefix is the identity prefix (scale 1).
var NoPrefix = Prefix{}

// SI and IEC prefixes.
var (
	Quetta = Prefix{decimal: 30}
	Ronna  = Prefix{decimal: 27}
	Yotta  = Prefix{decimal: 24}
	Zetta  = Prefix{decimal: 21}
	Exa    = Prefix{decimal: 18}
	Peta   = Prefix{decimal: 15}
	Tera   = Prefix{decimal: 12}
	Giga   = Prefix{decimal: 9}
	Mega   = Prefix{decimal: 6}
	Kilo   = Prefix{decimal: 3}
	Hecto  = Prefix{decimal: 2}
	Deca   = Prefix{decimal: 1}
	Deci   = Prefix{decimal: -1}
	Centi  = Prefix{decimal: -2}
	Milli  = Prefix{decimal: -3}
	Micro  = Prefix{decimal: -6}
	Nano   = Prefix{decimal: -9}
	Pico   = Prefix{decimal: -12}
	Femto  = Prefix{decimal: -15}
	Atto   = Prefix{decimal: -18}
	Zepto  = Prefix{decimal: -21}
	Yocto  = Prefix{decimal: -24}
	Ronto  = Prefix{decimal: -27}
	Quecto = Prefix{decimal: -30}

	Kibi = Prefix{binary: 10}
	Mebi = Prefix{binary: 20}
	Gibi = Prefix{binary: 30}
	Tebi = Prefix{binary: 40}
	Pebi = Prefix{binary: 50}
	Exbi = Prefix{binary: 60}
	Zebi = Prefix{binary: 70}
	Yobi = Prefix{binary: 80}
)

var namedPrefixes = []prefixInfo{
	{"quetta", "Q", Quetta},
	{"ronna", "R", Ronna},
	{"yotta", "Y", Yotta},
	{"zetta", "Z", Zetta},
	{"exa", "E", Exa},
	{"peta", "P", Peta},
	{"tera", "T", Tera},
	{"giga", "G", Giga},
	{"mega", "M", Mega},
	{"kilo", "k", Kilo},
	{"hecto", "h", Hecto},
	{"deca", "da", Deca},
	{"deci", "d", Deci},
	{"centi", "c", Centi},
	{"milli", "m", Milli},
	{"micro", "µ", Micro},
	{"nano", "n", Nano},
	{"pico", "p", Pico},
	{"femto", "f", Femto},
	{"atto", "a", Atto},
	{"zepto", "z", Zepto},
	{"yocto", "y", Yocto},
	{"ronto", "r", Ronto},
	{"quecto", "q", Quecto},
	{"kibi", "Ki", Kibi},
	{"mebi", "Mi", Mebi},
	{"gibi", "Gi", Gibi},
	{"tebi", "Ti", Tebi},
	{"pebi", "Pi", Pebi},
	{"exbi", "Ei", Exbi},
	{"zebi", "Zi", Zebi},
	{"yobi", "Yi", Yobi},
}

var prefixesByValue = func() map[Prefix]prefixInfo {
	m := make(map[Prefix]prefixInfo, len(namedPrefixes))
	for _, p := range namedPrefixes {
		m[p.prefix] = p
	}
	return m
}()

// LookupPrefix finds a named prefix by name ("kilo") or symbol ("k").
func LookupPrefix(name string) (Prefix, error) {
	for _, p := range namedPrefixes {
		if p.name == strings.ToLower(name) || p.symbol == name {
			return p.prefix, nil
		}
	}
	return NoPrefix, fmt.Errorf("%w: %q", ErrUnknownPrefix, name)
}

// Multiply composes two prefixes by multiplying their scale factors.
func (p Prefix) Multiply(other Prefix) Prefix {
	return Prefix{decimal: p.decimal + other.decimal, binary: p.binary + other.binary}
}

// Pow raises the prefix to the n-th power.
func (p Prefix) Pow(n int) Prefix {
	return Prefix{decimal: p.decimal * n, binary: p.binary * n}
}

// Inverse returns the prefix with the reciprocal scale.
func (p Prefix) Inverse() Prefix {
	return p.Pow(-1)
}

// IsIdentity reports whether p has scale 1.
func (p Prefix) IsIdentity() bool {
	return p == NoPrefix
}

// IsNamed reports whether p is one of the SI or IEC prefixes.
func (p Prefix) IsNamed() bool {
	_, ok := prefixesByValue[p]
	return ok
}

// Name returns the prefix name, or "" for the identity and unnamed compositions.
func (p Prefix) Name() string {
	return prefixesByValue[p].name
}

// Symbol returns the prefix symbol. Unnamed compositions render their
// powers in brackets, e.g. "[10⁶·2¹⁰]". The identity renders as "".
func (p Prefix) Symbol() string {
	if p.IsIdentity() {
		return ""
	}
	if info, ok := prefixesByValue[p]; ok {
		return info.symbol
	}
	var parts []string
	if p.decimal != 0 {
		parts = append(parts, "10"+Superscript(p.decimal))
	}
	if p.binary != 0 {
		parts = append(parts, "2"+Superscript(p.binary))
	}
	return "[" + strings.Join(parts, "·") + "]"
}

// Factor returns the exact scale factor of p.
func (p Prefix) Factor() *big.Rat {
	f := new(big.Rat).SetInt(intPow(10, p.decimal))
	if p.decimal < 0 {
		f.Inv(f)
	}
	b := new(big.Rat).SetInt(intPow(2, p.binary))
	if p.binary < 0 {
		b.Inv(b)
	}
	return f.Mul(f, b)
}

// String implements fmt.Stringer.
func (p Prefix) String() string {
	if p.IsIdentity() {
		return "none"
	}
	if name := p.Name(); name != "" {
		return name
	}
	return p.Symbol()
}

func intPow(base int64, exp int) *big.Int {
	if exp < 0 {
		exp = -exp
	}
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(exp)), nil)
}
