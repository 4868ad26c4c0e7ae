package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/unitcalc/unitcalc/internal/domain"
)

// AliasKind selects which family of aliases to return.
type AliasKind uint8

const (
	AliasSymbol AliasKind = iota
	AliasName
	AliasPlural
)

var aliasKindNames = [...]string{
	AliasSymbol: "symbol",
	AliasName:   "name",
	AliasPlural: "plural",
}

// String implements fmt.Stringer.
func (k AliasKind) String() string {
	if int(k) < len(aliasKindNames) {
		return aliasKindNames[k]
	}
	return fmt.Sprintf("AliasKind(%d)", uint8(k))
}

// ParseAliasKind maps "symbol", "name" or "plural" to an AliasKind.
func ParseAliasKind(s string) (AliasKind, error) {
	for k, name := range aliasKindNames {
		if strings.EqualFold(name, s) {
			return AliasKind(k), nil
		}
	}
	return AliasSymbol, fmt.Errorf("unknown alias kind %q", s)
}

// Aliased is implemented by domain.Unit and domain.Dimension.
type Aliased interface {
	ID() string
}

type aliasTarget uint8

const (
	unitTarget aliasTarget = iota
	dimensionTarget
)

type aliasKey struct {
	target aliasTarget
	name   string
	kind   AliasKind
}

func (r *Registry) addAliases(key aliasKey, aliases []string) {
	merged := append(r.aliases[key], aliases...)
	slices.Sort(merged)
	r.aliases[key] = slices.Compact(merged)
}

// Aliases returns the sorted aliases of x. A catalog unit carrying a named
// prefix gets the aliases of the bare unit with the prefix symbol or name
// in front ("km", "kilometer"). Units and dimensions without registered
// aliases, and other Aliased implementations, yield nil.
func (r *Registry) Aliases(x Aliased, kind AliasKind) []string {
	switch v := x.(type) {
	case domain.Unit:
		return r.unitAliases(v, kind)
	case domain.Dimension:
		name, ok := domain.DimensionName(v)
		if !ok {
			return nil
		}
		return slices.Clone(r.aliases[aliasKey{target: dimensionTarget, name: name, kind: kind}])
	default:
		return nil
	}
}

func (r *Registry) unitAliases(u domain.Unit, kind AliasKind) []string {
	if !u.IsAtomic() {
		return nil
	}
	aliases := r.aliases[aliasKey{target: unitTarget, name: u.Name(), kind: kind}]
	p := u.Prefix()
	if p.IsIdentity() {
		return slices.Clone(aliases)
	}
	if !p.IsNamed() {
		return nil
	}

	head := p.Name()
	if kind == AliasSymbol {
		head = p.Symbol()
	}
	out := make([]string, len(aliases))
	for i, a := range aliases {
		out[i] = head + a
	}
	slices.Sort(out)
	return slices.Compact(out)
}

type aliasEntry struct {
	name    string
	symbols []string
	names   []string
	plurals []string
}

var catalogAliases = []aliasEntry{
	{"METER", []string{"m"}, []string{"meter", "metre"}, []string{"meters", "metres"}},
	{"GRAM", []string{"g"}, []string{"gram"}, []string{"grams"}},
	{"SECOND", []string{"s"}, []string{"second"}, []string{"seconds"}},
	{"AMPERE", []string{"A"}, []string{"ampere", "amp"}, []string{"amperes", "amps"}},
	{"KELVIN", []string{"K"}, []string{"kelvin"}, []string{"kelvins"}},
	{"MOLE", []string{"mol"}, []string{"mole"}, []string{"moles"}},
	{"CANDELA", []string{"cd"}, []string{"candela"}, []string{"candelas"}},
	{"BIT", []string{"bit"}, []string{"bit"}, []string{"bits"}},
	{"MINUTE", []string{"min"}, []string{"minute"}, []string{"minutes"}},
	{"HOUR", []string{"h"}, []string{"hour"}, []string{"hours"}},
	{"DAY", []string{"d"}, []string{"day"}, []string{"days"}},
	{"WEEK", []string{"wk"}, []string{"week"}, []string{"weeks"}},
	{"FOOT", []string{"ft"}, []string{"foot"}, []string{"feet"}},
	{"INCH", []string{"in"}, []string{"inch"}, []string{"inches"}},
	{"MILE", []string{"mi"}, []string{"mile"}, []string{"miles"}},
	{"POUND", []string{"lb"}, []string{"pound"}, []string{"pounds"}},
	{"BYTE", []string{"B"}, []string{"byte"}, []string{"bytes"}},
	{"KILOGRAM", []string{"kg"}, []string{"kilogram"}, []string{"kilograms"}},
	{"KILOMETER", []string{"km"}, []string{"kilometer", "kilometre"}, []string{"kilometers", "kilometres"}},
	{"HERTZ", []string{"Hz"}, []string{"hertz"}, []string{"hertz"}},
	{"NEWTON", []string{"N"}, []string{"newton"}, []string{"newtons"}},
	{"PASCAL", []string{"Pa"}, []string{"pascal"}, []string{"pascals"}},
	{"JOULE", []string{"J"}, []string{"joule"}, []string{"joules"}},
	{"WATT", []string{"W"}, []string{"watt"}, []string{"watts"}},
	{"COULOMB", []string{"C"}, []string{"coulomb"}, []string{"coulombs"}},
	{"VOLT", []string{"V"}, []string{"volt"}, []string{"volts"}},
	{"OHM", []string{"Ω"}, []string{"ohm"}, []string{"ohms"}},
	{"FARAD", []string{"F"}, []string{"farad"}, []string{"farads"}},
	{"LITER", []string{"L", "l"}, []string{"liter", "litre"}, []string{"liters", "litres"}},

	{"LENGTH", []string{"L"}, []string{"length"}, []string{"lengths"}},
	{"MASS", []string{"M"}, []string{"mass"}, []string{"masses"}},
	{"TIME", []string{"T"}, []string{"time"}, []string{"times"}},
	{"ELECTRIC_CURRENT", []string{"I"}, []string{"electric current"}, []string{"electric currents"}},
	{"TEMPERATURE", []string{"Θ"}, []string{"temperature"}, []string{"temperatures"}},
	{"AMOUNT_OF_SUBSTANCE", []string{"N"}, []string{"amount of substance"}, []string{"amounts of substance"}},
	{"LUMINOUS_INTENSITY", []string{"J"}, []string{"luminous intensity"}, []string{"luminous intensities"}},
	{"INFORMATION", nil, []string{"information"}, nil},
	{"PRESSURE_STRESS", nil, []string{"pressure", "stress"}, []string{"pressures", "stresses"}},
	{"VELOCITY", nil, []string{"velocity", "speed"}, []string{"velocities", "speeds"}},
	{"FORCE", nil, []string{"force"}, []string{"forces"}},
	{"ENERGY", nil, []string{"energy"}, []string{"energies"}},
	{"POWER", nil, []string{"power"}, []string{"powers"}},
	{"RESISTANCE", nil, []string{"resistance"}, []string{"resistances"}},
	{"CAPACITANCE", nil, []string{"capacitance"}, []string{"capacitances"}},
}

func defaultAliases() []Option {
	opts := make([]Option, 0, 3*len(catalogAliases))
	for _, e := range catalogAliases {
		if len(e.symbols) > 0 {
			opts = append(opts, WithAliases(e.name, AliasSymbol, e.symbols...))
		}
		if len(e.names) > 0 {
			opts = append(opts, WithAliases(e.name, AliasName, e.names...))
		}
		if len(e.plurals) > 0 {
			opts = append(opts, WithAliases(e.name, AliasPlural, e.plurals...))
		}
	}
	return opts
}
