package domain

import "fmt"

// Base dimensions.
var (
	Length            = NewDimension("LENGTH")
	Mass              = NewDimension("MASS")
	Time              = NewDimension("TIME")
	ElectricCurrent   = NewDimension("ELECTRIC_CURRENT")
	Temperature       = NewDimension("TEMPERATURE")
	AmountOfSubstance = NewDimension("AMOUNT_OF_SUBSTANCE")
	LuminousIntensity = NewDimension("LUMINOUS_INTENSITY")
	Information       = NewDimension("INFORMATION")
)

// Derived dimensions, written in terms of base dimensions.
var (
	Area           = NewDimensionBuilder().Add(Length, 2).Build()
	Volume         = NewDimensionBuilder().Add(Length, 3).Build()
	Velocity       = NewDimensionBuilder().Add(Length, 1).Add(Time, -1).Build()
	Acceleration   = NewDimensionBuilder().Add(Length, 1).Add(Time, -2).Build()
	Frequency      = NewDimensionBuilder().Add(Time, -1).Build()
	Force          = NewDimensionBuilder().Add(Mass, 1).Add(Length, 1).Add(Time, -2).Build()
	PressureStress = NewDimensionBuilder().Add(Mass, 1).Add(Length, -1).Add(Time, -2).Build()
	Energy         = NewDimensionBuilder().Add(Mass, 1).Add(Length, 2).Add(Time, -2).Build()
	Power          = NewDimensionBuilder().Add(Mass, 1).Add(Length, 2).Add(Time, -3).Build()
	ElectricCharge = NewDimensionBuilder().Add(ElectricCurrent, 1).Add(Time, 1).Build()
	Voltage        = NewDimensionBuilder().Add(Mass, 1).Add(Length, 2).Add(Time, -3).Add(ElectricCurrent, -1).Build()
	Resistance     = NewDimensionBuilder().Add(Mass, 1).Add(Length, 2).Add(Time, -3).Add(ElectricCurrent, -2).Build()
	Capacitance    = NewDimensionBuilder().Add(Mass, -1).Add(Length, -2).Add(Time, 4).Add(ElectricCurrent, 2).Build()
	DataRate       = NewDimensionBuilder().Add(Information, 1).Add(Time, -1).Build()
)

type namedDimension struct {
	name      string
	dimension Dimension
}

var knownDimensions = []namedDimension{
	{"LENGTH", Length},
	{"MASS", Mass},
	{"TIME", Time},
	{"ELECTRIC_CURRENT", ElectricCurrent},
	{"TEMPERATURE", Temperature},
	{"AMOUNT_OF_SUBSTANCE", AmountOfSubstance},
	{"LUMINOUS_INTENSITY", LuminousIntensity},
	{"INFORMATION", Information},
	{"AREA", Area},
	{"VOLUME", Volume},
	{"VELOCITY", Velocity},
	{"ACCELERATION", Acceleration},
	{"FREQUENCY", Frequency},
	{"FORCE", Force},
	{"PRESSURE_STRESS", PressureStress},
	{"ENERGY", Energy},
	{"POWER", Power},
	{"ELECTRIC_CHARGE", ElectricCharge},
	{"VOLTAGE", Voltage},
	{"RESISTANCE", Resistance},
	{"CAPACITANCE", Capacitance},
	{"DATA_RATE", DataRate},
}

// LookupDimension returns the catalog dimension registered under name.
func LookupDimension(name string) (Dimension, error) {
	for _, d := range knownDimensions {
		if d.name == name {
			return d.dimension, nil
		}
	}
	return NON, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
}

// DimensionName returns the catalog name of d, if d is a catalog dimension.
func DimensionName(d Dimension) (string, bool) {
	for _, known := range knownDimensions {
		if known.dimension.Equal(d) {
			return known.name, true
		}
	}
	return "", false
}

// Base units.
var (
	Meter   = NewUnit("METER", Length)
	Gram    = NewUnit("GRAM", Mass)
	Second  = NewUnit("SECOND", Time)
	Ampere  = NewUnit("AMPERE", ElectricCurrent)
	Kelvin  = NewUnit("KELVIN", Temperature)
	Mole    = NewUnit("MOLE", AmountOfSubstance)
	Candela = NewUnit("CANDELA", LuminousIntensity)
	Bit     = NewUnit("BIT", Information)
)

// Non-coherent units. Their scale relative to the base unit of their
// dimension is supplied by a conversion registry.
var (
	Minute = NewUnit("MINUTE", Time)
	Hour   = NewUnit("HOUR", Time)
	Day    = NewUnit("DAY", Time)
	Week   = NewUnit("WEEK", Time)
	Foot   = NewUnit("FOOT", Length)
	Inch   = NewUnit("INCH", Length)
	Mile   = NewUnit("MILE", Length)
	Pound  = NewUnit("POUND", Mass)
	Byte   = NewUnit("BYTE", Information)
)

// Named units defined as a prefix applied to another unit.
var (
	Kilogram  = NewDerivedUnit("KILOGRAM", Mass, Gram.AddPrefix(Kilo))
	Kilometer = NewDerivedUnit("KILOMETER", Length, Meter.AddPrefix(Kilo))
)

// Derived named units.
var (
	Hertz   = NewDerivedUnit("HERTZ", Frequency, Second.Inverse())
	Newton  = NewDerivedUnit("NEWTON", Force, NewUnitBuilder().Add(Kilogram, 1).Add(Meter, 1).Add(Second, -2).Build())
	Pascal  = NewDerivedUnit("PASCAL", PressureStress, NewUnitBuilder().Add(Newton, 1).Add(Meter, -2).Build())
	Joule   = NewDerivedUnit("JOULE", Energy, NewUnitBuilder().Add(Newton, 1).Add(Meter, 1).Build())
	Watt    = NewDerivedUnit("WATT", Power, NewUnitBuilder().Add(Joule, 1).Add(Second, -1).Build())
	Coulomb = NewDerivedUnit("COULOMB", ElectricCharge, NewUnitBuilder().Add(Ampere, 1).Add(Second, 1).Build())
	Volt    = NewDerivedUnit("VOLT", Voltage, NewUnitBuilder().Add(Watt, 1).Add(Ampere, -1).Build())
	Ohm     = NewDerivedUnit("OHM", Resistance, NewUnitBuilder().Add(Volt, 1).Add(Ampere, -1).Build())
	Farad   = NewDerivedUnit("FARAD", Capacitance, NewUnitBuilder().Add(Coulomb, 1).Add(Volt, -1).Build())
	Liter   = NewDerivedUnit("LITER", Volume, Meter.AddPrefix(Deci).Pow(3))
)

var knownUnits = []Unit{
	Meter, Gram, Second, Ampere, Kelvin, Mole, Candela, Bit,
	Minute, Hour, Day, Week, Foot, Inch, Mile, Pound, Byte,
	Kilogram, Kilometer,
	Hertz, Newton, Pascal, Joule, Watt, Coulomb, Volt, Ohm, Farad, Liter,
}

// KnownUnits returns the named units of the catalog in declaration order.
func KnownUnits() []Unit {
	out := make([]Unit, len(knownUnits))
	copy(out, knownUnits)
	return out
}

// LookupUnit returns the catalog unit with the given id.
func LookupUnit(id string) (Unit, error) {
	for _, u := range knownUnits {
		if u.id == id {
			return u, nil
		}
	}
	return One, fmt.Errorf("%w: %q", ErrUnknownUnit, id)
}
