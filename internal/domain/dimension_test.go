package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireIllegalComposition asserts that fn panics with an IllegalCompositionError.
func requireIllegalComposition(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, ErrIllegalComposition))
		var ice *IllegalCompositionError
		assert.True(t, errors.As(err, &ice))
	}()
	fn()
}

func sampleDimensions() []Dimension {
	return []Dimension{
		NON,
		Length,
		Time,
		Velocity,
		Frequency,
		PressureStress,
		Resistance,
		NewDimensionBuilder().Add(PressureStress, 2).Add(Resistance, 3).Build(),
		NewDimensionBuilder().Add(Force, 1).Add(Velocity, -1).Build(),
	}
}

func TestSuperscript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "⁰"},
		{1, "¹"},
		{-1, "⁻¹"},
		{10, "¹⁰"},
		{-13, "⁻¹³"},
		{-1234567890, "⁻¹²³⁴⁵⁶⁷⁸⁹⁰"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Superscript(tt.in), "Superscript(%d)", tt.in)
	}
}

func TestDimensionID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dim  Dimension
		want string
	}{
		{
			name: "atomic",
			dim:  Length,
			want: "LENGTH",
		},
		{
			name: "dimensionless",
			dim:  NON,
			want: "NON",
		},
		{
			name: "pressure",
			dim:  NewDimensionBuilder().Add(Mass, 1).Add(Length, -1).Add(Time, -2).Build(),
			want: "(MASS)¹(LENGTH)⁻¹(TIME)⁻²",
		},
		{
			name: "nested composite",
			dim:  NewDimensionBuilder().Add(PressureStress, 2).Add(Resistance, 3).Build(),
			want: "((MASS)¹(LENGTH)⁻¹(TIME)⁻²)²((MASS)¹(LENGTH)²(TIME)⁻³(ELECTRIC_CURRENT)⁻²)³",
		},
		{
			name: "repeated component accumulates",
			dim:  NewDimensionBuilder().Add(Length, 1).Add(Time, -1).Add(Length, 1).Build(),
			want: "(LENGTH)²(TIME)⁻¹",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.dim.ID())
		})
	}
}

func TestDimensionBuild(t *testing.T) {
	t.Parallel()

	t.Run("empty is NON", func(t *testing.T) {
		t.Parallel()
		d := NewDimensionBuilder().Build()
		assert.True(t, d.IsDimensionless())
		assert.True(t, d.Equal(NON))
	})

	t.Run("cancelling exponents are dropped", func(t *testing.T) {
		t.Parallel()
		d := NewDimensionBuilder().Add(Length, 2).Add(Length, -2).Build()
		assert.True(t, d.Equal(NON))
	})

	t.Run("single atomic component collapses", func(t *testing.T) {
		t.Parallel()
		d := NewDimensionBuilder().Add(Length, 1).Build()
		assert.True(t, d.IsAtomic())
		assert.Equal(t, "LENGTH", d.ID())
	})

	t.Run("single composite component stays nested", func(t *testing.T) {
		t.Parallel()
		d := NewDimensionBuilder().Add(Velocity, 1).Build()
		assert.False(t, d.IsAtomic())
		assert.Equal(t, "((LENGTH)¹(TIME)⁻¹)¹", d.ID())
		assert.True(t, d.RebaseEquals(Velocity))
	})

	t.Run("adding NON has no effect", func(t *testing.T) {
		t.Parallel()
		d := NewDimensionBuilder().Add(NON, 4).Add(Time, -1).Build()
		assert.True(t, d.Equal(Frequency))
	})

	t.Run("empty id panics", func(t *testing.T) {
		t.Parallel()
		requireIllegalComposition(t, func() { NewDimension("") })
	})
}

func TestDimensionAlgebra(t *testing.T) {
	t.Parallel()

	dims := sampleDimensions()

	t.Run("identity", func(t *testing.T) {
		t.Parallel()
		for _, d := range dims {
			assert.True(t, d.Multiply(NON).Equal(d), "%s * NON", d.ID())
			assert.True(t, NON.Multiply(d).Equal(d), "NON * %s", d.ID())
		}
	})

	t.Run("inverse", func(t *testing.T) {
		t.Parallel()
		for _, d := range dims {
			assert.True(t, d.Multiply(d.Inverse()).RebaseEquals(NON), "%s * %s⁻¹", d.ID(), d.ID())
			assert.True(t, d.Divide(d).RebaseEquals(NON), "%s / %s", d.ID(), d.ID())
		}
	})

	t.Run("commutativity", func(t *testing.T) {
		t.Parallel()
		for _, a := range dims {
			for _, b := range dims {
				assert.True(t, a.Multiply(b).Equal(b.Multiply(a)), "%s * %s", a.ID(), b.ID())
			}
		}
	})

	t.Run("associativity after rebase", func(t *testing.T) {
		t.Parallel()
		for _, a := range dims {
			for _, b := range dims {
				for _, c := range dims {
					left := a.Multiply(b).Multiply(c)
					right := a.Multiply(b.Multiply(c))
					assert.True(t, left.RebaseEquals(right), "(%s*%s)*%s", a.ID(), b.ID(), c.ID())
				}
			}
		}
	})

	t.Run("rebase is idempotent", func(t *testing.T) {
		t.Parallel()
		for _, d := range dims {
			once := d.Rebase()
			assert.True(t, once.Equal(once.Rebase()), "rebase(%s)", d.ID())
			for _, term := range once.Terms() {
				assert.True(t, term.Component.IsAtomic(), "rebase(%s) has composite component", d.ID())
			}
		}
	})

	t.Run("pow zero is NON", func(t *testing.T) {
		t.Parallel()
		for _, d := range dims {
			assert.True(t, d.Pow(0).Equal(NON))
		}
	})
}

func TestDimensionMultiplyOrder(t *testing.T) {
	t.Parallel()

	d := Velocity.Multiply(NewDimensionBuilder().Add(Mass, 1).Add(Time, -1).Build())
	assert.Equal(t, "(LENGTH)¹(TIME)⁻²(MASS)¹", d.ID())

	assert.True(t, Velocity.Multiply(Time).Equal(Length))
	assert.True(t, Length.Divide(Time).Equal(Velocity))
}

func TestDimensionRebase(t *testing.T) {
	t.Parallel()

	nested := NewDimensionBuilder().Add(PressureStress, 2).Add(Resistance, 3).Build()
	assert.Equal(t, "(MASS)⁵(LENGTH)⁴(TIME)⁻¹³(ELECTRIC_CURRENT)⁻⁶", nested.Rebase().ID())

	voltsPerAmpere := NewDimensionBuilder().Add(Voltage, 1).Add(ElectricCurrent, -1).Build()
	assert.False(t, voltsPerAmpere.Equal(Resistance))
	assert.True(t, voltsPerAmpere.RebaseEquals(Resistance))
}

func TestDimensionEqualIgnoresOrder(t *testing.T) {
	t.Parallel()

	a := NewDimensionBuilder().Add(Mass, 1).Add(Length, -1).Add(Time, -2).Build()
	b := NewDimensionBuilder().Add(Time, -2).Add(Mass, 1).Add(Length, -1).Build()
	assert.True(t, a.Equal(b))
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestLookupDimension(t *testing.T) {
	t.Parallel()

	d, err := LookupDimension("PRESSURE_STRESS")
	require.NoError(t, err)
	assert.True(t, d.Equal(PressureStress))

	name, ok := DimensionName(Capacitance)
	assert.True(t, ok)
	assert.Equal(t, "CAPACITANCE", name)

	_, err = LookupDimension("CHARM")
	assert.ErrorIs(t, err, ErrUnknownDimension)
}
