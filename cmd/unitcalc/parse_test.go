package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitcalc/unitcalc/internal/domain"
)

func TestParseFactors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr    string
		want    []factor
		wantErr bool
	}{
		{expr: "METER", want: []factor{{name: "METER", exponent: 1}}},
		{expr: " k.METER^2 ", want: []factor{{prefix: "k", name: "METER", exponent: 2}}},
		{expr: "NEWTON*METER^-2", want: []factor{{name: "NEWTON", exponent: 1}, {name: "METER", exponent: -2}}},
		{expr: "GRAM/SECOND*METER", want: []factor{{name: "GRAM", exponent: 1}, {name: "SECOND", exponent: -1}, {name: "METER", exponent: -1}}},
		{expr: "", wantErr: true},
		{expr: "METER*", wantErr: true},
		{expr: "METER^x", wantErr: true},
		{expr: "k.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			got, err := parseFactors(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	u, err := parseUnit("kilo.METER/HOUR")
	require.NoError(t, err)
	want := domain.NewUnitBuilder().Add(domain.Meter.AddPrefix(domain.Kilo), 1).Add(domain.Hour, -1).Build()
	assert.True(t, want.Equal(u), "got %s", u.ID())

	_, err = parseUnit("METER*PARSEC")
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)

	_, err = parseUnit("x.METER")
	assert.ErrorIs(t, err, domain.ErrUnknownPrefix)
}

func TestParseDimension(t *testing.T) {
	t.Parallel()

	d, err := parseDimension("MASS*LENGTH/TIME^2")
	require.NoError(t, err)
	assert.True(t, d.RebaseEquals(domain.Force))

	_, err = parseDimension("k.LENGTH")
	assert.Error(t, err)

	_, err = parseDimension("COLOUR")
	assert.ErrorIs(t, err, domain.ErrUnknownDimension)
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	q, err := parseQuantity("1.5:k.METER")
	require.NoError(t, err)
	assert.Equal(t, "3/2 kMETER", q.String())

	for _, bad := range []string{"1.5", "abc:METER", "1:PARSEC"} {
		_, err := parseQuantity(bad)
		assert.Error(t, err, bad)
	}
}
