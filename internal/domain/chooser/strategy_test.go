package chooser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitcalc/unitcalc/internal/domain"
	"github.com/unitcalc/unitcalc/internal/domain/chooser"
	"github.com/unitcalc/unitcalc/internal/registry"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New()
	require.NoError(t, err, "Failed to create registry")
	return r
}

func q(t *testing.T, value string, u domain.Unit) domain.Quantity {
	t.Helper()
	m, err := domain.ParseMagnitude(value)
	require.NoError(t, err)
	return domain.NewQuantity(m, u)
}

// failingConfiguration fails every call with err.
type failingConfiguration struct {
	err error
}

func (f failingConfiguration) Compare(a, b domain.Quantity) (int, error) {
	return 0, f.err
}

func (f failingConfiguration) ConvertTo(q domain.Quantity, target domain.Unit) (domain.Quantity, error) {
	return domain.Quantity{}, f.err
}

func allStrategies() []chooser.Strategy {
	return []chooser.Strategy{chooser.Min(), chooser.Max(), chooser.Median(), chooser.Average()}
}

func TestChoose(t *testing.T) {
	t.Parallel()
	cfg := newRegistry(t)

	durations := []domain.Quantity{
		q(t, "10", domain.Day),
		q(t, "10", domain.Second),
		q(t, "10", domain.Hour),
	}
	lengths := []domain.Quantity{
		q(t, "1", domain.Meter),
		q(t, "3", domain.Foot),
		q(t, "2", domain.Meter),
		q(t, "1", domain.Foot),
	}

	tests := []struct {
		name       string
		strategy   chooser.Strategy
		quantities []domain.Quantity
		want       string
	}{
		{"min", chooser.Min(), durations, "10 SECOND"},
		{"max", chooser.Max(), durations, "10 DAY"},
		{"median odd count", chooser.Median(), durations, "10 HOUR"},
		{"average", chooser.Average(), durations, "90001/25920 DAY"},
		{"median even count", chooser.Median(), lengths, "2393/762 FOOT"},
		{"single quantity", chooser.Median(), durations[:1], "10 DAY"},
		{"min ties keep first", chooser.Min(), []domain.Quantity{q(t, "60", domain.Second), q(t, "1", domain.Minute)}, "60 SECOND"},
		{"max ties keep first", chooser.Max(), []domain.Quantity{q(t, "1", domain.Minute), q(t, "60", domain.Second)}, "1 MINUTE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.strategy.Choose(tt.quantities, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestChooseDoesNotReorderInput(t *testing.T) {
	t.Parallel()
	cfg := newRegistry(t)

	input := []domain.Quantity{q(t, "3", domain.Meter), q(t, "1", domain.Meter), q(t, "2", domain.Meter)}
	_, err := chooser.Median().Choose(input, cfg)
	require.NoError(t, err)
	assert.Equal(t, "3 METER", input[0].String())
}

func TestChooseEmptyCollection(t *testing.T) {
	t.Parallel()
	cfg := newRegistry(t)

	for _, s := range allStrategies() {
		_, err := s.Choose(nil, cfg)
		assert.ErrorIs(t, err, domain.ErrEmptyCollection, s.Kind().String())

		_, err = s.Choose([]domain.Quantity{}, cfg)
		assert.ErrorIs(t, err, domain.ErrEmptyCollection, s.Kind().String())
	}
}

func TestChooseDimensionMismatch(t *testing.T) {
	t.Parallel()
	cfg := newRegistry(t)

	mixed := []domain.Quantity{q(t, "1", domain.Meter), q(t, "1", domain.Second)}
	for _, s := range allStrategies() {
		_, err := s.Choose(mixed, cfg)
		require.Error(t, err, s.Kind().String())
		assert.ErrorIs(t, err, domain.ErrDimensionMismatch)

		var mismatch *domain.DimensionMismatchError
		assert.True(t, errors.As(err, &mismatch), s.Kind().String())
	}
}

func TestChoosePropagatesConfigurationErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("registry unavailable")
	cfg := failingConfiguration{err: boom}
	quantities := []domain.Quantity{q(t, "1", domain.Meter), q(t, "2", domain.Meter)}

	for _, s := range allStrategies() {
		_, err := s.Choose(quantities, cfg)
		assert.ErrorIs(t, err, boom, s.Kind().String())
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    chooser.Kind
		wantErr bool
	}{
		{in: "min", want: chooser.KindMin},
		{in: "MAX", want: chooser.KindMax},
		{in: "median", want: chooser.KindMedian},
		{in: "average", want: chooser.KindAverage},
		{in: "mode", wantErr: true},
	}

	for _, tt := range tests {
		got, err := chooser.ParseKind(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, chooser.ErrUnknownKind)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)

		s, err := chooser.New(got)
		require.NoError(t, err)
		assert.Equal(t, got, s.Kind())
	}

	_, err := chooser.New(chooser.Kind(42))
	assert.ErrorIs(t, err, chooser.ErrUnknownKind)
}
