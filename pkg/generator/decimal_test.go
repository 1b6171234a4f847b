package generator

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/leapstack-labs/randomness/pkg/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_MinAboveMaxFails(t *testing.T) {
	pairs := []struct{ min, max float64 }{
		{1, 0},
		{0.0001, 0},
		{-5, -10},
		{math.MaxFloat64, -math.MaxFloat64},
		{365.0, 364.99999},
	}

	for _, p := range pairs {
		s := scheme.DefaultDecimalScheme()
		s.MinValue, s.MaxValue = p.min, p.max

		values, err := Decimal(s).Generate(3)
		require.Error(t, err)
		assert.Nil(t, values)
		assert.ErrorIs(t, err, ErrDataGeneration)
		assert.ErrorIs(t, err, scheme.ErrInvalidScheme)
		assert.Contains(t, err.Error(), "Minimum value is larger than maximum value.")
	}
}

func TestDecimal_MinEqualsMax(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		scheme func(*scheme.DecimalScheme)
		want   string
	}{
		{"default format", 4.2, func(*scheme.DecimalScheme) {}, "4.20"},
		{"trimmed", 4.2, func(s *scheme.DecimalScheme) { s.ShowTrailingZeroes = false }, "4.2"},
		{"grouped", 1234567.891, func(s *scheme.DecimalScheme) {
			s.GroupingSeparator, s.DecimalSeparator = ".", ","
		}, "1.234.567,89"},
		{"no decimals", 15, func(s *scheme.DecimalScheme) { s.DecimalCount = 0 }, "15"},
		{"prefix and suffix", 3, func(s *scheme.DecimalScheme) { s.Prefix, s.Suffix = "<", ">" }, "<3.00>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scheme.DefaultDecimalScheme()
			tt.scheme(&s)
			s.MinValue, s.MaxValue = tt.value, tt.value

			values, err := Decimal(s).Generate(4)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want, tt.want, tt.want, tt.want}, values)
		})
	}
}

func TestDecimal_WithinBounds(t *testing.T) {
	s := scheme.DefaultDecimalScheme()
	s.MinValue, s.MaxValue = -2.5, 3.75
	s.DecimalCount = 4
	s.DecimalSeparator = "."

	values, err := Decimal(s, WithSeed(1)).Generate(500)
	require.NoError(t, err)
	require.Len(t, values, 500)

	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f, -2.5)
		assert.LessOrEqual(t, f, 3.75)
	}
}

func TestDrawDecimal(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 1000; i++ {
		v := drawDecimal(r, 0, 1)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	assert.Equal(t, 5.0, drawDecimal(r, 5, 5))

	for i := 0; i < 100; i++ {
		v := drawDecimal(r, -math.MaxFloat64, math.MaxFloat64)
		assert.False(t, math.IsInf(v, 0))
		assert.False(t, math.IsNaN(v))
	}

	// the ceiling above max makes max itself reachable in a one-ulp range
	lo := 1.0
	hi := math.Nextafter(lo, 2)
	sawMax := false
	for i := 0; i < 1000 && !sawMax; i++ {
		sawMax = drawDecimal(r, lo, hi) == hi
	}
	assert.True(t, sawMax)
}
