package coeff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatArithmetic(t *testing.T) {
	a := NewFloat(1.5)
	b := NewFloat(0.25)

	assert.True(t, a.Add(b).Equal(NewFloat(1.75)))
	assert.True(t, a.Mul(b).Equal(NewFloat(0.375)))
	assert.True(t, a.Div(b).Equal(NewFloat(6)))
	assert.True(t, a.Neg().Equal(NewFloat(-1.5)))
}

func TestFloatZeroValueIsUsable(t *testing.T) {
	var z Float
	assert.True(t, z.IsZero())
	assert.True(t, z.Add(NewFloat(2)).Equal(NewFloat(2)))
	assert.True(t, z.One().Equal(NewFloat(1)))
}

func TestFloatDivByZeroPanics(t *testing.T) {
	assert.PanicsWithValue(t, "coeff: division by zero", func() {
		NewFloat(1).Div(Float{})
	})
}

func TestFloatFromRational(t *testing.T) {
	f := FloatFromRational(Rat(1, 3))
	// 1/3 at 256 bits is far closer than float64 can resolve.
	assert.InDelta(t, 1.0/3.0, f.Float64(), 1e-16)
}

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2.75", 2.75},
		{"11/4", 2.75},
		{"1e-3", 0.001},
	}
	for _, tc := range cases {
		got, err := ParseFloat(tc.in)
		require.NoError(t, err, "parsing %q", tc.in)
		assert.InDelta(t, tc.want, got.Float64(), 1e-15, "parsing %q", tc.in)
	}

	_, err := ParseFloat("not-a-number")
	require.Error(t, err)
}

func TestFloatKeepsPrecisionThroughChains(t *testing.T) {
	// Summing 1/3 three times at 256 bits should land within one ulp of 1;
	// float64 would already show drift at this magnification.
	third := NewFloat(1).Div(NewFloat(3))
	sum := third.Add(third).Add(third)
	diff := sum.Add(NewFloat(1).Neg())
	assert.InDelta(t, 0, diff.Float64(), 1e-70)
}
