package coeff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalArithmetic(t *testing.T) {
	a := MustDecimal(150, 2) // 1.50
	b := MustDecimal(25, 2)  // 0.25

	assert.True(t, a.Add(b).Equal(MustDecimal(175, 2)))
	assert.True(t, a.Mul(b).Equal(MustDecimal(375, 3)))
	assert.True(t, a.Div(b).Equal(MustDecimal(6, 0)))
	assert.True(t, a.Neg().Equal(MustDecimal(-150, 2)))
}

func TestDecimalEqualIgnoresScale(t *testing.T) {
	assert.True(t, MustDecimal(100, 2).Equal(MustDecimal(1, 0)), "1.00 == 1")
}

func TestDecimalZeroValueIsUsable(t *testing.T) {
	var z Decimal
	assert.True(t, z.IsZero())
	assert.True(t, z.Add(z.One()).Equal(MustDecimal(1, 0)))
	assert.Equal(t, "0", z.String())
}

func TestDecimalDivRounds(t *testing.T) {
	q := MustDecimal(1, 0).Div(MustDecimal(3, 0))
	want, err := ParseDecimal("0.3333333333333333333")
	require.NoError(t, err)
	assert.True(t, q.Equal(want), "1/3 should round to 19 digits, got %v", q)
}

func TestDecimalDivByZeroPanics(t *testing.T) {
	assert.PanicsWithValue(t, "coeff: division by zero", func() {
		MustDecimal(1, 0).Div(Decimal{})
	})
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("2.75")
	require.NoError(t, err)
	assert.True(t, d.Equal(MustDecimal(275, 2)))

	d, err = ParseDecimal("11/4")
	require.NoError(t, err)
	assert.True(t, d.Equal(MustDecimal(275, 2)))

	_, err = ParseDecimal("zebra")
	require.Error(t, err)
}

func TestDecimalFromRational(t *testing.T) {
	d, err := DecimalFromRational(Rat(1, 4))
	require.NoError(t, err)
	assert.True(t, d.Equal(MustDecimal(25, 2)))
}

func TestNewDecimalRejectsBadScale(t *testing.T) {
	_, err := NewDecimal(1, 40)
	require.Error(t, err)
}

func TestDecimalFloat64(t *testing.T) {
	assert.Equal(t, 2.75, MustDecimal(275, 2).Float64())
}
