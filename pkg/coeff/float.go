package coeff

import (
	"fmt"
	"math/big"
)

// DefaultFloatPrec is the mantissa precision, in bits, of Float values
// minted by this package. 256 bits keeps ~77 decimal digits, enough to
// watch series prefixes converge well past float64.
const DefaultFloatPrec = 256

// Float is an arbitrary-precision floating-point coefficient backed by
// math/big.Float. The zero value is 0. Division rounds to the operand
// precision, so Float is an approximate ring: the algebraic laws hold only
// up to rounding error.
type Float struct {
	f *big.Float
}

// NewFloat returns x as a Float at DefaultFloatPrec.
func NewFloat(x float64) Float {
	return Float{new(big.Float).SetPrec(DefaultFloatPrec).SetFloat64(x)}
}

// FloatFromRational converts r to a Float at DefaultFloatPrec.
func FloatFromRational(r Rational) Float {
	return Float{new(big.Float).SetPrec(DefaultFloatPrec).SetRat(r.rat())}
}

// ParseFloat parses decimal ("2.75", "1e-3") or fraction ("11/4") notation.
func ParseFloat(s string) (Float, error) {
	if r, err := ParseRational(s); err == nil {
		return FloatFromRational(r), nil
	}
	f, _, err := big.ParseFloat(s, 10, DefaultFloatPrec, big.ToNearestEven)
	if err != nil {
		return Float{}, fmt.Errorf("coeff: cannot parse %q as a float: %w", s, err)
	}
	return Float{f}, nil
}

// float returns the backing value, reading the zero value as 0.
func (x Float) float() *big.Float {
	if x.f == nil {
		return new(big.Float).SetPrec(DefaultFloatPrec)
	}
	return x.f
}

// acc returns a zero accumulator wide enough for both operands.
func acc(x, y *big.Float) *big.Float {
	prec := x.Prec()
	if p := y.Prec(); p > prec {
		prec = p
	}
	if prec == 0 {
		prec = DefaultFloatPrec
	}
	return new(big.Float).SetPrec(prec)
}

// Zero returns the additive identity 0.
func (Float) Zero() Float {
	return Float{}
}

// One returns the multiplicative identity 1.
func (Float) One() Float {
	return Float{new(big.Float).SetPrec(DefaultFloatPrec).SetInt64(1)}
}

// Add returns x + y.
func (x Float) Add(y Float) Float {
	a, b := x.float(), y.float()
	return Float{acc(a, b).Add(a, b)}
}

// Neg returns -x.
func (x Float) Neg() Float {
	a := x.float()
	return Float{acc(a, a).Neg(a)}
}

// Mul returns x * y.
func (x Float) Mul(y Float) Float {
	a, b := x.float(), y.float()
	return Float{acc(a, b).Mul(a, b)}
}

// Div returns x / y, rounded to the wider operand precision. It panics if
// y is zero.
func (x Float) Div(y Float) Float {
	a, b := x.float(), y.float()
	if b.Sign() == 0 {
		panic("coeff: division by zero")
	}
	return Float{acc(a, b).Quo(a, b)}
}

// Equal reports whether x and y compare equal. Approximate results that
// should be equal algebraically may differ in the low bits; comparisons in
// Float-based tests go through tolerances instead.
func (x Float) Equal(y Float) bool {
	return x.float().Cmp(y.float()) == 0
}

// IsZero reports whether x is exactly 0.
func (x Float) IsZero() bool {
	return x.float().Sign() == 0
}

// Float64 returns the nearest float64 value.
func (x Float) Float64() float64 {
	f, _ := x.float().Float64()
	return f
}

// String renders x in shortest decimal form.
func (x Float) String() string {
	return x.float().Text('g', 20)
}
