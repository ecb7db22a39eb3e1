package coeff

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Decimal is a fixed-precision decimal coefficient backed by
// github.com/govalues/decimal: 19 significant digits, half-even rounding.
// The zero value is 0. Quotients round to fit the precision, so Decimal is
// an approximate ring like Float, with the difference that results that do
// fit are exact.
//
// The backing library reports impossible results (overflow past 19 digits)
// as errors; series arithmetic has nowhere to surface per-coefficient
// errors, so Decimal panics on them instead, the same way Div panics on a
// zero divisor.
type Decimal struct {
	d decimal.Decimal
}

// NewDecimal returns coef * 10^(-scale) as a Decimal.
func NewDecimal(coef int64, scale int) (Decimal, error) {
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("coeff: %w", err)
	}
	return Decimal{d}, nil
}

// MustDecimal is like NewDecimal but panics on error.
func MustDecimal(coef int64, scale int) Decimal {
	d, err := NewDecimal(coef, scale)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDecimal parses decimal ("2.75") or fraction ("11/4") notation.
// Fractions are rounded to the maximum supported scale first.
func ParseDecimal(s string) (Decimal, error) {
	if strings.ContainsRune(s, '/') {
		r, err := ParseRational(s)
		if err != nil {
			return Decimal{}, err
		}
		return DecimalFromRational(r)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("coeff: cannot parse %q as a decimal: %w", s, err)
	}
	return Decimal{d}, nil
}

// DecimalFromRational converts r to a Decimal, rounding to the maximum
// supported scale. Rationals whose whole part exceeds 19 digits do not fit
// and return an error.
func DecimalFromRational(r Rational) (Decimal, error) {
	d, err := decimal.Parse(r.rat().FloatString(decimal.MaxScale))
	if err != nil {
		return Decimal{}, fmt.Errorf("coeff: %v does not fit in a decimal: %w", r, err)
	}
	return Decimal{d}, nil
}

// Zero returns the additive identity 0.
func (Decimal) Zero() Decimal {
	return Decimal{}
}

// One returns the multiplicative identity 1.
func (Decimal) One() Decimal {
	return Decimal{decimal.One}
}

// Add returns x + y.
func (x Decimal) Add(y Decimal) Decimal {
	z, err := x.d.Add(y.d)
	if err != nil {
		panic(fmt.Sprintf("coeff: %v", err))
	}
	return Decimal{z}
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	return Decimal{x.d.Neg()}
}

// Mul returns x * y.
func (x Decimal) Mul(y Decimal) Decimal {
	z, err := x.d.Mul(y.d)
	if err != nil {
		panic(fmt.Sprintf("coeff: %v", err))
	}
	return Decimal{z}
}

// Div returns x / y, rounded to 19 significant digits. It panics if y is
// zero.
func (x Decimal) Div(y Decimal) Decimal {
	if y.d.IsZero() {
		panic("coeff: division by zero")
	}
	z, err := x.d.Quo(y.d)
	if err != nil {
		panic(fmt.Sprintf("coeff: %v", err))
	}
	return Decimal{z}
}

// Equal reports whether x and y represent the same value, regardless of
// scale: 1.00 equals 1.
func (x Decimal) Equal(y Decimal) bool {
	return x.d.Cmp(y.d) == 0
}

// IsZero reports whether x is 0.
func (x Decimal) IsZero() bool {
	return x.d.IsZero()
}

// Float64 returns the nearest float64 value.
func (x Decimal) Float64() float64 {
	f, _ := x.d.Float64()
	return f
}

// String renders x without an exponent.
func (x Decimal) String() string {
	return x.d.String()
}
