package coeff

import (
	"fmt"
	"math/big"
)

// Rational is an exact rational coefficient backed by math/big.Rat. The
// zero value is 0. Every operation allocates a fresh result; a Rational is
// never mutated after it is created.
type Rational struct {
	r *big.Rat
}

// Int returns the rational n/1.
func Int(n int64) Rational {
	return Rational{big.NewRat(n, 1)}
}

// Rat returns the rational p/q in lowest terms. It panics if q is zero.
func Rat(p, q int64) Rational {
	if q == 0 {
		panic("coeff: zero denominator")
	}
	return Rational{big.NewRat(p, q)}
}

// ParseRational parses fraction ("-1/3") or decimal ("0.25", "7") notation.
func ParseRational(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, fmt.Errorf("coeff: cannot parse %q as a rational", s)
	}
	return Rational{r}, nil
}

// rat returns the backing value, reading the zero value as 0.
func (x Rational) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Zero returns the additive identity 0.
func (Rational) Zero() Rational {
	return Rational{}
}

// One returns the multiplicative identity 1.
func (Rational) One() Rational {
	return Rational{big.NewRat(1, 1)}
}

// Add returns x + y.
func (x Rational) Add(y Rational) Rational {
	return Rational{new(big.Rat).Add(x.rat(), y.rat())}
}

// Neg returns -x.
func (x Rational) Neg() Rational {
	return Rational{new(big.Rat).Neg(x.rat())}
}

// Mul returns x * y.
func (x Rational) Mul(y Rational) Rational {
	return Rational{new(big.Rat).Mul(x.rat(), y.rat())}
}

// Div returns x / y. It panics if y is zero.
func (x Rational) Div(y Rational) Rational {
	if y.IsZero() {
		panic("coeff: division by zero")
	}
	return Rational{new(big.Rat).Quo(x.rat(), y.rat())}
}

// Equal reports whether x and y represent the same rational.
func (x Rational) Equal(y Rational) bool {
	return x.rat().Cmp(y.rat()) == 0
}

// IsZero reports whether x is 0.
func (x Rational) IsZero() bool {
	return x.rat().Sign() == 0
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Rational) Sign() int {
	return x.rat().Sign()
}

// Num returns a copy of the numerator of x in lowest terms.
func (x Rational) Num() *big.Int {
	return new(big.Int).Set(x.rat().Num())
}

// Denom returns a copy of the denominator of x in lowest terms. It is
// always positive.
func (x Rational) Denom() *big.Int {
	return new(big.Int).Set(x.rat().Denom())
}

// Float64 returns the nearest float64 value.
func (x Rational) Float64() float64 {
	f, _ := x.rat().Float64()
	return f
}

// String renders x as "p" or "p/q" in lowest terms.
func (x Rational) String() string {
	return x.rat().RatString()
}
