package series

import (
	"fmt"

	"github.com/wildfunctions/formal_series/pkg/coeff"
)

// Exp returns the exponential series, the fixed point of
// exp = 1 + integral(exp). Coefficient n is 1/n!.
func Exp[T coeff.Ring[T]]() Series[T] {
	return Fix(func(self Series[T]) Series[T] {
		return One[T]().Add(self.Integral())
	})
}

// Sin returns the sine series: x - x^3/3! + x^5/5! - ....
func Sin[T coeff.Ring[T]]() Series[T] {
	sin, _ := sinCos[T]()
	return sin
}

// Cos returns the cosine series: 1 - x^2/2! + x^4/4! - ....
func Cos[T coeff.Ring[T]]() Series[T] {
	_, cos := sinCos[T]()
	return cos
}

// Tan returns the tangent series, sin/cos over one shared pair.
func Tan[T coeff.Ring[T]]() Series[T] {
	sin, cos := sinCos[T]()
	return sin.Div(cos)
}

// sinCos builds the mutually recursive pair sin = integral(cos),
// cos = 1 - integral(sin). Both placeholders are bound before either
// series escapes.
func sinCos[T coeff.Ring[T]]() (sin, cos Series[T]) {
	sinFwd, bindSin := Declare[T]()
	cosFwd, bindCos := Declare[T]()
	sin = cosFwd.Integral()
	cos = One[T]().Sub(sinFwd.Integral())
	bindSin(sin)
	bindCos(cos)
	return sin, cos
}

// Sqrt returns a series s with s*s = f, when one is computable over the
// ring. Leading zeros strip off in pairs, sqrt(x^2 g) being x sqrt(g), and
// the first nonzero coefficient picks the construction:
//   - equal to one: s is the fixed point s = 1 + integral(g' / 2s),
//     prefixed with one zero per stripped pair;
//   - reached after an odd run of zeros, or not one: no square root is
//     computable, and Sqrt returns an error wrapping ErrUnsupported.
//
// Stripping reads f eagerly, two coefficients per pair, so Sqrt of the
// identically zero series never finds a nonzero coefficient and does not
// return, like Div of two zero series.
func (f Series[T]) Sqrt() (Series[T], error) {
	pairs := 0
	for isZero(f.Head()) {
		if !isZero(f.Tail().Head()) {
			return Series[T]{}, fmt.Errorf("series: sqrt of a series with odd valuation: %w", ErrUnsupported)
		}
		f = f.Tail().Tail()
		pairs++
	}
	if !isOne(f.Head()) {
		return Series[T]{}, fmt.Errorf("series: sqrt needs a leading coefficient of zero or one: %w", ErrUnsupported)
	}
	s := Fix(func(self Series[T]) Series[T] {
		return One[T]().Add(f.Derivative().Div(self.Add(self)).Integral())
	})
	var z T
	zero := z.Zero()
	for ; pairs > 0; pairs-- {
		s = Cons(zero, s)
	}
	return s, nil
}
