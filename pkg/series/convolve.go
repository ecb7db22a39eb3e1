package series

import "fmt"

// Mul returns the product of f and g under formal convolution:
// the head is f0*g0 and the tail is g.Tail().Scale(f0) + f.Tail().Mul(g).
// Reading the first n coefficients costs O(n^2) ring operations in total;
// memoization keeps each intermediate node to a single evaluation.
func (f Series[T]) Mul(g Series[T]) Series[T] {
	return Delay(func() Series[T] {
		f0 := f.Head()
		return Cons(f0.Mul(g.Head()), g.Tail().Scale(f0).Add(f.Tail().Mul(g)))
	})
}

// Div returns the quotient f / g.
//
// Leading zeros shared by f and g cancel: while both heads are the additive
// identity the algorithm advances past them, dividing out the common power
// of x. The quotient therefore exists whenever the valuation of g is at
// most the valuation of f and g is not identically zero.
//
// Failures surface on the force that discovers them, since coefficients are
// produced on demand:
//   - reaching a nonzero coefficient of f while g still reads zero means no
//     power-series quotient exists; that force panics with an error
//     wrapping ErrUnsupported;
//   - if f and g are both identically zero, the cancellation loop never
//     finds a nonzero head and the force does not return. Callers dividing
//     possibly-zero series carry that risk themselves.
func (f Series[T]) Div(g Series[T]) Series[T] {
	return Delay(func() Series[T] {
		num, den := f, g
		for {
			nh, dh := num.Head(), den.Head()
			switch {
			case !isZero(dh):
				q := nh.Div(dh)
				return Cons(q, num.Tail().Sub(den.Tail().Scale(q)).Div(den))
			case !isZero(nh):
				panic(fmt.Errorf("series: division by a series of higher valuation: %w", ErrUnsupported))
			default:
				num, den = num.Tail(), den.Tail()
			}
		}
	})
}

// Pow returns f raised to the n-th power by repeated multiplication.
// Negative exponents have no power-series form in general and return an
// error wrapping ErrUnsupported.
func (f Series[T]) Pow(n int) (Series[T], error) {
	if n < 0 {
		return Series[T]{}, fmt.Errorf("series: negative exponent %d: %w", n, ErrUnsupported)
	}
	p := One[T]()
	for ; n > 0; n-- {
		p = p.Mul(f)
	}
	return p, nil
}
