package series

import (
	"fmt"

	"github.com/wildfunctions/formal_series/pkg/coeff"
)

// Compose returns f(g(x)). The inner series must have a zero constant term;
// otherwise every output coefficient would draw on infinitely many
// coefficients of f, and Compose returns an error wrapping ErrUnsupported.
func (f Series[T]) Compose(g Series[T]) (Series[T], error) {
	if !isZero(g.Head()) {
		return Series[T]{}, fmt.Errorf("series: compose needs a zero constant term in the inner series: %w", ErrUnsupported)
	}
	return compose(f, g), nil
}

// compose runs the recurrence head = head(f), tail = tail(g) * compose(tail(f), g)
// without rechecking the precondition. Fixed-point callers establish it by
// construction and must not have their placeholder's head read here.
func compose[T coeff.Ring[T]](f, g Series[T]) Series[T] {
	return Delay(func() Series[T] {
		return Cons(f.Head(), g.Tail().Mul(compose(f.Tail(), g)))
	})
}

// Revert returns the functional inverse r of f, the series with
// f(r(x)) = x. f must have a zero constant term, like Compose; a usable f
// also needs a nonzero linear term, the lack of which surfaces lazily as a
// division failure once a coefficient of the result is read.
func (f Series[T]) Revert() (Series[T], error) {
	if !isZero(f.Head()) {
		return Series[T]{}, fmt.Errorf("series: revert needs a zero constant term: %w", ErrUnsupported)
	}
	var z T
	r := Fix(func(self Series[T]) Series[T] {
		return Cons(z.Zero(), One[T]().Div(compose(f.Tail(), self)))
	})
	return r, nil
}

// Derivative returns the term-by-term derivative: coefficient n of the
// result is (n+1) times coefficient n+1 of f.
func (f Series[T]) Derivative() Series[T] {
	return Delay(func() Series[T] {
		var z T
		return derivFrom(f.Tail(), z.One())
	})
}

// derivFrom walks f emitting n*head, with n counting up from its seed.
func derivFrom[T coeff.Ring[T]](f Series[T], n T) Series[T] {
	return Delay(func() Series[T] {
		return Cons(n.Mul(f.Head()), derivFrom(f.Tail(), n.Add(n.One())))
	})
}

// Integral returns the antiderivative of f with a zero constant term:
// coefficient n+1 of the result is coefficient n of f divided by n+1. The
// head is emitted without touching f at all, which is what lets integral
// equations like Exp's close over a placeholder that is not yet bound.
func (f Series[T]) Integral() Series[T] {
	var z T
	return Cons(z.Zero(), integralFrom(f, z.One()))
}

// integralFrom walks f emitting head/n, with n counting up from its seed.
func integralFrom[T coeff.Ring[T]](f Series[T], n T) Series[T] {
	return Delay(func() Series[T] {
		return Cons(f.Head().Div(n), integralFrom(f.Tail(), n.Add(n.One())))
	})
}
