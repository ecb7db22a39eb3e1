package series

import "github.com/wildfunctions/formal_series/pkg/coeff"

// isZero reports whether c is the ring's additive identity.
func isZero[T coeff.Ring[T]](c T) bool {
	return c.Equal(c.Zero())
}

// isOne reports whether c is the ring's multiplicative identity.
func isOne[T coeff.Ring[T]](c T) bool {
	return c.Equal(c.One())
}

// Zero returns the series all of whose coefficients are the additive
// identity. Its tail is itself, so it occupies one node however far it is
// read.
func Zero[T coeff.Ring[T]]() Series[T] {
	var z T
	return Fix(func(self Series[T]) Series[T] {
		return Cons(z.Zero(), self)
	})
}

// Constant returns the series c + 0x + 0x^2 + ....
func Constant[T coeff.Ring[T]](c T) Series[T] {
	return Cons(c, Zero[T]())
}

// One returns the multiplicative identity series 1.
func One[T coeff.Ring[T]]() Series[T] {
	var z T
	return Constant(z.One())
}

// Identity returns the series x.
func Identity[T coeff.Ring[T]]() Series[T] {
	var z T
	return Cons(z.Zero(), One[T]())
}

// OfSlice returns the series whose leading coefficients are cs, padded with
// zeros forever after.
func OfSlice[T coeff.Ring[T]](cs []T) Series[T] {
	s := Zero[T]()
	for i := len(cs) - 1; i >= 0; i-- {
		s = Cons(cs[i], s)
	}
	return s
}

// Neg returns the coefficient-wise negation of f.
func (f Series[T]) Neg() Series[T] {
	return Delay(func() Series[T] {
		return Cons(f.Head().Neg(), f.Tail().Neg())
	})
}

// Scale returns f with every coefficient multiplied by c.
func (f Series[T]) Scale(c T) Series[T] {
	return Delay(func() Series[T] {
		return Cons(c.Mul(f.Head()), f.Tail().Scale(c))
	})
}

// Add returns the coefficient-wise sum of f and g.
func (f Series[T]) Add(g Series[T]) Series[T] {
	return Delay(func() Series[T] {
		return Cons(f.Head().Add(g.Head()), f.Tail().Add(g.Tail()))
	})
}

// Sub returns f minus g.
func (f Series[T]) Sub(g Series[T]) Series[T] {
	return f.Add(g.Neg())
}
