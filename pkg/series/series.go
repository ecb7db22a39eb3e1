// Package series implements formal power series: infinite coefficient
// sequences a0, a1, a2, ... read as a0 + a1*x + a2*x^2 + ... over an
// abstract coefficient ring.
//
// A Series is lazy and memoized. Nothing is computed until a coefficient is
// inspected, and each node is computed at most effectively once, so a
// series can be handed around and re-read freely. All operations are pure:
// they return new Series values and never mutate their operands. Algorithms
// are written against coeff.Ring, so exact rationals, big floats, and
// decimals all work.
//
// Several constructions (Exp, Sin, Cos, Revert, Sqrt) define a series in
// terms of itself. Declare and Fix build such fixed points: the defining
// expression closes over a placeholder that is bound once construction
// finishes. Reading a placeholder before it is bound panics with an error
// wrapping ErrUnbound rather than looping.
package series

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/wildfunctions/formal_series/pkg/coeff"
)

var (
	// ErrUnsupported marks operations whose preconditions exclude the given
	// operands: negative exponents, composition or reversion with a nonzero
	// inner constant term, square roots outside the computable cases, and
	// division by a series of higher valuation.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrUnbound marks a read of a self-referential placeholder before its
	// definition was bound.
	ErrUnbound = errors.New("placeholder read before it was bound")
)

// Series is an infinite sequence of ring coefficients. The zero value is
// not a valid Series; use the package constructors. Series values are
// immutable and safe for concurrent use.
type Series[T coeff.Ring[T]] struct {
	p *promise[T]
}

// node is a materialized step: one coefficient and the rest of the series.
type node[T coeff.Ring[T]] struct {
	head T
	tail Series[T]
}

// promise is a compute-once cell. res stays nil until the first force; eval
// is cleared after it so the recipe and everything it captured become
// collectable. Concurrent forcing may run a recipe more than once, but
// recipes are pure, every run yields an equal node, and the first
// CompareAndSwap wins.
type promise[T coeff.Ring[T]] struct {
	res  atomic.Pointer[node[T]]
	eval atomic.Pointer[func() node[T]]
}

func (p *promise[T]) force() *node[T] {
	if n := p.res.Load(); n != nil {
		return n
	}
	fn := p.eval.Load()
	if fn == nil {
		// A concurrent forcer published the node and cleared the recipe
		// between our two loads.
		return p.res.Load()
	}
	n := (*fn)()
	if p.res.CompareAndSwap(nil, &n) {
		p.eval.Store(nil)
	}
	return p.res.Load()
}

func (s Series[T]) force() *node[T] {
	if s.p == nil {
		panic("series: use of zero-value Series")
	}
	return s.p.force()
}

// Cons returns the series whose first coefficient is head and whose
// remaining coefficients are those of tail.
func Cons[T coeff.Ring[T]](head T, tail Series[T]) Series[T] {
	p := &promise[T]{}
	p.res.Store(&node[T]{head: head, tail: tail})
	return Series[T]{p}
}

// Delay suspends build until the series is first inspected. build runs at
// most effectively once and must return without inspecting unbound
// placeholders.
func Delay[T coeff.Ring[T]](build func() Series[T]) Series[T] {
	fn := func() node[T] { return *build().force() }
	p := &promise[T]{}
	p.eval.Store(&fn)
	return Series[T]{p}
}

// Head returns the first coefficient, forcing it if necessary.
func (s Series[T]) Head() T {
	return s.force().head
}

// Tail returns the series after the first coefficient. Repeated calls
// return the identical value.
func (s Series[T]) Tail() Series[T] {
	return s.force().tail
}

// Declare allocates a placeholder for a self-referential definition and
// returns it together with the function that binds its definition. The
// placeholder may be captured by the expression that will define it, but
// none of its coefficients may be read until bind has run: reading earlier
// panics with an error wrapping ErrUnbound. Binding twice panics.
func Declare[T coeff.Ring[T]]() (s Series[T], bind func(Series[T])) {
	var def atomic.Pointer[Series[T]]
	s = Delay(func() Series[T] {
		d := def.Load()
		if d == nil {
			panic(fmt.Errorf("series: %w", ErrUnbound))
		}
		return *d
	})
	bind = func(d Series[T]) {
		if !def.CompareAndSwap(nil, &d) {
			panic("series: placeholder bound twice")
		}
	}
	return s, bind
}

// Fix builds a self-referential series. define receives a placeholder that
// stands for Fix's own result and must return the defining expression
// without reading the placeholder's coefficients.
func Fix[T coeff.Ring[T]](define func(self Series[T]) Series[T]) Series[T] {
	self, bind := Declare[T]()
	s := define(self)
	bind(s)
	return s
}
