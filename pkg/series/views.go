package series

import (
	"fmt"
	"strings"
)

// Take materializes the first n coefficients, forcing exactly n nodes.
// n <= 0 yields nil.
func (f Series[T]) Take(n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	s := f
	for i := 0; i < n; i++ {
		out = append(out, s.Head())
		s = s.Tail()
	}
	return out
}

// Eval evaluates the polynomial made of f's first n coefficients at x by
// Horner's rule: f[0] + x*(f[1] + x*(...)). It forces exactly n
// coefficients; n <= 0 yields the ring zero. The result approximates the
// function the series represents when the ring carries a notion of
// closeness, and is purely formal otherwise.
func (f Series[T]) Eval(x T, n int) T {
	var z T
	if n <= 0 {
		return z.Zero()
	}
	cs := f.Take(n)
	acc := cs[n-1]
	for i := n - 2; i >= 0; i-- {
		acc = cs[i].Add(x.Mul(acc))
	}
	return acc
}

// String renders the first three coefficients and a continuation marker,
// e.g. "[1 1 1/2 ...]". It is a debugging aid only and forces three
// coefficients.
func (f Series[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range f.Take(3) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", c)
	}
	b.WriteString(" ...]")
	return b.String()
}
