package main

import (
	"fmt"

	"github.com/wildfunctions/formal_series/pkg/coeff"
	"github.com/wildfunctions/formal_series/pkg/series"
)

// Coeff is the coefficient surface the CLI needs: the ring operations plus
// a printable form and a float approximation for display.
type Coeff[T any] interface {
	coeff.Ring[T]
	fmt.Stringer
	Float64() float64
}

// Entry is one named series in the catalog.
type Entry[T Coeff[T]] struct {
	Name  string
	Info  string
	Build func() (series.Series[T], error)
}

// entries returns the catalog over ring T, in display order. Every builder
// returns an error so entries with a computability precondition (reversion,
// square root) have the same shape as the total ones.
func entries[T Coeff[T]]() []Entry[T] {
	var z T
	one := z.One()
	two := one.Add(one)
	four := two.Add(two)
	half := one.Div(two)

	return []Entry[T]{
		{
			Name: "exp",
			Info: "exponential function, coefficients 1/n!",
			Build: func() (series.Series[T], error) {
				return series.Exp[T](), nil
			},
		},
		{
			Name: "sin",
			Info: "sine",
			Build: func() (series.Series[T], error) {
				return series.Sin[T](), nil
			},
		},
		{
			Name: "cos",
			Info: "cosine",
			Build: func() (series.Series[T], error) {
				return series.Cos[T](), nil
			},
		},
		{
			Name: "tan",
			Info: "tangent, sin/cos",
			Build: func() (series.Series[T], error) {
				return series.Tan[T](), nil
			},
		},
		{
			Name: "sec",
			Info: "secant, 1/cos",
			Build: func() (series.Series[T], error) {
				return series.One[T]().Div(series.Cos[T]()), nil
			},
		},
		{
			Name: "sinh",
			Info: "hyperbolic sine, (exp(x) - exp(-x))/2",
			Build: func() (series.Series[T], error) {
				e := series.Exp[T]()
				expNeg, err := e.Compose(series.Identity[T]().Neg())
				if err != nil {
					return series.Series[T]{}, err
				}
				return e.Sub(expNeg).Scale(half), nil
			},
		},
		{
			Name: "cosh",
			Info: "hyperbolic cosine, (exp(x) + exp(-x))/2",
			Build: func() (series.Series[T], error) {
				e := series.Exp[T]()
				expNeg, err := e.Compose(series.Identity[T]().Neg())
				if err != nil {
					return series.Series[T]{}, err
				}
				return e.Add(expNeg).Scale(half), nil
			},
		},
		{
			Name: "geom",
			Info: "geometric series 1/(1-x)",
			Build: func() (series.Series[T], error) {
				return series.One[T]().Div(series.One[T]().Sub(series.Identity[T]())), nil
			},
		},
		{
			Name: "counting",
			Info: "1/(1-x)^2, coefficients 1, 2, 3, ...",
			Build: func() (series.Series[T], error) {
				g := series.One[T]().Div(series.One[T]().Sub(series.Identity[T]()))
				return g.Pow(2)
			},
		},
		{
			Name: "catalan",
			Info: "Catalan numbers, (1 - sqrt(1-4x))/(2x)",
			Build: func() (series.Series[T], error) {
				s, err := series.One[T]().Sub(series.Identity[T]().Scale(four)).Sqrt()
				if err != nil {
					return series.Series[T]{}, err
				}
				return series.One[T]().Sub(s).Div(series.Identity[T]().Scale(two)), nil
			},
		},
		{
			Name: "bernoulli",
			Info: "Bernoulli numbers over n!, x/(exp(x)-1)",
			Build: func() (series.Series[T], error) {
				return series.Identity[T]().Div(series.Exp[T]().Sub(series.One[T]())), nil
			},
		},
		{
			Name: "log1p",
			Info: "natural logarithm log(1+x)",
			Build: func() (series.Series[T], error) {
				g := series.One[T]().Div(series.One[T]().Add(series.Identity[T]()))
				return g.Integral(), nil
			},
		},
		{
			Name: "atan",
			Info: "inverse tangent",
			Build: func() (series.Series[T], error) {
				x := series.Identity[T]()
				g := series.One[T]().Div(series.One[T]().Add(x.Mul(x)))
				return g.Integral(), nil
			},
		},
		{
			Name: "asin",
			Info: "inverse sine, reversion of sin",
			Build: func() (series.Series[T], error) {
				return series.Sin[T]().Revert()
			},
		},
		{
			Name: "sqrt1p",
			Info: "square root sqrt(1+x)",
			Build: func() (series.Series[T], error) {
				return series.One[T]().Add(series.Identity[T]()).Sqrt()
			},
		},
	}
}

// Get returns the catalog entry with the given name.
func Get[T Coeff[T]](name string) (Entry[T], error) {
	for _, e := range entries[T]() {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry[T]{}, fmt.Errorf("unknown series: %s", name)
}

// Names returns all catalog names in display order. The name set is the
// same over every ring.
func Names() []string {
	es := entries[coeff.Rational]()
	names := make([]string, len(es))
	for i, e := range es {
		names[i] = e.Name
	}
	return names
}
