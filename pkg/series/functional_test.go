package series

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/formal_series/pkg/coeff"
)

func TestComposeWithIdentity(t *testing.T) {
	const n = 12
	f := Exp[coeff.Rational]()

	t.Run("identity on the right", func(t *testing.T) {
		c, err := f.Compose(Identity[coeff.Rational]())
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(f.Take(n), c.Take(n), ratCmp))
	})
	t.Run("identity on the left", func(t *testing.T) {
		g := OfSlice(ints(0, 2, 5))
		c, err := Identity[coeff.Rational]().Compose(g)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(g.Take(n), c.Take(n), ratCmp))
	})
}

func TestComposeSubstitutesXSquared(t *testing.T) {
	// geom(x) = 1/(1-x); geom(x^2) = 1 + x^2 + x^4 + ...
	geom := One[coeff.Rational]().Div(OfSlice(ints(1, -1)))
	xsq := OfSlice(ints(0, 0, 1))
	c, err := geom.Compose(xsq)
	require.NoError(t, err)
	requirePrefix(t, ints(1, 0, 1, 0, 1, 0, 1), c)
}

func TestComposeRequiresZeroConstantTerm(t *testing.T) {
	_, err := Exp[coeff.Rational]().Compose(One[coeff.Rational]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestRevertRequiresZeroConstantTerm(t *testing.T) {
	_, err := One[coeff.Rational]().Revert()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestRevertOfScaledIdentity(t *testing.T) {
	// The inverse of 2x is x/2.
	f := OfSlice(ints(0, 2))
	r, err := f.Revert()
	require.NoError(t, err)
	requirePrefix(t, []coeff.Rational{ri(0), rq(1, 2), ri(0), ri(0)}, r)
}

func TestRevertInverseLaw(t *testing.T) {
	const n = 10
	f := OfSlice(ints(0, 1, 1)) // x + x^2
	r, err := f.Revert()
	require.NoError(t, err)

	c, err := f.Compose(r)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(Identity[coeff.Rational]().Take(n), c.Take(n), ratCmp))
}

func TestDerivative(t *testing.T) {
	t.Run("of a cubic", func(t *testing.T) {
		// d/dx x^3 = 3x^2
		cube, err := Identity[coeff.Rational]().Pow(3)
		require.NoError(t, err)
		requirePrefix(t, ints(0, 0, 3, 0, 0), cube.Derivative())
	})
	t.Run("of a constant", func(t *testing.T) {
		requirePrefix(t, ints(0, 0, 0), Constant(ri(42)).Derivative())
	})
}

func TestIntegral(t *testing.T) {
	// integral(1) = x; integral(x) = x^2/2
	requirePrefix(t, ints(0, 1, 0, 0), One[coeff.Rational]().Integral())
	requirePrefix(t,
		[]coeff.Rational{ri(0), ri(0), rq(1, 2), ri(0)},
		Identity[coeff.Rational]().Integral())
}

func TestDerivativeOfIntegralRoundTrips(t *testing.T) {
	const n = 14
	for name, f := range map[string]Series[coeff.Rational]{
		"exponential": Exp[coeff.Rational](),
		"polynomial":  OfSlice(ints(4, 0, -2, 1)),
		"zero":        Zero[coeff.Rational](),
	} {
		t.Run(name, func(t *testing.T) {
			got := f.Integral().Derivative().Take(n)
			assert.Empty(t, cmp.Diff(f.Take(n), got, ratCmp))
		})
	}
}
