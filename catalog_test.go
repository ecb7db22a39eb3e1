package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/formal_series/pkg/coeff"
)

var ratCmp = cmp.Comparer(func(a, b coeff.Rational) bool { return a.Equal(b) })

// rats parses expected coefficients from rational notation.
func rats(t *testing.T, ss ...string) []coeff.Rational {
	t.Helper()
	out := make([]coeff.Rational, len(ss))
	for i, s := range ss {
		r, err := coeff.ParseRational(s)
		require.NoError(t, err)
		out[i] = r
	}
	return out
}

func buildRational(t *testing.T, name string) []coeff.Rational {
	t.Helper()
	e, err := Get[coeff.Rational](name)
	require.NoError(t, err)
	f, err := e.Build()
	require.NoError(t, err)
	return f.Take(6)
}

func TestNamesAreStable(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{
		"exp", "sin", "cos", "tan", "sec", "sinh", "cosh",
		"geom", "counting", "catalan", "bernoulli",
		"log1p", "atan", "asin", "sqrt1p",
	}, names)
}

func TestGetUnknownName(t *testing.T) {
	_, err := Get[coeff.Rational]("zeta")
	require.EqualError(t, err, "unknown series: zeta")
}

func TestCatalogPrefixes(t *testing.T) {
	cases := map[string][]string{
		"exp":       {"1", "1", "1/2", "1/6", "1/24", "1/120"},
		"sin":       {"0", "1", "0", "-1/6", "0", "1/120"},
		"cos":       {"1", "0", "-1/2", "0", "1/24", "0"},
		"tan":       {"0", "1", "0", "1/3", "0", "2/15"},
		"sec":       {"1", "0", "1/2", "0", "5/24", "0"},
		"sinh":      {"0", "1", "0", "1/6", "0", "1/120"},
		"cosh":      {"1", "0", "1/2", "0", "1/24", "0"},
		"geom":      {"1", "1", "1", "1", "1", "1"},
		"counting":  {"1", "2", "3", "4", "5", "6"},
		"catalan":   {"1", "1", "2", "5", "14", "42"},
		"bernoulli": {"1", "-1/2", "1/12", "0", "-1/720", "0"},
		"log1p":     {"0", "1", "-1/2", "1/3", "-1/4", "1/5"},
		"atan":      {"0", "1", "0", "-1/3", "0", "1/5"},
		"asin":      {"0", "1", "0", "1/6", "0", "3/40"},
		"sqrt1p":    {"1", "1/2", "-1/8", "1/16", "-5/128", "7/256"},
	}
	require.Len(t, cases, len(Names()), "every catalog entry needs an expected prefix")

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			got := buildRational(t, name)
			if diff := cmp.Diff(rats(t, want...), got, ratCmp); diff != "" {
				t.Fatalf("prefix mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalogBuildsOverFloat(t *testing.T) {
	e, err := Get[coeff.Float]("exp")
	require.NoError(t, err)
	f, err := e.Build()
	require.NoError(t, err)
	cs := f.Take(3)
	assert.InDelta(t, 1.0, cs[0].Float64(), 1e-15)
	assert.InDelta(t, 0.5, cs[2].Float64(), 1e-15)
}

func TestCatalogBuildsOverDecimal(t *testing.T) {
	e, err := Get[coeff.Decimal]("geom")
	require.NoError(t, err)
	f, err := e.Build()
	require.NoError(t, err)
	var z coeff.Decimal
	for _, c := range f.Take(4) {
		assert.True(t, c.Equal(z.One()))
	}
}
