package bigmath_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/specfun/bigmath"
)

const eulerStr = "0.57721566490153286060651209008240243104215933593992"

func TestEulerGamma(t *testing.T) {
	// 50 reference digits cover about 166 bits; the non-monotonic sweep
	// exercises the grow-only cache from both sides.
	for _, prec := range []uint{100, 53, 150, 64, 128} {
		z, err := bigmath.EulerGamma(new(big.Float).SetPrec(prec))
		require.NoError(t, err)
		want := parse(t, eulerStr, prec)
		require.Zero(t, z.Cmp(want), "prec %d: got %g, want %g", prec, z, want)
	}
}

func TestEulerGammaDefaultPrec(t *testing.T) {
	z, err := bigmath.EulerGamma(new(big.Float))
	require.NoError(t, err)
	require.EqualValues(t, bigmath.DefaultPrec, z.Prec())
}

func TestEulerGammaCeiling(t *testing.T) {
	// Past roughly ten thousand bits the Bessel series outruns the
	// iteration ceiling; the failure must be a *ConvergenceError, and
	// must not poison the cache.
	_, err := bigmath.EulerGamma(new(big.Float).SetPrec(20000))
	var ce *bigmath.ConvergenceError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, bigmath.MaxIterations, ce.Terms)

	z, err := bigmath.EulerGamma(new(big.Float).SetPrec(64))
	require.NoError(t, err)
	require.Zero(t, z.Cmp(parse(t, eulerStr, 64)))
}
