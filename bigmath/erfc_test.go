package bigmath_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/specfun/bigmath"
)

func TestErfc(t *testing.T) {
	// Cross-check against the float64 implementation, which is accurate
	// to a couple of ulps over the whole range, including the far tail.
	// At 53 bits the regime threshold sits near x = 6.9, so the sweep
	// exercises both the series and the asymptotic expansion.
	for _, x := range []float64{0.01, 0.3, 1, 2.5, 5, 8, 12, -0.3, -1, -2.5} {
		t.Run(fmt.Sprintf("x=%g", x), func(t *testing.T) {
			for _, prec := range []uint{53, 64} {
				z, err := bigmath.Erfc(new(big.Float).SetPrec(prec), bf(x, prec))
				require.NoError(t, err)
				require.InEpsilon(t, math.Erfc(x), f64(z), 1e-13)
			}
		})
	}
}

func TestErfcCrossRegime(t *testing.T) {
	// The regime threshold moves with the precision: x = 7.5 and x = 9
	// take the asymptotic expansion at 53 bits and the series at 200. In
	// the overlap both are valid, so the results must agree to the
	// coarser precision.
	for _, x := range []float64{7.5, 9} {
		t.Run(fmt.Sprintf("x=%g", x), func(t *testing.T) {
			lo, err := bigmath.Erfc(new(big.Float).SetPrec(53), bf(x, 53))
			require.NoError(t, err)
			hi, err := bigmath.Erfc(new(big.Float).SetPrec(200), bf(x, 200))
			require.NoError(t, err)
			requireClose(t, hi, lo, 53, 6)
		})
	}
}

func TestErfcSymmetry(t *testing.T) {
	// erfc(x) + erfc(−x) = 2 exactly.
	two := bf(2, 200)
	for _, x := range []float64{0.7, 3, 9, 40} {
		p, err := bigmath.Erfc(new(big.Float).SetPrec(200), bf(x, 200))
		require.NoError(t, err)
		n, err := bigmath.Erfc(new(big.Float).SetPrec(200), bf(-x, 200))
		require.NoError(t, err)
		requireClose(t, two, p.Add(p, n), 200, 8)
	}
}

func TestErfcAgreement(t *testing.T) {
	// Far-tail asymptotic evaluation at two widely different precisions.
	lo, err := bigmath.Erfc(new(big.Float).SetPrec(256), bf(50, 256))
	require.NoError(t, err)
	hi, err := bigmath.Erfc(new(big.Float).SetPrec(512), bf(50, 512))
	require.NoError(t, err)
	require.Positive(t, lo.Sign())
	requireClose(t, hi, lo, 256, 6)
}

func TestErfcSpecials(t *testing.T) {
	z, err := bigmath.Erfc(new(big.Float).SetPrec(64), big.NewFloat(0))
	require.NoError(t, err)
	require.Zero(t, z.Cmp(big.NewFloat(1)))

	z, err = bigmath.Erfc(new(big.Float).SetPrec(64), new(big.Float).SetInf(false))
	require.NoError(t, err)
	require.Zero(t, z.Sign())

	z, err = bigmath.Erfc(new(big.Float).SetPrec(64), new(big.Float).SetInf(true))
	require.NoError(t, err)
	require.Zero(t, z.Cmp(big.NewFloat(2)))

	z, err = bigmath.Erfc(new(big.Float), bf(1, 112))
	require.NoError(t, err)
	require.EqualValues(t, 112, z.Prec(), "z must inherit x's precision")
}
