package specfun

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// bf returns f as a big.Float of precision prec.
func bf(f float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(f)
}

// f64 returns x rounded to a float64.
func f64(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}

// requireClose fails unless got agrees with the nonzero reference want to
// within slack units in the last place at precision prec.
func requireClose(t *testing.T, want, got *big.Float, prec, slack uint) {
	t.Helper()
	require.NotZero(t, want.Sign(), "requireClose needs a nonzero reference")
	diff := new(big.Float).SetPrec(prec + 64).Sub(want, got)
	if diff.Sign() == 0 {
		return
	}
	diff.Abs(diff)
	bound := new(big.Float).SetPrec(prec + 64).Abs(want)
	bound.SetMantExp(bound, int(slack)-int(prec))
	require.LessOrEqual(t, diff.Cmp(bound), 0,
		"want %g\ngot  %g\ndiff %g exceeds %g", want, got, diff, bound)
}

func TestResultPrec(t *testing.T) {
	x := bf(1.5, 100)
	require.EqualValues(t, 64, resultPrec(bf(0, 64), x))
	require.EqualValues(t, 100, resultPrec(new(big.Float), x))
}
