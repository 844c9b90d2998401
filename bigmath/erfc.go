package bigmath

import (
	"math"
	"math/big"
)

// Erfc sets z to the rounded value of the complementary error function
// erfc(x) = 1 − erf(x), and returns z. If z's precision is 0, it is set to
// x's precision before the operation.
//
// Two evaluation regimes cover the argument range: the Maclaurin series of
// erf for small and moderate x², and the asymptotic expansion of erfc once
// e^{−x²} alone is below the rounding target. Negative arguments reduce to
// erfc(x) = 2 − erfc(−x). An error is returned only when a summation loop
// exceeds MaxIterations; with the series regime needing a few terms per
// bit in the worst case, this happens only at extreme precisions.
func Erfc(z, x *big.Float) (*big.Float, error) {
	p := resultPrec(z, x)
	if z.Prec() == 0 {
		z.SetPrec(p)
	}
	if x.Sign() == 0 {
		z.SetInt64(1)
		return z, nil
	}
	if x.IsInf() {
		if x.Signbit() {
			z.SetInt64(2)
		} else {
			z.SetInt64(0)
		}
		return z, nil
	}

	ax := alloc(x.Prec()).Abs(x)
	defer free(ax)

	// Regime selection: past x² = ln 2·(p+16) the series' cancellation
	// against 1 costs more than the asymptotic expansion's smallest term
	// can afford, and the expansion takes over.
	xf, _ := ax.Float64()
	var err error
	if xf*xf > math.Ln2*float64(p+16) {
		err = erfcAsympt(z, ax, p)
	} else {
		err = erfcSeries(z, ax, p)
	}
	if err != nil {
		return z, err
	}
	if x.Signbit() {
		z.Sub(two, z)
	}
	return z, nil
}

// erfcSeries evaluates erfc(x) for 0 < x, x² ≤ ln 2·(p+16), using the
// Maclaurin series
//
//	erf(x) = (2/√π)·e^{−x²} · Σ 2ᵏ·x^(2k+1) / (1·3·5⋯(2k+1))
//
// whose terms are all positive, so the sum itself carries no cancellation.
// The final subtraction from 1 loses about x²·log₂e bits when erf(x) is
// close to 1; the working precision is widened by as much up front.
func erfcSeries(z, x *big.Float, p uint) error {
	xf, _ := x.Float64()
	wp := p + 20 + uint(math.Ceil(xf*xf*math.Log2E))

	ar := NewArena(wp)
	defer ar.Release()
	var (
		xw  = ar.NewFloat(x)
		x2  = ar.New().Mul(xw, xw)
		tx2 = ar.New().Add(x2, x2)
		t   = ar.NewFloat(xw) // k = 0 term
		sum = ar.NewFloat(xw)
		d   = ar.New()
	)

	for k := 1; ; k++ {
		if k > MaxIterations {
			return nonConvergence("erfc: series", wp, MaxIterations, t, sum)
		}
		t.Mul(t, tx2)
		t.Quo(t, d.SetInt64(int64(2*k+1)))
		sum.Add(sum, t)

		// Positive terms: the sum is done once t is below it by more than
		// the working precision.
		if t.MantExp(nil) < sum.MantExp(nil)-int(wp)-4 {
			break
		}
	}

	e := Exp(ar.New(), x2.Neg(x2))
	sum.Mul(sum, e)
	sum.Add(sum, sum)
	sum.Quo(sum, d.Sqrt(pi(wp)))
	z.Set(sum.Sub(one, sum))
	return nil
}

// erfcAsympt evaluates erfc(x) for x with x² > ln 2·(p+16), using the
// asymptotic expansion
//
//	erfc(x) = e^{−x²}/(x·√π) · Σ (−1)ᵏ·(2k−1)!! / (2x²)ᵏ
//
// The expansion diverges eventually, but in this regime its terms shrink
// below the rounding target first: the smallest term is of the order of
// e^{−x²} < 2^{−(p+16)}, while summation stops at 2^{−(p+8)}.
func erfcAsympt(z, x *big.Float, p uint) error {
	// e^{−x²} concentrates the result x²·log₂e binades down; widen the
	// working precision by the size of x² so that the argument of Exp is
	// accurate in absolute terms too.
	wp := p + 16
	if e := 2 * x.MantExp(nil); e > 0 {
		wp += uint(e)
	}

	ar := NewArena(wp)
	defer ar.Release()
	var (
		xw  = ar.NewFloat(x)
		x2  = ar.New().Mul(xw, xw)
		inv = ar.New()
		t   = ar.NewInt64(1)
		sum = ar.NewInt64(1)
		d   = ar.New()
		eps = ar.New().SetMantExp(one, -int(p+8))
	)
	inv.Quo(one, d.Add(x2, x2))

	for k := 1; ; k++ {
		if k > MaxIterations {
			return nonConvergence("erfc: asymptotic series", wp, MaxIterations, t, sum)
		}
		t.Mul(t, d.SetInt64(int64(2*k-1)))
		t.Mul(t, inv)
		t.Neg(t)
		sum.Add(sum, t)

		// The leading term of the sum is 1, so the absolute bound is also
		// a relative one.
		if d.Abs(t).Cmp(eps) < 0 {
			break
		}
	}

	e := Exp(ar.New(), x2.Neg(x2))
	e.Quo(e, d.Mul(xw, d.Sqrt(pi(wp))))
	z.Set(sum.Mul(sum, e))
	return nil
}
