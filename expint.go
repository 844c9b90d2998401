// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfun

import (
	"fmt"
	"math"
	"math/big"

	"github.com/db47h/specfun/bigmath"
)

// eiGuard is the number of guard bits carried by the exponential integral
// engine on top of the requested precision.
const eiGuard = 20

// Ei sets z to the rounded value of the exponential integral
//
//	Ei(x) = −∫_{−x}^∞ e^(−t)/t dt
//
// taken as a principal value, and returns z. If z's precision is 0, it is
// set to x's precision before the operation.
//
// x must be finite and nonzero; otherwise Ei returns a *DomainError. The
// related integral E₁(x) = −Ei(−x) for x > 0. A *bigmath.ConvergenceError
// is returned when a series fails to converge within
// bigmath.MaxIterations terms. In every error case the value of z is
// unchanged.
func Ei(z, x *big.Float) (*big.Float, error) {
	if x.Sign() == 0 || x.IsInf() {
		return z, &DomainError{Op: "exponential integral", Cond: "finite nonzero x"}
	}
	prec := resultPrec(z, x)
	if z.Prec() == 0 {
		z.SetPrec(prec)
	}
	return z, ei(z, x, prec)
}

// ei evaluates Ei(x) to prec bits into z, whose precision must be set.
// Two regimes split the axis at rh = ln 2·(prec+eiGuard) + 10: beyond it
// the smallest term of the divergent expansion Σ k!/xᵏ is already below
// the rounding target and the expansion wins; inside it the Maclaurin
// series with the γ + ln|x| head takes over.
func ei(z, x *big.Float, prec uint) error {
	wp := prec + eiGuard
	rh := math.Ceil(float64(wp)*math.Ln2) + 10
	xf, _ := x.Float64()
	if math.Abs(xf) > rh {
		return eiAsympt(z, x, wp, prec)
	}

	// For x < 0 the Maclaurin series alternates and its partial sums peak
	// near e^|x| before collapsing to a result of order e^−|x|: about
	// 2·log₂e·|x| bits cancel. Widen by 3·|x| so that the arithmetic and
	// the stopping bound in eiTaylor both clear the collapse with slack.
	wp += 3 * uint(math.Abs(xf))
	ar := bigmath.NewArena(wp)
	defer ar.Release()

	s := ar.New()
	if err := eiTaylor(s, x, wp); err != nil {
		return err
	}
	s.Add(s, bigmath.Log(ar.New(), ar.New().Abs(x)))
	z.Set(s)
	return nil
}

// eiTaylor sums the Maclaurin part of Ei at x ≠ 0,
//
//	γ + Σ_{k≥1} xᵏ/(k·k!)
//
// into z at working precision wp, leaving the ln|x| head to the caller.
// Successive terms follow from term·x·(k−1)/k², and summation stops once
// a term drops below 2^−wp. The bound follows the working precision, not
// the target one: for x < 0 the caller widens wp past the cancellation in
// the partial sums, and the truncated tail has to stay below the
// collapsed result.
func eiTaylor(z, x *big.Float, wp uint) error {
	ar := bigmath.NewArena(wp)
	defer ar.Release()
	var (
		xw   = ar.NewFloat(x)
		term = ar.NewFloat(xw) // k = 1 term
		sum  = ar.NewFloat(xw)
		d    = ar.New()
		eps  = ar.New().SetMantExp(one, -int(wp))
	)
	for k := int64(2); ; k++ {
		if k > bigmath.MaxIterations {
			return &bigmath.ConvergenceError{
				Op:         "ei: taylor series",
				Prec:       wp,
				Terms:      bigmath.MaxIterations,
				LastTerm:   new(big.Float).Set(term),
				PartialSum: new(big.Float).Set(sum),
			}
		}
		term.Mul(term, d.SetInt64(k-1))
		term.Quo(term, d.SetInt64(k*k))
		term.Mul(term, xw)
		sum.Add(sum, term)
		if d.Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	g, err := bigmath.EulerGamma(ar.New())
	if err != nil {
		return fmt.Errorf("ei: %w", err)
	}
	z.Add(sum, g)
	return nil
}

// eiAsympt evaluates Ei(x) for |x| beyond the regime threshold with the
// asymptotic expansion
//
//	Ei(x) ≈ e^x/x · Σ_{k≥0} k!/xᵏ
//
// The expansion diverges for every x, but past the threshold its smallest
// term is below the rounding target and summation stops there. On a
// direct call inside the divergent range the terms never meet the bound,
// and the iteration ceiling turns the runaway growth into a
// *bigmath.ConvergenceError.
func eiAsympt(z, x *big.Float, wp, prec uint) error {
	ar := bigmath.NewArena(wp)
	defer ar.Release()
	var (
		xw   = ar.NewFloat(x)
		r    = ar.New().Quo(one, xw)
		term = ar.NewInt64(1)
		sum  = ar.NewInt64(1)
		d    = ar.New()
		eps  = ar.New().SetMantExp(one, -int(prec+1))
	)
	for k := int64(1); ; k++ {
		if k > bigmath.MaxIterations {
			return &bigmath.ConvergenceError{
				Op:         "ei: asymptotic series",
				Prec:       wp,
				Terms:      bigmath.MaxIterations,
				LastTerm:   new(big.Float).Set(term),
				PartialSum: new(big.Float).Set(sum),
			}
		}
		term.Mul(term, d.SetInt64(k))
		term.Mul(term, r)
		sum.Add(sum, term)

		// The sum's leading term is 1, so the absolute bound is also a
		// relative one.
		if d.Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	sum.Mul(sum, bigmath.Exp(ar.New(), xw))
	sum.Mul(sum, r)
	z.Set(sum)
	return nil
}
