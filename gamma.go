// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfun

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/db47h/specfun/bigmath"
)

// IncGamma sets z to the rounded value of the upper incomplete Gamma
// function
//
//	Γ(a, x) = ∫ₓ^∞ t^(a−1)·e^(−t) dt
//
// for an integer or half-integer parameter a, and returns z. If z's
// precision is 0, it is set to x's precision before the operation.
//
// x must be a finite value > 0; otherwise IncGamma returns a
// *DomainError. For integer a ≤ −1 the reduction to positive parameters
// is not implemented and IncGamma returns an *UnimplementedError. Γ(0, x)
// is evaluated as −Ei(−x). A *bigmath.ConvergenceError is returned when
// an underlying series fails to converge within bigmath.MaxIterations
// terms. In every error case the value of z is unchanged.
func IncGamma(z *big.Float, a Param, x *big.Float) (*big.Float, error) {
	if err := checkPos("incomplete gamma", x); err != nil {
		return z, err
	}
	prec := resultPrec(z, x)
	if z.Prec() == 0 {
		z.SetPrec(prec)
	}
	switch {
	case a.half:
		return gammaHalf(z, prec, a.n, x)
	case a.n > 0:
		return gammaInt(z, prec, a.n, x)
	case a.n == 0:
		return gammaZero(z, prec, x)
	default:
		return z, &UnimplementedError{A: a}
	}
}

// gammaInt evaluates Γ(n, x) for n ≥ 1 with the closed form
//
//	Γ(n, x) = (n−1)!·e^(−x)·Σ_{j=0}^{n−1} xʲ/j!
//
// All terms are positive, so the working precision only needs to cover
// the rounding drift of the 3(n−1) operations building the sum and the
// factorial.
func gammaInt(z *big.Float, prec uint, n int, x *big.Float) (*big.Float, error) {
	ar := bigmath.NewArena(prec + 20 + uint(bits.Len(uint(n))))
	defer ar.Release()
	var (
		xw   = ar.NewFloat(x)
		term = ar.NewInt64(1) // xʲ/j!
		sum  = ar.NewInt64(1)
		fact = ar.NewInt64(1) // (n−1)!
		j    = ar.New()
	)
	for k := 1; k < n; k++ {
		j.SetInt64(int64(k))
		term.Mul(term, xw)
		term.Quo(term, j)
		sum.Add(sum, term)
		fact.Mul(fact, j)
	}
	sum.Mul(sum, fact)
	sum.Mul(sum, bigmath.Exp(ar.New(), j.Neg(xw)))
	z.Set(sum)
	return z, nil
}

// gammaZero evaluates Γ(0, x) = −Ei(−x) for x > 0.
func gammaZero(z *big.Float, prec uint, x *big.Float) (*big.Float, error) {
	ar := bigmath.NewArena(x.Prec())
	defer ar.Release()
	if err := ei(z, ar.New().Neg(x), prec); err != nil {
		return z, fmt.Errorf("incomplete gamma: %w", err)
	}
	z.Neg(z)
	return z, nil
}
