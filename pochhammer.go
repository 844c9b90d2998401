package specfun

import (
	"math/big"
	"math/bits"

	"github.com/db47h/specfun/bigmath"
)

// Pochhammer sets z to the rounded value of the rising factorial
//
//	(a)ₖ = a·(a+1)·⋯·(a+k−1)
//
// and returns z. (a)₀ = 1 for any a, including a = 0. If z's precision is
// 0, it is set to a's precision before the operation.
//
// k must be ≥ 0; otherwise Pochhammer returns a *DomainError and leaves z
// unchanged. When a is an exact nonpositive integer and k > |a|, the
// factors cross zero and the result is exactly zero.
func Pochhammer(z, a *big.Float, k int) (*big.Float, error) {
	if k < 0 {
		return z, &DomainError{Op: "pochhammer", Cond: "k >= 0"}
	}
	prec := resultPrec(z, a)
	if z.Prec() == 0 {
		z.SetPrec(prec)
	}
	ar := bigmath.NewArena(prec + 10 + uint(bits.Len(uint(k))))
	defer ar.Release()
	z.Set(pochhammer(ar, a, k))
	return z, nil
}

// pochhammer computes (a)ₖ at ar's precision by term-by-term
// multiplication. The k factors cost at most k half-ulps of drift, which
// the caller's guard bits must cover.
func pochhammer(ar *bigmath.Arena, a *big.Float, k int) *big.Float {
	r := ar.NewInt64(1)
	if k == 0 {
		return r
	}
	t := ar.NewFloat(a)
	r.Set(t)
	for j := 1; j < k; j++ {
		t.Add(t, one)
		r.Mul(r, t)
	}
	return r
}
