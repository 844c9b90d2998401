package bigmath

import (
	"math/big"
	"sync"
)

var piCache struct {
	sync.Mutex
	v *big.Float
}

// Pi sets z to the rounded value of π, and returns z. If z's precision is
// 0, it is set to DefaultPrec before the operation.
func Pi(z *big.Float) *big.Float {
	p := z.Prec()
	if p == 0 {
		p = DefaultPrec
		z.SetPrec(p)
	}
	return z.Set(pi(p))
}

// pi returns π to at least prec bits. The returned value is shared: it
// must be treated as read-only. The cache only grows; a request at a
// precision not exceeding an earlier one reuses the cached value, and a
// finer request replaces it with a freshly computed one.
func pi(prec uint) *big.Float {
	piCache.Lock()
	defer piCache.Unlock()
	if piCache.v == nil || piCache.v.Prec() < prec {
		piCache.v = gaussLegendre(prec)
	}
	return piCache.v
}

// gaussLegendre computes π to prec bits with the Gauss-Legendre algorithm.
// The arithmetic-geometric mean iteration doubles the number of correct
// digits each round, so the loop runs O(log prec) times.
func gaussLegendre(prec uint) *big.Float {
	// A couple of guard bits is not enough: there are specific precisions
	// for which the last bit then comes out wrong. A whole word of
	// headroom makes the iteration target safely finer than the rounding
	// target.
	pp := prec + 64
	ar := NewArena(pp)
	defer ar.Release()
	var (
		a       = ar.NewInt64(1)
		u       = ar.New().Sqrt(two)
		b       = ar.New().Quo(one, u)
		t       = ar.NewFloat(quarter)
		p       = ar.NewInt64(1)
		s       = ar.New()
		epsilon = ar.New().SetMantExp(one, -int(pp))
	)

	for {
		u.Set(a)                 // a_n
		a.Mul(s.Add(a, b), half) // a_n+1
		b.Sqrt(s.Mul(u, b))      // b_n+1

		// t = t - p×(a_n - a_n+1)^2, shuffling temporaries so that no
		// operand is also a target.
		t.Set(u.Sub(t, s.Mul(u.Mul(s.Sub(u, a), s), p)))

		if s.Abs(s.Sub(a, b)).Cmp(epsilon) <= 0 {
			break
		}
		p.Set(s.Mul(p, two))
	}
	s.Add(a, b)
	a.Mul(s, s)
	t.Mul(t, four)
	return new(big.Float).SetPrec(prec).Quo(a, t)
}
