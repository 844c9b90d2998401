package bigmath

import (
	"math"
	"math/big"
	"sync"
)

var eulerCache struct {
	sync.Mutex
	v *big.Float
}

// EulerGamma sets z to the rounded value of the Euler-Mascheroni constant
// γ, and returns z. If z's precision is 0, it is set to DefaultPrec before
// the operation.
//
// γ is computed with the Brent-McMillan algorithm. Its summation loop is
// bounded by MaxIterations, which is reached at precisions past roughly
// ten thousand bits; EulerGamma then returns a *ConvergenceError.
func EulerGamma(z *big.Float) (*big.Float, error) {
	p := z.Prec()
	if p == 0 {
		p = DefaultPrec
		z.SetPrec(p)
	}
	g, err := eulerGamma(p)
	if err != nil {
		return z, err
	}
	return z.Set(g), nil
}

// eulerGamma returns γ to at least prec bits. The returned value is shared
// and read-only, with the same grow-only cache contract as pi.
func eulerGamma(prec uint) (*big.Float, error) {
	eulerCache.Lock()
	defer eulerCache.Unlock()
	if eulerCache.v == nil || eulerCache.v.Prec() < prec {
		v, err := brentMcMillan(prec)
		if err != nil {
			return nil, err
		}
		eulerCache.v = v
	}
	return eulerCache.v, nil
}

// brentMcMillan computes γ to prec bits as S(n)/I(n) - ln n, where
//
//	I(n) = Σ (nᵏ/k!)²        the modified Bessel function I₀(2n)
//	S(n) = Σ Hₖ·(nᵏ/k!)²     Hₖ the k-th harmonic number
//
// and n is chosen so that the method's error term O(e^{-4n}) stays below
// the rounding target. Every term is positive, so the sums carry no
// cancellation, and successive terms follow from first order recurrences.
func brentMcMillan(prec uint) (*big.Float, error) {
	wp := prec + 32
	n := uint64(math.Ceil(float64(prec+8)*math.Ln2/4)) + 1

	ar := NewArena(wp)
	defer ar.Release()
	var (
		nn = ar.New().SetUint64(n * n)
		a  = ar.NewInt64(1) // (nᵏ/k!)²
		b  = ar.New()       // Hₖ·(nᵏ/k!)²
		i  = ar.NewInt64(1) // I(n) accumulator
		s  = ar.New()       // S(n) accumulator
		t  = ar.New()
		u  = ar.New()
	)

	for k := uint64(1); ; k++ {
		if k > MaxIterations {
			return nil, nonConvergence("euler-mascheroni: bessel series", wp, MaxIterations, a, i)
		}
		t.SetUint64(k * k)
		a.Mul(a, nn)
		a.Quo(a, t)
		b.Mul(b, nn)
		b.Quo(b, t)
		b.Add(b, u.Quo(a, t.SetUint64(k)))
		i.Add(i, a)
		s.Add(s, b)

		// The sums are done once aₖ clears the accumulated I(n) by more
		// than the working precision.
		if a.MantExp(nil) < i.MantExp(nil)-int(wp)-4 {
			break
		}
	}

	s.Quo(s, i)
	s.Sub(s, Log(t, u.SetUint64(n)))
	return new(big.Float).SetPrec(prec).Set(s), nil
}
