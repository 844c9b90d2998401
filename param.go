package specfun

import (
	"math/big"
	"strconv"
)

// A Param selects the parameter a of the incomplete Gamma function
// Γ(a, x). The engine implements two families: plain integers a = n and
// half-integers a = n + 1/2, with n of either sign in both. The zero value
// is Integer(0).
//
// Params are immutable values and can be compared with ==.
type Param struct {
	n    int
	half bool
}

// Integer returns the parameter a = n.
func Integer(n int) Param { return Param{n: n} }

// HalfInteger returns the parameter a = n + 1/2.
func HalfInteger(n int) Param { return Param{n: n, half: true} }

// N returns the integer part selector n: the parameter is n for the
// integer family and n + 1/2 for the half-integer family.
func (a Param) N() int { return a.n }

// IsHalf reports whether a belongs to the half-integer family.
func (a Param) IsHalf() bool { return a.half }

// Succ returns the parameter a + 1. It stays within a's family.
func (a Param) Succ() Param { return Param{n: a.n + 1, half: a.half} }

// Value returns a as a big.Float of precision prec. The result is exact
// as long as prec is at least the bit length of 2n+1.
func (a Param) Value(prec uint) *big.Float {
	v := new(big.Float).SetPrec(prec).SetInt64(int64(a.n))
	if a.half {
		v.Add(v, half)
	}
	return v
}

// String returns a in decimal notation, half-integers as halves: the
// parameter 2 + 1/2 formats as "5/2", −2 + 1/2 as "-3/2".
func (a Param) String() string {
	if !a.half {
		return strconv.Itoa(a.n)
	}
	return strconv.Itoa(2*a.n+1) + "/2"
}
