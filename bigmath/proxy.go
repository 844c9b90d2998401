package bigmath

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Exp sets z to the rounded value of e**x, and returns z.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and rounding
// mode; the evaluation itself is carried out with 16 guard bits, so the
// stored result is off by no more than a unit or two in the last place.
//
// This function is a proxy for bigfloat.Exp.
func Exp(z, x *big.Float) *big.Float {
	p := resultPrec(z, x)
	t := alloc(p + 16).Set(x)
	r := bigfloat.Exp(t)
	free(t)
	if z.Prec() == 0 {
		z.SetPrec(p)
	}
	return z.Set(r)
}

// Log sets z to the rounded value of the natural logarithm of x, and
// returns z. Precision handling and accuracy are as for Exp.
//
// The function panics if x < 0. The value of z is undefined in that case.
//
// This function is a proxy for bigfloat.Log.
func Log(z, x *big.Float) *big.Float {
	p := resultPrec(z, x)
	t := alloc(p + 16).Set(x)
	r := bigfloat.Log(t)
	free(t)
	if z.Prec() == 0 {
		z.SetPrec(p)
	}
	return z.Set(r)
}

// Pow sets z to the rounded value of x**y, and returns z. If z's precision
// is 0, it is changed to x's precision before the operation. Precision
// handling and accuracy are otherwise as for Exp.
//
// The function panics if x < 0. The value of z is undefined in that case.
//
// This function is a proxy for bigfloat.Pow.
func Pow(z, x, y *big.Float) *big.Float {
	p := resultPrec(z, x)
	t := alloc(p + 16).Set(x)
	u := alloc(p + 16).Set(y)
	r := bigfloat.Pow(t, u)
	free(u)
	free(t)
	if z.Prec() == 0 {
		z.SetPrec(p)
	}
	return z.Set(r)
}
