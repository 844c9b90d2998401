package specfun

import "math/big"

// Shared read-only operands. These are never mutated.
var (
	one  = big.NewFloat(1)
	half = big.NewFloat(0.5)
)

// resultPrec returns the precision that a result z should be rounded to:
// z's own precision, or the precision of the input x if z has none.
func resultPrec(z, x *big.Float) uint {
	if p := z.Prec(); p != 0 {
		return p
	}
	return x.Prec()
}
