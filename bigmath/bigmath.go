// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigmath provides the multiprecision building blocks used by the
// incomplete Gamma and exponential integral engines: elementary functions
// over big.Float, the constants π and γ at arbitrary precision, the
// complementary error function, and a scratch-value arena backed by a
// shared pool.
//
// All functions follow the same conventions as the math/big package: the
// result is stored into a receiver-like first argument z, rounded to z's
// precision, and z is returned. If z's precision is 0, it is set to the
// precision of the input argument. Inputs are never modified.
//
// Functions that sum a series return an error of type *ConvergenceError
// when the series fails to meet its stopping criterion within
// MaxIterations terms. All other functions are total over their documented
// domains and return no error.
//
// The package is safe for concurrent use: distinct results and scratch
// values are independent, and the constant caches are guarded internally.
package bigmath

import (
	"math/big"
	"sync"
)

// MaxIterations bounds every series summation loop in this package and in
// the engines built on top of it. A loop that has not met its stopping
// criterion after MaxIterations terms fails with a *ConvergenceError
// rather than running unbounded.
const MaxIterations = 10000

// DefaultPrec is the precision given to a result whose receiver has
// precision 0 when there is no input argument to inherit a precision
// from. It matches the precision of a float64.
const DefaultPrec = 53

// mode is the rounding mode applied to every intermediate value created by
// this package. Final results are rounded according to the receiver's own
// mode when they are stored.
const mode = big.ToNearestEven

// Shared read-only operands. These are never mutated.
var (
	one     = big.NewFloat(1)
	two     = big.NewFloat(2)
	four    = big.NewFloat(4)
	half    = big.NewFloat(0.5)
	quarter = big.NewFloat(0.25)
)

var floatPool sync.Pool

// alloc returns a scratch value of precision prec, set to 0.
func alloc(prec uint) *big.Float {
	if v, ok := floatPool.Get().(*big.Float); ok {
		// SetPrec(0) discards the mantissa before the target precision is
		// applied, so recycling a high precision value costs nothing.
		return v.SetPrec(0).SetMode(mode).SetPrec(prec)
	}
	return new(big.Float).SetMode(mode).SetPrec(prec)
}

func free(v *big.Float) {
	floatPool.Put(v)
}

// resultPrec returns the precision that a result z should be computed to:
// z's own precision, or the precision of the input x if z has none.
func resultPrec(z, x *big.Float) uint {
	if p := z.Prec(); p != 0 {
		return p
	}
	return x.Prec()
}

// An Arena hands out scratch values at a fixed working precision and
// returns all of them to a shared pool in a single Release call. A routine
// that needs temporaries at some guarded precision allocates them from an
// arena and defers Release, so that every return path, including error
// paths, recycles its scratch state:
//
//	ar := bigmath.NewArena(prec + 20)
//	defer ar.Release()
//	sum := ar.New()
//
// Values handed out by an arena are owned by it: they must not be used
// after Release, and results must be copied into caller-owned values
// before the arena is released. An Arena must not be shared between
// goroutines.
type Arena struct {
	prec uint
	used []*big.Float
}

// NewArena returns an arena handing out values of precision prec.
func NewArena(prec uint) *Arena {
	return &Arena{prec: prec}
}

// Prec returns the precision of the values handed out by a.
func (a *Arena) Prec() uint { return a.prec }

// New returns a scratch value set to 0.
func (a *Arena) New() *big.Float {
	v := alloc(a.prec)
	a.used = append(a.used, v)
	return v
}

// NewInt64 returns a scratch value set to x.
func (a *Arena) NewInt64(x int64) *big.Float {
	return a.New().SetInt64(x)
}

// NewFloat returns a scratch value set to x, rounded to the arena's
// precision if x is more precise.
func (a *Arena) NewFloat(x *big.Float) *big.Float {
	return a.New().Set(x)
}

// Release returns every value handed out by a to the shared pool. The
// arena remains usable afterwards.
func (a *Arena) Release() {
	for i, v := range a.used {
		free(v)
		a.used[i] = nil
	}
	a.used = a.used[:0]
}
