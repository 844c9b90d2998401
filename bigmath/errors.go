// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"fmt"
	"math/big"
)

// A ConvergenceError reports a series summation that failed to meet its
// stopping criterion within MaxIterations terms. It carries a snapshot of
// the loop state at the point of failure so that callers can tell a
// genuinely divergent evaluation from one that merely needs a different
// regime or more headroom.
type ConvergenceError struct {
	Op         string     // the failing operation, e.g. "erfc: series"
	Prec       uint       // working precision of the summation, in bits
	Terms      int        // number of terms summed
	LastTerm   *big.Float // the last term added
	PartialSum *big.Float // the accumulated sum
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("bigmath: %s did not converge after %d terms at %d bits (last term %g)",
		e.Op, e.Terms, e.Prec, e.LastTerm)
}

// nonConvergence builds a *ConvergenceError, snapshotting term and sum so
// that the error remains valid after the arena that owns them is released.
func nonConvergence(op string, prec uint, terms int, term, sum *big.Float) error {
	return &ConvergenceError{
		Op:         op,
		Prec:       prec,
		Terms:      terms,
		LastTerm:   new(big.Float).Set(term),
		PartialSum: new(big.Float).Set(sum),
	}
}
