// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package specfun implements the upper incomplete Gamma function and the
exponential integral at arbitrary precision.

The implementation is built on big.Float and follows the math/big calling
conventions: operations store their result into a receiver-like first
argument z, rounded to z's precision and rounding mode, and return z. If
z's precision is 0, it is set to the precision of the numeric input before
the operation. Inputs are never modified.

The incomplete Gamma function

	Γ(a, x) = ∫ₓ^∞ t^(a−1)·e^(−t) dt

is evaluated by IncGamma for parameters a that are integers or
half-integers, selected by a Param value:

	z := new(big.Float).SetPrec(256)
	g, err := specfun.IncGamma(z, specfun.HalfInteger(2), x) // Γ(5/2, x)

Each parameter family reduces to a finite closed form: a plain series and
factorial for positive integers, −Ei(−x) for a = 0, and for half-integers
a recurrence away from Γ(½, x) = √π·erfc(√x) whose boundary terms collapse
into Pochhammer coefficients. Negative integer parameters have no such
reduction here and are reported as unimplemented.

The exponential integral

	Ei(x) = −∫_{−x}^∞ e^(−t)/t dt

is evaluated by Ei over both signs of x as a principal value, switching
between the Maclaurin series and the asymptotic expansion Σ k!/xᵏ as |x|
crosses the threshold where the expansion's smallest term drops below the
rounding target.

Internally every evaluation carries guard bits on top of the requested
precision, sized to the cancellation of the chosen formula, and rounds
once into z at the end. The multiprecision primitives behind the engines,
among which erfc, π, γ and the elementary functions, live in the bigmath
subpackage.

Arguments outside an operation's domain are reported as *DomainError, the
negative integer parameter family as *UnimplementedError, and series that
fail to meet their stopping criterion within bigmath.MaxIterations terms
as *bigmath.ConvergenceError.

All functions are safe for concurrent use as long as the usual aliasing
rule is observed: distinct results may be computed concurrently, sharing
inputs, but a value being written must not be read by another goroutine.
*/
package specfun
