package specfun

import "math/big"

// An UnimplementedError reports a parameter family the engine has no
// reduction for. The only such family is Γ(a, x) with integer a ≤ −1,
// whose recurrence to positive parameters is not carried.
type UnimplementedError struct {
	A Param // the rejected parameter
}

func (e *UnimplementedError) Error() string {
	return "specfun: incomplete gamma with a = " + e.A.String() +
		": negative integer parameters not implemented"
}

// A DomainError reports an argument outside the domain of an operation,
// such as a nonpositive x passed to the incomplete Gamma function.
type DomainError struct {
	Op   string // the rejecting operation, e.g. "incomplete gamma"
	Cond string // the violated precondition, e.g. "finite x > 0"
}

func (e *DomainError) Error() string {
	return "specfun: " + e.Op + ": argument outside domain: requires " + e.Cond
}

// checkPos returns a *DomainError unless x is a finite value > 0.
func checkPos(op string, x *big.Float) error {
	if x.Sign() <= 0 || x.IsInf() {
		return &DomainError{Op: op, Cond: "finite x > 0"}
	}
	return nil
}
