package bounded

import (
	"github.com/LerianStudio/lib-safecore/safecore/contract"
	"github.com/LerianStudio/lib-safecore/safecore/safe"
)

const (
	msgAdd = "addition result out of range"
	msgSub = "subtraction result out of range"
	msgMul = "multiplication result out of range"
	msgDiv = "division undefined for operands"
	msgMod = "remainder undefined for operands"
	msgNeg = "negation result out of range"

	msgNarrowing = "conversion does not preserve the value"
)

// operation builds the check for an arithmetic cause. A single operand is
// named value, a pair lhs and rhs. Operands are attached only on failure.
func operation[T safe.Integer](cause contract.Cause, msg string, skip int, operands []T) contract.Check {
	chk := contract.Check{
		Kind:    contract.KindAssertion,
		Tier:    contract.TierAudit,
		Cause:   cause,
		Message: msg,
		Skip:    skip,
	}

	if cause == contract.CauseNone {
		return chk
	}

	switch len(operands) {
	case 1:
		chk.Operands = []contract.Operand{safe.Operand("value", operands[0])}
	case 2:
		chk.Operands = []contract.Operand{safe.Operand("lhs", operands[0]), safe.Operand("rhs", operands[1])}
	}

	return chk
}

// rangeCheck reports whether v fits U and builds the narrowing check with
// the given kind, carrying v only when it does not fit.
func rangeCheck[U, T safe.Integer](v T, kind contract.Kind, skip int) (bool, contract.Check) {
	ok := safe.InRange[U](v)
	chk := contract.Check{
		Kind:    kind,
		Tier:    contract.TierAudit,
		Cause:   contract.CauseNarrowing,
		Message: msgNarrowing,
		Skip:    skip,
	}

	if !ok {
		chk.Operands = []contract.Operand{safe.Operand("value", v)}
	}

	return ok, chk
}

// enforce raises the audit-tier assertion for an arithmetic cause. The
// location is that of the caller of the exported operation.
func enforce[T safe.Integer](c *contract.Checker, cause contract.Cause, msg string, operands ...T) {
	c.Enforce(cause == contract.CauseNone, operation(cause, msg, 2, operands))
}

// Add returns x + y.
func (x Int[T]) Add(y Int[T]) Int[T] {
	if auditOn {
		enforce(contract.Default(), safe.AddCause(x.v, y.v), msgAdd, x.v, y.v)
	}

	return Int[T]{v: x.v + y.v}
}

// Sub returns x - y.
func (x Int[T]) Sub(y Int[T]) Int[T] {
	if auditOn {
		enforce(contract.Default(), safe.SubCause(x.v, y.v), msgSub, x.v, y.v)
	}

	return Int[T]{v: x.v - y.v}
}

// Mul returns x * y.
func (x Int[T]) Mul(y Int[T]) Int[T] {
	if auditOn {
		enforce(contract.Default(), safe.MulCause(x.v, y.v), msgMul, x.v, y.v)
	}

	return Int[T]{v: x.v * y.v}
}

// Div returns x / y truncated toward zero. If a failed check returns, a
// zero divisor still panics in the Go runtime.
func (x Int[T]) Div(y Int[T]) Int[T] {
	if auditOn {
		enforce(contract.Default(), safe.DivCause(x.v, y.v), msgDiv, x.v, y.v)
	}

	return Int[T]{v: x.v / y.v}
}

// Mod returns x % y, with the sign of x.
func (x Int[T]) Mod(y Int[T]) Int[T] {
	if auditOn {
		enforce(contract.Default(), safe.DivCause(x.v, y.v), msgMod, x.v, y.v)
	}

	return Int[T]{v: x.v % y.v}
}

// Inc returns x + 1.
func (x Int[T]) Inc() Int[T] {
	if auditOn {
		enforce(contract.Default(), safe.AddCause(x.v, 1), msgAdd, x.v)
	}

	return Int[T]{v: x.v + 1}
}

// Dec returns x - 1.
func (x Int[T]) Dec() Int[T] {
	if auditOn {
		enforce(contract.Default(), safe.SubCause(x.v, 1), msgSub, x.v)
	}

	return Int[T]{v: x.v - 1}
}

// Neg returns -x. Negating the signed minimum or any non-zero unsigned
// value fails.
func (x Int[T]) Neg() Int[T] {
	if auditOn {
		enforce(contract.Default(), safe.NegCause(x.v), msgNeg, x.v)
	}

	return Int[T]{v: -x.v}
}
