package safe

import "github.com/LerianStudio/lib-safecore/safecore/contract"

// auditOn gates the package-level conversions. It is a constant, so a
// binary built without contracts_audit compiles them down to casts.
const auditOn = contract.ActiveLevel == contract.LevelAudit

const msgNarrowing = "conversion does not preserve the value"

func narrowing(kind contract.Kind, tier contract.Tier) contract.Check {
	// Skip 1: the exported conversion calling Enforce or Verify.
	return contract.Check{Kind: kind, Tier: tier, Cause: contract.CauseNarrowing, Message: msgNarrowing, Skip: 1}
}

// rangeCheck reports whether v fits T and builds the narrowing check,
// carrying v as an operand only when it does not.
func rangeCheck[T, F Integer](v F, kind contract.Kind, tier contract.Tier) (bool, contract.Check) {
	ok := InRange[T](v)
	chk := narrowing(kind, tier)

	if !ok {
		chk.Operands = []contract.Operand{Operand("value", v)}
	}

	return ok, chk
}

func checker(c *contract.Checker) *contract.Checker {
	if c == nil {
		return contract.Default()
	}

	return c
}

// Convert returns v as a T. When v is not representable in T an audit-tier
// precondition fails at the caller. Conversions where F's range fits inside
// T's carry no check.
//
// Example:
//
//	n := safe.Convert[int32](length) // length is an int64
func Convert[T, F Integer](v F) T {
	if auditOn && !Widens[F, T]() {
		contract.Default().Enforce(rangeCheck[T](v, contract.KindPrecondition, contract.TierAudit))
	}

	return T(v)
}

// Narrow is Convert for conversions the caller knows may lose range. The
// range check runs whenever the audit tier is active.
func Narrow[T, F Integer](v F) T {
	if auditOn {
		contract.Default().Enforce(rangeCheck[T](v, contract.KindPrecondition, contract.TierAudit))
	}

	return T(v)
}

// Expand is Convert for conversions the caller expects to widen. Provable
// widenings are plain casts; anything else is checked like Convert.
func Expand[T, F Integer](v F) T {
	if Widens[F, T]() {
		return T(v)
	}

	if auditOn {
		contract.Default().Enforce(rangeCheck[T](v, contract.KindPrecondition, contract.TierAudit))
	}

	return T(v)
}

// ConvertWith is Convert under an explicit checker. A nil checker selects
// contract.Default. The tier gate is read from c at run time.
func ConvertWith[T, F Integer](c *contract.Checker, v F) T {
	if !Widens[F, T]() {
		checker(c).Enforce(rangeCheck[T](v, contract.KindPrecondition, contract.TierAudit))
	}

	return T(v)
}

// NarrowWith is Narrow under an explicit checker.
func NarrowWith[T, F Integer](c *contract.Checker, v F) T {
	checker(c).Enforce(rangeCheck[T](v, contract.KindPrecondition, contract.TierAudit))

	return T(v)
}

// ExpandWith is Expand under an explicit checker.
func ExpandWith[T, F Integer](c *contract.Checker, v F) T {
	if Widens[F, T]() {
		return T(v)
	}

	checker(c).Enforce(rangeCheck[T](v, contract.KindPrecondition, contract.TierAudit))

	return T(v)
}

// Checked converts v at every build level. A value that does not fit is
// reported as an assertion violation and returned as *contract.ViolationError
// wrapping contract.ErrNarrowing; the handler is not called.
//
// Example:
//
//	port, err := safe.Checked[uint16](raw)
//	if err != nil {
//	    return fmt.Errorf("parse port: %w", err)
//	}
func Checked[T, F Integer](v F) (T, error) {
	if Widens[F, T]() {
		return T(v), nil
	}

	if err := contract.Default().Verify(rangeCheck[T](v, contract.KindAssertion, contract.TierDefault)); err != nil {
		return 0, err
	}

	return T(v), nil
}

// CheckedWith is Checked reporting through an explicit checker.
func CheckedWith[T, F Integer](c *contract.Checker, v F) (T, error) {
	if Widens[F, T]() {
		return T(v), nil
	}

	if err := checker(c).Verify(rangeCheck[T](v, contract.KindAssertion, contract.TierDefault)); err != nil {
		return 0, err
	}

	return T(v), nil
}
