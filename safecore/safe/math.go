package safe

import (
	"fmt"

	"github.com/LerianStudio/lib-safecore/safecore/contract"
)

// AddCause reports why a + b is not representable in T, or CauseNone.
func AddCause[T Integer](a, b T) contract.Cause {
	if !IsSigned[T]() {
		if MaxOf[T]()-a < b {
			return contract.CauseUnsignedWrap
		}

		return contract.CauseNone
	}

	if (b > 0 && a > MaxOf[T]()-b) || (b < 0 && a < MinOf[T]()-b) {
		return contract.CauseSignedOverflow
	}

	return contract.CauseNone
}

// SubCause reports why a - b is not representable in T, or CauseNone.
func SubCause[T Integer](a, b T) contract.Cause {
	if !IsSigned[T]() {
		if a < b {
			return contract.CauseUnsignedWrap
		}

		return contract.CauseNone
	}

	if (b > 0 && a < MinOf[T]()+b) || (b < 0 && a > MaxOf[T]()+b) {
		return contract.CauseSignedOverflow
	}

	return contract.CauseNone
}

// MulCause reports why a * b is not representable in T, or CauseNone.
func MulCause[T Integer](a, b T) contract.Cause {
	if a == 0 || b == 0 {
		return contract.CauseNone
	}

	hi, lo := MaxOf[T](), MinOf[T]()

	if !IsSigned[T]() {
		if a > hi/b {
			return contract.CauseUnsignedWrap
		}

		return contract.CauseNone
	}

	var overflow bool

	switch {
	case a > 0 && b > 0:
		overflow = a > hi/b
	case a > 0:
		overflow = b < lo/a
	case b > 0:
		overflow = a < lo/b
	default:
		overflow = b < hi/a
	}

	if overflow {
		return contract.CauseSignedOverflow
	}

	return contract.CauseNone
}

// DivCause reports why a / b or a % b is undefined in T, or CauseNone.
func DivCause[T Integer](a, b T) contract.Cause {
	if b == 0 {
		return contract.CauseDivisionByZero
	}

	// ^T(0) is -1 for signed T.
	if IsSigned[T]() && a == MinOf[T]() && b == ^T(0) {
		return contract.CauseMinOverflow
	}

	return contract.CauseNone
}

// NegCause reports why -a is not representable in T, or CauseNone.
func NegCause[T Integer](a T) contract.Cause {
	if IsSigned[T]() {
		if a == MinOf[T]() {
			return contract.CauseSignedOverflow
		}

		return contract.CauseNone
	}

	if a != 0 {
		return contract.CauseUnsignedWrap
	}

	return contract.CauseNone
}

func opError[T Integer](a T, op string, b T, cause contract.Cause) error {
	return fmt.Errorf("%d %s %d: %w", a, op, b, cause.Err())
}

// Add returns a + b, or an error wrapping the cause sentinel when the sum
// does not fit T.
//
// Example:
//
//	total, err := safe.Add(balance, credit)
//	if errors.Is(err, contract.ErrSignedOverflow) {
//	    return fmt.Errorf("post credit: %w", err)
//	}
func Add[T Integer](a, b T) (T, error) {
	if cause := AddCause(a, b); cause != contract.CauseNone {
		return 0, opError(a, "+", b, cause)
	}

	return a + b, nil
}

// Sub returns a - b, or an error wrapping the cause sentinel.
func Sub[T Integer](a, b T) (T, error) {
	if cause := SubCause(a, b); cause != contract.CauseNone {
		return 0, opError(a, "-", b, cause)
	}

	return a - b, nil
}

// Mul returns a * b, or an error wrapping the cause sentinel.
func Mul[T Integer](a, b T) (T, error) {
	if cause := MulCause(a, b); cause != contract.CauseNone {
		return 0, opError(a, "*", b, cause)
	}

	return a * b, nil
}

// Div returns a / b. Division by zero returns contract.ErrDivisionByZero
// and the signed minimum divided by -1 returns contract.ErrMinOverflow.
func Div[T Integer](a, b T) (T, error) {
	if cause := DivCause(a, b); cause != contract.CauseNone {
		return 0, opError(a, "/", b, cause)
	}

	return a / b, nil
}

// Mod returns a % b with the same failure rules as Div.
func Mod[T Integer](a, b T) (T, error) {
	if cause := DivCause(a, b); cause != contract.CauseNone {
		return 0, opError(a, "%", b, cause)
	}

	return a % b, nil
}
