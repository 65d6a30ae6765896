package contract

import (
	"errors"
	"fmt"
)

// Kind sentinels. errors.Is(err, ErrPreconditionViolation) matches any
// failed precondition regardless of tier or cause.
var (
	ErrPreconditionViolation  = errors.New("precondition violation")
	ErrPostconditionViolation = errors.New("postcondition violation")
	ErrAssertionViolation     = errors.New("assertion violation")
)

// Cause sentinels for numeric violations.
var (
	ErrSignedOverflow = errors.New("signed integer overflow")
	ErrUnsignedWrap   = errors.New("unsigned integer wrap")
	ErrNarrowing      = errors.New("narrowing conversion loses value")
	ErrDivisionByZero = errors.New("division by zero")
	ErrMinOverflow    = errors.New("signed minimum divided by -1")
)

// ErrAxiomNotAllowed is the panic value when an axiom-tier check reaches
// Enforce or Verify under strict safety compliance.
var ErrAxiomNotAllowed = errors.New("axiom checks are not allowed under strict safety compliance")

// ViolationInfo describes one failed check. It is built at the failing
// call site and passed by value to the handler.
type ViolationInfo struct {
	Location Location
	Message  string
	Kind     Kind
	Tier     Tier
	Cause    Cause
	// Operands holds the inputs of a failed numeric check, if any.
	Operands []Operand
}

// Check carries the static description of a check for Enforce and Verify.
type Check struct {
	Kind    Kind
	Tier    Tier
	Cause   Cause
	Message string
	// Location overrides call-site capture when set.
	Location Location
	// Operands are attached to the violation when the check fails.
	Operands []Operand
	// Skip counts frames above the function calling Enforce or Verify when
	// the location is captured from the stack.
	Skip int
}

func (chk Check) info() ViolationInfo {
	return ViolationInfo{
		Location: chk.Location,
		Message:  chk.Message,
		Kind:     chk.Kind,
		Tier:     chk.Tier,
		Cause:    chk.Cause,
		Operands: chk.Operands,
	}
}

// ViolationError is the typed error for a failed check. Strict builds
// panic with it; the checked family returns it.
type ViolationError struct {
	Info ViolationInfo
}

// Error returns "<kind> violation [<tier>] at <file:line>: <message>".
func (e *ViolationError) Error() string {
	if e == nil {
		return "contract violation"
	}

	msg := fmt.Sprintf("%s violation [%s] at %s", e.Info.Kind, e.Info.Tier, e.Info.Location)

	if e.Info.Message != "" {
		msg += ": " + e.Info.Message
	}

	return msg
}

// Unwrap exposes the kind sentinel and, for numeric violations, the cause sentinel.
func (e *ViolationError) Unwrap() []error {
	if e == nil {
		return nil
	}

	errs := make([]error, 0, 2)

	switch e.Info.Kind {
	case KindPrecondition:
		errs = append(errs, ErrPreconditionViolation)
	case KindPostcondition:
		errs = append(errs, ErrPostconditionViolation)
	case KindAssertion:
		errs = append(errs, ErrAssertionViolation)
	}

	if cause := e.Info.Cause.Err(); cause != nil {
		errs = append(errs, cause)
	}

	return errs
}

// Catch runs fn and returns the *ViolationError it panicked with, if any.
// It is how strict builds recover from a violation. Other panics propagate.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		var verr *ViolationError
		if e, ok := r.(error); ok && errors.As(e, &verr) {
			err = verr
			return
		}

		panic(r)
	}()

	fn()

	return nil
}
