package bounded

import (
	"github.com/LerianStudio/lib-safecore/safecore/contract"
	"github.com/LerianStudio/lib-safecore/safecore/safe"
)

// ConvertTo returns x as an Int[U]. It applies the same range check as
// safe.Convert: a value that does not fit U fails an audit-tier
// precondition with cause narrowing.
//
// Example:
//
//	small := bounded.ConvertTo[int8](bounded.New[int64](42))
func ConvertTo[U, T safe.Integer](x Int[T]) Int[U] {
	if auditOn && !safe.Widens[T, U]() {
		contract.Default().Enforce(rangeCheck[U](x.v, contract.KindPrecondition, 1))
	}

	return Int[U]{v: U(x.v)}
}

// TryConvertTo is ConvertTo checked at every build level.
func TryConvertTo[U, T safe.Integer](x Int[T]) (Int[U], error) {
	if safe.Widens[T, U]() {
		return Int[U]{v: U(x.v)}, nil
	}

	if err := contract.Default().Verify(rangeCheck[U](x.v, contract.KindAssertion, 1)); err != nil {
		return Int[U]{}, err
	}

	return Int[U]{v: U(x.v)}, nil
}

// ConvertWith is ConvertTo under an explicit checker. A nil checker
// selects contract.Default.
func ConvertWith[U, T safe.Integer](c *contract.Checker, x Int[T]) Int[U] {
	if !safe.Widens[T, U]() {
		checkerOrDefault(c).Enforce(rangeCheck[U](x.v, contract.KindPrecondition, 1))
	}

	return Int[U]{v: U(x.v)}
}

func checkerOrDefault(c *contract.Checker) *contract.Checker {
	if c == nil {
		return contract.Default()
	}

	return c
}
