package bounded

import (
	"github.com/LerianStudio/lib-safecore/safecore/contract"
	"github.com/LerianStudio/lib-safecore/safecore/safe"
)

// verify reports cause through c.Verify with the location of the caller of
// the exported Try function.
func verify[T safe.Integer](c *contract.Checker, cause contract.Cause, msg string, operands ...T) error {
	return c.Verify(cause == contract.CauseNone, operation(cause, msg, 2, operands))
}

// TryAdd returns x + y, or a *contract.ViolationError at any build level.
//
// Example:
//
//	total, err := bounded.TryAdd(balance, credit)
//	if errors.Is(err, contract.ErrSignedOverflow) {
//	    return fmt.Errorf("post credit: %w", err)
//	}
func TryAdd[T safe.Integer](x, y Int[T]) (Int[T], error) {
	if err := verify(contract.Default(), safe.AddCause(x.v, y.v), msgAdd, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v + y.v}, nil
}

// TrySub returns x - y, or the violation.
func TrySub[T safe.Integer](x, y Int[T]) (Int[T], error) {
	if err := verify(contract.Default(), safe.SubCause(x.v, y.v), msgSub, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v - y.v}, nil
}

// TryMul returns x * y, or the violation.
func TryMul[T safe.Integer](x, y Int[T]) (Int[T], error) {
	if err := verify(contract.Default(), safe.MulCause(x.v, y.v), msgMul, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v * y.v}, nil
}

// TryDiv returns x / y, or the violation. It never panics.
func TryDiv[T safe.Integer](x, y Int[T]) (Int[T], error) {
	if err := verify(contract.Default(), safe.DivCause(x.v, y.v), msgDiv, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v / y.v}, nil
}

// TryMod returns x % y, or the violation. It never panics.
func TryMod[T safe.Integer](x, y Int[T]) (Int[T], error) {
	if err := verify(contract.Default(), safe.DivCause(x.v, y.v), msgMod, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v % y.v}, nil
}
