package bounded

import (
	"github.com/LerianStudio/lib-safecore/safecore/contract"
	"github.com/LerianStudio/lib-safecore/safecore/safe"
)

// Ops runs Int operations under an explicit checker instead of the
// process-wide one. The tier gate is read from the checker on every call.
//
//	ops := bounded.Using[int32](checker)
//	sum := ops.Add(a, b)
type Ops[T safe.Integer] struct {
	c *contract.Checker
}

// Using returns Ops bound to c. A nil checker selects contract.Default.
func Using[T safe.Integer](c *contract.Checker) Ops[T] {
	return Ops[T]{c: checkerOrDefault(c)}
}

// Checker returns the checker the operations report through.
func (o Ops[T]) Checker() *contract.Checker {
	return o.checker()
}

func (o Ops[T]) checker() *contract.Checker {
	return checkerOrDefault(o.c)
}

func (o Ops[T]) Add(x, y Int[T]) Int[T] {
	enforce(o.checker(), safe.AddCause(x.v, y.v), msgAdd, x.v, y.v)

	return Int[T]{v: x.v + y.v}
}

func (o Ops[T]) Sub(x, y Int[T]) Int[T] {
	enforce(o.checker(), safe.SubCause(x.v, y.v), msgSub, x.v, y.v)

	return Int[T]{v: x.v - y.v}
}

func (o Ops[T]) Mul(x, y Int[T]) Int[T] {
	enforce(o.checker(), safe.MulCause(x.v, y.v), msgMul, x.v, y.v)

	return Int[T]{v: x.v * y.v}
}

func (o Ops[T]) Div(x, y Int[T]) Int[T] {
	enforce(o.checker(), safe.DivCause(x.v, y.v), msgDiv, x.v, y.v)

	return Int[T]{v: x.v / y.v}
}

func (o Ops[T]) Mod(x, y Int[T]) Int[T] {
	enforce(o.checker(), safe.DivCause(x.v, y.v), msgMod, x.v, y.v)

	return Int[T]{v: x.v % y.v}
}

func (o Ops[T]) Inc(x Int[T]) Int[T] {
	enforce(o.checker(), safe.AddCause(x.v, 1), msgAdd, x.v)

	return Int[T]{v: x.v + 1}
}

func (o Ops[T]) Dec(x Int[T]) Int[T] {
	enforce(o.checker(), safe.SubCause(x.v, 1), msgSub, x.v)

	return Int[T]{v: x.v - 1}
}

func (o Ops[T]) Neg(x Int[T]) Int[T] {
	enforce(o.checker(), safe.NegCause(x.v), msgNeg, x.v)

	return Int[T]{v: -x.v}
}

// TryAdd is the package-level TryAdd reporting through the bound checker.
func (o Ops[T]) TryAdd(x, y Int[T]) (Int[T], error) {
	if err := verify(o.checker(), safe.AddCause(x.v, y.v), msgAdd, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v + y.v}, nil
}

func (o Ops[T]) TrySub(x, y Int[T]) (Int[T], error) {
	if err := verify(o.checker(), safe.SubCause(x.v, y.v), msgSub, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v - y.v}, nil
}

func (o Ops[T]) TryMul(x, y Int[T]) (Int[T], error) {
	if err := verify(o.checker(), safe.MulCause(x.v, y.v), msgMul, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v * y.v}, nil
}

func (o Ops[T]) TryDiv(x, y Int[T]) (Int[T], error) {
	if err := verify(o.checker(), safe.DivCause(x.v, y.v), msgDiv, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v / y.v}, nil
}

func (o Ops[T]) TryMod(x, y Int[T]) (Int[T], error) {
	if err := verify(o.checker(), safe.DivCause(x.v, y.v), msgMod, x.v, y.v); err != nil {
		return Int[T]{}, err
	}

	return Int[T]{v: x.v % y.v}, nil
}
