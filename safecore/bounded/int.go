package bounded

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-safecore/safecore/contract"
	"github.com/LerianStudio/lib-safecore/safecore/safe"
)

// auditOn gates every package-level check in this package.
const auditOn = contract.ActiveLevel == contract.LevelAudit

// Int is an integer of type T with checked arithmetic. The zero value is 0.
type Int[T safe.Integer] struct {
	v T
}

// New wraps v.
func New[T safe.Integer](v T) Int[T] {
	return Int[T]{v: v}
}

// From converts v to an Int[T]. A value that does not fit T fails an
// audit-tier precondition with cause narrowing.
//
// Example:
//
//	qty := bounded.From[uint16](len(items))
func From[T, F safe.Integer](v F) Int[T] {
	if auditOn && !safe.Widens[F, T]() {
		contract.Default().Enforce(rangeCheck[T](v, contract.KindPrecondition, 1))
	}

	return Int[T]{v: T(v)}
}

// Zero returns 0.
func Zero[T safe.Integer]() Int[T] {
	return Int[T]{}
}

// Max returns the largest Int[T].
func Max[T safe.Integer]() Int[T] {
	return Int[T]{v: safe.MaxOf[T]()}
}

// Min returns the smallest Int[T].
func Min[T safe.Integer]() Int[T] {
	return Int[T]{v: safe.MinOf[T]()}
}

// Get returns the underlying value.
func (x Int[T]) Get() T {
	return x.v
}

func (x Int[T]) IsZero() bool {
	return x.v == 0
}

func (x Int[T]) IsNegative() bool {
	return x.v < 0
}

func (x Int[T]) IsPositive() bool {
	return x.v > 0
}

// String formats the value in base 10.
func (x Int[T]) String() string {
	if safe.IsSigned[T]() {
		return strconv.FormatInt(int64(x.v), 10)
	}

	return strconv.FormatUint(uint64(x.v), 10)
}

// Decimal returns the value as an exact decimal.
func (x Int[T]) Decimal() decimal.Decimal {
	return safe.ToDecimal(x.v)
}

func (x Int[T]) Equal(y Int[T]) bool {
	return x.v == y.v
}

func (x Int[T]) NotEqual(y Int[T]) bool {
	return x.v != y.v
}

func (x Int[T]) Less(y Int[T]) bool {
	return x.v < y.v
}

func (x Int[T]) LessEqual(y Int[T]) bool {
	return x.v <= y.v
}

func (x Int[T]) Greater(y Int[T]) bool {
	return x.v > y.v
}

func (x Int[T]) GreaterEqual(y Int[T]) bool {
	return x.v >= y.v
}

// Compare returns -1, 0 or +1.
func (x Int[T]) Compare(y Int[T]) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	default:
		return 0
	}
}
