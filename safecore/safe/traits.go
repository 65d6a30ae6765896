package safe

import (
	"cmp"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/LerianStudio/lib-safecore/safecore/contract"
)

// Integer is any Go integer type.
type Integer interface {
	constraints.Integer
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	return ^T(0) < 0
}

// BitSize returns the width of T in bits.
func BitSize[T Integer]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8
}

// MaxOf returns the largest value of T.
func MaxOf[T Integer]() T {
	if IsSigned[T]() {
		return T(1)<<(BitSize[T]()-1) - 1
	}

	return ^T(0)
}

// MinOf returns the smallest value of T.
func MinOf[T Integer]() T {
	if IsSigned[T]() {
		return T(1) << (BitSize[T]() - 1)
	}

	return 0
}

// Widens reports whether every value of F is representable in T.
func Widens[F, T Integer]() bool {
	fs, ts := IsSigned[F](), IsSigned[T]()

	switch {
	case fs == ts:
		return BitSize[F]() <= BitSize[T]()
	case !fs && ts:
		return BitSize[F]() < BitSize[T]()
	default:
		return false
	}
}

// InRange reports whether v is representable in T.
//
// Example:
//
//	safe.InRange[int8](200)        // false
//	safe.InRange[uint32](int8(-1)) // false
func InRange[T, F Integer](v F) bool {
	if Widens[F, T]() {
		return true
	}

	fs, ts := IsSigned[F](), IsSigned[T]()

	switch {
	case fs && ts:
		return int64(v) >= int64(MinOf[T]()) && int64(v) <= int64(MaxOf[T]())
	case fs && !ts:
		return v >= 0 && uint64(v) <= uint64(MaxOf[T]())
	default:
		// Unsigned source: only the upper bound can fail.
		return uint64(v) <= uint64(MaxOf[T]())
	}
}

// Compare orders two integers of any types by mathematical value and
// returns -1, 0 or +1.
func Compare[A, B Integer](a A, b B) int {
	aNeg := IsSigned[A]() && a < 0
	bNeg := IsSigned[B]() && b < 0

	switch {
	case aNeg && bNeg:
		return cmp.Compare(int64(a), int64(b))
	case aNeg:
		return -1
	case bNeg:
		return 1
	default:
		return cmp.Compare(uint64(a), uint64(b))
	}
}

// Operand describes v as a named operand of a failed check, keeping its
// signedness.
func Operand[T Integer](name string, v T) contract.Operand {
	if IsSigned[T]() {
		return contract.IntOperand(name, int64(v))
	}

	return contract.UintOperand(name, uint64(v))
}
