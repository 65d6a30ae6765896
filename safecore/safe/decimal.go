package safe

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-safecore/safecore/contract"
)

// ErrFractional is returned when a decimal with a fractional part is
// converted to an integer.
var ErrFractional = errors.New("decimal has a fractional part")

func bigBounds[T Integer]() (lo, hi *big.Int) {
	if IsSigned[T]() {
		return big.NewInt(int64(MinOf[T]())), big.NewInt(int64(MaxOf[T]()))
	}

	return new(big.Int), new(big.Int).SetUint64(uint64(MaxOf[T]()))
}

// FromDecimal converts an integral decimal to T. Fractional values return
// ErrFractional; values outside T return an error wrapping
// contract.ErrNarrowing.
//
// Example:
//
//	units, err := safe.FromDecimal[int64](amount.Shift(2))
//	if err != nil {
//	    return fmt.Errorf("convert amount: %w", err)
//	}
func FromDecimal[T Integer](d decimal.Decimal) (T, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("%s: %w", d.String(), ErrFractional)
	}

	v := d.BigInt()
	lo, hi := bigBounds[T]()

	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return 0, fmt.Errorf("%s: %w", d.String(), contract.ErrNarrowing)
	}

	if IsSigned[T]() {
		return T(v.Int64()), nil
	}

	return T(v.Uint64()), nil
}

// ToDecimal returns v as an exact decimal.
func ToDecimal[T Integer](v T) decimal.Decimal {
	if IsSigned[T]() {
		return decimal.NewFromInt(int64(v))
	}

	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0)
}
