package contract

import (
	"strconv"

	"github.com/LerianStudio/lib-safecore/safecore/log"
)

// Operand is one integer input of a failed numeric check. Both signed and
// unsigned 64-bit values are carried without loss.
type Operand struct {
	Name     string
	Int      int64
	Uint     uint64
	Unsigned bool
}

// IntOperand describes a signed operand.
func IntOperand(name string, v int64) Operand {
	return Operand{Name: name, Int: v}
}

// UintOperand describes an unsigned operand.
func UintOperand(name string, v uint64) Operand {
	return Operand{Name: name, Uint: v, Unsigned: true}
}

// String renders the operand value in base 10.
func (o Operand) String() string {
	if o.Unsigned {
		return strconv.FormatUint(o.Uint, 10)
	}

	return strconv.FormatInt(o.Int, 10)
}

// Field returns the operand as a typed log field keyed "operand.<name>".
func (o Operand) Field() log.Field {
	key := "operand." + o.Name

	if o.Unsigned {
		return log.Uint64(key, o.Uint)
	}

	return log.Int64(key, o.Int)
}
