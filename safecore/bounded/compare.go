package bounded

import "github.com/LerianStudio/lib-safecore/safecore/safe"

// Compare orders two Int values of any types by mathematical value and
// returns -1, 0 or +1.
func Compare[A, B safe.Integer](a Int[A], b Int[B]) int {
	return safe.Compare(a.v, b.v)
}

// Equal reports a == b across types. A negative signed value never equals
// an unsigned one.
func Equal[A, B safe.Integer](a Int[A], b Int[B]) bool {
	return safe.Compare(a.v, b.v) == 0
}

func NotEqual[A, B safe.Integer](a Int[A], b Int[B]) bool {
	return safe.Compare(a.v, b.v) != 0
}

func Less[A, B safe.Integer](a Int[A], b Int[B]) bool {
	return safe.Compare(a.v, b.v) < 0
}

func LessEqual[A, B safe.Integer](a Int[A], b Int[B]) bool {
	return safe.Compare(a.v, b.v) <= 0
}

func Greater[A, B safe.Integer](a Int[A], b Int[B]) bool {
	return safe.Compare(a.v, b.v) > 0
}

func GreaterEqual[A, B safe.Integer](a Int[A], b Int[B]) bool {
	return safe.Compare(a.v, b.v) >= 0
}
