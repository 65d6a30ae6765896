//go:build !contracts_strict

package contract

// Axiom checks record intent only. The predicate is a function so that it
// is never evaluated: it is not called and nothing is reported. Under
// -tags contracts_strict these functions do not exist, so code that uses
// them fails to compile.
//
//	contract.ExpectsAxiom(func() bool { return sorted(keys) })

// ExpectsAxiom documents a precondition that is never checked.
func ExpectsAxiom(func() bool) {}

// ExpectsFalseAxiom documents a negated precondition that is never checked.
func ExpectsFalseAxiom(func() bool) {}

// EnsuresAxiom documents a postcondition that is never checked.
func EnsuresAxiom(func() bool) {}

// EnsuresFalseAxiom documents a negated postcondition that is never checked.
func EnsuresFalseAxiom(func() bool) {}

// ConfirmAxiom documents an assertion that is never checked.
func ConfirmAxiom(func() bool) {}

// ConfirmFalseAxiom documents a negated assertion that is never checked.
func ConfirmFalseAxiom(func() bool) {}
