// Package bounded provides Int, a fixed-width integer whose arithmetic is
// checked for overflow, wraparound, division by zero and the signed
// minimum divided by -1.
//
// Methods on Int raise audit-tier assertions through the contract package
// before the underlying operation runs. When the contract policy lets a
// failed check return, the operation then proceeds with Go semantics.
// The Try functions check at every build level and return the violation
// instead, and Ops runs the same operations under an injected checker.
//
// Comparisons between Int values of different types use the mathematical
// value: a negative signed operand is less than any unsigned operand.
package bounded
