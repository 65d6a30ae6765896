// Package safe provides value-preserving integer conversion and overflow
// predicates for every pair of Go integer types.
//
// Convert, Narrow and Expand raise an audit-tier precondition through the
// contract package when a value does not fit the target type. Checked and
// the arithmetic helpers (Add, Sub, Mul, Div, Mod) never escalate; they
// return the violation as an error instead.
//
// Conversions between types whose ranges nest are plain casts.
package safe
