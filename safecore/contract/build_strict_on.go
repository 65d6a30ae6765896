//go:build contracts_strict

package contract

// StrictSafetyCompliance is selected with -tags contracts_strict.
// Fatal violations panic with *ViolationError instead of exiting, and the
// axiom checks are not compiled.
const StrictSafetyCompliance = true
