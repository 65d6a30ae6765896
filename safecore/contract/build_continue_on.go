//go:build contracts_continue

package contract

// ContinueOnViolation is selected with -tags contracts_continue.
// A failed check then runs only the replaceable handler and returns.
const ContinueOnViolation = true
