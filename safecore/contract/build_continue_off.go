//go:build !contracts_continue

package contract

// ContinueOnViolation is selected with -tags contracts_continue.
const ContinueOnViolation = false
