//go:build !contracts_strict

package contract

// StrictSafetyCompliance is selected with -tags contracts_strict.
const StrictSafetyCompliance = false
