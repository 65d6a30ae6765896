//go:build !contracts_audit && !contracts_off

package contract

// ActiveLevel is the build level compiled into this binary.
// Select another with -tags contracts_audit or -tags contracts_off.
const ActiveLevel = LevelDefault
