//go:build contracts_audit && !contracts_off

package contract

// ActiveLevel is the build level compiled into this binary.
const ActiveLevel = LevelAudit
