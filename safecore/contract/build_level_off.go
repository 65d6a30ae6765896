//go:build contracts_off

package contract

// ActiveLevel is the build level compiled into this binary.
// contracts_off wins over contracts_audit when both are set.
const ActiveLevel = LevelOff
