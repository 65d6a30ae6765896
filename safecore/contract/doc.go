// Package contract implements precondition, postcondition and assertion
// checks with three tiers and a replaceable violation handler.
//
// # Tiers and build levels
//
// Every check belongs to a tier. TierDefault checks run unless checking is
// switched off; TierAudit checks run only at LevelAudit; TierAxiom checks
// never run. The level of the package-level functions is fixed at build
// time:
//
//	go build                          // LevelDefault
//	go build -tags contracts_audit    // LevelAudit
//	go build -tags contracts_off      // LevelOff, every check compiled out
//
// # Escalation
//
// A failed check builds a ViolationInfo and passes it to the handler. The
// handler may be replaced with SetViolationHandler, but unless the binary
// is built with -tags contracts_continue the default handler runs right
// after it and never returns: it reports the violation and exits the
// process with code 3. With -tags contracts_strict it panics with
// *ViolationError instead, which Catch turns back into an error.
//
//	contract.Expects(len(buf) >= n)
//	contract.EnsuresAudit(sum >= prev)
//
// # Injected policies
//
// A Checker carries its own Config and handler. The numeric packages
// accept one so tests and embedded components can run a different policy
// than the process default. Checker policy is read at run time, so its
// tier gate is a branch rather than a compile-time elision.
//
// # Checked family
//
// Verify evaluates a check at every level and returns the violation as an
// error without calling the handler. The safe and bounded packages build
// their Try/Checked functions on it.
package contract
