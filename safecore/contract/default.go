package contract

import "github.com/LerianStudio/lib-safecore/safecore/log"

// Tier gates for the package-level checks. They are constants, so an
// inactive tier compiles to an empty function body.
const (
	defaultTierOn = ActiveLevel < LevelOff
	auditTierOn   = ActiveLevel == LevelAudit
)

var std = New(DefaultConfig())

// Default returns the process-wide checker used by the package-level checks.
func Default() *Checker {
	return std
}

// SetViolationHandler replaces the process-wide handler. Nil restores the
// default. Call during single-threaded initialization only.
func SetViolationHandler(h Handler) {
	std.SetViolationHandler(h)
}

// ViolationHandler returns the process-wide handler.
func ViolationHandler() Handler {
	return std.ViolationHandler()
}

// SetLogger replaces the process-wide report sink.
func SetLogger(logger log.Logger) {
	std.SetLogger(logger)
}

func violateDefault(kind Kind, tier Tier, msg string) {
	// 0 violateDefault, 1 the named check, 2 its caller.
	std.violate(ViolationInfo{Location: Caller(2), Message: msg, Kind: kind, Tier: tier})
}

// Expects checks a precondition at TierDefault.
func Expects(test bool) {
	if !defaultTierOn || test {
		return
	}

	violateDefault(KindPrecondition, TierDefault, msgPrecondition)
}

// ExpectsFalse checks that a precondition test is false at TierDefault.
func ExpectsFalse(test bool) {
	if !defaultTierOn || !test {
		return
	}

	violateDefault(KindPrecondition, TierDefault, msgPrecondition)
}

// ExpectsAudit checks a precondition at TierAudit.
func ExpectsAudit(test bool) {
	if !auditTierOn || test {
		return
	}

	violateDefault(KindPrecondition, TierAudit, msgPrecondition)
}

// ExpectsFalseAudit checks that a precondition test is false at TierAudit.
func ExpectsFalseAudit(test bool) {
	if !auditTierOn || !test {
		return
	}

	violateDefault(KindPrecondition, TierAudit, msgPrecondition)
}

// Ensures checks a postcondition at TierDefault.
func Ensures(test bool) {
	if !defaultTierOn || test {
		return
	}

	violateDefault(KindPostcondition, TierDefault, msgPostcondition)
}

// EnsuresFalse checks that a postcondition test is false at TierDefault.
func EnsuresFalse(test bool) {
	if !defaultTierOn || !test {
		return
	}

	violateDefault(KindPostcondition, TierDefault, msgPostcondition)
}

// EnsuresAudit checks a postcondition at TierAudit.
func EnsuresAudit(test bool) {
	if !auditTierOn || test {
		return
	}

	violateDefault(KindPostcondition, TierAudit, msgPostcondition)
}

// EnsuresFalseAudit checks that a postcondition test is false at TierAudit.
func EnsuresFalseAudit(test bool) {
	if !auditTierOn || !test {
		return
	}

	violateDefault(KindPostcondition, TierAudit, msgPostcondition)
}

// Confirm checks an assertion at TierDefault.
func Confirm(test bool) {
	if !defaultTierOn || test {
		return
	}

	violateDefault(KindAssertion, TierDefault, msgAssertion)
}

// ConfirmFalse checks that an assertion test is false at TierDefault.
func ConfirmFalse(test bool) {
	if !defaultTierOn || !test {
		return
	}

	violateDefault(KindAssertion, TierDefault, msgAssertion)
}

// ConfirmAudit checks an assertion at TierAudit.
func ConfirmAudit(test bool) {
	if !auditTierOn || test {
		return
	}

	violateDefault(KindAssertion, TierAudit, msgAssertion)
}

// ConfirmFalseAudit checks that an assertion test is false at TierAudit.
func ConfirmFalseAudit(test bool) {
	if !auditTierOn || !test {
		return
	}

	violateDefault(KindAssertion, TierAudit, msgAssertion)
}
