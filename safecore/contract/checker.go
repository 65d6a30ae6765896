package contract

import (
	"sync"
	"sync/atomic"

	"github.com/LerianStudio/lib-safecore/safecore/log"
)

// Handler receives every violation a Checker detects. A handler may
// return; whether the check then escalates depends on the policy.
type Handler func(ViolationInfo)

const (
	msgPrecondition  = "precondition not satisfied"
	msgPostcondition = "postcondition not satisfied"
	msgAssertion     = "assertion not satisfied"
)

// Checker evaluates checks under one policy and owns one handler slot.
//
// The handler must be installed during single-threaded initialization.
// After that, checks may run concurrently from any goroutine.
type Checker struct {
	cfg     Config
	handler atomic.Pointer[Handler]

	mu     sync.RWMutex
	logger log.Logger
}

// New creates a Checker for cfg.
func New(cfg Config) *Checker {
	cfg.normalize()

	return &Checker{cfg: cfg, logger: cfg.Logger}
}

// Config returns the checker policy. Logger reflects the latest SetLogger.
func (c *Checker) Config() Config {
	cfg := c.cfg
	cfg.Logger = c.reportLogger()

	return cfg
}

// Active reports whether checks of tier t run under this checker.
// Unlike the package-level functions this is a field read on every call.
func (c *Checker) Active(t Tier) bool {
	return c.cfg.Level.Active(t)
}

// SetViolationHandler replaces the handler. Nil restores DefaultHandler.
// Not synchronized against concurrent checking by contract.
func (c *Checker) SetViolationHandler(h Handler) {
	if h == nil {
		c.handler.Store(nil)
		return
	}

	c.handler.Store(&h)
}

// ViolationHandler returns the installed handler.
func (c *Checker) ViolationHandler() Handler {
	if h := c.handler.Load(); h != nil {
		return *h
	}

	return c.DefaultHandler
}

// SetLogger replaces the report sink. Nil selects a stderr GoLogger.
func (c *Checker) SetLogger(logger log.Logger) {
	if isNil(logger) {
		logger = log.NewStderr()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger = logger
}

func (c *Checker) reportLogger() log.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.logger
}

// DefaultHandler reports info and stops forward progress. It never returns:
// strict builds panic with *ViolationError, others exit with code 3.
func (c *Checker) DefaultHandler(info ViolationInfo) {
	err := &ViolationError{Info: info}

	stack := captureStack()
	c.report(log.LevelError, info, stack, true)
	reportFatal(c.cfg.Context, err, info, c.cfg.Component, stack)

	if c.cfg.StrictSafetyCompliance {
		panic(err)
	}

	c.cfg.Exit(exitCodeViolation)

	// Only reachable with a test exit function that returns.
	panic(err)
}

// Enforce is the unchecked primitive behind every named check: if chk's
// tier is active and ok is false, the violation goes to the handler and,
// unless the policy continues, escalates.
//
// Under StrictSafetyCompliance a TierAxiom check panics with
// ErrAxiomNotAllowed, mirroring the axiom functions that strict builds
// do not compile.
func (c *Checker) Enforce(ok bool, chk Check) {
	c.rejectAxiom(chk.Tier)
	c.evaluate(ok, chk, chk.Skip+1)
}

// Verify is the checked primitive. It evaluates ok at every build level,
// reports a failure, and returns it as *ViolationError. It never calls the
// handler and never escalates; the caller owns the error.
//
// Like Enforce, it panics on TierAxiom under StrictSafetyCompliance.
func (c *Checker) Verify(ok bool, chk Check) error {
	c.rejectAxiom(chk.Tier)

	if ok {
		return nil
	}

	if chk.Location.IsZero() {
		chk.Location = Caller(chk.Skip + 1)
	}

	info := chk.info()
	stack := captureStack()

	recordViolationObservability(c.cfg.Context, info, c.cfg.Component, stack)
	c.report(log.LevelWarn, info, stack, false)

	return &ViolationError{Info: info}
}

func (c *Checker) rejectAxiom(t Tier) {
	if t == TierAxiom && c.cfg.StrictSafetyCompliance {
		panic(ErrAxiomNotAllowed)
	}
}

// evaluate runs the tier gate, captures the location skip frames above
// its own caller, and dispatches the violation.
func (c *Checker) evaluate(pass bool, chk Check, skip int) {
	if !c.cfg.Level.Active(chk.Tier) || pass {
		return
	}

	if chk.Location.IsZero() {
		chk.Location = Caller(skip + 1)
	}

	c.violate(chk.info())
}

func (c *Checker) violate(info ViolationInfo) {
	recordViolationObservability(c.cfg.Context, info, c.cfg.Component, nil)

	c.ViolationHandler()(info)

	if c.cfg.ContinueOnViolation {
		return
	}

	c.DefaultHandler(info)
}

// Expects checks a precondition at TierDefault.
func (c *Checker) Expects(test bool) {
	c.evaluate(test, Check{Kind: KindPrecondition, Tier: TierDefault, Message: msgPrecondition}, 1)
}

// ExpectsFalse checks that a precondition test is false at TierDefault.
func (c *Checker) ExpectsFalse(test bool) {
	c.evaluate(!test, Check{Kind: KindPrecondition, Tier: TierDefault, Message: msgPrecondition}, 1)
}

// ExpectsAudit checks a precondition at TierAudit.
func (c *Checker) ExpectsAudit(test bool) {
	c.evaluate(test, Check{Kind: KindPrecondition, Tier: TierAudit, Message: msgPrecondition}, 1)
}

// ExpectsFalseAudit checks that a precondition test is false at TierAudit.
func (c *Checker) ExpectsFalseAudit(test bool) {
	c.evaluate(!test, Check{Kind: KindPrecondition, Tier: TierAudit, Message: msgPrecondition}, 1)
}

// Ensures checks a postcondition at TierDefault.
func (c *Checker) Ensures(test bool) {
	c.evaluate(test, Check{Kind: KindPostcondition, Tier: TierDefault, Message: msgPostcondition}, 1)
}

// EnsuresFalse checks that a postcondition test is false at TierDefault.
func (c *Checker) EnsuresFalse(test bool) {
	c.evaluate(!test, Check{Kind: KindPostcondition, Tier: TierDefault, Message: msgPostcondition}, 1)
}

// EnsuresAudit checks a postcondition at TierAudit.
func (c *Checker) EnsuresAudit(test bool) {
	c.evaluate(test, Check{Kind: KindPostcondition, Tier: TierAudit, Message: msgPostcondition}, 1)
}

// EnsuresFalseAudit checks that a postcondition test is false at TierAudit.
func (c *Checker) EnsuresFalseAudit(test bool) {
	c.evaluate(!test, Check{Kind: KindPostcondition, Tier: TierAudit, Message: msgPostcondition}, 1)
}

// Confirm checks an assertion at TierDefault.
func (c *Checker) Confirm(test bool) {
	c.evaluate(test, Check{Kind: KindAssertion, Tier: TierDefault, Message: msgAssertion}, 1)
}

// ConfirmFalse checks that an assertion test is false at TierDefault.
func (c *Checker) ConfirmFalse(test bool) {
	c.evaluate(!test, Check{Kind: KindAssertion, Tier: TierDefault, Message: msgAssertion}, 1)
}

// ConfirmAudit checks an assertion at TierAudit.
func (c *Checker) ConfirmAudit(test bool) {
	c.evaluate(test, Check{Kind: KindAssertion, Tier: TierAudit, Message: msgAssertion}, 1)
}

// ConfirmFalseAudit checks that an assertion test is false at TierAudit.
func (c *Checker) ConfirmFalseAudit(test bool) {
	c.evaluate(!test, Check{Kind: KindAssertion, Tier: TierAudit, Message: msgAssertion}, 1)
}
