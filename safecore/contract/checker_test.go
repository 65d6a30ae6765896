//go:build unit

package contract

import (
	"bytes"
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/LerianStudio/lib-safecore/safecore/log"
)

// exitSignal is panicked by test exit functions so escalation can be observed.
type exitSignal struct {
	code int
}

func panicExit(code int) {
	panic(exitSignal{code: code})
}

type recorder struct {
	mu    sync.Mutex
	infos []ViolationInfo
}

func (r *recorder) handle(info ViolationInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.infos = append(r.infos, info)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.infos)
}

func (r *recorder) last() ViolationInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.infos[len(r.infos)-1]
}

func newContinueChecker(level BuildLevel) (*Checker, *recorder) {
	rec := &recorder{}
	c := New(Config{Level: level, ContinueOnViolation: true, Logger: log.NewNop()})
	c.SetViolationHandler(rec.handle)

	return c, rec
}

type namedCheck struct {
	name string
	kind Kind
	tier Tier
	// pass is the argument that satisfies the check.
	pass bool
	run  func(c *Checker, test bool)
}

var namedChecks = []namedCheck{
	{"Expects", KindPrecondition, TierDefault, true, (*Checker).Expects},
	{"ExpectsFalse", KindPrecondition, TierDefault, false, (*Checker).ExpectsFalse},
	{"ExpectsAudit", KindPrecondition, TierAudit, true, (*Checker).ExpectsAudit},
	{"ExpectsFalseAudit", KindPrecondition, TierAudit, false, (*Checker).ExpectsFalseAudit},
	{"Ensures", KindPostcondition, TierDefault, true, (*Checker).Ensures},
	{"EnsuresFalse", KindPostcondition, TierDefault, false, (*Checker).EnsuresFalse},
	{"EnsuresAudit", KindPostcondition, TierAudit, true, (*Checker).EnsuresAudit},
	{"EnsuresFalseAudit", KindPostcondition, TierAudit, false, (*Checker).EnsuresFalseAudit},
	{"Confirm", KindAssertion, TierDefault, true, (*Checker).Confirm},
	{"ConfirmFalse", KindAssertion, TierDefault, false, (*Checker).ConfirmFalse},
	{"ConfirmAudit", KindAssertion, TierAudit, true, (*Checker).ConfirmAudit},
	{"ConfirmFalseAudit", KindAssertion, TierAudit, false, (*Checker).ConfirmFalseAudit},
}

var allLevels = []BuildLevel{LevelUnset, LevelDefault, LevelAudit, LevelOff, BuildLevel(7)}

func TestBuildLevelActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   BuildLevel
		def     bool
		audit   bool
		display string
	}{
		{LevelUnset, true, false, "default"},
		{LevelDefault, true, false, "default"},
		{LevelAudit, true, true, "audit"},
		{LevelOff, false, false, "off"},
		{BuildLevel(9), false, false, "off"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.def, tt.level.Active(TierDefault), "level %d default", tt.level)
		assert.Equal(t, tt.audit, tt.level.Active(TierAudit), "level %d audit", tt.level)
		assert.False(t, tt.level.Active(TierAxiom), "axiom is never active")
		assert.Equal(t, tt.display, tt.level.String())
	}
}

func TestPassingChecksNeverInvokeHandler(t *testing.T) {
	t.Parallel()

	for _, level := range allLevels {
		for _, nc := range namedChecks {
			c, rec := newContinueChecker(level)
			nc.run(c, nc.pass)
			assert.Zero(t, rec.count(), "%s at level %d", nc.name, level)
		}
	}
}

func TestFailingChecksFollowLevel(t *testing.T) {
	t.Parallel()

	for _, level := range allLevels {
		for _, nc := range namedChecks {
			t.Run(nc.name+"/"+level.String(), func(t *testing.T) {
				t.Parallel()

				c, rec := newContinueChecker(level)
				nc.run(c, !nc.pass)

				if !level.Active(nc.tier) {
					assert.Zero(t, rec.count())
					return
				}

				require.Equal(t, 1, rec.count())

				info := rec.last()
				assert.Equal(t, nc.kind, info.Kind)
				assert.Equal(t, nc.tier, info.Tier)
				assert.Equal(t, CauseNone, info.Cause)
				assert.NotEmpty(t, info.Message)
			})
		}
	}
}

func TestLevelAuditInvokesHandlerOncePerTier(t *testing.T) {
	t.Parallel()

	c, rec := newContinueChecker(LevelAudit)

	c.Expects(false)
	assert.Equal(t, 1, rec.count())

	c.ExpectsAudit(false)
	assert.Equal(t, 2, rec.count())
}

func TestLevelOffElidesEverything(t *testing.T) {
	t.Parallel()

	c, rec := newContinueChecker(LevelOff)

	before := rec.count()
	c.Expects(false)
	c.ExpectsAudit(false)
	c.Confirm(false)
	c.EnsuresFalseAudit(true)
	assert.Equal(t, before, rec.count())
}

func TestViolationCapturesCallerLocation(t *testing.T) {
	t.Parallel()

	c, rec := newContinueChecker(LevelDefault)

	want := Here()
	c.Expects(false)

	require.Equal(t, 1, rec.count())

	loc := rec.last().Location
	assert.Equal(t, "checker_test.go", filepath.Base(loc.File))
	assert.Equal(t, want.Line+1, loc.Line)
	assert.True(t, strings.HasSuffix(loc.Function, "TestViolationCapturesCallerLocation"), loc.Function)
}

func TestEnforceSkipAndExplicitLocation(t *testing.T) {
	t.Parallel()

	c, rec := newContinueChecker(LevelAudit)

	helper := func() {
		c.Enforce(false, Check{Kind: KindAssertion, Tier: TierAudit, Cause: CauseUnsignedWrap, Message: "wrap", Skip: 1})
	}

	want := Here()
	helper()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, want.Line+1, rec.last().Location.Line)
	assert.Equal(t, CauseUnsignedWrap, rec.last().Cause)

	explicit := Location{File: "ledger.go", Function: "ledger.Post", Line: 10}
	c.Enforce(false, Check{Kind: KindAssertion, Tier: TierDefault, Message: "explicit", Location: explicit})

	require.Equal(t, 2, rec.count())
	assert.Equal(t, explicit, rec.last().Location)
}

func TestEnforceAxiomTierNeverRuns(t *testing.T) {
	t.Parallel()

	for _, level := range allLevels {
		c, rec := newContinueChecker(level)
		c.Enforce(false, Check{Kind: KindAssertion, Tier: TierAxiom})
		assert.Zero(t, rec.count())
	}
}

func TestEscalationExitsWithViolationCode(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	var buf bytes.Buffer

	c := New(Config{Level: LevelDefault, Exit: panicExit, Logger: log.NewGoLogger(&buf, log.LevelError)})
	c.SetViolationHandler(rec.handle)

	assert.PanicsWithValue(t, exitSignal{code: 3}, func() {
		c.Expects(false)
	})

	assert.Equal(t, 1, rec.count(), "replaceable handler runs before escalation")
	assert.Contains(t, buf.String(), "CONTRACT VIOLATION")
	assert.Contains(t, buf.String(), "kind=precondition")
}

func TestEscalationWithReturningExitStillStops(t *testing.T) {
	t.Parallel()

	exits := 0
	c := New(Config{Level: LevelDefault, Exit: func(int) { exits++ }, Logger: log.NewNop()})

	err := Catch(func() {
		c.Confirm(false)
		t.Fatal("execution continued past a failed check")
	})

	require.Error(t, err)
	assert.Equal(t, 1, exits)
	assert.ErrorIs(t, err, ErrAssertionViolation)
}

func TestStrictModePanicsWithTypedError(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := New(Config{Level: LevelAudit, StrictSafetyCompliance: true, Exit: panicExit, Logger: log.NewNop()})
	c.SetViolationHandler(rec.handle)

	err := Catch(func() {
		c.EnsuresAudit(false)
	})

	require.Error(t, err)

	var verr *ViolationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindPostcondition, verr.Info.Kind)
	assert.Equal(t, TierAudit, verr.Info.Tier)
	assert.ErrorIs(t, err, ErrPostconditionViolation)
	assert.Equal(t, 1, rec.count())
}

func TestDefaultHandlerIsInstalledInitially(t *testing.T) {
	t.Parallel()

	c := New(Config{Level: LevelDefault, StrictSafetyCompliance: true, Logger: log.NewNop()})

	err := Catch(func() { c.Expects(false) })
	require.ErrorIs(t, err, ErrPreconditionViolation)

	c.SetViolationHandler(func(ViolationInfo) {})
	c.SetViolationHandler(nil)

	err = Catch(func() { c.Expects(false) })
	require.ErrorIs(t, err, ErrPreconditionViolation)
}

func TestContinueModeReturnsAfterHandler(t *testing.T) {
	t.Parallel()

	c, rec := newContinueChecker(LevelDefault)

	reached := false

	assert.NotPanics(t, func() {
		c.Confirm(false)
		reached = true
	})

	assert.True(t, reached)
	assert.Equal(t, 1, rec.count())
}

func TestVerifyChecksAtEveryLevel(t *testing.T) {
	t.Parallel()

	for _, level := range allLevels {
		c, rec := newContinueChecker(level)

		assert.NoError(t, c.Verify(true, Check{Kind: KindAssertion, Tier: TierAudit}))

		err := c.Verify(false, Check{Kind: KindPrecondition, Tier: TierAudit, Cause: CauseNarrowing, Message: "narrowing"})
		require.Error(t, err, "level %d", level)
		assert.ErrorIs(t, err, ErrPreconditionViolation)
		assert.ErrorIs(t, err, ErrNarrowing)
		assert.Zero(t, rec.count(), "Verify never calls the handler")
	}
}

func TestVerifyCapturesCaller(t *testing.T) {
	t.Parallel()

	c, _ := newContinueChecker(LevelDefault)

	want := Here()
	err := c.Verify(false, Check{Kind: KindAssertion})

	var verr *ViolationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, want.Line+1, verr.Info.Location.Line)
}

func TestViolationRecordedOnSpan(t *testing.T) {
	t.Parallel()

	recorderSpans := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorderSpans))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	ctx, span := provider.Tracer("test").Start(context.Background(), "post")

	rec := &recorder{}
	c := New(Config{Level: LevelAudit, ContinueOnViolation: true, Logger: log.NewNop(), Context: ctx, Component: "ledger"})
	c.SetViolationHandler(rec.handle)

	c.Enforce(false, Check{Kind: KindAssertion, Tier: TierAudit, Cause: CauseSignedOverflow, Message: "overflow"})
	span.End()

	spans := recorderSpans.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	var found bool

	for _, ev := range spans[0].Events() {
		if ev.Name != ViolationSpanEventName {
			continue
		}

		found = true

		attrs := map[string]string{}
		for _, kv := range ev.Attributes {
			attrs[string(kv.Key)] = kv.Value.AsString()
		}

		assert.Equal(t, "assertion", attrs["contract.kind"])
		assert.Equal(t, "audit", attrs["contract.tier"])
		assert.Equal(t, "signed_overflow", attrs["contract.cause"])
		assert.Equal(t, "ledger", attrs["contract.component"])
	}

	assert.True(t, found, "violation event recorded")
}

func TestHandlerSwapIsAtomic(t *testing.T) {
	t.Parallel()

	c := New(Config{Level: LevelDefault, ContinueOnViolation: true, Logger: log.NewNop()})

	var hits atomic.Int64

	c.SetViolationHandler(func(ViolationInfo) { hits.Add(1) })

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				c.Confirm(false)
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, int64(800), hits.Load())
}

func TestViolationErrorFormatting(t *testing.T) {
	t.Parallel()

	err := &ViolationError{Info: ViolationInfo{
		Location: Location{File: "/src/ledger/post.go", Line: 12},
		Message:  "balance must not wrap",
		Kind:     KindAssertion,
		Tier:     TierAudit,
		Cause:    CauseUnsignedWrap,
	}}

	assert.Equal(t, "assertion violation [audit] at post.go:12: balance must not wrap", err.Error())
	assert.ErrorIs(t, err, ErrAssertionViolation)
	assert.ErrorIs(t, err, ErrUnsignedWrap)
	assert.NotErrorIs(t, err, ErrPreconditionViolation)

	var nilErr *ViolationError
	assert.Equal(t, "contract violation", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}

func TestCatchPropagatesForeignPanics(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Catch(func() {}))
	assert.PanicsWithValue(t, "boom", func() {
		_ = Catch(func() { panic("boom") })
	})

	wrapped := errors.New("plain")
	assert.PanicsWithError(t, "plain", func() {
		_ = Catch(func() { panic(wrapped) })
	})
}

func TestStringers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "precondition", KindPrecondition.String())
	assert.Equal(t, "postcondition", KindPostcondition.String())
	assert.Equal(t, "assertion", KindAssertion.String())
	assert.Equal(t, "unknown", Kind(9).String())

	assert.Equal(t, "default", TierDefault.String())
	assert.Equal(t, "audit", TierAudit.String())
	assert.Equal(t, "axiom", TierAxiom.String())
	assert.Equal(t, "unknown", Tier(9).String())

	causes := map[Cause]error{
		CauseSignedOverflow: ErrSignedOverflow,
		CauseUnsignedWrap:   ErrUnsignedWrap,
		CauseNarrowing:      ErrNarrowing,
		CauseDivisionByZero: ErrDivisionByZero,
		CauseMinOverflow:    ErrMinOverflow,
	}

	for cause, sentinel := range causes {
		assert.Equal(t, sentinel, cause.Err())
		assert.NotEqual(t, "unknown", cause.String())
	}

	assert.NoError(t, CauseNone.Err())
	assert.Equal(t, "unknown", Cause(99).String())

	info := ViolationInfo{Kind: KindAssertion, Tier: TierAudit, Cause: CauseMinOverflow, Message: "m"}
	assert.Equal(t, "assertion [audit, min_overflow] at unknown: m", info.String())
}

func TestLocationHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, Location{}.IsZero())
	assert.Equal(t, "unknown", Location{}.String())

	here := Here()
	assert.False(t, here.IsZero())
	assert.Equal(t, "checker_test.go", filepath.Base(here.File))

	self := Caller(0)
	assert.True(t, strings.HasSuffix(self.Function, "TestLocationHelpers"), self.Function)
}

func TestConfigNormalize(t *testing.T) {
	t.Parallel()

	var typedNil *log.GoLogger

	c := New(Config{Logger: typedNil})
	cfg := c.Config()

	assert.NotNil(t, cfg.Context)
	assert.NotNil(t, cfg.Exit)
	assert.IsType(t, &log.GoLogger{}, cfg.Logger)
	assert.False(t, isNil(cfg.Logger))

	def := DefaultConfig()
	assert.Equal(t, ActiveLevel, def.Level)
	assert.Equal(t, ContinueOnViolation, def.ContinueOnViolation)
	assert.Equal(t, StrictSafetyCompliance, def.StrictSafetyCompliance)
}

func TestStrictCheckerRejectsAxiomTier(t *testing.T) {
	t.Parallel()

	strict := New(Config{Level: LevelAudit, StrictSafetyCompliance: true, Logger: log.NewNop()})
	axiom := Check{Kind: KindAssertion, Tier: TierAxiom, Message: "sorted"}

	assert.PanicsWithValue(t, ErrAxiomNotAllowed, func() { strict.Enforce(true, axiom) })
	assert.PanicsWithValue(t, ErrAxiomNotAllowed, func() { _ = strict.Verify(true, axiom) })

	lenient, rec := newContinueChecker(LevelAudit)

	assert.NotPanics(t, func() { lenient.Enforce(false, axiom) })
	assert.Zero(t, rec.count())
}

func TestConfigReflectsSetLogger(t *testing.T) {
	t.Parallel()

	first := log.NewGoLogger(&bytes.Buffer{}, log.LevelWarn)
	c := New(Config{Logger: first})
	assert.Same(t, first, c.Config().Logger)

	second := log.NewGoLogger(&bytes.Buffer{}, log.LevelError)
	c.SetLogger(second)
	assert.Same(t, second, c.Config().Logger)
}

func TestOperandFormatting(t *testing.T) {
	t.Parallel()

	signed := IntOperand("lhs", math.MinInt64)
	assert.Equal(t, "-9223372036854775808", signed.String())
	assert.Equal(t, log.Int64("operand.lhs", math.MinInt64), signed.Field())

	unsigned := UintOperand("rhs", math.MaxUint64)
	assert.Equal(t, "18446744073709551615", unsigned.String())
	assert.Equal(t, log.Uint64("operand.rhs", math.MaxUint64), unsigned.Field())
}

func TestCheckOperandsReachViolation(t *testing.T) {
	t.Parallel()

	c, rec := newContinueChecker(LevelDefault)
	operands := []Operand{IntOperand("lhs", 100), IntOperand("rhs", 28)}

	c.Enforce(false, Check{Kind: KindAssertion, Tier: TierDefault, Cause: CauseSignedOverflow, Operands: operands})

	require.Equal(t, 1, rec.count())
	assert.Equal(t, operands, rec.last().Operands)

	err := c.Verify(false, Check{Kind: KindAssertion, Tier: TierDefault, Operands: operands})

	var verr *ViolationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, operands, verr.Info.Operands)
}
