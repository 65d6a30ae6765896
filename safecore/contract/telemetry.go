package contract

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	constant "github.com/LerianStudio/lib-safecore/safecore/constants"
	"github.com/LerianStudio/lib-safecore/safecore/log"
	"github.com/LerianStudio/lib-safecore/safecore/opentelemetry/metrics"
	"github.com/LerianStudio/lib-safecore/safecore/runtime"
)

const exitCodeViolation = constant.ExitCodeContractViolation

// ViolationSpanEventName is the event name used when recording violations on spans.
const ViolationSpanEventName = constant.EventContractViolation

// ViolationMetrics counts violations through a MetricsFactory.
type ViolationMetrics struct {
	factory *metrics.MetricsFactory
}

var violationMetric = metrics.Metric{
	Name:        constant.MetricContractViolationTotal,
	Unit:        "1",
	Description: "Total number of failed contract checks",
}

var (
	violationMetricsInstance *ViolationMetrics
	violationMetricsMu       sync.RWMutex
)

// InitViolationMetrics installs the metrics factory used by every Checker.
// Call once during startup after telemetry is initialized; later calls are no-ops.
func InitViolationMetrics(factory *metrics.MetricsFactory) {
	violationMetricsMu.Lock()
	defer violationMetricsMu.Unlock()

	if factory == nil || violationMetricsInstance != nil {
		return
	}

	violationMetricsInstance = &ViolationMetrics{factory: factory}
}

// GetViolationMetrics returns the installed instance or nil.
func GetViolationMetrics() *ViolationMetrics {
	violationMetricsMu.RLock()
	defer violationMetricsMu.RUnlock()

	return violationMetricsInstance
}

// ResetViolationMetrics clears the singleton (useful for tests).
func ResetViolationMetrics() {
	violationMetricsMu.Lock()
	defer violationMetricsMu.Unlock()

	violationMetricsInstance = nil
}

// RecordViolation increments contract_violation_total. No-op on a nil receiver.
func (vm *ViolationMetrics) RecordViolation(ctx context.Context, info ViolationInfo, component string) {
	if vm == nil || vm.factory == nil {
		return
	}

	counter, err := vm.factory.Counter(violationMetric)
	if err != nil {
		return
	}

	_ = counter.
		WithLabels(map[string]string{
			"kind":      info.Kind.String(),
			"tier":      info.Tier.String(),
			"cause":     info.Cause.String(),
			"component": constant.SanitizeMetricLabel(component),
		}).
		AddOne(ctx)
}

func recordViolationObservability(ctx context.Context, info ViolationInfo, component string, stack []byte) {
	if ctx == nil {
		ctx = context.Background()
	}

	GetViolationMetrics().RecordViolation(ctx, info, component)
	recordViolationToSpan(ctx, info, component, stack)
}

func recordViolationToSpan(ctx context.Context, info ViolationInfo, component string, stack []byte) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrContractKind, info.Kind.String()),
		attribute.String(constant.AttrContractTier, info.Tier.String()),
		attribute.String(constant.AttrContractCause, info.Cause.String()),
		attribute.String(constant.AttrContractMessage, info.Message),
		attribute.String(constant.AttrContractLocation, info.Location.String()),
	}

	if component != "" {
		attrs = append(attrs, attribute.String(constant.AttrContractComponent, component))
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String(constant.AttrContractStack, string(stack)))
	}

	err := &ViolationError{Info: info}

	span.AddEvent(ViolationSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// report logs info. escalated marks reports from the default handler, as
// opposed to violations returned by Verify.
func (c *Checker) report(level log.Level, info ViolationInfo, stack []byte, escalated bool) {
	logger := c.reportLogger()
	if !logger.Enabled(level) {
		return
	}

	fields := make([]log.Field, 0, 10+len(info.Operands))
	fields = append(fields,
		log.String("kind", info.Kind.String()),
		log.String("tier", info.Tier.String()),
		log.String("location", info.Location.String()),
		log.String("function", info.Location.Function),
		log.Int("line", info.Location.Line),
		log.Bool("escalated", escalated),
	)

	for _, op := range info.Operands {
		fields = append(fields, op.Field())
	}

	if info.Cause != CauseNone {
		fields = append(fields, log.String("cause", info.Cause.String()))
	}

	if c.cfg.Component != "" {
		fields = append(fields, log.String("component", c.cfg.Component))
	}

	if len(stack) > 0 {
		fields = append(fields, log.String("stack", string(stack)))
	}

	logger.Log(c.cfg.Context, level, "CONTRACT VIOLATION: "+info.Message, fields...)
}

func reportFatal(ctx context.Context, err error, info ViolationInfo, component string, stack []byte) {
	runtime.ReportFatal(ctx, err, violationTags(info, component), stack)
}

func violationTags(info ViolationInfo, component string) map[string]string {
	tags := map[string]string{
		"kind":     info.Kind.String(),
		"tier":     info.Tier.String(),
		"cause":    info.Cause.String(),
		"file":     info.Location.File,
		"line":     strconv.Itoa(info.Location.Line),
		"function": info.Location.Function,
	}

	if component != "" {
		tags["component"] = component
	}

	for _, op := range info.Operands {
		tags["operand."+op.Name] = op.String()
	}

	return tags
}

// captureStack returns nil in production mode, where stack traces stay out
// of reports.
func captureStack() []byte {
	if runtime.IsProductionMode() {
		return nil
	}

	return debug.Stack()
}

// String renders info for diagnostics.
func (info ViolationInfo) String() string {
	if info.Cause == CauseNone {
		return fmt.Sprintf("%s [%s] at %s: %s", info.Kind, info.Tier, info.Location, info.Message)
	}

	return fmt.Sprintf("%s [%s, %s] at %s: %s", info.Kind, info.Tier, info.Cause, info.Location, info.Message)
}
