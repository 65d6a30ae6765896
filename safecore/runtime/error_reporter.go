package runtime

import (
	"context"
	"sync"
)

// ErrorReporter forwards fatal contract violations to an external error
// tracking service before the process terminates.
//
// Implementations should:
//   - Handle nil contexts gracefully
//   - Be safe for concurrent use
//   - Not panic themselves
//   - Return promptly; the process exits right after the call
type ErrorReporter interface {
	// CaptureException reports err. tags carry kind, tier, cause and location.
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	errorReporterInstance ErrorReporter
	errorReporterMu       sync.RWMutex
)

// SetErrorReporter configures the global error reporter. Pass nil to disable.
// Call once during startup, before any concurrent checking begins.
func SetErrorReporter(reporter ErrorReporter) {
	errorReporterMu.Lock()
	defer errorReporterMu.Unlock()

	errorReporterInstance = reporter
}

// GetErrorReporter returns the configured error reporter or nil.
func GetErrorReporter() ErrorReporter {
	errorReporterMu.RLock()
	defer errorReporterMu.RUnlock()

	return errorReporterInstance
}

const maxStackLen = 4096

// ReportFatal hands err to the configured reporter, if any. The stack is
// attached (truncated) outside production mode only.
func ReportFatal(ctx context.Context, err error, tags map[string]string, stack []byte) {
	reporter := GetErrorReporter()
	if reporter == nil {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	merged := make(map[string]string, len(tags)+1)
	for k, v := range tags {
		merged[k] = v
	}

	if len(stack) > 0 && !IsProductionMode() {
		stackStr := string(stack)
		if len(stackStr) > maxStackLen {
			stackStr = stackStr[:maxStackLen] + "\n...[truncated]"
		}

		merged["stack_trace"] = stackStr
	}

	reporter.CaptureException(ctx, err, merged)
}

var (
	productionMode   bool
	productionModeMu sync.RWMutex
)

// SetProductionMode enables or disables production mode.
// In production mode stack traces are left out of violation reports.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}
