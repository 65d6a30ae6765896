package contract

import (
	"context"
	"reflect"

	"github.com/LerianStudio/lib-safecore/safecore/log"
	"github.com/LerianStudio/lib-safecore/safecore/runtime"
)

// Config is the policy of a Checker.
type Config struct {
	// Level selects the active tiers.
	Level BuildLevel
	// ContinueOnViolation makes a failed check return after the handler
	// instead of escalating to the default handler.
	ContinueOnViolation bool
	// StrictSafetyCompliance makes the default handler panic with
	// *ViolationError instead of terminating the process.
	StrictSafetyCompliance bool
	// Logger receives violation reports. Nil selects a stderr GoLogger.
	Logger log.Logger
	// Context carries the span violations are recorded on.
	Context context.Context
	// Component labels metrics and reports.
	Component string
	// Exit terminates the process. Nil selects runtime.Terminate.
	Exit func(code int)
}

// DefaultConfig returns the policy compiled into this binary through build tags.
func DefaultConfig() Config {
	return Config{
		Level:                  ActiveLevel,
		ContinueOnViolation:    ContinueOnViolation,
		StrictSafetyCompliance: StrictSafetyCompliance,
	}
}

func (cfg *Config) normalize() {
	if isNil(cfg.Logger) {
		cfg.Logger = log.NewStderr()
	}

	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	if cfg.Exit == nil {
		cfg.Exit = runtime.Terminate
	}
}

// isNil handles typed-nil loggers stored in the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
