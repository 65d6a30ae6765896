package zap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	constant "github.com/LerianStudio/lib-safecore/safecore/constants"
	"github.com/LerianStudio/lib-safecore/safecore/contract"
	logpkg "github.com/LerianStudio/lib-safecore/safecore/log"
)

const callerSkipFrames = 1

// Environment controls the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config describes the logger that receives contract violation reports.
type Config struct {
	Environment Environment
	// Level is parsed with log.ParseLevel. Empty selects error in
	// production and staging, warn elsewhere, so Verify reports stay
	// visible while developing.
	Level string
	// Component is attached to every record. Leave contract.Config.Component
	// empty on checkers using this logger to avoid a duplicate key.
	Component string
	// OTelLibraryName scopes the otelzap bridge. Empty selects
	// constant.TelemetrySDKName.
	OTelLibraryName string
	// DisableOTelBridge skips the otelzap tee. Used by tests and by
	// processes that have no global logger provider.
	DisableOTelBridge bool
	// Output receives encoded records. Nil selects stderr.
	Output io.Writer
}

func (c Config) validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
}

func (c Config) development() bool {
	return c.Environment == EnvironmentDevelopment || c.Environment == EnvironmentLocal
}

// New builds the violation logger for cfg. Production and staging encode
// JSON, development and local a console line.
//
// Example:
//
//	logger, err := zap.New(zap.Config{Environment: zap.EnvironmentProduction, Component: "ledger"})
func New(cfg Config) (*Logger, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid zap config: %w", err)
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var core zapcore.Core = zapcore.NewCore(newEncoder(cfg), zapcore.AddSync(out), level)

	if !cfg.DisableOTelBridge {
		name := cfg.OTelLibraryName
		if strings.TrimSpace(name) == "" {
			name = constant.TelemetrySDKName
		}

		core = zapcore.NewTee(core, otelzap.NewCore(name))
	}

	built := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(callerSkipFrames))
	if cfg.Component != "" {
		built = built.With(zap.String("component", cfg.Component))
	}

	return &Logger{logger: built, atomicLevel: level}, nil
}

// InstallContractLogger builds the logger for cfg and makes it the sink of
// the process-wide checker.
func InstallContractLogger(cfg Config) (*Logger, error) {
	logger, err := New(cfg)
	if err != nil {
		return nil, err
	}

	contract.SetLogger(logger)

	return logger, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) == "" {
		if cfg.development() {
			return zap.NewAtomicLevelAt(zapcore.WarnLevel), nil
		}

		return zap.NewAtomicLevelAt(zapcore.ErrorLevel), nil
	}

	parsed, err := logpkg.ParseLevel(cfg.Level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
	}

	return zap.NewAtomicLevelAt(toZapLevel(parsed)), nil
}

func newEncoder(cfg Config) zapcore.Encoder {
	if cfg.development() {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder

		return zapcore.NewConsoleEncoder(ec)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewJSONEncoder(ec)
}
