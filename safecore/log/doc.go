// Package log defines the logging interface used to report contract violations.
//
// The default sink is GoLogger, which writes sanitized single-line records to
// standard error through the standard library logger. Production services
// plug in the zap adapter instead, so violation reports share the service's
// structured log pipeline.
package log
