package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// Violation messages embed file paths and function names taken from the
// call stack, so a crafted symbol name must not be able to forge records.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// GoLogger writes one line per record through the standard library logger.
//
// It is the fallback report sink used before a structured logger is
// configured. All strings are sanitized (CWE-117) except an explicitly
// multi-line stack field, which is emitted as a trailing block.
type GoLogger struct {
	out    *stdlog.Logger
	fields []Field
	group  string
	Level  Level
}

// NewGoLogger creates a GoLogger writing to w at the given level.
// A nil writer selects standard error.
func NewGoLogger(w io.Writer, level Level) *GoLogger {
	if w == nil {
		w = os.Stderr
	}

	return &GoLogger{
		out:   stdlog.New(w, "", stdlog.LstdFlags|stdlog.LUTC),
		Level: level,
	}
}

// NewStderr creates a GoLogger writing error-level records to standard error.
func NewStderr() *GoLogger {
	return NewGoLogger(os.Stderr, LevelError)
}

// Enabled reports whether records at level are emitted.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Log formats and writes a single record.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	l.writer().Print(l.hydrate(level, msg, fields))
}

// With returns a child logger that prefixes every record with fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return NewStderr().With(fields...)
	}

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)

	return &GoLogger{out: l.out, fields: merged, group: l.group, Level: l.Level}
}

// WithGroup returns a child logger whose subsequent field keys are prefixed with name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return NewStderr().WithGroup(name)
	}

	group := name
	if l.group != "" {
		group = l.group + "." + name
	}

	return &GoLogger{out: l.out, fields: l.fields, group: group, Level: l.Level}
}

// Sync is a no-op; the standard logger writes synchronously.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) writer() *stdlog.Logger {
	if l.out == nil {
		return stdlog.Default()
	}

	return l.out
}

func (l *GoLogger) hydrate(level Level, msg string, fields []Field) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s] %s", level.String(), sanitizeLogString(msg))

	var stack string

	all := make([]Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)

	for _, f := range all {
		if f.Key == "stack" {
			stack = fmt.Sprint(f.Value)
			continue
		}

		key := f.Key
		if l.group != "" {
			key = l.group + "." + key
		}

		fmt.Fprintf(&sb, " %s=%s", sanitizeLogString(key), sanitizeLogString(fmt.Sprint(f.Value)))
	}

	if stack != "" {
		sb.WriteString("\nstack trace:\n")
		sb.WriteString(stack)
	}

	return sb.String()
}
