package contract

import (
	"path/filepath"
	goruntime "runtime"
	"strconv"
)

// Location identifies the call site of a check.
type Location struct {
	File     string
	Function string
	Line     int
}

// Here returns the location of its caller.
func Here() Location {
	return locationAt(2)
}

// Caller returns the location skip frames above the function calling
// Caller; Caller(0) is that function itself.
func Caller(skip int) Location {
	return locationAt(skip + 2)
}

func locationAt(depth int) Location {
	var pcs [1]uintptr

	// runtime.Callers counts itself as frame 0, runtime.Caller does not.
	if goruntime.Callers(depth+1, pcs[:]) == 0 {
		return Location{}
	}

	frame, _ := goruntime.CallersFrames(pcs[:]).Next()

	return Location{File: frame.File, Function: frame.Function, Line: frame.Line}
}

// IsZero reports whether the location is unknown.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Function == ""
}

// String renders the location as base-file:line.
func (l Location) String() string {
	if l.IsZero() {
		return "unknown"
	}

	return filepath.Base(l.File) + ":" + strconv.Itoa(l.Line)
}
