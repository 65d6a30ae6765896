package runtime

import (
	"os"
	"sync"
)

var (
	exitFunc   = os.Exit
	exitFuncMu sync.RWMutex
)

// Terminate ends the process with code. It does not run deferred functions.
//
// Tests replace the primitive through SetExitFunc; a replacement that
// returns makes Terminate return too, so callers that must not continue
// have to guard against that themselves.
func Terminate(code int) {
	exitFuncMu.RLock()
	exit := exitFunc
	exitFuncMu.RUnlock()

	exit(code)
}

// SetExitFunc replaces the termination primitive and returns a function
// restoring the previous one. Passing nil restores os.Exit.
func SetExitFunc(fn func(code int)) (restore func()) {
	exitFuncMu.Lock()
	defer exitFuncMu.Unlock()

	previous := exitFunc

	if fn == nil {
		fn = os.Exit
	}

	exitFunc = fn

	return func() {
		exitFuncMu.Lock()
		defer exitFuncMu.Unlock()

		exitFunc = previous
	}
}
