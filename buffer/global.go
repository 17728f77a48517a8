package buffer

import "sync"

var (
	globalMu   sync.Mutex
	globalHost Factory = Native{}
	global     *Compat
)

// Install sets the host of the process-wide Compat returned by Global.
// It reports false once Global has been called, the installed buffer
// type lives until the process exits.
func Install(host Factory) bool {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		return false
	}
	globalHost = host
	return true
}

// Global returns the process-wide Compat for code which can not get a
// Factory passed in. Prefer NewCompat where possible.
func Global() *Compat {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		global = NewCompat(globalHost)
	}
	return global
}
