//go:build unix

package engine

import (
	"os"

	"golang.org/x/sys/unix"
)

// sessionSignals are the process signals a session owns while active:
// window size changes plus the interrupt/terminate pair.
var sessionSignals = []os.Signal{unix.SIGWINCH, unix.SIGINT, unix.SIGTERM}

// isResizeSignal splits the resize flag from the exit flags.
func isResizeSignal(sig os.Signal) bool {
	return sig == unix.SIGWINCH
}
