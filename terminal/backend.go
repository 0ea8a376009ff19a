package terminal

// Backend abstracts platform-specific terminal access: raw mode entry and
// restoration, size queries, and raw I/O. The session layer owns signal
// handling and sequencing; a Backend only touches the device.
type Backend interface {
	// Init enters raw mode, saving the prior termios state.
	Init() error

	// Fini restores the termios state saved by Init. Safe to call when
	// Init never ran or failed.
	Fini()

	// Size queries the current terminal dimensions.
	Size() (cols, rows int, err error)

	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs. A nil slice with nil error is a poll timeout
	// or a closed stop channel; zero-length reads signal EOF via io.EOF.
	Read(stop <-chan struct{}) ([]byte, error)
}
