package terminal

import "time"

// Backend abstracts the tty underneath an ANSIConsole opened with OpenTTY
type Backend interface {
	// Init enters raw mode
	Init() error

	// Fini restores the saved tty state. Safe to call multiple times
	Fini()

	// Size returns the tty dimensions
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available or timeout elapses; a timeout returns nil, nil
	Read(timeout time.Duration) ([]byte, error)
}
