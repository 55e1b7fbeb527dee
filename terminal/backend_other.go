//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"errors"
	"os"
	"time"
)

var errNoTTY = errors.New("tty backend not supported on this platform")

type noTTYBackend struct{}

func newTTYBackend(in, out *os.File) Backend {
	return noTTYBackend{}
}

func (noTTYBackend) Init() error { return errNoTTY }
func (noTTYBackend) Fini() {}
func (noTTYBackend) Size() (int, int) { return 80, 24 }
func (noTTYBackend) Write(p []byte) (int, error) { return 0, errNoTTY }
func (noTTYBackend) Read(time.Duration) ([]byte, error) { return nil, errNoTTY }
