//go:build !linux

package pwnable

import "github.com/pwnableharness/pwnableharness/internal/logging"

// Listener is unsupported outside Linux builds; the fork/exec/chroot
// primitives it composes are all Linux-specific syscalls.
type Listener struct{}

// NewListener is unsupported outside Linux builds.
func NewListener(cfg ServerConfig, log *logging.Logger) (*Listener, error) {
	return nil, wrap(ErrListenerSetupFailed, errUnsupportedPlatform)
}

// Run is unsupported outside Linux builds.
func (s *Listener) Run() error {
	return wrap(ErrListenerSetupFailed, errUnsupportedPlatform)
}
