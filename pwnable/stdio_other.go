//go:build !linux

package pwnable

import "os"

// SavedStdio holds the listener's original standard streams.
type SavedStdio struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// SaveStandardStreams is unsupported outside Linux builds.
func SaveStandardStreams() (*SavedStdio, error) {
	return nil, wrap(ErrStdioRelocationFailed, errUnsupportedPlatform)
}

// Close is a no-op on unsupported platforms.
func (s *SavedStdio) Close() {}

// BindStreamsToSocket is unsupported outside Linux builds.
func BindStreamsToSocket(sock int) error {
	return wrap(ErrStdioRedirectFailed, errUnsupportedPlatform)
}
