//go:build linux

package pwnable

import (
	"os"

	"golang.org/x/sys/unix"
)

// SavedStdio holds the listener's original standard streams, duplicated to
// fresh descriptors and kept open so operator-visible logging survives the
// listener handing fds 0/1/2 over to worker sockets.
type SavedStdio struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// SaveStandardStreams duplicates fds 0/1/2 to fresh descriptors, wraps them
// as *os.File, and closes the original slots so they're free to be
// reassigned to accepted sockets. It must be called exactly once, in the
// listener, after the socket is already listening but before the accept
// loop starts.
func SaveStandardStreams() (*SavedStdio, error) {
	dup := func(fd int, name string) (*os.File, error) {
		newFd, err := unix.Dup(fd)
		if err != nil {
			return nil, err
		}

		return os.NewFile(uintptr(newFd), name), nil
	}

	in, err := dup(unix.Stdin, "saved-stdin")
	if err != nil {
		return nil, wrap(ErrStdioRelocationFailed, err)
	}

	out, err := dup(unix.Stdout, "saved-stdout")
	if err != nil {
		in.Close()
		return nil, wrap(ErrStdioRelocationFailed, err)
	}

	errFile, err := dup(unix.Stderr, "saved-stderr")
	if err != nil {
		in.Close()
		out.Close()
		return nil, wrap(ErrStdioRelocationFailed, err)
	}

	if err := unix.Close(unix.Stdin); err != nil {
		in.Close()
		out.Close()
		errFile.Close()
		return nil, wrap(ErrStdioRelocationFailed, err)
	}

	if err := unix.Close(unix.Stdout); err != nil {
		in.Close()
		out.Close()
		errFile.Close()
		return nil, wrap(ErrStdioRelocationFailed, err)
	}

	if err := unix.Close(unix.Stderr); err != nil {
		in.Close()
		out.Close()
		errFile.Close()
		return nil, wrap(ErrStdioRelocationFailed, err)
	}

	return &SavedStdio{Stdin: in, Stdout: out, Stderr: errFile}, nil
}

// Close releases the saved descriptors. Workers call this right before
// control transfer; they no longer need the saved streams once they've
// dropped privileges and passed the password gate.
func (s *SavedStdio) Close() {
	s.Stdin.Close()
	s.Stdout.Close()
	s.Stderr.Close()
}

// BindStreamsToSocket duplicates sock onto fds 0, 1, and 2. It is called in
// each worker, after fork and before the privilege drop, so the challenge
// code that eventually runs sees the client connection as its terminal.
func BindStreamsToSocket(sock int) error {
	if err := unix.Dup2(sock, unix.Stdin); err != nil {
		return wrap(ErrStdioRedirectFailed, err)
	}

	if err := unix.Dup2(sock, unix.Stdout); err != nil {
		unix.Close(unix.Stdin)
		return wrap(ErrStdioRedirectFailed, err)
	}

	if err := unix.Dup2(sock, unix.Stderr); err != nil {
		unix.Close(unix.Stdin)
		unix.Close(unix.Stdout)
		return wrap(ErrStdioRedirectFailed, err)
	}

	return nil
}
