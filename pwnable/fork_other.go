//go:build !linux

package pwnable

// rawFork is unsupported outside Linux builds.
func rawFork() (int, error) {
	return 0, wrap(ErrForkFailed, errUnsupportedPlatform)
}
