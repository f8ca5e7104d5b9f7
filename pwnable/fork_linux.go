//go:build linux

package pwnable

import "golang.org/x/sys/unix"

// rawFork forks the calling process via clone(2) with no namespace or
// address-space sharing flags beyond SIGCHLD, which makes it behave exactly
// like fork(2) on every architecture Go supports, including ones (arm64)
// that dropped the dedicated fork syscall. Both the parent and the child
// return from this call; the caller distinguishes them the same way fork(2)
// callers always have, by checking whether the returned pid is zero.
//
// Ordinary Go code, including the runtime's own bookkeeping, keeps running
// in the child after this returns. That's intentional: the per-connection
// worker needs to run real Go logic (binding streams, dropping privileges,
// gating on a password) between the fork and the eventual exec, which
// os/exec's atomic fork-and-exec has no hook for.
func rawFork() (int, error) {
	pid, _, errno := unix.RawSyscall(unix.SYS_CLONE, uintptr(unix.SIGCHLD), 0, 0)
	if errno != 0 {
		return 0, wrap(ErrForkFailed, errno)
	}

	return int(pid), nil
}
