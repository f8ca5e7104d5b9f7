//go:build linux

package pwnable

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// EnsureSuperuser requires the calling process to be able to act as root.
// It is called once, in the listener, before anything privileged happens.
func EnsureSuperuser() error {
	if err := unix.Setuid(0); err != nil {
		return wrap(ErrPrivilegeDenied, err)
	}

	if unix.Getuid() != 0 {
		return ErrPrivilegeDenied
	}

	return nil
}

// EnterJail chroots into account's home directory. The chdir/chroot/chdir
// ordering is load-bearing: the first chdir establishes the directory that
// becomes the new root, and the second, post-chroot chdir is mandatory
// because the working directory a process holds does not automatically
// track a chroot. It requires a self-nested copy of the home directory at
// $HOME/$HOME, a documented deployment contract rather than something this
// function tries to paper over.
func EnterJail(account AccountIdentity) error {
	if err := unix.Chdir(account.Home); err != nil {
		return wrap(ErrJailSetupFailed, err)
	}

	if err := unix.Chroot(account.Home); err != nil {
		return wrap(ErrJailSetupFailed, err)
	}

	if err := unix.Chdir(account.Home); err != nil {
		return wrap(ErrJailSetupFailed, err)
	}

	return nil
}

// DropPrivileges performs the one-way transition from superuser to
// account's uid/gid, clearing supplementary groups and then verifying the
// drop cannot be undone. On Linux, setuid(2) issued while still privileged
// resets the real, effective, and saved uid together, which is exactly
// what makes the trailing setuid(0) probe a valid irreversibility check.
//
// This is always called from the single surviving thread of a freshly
// forked worker, never from the listener's ordinary multithreaded process,
// so it issues bare SYS_SETGROUPS/SYS_SETGID/SYS_SETUID syscalls via
// RawSyscall instead of golang.org/x/sys/unix's Setgroups/Setgid/Setuid.
// Those higher-level wrappers coordinate the credential change across
// every OS thread the Go runtime believes it owns; in a raw-clone child
// that bookkeeping still lists the parent's threads, none of which exist
// in this process, so the all-thread wrappers would block forever waiting
// for acknowledgements that can never arrive. A single-thread raw syscall
// has no such peer to wait on and is exactly what setuid(2) needs here.
func DropPrivileges(account AccountIdentity) error {
	gid := account.GID
	if err := rawSetgroups([]uint32{gid}); err != nil {
		return wrap(ErrPrivilegeDropFailed, err)
	}

	if err := rawSetgid(gid); err != nil {
		return wrap(ErrPrivilegeDropFailed, err)
	}

	if err := rawSetuid(account.UID); err != nil {
		return wrap(ErrPrivilegeDropFailed, err)
	}

	if err := rawSetuid(0); err == nil {
		return wrap(ErrPrivilegeDropFailed, errUnexpectedRootRestore)
	}

	return nil
}

func rawSetuid(uid uint32) error {
	_, _, errno := unix.RawSyscall(unix.SYS_SETUID, uintptr(uid), 0, 0)
	if errno != 0 {
		return errno
	}

	return nil
}

func rawSetgid(gid uint32) error {
	_, _, errno := unix.RawSyscall(unix.SYS_SETGID, uintptr(gid), 0, 0)
	if errno != 0 {
		return errno
	}

	return nil
}

func rawSetgroups(gids []uint32) error {
	_, _, errno := unix.RawSyscall(unix.SYS_SETGROUPS, uintptr(len(gids)), uintptr(unsafe.Pointer(&gids[0])), 0)
	if errno != 0 {
		return errno
	}

	return nil
}
