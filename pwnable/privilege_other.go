//go:build !linux

package pwnable

import "github.com/pkg/errors"

var errUnsupportedPlatform = errors.New("pwnable: privilege operations require linux")

// EnsureSuperuser is unsupported outside Linux builds.
func EnsureSuperuser() error {
	return wrap(ErrPrivilegeDenied, errUnsupportedPlatform)
}

// EnterJail is unsupported outside Linux builds.
func EnterJail(account AccountIdentity) error {
	return wrap(ErrJailSetupFailed, errUnsupportedPlatform)
}

// DropPrivileges is unsupported outside Linux builds.
func DropPrivileges(account AccountIdentity) error {
	return wrap(ErrPrivilegeDropFailed, errUnsupportedPlatform)
}
