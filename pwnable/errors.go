package pwnable

import "github.com/pkg/errors"

// Sentinel errors for the taxonomy the connection lifecycle state machine
// can produce. Callers should compare against these with errors.Is; the
// concrete error returned from a failing operation pairs one of these with
// the underlying syscall or lookup failure via wrap.
var (
	ErrConfig                = errors.New("config error")
	ErrPrivilegeDenied       = errors.New("privilege denied")
	ErrUnknownAccount        = errors.New("unknown account")
	ErrJailSetupFailed       = errors.New("jail setup failed")
	ErrListenerSetupFailed   = errors.New("listener setup failed")
	ErrStdioRelocationFailed = errors.New("stdio relocation failed")
	ErrStdioRedirectFailed   = errors.New("stdio redirect failed")
	ErrPrivilegeDropFailed   = errors.New("privilege drop failed")
	ErrPasswordRejected      = errors.New("password rejected")
	ErrForkFailed            = errors.New("fork failed")
)

// errUnexpectedRootRestore is the cause wrapped into ErrPrivilegeDropFailed
// when a dropped process can still reacquire uid 0, which would mean the
// drop never actually took effect.
var errUnexpectedRootRestore = errors.New("root privileges were restored after being dropped")

// wrap attaches cause to sentinel, or returns sentinel unchanged if cause is
// nil. The result satisfies errors.Is against both sentinel and cause, and
// errors.Unwrap descends into cause, which carries a pkg/errors stack trace
// for diagnostics.
func wrap(sentinel error, cause error) error {
	if cause == nil {
		return sentinel
	}

	return &sentinelError{sentinel: sentinel, cause: errors.WithStack(cause)}
}

// sentinelError pairs a taxonomy sentinel with the syscall or lookup
// failure that triggered it, so callers can both match on the sentinel with
// errors.Is and print the underlying cause.
type sentinelError struct {
	sentinel error
	cause    error
}

func (e *sentinelError) Error() string {
	return e.sentinel.Error() + ": " + e.cause.Error()
}

func (e *sentinelError) Unwrap() error {
	return e.cause
}

func (e *sentinelError) Is(target error) bool {
	return target == e.sentinel
}
