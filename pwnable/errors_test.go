package pwnable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapNilCause(t *testing.T) {
	require.Equal(t, ErrPrivilegeDropFailed, wrap(ErrPrivilegeDropFailed, nil))
}

func TestWrapPreservesSentinel(t *testing.T) {
	cause := errors.New("setuid: operation not permitted")
	err := wrap(ErrPrivilegeDropFailed, cause)

	require.Error(t, err)
	require.True(t, errors.Is(err, ErrPrivilegeDropFailed))
	require.Contains(t, err.Error(), "setuid")
}
