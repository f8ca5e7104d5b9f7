package pwnable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pwnableharness/pwnableharness/pwnable"
)

func TestResolveAccountUnknown(t *testing.T) {
	_, err := pwnable.ResolveAccount("no-such-pwnableharness-test-account")
	require.Error(t, err)
	require.True(t, errors.Is(err, pwnable.ErrUnknownAccount))
}

func TestResolveAccountKnown(t *testing.T) {
	// root is present in the account database on every POSIX system this
	// package targets, and resolving it requires no privilege.
	account, err := pwnable.ResolveAccount("root")
	require.NoError(t, err)
	require.Equal(t, uint32(0), account.UID)
	require.NotEmpty(t, account.Home)
}
