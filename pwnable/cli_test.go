package pwnable_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pwnableharness/pwnableharness/pwnable"
)

func TestMainHelpExitsNonZero(t *testing.T) {
	resetArgs := withArgs("pwnableharness", "--help")
	defer resetArgs()

	called := false
	status := pwnable.Main(pwnable.DefaultConfig(), func(sock int) { called = true })

	require.Equal(t, 1, status)
	require.False(t, called)
}

func TestMainUnknownFlagExitsNonZero(t *testing.T) {
	resetArgs := withArgs("pwnableharness", "--does-not-exist")
	defer resetArgs()

	called := false
	status := pwnable.Main(pwnable.DefaultConfig(), func(sock int) { called = true })

	require.Equal(t, 1, status)
	require.False(t, called)
}

func TestMainParsesFlagsAndRunsDirectly(t *testing.T) {
	resetArgs := withArgs("pwnableharness", "--no-chroot")
	defer resetArgs()

	called := false
	status := pwnable.Main(pwnable.DefaultConfig(), func(sock int) { called = true })

	require.Equal(t, 0, status)
	require.True(t, called)
}

func withArgs(args ...string) func() {
	orig := os.Args
	os.Args = args
	return func() { os.Args = orig }
}
