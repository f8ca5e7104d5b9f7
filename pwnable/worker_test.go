package pwnable_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pwnableharness/pwnableharness/pwnable"
)

func TestRunInvokesHandlerWhenMarkerPresent(t *testing.T) {
	os.Setenv("PWNABLE_CONNECTION", "42")
	defer os.Unsetenv("PWNABLE_CONNECTION")

	var got int
	var markerStillSet bool
	called := false

	status := pwnable.Run(pwnable.DefaultConfig(), func(sock int) {
		called = true
		got = sock
		_, markerStillSet = os.LookupEnv("PWNABLE_CONNECTION")
	})

	require.True(t, called)
	require.Equal(t, 42, got)
	require.Equal(t, 0, status)
	require.False(t, markerStillSet, "handler should not see PWNABLE_CONNECTION in its own environment")
}

func TestRunInvokesHandlerDirectlyWhenNotListening(t *testing.T) {
	os.Unsetenv("PWNABLE_CONNECTION")

	var got int
	called := false

	cfg := pwnable.DefaultConfig()
	cfg.Listen = false

	status := pwnable.Run(cfg, func(sock int) {
		called = true
		got = sock
	})

	require.True(t, called)
	require.Equal(t, 0, got)
	require.Equal(t, 0, status)
}

func TestRunRejectsMalformedMarker(t *testing.T) {
	os.Setenv("PWNABLE_CONNECTION", "not-a-number")
	defer os.Unsetenv("PWNABLE_CONNECTION")

	called := false
	status := pwnable.Run(pwnable.DefaultConfig(), func(sock int) {
		called = true
	})

	require.False(t, called)
	require.Equal(t, 1, status)
}
