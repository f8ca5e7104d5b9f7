//go:build linux

package pwnable

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/pwnableharness/pwnableharness/internal/logging"
)

func TestTrimTrailingNewline(t *testing.T) {
	require.Equal(t, "hunter2", trimTrailingNewline("hunter2\n"))
	require.Equal(t, "hunter2", trimTrailingNewline("hunter2\r\n"))
	require.Equal(t, "hunter2", trimTrailingNewline("hunter2"))
	require.Equal(t, "", trimTrailingNewline(""))
}

func TestLogConnectionFormatsDottedQuad(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New()
	log.Redirect(&buf)

	peer := &unix.SockaddrInet4{Addr: [4]byte{203, 0, 113, 7}}
	logConnection(log, -1, peer)

	require.Contains(t, buf.String(), "Received connection from 203.0.113.7.")
}
