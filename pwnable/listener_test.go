//go:build linux

package pwnable_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pwnableharness/pwnableharness/internal/logging"
	"github.com/pwnableharness/pwnableharness/pwnable"
)

// TestNewListenerResolvesAccount checks that NewListener resolves the
// configured worker account and returns a Listener. It does not call Run,
// so nothing is bound or accepted. It is skipped unless running as root.
func TestNewListenerResolvesAccount(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("runs only as root")
	}

	cfg := pwnable.DefaultConfig()
	cfg.Listen = true
	cfg.NoChroot = true
	cfg.Port = 0

	log := logging.New()
	listener, err := pwnable.NewListener(cfg, log)
	require.NoError(t, err)
	require.NotNil(t, listener)
}
