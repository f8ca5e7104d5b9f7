package pwnable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pwnableharness/pwnableharness/pwnable"
)

func TestDefaultConfig(t *testing.T) {
	cfg := pwnable.DefaultConfig()

	require.False(t, cfg.Listen)
	require.Equal(t, 0, cfg.AlarmSeconds)
	require.False(t, cfg.NoChroot)
	require.EqualValues(t, 65001, cfg.Port)
	require.Equal(t, "nobody", cfg.User)
	require.Empty(t, cfg.InjectLib)
	require.Empty(t, cfg.ExecProgram)
	require.Empty(t, cfg.Password)
}
