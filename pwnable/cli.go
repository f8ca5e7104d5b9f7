package pwnable

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cmdGlobal carries the parsed command-line surface into a ServerConfig,
// following the root-command-plus-global-flag-struct shape the teacher's
// own lxd-user/lxd-agent binaries use.
type cmdGlobal struct {
	cfg ServerConfig
}

// Main is the entrypoint an embedding binary's func main calls. defaults
// seeds the flag values; handler is the registered connection handler.
// Unlike cobra's own default behavior, -h/--help and an unknown flag both
// print usage to stdout and return a non-zero status, matching the
// harness's documented exit-code contract instead of cobra's zero-exit
// help path.
func Main(defaults ServerConfig, handler Handler) int {
	g := &cmdGlobal{cfg: defaults}

	app := &cobra.Command{
		Use:           "pwnableharness",
		Short:         "Forking TCP front end for pwnable challenge binaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	app.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}
	app.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(os.Stdout, cmd.UsageString())
	})

	flags := app.PersistentFlags()
	flags.BoolVarP(&g.cfg.Listen, "listen", "l", defaults.Listen, "Enable the listener; without this, run the challenge once directly")
	flags.IntVarP(&g.cfg.AlarmSeconds, "alarm", "a", defaults.AlarmSeconds, "Per-worker wall-clock limit in seconds, 0 disables")
	flags.BoolVar(&g.cfg.NoChroot, "no-chroot", defaults.NoChroot, "Skip the chroot jail step")
	flags.Uint16VarP(&g.cfg.Port, "port", "p", defaults.Port, "Listening TCP port")
	flags.StringVarP(&g.cfg.User, "user", "u", defaults.User, "POSIX account workers run as")
	flags.StringVarP(&g.cfg.InjectLib, "inject", "i", defaults.InjectLib, "Preload library exported to exec'd challenges")
	flags.StringVarP(&g.cfg.ExecProgram, "exec", "e", defaults.ExecProgram, "Exec this program per worker instead of re-exec'ing self")
	flags.StringVarP(&g.cfg.Password, "password", "k", defaults.Password, "Require this password at connection start, or _ to disable")

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stdout, app.UsageString())
		return 1
	}

	if app.Flags().Changed("help") {
		return 1
	}

	return Run(g.cfg, handler)
}
