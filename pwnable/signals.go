package pwnable

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pwnableharness/pwnableharness/internal/logging"
)

// InstallReaper arranges for terminated worker children to be reaped
// automatically, without the listener ever calling wait(2) itself. Ignoring
// SIGCHLD opts into that behavior on Linux; forked workers never become
// zombies even though the listener's accept loop never blocks on them.
func InstallReaper() {
	signal.Ignore(syscall.SIGCHLD)
}

// InstallTerminateHandler arranges for SIGTERM to log a shutdown line on log
// and exit the process. It runs the notification in a background goroutine
// and returns immediately; the listener's accept loop keeps running until
// the signal actually arrives.
func InstallTerminateHandler(log *logging.Logger) {
	chSignal := make(chan os.Signal, 1)
	signal.Notify(chSignal, syscall.SIGTERM)

	go func() {
		sig := <-chSignal
		log.Info("terminating on SIGTERM", nil)
		os.Exit(int(sig.(syscall.Signal)))
	}()
}
