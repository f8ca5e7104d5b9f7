package pwnable

import (
	"os"
	"strconv"

	"github.com/pwnableharness/pwnableharness/internal/logging"
)

// disableStdioBuffering is a documented no-op: Go's os.File performs no
// userspace buffering of its own (unlike C's stdio, which the original
// harness had to unbuffer explicitly with setvbuf), so there is nothing for
// a worker to disable here. It is kept as a named step so the bootstrap
// sequence reads the same as the spec it implements.
func disableStdioBuffering() {}

// Run is the single entrypoint embedders call from main. It implements the
// worker bootstrap (§4.6): a re-exec'd or directly-invoked process checks
// the connection marker first and runs the registered handler; only a
// fresh, unmarked process started with cfg.Listen becomes the listener.
func Run(cfg ServerConfig, handler Handler) int {
	disableStdioBuffering()

	if raw, ok := os.LookupEnv(envMarker); ok {
		fd, err := strconv.Atoi(raw)
		if err != nil || fd < 0 {
			return 1
		}

		os.Unsetenv(envMarker)
		handler(fd)
		return 0
	}

	if !cfg.Listen {
		handler(0)
		return 0
	}

	log := logging.New()

	listener, err := NewListener(cfg, log)
	if err != nil {
		log.Error("listener setup failed", nil)
		return 1
	}

	if err := listener.Run(); err != nil {
		log.Error("listener setup failed", nil)
		return 1
	}

	return 0
}
