//go:build linux

package pwnable

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/pwnableharness/pwnableharness/internal/logging"
)

const acceptBacklog = 128

// Listener runs the privileged front end: it binds the configured port,
// saves the operator's terminal streams, and forks a fresh worker for every
// accepted connection. It never itself runs challenge code.
type Listener struct {
	cfg     ServerConfig
	log     *logging.Logger
	account AccountIdentity
	saved   *SavedStdio
	sock    int
}

// NewListener resolves the configured worker account and builds a Listener
// ready for Run. It does not touch privileges or the network yet.
func NewListener(cfg ServerConfig, log *logging.Logger) (*Listener, error) {
	account, err := ResolveAccount(cfg.User)
	if err != nil {
		return nil, err
	}

	return &Listener{cfg: cfg, log: log, account: account, sock: -1}, nil
}

// Run drives the listener state machine: INIT -> PRIV_OK -> JAILED? ->
// SIGNALS -> BOUND -> LISTENING -> ACCEPT_LOOP. It returns only on a setup
// failure; once the accept loop starts, it runs until the terminate-signal
// handler calls os.Exit.
func (s *Listener) Run() error {
	if err := EnsureSuperuser(); err != nil {
		return err
	}

	if !s.cfg.NoChroot {
		if err := EnterJail(s.account); err != nil {
			return err
		}
	}

	InstallReaper()
	InstallTerminateHandler(s.log)

	sock, err := s.bind()
	if err != nil {
		return err
	}
	s.sock = sock

	if err := unix.Listen(s.sock, acceptBacklog); err != nil {
		unix.Close(s.sock)
		return wrap(ErrListenerSetupFailed, err)
	}

	saved, err := SaveStandardStreams()
	if err != nil {
		unix.Close(s.sock)
		return err
	}
	s.saved = saved
	s.log.Redirect(s.saved.Stderr)

	s.log.Protocolf("Server PID: %d\n", unix.Getpid())
	s.log.Protocolf("Now accepting connections on port %d (0x%04x)\n", s.cfg.Port, s.cfg.Port)

	s.acceptLoop()
	return nil
}

func (s *Listener) bind() (int, error) {
	sock, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, wrap(ErrListenerSetupFailed, err)
	}

	if err := unix.SetsockoptInt(sock, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(sock)
		return -1, wrap(ErrListenerSetupFailed, err)
	}

	addr := &unix.SockaddrInet4{Port: int(s.cfg.Port)}
	if err := unix.Bind(sock, addr); err != nil {
		unix.Close(sock)
		return -1, wrap(ErrListenerSetupFailed, err)
	}

	return sock, nil
}

// acceptLoop blocks in accept and hands each connection to the dispatcher.
// A transient accept failure is logged and the loop continues; it never
// exits on its own and never closes the listening socket.
func (s *Listener) acceptLoop() {
	for {
		connFD, sa, err := unix.Accept(s.sock)
		if err != nil {
			if err == unix.EINTR {
				continue
			}

			s.log.Warn("accept failed", logrus.Fields{"error": err.Error()})
			continue
		}

		dispatch(s.cfg, s.log, s.account, s.saved, s.sock, connFD, sa)
	}
}
