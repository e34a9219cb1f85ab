package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/star-hopper/internal/config"
	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/game"
	"github.com/vovakirdan/star-hopper/internal/registry"
	"github.com/vovakirdan/star-hopper/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.starhopper/host_key.
	HostKeyPath string

	// DBPath is the path to the run log database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// SetID is the level set every session plays.
	SetID string

	// Game is the physics and scoring configuration for every session.
	Game config.Config

	// TickRate is the simulation rate in ticks per second.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.starhopper/runs.db",
		IdleTimeout: 30 * time.Minute,
		SetID:       registry.DefaultSet,
		Game:        config.Default(),
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server. Every connection gets its own
// controller and session; only the run log is shared.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	online atomic.Int64

	closeOnce sync.Once
	closeErr  error
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starhopper-ssh",
	})

	if !registry.Exists(cfg.SetID) {
		return nil, fmt.Errorf("%w: %q", registry.ErrUnknownSet, cfg.SetID)
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".starhopper", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Open storage after the host key checks; later failures close it
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "star hopper needs an interactive terminal (ssh -t)")
		return nil, nil
	}

	set, err := registry.Get(s.config.SetID)
	if err != nil {
		s.logger.Error("cannot load level set", "set", s.config.SetID, "error", err)
		return nil, nil
	}

	playerLog := s.logger.With("user", sshSession.User())
	ctrl, err := game.New(set, s.config.Game, game.WithLogger(playerLog))
	if err != nil {
		s.logger.Error("cannot create controller", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewModel(ctrl, s.store, rt,
		WithPlayer(sshSession.User()),
		WithHoldTicks(s.config.Game.Input.HoldTicks),
		WithLogger(playerLog),
		WithRenderer(NewScreenRenderer(bubbletea.MakeRenderer(sshSession))),
	)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events with the number of players online.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		online := s.online.Add(1)
		start := time.Now()
		s.logger.Info("player joined",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"online", online,
		)
		next(sshSession)
		online = s.online.Add(-1)
		s.logger.Info("player left",
			"user", sshSession.User(),
			"played", time.Since(start).Round(time.Second),
			"online", online,
		)
	}
}

// Serve runs the SSH server until ctx is cancelled or the listener fails,
// then shuts it down gracefully.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "set", s.config.SetID)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("shutting down...")
	case err := <-errCh:
		if !errors.Is(err, ssh.ErrServerClosed) {
			serveErr = fmt.Errorf("ssh server: %w", err)
		}
	}

	if err := s.Shutdown(); err != nil && serveErr == nil {
		serveErr = err
	}
	return serveErr
}

// Shutdown gracefully stops the server and closes the run log.
func (s *SSHServer) Shutdown() error {
	s.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.closeErr = s.server.Shutdown(ctx)
		if s.store != nil {
			s.store.Close()
		}
	})
	return s.closeErr
}

// Online returns the number of connected players.
func (s *SSHServer) Online() int64 {
	return s.online.Load()
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
