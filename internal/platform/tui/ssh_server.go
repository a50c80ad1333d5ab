package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// shutdownGrace bounds how long Serve waits for open sessions on shutdown.
const shutdownGrace = 10 * time.Second

// SSHServer serves the pathfinder over SSH with Wish.
// The store is shared by all sessions and owned by the caller.
type SSHServer struct {
	config config.Config
	server *ssh.Server
	store  *storage.Store
	loader *layout.Loader
	logger *log.Logger
}

// NewSSHServer creates a server from the server section of cfg.
// An empty host key path defaults to ~/.pathfinder/host_key.
func NewSSHServer(cfg config.Config, store *storage.Store, loader *layout.Loader, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pathfinder-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		loader: loader,
		logger: logger,
	}

	hostKeyPath := cfg.Server.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = config.UserPath("host_key")
	}
	hostKeyPath, err := config.ExpandHome(hostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve host key path: %w", err)
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Server.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if cfg.Server.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.Server.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
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
		return nil, nil
	}

	rt := core.DefaultConfig()
	rt.ScreenW = pty.Window.Width
	rt.ScreenH = pty.Window.Height
	rt.FPS = s.config.UI.FPS

	sessionLogger := s.logger.With("user", sshSession.User())
	model := NewSessionModel(s.config, s.store, s.loader, sessionLogger, rt)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		began := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(began).Round(time.Second),
		)
	}
}

// Serve accepts sessions until ctx is cancelled, then drains them for up
// to shutdownGrace.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Server.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "grace", shutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Server.Address
}

// sessionScreen is the part of a session currently shown.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenVisualizer
	screenHistory
)

// SessionModel drives one user through menu -> visualizer -> menu, with the
// run history reachable from the menu.
type SessionModel struct {
	cfg        config.Config
	store      *storage.Store
	loader     *layout.Loader
	logger     *log.Logger
	runtime    core.RuntimeConfig
	current    sessionScreen
	menu       MenuModel
	visualizer VisualizerModel
	history    HistoryModel
	splashSeen bool
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(cfg config.Config, store *storage.Store, loader *layout.Loader, logger *log.Logger, rt core.RuntimeConfig) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		cfg:     cfg,
		store:   store,
		loader:  loader,
		logger:  logger,
		runtime: rt,
		menu:    NewMenuModel(store, loader, logger, rt),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.current {
	case screenVisualizer:
		return m.updateVisualizer(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.current = screenHistory
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		return m.openVisualizer(*m.menu.Selected())
	}

	return m, cmd
}

// openVisualizer builds the selected grid and switches to the visualizer.
func (m SessionModel) openVisualizer(src Source) (tea.Model, tea.Cmd) {
	g, err := src.Grid(m.cfg, m.store, m.loader)
	if err != nil {
		m.logger.Warn("cannot open grid", "source", src.ID, "error", err)
		m.menu = NewMenuModel(m.store, m.loader, m.logger, m.runtime).WithNotice(err.Error())
		return m, nil
	}

	cfg := m.cfg
	if m.splashSeen {
		cfg.Splash.Enabled = false
	}
	m.splashSeen = true

	m.logger.Debug("visualizer opened", "source", src.ID, "kind", src.Kind)
	m.visualizer = NewVisualizerModel(VisualizerOptions{
		Config: cfg,
		Store:  m.store,
		Loader: m.loader,
		Logger: m.logger,
		Grid:   g,
		Source: src.ID,
		Width:  m.runtime.ScreenW,
		Height: m.runtime.ScreenH,
	})
	m.current = screenVisualizer
	return m, m.visualizer.Init()
}

// updateVisualizer handles updates when the visualizer is shown.
func (m SessionModel) updateVisualizer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.visualizer.Update(msg)
	if vm, ok := newModel.(VisualizerModel); ok {
		m.visualizer = vm
	}

	if m.visualizer.BackToMenu() {
		return m.backToMenu()
	}
	if m.visualizer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// updateHistory handles updates when the history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if hm, ok := newModel.(HistoryModel); ok {
		m.history = hm
	}

	if m.history.IsGoingBack() {
		return m.backToMenu()
	}
	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// backToMenu rebuilds the menu so newly saved layouts show up.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.store, m.loader, m.logger, m.runtime)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenVisualizer:
		return m.visualizer.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}
