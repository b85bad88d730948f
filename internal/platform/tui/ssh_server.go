package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-willy/internal/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy"
	"github.com/vovakirdan/tui-willy/internal/games/willy/editor"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
	"github.com/vovakirdan/tui-willy/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.willy/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// LevelsDir is scanned for level files at the start of each session.
	// Empty means only the built-in level is offered.
	LevelsDir string

	// TickRate is the frame rate of remote games.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// LogOutput receives server logs. Nil means stderr.
	LogOutput io.Writer
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.willy/scores.db",
		TickRate:    30,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for Willy the Worm.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	loader *levels.Loader
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "willy-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}
	if cfg.LevelsDir != "" {
		srv.loader = levels.NewLoader(cfg.LevelsDir, logger.WithPrefix("willy-levels"))
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".willy", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
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

// sessionLevels returns the levels offered to a new session.
func (s *SSHServer) sessionLevels() []levels.Level {
	if s.loader == nil {
		return []levels.Level{levels.Builtin()}
	}
	lvls, err := s.loader.LoadAll()
	if err != nil {
		s.logger.Warn("could not load levels", "dir", s.config.LevelsDir, "error", err)
		return []levels.Level{levels.Builtin()}
	}
	out := []levels.Level{levels.Builtin()}
	for _, lvl := range lvls {
		if lvl.ID != levels.BuiltinID {
			out = append(out, lvl)
		}
	}
	return out
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewSessionModel(s.store, s.sessionLevels(), cfg, sshSession.User())
	s.logger.Debug("session model created", "session", model.ID(), "levels", len(model.levels))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionID identifies one connected player.
type SessionID string

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenLevels
	screenEditor
	screenScores
)

// SessionModel manages the full session flow: menu -> game, level
// picker, editor or scores -> menu. This is the top-level model used for
// SSH sessions. Child models end with tea.Quit; the session drops that
// command and switches screens instead.
type SessionModel struct {
	store     *storage.Store
	levels    []levels.Level
	current   levels.Level
	config    core.RuntimeConfig
	username  string
	sessionID SessionID
	screen    sessionScreen
	menu      MenuModel
	game      Model
	picker    LevelMenuModel
	editor    EditorModel
	scores    ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a new session model. The first level is selected.
func NewSessionModel(store *storage.Store, lvls []levels.Level, cfg core.RuntimeConfig, username string) SessionModel {
	if len(lvls) == 0 {
		lvls = []levels.Level{levels.Builtin()}
	}

	return SessionModel{
		store:     store,
		levels:    lvls,
		current:   lvls[0],
		config:    cfg,
		username:  username,
		sessionID: SessionID(fmt.Sprintf("%s-%d", username, time.Now().UnixNano())),
		menu:      NewMenuModel(cfg, lvls[0].Title()),
	}
}

// ID returns the session identifier.
func (m SessionModel) ID() SessionID {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenLevels:
		return m.updateLevels(msg)
	case screenEditor:
		return m.updateEditor(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu returns to the main menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config, m.current.Title())
	return m, m.menu.Init()
}

// quit ends the session.
func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	choice := ChoiceNone
	if m.menu.WantsScoreboard() {
		choice = ChoiceScores
	} else if sel := m.menu.Selected(); sel != nil {
		choice = sel.Choice
	}

	switch choice {
	case ChoicePlay:
		m.game = NewModel(willy.NewWithLevel(m.current), m.store, m.config, m.username)
		m.screen = screenGame
		return m, m.game.Init()

	case ChoiceLevels:
		m.picker = NewLevelMenuModel(m.levels, m.current.ID, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenLevels
		return m, m.picker.Init()

	case ChoiceEditor:
		// Remote editors cannot write files on the server
		m.editor = NewEditorModel(editor.New(), levels.Level{ID: "custom", Name: "Custom Level"}, "", m.config)
		m.screen = screenEditor
		return m, m.editor.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.store, willy.GameID, m.levels, m.current.ID, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gameModel, ok := next.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		return m.quit()
	}
	if m.game.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

// updateLevels handles updates in the level picker.
func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if picker, ok := next.(LevelMenuModel); ok {
		m.picker = picker
	}

	switch {
	case m.picker.IsQuitting():
		return m.quit()
	case m.picker.Selected() != nil:
		m.current = *m.picker.Selected()
		return m.toMenu()
	case m.picker.WantsBack():
		return m.toMenu()
	}
	return m, cmd
}

// updateEditor handles updates in the level editor.
func (m SessionModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.editor.Update(msg)
	if ed, ok := next.(EditorModel); ok {
		m.editor = ed
	}

	switch {
	case m.editor.IsQuitting():
		return m.quit()
	case m.editor.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// updateScores handles updates on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenLevels:
		return m.picker.View()
	case screenEditor:
		return m.editor.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Screen reports which screen the session shows, for tests.
func (m SessionModel) Screen() string {
	switch m.screen {
	case screenGame:
		return "game"
	case screenLevels:
		return "levels"
	case screenEditor:
		return "editor"
	case screenScores:
		return "scores"
	default:
		return "menu"
	}
}

// Current returns the selected level.
func (m SessionModel) Current() levels.Level {
	return m.current
}
