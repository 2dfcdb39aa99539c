package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
	"github.com/vovakirdan/zone-arcade/internal/registry"
	"github.com/vovakirdan/zone-arcade/internal/storage"
)

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger. Logs must not go to the terminal the game draws on.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithConfigWatch restarts the run whenever the watcher reports a change
// and check accepts the new configuration.
func WithConfigWatch(w *config.Watcher, check func() error) ModelOption {
	return func(m *Model) {
		m.watcher = w
		m.checkConfig = check
	}
}

// WithBackToMenu lets Back leave a finished or paused game instead of pausing.
func WithBackToMenu() ModelOption {
	return func(m *Model) {
		m.menuExit = true
	}
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *heldKeys
	keyMapper *KeyMapper
	gameState core.GameState
	log       *log.Logger

	watcher     *config.Watcher
	checkConfig func() error

	menuExit   bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      newHeldKeys(holdTicks(cfg.TickRate)),
		keyMapper: NewKeyMapper(),
		log:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// configChangedMsg reports that a watched config file changed.
type configChangedMsg struct{ path string }

// configWatchErrMsg reports a watcher failure.
type configWatchErrMsg struct{ err error }

func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configWatchErrMsg{err: err}
		}
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case configChangedMsg:
		return m.handleConfigChange(msg.path)

	case configWatchErrMsg:
		m.log.Warn("config watcher error", "err", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.menuExit && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, nil
		}
		if !m.gameState.GameOver {
			action = core.ActionPause
		}
	}
	m.keys.Press(action)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	frame := m.keys.Frame()

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	// Record the run once it ends
	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.keys.Reset()
}

func (m Model) handleConfigChange(path string) (tea.Model, tea.Cmd) {
	next := waitForConfig(m.watcher)
	if m.checkConfig != nil {
		if err := m.checkConfig(); err != nil {
			m.log.Warn("config change rejected", "path", path, "err", err)
			return m, next
		}
	}
	m.log.Info("config reloaded, restarting run", "path", path)
	m.restart()
	return m, next
}

// recordRun saves the score and, when the game reports one, the run summary.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}
	gameID := m.game.ID()
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(gameID, m.gameState.Score); err != nil {
			m.log.Error("save score failed", "game", gameID, "err", err)
		}
	}
	if rr, ok := m.game.(registry.RunReporter); ok {
		sum := rr.RunSummary()
		runID, err := m.store.SaveRun(gameID, rr.SessionID(), sum)
		if err != nil {
			m.log.Error("save run failed", "game", gameID, "err", err)
			return
		}
		m.log.Info("run recorded", "game", gameID, "run", runID, "score", sum.Score, "outcome", sum.Outcome)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".zonearcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
