package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model running one snake game.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	status     snake.Status
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	err        error
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for the given game and resets the game to the
// terminal size. A nil logger discards log output.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
	}

	w, gameH := m.gameArea()
	m.screen = core.NewScreen(w, gameH)
	rc := cfg
	rc.ScreenH = gameH
	game.Reset(rc)
	if err := game.Err(); err != nil {
		logger.Error("cannot start game", "err", err)
		m.err = err
		m.quitting = true
		return m
	}
	m.gameState = game.State()
	m.status = game.Engine().Status()

	logger.Debug("game ready", "title", game.Title(), "seed", cfg.Seed, "fps", cfg.TickRate)
	return m
}

// WithBack enables the back-to-menu binding, used by SSH sessions.
func (m Model) WithBack() Model {
	m.keys.Back.SetEnabled(true)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues translated actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.config.ScreenW, m.config.ScreenH)

	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused || m.status == snake.StatusNotStarted {
			m.backToMenu = true
		}
		return m, nil
	}

	action, isQuit := m.keys.Translate(msg)
	if isQuit {
		m.logger.Info("quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	// Unknown keys translate to ActionNone, which Set ignores
	m.inputFrame.Set(action)

	return m, nil
}

// handleResize resizes the screen; the game holds while the area is too small.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width

	w, gameH := m.gameArea()
	m.screen.Resize(w, gameH)
	m.game.SetScreenSize(w, gameH)

	return m, nil
}

// gameArea returns the screen size left for the game below the help bar.
func (m Model) gameArea() (w, h int) {
	return m.config.ScreenW, max(0, m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)))
}

// handleTick steps the game with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if result.Err != nil {
		m.logger.Error("simulation halted", "err", result.Err, "score", result.State.Score)
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	m.logTransition(m.game.Engine().Status())
	return m, tickCmd(m.config.TickRate)
}

// logTransition logs lifecycle changes between ticks.
func (m *Model) logTransition(status snake.Status) {
	prev := m.status
	m.status = status
	if prev == status {
		return
	}

	e := m.game.Engine()
	switch {
	case prev == snake.StatusNotStarted && status == snake.StatusRunning:
		m.logger.Info("game started", "direction", e.Direction())
	case status == snake.StatusOver:
		m.logger.Info("game over",
			"score", e.Score(),
			"cause", e.Cause(),
			"length", e.Len(),
		)
		m.logger.Debug("final state", "state", m.game.DebugState())
	case prev == snake.StatusOver && status == snake.StatusNotStarted:
		m.logger.Info("game restarted")
	case status == snake.StatusPaused:
		m.logger.Debug("stopped", "head", e.Head())
	}
}

// saveScreenshot writes the current frame to ~/.snake/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return renderFrame(m.screen, m.help.View(m.keys))
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the preset menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the game in the alternate screen until the user quits.
// It returns the error that halted the simulation, if any.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
