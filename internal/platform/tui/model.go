package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiltgames/tilt-arcade/internal/core"
	"github.com/tiltgames/tilt-arcade/internal/registry"
	"github.com/tiltgames/tilt-arcade/internal/storage"
)

// GameModel is the Bubble Tea model for running a single game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *KeyMapper
	frame     core.InputFrame
	tilt      Tilt
	tiltTicks int
	gameState core.GameState
	quitting  bool
	goingBack bool
}

// NewGameModel creates a Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		frame:  core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Steering keys refresh the synthesized
// tilt; everything else maps to a discrete action.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if tilt, ok := m.keys.MapTilt(msg); ok {
		m.tilt = tilt
		m.tiltTicks = tiltSustainTicks
		return m, nil
	}

	switch action := m.keys.MapAction(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.goingBack = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.frame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The play field is a fixed
// pixel area centered by the renderer, so the game itself is not reset.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Apply the sustained tilt so key-repeat gaps read as a held board.
	if m.tiltTicks > 0 {
		m.frame.Pitch = m.tilt.Pitch
		m.frame.Roll = m.tilt.Roll
		m.tiltTicks--
	}

	result := m.game.Step(m.frame)
	m.gameState = result.State

	if result.RoundOver {
		m.saveRound(result.RoundScore)
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRound records a finished round's elapsed-tick time.
func (m *GameModel) saveRound(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), score)
}

// saveScreenshot saves the current screen buffer to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tiltarcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state for display.
func (m GameModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsGoingBack reports whether the player left the game to return to the menu.
func (m GameModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
