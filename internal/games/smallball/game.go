package smallball

import (
	"github.com/tiltgames/tilt-arcade/internal/config"
	"github.com/tiltgames/tilt-arcade/internal/core"
	"github.com/tiltgames/tilt-arcade/internal/registry"
)

// configPath is an optional override for the game config YAML, set by the
// CLI before the game is created.
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the SmallBall state machine to the arcade platform: it owns a
// State, drives it once per tick, holds the splash and game-over screens on
// screen for the configured delay, and reports round completion so the
// platform can record scores. The State itself stays cadence-agnostic; all
// pacing lives here in the driver.
type Game struct {
	cfg      config.SmallballConfig
	state    *State
	tickRate int

	// holdTicks pauses the simulation while the splash or game-over
	// screen is showing. Input is ignored during a hold.
	holdTicks int
	paused    bool
}

// New creates a new SmallBall game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("smallball", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "smallball"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Small Ball"
}

// Reset loads configuration and starts a fresh game on the splash screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadSmallball(configPath)
	if err != nil {
		cfg = config.DefaultSmallballConfig()
	}
	g.cfg = cfg

	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.state = NewState(cfg)
	g.paused = false
	g.holdTicks = g.holdDuration()
}

// holdDuration converts the configured mode-hold delay to ticks.
func (g *Game) holdDuration() int {
	return g.cfg.Timing.ModeHoldMS * g.tickRate / 1000
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.state = NewState(g.cfg)
		g.paused = false
		g.holdTicks = g.holdDuration()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.holdTicks > 0 {
		g.holdTicks--
		return core.StepResult{State: g.State()}
	}

	before := g.state.Mode()
	g.state.Update(in.Pitch, in.Roll)

	result := core.StepResult{State: g.State()}
	if before == ModePlay && g.state.Mode() == ModeOver {
		result.RoundOver = true
		result.RoundScore = g.state.Score()
		g.holdTicks = g.holdDuration()
	}
	return result
}

// State returns the current platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.Score(),
		Paused: g.paused,
	}
}
