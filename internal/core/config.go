package core

// RuntimeConfig is passed to games at initialization. Games use it to adapt
// to the screen size and to convert wall-clock delays into tick counts.
type RuntimeConfig struct {
	ScreenW  int // Screen width in cells
	ScreenH  int // Screen height in cells
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-visible status of a game, returned by
// Game.State() after each tick.
type GameState struct {
	Score  int  // Current round score (elapsed ticks; lower is better)
	Paused bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// RoundOver is set on the single tick a round completes. RoundScore
	// holds the finished round's score so the platform can persist it;
	// the game itself rolls into its next round without external help.
	RoundOver  bool
	RoundScore int
}
