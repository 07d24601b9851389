package smallball

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Mode       string
	Score      int
	LowScore   int
	BallX      int
	BallY      int
	GoalsAlive int
	Holding    bool // True while the splash/game-over hold is running
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	ball := g.state.Ball().Location()
	return Snapshot{
		Mode:       g.state.Mode().String(),
		Score:      g.state.Score(),
		LowScore:   g.state.LowScore(),
		BallX:      ball.X,
		BallY:      ball.Y,
		GoalsAlive: len(g.state.AliveGoals()),
		Holding:    g.holdTicks > 0,
	}
}
