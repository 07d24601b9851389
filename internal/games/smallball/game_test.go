package smallball

import (
	"strings"
	"testing"

	"github.com/tiltgames/tilt-arcade/internal/core"
)

// testRuntime uses a tick rate of 10 so the 3000ms mode hold is 30 ticks.
func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10}
}

func tiltFrame(pitch, roll float32) core.InputFrame {
	f := core.NewInputFrame()
	f.Pitch = pitch
	f.Roll = roll
	return f
}

func actionFrame(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

// stepPast drains the current hold and returns how many ticks it took.
func stepPast(g *Game) int {
	n := 0
	for g.Snapshot().Holding {
		g.Step(core.NewInputFrame())
		n++
	}
	return n
}

func TestGameSplashHold(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	snap := g.Snapshot()
	if snap.Mode != "intro" || !snap.Holding {
		t.Fatalf("after Reset: %+v, expected holding intro", snap)
	}

	// The simulation must not advance during the hold.
	for i := 0; i < 30; i++ {
		g.Step(tiltFrame(0, 1.0))
	}
	snap = g.Snapshot()
	if snap.Score != 0 || snap.Mode != "intro" {
		t.Errorf("simulation advanced during hold: %+v", snap)
	}
	if snap.Holding {
		t.Errorf("hold should be over after 30 ticks at tick rate 10")
	}

	// First real tick leaves intro.
	g.Step(core.NewInputFrame())
	if got := g.Snapshot().Mode; got != "play" {
		t.Errorf("mode after hold = %q, expected play", got)
	}
}

func TestGameRoundOverSignal(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	stepPast(g)
	g.Step(core.NewInputFrame()) // intro -> play

	for i := range g.state.goals {
		g.state.goals[i].alive = false
	}

	res := g.Step(core.NewInputFrame())
	if !res.RoundOver {
		t.Fatal("expected RoundOver on the Play->Over tick")
	}
	if res.RoundScore != g.state.Score() {
		t.Errorf("RoundScore = %d, expected %d", res.RoundScore, g.state.Score())
	}
	if !g.Snapshot().Holding {
		t.Error("game-over hold should have started")
	}

	// The signal fires exactly once.
	stepPast(g)
	res = g.Step(core.NewInputFrame())
	if res.RoundOver {
		t.Error("RoundOver reported twice for one round")
	}
	if got := g.Snapshot().Mode; got != "play" {
		t.Errorf("mode after game-over hold = %q, expected play", got)
	}
}

func TestGameRestartAction(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	stepPast(g)
	for i := 0; i < 5; i++ {
		g.Step(tiltFrame(0, 1.0))
	}
	if g.Snapshot().Score == 0 {
		t.Fatal("expected some progress before restart")
	}

	g.Step(actionFrame(core.ActionRestart))

	snap := g.Snapshot()
	if snap.Mode != "intro" || snap.Score != 0 || !snap.Holding {
		t.Errorf("restart did not reset cleanly: %+v", snap)
	}
	if snap.GoalsAlive != goalCount {
		t.Errorf("goals alive after restart = %d, expected %d", snap.GoalsAlive, goalCount)
	}
}

func TestGamePauseStopsSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	stepPast(g)
	g.Step(core.NewInputFrame())
	score := g.Snapshot().Score

	g.Step(actionFrame(core.ActionPause))
	for i := 0; i < 10; i++ {
		g.Step(tiltFrame(1.0, 1.0))
	}
	if got := g.Snapshot().Score; got != score {
		t.Errorf("score advanced while paused: %d -> %d", score, got)
	}
	if !g.State().Paused {
		t.Error("State().Paused should be set")
	}

	g.Step(actionFrame(core.ActionPause))
	g.Step(core.NewInputFrame())
	if got := g.Snapshot().Score; got != score+2 {
		t.Errorf("score after unpause = %d, expected %d", got, score+2)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime())
		for i := 0; i < 400; i++ {
			var f core.InputFrame
			switch {
			case i%3 == 0:
				f = tiltFrame(0, -1.0)
			case i%7 == 0:
				f = tiltFrame(-1.0, 0)
			default:
				f = tiltFrame(0, 0)
			}
			g.Step(f)
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()
	if s1 != s2 {
		t.Errorf("determinism failed:\nrun1: %+v\nrun2: %+v", s1, s2)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, gameName) {
		t.Error("splash screen missing game name")
	}

	stepPast(g)
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "score: 1") {
		t.Error("play screen missing score HUD")
	}
}
