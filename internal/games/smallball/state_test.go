package smallball

import (
	"math"
	"testing"

	"github.com/tiltgames/tilt-arcade/internal/config"
	"github.com/tiltgames/tilt-arcade/internal/core"
)

// playState returns a state that has ticked once: intro consumed, score 1,
// ball still at its initial location.
func playState(t *testing.T) *State {
	t.Helper()

	s := NewState(config.DefaultSmallballConfig())
	if s.Mode() != ModeIntro {
		t.Fatalf("new state mode = %v, expected intro", s.Mode())
	}
	if s.Score() != 0 {
		t.Fatalf("new state score = %d, expected 0", s.Score())
	}

	s.Update(0, 0)

	if s.Mode() != ModePlay {
		t.Fatalf("mode after first update = %v, expected play", s.Mode())
	}
	if got := s.Ball().Location(); got != initialBall(s.cfg).Location() {
		t.Fatalf("ball moved on neutral input: %+v", got)
	}
	if s.Score() != 1 {
		t.Fatalf("score after first update = %d, expected 1", s.Score())
	}
	return s
}

func killAllGoals(s *State) {
	for i := range s.goals {
		s.goals[i].alive = false
	}
}

func ballAt(s *State, delta core.Point) core.Point {
	start := initialBall(s.cfg).Location()
	return core.Point{X: start.X + delta.X, Y: start.Y + delta.Y}
}

func TestTransitionIntroToPlay(t *testing.T) {
	s := NewState(config.DefaultSmallballConfig())

	s.Update(0, 0)

	if s.Mode() != ModePlay {
		t.Errorf("mode = %v, expected play", s.Mode())
	}
}

func TestTransitionPlayToOver(t *testing.T) {
	s := playState(t)
	killAllGoals(s)

	s.Update(0, 0)

	if s.Mode() != ModeOver {
		t.Errorf("mode = %v, expected over", s.Mode())
	}
	// Score was 1 entering the tick, incremented to 2 before the mode check.
	if s.LowScore() != 2 {
		t.Errorf("low score = %d, expected 2", s.LowScore())
	}
}

func TestTransitionOverToPlay(t *testing.T) {
	s := playState(t)
	killAllGoals(s)
	s.Update(0, 0)
	if s.Mode() != ModeOver {
		t.Fatalf("mode = %v, expected over", s.Mode())
	}

	s.Update(0, 0)

	if s.Mode() != ModePlay {
		t.Errorf("mode = %v, expected play", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("score after restart = %d, expected 0", s.Score())
	}
	if got := s.Ball().Location(); got != initialBall(s.cfg).Location() {
		t.Errorf("ball after restart = %+v, expected initial location", got)
	}
	if got := len(s.AliveGoals()); got != goalCount {
		t.Errorf("alive goals after restart = %d, expected %d", got, goalCount)
	}
}

func TestOverReportedOneTickAfterLastGoalDies(t *testing.T) {
	s := playState(t)
	for i := range s.goals {
		s.goals[i].alive = false
	}
	s.goals[0].alive = true

	// Park the ball on the last goal: this tick's goal update kills it,
	// but the mode check ran first and still saw it alive.
	s.ball.location = s.goals[0].location
	s.Update(0, 0)
	if s.Mode() != ModePlay {
		t.Fatalf("mode on the killing tick = %v, expected play", s.Mode())
	}
	if len(s.AliveGoals()) != 0 {
		t.Fatal("last goal should be dead after the killing tick")
	}

	s.Update(0, 0)
	if s.Mode() != ModeOver {
		t.Errorf("mode one tick later = %v, expected over", s.Mode())
	}
}

func TestBallMovement(t *testing.T) {
	tests := []struct {
		name        string
		pitch, roll float32
		delta       core.Point
	}{
		{"right", 0, 0.7, core.Point{X: 2}},
		{"left", 0, -0.7, core.Point{X: -2}},
		{"up", 0.7, 0, core.Point{Y: -2}},
		{"down", -0.7, 0, core.Point{Y: 2}},
		{"diagonal", 0.7, 0.7, core.Point{X: 2, Y: -2}},
		{"below threshold", 0.5, 0.5, core.Point{}},
		{"nan input", float32(math.NaN()), float32(math.NaN()), core.Point{}},
		{"infinite roll", 0, float32(math.Inf(-1)), core.Point{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := playState(t)

			s.Update(tc.pitch, tc.roll)

			if got, want := s.Ball().Location(), ballAt(s, tc.delta); got != want {
				t.Errorf("ball = %+v, expected %+v", got, want)
			}
		})
	}
}

func TestBallClampsAtRightBound(t *testing.T) {
	s := playState(t)
	xMax := s.cfg.Field.XMax
	step := s.cfg.Ball.Step

	// Keep rolling right well past the point where the bound is reached.
	need := (xMax-s.Ball().Location().X)/step + 10
	for i := 0; i < need; i++ {
		before := s.Ball().Location().X
		s.Update(0, 1.0)
		after := s.Ball().Location().X
		if after > xMax {
			t.Fatalf("ball crossed right bound: x=%d > %d", after, xMax)
		}
		if before < xMax && after != before+step {
			t.Fatalf("expected fixed step %d, moved %d -> %d", step, before, after)
		}
	}

	if got := s.Ball().Location().X; got != xMax {
		t.Errorf("final x = %d, expected %d", got, xMax)
	}
}

func TestBallClampsAtTopBound(t *testing.T) {
	s := playState(t)
	yMin := s.cfg.Field.YMin

	for i := 0; i < 100; i++ {
		s.Update(1.0, 0)
		if y := s.Ball().Location().Y; y < yMin {
			t.Fatalf("ball crossed top bound: y=%d < %d", y, yMin)
		}
	}

	if got := s.Ball().Location().Y; got != yMin {
		t.Errorf("final y = %d, expected %d", got, yMin)
	}
}

func TestBallVisitsGoal(t *testing.T) {
	s := playState(t)
	if got := len(s.AliveGoals()); got != goalCount {
		t.Fatalf("alive goals = %d, expected %d", got, goalCount)
	}

	s.ball.location = s.goals[0].location
	s.Update(0, 0)

	if s.goals[0].alive {
		t.Error("visited goal still alive")
	}
	if got := len(s.AliveGoals()); got != goalCount-1 {
		t.Errorf("alive goals = %d, expected %d", got, goalCount-1)
	}
}

func TestGoalDeathIsOneShot(t *testing.T) {
	s := playState(t)
	s.ball.location = s.goals[0].location
	s.Update(0, 0)
	if s.goals[0].alive {
		t.Fatal("goal should be dead")
	}

	// Move away and keep ticking: the goal must stay dead.
	s.ball = initialBall(s.cfg)
	for i := 0; i < 20; i++ {
		s.Update(0, 0)
	}
	if s.goals[0].alive {
		t.Error("dead goal came back to life mid-round")
	}
}

func TestScoreIncrementsEveryTick(t *testing.T) {
	s := playState(t)

	s.Update(0, 0)
	if s.Score() != 2 {
		t.Errorf("score = %d, expected 2", s.Score())
	}
	s.Update(0, 0)
	if s.Score() != 3 {
		t.Errorf("score = %d, expected 3", s.Score())
	}
}

func TestScoreCountsInOverMode(t *testing.T) {
	s := playState(t)
	killAllGoals(s)
	s.Update(0, 0) // Play -> Over, score 2

	// The restart tick still increments before the Over->Play reset zeroes
	// the counter, so the reset is what's observable afterwards.
	s.Update(0, 0)

	if s.Mode() != ModePlay {
		t.Fatalf("mode = %v, expected play", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("score after restart tick = %d, expected 0", s.Score())
	}
}

func TestLowScoreOnlyDecreases(t *testing.T) {
	s := playState(t)
	if s.LowScore() != NoLowScore {
		t.Fatalf("initial low score = %d, expected sentinel", s.LowScore())
	}

	// Round 1: finish quickly.
	killAllGoals(s)
	s.Update(0, 0)
	first := s.LowScore()
	if first != 2 {
		t.Fatalf("low score after round 1 = %d, expected 2", first)
	}

	// Round 2: dawdle for a while before finishing.
	s.Update(0, 0) // Over -> Play
	for i := 0; i < 10; i++ {
		s.Update(0, 0)
	}
	killAllGoals(s)
	s.Update(0, 0)
	if s.Mode() != ModeOver {
		t.Fatalf("mode = %v, expected over", s.Mode())
	}
	if s.LowScore() != first {
		t.Errorf("low score rose from %d to %d after a slower round", first, s.LowScore())
	}

	// Round 3: finish in a single play tick, beating the record.
	s.Update(0, 0) // Over -> Play, score reset to 0
	killAllGoals(s)
	s.Update(0, 0)
	if s.LowScore() != 1 {
		t.Errorf("low score = %d, expected 1 after a faster round", s.LowScore())
	}
}

func TestAliveGoalsPreservesOrder(t *testing.T) {
	s := playState(t)
	s.goals[1].alive = false

	alive := s.AliveGoals()
	if len(alive) != 3 {
		t.Fatalf("alive goals = %d, expected 3", len(alive))
	}
	if alive[0].Location() != s.goals[0].location ||
		alive[1].Location() != s.goals[2].location ||
		alive[2].Location() != s.goals[3].location {
		t.Error("alive goals not in insertion order")
	}
}

func TestAliveGoalsReturnsCopies(t *testing.T) {
	s := playState(t)

	alive := s.AliveGoals()
	alive[0].alive = false
	alive[0].location = core.Point{X: -100, Y: -100}

	if !s.goals[0].alive || s.goals[0].location == (core.Point{X: -100, Y: -100}) {
		t.Error("AliveGoals leaked internal state")
	}
}

func TestFieldOutline(t *testing.T) {
	s := NewState(config.DefaultSmallballConfig())

	got := s.FieldOutline()
	want := core.Rect{X: 0, Y: 9, W: 127, H: 55}
	if got != want {
		t.Errorf("FieldOutline() = %+v, expected %+v", got, want)
	}
}

func TestBallAccessors(t *testing.T) {
	s := NewState(config.DefaultSmallballConfig())

	b := s.Ball()
	if b.Location() != (core.Point{X: 88, Y: 20}) {
		t.Errorf("ball location = %+v", b.Location())
	}
	if b.Size() != 8 {
		t.Errorf("ball size = %d, expected 8", b.Size())
	}
	if b.Square() != core.NewSquare(88, 20, 8) {
		t.Errorf("ball square = %+v", b.Square())
	}
}
