// Package smallball implements the SmallBall game: a ball on a small
// fixed-resolution play-field is steered by tilt input (pitch and roll) and
// must visit all four goals in the minimum number of ticks. The elapsed-tick
// count is the score, lower is better, and the lowest score across completed
// rounds is tracked for the lifetime of the process.
package smallball

import (
	"math"

	"github.com/tiltgames/tilt-arcade/internal/config"
	"github.com/tiltgames/tilt-arcade/internal/core"
)

// goalCount is the fixed number of goals per round. The goal collection is a
// fixed-size array: no allocation happens anywhere in the update path.
const goalCount = 4

// NoLowScore is the low-score value before any round has been completed.
const NoLowScore = math.MaxInt32

// Mode is the coarse phase of the game. Exactly one mode is current at any
// time and all per-tick behavior branches on it.
type Mode int

const (
	// ModeIntro shows the splash screen; the first tick always leaves it.
	ModeIntro Mode = iota
	// ModePlay is the active round.
	ModePlay
	// ModeOver shows the finished round's score; the next tick restarts.
	ModeOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModePlay:
		return "play"
	case ModeOver:
		return "over"
	default:
		return "unknown"
	}
}

// Ball is the entity the player steers across the field. It is an immutable
// value: every move replaces the ball wholesale, so an observer never sees a
// half-updated position.
type Ball struct {
	location core.Point
	size     int
}

func newBall(location core.Point, size int) Ball {
	return Ball{location: location, size: size}
}

// Location returns the top-left corner of the ball's bounding square.
func (b Ball) Location() core.Point {
	return b.location
}

// Size returns the side length of the ball's bounding square.
func (b Ball) Size() int {
	return b.size
}

// Square returns the ball's bounding square for intersection tests.
func (b Ball) Square() core.Square {
	return core.Square{TopLeft: b.location, Size: b.size}
}

// Goal is a stationary region the ball must visit. A goal is alive until the
// ball touches it; once dead it stays dead for the rest of the round.
type Goal struct {
	location core.Point
	size     int
	alive    bool
}

func newGoal(location core.Point, size int) Goal {
	return Goal{location: location, size: size, alive: true}
}

// Location returns the goal's fixed top-left corner.
func (g Goal) Location() core.Point {
	return g.location
}

// Size returns the side length of the goal's square.
func (g Goal) Size() int {
	return g.size
}

// Square returns the goal's square for intersection tests.
func (g Goal) Square() core.Square {
	return core.Square{TopLeft: g.location, Size: g.size}
}

// State is the SmallBall game state: the ball, the fixed set of goals, the
// mode, and the score counters. It has a single mutating entry point,
// Update, which is called once per tick; everything else is a read-only
// query. State is not safe for concurrent use; it expects exactly one tick
// driver, per the single-threaded game loop it lives in.
type State struct {
	cfg      config.SmallballConfig
	score    int
	lowScore int
	ball     Ball
	goals    [goalCount]Goal
	mode     Mode
}

// NewState returns a fresh game state: ball and goals at their configured
// initial placement, score 0, no low score yet, intro mode. The
// configuration must have passed config.SmallballConfig.Validate.
func NewState(cfg config.SmallballConfig) *State {
	return &State{
		cfg:      cfg,
		lowScore: NoLowScore,
		ball:     initialBall(cfg),
		goals:    initialGoals(cfg),
		mode:     ModeIntro,
	}
}

func initialBall(cfg config.SmallballConfig) Ball {
	return newBall(core.Point{X: cfg.Ball.StartX, Y: cfg.Ball.StartY}, cfg.Ball.Size)
}

func initialGoals(cfg config.SmallballConfig) [goalCount]Goal {
	var goals [goalCount]Goal
	for i, loc := range cfg.Goals.Locations {
		goals[i] = newGoal(core.Point{X: loc.X, Y: loc.Y}, cfg.Goals.Size)
	}
	return goals
}

// Update advances the game by one tick using the latest pitch and roll
// samples. The four sub-steps run in a fixed order every tick regardless of
// mode: ball movement, score, mode transition, goal contact. The mode
// transition therefore sees goal liveness as of the previous tick, which
// makes the game report Over on the tick after the last goal dies, not the
// same tick.
//
// Inputs are unconstrained: NaN or infinite samples fail every threshold
// comparison and simply produce no movement on that axis.
func (s *State) Update(pitch, roll float32) {
	s.updateBall(pitch, roll)
	s.updateScore()
	s.updateMode()
	s.updateGoals()
}

// updateBall applies up to one vertical and one horizontal step, each gated
// by the angle threshold and a pre-move boundary check. The bounds are
// checked before moving, so the ball can land exactly on a bound but a
// stopped ball is never pushed past it.
func (s *State) updateBall(pitch, roll float32) {
	threshold := s.cfg.Control.AngleThreshold
	step := s.cfg.Ball.Step
	field := s.cfg.Field

	x := s.ball.location.X
	y := s.ball.location.Y

	if pitch > threshold && y > field.YMin {
		// Pitched toward the player: the ball climbs until the top bound.
		y -= step
	} else if pitch < -threshold && y < field.YMax {
		y += step
	}

	if roll > threshold && x < field.XMax {
		x += step
	} else if roll < -threshold && x > field.XMin {
		x -= step
	}

	s.ball = newBall(core.Point{X: x, Y: y}, s.cfg.Ball.Size)
}

// updateScore counts elapsed ticks. The score runs in every mode so that
// tick counts stay exact; only scores finishing a Play round are meaningful.
func (s *State) updateScore() {
	s.score++
}

// updateMode advances the three-state machine. The Play check reads goal
// liveness as left by the previous tick's goal update.
func (s *State) updateMode() {
	switch s.mode {
	case ModeIntro:
		s.mode = ModePlay
	case ModePlay:
		if s.allGoalsDead() {
			s.mode = ModeOver
			if s.score < s.lowScore {
				s.lowScore = s.score
			}
		}
	case ModeOver:
		// Round restart: everything but the low score resets.
		s.mode = ModePlay
		s.score = 0
		s.ball = initialBall(s.cfg)
		s.goals = initialGoals(s.cfg)
	}
}

func (s *State) allGoalsDead() bool {
	for i := range s.goals {
		if s.goals[i].alive {
			return false
		}
	}
	return true
}

// updateGoals kills every still-alive goal the just-moved ball touches.
// Dead goals are never reconsidered within a round.
func (s *State) updateGoals() {
	ball := s.ball.Square()
	for i := range s.goals {
		if s.goals[i].alive && s.goals[i].Square().Intersects(ball) {
			s.goals[i].alive = false
		}
	}
}

// Ball returns the current ball.
func (s *State) Ball() Ball {
	return s.ball
}

// Score returns the current round's elapsed-tick count.
func (s *State) Score() int {
	return s.score
}

// LowScore returns the lowest score across completed rounds, or NoLowScore
// if no round has been completed yet.
func (s *State) LowScore() int {
	return s.lowScore
}

// Mode returns the current game mode.
func (s *State) Mode() Mode {
	return s.mode
}

// FieldOutline returns the rectangle outlining the play-field.
func (s *State) FieldOutline() core.Rect {
	f := s.cfg.Field
	return core.Rect{X: f.OutlineX, Y: f.OutlineY, W: f.OutlineW, H: f.OutlineH}
}

// AliveGoals returns the goals that have yet to be visited this round, in
// their fixed insertion order. The returned goals are copies; callers cannot
// alias game state through them.
func (s *State) AliveGoals() []Goal {
	alive := make([]Goal, 0, goalCount)
	for i := range s.goals {
		if s.goals[i].alive {
			alive = append(alive, s.goals[i])
		}
	}
	return alive
}
