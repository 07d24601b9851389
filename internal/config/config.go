// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import "fmt"

// goalCount is the fixed number of goals on the SmallBall field. The game
// core stores goals in a fixed-size array, so configs with any other
// cardinality are rejected at load time.
const goalCount = 4

// SmallballConfig contains all configuration for the SmallBall game. The
// defaults describe the original 128x64 pixel layout.
type SmallballConfig struct {
	Control SmallballControl `yaml:"control"`
	Ball    SmallballBall    `yaml:"ball"`
	Goals   SmallballGoals   `yaml:"goals"`
	Field   SmallballField   `yaml:"field"`
	Timing  SmallballTiming  `yaml:"timing"`
}

// SmallballControl defines how tilt input maps to movement.
type SmallballControl struct {
	// AngleThreshold is the minimum pitch/roll magnitude (radians) that
	// moves the ball on the corresponding axis.
	AngleThreshold float32 `yaml:"angle_threshold"`
}

// SmallballBall defines the player-controlled ball.
type SmallballBall struct {
	Size   int `yaml:"size"`    // Side length of the ball's bounding square
	Step   int `yaml:"step"`    // Pixels moved per tick while tilted
	StartX int `yaml:"start_x"` // Initial top-left corner
	StartY int `yaml:"start_y"`
}

// SmallballGoals defines the stationary goal regions.
type SmallballGoals struct {
	Size      int         `yaml:"size"`
	Locations []PixelSpot `yaml:"locations"`
}

// PixelSpot is a top-left corner in pixel space.
type PixelSpot struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SmallballField defines the play-field bounds the ball is clamped to, and
// the outline rectangle drawn around the field.
type SmallballField struct {
	XMin int `yaml:"x_min"`
	XMax int `yaml:"x_max"`
	YMin int `yaml:"y_min"`
	YMax int `yaml:"y_max"`

	OutlineX int `yaml:"outline_x"`
	OutlineY int `yaml:"outline_y"`
	OutlineW int `yaml:"outline_w"`
	OutlineH int `yaml:"outline_h"`
}

// SmallballTiming defines pacing outside the simulation itself.
type SmallballTiming struct {
	// ModeHoldMS is how long the splash and game-over screens linger
	// before ticking resumes, in milliseconds.
	ModeHoldMS int `yaml:"mode_hold_ms"`
}

// Validate checks that the configuration describes a playable field.
func (c SmallballConfig) Validate() error {
	if n := len(c.Goals.Locations); n != goalCount {
		return fmt.Errorf("config: smallball needs exactly %d goal locations, got %d", goalCount, n)
	}
	if c.Ball.Size <= 0 || c.Goals.Size <= 0 {
		return fmt.Errorf("config: ball and goal sizes must be positive")
	}
	if c.Ball.Step <= 0 {
		return fmt.Errorf("config: ball step must be positive")
	}
	if c.Control.AngleThreshold <= 0 {
		return fmt.Errorf("config: angle threshold must be positive")
	}
	if c.Field.XMin >= c.Field.XMax || c.Field.YMin >= c.Field.YMax {
		return fmt.Errorf("config: field bounds are inverted")
	}
	return nil
}
