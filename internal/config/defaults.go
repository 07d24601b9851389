package config

import (
	_ "embed"
)

//go:embed defaults/smallball.yaml
var defaultSmallballYAML []byte

// DefaultSmallballConfig returns the default SmallBall configuration:
// the original 128x64 pixel layout with four goals.
func DefaultSmallballConfig() SmallballConfig {
	return SmallballConfig{
		Control: SmallballControl{
			AngleThreshold: 0.6,
		},
		Ball: SmallballBall{
			Size:   8,
			Step:   2,
			StartX: 88,
			StartY: 20,
		},
		Goals: SmallballGoals{
			Size: 8,
			Locations: []PixelSpot{
				{X: 10, Y: 12},
				{X: 100, Y: 50},
				{X: 50, Y: 20},
				{X: 10, Y: 50},
			},
		},
		Field: SmallballField{
			XMin:     0,
			XMax:     118,
			YMin:     10,
			YMax:     56,
			OutlineX: 0,
			OutlineY: 9,
			OutlineW: 127,
			OutlineH: 55,
		},
		Timing: SmallballTiming{
			ModeHoldMS: 3000,
		},
	}
}
