package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiltgames/tilt-arcade/internal/core"
)

// Tilt synthesis: the terminal has no IMU, so held arrow/WASD keys stand in
// for board tilt. A key press produces a full tilt on its axis (well beyond
// any sensible angle threshold), and the game model sustains it for a few
// ticks so that terminal key-repeat reads as a steadily held tilt rather
// than a stutter.
const (
	// keyTiltMagnitude is the synthesized pitch/roll sample for a pressed
	// direction key.
	keyTiltMagnitude = 1.0

	// tiltSustainTicks is how many ticks a synthesized tilt persists after
	// the last key event.
	tiltSustainTicks = 6
)

// Tilt is a synthesized sensor sample.
type Tilt struct {
	Pitch float32
	Roll  float32
}

// KeyMapper translates Bubble Tea key messages into game actions and
// synthesized tilt samples. Centralizing the bindings keeps them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapTilt translates a key message to a tilt sample. The second return
// value is false when the key is not a steering key.
//
// Up on the keyboard means "pitch the board away" (positive pitch), which
// moves the ball up the screen; right means positive roll.
func (km *KeyMapper) MapTilt(msg tea.KeyMsg) (Tilt, bool) {
	switch msg.String() {
	case "up", "w":
		return Tilt{Pitch: keyTiltMagnitude}, true
	case "down", "s":
		return Tilt{Pitch: -keyTiltMagnitude}, true
	case "right", "d":
		return Tilt{Roll: keyTiltMagnitude}, true
	case "left", "a":
		return Tilt{Roll: -keyTiltMagnitude}, true
	}
	return Tilt{}, false
}

// MapAction translates a key message to a platform action. Returns
// ActionNone for keys that carry no discrete action.
func (km *KeyMapper) MapAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "enter", " ":
		return core.ActionConfirm
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction is a menu-specific intent derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapMenuAction translates a key to a menu action.
func (km *KeyMapper) MapMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "w", "k":
		return MenuActionUp
	case "down", "s", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
