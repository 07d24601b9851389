package core

// Action is a discrete platform-level intent, abstracted from physical key
// presses. The continuous control channel (tilt) is carried separately on
// the InputFrame; actions cover everything that is not steering.
type Action int

const (
	ActionNone    Action = iota
	ActionUp              // menu navigation up
	ActionDown            // menu navigation down
	ActionConfirm         // select / start
	ActionBack            // leave game, return to menu
	ActionRestart         // restart the current round
	ActionPause           // pause/unpause
	ActionQuit            // exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is one simulation tick's worth of player input. Pitch and Roll
// are the two continuous tilt samples games consume for steering: on real
// hardware these would come from an IMU, in the terminal they are
// synthesized from held keys. Values inside the game's angle threshold mean
// "level", values beyond it mean "tilted in that direction".
type InputFrame struct {
	Pitch float32
	Roll  float32

	Actions map[Action]bool
}

// NewInputFrame creates an empty, level input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets the frame for the next tick: all actions off, tilt level.
func (f *InputFrame) Clear() {
	f.Pitch = 0
	f.Roll = 0
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
