package core

// Action is a semantic command a frontend translates keys into.
type Action uint8

const (
	ActionNone    Action = iota
	ActionRestart        // Start a fresh session
	ActionQuit           // Leave the game
	ActionPause          // Toggle pause
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects what happened between two ticks: the actions
// triggered, and every pointer position reported, oldest first.
type InputFrame struct {
	actions uint32
	Pointer []PointerMove
}

// PointerMove is one pointer-move event in screen cell coordinates.
type PointerMove struct {
	X, Y int
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) {
	if a != ActionNone {
		f.actions |= 1 << a
	}
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.actions&(1<<a) != 0
}

// MovePointer appends a pointer-move event.
func (f *InputFrame) MovePointer(x, y int) {
	f.Pointer = append(f.Pointer, PointerMove{X: x, Y: y})
}

// Clear empties the frame for the next tick, keeping the pointer buffer.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.Pointer = f.Pointer[:0]
}
