package window

import "github.com/vovakirdan/fruitslice/internal/core"

// pointerTracker turns polled cursor positions into move events: a move is
// reported only when the position changes, the first poll included.
type pointerTracker struct {
	x, y int
	seen bool
}

// observe records a cursor position and adds a pointer move to the frame
// when it differs from the last one.
func (p *pointerTracker) observe(x, y int, frame *core.InputFrame) bool {
	if p.seen && x == p.x && y == p.y {
		return false
	}
	p.x, p.y, p.seen = x, y, true
	frame.MovePointer(x, y)
	return true
}
