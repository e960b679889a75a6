package fruit

import (
	"testing"

	"github.com/vovakirdan/fruitslice/internal/core"
)

func TestViewportToCell(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 600, Cols: 80, Rows: 24}

	tests := []struct {
		p      core.Vec
		cx, cy int
	}{
		{core.Vec{X: 0, Y: 0}, 0, 0},
		{core.Vec{X: 400, Y: 300}, 40, 12},
		{core.Vec{X: 799, Y: 599}, 79, 23},
		{core.Vec{X: -5, Y: -5}, -1, -1},
	}

	for _, tt := range tests {
		cx, cy := v.ToCell(tt.p)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("ToCell(%v) = (%d, %d), want (%d, %d)", tt.p, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestViewportToWorld(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 600, Cols: 80, Rows: 24}

	if got := v.ToWorld(40, 12); got != (core.Vec{X: 405, Y: 312.5}) {
		t.Errorf("ToWorld(40, 12) = %v", got)
	}
	if got := v.ToWorld(-3, 100); got != (core.Vec{X: 5, Y: 587.5}) {
		t.Errorf("ToWorld clamps: got %v", got)
	}

	empty := Viewport{WorldW: 800, WorldH: 600}
	if got := empty.ToWorld(1, 1); got != (core.Vec{}) {
		t.Errorf("empty viewport ToWorld = %v", got)
	}
}

func TestViewportCellRect(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 600, Cols: 80, Rows: 24}

	r := v.CellRect(core.RectFromCenter(core.Vec{X: 400, Y: 300}, 100, 100))
	if r != core.NewRect(35, 10, 10, 4) {
		t.Errorf("CellRect = %+v", r)
	}

	tiny := v.CellRect(core.RectF{X: 0, Y: 0, W: 1, H: 1})
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny rect = %+v, want at least 1x1", tiny)
	}
}
