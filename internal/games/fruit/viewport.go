package fruit

import (
	"math"

	"github.com/vovakirdan/fruitslice/internal/core"
)

// Viewport maps the world (e.g. 800x600) onto a grid of terminal cells.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// ToCell returns the cell containing a world point.
func (v Viewport) ToCell(p core.Vec) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	cx := int(math.Floor(p.X * float64(v.Cols) / v.WorldW))
	cy := int(math.Floor(p.Y * float64(v.Rows) / v.WorldH))
	return cx, cy
}

// ToWorld returns the world point at the center of a cell. Cells outside the
// grid are clamped to its edge.
func (v Viewport) ToWorld(cx, cy int) core.Vec {
	if v.Cols <= 0 || v.Rows <= 0 {
		return core.Vec{}
	}
	cx = core.Clamp(cx, 0, v.Cols-1)
	cy = core.Clamp(cy, 0, v.Rows-1)
	return core.Vec{
		X: (float64(cx) + 0.5) * v.WorldW / float64(v.Cols),
		Y: (float64(cy) + 0.5) * v.WorldH / float64(v.Rows),
	}
}

// CellRect returns the smallest cell rectangle covering a world box.
func (v Viewport) CellRect(r core.RectF) core.Rect {
	x0, y0 := v.ToCell(core.Vec{X: r.X, Y: r.Y})
	x1, y1 := v.ToCell(core.Vec{X: r.Right(), Y: r.Bottom()})
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}
