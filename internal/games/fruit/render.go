package fruit

import (
	"fmt"

	"github.com/vovakirdan/fruitslice/internal/core"
)

// Visual characters for rendering
const (
	BodyChar     = '█'
	FragmentChar = '▓'
	FuseChar     = '*'
	BladeChar    = '╳'
)

// textureColors gives each texture a terminal color.
var textureColors = map[string]core.Color{
	"fruit1":    core.ColorRed,
	"fruit2":    core.ColorOrange,
	"fruit3":    core.ColorBrightYellow,
	"fruit4":    core.ColorGreen,
	TextureBomb: core.ColorGray,
}

// TextureColor returns the terminal color for a texture identifier.
func TextureColor(texture string) core.Color {
	if c, ok := textureColors[texture]; ok {
		return c
	}
	return core.ColorMagenta
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	// Fragments sit behind live objects. Terminal cells can't rotate, so
	// each half is drawn as the matching side of the fruit.
	g.session.Effects().Each(func(f *Fragment) {
		r := g.view.CellRect(core.RectFromCenter(f.Pos, f.W, f.H))
		side := halfRight
		if f.Rotation < 0 {
			side = halfLeft
		}
		drawBlob(dst, r, FragmentChar, TextureColor(f.Texture), side)
	})

	g.session.Objects().Each(func(o *FallingObject) {
		r := g.view.CellRect(o.Bounds())
		drawBlob(dst, r, BodyChar, TextureColor(o.Texture), halfBoth)
		if o.Kind == KindBomb {
			cx, _ := r.Center()
			dst.SetColored(cx, r.Y-1, FuseChar, core.ColorBrightYellow)
		}
	})

	if blade := g.session.Blade(); blade.Seen {
		bx, by := g.view.ToCell(blade.Pos)
		dst.SetColored(bx, by, BladeChar, core.ColorBrightWhite)
	}

	// HUD
	dst.DrawTextColored(2, 0, " "+g.session.Score().Text()+" ", core.ColorBrightWhite)
	level := fmt.Sprintf(" Speed %d ", g.session.Difficulty().Escalations+1)
	dst.DrawTextColored(dst.Width()-len(level)-2, 0, level, core.ColorGray)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

type half int

const (
	halfBoth half = iota
	halfLeft
	halfRight
)

// drawBlob fills the ellipse inscribed in r, or one side of it.
func drawBlob(dst *core.Screen, r core.Rect, ch rune, c core.Color, h half) {
	if r.W <= 2 || r.H <= 1 {
		dst.DrawRectColored(r, ch, c)
		return
	}
	rx := float64(r.W) / 2
	ry := float64(r.H) / 2
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dx := (float64(x-r.X) + 0.5 - rx) / rx
			dy := (float64(y-r.Y) + 0.5 - ry) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			if (h == halfLeft && dx > 0) || (h == halfRight && dx < 0) {
				continue
			}
			dst.SetColored(x, y, ch, c)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
