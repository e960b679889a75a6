package fruit

import "github.com/vovakirdan/fruitslice/internal/core"

// Kind distinguishes sliceable fruit from bombs.
type Kind int

const (
	KindFruit Kind = iota
	KindBomb
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFruit:
		return "fruit"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// TextureBomb is the texture identifier every bomb carries.
const TextureBomb = "bomb"

// FallingObject is a fruit or bomb moving under gravity.
// Position is the sprite center; W and H are the displayed size.
type FallingObject struct {
	ID      uint64
	Pos     core.Vec
	Vel     core.Vec
	Kind    Kind
	Texture string
	W, H    float64
	Scale   float64

	destroyed bool
}

// Bounds returns the axis-aligned box the object occupies.
func (o *FallingObject) Bounds() core.RectF {
	return core.RectFromCenter(o.Pos, o.W, o.H)
}

// Alive reports whether the object is still in play.
func (o *FallingObject) Alive() bool {
	return o != nil && !o.destroyed
}

// Fragment is one cosmetic half of a sliced fruit. Fragments fall under
// gravity but never take part in slicing.
type Fragment struct {
	ID       uint64
	Pos      core.Vec
	Vel      core.Vec
	Rotation float64 // Radians
	Texture  string
	W, H     float64
	Scale    float64

	removed bool
}
