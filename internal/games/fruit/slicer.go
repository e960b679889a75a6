package fruit

import (
	"time"

	"github.com/vovakirdan/fruitslice/internal/config"
	"github.com/vovakirdan/fruitslice/internal/core"
)

// Blade is the pointer-driven cursor. Only the latest position is kept.
type Blade struct {
	Pos  core.Vec
	Seen bool // false until the first pointer move
}

// SliceOutcome describes one object cut by a pointer move.
type SliceOutcome struct {
	Object    FallingObject // State at the moment of the cut
	Delta     int           // Score change applied
	Fragments []*Fragment   // Two halves for fruit, none for bombs
}

// Slicer tests pointer moves against the live objects.
type Slicer struct {
	objects *Registry
	effects *Effects
	score   *Score
	sched   Scheduler
	blade   *Blade
	slice   config.FruitSlice
	scoring config.FruitScoring
}

// NewSlicer wires a slicer to its collaborators.
func NewSlicer(objects *Registry, effects *Effects, score *Score, sched Scheduler, blade *Blade, cfg config.FruitConfig) *Slicer {
	return &Slicer{
		objects: objects,
		effects: effects,
		score:   score,
		sched:   sched,
		blade:   blade,
		slice:   cfg.Slice,
		scoring: cfg.Scoring,
	}
}

// HitBox returns the blade tip region for a pointer position: a small square
// whose top-left corner sits on the pointer.
func (s *Slicer) HitBox(p core.Vec) core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: s.slice.HitSize, H: s.slice.HitSize}
}

// OnPointerMove moves the blade and cuts every live object the tip touches.
// Each hit is handled independently, so one move can cut several
// overlapping objects.
func (s *Slicer) OnPointerMove(p core.Vec) []SliceOutcome {
	s.blade.Pos = p
	s.blade.Seen = true

	hit := s.HitBox(p)
	var outcomes []SliceOutcome
	s.objects.Each(func(o *FallingObject) {
		if !o.Bounds().Intersects(hit) {
			return
		}
		if o.Kind == KindBomb {
			outcomes = append(outcomes, s.explode(o))
		} else {
			outcomes = append(outcomes, s.cut(o))
		}
	})
	return outcomes
}

// explode handles a bomb: penalty and a plain destroy.
func (s *Slicer) explode(o *FallingObject) SliceOutcome {
	snapshot := *o
	s.objects.Destroy(o)
	delta := -s.scoring.BombPenalty
	s.score.Add(delta)
	return SliceOutcome{Object: snapshot, Delta: delta}
}

// cut handles a fruit: two halves fly apart and vanish after a delay.
func (s *Slicer) cut(o *FallingObject) SliceOutcome {
	snapshot := *o
	off := s.slice.FragmentOffset
	rot := s.slice.FragmentRotation
	vx := s.slice.FragmentSpeedX
	vy := s.slice.FragmentSpeedY

	left := s.effects.Add(&Fragment{
		Pos:      core.Vec{X: o.Pos.X - off, Y: o.Pos.Y},
		Vel:      core.Vec{X: -vx, Y: vy},
		Rotation: -rot,
		Texture:  o.Texture,
		W:        o.W,
		H:        o.H,
		Scale:    o.Scale,
	})
	right := s.effects.Add(&Fragment{
		Pos:      core.Vec{X: o.Pos.X + off, Y: o.Pos.Y},
		Vel:      core.Vec{X: vx, Y: vy},
		Rotation: rot,
		Texture:  o.Texture,
		W:        o.W,
		H:        o.H,
		Scale:    o.Scale,
	})

	ttl := time.Duration(s.slice.FragmentTTLMs) * time.Millisecond
	s.sched.After(ttl, func() {
		s.effects.Remove(left)
		s.effects.Remove(right)
	})

	s.objects.Destroy(o)
	delta := s.scoring.FruitPoints
	s.score.Add(delta)
	return SliceOutcome{Object: snapshot, Delta: delta, Fragments: []*Fragment{left, right}}
}
