package fruit

import (
	"math/rand"

	"github.com/vovakirdan/fruitslice/internal/config"
	"github.com/vovakirdan/fruitslice/internal/core"
)

// Spawner launches one object per call from the bottom of the world.
type Spawner struct {
	objects    *Registry
	difficulty *Difficulty
	rng        *rand.Rand
	spawn      config.FruitSpawn
	bottom     float64

	// OnSpawn, if set, observes every spawned object.
	OnSpawn func(o *FallingObject)
}

// NewSpawner creates a spawner feeding the given registry.
func NewSpawner(objects *Registry, difficulty *Difficulty, rng *rand.Rand, cfg config.FruitConfig) *Spawner {
	return &Spawner{
		objects:    objects,
		difficulty: difficulty,
		rng:        rng,
		spawn:      cfg.Spawn,
		bottom:     cfg.Viewport.Height,
	}
}

// Spawn creates one object at a random x on the bottom line and launches it
// upward. The fruit texture is drawn first; the bomb roll then replaces it
// independently, so bombs appear at the configured chance whatever the draw.
func (s *Spawner) Spawn() *FallingObject {
	x := s.between(s.spawn.MinX, s.spawn.MaxX)
	texture := s.spawn.Textures[s.rng.Intn(len(s.spawn.Textures))]

	hs := s.difficulty.HSpeed
	vx := s.between(-hs, hs)

	o := &FallingObject{
		Pos:     core.Vec{X: float64(x), Y: s.bottom},
		Vel:     core.Vec{X: float64(vx), Y: s.difficulty.LaunchSpeed},
		Kind:    KindFruit,
		Texture: texture,
		W:       s.spawn.Size,
		H:       s.spawn.Size,
		Scale:   s.spawn.Scale,
	}

	if s.rng.Float64() < s.spawn.BombChance {
		o.Kind = KindBomb
		o.Texture = TextureBomb
	}

	s.objects.Add(o)
	s.difficulty.RecordSpawn()

	if s.OnSpawn != nil {
		s.OnSpawn(o)
	}
	return o
}

// between draws a uniform integer in [lo, hi].
func (s *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
