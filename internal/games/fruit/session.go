package fruit

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/fruitslice/internal/config"
	"github.com/vovakirdan/fruitslice/internal/core"
)

// Stats counts what happened during a session.
type Stats struct {
	Spawned      int
	BombsSpawned int
	FruitsSliced int
	BombsHit     int
	Missed       int // Objects that left the field unsliced, bombs included
	Escalations  int
	Elapsed      time.Duration
}

// Session owns all mutable state of one play-through and wires the
// components together. Everything runs on the caller's goroutine: pointer
// moves and frame advances must not be called concurrently.
type Session struct {
	cfg config.FruitConfig

	clock      *Clock
	objects    *Registry
	effects    *Effects
	score      *Score
	difficulty *Difficulty
	blade      Blade

	spawner *Spawner
	cleaner *Cleaner
	slicer  *Slicer

	stats Stats
}

// NewSession builds a fresh session and starts its spawn timer.
func NewSession(cfg config.FruitConfig, seed int64) *Session {
	s := &Session{
		cfg:     cfg,
		clock:   NewClock(),
		objects: NewRegistry(),
		effects: NewEffects(),
		score:   NewScore(),
	}
	s.difficulty = NewDifficulty(cfg)

	rng := rand.New(rand.NewSource(seed))
	s.spawner = NewSpawner(s.objects, s.difficulty, rng, cfg)
	s.spawner.OnSpawn = func(o *FallingObject) {
		s.stats.Spawned++
		if o.Kind == KindBomb {
			s.stats.BombsSpawned++
		}
	}

	s.cleaner = NewCleaner(s.objects, 0, cfg.Viewport.Height)
	s.cleaner.OnMiss = func(*FallingObject) {
		s.stats.Missed++
	}

	s.slicer = NewSlicer(s.objects, s.effects, s.score, s.clock, &s.blade, cfg)

	s.clock.Every(time.Duration(cfg.Spawn.IntervalMs)*time.Millisecond, func() {
		s.spawner.Spawn()
	})
	return s
}

// PointerMove handles one pointer-move event in world coordinates.
func (s *Session) PointerMove(p core.Vec) []SliceOutcome {
	outcomes := s.slicer.OnPointerMove(p)
	for _, o := range outcomes {
		if o.Object.Kind == KindBomb {
			s.stats.BombsHit++
		} else {
			s.stats.FruitsSliced++
		}
	}
	return outcomes
}

// Advance runs one frame of dt: due timers fire (spawns, fragment expiry),
// bodies move, then the cleanup pass prunes whatever left the field.
func (s *Session) Advance(dt time.Duration) {
	s.clock.Advance(dt)

	secs := dt.Seconds()
	g := s.cfg.Physics.Gravity
	s.objects.Each(func(o *FallingObject) {
		integrate(&o.Pos, &o.Vel, g, secs)
	})
	s.effects.Each(func(f *Fragment) {
		integrate(&f.Pos, &f.Vel, g, secs)
	})

	s.cleaner.Tick()
	s.stats.Elapsed += dt
}

// Spawn launches one object immediately, outside the timer.
func (s *Session) Spawn() *FallingObject {
	return s.spawner.Spawn()
}

// Objects returns the live object registry.
func (s *Session) Objects() *Registry {
	return s.objects
}

// Effects returns the cosmetic fragments.
func (s *Session) Effects() *Effects {
	return s.effects
}

// Score returns the score tracker.
func (s *Session) Score() *Score {
	return s.score
}

// Difficulty returns the current launch ramp.
func (s *Session) Difficulty() *Difficulty {
	return s.difficulty
}

// Blade returns the blade cursor.
func (s *Session) Blade() Blade {
	return s.blade
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FruitConfig {
	return s.cfg
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	st := s.stats
	st.Escalations = s.difficulty.Escalations
	return st
}
