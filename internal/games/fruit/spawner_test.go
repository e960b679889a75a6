package fruit

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/fruitslice/internal/config"
)

func newTestSpawner(seed int64, cfg config.FruitConfig) (*Spawner, *Registry, *Difficulty) {
	objects := NewRegistry()
	diff := NewDifficulty(cfg)
	return NewSpawner(objects, diff, rand.New(rand.NewSource(seed)), cfg), objects, diff
}

func TestSpawnPositionAndVelocity(t *testing.T) {
	cfg := config.DefaultFruitConfig()
	sp, objects, _ := newTestSpawner(7, cfg)

	for i := 0; i < 500; i++ {
		o := sp.Spawn()
		if o.Pos.X < 100 || o.Pos.X > 700 {
			t.Fatalf("spawn %d: x=%v outside [100, 700]", i, o.Pos.X)
		}
		if o.Pos.Y != 600 {
			t.Fatalf("spawn %d: y=%v, want 600", i, o.Pos.Y)
		}
		if o.Pos.X != float64(int(o.Pos.X)) {
			t.Fatalf("spawn %d: x=%v is not an integer", i, o.Pos.X)
		}
		if o.Vel.Y >= 0 {
			t.Fatalf("spawn %d: vy=%v should be upward", i, o.Vel.Y)
		}
		if o.W != 100 || o.H != 100 || o.Scale != 0.3 {
			t.Fatalf("spawn %d: size %vx%v scale %v", i, o.W, o.H, o.Scale)
		}
	}

	if objects.Len() != 500 {
		t.Errorf("registry has %d objects, want 500", objects.Len())
	}
}

func TestSpawnHorizontalSpeedRange(t *testing.T) {
	cfg := config.DefaultFruitConfig()
	cfg.Difficulty.Enabled = false
	sp, _, _ := newTestSpawner(3, cfg)

	sawNeg, sawPos := false, false
	for i := 0; i < 1000; i++ {
		o := sp.Spawn()
		if o.Vel.X < -100 || o.Vel.X > 100 {
			t.Fatalf("vx=%v outside [-100, 100]", o.Vel.X)
		}
		if o.Vel.Y != -500 {
			t.Fatalf("vy=%v, want -500 with escalation disabled", o.Vel.Y)
		}
		sawNeg = sawNeg || o.Vel.X < 0
		sawPos = sawPos || o.Vel.X > 0
	}
	if !sawNeg || !sawPos {
		t.Error("horizontal speed never took both signs")
	}
}

func TestSpawnTextures(t *testing.T) {
	cfg := config.DefaultFruitConfig()
	sp, _, _ := newTestSpawner(11, cfg)

	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		o := sp.Spawn()
		switch o.Kind {
		case KindBomb:
			if o.Texture != TextureBomb {
				t.Fatalf("bomb has texture %q", o.Texture)
			}
		case KindFruit:
			seen[o.Texture]++
		}
	}

	for _, tex := range []string{"fruit1", "fruit2", "fruit3", "fruit4"} {
		if seen[tex] == 0 {
			t.Errorf("texture %s never spawned", tex)
		}
	}
	if len(seen) != 4 {
		t.Errorf("unexpected fruit textures: %v", seen)
	}
}

func TestBombRate(t *testing.T) {
	cfg := config.DefaultFruitConfig()
	sp, _, _ := newTestSpawner(42, cfg)

	const n = 10000
	bombs := 0
	for i := 0; i < n; i++ {
		if sp.Spawn().Kind == KindBomb {
			bombs++
		}
	}

	rate := float64(bombs) / n
	if rate < 0.08 || rate > 0.12 {
		t.Errorf("bomb rate %.3f outside 0.10 +/- 0.02", rate)
	}
}

func TestEscalationEveryFiveSpawns(t *testing.T) {
	cfg := config.DefaultFruitConfig()
	sp, _, diff := newTestSpawner(1, cfg)

	prevSpeed, prevH := diff.LaunchSpeed, diff.HSpeed
	if prevSpeed != -500 || prevH != 100 {
		t.Fatalf("start speeds = %v, %d; want -500, 100", prevSpeed, prevH)
	}

	for round := 1; round <= 6; round++ {
		for i := 1; i <= 5; i++ {
			sp.Spawn()
			if i < 5 {
				if diff.LaunchSpeed != prevSpeed || diff.HSpeed != prevH {
					t.Fatalf("round %d spawn %d: escalated early", round, i)
				}
				if diff.SpawnCounter != i {
					t.Fatalf("round %d spawn %d: counter=%d", round, i, diff.SpawnCounter)
				}
			}
		}
		if diff.SpawnCounter != 0 {
			t.Fatalf("round %d: counter=%d after escalation, want 0", round, diff.SpawnCounter)
		}
		if diff.LaunchSpeed != prevSpeed-50 {
			t.Errorf("round %d: launch speed %v, want %v", round, diff.LaunchSpeed, prevSpeed-50)
		}
		if diff.HSpeed != prevH+20 {
			t.Errorf("round %d: hspeed %d, want %d", round, diff.HSpeed, prevH+20)
		}
		prevSpeed, prevH = diff.LaunchSpeed, diff.HSpeed
	}

	if diff.Escalations != 6 {
		t.Errorf("Escalations = %d, want 6", diff.Escalations)
	}
}

func TestFixedPresetNeverEscalates(t *testing.T) {
	cfg := config.DefaultFruitConfig()
	config.ApplyFruitPreset(&cfg, config.DifficultyFixed)
	sp, _, diff := newTestSpawner(1, cfg)

	for i := 0; i < 50; i++ {
		sp.Spawn()
	}
	if diff.LaunchSpeed != -500 || diff.HSpeed != 100 {
		t.Errorf("fixed preset escalated to %v, %d", diff.LaunchSpeed, diff.HSpeed)
	}
	if diff.SpawnCounter >= 5 {
		t.Errorf("counter %d should still wrap at 5", diff.SpawnCounter)
	}
}

func TestSpawnDeterminism(t *testing.T) {
	cfg := config.DefaultFruitConfig()
	a, _, _ := newTestSpawner(99, cfg)
	b, _, _ := newTestSpawner(99, cfg)

	for i := 0; i < 100; i++ {
		oa, ob := a.Spawn(), b.Spawn()
		if oa.Pos != ob.Pos || oa.Vel != ob.Vel || oa.Kind != ob.Kind || oa.Texture != ob.Texture {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, *oa, *ob)
		}
	}
}
