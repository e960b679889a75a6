package fruit

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fruitslice/internal/config"
	"github.com/vovakirdan/fruitslice/internal/core"
	"github.com/vovakirdan/fruitslice/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultFruitConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Fruit Slice" {
		t.Errorf("Title = %q", g.Title())
	}
	if _, ok := g.(registry.Reporter); !ok {
		t.Error("game does not report session stats")
	}
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("game does not support resize")
	}
}

func TestGamePointerSlices(t *testing.T) {
	g := newTestGame(1)
	// Center of cell (40, 12) on an 80x24 grid.
	place(g.Session(), KindFruit, 405, 312.5)

	in := core.NewInputFrame()
	in.MovePointer(40, 12)
	res := g.Step(in)

	if res.State.Score != 10 {
		t.Errorf("score = %d, want 10", res.State.Score)
	}
	if res.State.GameOver {
		t.Error("game should never end on its own")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)
	in := core.NewInputFrame()

	in.Set(core.ActionPause)
	if !g.Step(in).State.Paused {
		t.Fatal("pause not toggled on")
	}

	before := g.Session().clock.Now()
	in.Clear()
	in.MovePointer(40, 12)
	for i := 0; i < 120; i++ {
		g.Step(in)
	}
	if g.Session().clock.Now() != before {
		t.Error("time advanced while paused")
	}
	if g.Session().Blade().Seen {
		t.Error("pointer handled while paused")
	}

	in.Clear()
	in.Set(core.ActionPause)
	if g.Step(in).State.Paused {
		t.Error("pause not toggled off")
	}
}

func TestGameRestartResetsSession(t *testing.T) {
	g := newTestGame(1)
	place(g.Session(), KindBomb, 405, 312.5)

	in := core.NewInputFrame()
	in.MovePointer(40, 12)
	for i := 0; i < 60*6; i++ {
		g.Step(in)
		in.Clear()
	}
	if g.State().Score != -30 {
		t.Fatalf("score = %d, want -30", g.State().Score)
	}
	if g.Session().Difficulty().Escalations == 0 {
		t.Fatal("expected an escalation after 6s")
	}

	in.Set(core.ActionRestart)
	g.Step(in)

	if g.State().Score != 0 {
		t.Errorf("score after restart = %d", g.State().Score)
	}
	d := g.Session().Difficulty()
	if d.LaunchSpeed != -500 || d.HSpeed != 100 || d.SpawnCounter != 0 {
		t.Errorf("difficulty after restart = %+v", *d)
	}
	if g.Session().Objects().Len() != 0 {
		t.Errorf("objects after restart = %d", g.Session().Objects().Len())
	}
}

func TestGameRenderHUD(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.Contains(scr.Row(0), "Speed 1") {
		t.Errorf("HUD row missing speed: %q", scr.Row(0))
	}
}

func TestGameRenderObjects(t *testing.T) {
	g := newTestGame(1)
	place(g.Session(), KindFruit, 400, 300)
	place(g.Session(), KindBomb, 100, 300)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if c := scr.GetCell(40, 12); c.Rune != BodyChar || c.Color != TextureColor("fruit1") {
		t.Errorf("fruit cell = %+v", c)
	}
	if c := scr.GetCell(10, 12); c.Rune != BodyChar || c.Color != TextureColor(TextureBomb) {
		t.Errorf("bomb cell = %+v", c)
	}
	// Fuse sits above the bomb body.
	if c := scr.GetCell(10, 9); c.Rune != FuseChar {
		t.Errorf("fuse cell = %+v", c)
	}
}

func TestGameRenderBladeAndFragments(t *testing.T) {
	g := newTestGame(1)
	place(g.Session(), KindFruit, 400, 300)

	in := core.NewInputFrame()
	in.MovePointer(40, 12)
	g.Step(in)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if c := scr.GetCell(40, 12); c.Rune != BladeChar {
		t.Errorf("blade cell = %+v", c)
	}
	found := false
	for y := 0; y < 24 && !found; y++ {
		found = strings.ContainsRune(scr.Row(y), FragmentChar)
	}
	if !found {
		t.Error("no fragment drawn after a slice")
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(1)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause banner not drawn")
	}
}

func TestGameResizeKeepsSession(t *testing.T) {
	g := newTestGame(1)
	s := g.Session()
	g.Resize(160, 48)
	if g.Session() != s {
		t.Error("resize replaced the session")
	}
	if g.view.Cols != 160 || g.view.Rows != 48 {
		t.Errorf("view = %+v", g.view)
	}
}

func TestGameReport(t *testing.T) {
	g := newTestGame(1)
	place(g.Session(), KindFruit, 405, 312.5)
	in := core.NewInputFrame()
	in.MovePointer(40, 12)
	g.Step(in)

	r := g.Report()
	if r.Score != 10 || r.Sliced != 1 {
		t.Errorf("report = %+v", r)
	}
	if r.Duration != g.frame {
		t.Errorf("duration = %v, want one frame", r.Duration)
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(777)
	g2 := newTestGame(777)

	in := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		in.Clear()
		if i%3 == 0 {
			in.MovePointer(i%80, (i/3)%24)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.State() != g2.State() {
		t.Errorf("state mismatch: %+v vs %+v", g1.State(), g2.State())
	}
	if g1.Report() != g2.Report() {
		t.Errorf("report mismatch: %+v vs %+v", g1.Report(), g2.Report())
	}
}
