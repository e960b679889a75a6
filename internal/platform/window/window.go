// Package window runs the game in a desktop window with Ebitengine. The
// cursor is the blade; images from an assets directory replace the
// procedurally drawn shapes when present.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/fruitslice/internal/config"
	"github.com/vovakirdan/fruitslice/internal/core"
	"github.com/vovakirdan/fruitslice/internal/games/fruit"
	"github.com/vovakirdan/fruitslice/internal/logging"
	"github.com/vovakirdan/fruitslice/internal/platform"
	"github.com/vovakirdan/fruitslice/internal/storage"
)

// Options configures a window session.
type Options struct {
	Config    config.FruitConfig
	Seed      int64
	TickRate  int
	Scale     float64 // Window size relative to the world; 1 if unset
	AssetsDir string
	Store     *storage.Store
	Logger    *log.Logger
}

// Window is an ebiten.Game driving one fruit.Game.
type Window struct {
	game    *fruit.Game
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger

	assets  *Assets
	sprites map[string]*ebiten.Image // Uploaded lazily from assets
	sky     color.RGBA

	pointer pointerTracker
	input   core.InputFrame
	saved   bool
}

// New creates a window session. Asset decode failures are logged and the
// affected images fall back to shapes.
func New(opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultTickRate
	}

	cfg := opts.Config
	w := &Window{
		game:    fruit.NewWithConfig(cfg),
		store:   opts.Store,
		logger:  opts.Logger,
		sprites: make(map[string]*ebiten.Image),
		input:   core.NewInputFrame(),
		runtime: core.RuntimeConfig{
			ScreenW:  int(cfg.Viewport.Width),
			ScreenH:  int(cfg.Viewport.Height),
			TickRate: opts.TickRate,
			Seed:     opts.Seed,
		},
	}

	sky, err := parseHexColor(cfg.Viewport.Background)
	if err != nil {
		w.logger.Warn("bad background color, using default", "error", err)
		sky = skyColor
	}
	w.sky = sky

	textures := append(append([]string(nil), cfg.Spawn.Textures...), fruit.TextureBomb)
	assets, err := LoadAssets(opts.AssetsDir, AssetNames(textures))
	if err != nil {
		w.logger.Warn("some assets failed to load", "error", err)
	}
	w.assets = assets
	if opts.AssetsDir != "" {
		w.logger.Info("assets loaded", "dir", opts.AssetsDir, "images", assets.Len())
	}

	// One layout pixel per world unit.
	w.game.Reset(w.runtime)
	return w
}

// Game returns the running game.
func (w *Window) Game() *fruit.Game {
	return w.game
}

// Update runs one tick: keys, cursor, then the simulation.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.finish()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.finish()
		w.saved = false
		w.input.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.input.Set(core.ActionPause)
	}

	x, y := ebiten.CursorPosition()
	w.pointer.observe(x, y, &w.input)

	w.game.Step(w.input)
	w.input.Clear()
	return nil
}

// finish stores the session once.
func (w *Window) finish() {
	if w.saved {
		return
	}
	w.saved = true

	res, err := platform.SaveResult(w.store, w.game, platform.FrontendWindow)
	if err != nil {
		w.logger.Warn("could not save session", "error", err)
		return
	}
	w.logger.Info("session ended", "score", res.Score, "score_saved", res.ScoreSaved)
}

// Draw renders the field: background, fragments, objects, blade, HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	if bg := w.sprite(AssetBackground); bg != nil {
		b := bg.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			float64(screen.Bounds().Dx())/float64(b.Dx()),
			float64(screen.Bounds().Dy())/float64(b.Dy()),
		)
		screen.DrawImage(bg, op)
	} else {
		screen.Fill(w.sky)
	}

	s := w.game.Session()

	s.Effects().Each(func(f *fruit.Fragment) {
		w.drawFragment(screen, f)
	})
	s.Objects().Each(func(o *fruit.FallingObject) {
		w.drawObject(screen, o)
	})

	if blade := s.Blade(); blade.Seen {
		w.drawBlade(screen, blade.Pos)
	}

	ebitenutil.DebugPrintAt(screen, s.Score().Text(), 16, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed %d", s.Difficulty().Escalations+1), 16, 32)
	if w.game.State().Paused {
		msg := "PAUSED - press P to resume"
		ebitenutil.DebugPrintAt(screen, msg, (screen.Bounds().Dx()-len(msg)*6)/2, screen.Bounds().Dy()/2)
	}
}

// Layout keeps one layout pixel per world unit; ebiten scales the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.runtime.ScreenW, w.runtime.ScreenH
}

func (w *Window) drawObject(screen *ebiten.Image, o *fruit.FallingObject) {
	if img := w.sprite(o.Texture); img != nil {
		drawSprite(screen, img, img.Bounds(), o.Pos, o.W, o.H, 0)
		return
	}

	r := float32(o.W / 2)
	cx, cy := float32(o.Pos.X), float32(o.Pos.Y)
	vector.DrawFilledCircle(screen, cx, cy, r, textureColor(o.Texture), true)
	if o.Kind == fruit.KindBomb {
		vector.StrokeLine(screen, cx, cy-r, cx+r/3, cy-r-r/3, 4, fuseColor, true)
	}
}

func (w *Window) drawFragment(screen *ebiten.Image, f *fruit.Fragment) {
	if img := w.sprite(f.Texture); img != nil {
		b := img.Bounds()
		half := b
		if f.Rotation < 0 {
			half.Max.X = b.Min.X + b.Dx()/2
		} else {
			half.Min.X = b.Min.X + b.Dx()/2
		}
		drawSprite(screen, img, half, f.Pos, f.W/2, f.H, f.Rotation)
		return
	}

	// A smaller disc with the cut face drawn across it at the fragment's angle.
	r := float32(f.W / 3)
	cx, cy := float32(f.Pos.X), float32(f.Pos.Y)
	vector.DrawFilledCircle(screen, cx, cy, r, textureColor(f.Texture), true)
	dx := float32(math.Sin(f.Rotation)) * r
	dy := float32(math.Cos(f.Rotation)) * r
	vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, 3, cutColor, true)
}

func (w *Window) drawBlade(screen *ebiten.Image, p core.Vec) {
	if img := w.sprite(AssetBlade); img != nil {
		b := img.Bounds()
		drawSprite(screen, img, b, p, float64(b.Dx()), float64(b.Dy()), 0)
		return
	}
	hit := w.game.Session().Config().Slice.HitSize
	vector.DrawFilledCircle(screen, float32(p.X+hit/2), float32(p.Y+hit/2), float32(hit), bladeColor, true)
}

// sprite returns the uploaded image for an asset, uploading on first use.
func (w *Window) sprite(name string) *ebiten.Image {
	if img, ok := w.sprites[name]; ok {
		return img
	}
	src, ok := w.assets.Get(name)
	if !ok {
		w.sprites[name] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	w.sprites[name] = img
	return img
}

// drawSprite draws the src region of img centered on pos, sized w x h and
// rotated by rot radians.
func drawSprite(screen, img *ebiten.Image, src image.Rectangle, pos core.Vec, w, h, rot float64) {
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(src.Dx())/2, -float64(src.Dy())/2)
	op.GeoM.Scale(w/float64(src.Dx()), h/float64(src.Dy()))
	op.GeoM.Rotate(rot)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sub, op)
}

// Run opens the window and blocks until it closes.
func Run(opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := opts.TickRate
	if tps <= 0 {
		tps = core.DefaultTickRate
	}

	w := New(opts)

	ebiten.SetWindowSize(int(opts.Config.Viewport.Width*scale), int(opts.Config.Viewport.Height*scale))
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
