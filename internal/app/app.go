//go:build ebiten

package app

import (
	"log"

	"superpose/internal/loop"
	"superpose/internal/render"
	"superpose/internal/scene"
	"superpose/internal/scenes/field"
	"superpose/internal/scenes/gallery"
	"superpose/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a scene to the ebiten.Game interface. The scheduler is ticked
// once per Update, which stands in for the display refresh.
type Game struct {
	cfg     *Config
	sched   *loop.Scheduler
	screen  *render.Screen
	scene   scene.Scene
	overlay *ui.Overlay
	cards   []*ebiten.Image
}

// New constructs a Game running the configured scene.
func New(cfg *Config, f *File) (*Game, error) {
	screen := render.NewScreen(cfg.Width, cfg.Height)
	sched := loop.NewScheduler(nil)
	sc, err := NewScene(cfg, f, screen, sched)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		sched:   sched,
		screen:  screen,
		scene:   sc,
		overlay: ui.NewOverlay(sc, 240),
	}
	if gal, ok := sc.(*gallery.Gallery); ok {
		g.loadCards(gal, false)
	}
	return g, nil
}

// Scene returns the running scene.
func (g *Game) Scene() scene.Scene { return g.scene }

// Update handles key commands and advances the frame loop.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if f, ok := g.scene.(*field.Field); ok {
			log.Printf("mode: %s", f.Observe())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if l, ok := g.scene.(scene.Looper); ok {
			if l.Running() {
				l.Stop()
			} else {
				l.Start()
			}
			log.Printf("loop running: %t", l.Running())
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	return g.sched.Tick()
}

func (g *Game) regenerate() {
	switch sc := g.scene.(type) {
	case *field.Field:
		sc.Regenerate()
	case *gallery.Gallery:
		g.loadCards(sc, true)
	}
}

func (g *Game) loadCards(gal *gallery.Gallery, reload bool) {
	for _, img := range g.cards {
		img.Deallocate()
	}
	g.cards = g.cards[:0]
	cards := gal.Cards()
	if reload || len(cards) == 0 {
		cards = gal.LoadCount(gal.Count())
		log.Printf("gallery: loaded %d cards", len(cards))
	}
	for _, c := range cards {
		g.cards = append(g.cards, ebiten.NewImageFromImage(gallery.Compose(c)))
	}
}

// Draw renders the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if len(g.cards) > 0 {
		g.drawCards(screen)
	} else {
		screen.DrawImage(g.screen.Image(), nil)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) drawCards(screen *ebiten.Image) {
	const gap = 10
	x, y, rowH := gap, gap, 0
	for _, img := range g.cards {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		if x+w > g.cfg.Width && x > gap {
			x, y = gap, y+rowH+gap
			rowH = 0
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(img, op)
		x += w + gap
		if h > rowH {
			rowH = h
		}
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
