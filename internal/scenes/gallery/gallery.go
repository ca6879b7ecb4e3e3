// Package gallery paints one-shot thumbnail artworks with the same
// primitives the field renderer uses and labels each with a random state.
package gallery

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/ojrac/opensimplex-go"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"superpose/internal/core"
	"superpose/internal/render"
	"superpose/internal/scene"
)

// States is the caption vocabulary.
var States = []string{"Superposition", "Entangled", "Collapsed", "Coherent"}

// Schemes are the palette index pairs an artwork draws from: the first
// colour leads the backdrop and the wave lines.
var Schemes = [][2]int{{0, 1}, {2, 0}, {3, 1}, {0, 2}}

// CaptionHeight is the strip Compose adds beneath each artwork.
const CaptionHeight = 20

// cardGap is the spacing a host leaves between cards when sizing from its surface.
const cardGap = 10

// Config controls thumbnail size and content density.
type Config struct {
	Count      int
	Width      int
	Height     int
	Seed       int64
	Palette    string
	Background string

	BackdropAlpha  float64
	Discs          int
	DiscSizeMin    float64
	DiscSizeMax    float64
	DiscAlpha      float64
	Lines          int
	LineStep       float64
	LineAmplitude  float64
	LineWavelength float64
	LineWidth      float64
	LineAlpha      float64
	NebulaScale    float64
	NebulaStrength float64
}

// DefaultConfig returns the standard gallery configuration.
func DefaultConfig() Config {
	return Config{
		Count:          6,
		Width:          300,
		Height:         300,
		Palette:        render.DefaultPalette,
		Background:     "#000000",
		BackdropAlpha:  0x20 / 255.0,
		Discs:          50,
		DiscSizeMin:    5,
		DiscSizeMax:    25,
		DiscAlpha:      0x66 / 255.0,
		Lines:          5,
		LineStep:       10,
		LineAmplitude:  30,
		LineWavelength: 0.1,
		LineWidth:      2,
		LineAlpha:      0x88 / 255.0,
		NebulaScale:    0.02,
		NebulaStrength: 0.2,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	nonNegative := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	positive("width", &c.Width)
	positive("height", &c.Height)
	nonNegative("count", &c.Count)
	nonNegative("discs", &c.Discs)
	nonNegative("lines", &c.Lines)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["palette"]; ok && v != "" {
		c.Palette = v
	}
	if v, ok := cfg["background"]; ok && v != "" {
		c.Background = v
	}
	if v, ok := cfg["nebula_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NebulaScale = parsed
		}
	}
	if v, ok := cfg["nebula_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.NebulaStrength = parsed
		}
	}
	return c
}

// Card is one artwork with its caption.
type Card struct {
	Index   int
	Image   *image.RGBA
	State   string
	Caption string
}

// Gallery holds the most recently loaded cards.
type Gallery struct {
	cfg        Config
	rand       core.Source
	palette    render.Palette
	background color.NRGBA
	cards      []Card
}

// New prepares a gallery. It does not paint until LoadCount is called.
func New(cfg Config, env scene.Env) (*Gallery, error) {
	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("gallery palette: %w", err)
	}
	bg, err := render.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("gallery background: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	env = env.WithDefaults()
	src := env.Rand
	if cfg.Seed != 0 {
		src = core.NewRNG(cfg.Seed)
	}
	return &Gallery{cfg: cfg, rand: src, palette: palette, background: bg}, nil
}

// LoadCount discards the previous cards and paints exactly n new ones. A
// non-positive n leaves the gallery empty.
func (g *Gallery) LoadCount(n int) []Card {
	if n < 0 {
		n = 0
	}
	g.cards = make([]Card, 0, n)
	for i := 1; i <= n; i++ {
		img := g.paint()
		state := States[core.Pick(g.rand, len(States))]
		g.cards = append(g.cards, Card{
			Index:   i,
			Image:   img,
			State:   state,
			Caption: fmt.Sprintf("Universe %d: %s", i, state),
		})
	}
	return g.cards
}

// Cards returns the cards from the last LoadCount.
func (g *Gallery) Cards() []Card { return g.cards }

// scheme returns the two colours of a randomly chosen scheme.
func (g *Gallery) scheme() (color.NRGBA, color.NRGBA) {
	s := Schemes[core.Pick(g.rand, len(Schemes))]
	return g.palette[s[0]%len(g.palette)], g.palette[s[1]%len(g.palette)]
}

func (g *Gallery) paint() *image.RGBA {
	c := g.cfg
	cv := render.NewCanvas(c.Width, c.Height)
	w, h := cv.Width(), cv.Height()
	lead, second := g.scheme()

	cv.Clear(g.background)
	if c.BackdropAlpha > 0 {
		cv.FillLinear(0, 0, w, h, render.WithAlpha(lead, c.BackdropAlpha), render.WithAlpha(second, c.BackdropAlpha))
	}
	g.nebula(cv.Image(), lead, second)

	for i := 0; i < c.Discs; i++ {
		x := core.Between(g.rand, 0, w)
		y := core.Between(g.rand, 0, h)
		size := core.Between(g.rand, c.DiscSizeMin, c.DiscSizeMax)
		col := lead
		if core.Pick(g.rand, 2) == 1 {
			col = second
		}
		cv.FillCircle(x, y, size, render.WithAlpha(col, c.DiscAlpha))
	}

	stroke := render.WithAlpha(lead, c.LineAlpha)
	for i := 0; i < c.Lines; i++ {
		y0 := core.Between(g.rand, 0, h)
		pts := render.WaveLine(0, y0, w, c.LineStep, c.LineWavelength, float64(i), c.LineAmplitude)
		cv.StrokePath(pts, c.LineWidth, stroke)
	}

	return cv.Snapshot()
}

// nebula tints the backdrop with simplex noise toward a blend of the
// scheme colours.
func (g *Gallery) nebula(img *image.RGBA, a, b color.NRGBA) {
	strength := g.cfg.NebulaStrength
	if strength <= 0 {
		return
	}
	noise := opensimplex.New(int64(g.rand.Float64() * (1 << 53)))
	tint := render.Blend(a, b, g.rand.Float64())
	scale := g.cfg.NebulaScale
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := (noise.Eval2(float64(x)*scale, float64(y)*scale) + 1) / 2
			t := v * strength
			base := img.RGBAAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: mix(base.R, tint.R, t),
				G: mix(base.G, tint.G, t),
				B: mix(base.B, tint.B, t),
				A: 255,
			})
		}
	}
}

// Compose returns the card's artwork with its caption stamped in a strip
// beneath it.
func Compose(card Card) *image.RGBA {
	if card.Image == nil {
		return nil
	}
	b := card.Image.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+CaptionHeight))
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), card.Image, b.Min, draw.Src)
	strip := image.Rect(0, b.Dy(), b.Dx(), b.Dy()+CaptionHeight)
	draw.Draw(out, strip, image.NewUniform(color.RGBA{R: 16, G: 16, B: 24, A: 255}), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, b.Dy()+CaptionHeight-6),
	}
	d.DrawString(card.Caption)
	return out
}

// Name identifies the scene.
func (g *Gallery) Name() string { return "gallery" }

// Size returns the thumbnail dimensions.
func (g *Gallery) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Count is the number of cards the host loads by default.
func (g *Gallery) Count() int { return g.cfg.Count }

// Parameters describes the gallery for the overlay.
func (g *Gallery) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Gallery",
		Params: []core.Parameter{
			core.IntParam("cards", "Cards", len(g.cards)),
			core.IntParam("width", "Width", g.cfg.Width),
			core.IntParam("height", "Height", g.cfg.Height),
			core.StringParam("palette", "Palette", g.palette.String()),
		},
	}}}
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func init() {
	scene.Register("gallery", func(env scene.Env) (scene.Scene, error) {
		cfg := FromMap(env.Options)
		if env.Surface != nil {
			if s := env.SurfaceSize(); !s.Empty() {
				if _, ok := env.Options["width"]; !ok {
					cfg.Width = (s.W - 4*cardGap) / 3
				}
				if _, ok := env.Options["height"]; !ok {
					cfg.Height = (s.H-3*cardGap)/2 - CaptionHeight
				}
			}
		}
		g, err := New(cfg, env)
		if err != nil {
			return nil, err
		}
		g.LoadCount(cfg.Count)
		return g, nil
	})
}
