//go:build ebiten

package ui

import (
	"image/color"

	"superpose/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
)

// Overlay draws a translucent parameter panel in the top-left corner.
type Overlay struct {
	scene   scene.Scene
	width   int
	visible bool
	lines   []string
	panel   *ebiten.Image
}

// NewOverlay constructs an overlay for the scene with the given panel width.
func NewOverlay(sc scene.Scene, width int) *Overlay {
	if width <= 0 {
		width = 220
	}
	return &Overlay{scene: sc, width: width, visible: true}
}

// SetScene switches the scene the overlay describes.
func (o *Overlay) SetScene(sc scene.Scene) { o.scene = sc }

// Update refreshes the cached lines and handles the visibility toggle.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
	o.lines = append(Lines(o.scene), "", KeyHelp)
}

// Draw paints the panel onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.visible || len(o.lines) == 0 {
		return
	}
	height := panelPadding*2 + lineHeight*len(o.lines)
	if o.panel == nil || o.panel.Bounds().Dy() != height {
		o.panel = ebiten.NewImage(o.width, height)
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 180})

	face := basicfont.Face7x13
	for i, line := range o.lines {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 100, G: 200, B: 255, A: 255}
		}
		text.Draw(o.panel, line, face, panelPadding, panelPadding+lineHeight*(i+1)-4, fg)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(o.panel, op)
}
