package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"superpose/internal/core"
)

// DefaultPalette is the four-colour scheme shared by every scene: purple,
// blue, green and red.
const DefaultPalette = "#9c27b0,#2196f3,#4caf50,#f44336"

// Palette is an ordered set of opaque colours.
type Palette []color.NRGBA

// ParsePalette reads a comma-separated list of hex colours.
func ParsePalette(list string) (Palette, error) {
	var p Palette
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		c, err := ParseColor(field)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("palette %q has no colours", list)
	}
	return p, nil
}

// MustParsePalette is ParsePalette for compile-time constants.
func MustParsePalette(list string) Palette {
	p, err := ParsePalette(list)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseColor reads a single "#rrggbb" or "#rgb" colour.
func ParseColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimSpace(hex)
	if len(hex) == 4 && hex[0] == '#' {
		hex = "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) + strings.Repeat(hex[3:4], 2)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Pick returns a uniformly chosen palette entry.
func (p Palette) Pick(src core.Source) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{A: 0xff}
	}
	return p[core.Pick(src, len(p))]
}

// Index reports the position of c in the palette, or -1.
func (p Palette) Index(c color.Color) int {
	n := Opaque(c)
	for i, entry := range p {
		if entry == n {
			return i
		}
	}
	return -1
}

// String renders the palette back into its hex list form.
func (p Palette) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = Hex(c)
	}
	return strings.Join(parts, ",")
}

// Blend mixes a towards b in CIE L*a*b* space; t is clamped to [0, 1].
func Blend(a, b color.Color, t float64) color.NRGBA {
	if t <= 0 {
		return Opaque(a)
	}
	if t >= 1 {
		return Opaque(b)
	}
	ca, _ := colorful.MakeColor(Opaque(a))
	cb, _ := colorful.MakeColor(Opaque(b))
	r, g, bl := ca.BlendLab(cb, clamp01(t)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 0xff}
}

// Hex formats the colour as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	n := NRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// HexAlpha formats the colour as "#rrggbbaa".
func HexAlpha(c color.Color) string {
	n := NRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
