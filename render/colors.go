package render

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Palette holds the resolved terminal colors for one frame
type Palette struct {
	Court tcell.Color
	Net   tcell.Color
	User  tcell.Color
	AI    tcell.Color
	Ball  tcell.Color
	Score tcell.Color
	Text  tcell.Color
}

var black = colorful.Color{}

// NewPalette resolves display colors, dim in [0,1] blends everything but text towards black
func NewPalette(dim float64) Palette {
	shade := func(hex string) tcell.Color {
		return ToTcell(ParseHex(hex).BlendLab(black, dim))
	}
	return Palette{
		Court: shade(parameter.ColorCourt),
		Net:   shade(parameter.ColorNet),
		User:  shade(parameter.ColorUser),
		AI:    shade(parameter.ColorAI),
		Ball:  shade(parameter.ColorBall),
		Score: shade(parameter.ColorScore),
		Text:  ToTcell(ParseHex(parameter.ColorText)),
	}
}

// ParseHex parses a "#rrggbb" color, falling back to white on malformed input
func ParseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		log.Printf("render: bad color %q: %v", hex, err)
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// ToTcell converts to a 24-bit terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
