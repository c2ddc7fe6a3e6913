package component

import (
	"github.com/lixenwraith/vi-pong/parameter"
)

// Net is the decorative divider, no physics relevance
type Net struct {
	X, Y          float64
	Width, Height float64
	Color         string
}

// NewNet creates the full-height net centered horizontally
func NewNet() Net {
	return Net{
		X:      parameter.CourtWidth/2 - parameter.NetWidth/2,
		Y:      0,
		Width:  parameter.NetWidth,
		Height: parameter.CourtHeight,
		Color:  parameter.ColorNet,
	}
}
