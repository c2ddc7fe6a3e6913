package component

import (
	"github.com/lixenwraith/vi-pong/parameter"
)

// Paddle is a rectangular bat anchored by its top-left corner
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Score         int
	Color         string

	// initial geometry restored by Reset
	homeX, homeY float64
}

// NewUserPaddle creates the human paddle on the left edge
func NewUserPaddle() Paddle {
	return newPaddle(parameter.PaddleInset, parameter.ColorUser)
}

// NewAIPaddle creates the engine-driven paddle on the right edge
func NewAIPaddle() Paddle {
	return newPaddle(parameter.CourtWidth-(parameter.PaddleWidth+parameter.PaddleInset), parameter.ColorAI)
}

func newPaddle(x float64, color string) Paddle {
	y := parameter.CourtHeight/2 - parameter.PaddleHeight/2
	return Paddle{
		X:      x,
		Y:      y,
		Width:  parameter.PaddleWidth,
		Height: parameter.PaddleHeight,
		Color:  color,
		homeX:  x,
		homeY:  y,
	}
}

// CenterY returns the vertical center of the paddle
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Reset moves the paddle back to its initial position and clears the score
func (p *Paddle) Reset() {
	p.X = p.homeX
	p.Y = p.homeY
	p.Score = 0
}
