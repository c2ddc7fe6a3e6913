package component

import (
	"github.com/lixenwraith/vi-pong/parameter"
)

// Ball is a circle anchored by its center
// Speed is the magnitude used on reflection, it only matches the velocity vector right after a hit
type Ball struct {
	X, Y                 float64
	Radius               float64
	Speed                float64
	VelocityX, VelocityY float64
	Color                string
}

// NewBall creates a ball at court center heading down-right
func NewBall() Ball {
	return Ball{
		X:         parameter.CourtWidth / 2,
		Y:         parameter.CourtHeight / 2,
		Radius:    parameter.BallRadius,
		Speed:     parameter.BallBaseSpeed,
		VelocityX: parameter.BallInitialVelocityX,
		VelocityY: parameter.BallInitialVelocityY,
		Color:     parameter.ColorBall,
	}
}

// Reset recenters the ball, restores base speed and sends it back the way it came
func (b *Ball) Reset() {
	b.X = parameter.CourtWidth / 2
	b.Y = parameter.CourtHeight / 2
	b.Speed = parameter.BallBaseSpeed
	b.VelocityX = -b.VelocityX
	b.VelocityY = -b.VelocityY
}

// Integrate advances the ball by one velocity step
func (b *Ball) Integrate() {
	b.X += b.VelocityX
	b.Y += b.VelocityY
}

// Bounds returns the ball's bounding box edges
func (b *Ball) Bounds() (left, top, right, bottom float64) {
	return b.X - b.Radius, b.Y - b.Radius, b.X + b.Radius, b.Y + b.Radius
}
