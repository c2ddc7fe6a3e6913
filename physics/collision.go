package physics

import (
	"math"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Bounce angles relative to the horizontal, in radians
const (
	AngleStraight = 0.0
	AngleUp       = -math.Pi / 4
	AngleDown     = math.Pi / 4
)

// Overlaps reports whether the paddle box and the ball's bounding box intersect
// Comparisons are strict, touching edges are not a collision
func Overlaps(p component.Paddle, b component.Ball) bool {
	left, top, right, bottom := b.Bounds()
	return left < p.X+p.Width &&
		top < p.Y+p.Height &&
		right > p.X &&
		bottom > p.Y
}

// BounceAngle picks the reflection angle from where the ball center sits against the paddle center
func BounceAngle(p component.Paddle, b component.Ball) float64 {
	center := p.CenterY()
	switch {
	case b.Y < center:
		return AngleUp
	case b.Y > center:
		return AngleDown
	default:
		return AngleStraight
	}
}

// Reflect redirects the ball away from the paddle of the hitting side and speeds it up
func Reflect(b *component.Ball, hitter component.Side, angle float64) {
	direction := 1.0
	if hitter == component.SideAI {
		direction = -1.0
	}
	b.VelocityX = direction * b.Speed * math.Cos(angle)
	b.VelocityY = b.Speed * math.Sin(angle)
	b.Speed += parameter.BallSpeedIncrement
}

// HitsWall reports whether the ball reached the top or bottom boundary
func HitsWall(b component.Ball, courtHeight float64) bool {
	return b.Y+b.Radius >= courtHeight || b.Y-b.Radius <= 0
}

// Scorer returns the side that scores when the ball reached a vertical boundary
func Scorer(b component.Ball, courtWidth float64) (component.Side, bool) {
	if b.X+b.Radius >= courtWidth {
		return component.SideUser, true
	}
	if b.X-b.Radius <= 0 {
		return component.SideAI, true
	}
	return component.SideUser, false
}
