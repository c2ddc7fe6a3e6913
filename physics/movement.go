package physics

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/parameter"
)

// StepPaddle applies one tick of held intent to a player paddle
// Up wins when both are held; the result stays inside [0, courtHeight-height]
func StepPaddle(p *component.Paddle, up, down bool, courtHeight float64) {
	switch {
	case up && p.Y > 0:
		p.Y -= parameter.PaddleStep
	case down && p.Y < courtHeight-p.Height:
		p.Y += parameter.PaddleStep
	default:
		return
	}

	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > courtHeight-p.Height {
		p.Y = courtHeight - p.Height
	}
}

// Track moves a paddle proportionally towards targetY, no bounds are applied
func Track(p *component.Paddle, targetY, gain float64) {
	p.Y += (targetY - p.CenterY()) * gain
}
