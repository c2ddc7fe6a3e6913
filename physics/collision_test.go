package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/parameter"
)

func paddleAt(x, y float64) component.Paddle {
	return component.Paddle{X: x, Y: y, Width: 10, Height: 100}
}

func ballAt(x, y float64) component.Ball {
	return component.Ball{X: x, Y: y, Radius: 7, Speed: 7}
}

func TestOverlaps(t *testing.T) {
	p := paddleAt(10, 250)

	tests := []struct {
		name string
		ball component.Ball
		want bool
	}{
		{"inside paddle", ballAt(15, 280), true},
		{"far away at origin", ballAt(0, 0), false},
		{"touching right edge", ballAt(27, 300), false},
		{"just past right edge", ballAt(26.9, 300), true},
		{"touching top edge", ballAt(15, 243), false},
		{"grazing top edge", ballAt(15, 243.5), true},
		{"touching bottom edge", ballAt(15, 357), false},
		{"touching left edge", ballAt(3, 300), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(p, tt.ball); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.ball, got, tt.want)
			}
		})
	}
}

func TestBounceAngle(t *testing.T) {
	p := paddleAt(10, 250) // center 300

	if got := BounceAngle(p, ballAt(15, 300)); got != AngleStraight {
		t.Errorf("Expected straight angle at paddle center, got %v", got)
	}
	if got := BounceAngle(p, ballAt(15, 299.9)); got != -math.Pi/4 {
		t.Errorf("Expected -pi/4 above center, got %v", got)
	}
	if got := BounceAngle(p, ballAt(15, 300.1)); got != math.Pi/4 {
		t.Errorf("Expected +pi/4 below center, got %v", got)
	}
}

func TestReflectStraight(t *testing.T) {
	tests := []struct {
		side  component.Side
		wantX float64
	}{
		{component.SideUser, 7},
		{component.SideAI, -7},
	}

	for _, tt := range tests {
		b := ballAt(300, 200)
		b.VelocityX, b.VelocityY = -3, 4
		Reflect(&b, tt.side, AngleStraight)

		if b.VelocityX != tt.wantX {
			t.Errorf("%v: expected VelocityX %v, got %v", tt.side, tt.wantX, b.VelocityX)
		}
		if b.VelocityY != 0 {
			t.Errorf("%v: expected VelocityY 0, got %v", tt.side, b.VelocityY)
		}
		if math.Abs(b.Speed-(7+parameter.BallSpeedIncrement)) > 1e-9 {
			t.Errorf("%v: expected speed to grow by increment, got %v", tt.side, b.Speed)
		}
	}
}

func TestReflectAngled(t *testing.T) {
	b := ballAt(300, 200)
	Reflect(&b, component.SideAI, AngleUp)

	want := 7 * math.Sqrt2 / 2
	if math.Abs(b.VelocityX+want) > 1e-9 {
		t.Errorf("Expected VelocityX %v, got %v", -want, b.VelocityX)
	}
	if math.Abs(b.VelocityY+want) > 1e-9 {
		t.Errorf("Expected VelocityY %v, got %v", -want, b.VelocityY)
	}
	// Reflection uses speed before the increment
	if got := math.Hypot(b.VelocityX, b.VelocityY); math.Abs(got-7) > 1e-9 {
		t.Errorf("Expected velocity magnitude 7, got %v", got)
	}
}

func TestHitsWall(t *testing.T) {
	h := parameter.CourtHeight
	cases := map[float64]bool{
		7:      true,
		8:      false,
		h - 7:  true,
		h - 8:  false,
		-2:     true,
		h + 10: true,
	}
	for y, want := range cases {
		if got := HitsWall(ballAt(100, y), h); got != want {
			t.Errorf("HitsWall(y=%v) = %v, want %v", y, got, want)
		}
	}
}

func TestScorer(t *testing.T) {
	w := parameter.CourtWidth

	if side, ok := Scorer(ballAt(w-7, 100), w); !ok || side != component.SideUser {
		t.Errorf("Expected user to score at right edge, got %v %v", side, ok)
	}
	if side, ok := Scorer(ballAt(7, 100), w); !ok || side != component.SideAI {
		t.Errorf("Expected ai to score at left edge, got %v %v", side, ok)
	}
	if _, ok := Scorer(ballAt(w/2, 100), w); ok {
		t.Error("Expected no score at court center")
	}
}
