package breakout

import (
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Paddle is the player's paddle. It only moves horizontally and carries the
// resting ball along until launch.
type Paddle struct {
	Entity
	ball *Ball // Resting ball, not owned
}

// NewPaddle creates a paddle centered on (x, y).
func NewPaddle(surface Surface, x, y, width, height float64, fill core.Color) *Paddle {
	return &Paddle{
		Entity: Entity{surface: surface, handle: surface.CreateRect(core.BoxAround(x, y, width, height), fill)},
	}
}

// SetBall attaches a resting ball, or detaches it with nil.
func (p *Paddle) SetBall(b *Ball) {
	p.ball = b
}

// Ball returns the resting ball, if any.
func (p *Paddle) Ball() *Ball {
	return p.ball
}

// Move shifts the paddle horizontally by offset if the whole paddle stays
// inside the arena; otherwise nothing moves. It reports whether it moved.
func (p *Paddle) Move(offset float64) bool {
	pos := p.Position()
	if pos.MinX+offset < 0 || pos.MaxX+offset > p.surface.Width() {
		return false
	}

	p.Entity.Move(offset, 0)
	if p.ball != nil {
		p.ball.Move(offset, 0)
	}
	return true
}
