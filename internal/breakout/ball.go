package breakout

import (
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Ball is the moving entity. Its direction components are always -1 or +1;
// speed is in pixels per tick.
type Ball struct {
	Entity
	dirX   int
	dirY   int
	speed  float64
	frozen bool
}

// NewBall creates a ball centered on (x, y) with the given launch direction.
func NewBall(surface Surface, x, y, radius, speed float64, dirX, dirY int, fill core.Color) *Ball {
	box := core.NewBox(x-radius, y-radius, x+radius, y+radius)
	return &Ball{
		Entity: Entity{surface: surface, handle: surface.CreateOval(box, fill)},
		dirX:   unitSign(dirX),
		dirY:   unitSign(dirY),
		speed:  speed,
	}
}

func unitSign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

// Direction returns the current direction signs.
func (b *Ball) Direction() (x, y int) {
	return b.dirX, b.dirY
}

// Speed returns the ball speed and false once the ball has been frozen.
func (b *Ball) Speed() (float64, bool) {
	if b.frozen {
		return 0, false
	}
	return b.speed, true
}

// Freeze stops the ball for good; Update becomes a no-op.
func (b *Ball) Freeze() {
	b.frozen = true
}

// Update bounces off the left, right and top edges, then advances the ball
// one tick. Edge contact is checked before moving. The bottom edge is left
// to the game, which treats it as a lost life.
func (b *Ball) Update() {
	if b.frozen {
		return
	}

	pos := b.Position()
	width := b.surface.Width()
	if pos.MinX <= 0 || pos.MaxX >= width {
		b.dirX = -b.dirX
	}
	if pos.MinY <= 0 {
		b.dirY = -b.dirY
	}

	b.Move(float64(b.dirX)*b.speed, float64(b.dirY)*b.speed)
}

// Collide resolves the response to every object overlapping the ball this
// tick. Two or more overlaps always bounce vertically. A single overlap
// pushes the ball sideways when its center is past the object's left or
// right edge, and bounces vertically otherwise. Every brick touched is hit.
func (b *Ball) Collide(objects []Object) {
	x := b.Position().CenterX()

	switch {
	case len(objects) > 1:
		b.dirY = -b.dirY
	case len(objects) == 1:
		box := objects[0].Entity.Position()
		switch {
		case x > box.MaxX:
			b.dirX = 1
		case x < box.MinX:
			b.dirX = -1
		default:
			b.dirY = -b.dirY
		}
	}

	for _, obj := range objects {
		if obj.Kind == KindBrick {
			obj.Brick.Hit()
		}
	}
}
