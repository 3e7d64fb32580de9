// Package breakout implements the brick breaker simulation: ball, paddle and
// bricks living on a render surface, and the phase machine that drives them
// from a timer.
package breakout

import (
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Surface is the render collaborator the game draws on and queries.
// canvas.Canvas implements it.
type Surface interface {
	Width() float64
	Height() float64
	CreateRect(box core.Box, fill core.Color) core.Handle
	CreateOval(box core.Box, fill core.Color) core.Handle
	CreateText(x, y float64, text string, size int, fill core.Color) core.Handle
	Coords(h core.Handle) core.Box
	Move(h core.Handle, dx, dy float64)
	SetFill(h core.Handle, fill core.Color)
	SetText(h core.Handle, text string)
	Delete(h core.Handle)
	FindOverlapping(box core.Box) []core.Handle
}

// Timer runs a callback once after a delay.
// sched.Scheduler implements it.
type Timer interface {
	AfterFunc(d time.Duration, fn func())
}

// Kind tags what an arena object is, so collision response can switch on it.
type Kind int

const (
	KindPaddle Kind = iota
	KindBrick
	KindWall
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBrick:
		return "brick"
	case KindWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Entity is a primitive on the surface with an identity.
type Entity struct {
	surface Surface
	handle  core.Handle
}

// Handle returns the entity's surface handle.
func (e *Entity) Handle() core.Handle {
	return e.handle
}

// Position returns the entity's bounding box.
func (e *Entity) Position() core.Box {
	return e.surface.Coords(e.handle)
}

// Move translates the entity.
func (e *Entity) Move(dx, dy float64) {
	e.surface.Move(e.handle, dx, dy)
}

// Destroy removes the entity from the surface.
func (e *Entity) Destroy() {
	e.surface.Delete(e.handle)
}

// Object is a live, collidable arena entry.
// Brick is set only for KindBrick.
type Object struct {
	Kind   Kind
	Entity *Entity
	Brick  *Brick
}
