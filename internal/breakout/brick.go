package breakout

import (
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Brick is a stationary target that takes one to three hits.
type Brick struct {
	Entity
	hits   int
	colors map[int]core.Color
}

// NewBrick creates a brick centered on (x, y), colored for its hit count.
func NewBrick(surface Surface, x, y, width, height float64, hits int, colors map[int]core.Color) *Brick {
	return &Brick{
		Entity: Entity{surface: surface, handle: surface.CreateRect(core.BoxAround(x, y, width, height), colors[hits])},
		hits:   hits,
		colors: colors,
	}
}

// Hits returns the remaining hit count.
func (b *Brick) Hits() int {
	return b.hits
}

// Destroyed reports whether the brick has taken its last hit.
func (b *Brick) Destroyed() bool {
	return b.hits <= 0
}

// Hit takes one hit off the brick. The last hit removes it from the surface;
// any other hit recolors it.
func (b *Brick) Hit() {
	if b.hits <= 0 {
		return
	}

	b.hits--
	if b.hits == 0 {
		b.Destroy()
		return
	}
	b.surface.SetFill(b.handle, b.colors[b.hits])
}
