// Package core provides fundamental types and utilities shared by the
// simulation and its frontends. It has no UI dependencies (especially no
// Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

// Handle is the stable identity of a primitive on a render surface.
// Zero is never a valid handle.
type Handle int

// Box is an axis-aligned bounding box in arena (pixel) coordinates.
// MinX <= MaxX and MinY <= MaxY always hold for boxes built with NewBox.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBox creates a box from two corners, normalizing so min <= max.
func NewBox(x0, y0, x1, y1 float64) Box {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Box{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
}

// BoxAround creates a box of the given size centered on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return NewBox(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return (b.MinX + b.MaxX) * 0.5
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return (b.MinY + b.MaxY) * 0.5
}

// Translate returns the box shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		MinX: b.MinX + dx,
		MinY: b.MinY + dy,
		MaxX: b.MaxX + dx,
		MaxY: b.MaxY + dy,
	}
}

// Overlaps reports whether two boxes intersect. The test is inclusive:
// boxes that only touch along an edge or a corner overlap.
func (b Box) Overlaps(other Box) bool {
	if b.MaxX < other.MinX || other.MaxX < b.MinX {
		return false
	}
	if b.MaxY < other.MinY || other.MaxY < b.MinY {
		return false
	}
	return true
}

// Rect represents an axis-aligned rectangle of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Cells sharing only an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
