// Package canvas provides a retained-mode drawing surface.
//
// Primitives (rectangles, ovals, text) are created once and then moved,
// recolored or deleted by handle. The canvas answers broad-phase overlap
// queries over the primitives' bounding boxes, and frontends draw whatever
// Items returns each frame. It is the only state shared between the game
// and its frontends, and it holds no game objects, only handles.
package canvas

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Kind identifies the shape of a primitive.
type Kind int

const (
	KindRect Kind = iota
	KindOval
	KindText
)

// String returns the primitive name.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindOval:
		return "oval"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Item is a single primitive on the canvas.
type Item struct {
	Handle core.Handle
	Kind   Kind
	Box    core.Box   // Bounding box; zero-size at the anchor for text
	Fill   core.Color // Fill color (text color for text)
	Text   string     // Text content (text only)
	Size   int        // Font size in points (text only)
}

// Canvas stores primitives by handle.
// It is not safe for concurrent use; the game loop is single-threaded.
type Canvas struct {
	width  float64
	height float64
	items  *intmap.Map[core.Handle, *Item]
	next   core.Handle
}

// New creates an empty canvas of the given pixel size.
func New(width, height float64) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		items:  intmap.New[core.Handle, *Item](64),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() float64 {
	return c.height
}

// Len returns the number of live primitives.
func (c *Canvas) Len() int {
	return c.items.Len()
}

func (c *Canvas) add(item *Item) core.Handle {
	c.next++
	item.Handle = c.next
	c.items.Put(item.Handle, item)
	return item.Handle
}

// CreateRect adds a filled rectangle.
func (c *Canvas) CreateRect(box core.Box, fill core.Color) core.Handle {
	return c.add(&Item{Kind: KindRect, Box: box, Fill: fill})
}

// CreateOval adds a filled ellipse inscribed in box.
func (c *Canvas) CreateOval(box core.Box, fill core.Color) core.Handle {
	return c.add(&Item{Kind: KindOval, Box: box, Fill: fill})
}

// CreateText adds a text label centered on (x, y).
func (c *Canvas) CreateText(x, y float64, text string, size int, fill core.Color) core.Handle {
	return c.add(&Item{
		Kind: KindText,
		Box:  core.NewBox(x, y, x, y),
		Fill: fill,
		Text: text,
		Size: size,
	})
}

// Coords returns the bounding box of h, or a zero box if h is gone.
func (c *Canvas) Coords(h core.Handle) core.Box {
	if item, ok := c.items.Get(h); ok {
		return item.Box
	}
	return core.Box{}
}

// Move translates h by (dx, dy). Unknown handles are ignored.
func (c *Canvas) Move(h core.Handle, dx, dy float64) {
	if item, ok := c.items.Get(h); ok {
		item.Box = item.Box.Translate(dx, dy)
	}
}

// SetFill recolors h. Unknown handles are ignored.
func (c *Canvas) SetFill(h core.Handle, fill core.Color) {
	if item, ok := c.items.Get(h); ok {
		item.Fill = fill
	}
}

// SetText replaces the content of a text primitive.
func (c *Canvas) SetText(h core.Handle, text string) {
	if item, ok := c.items.Get(h); ok && item.Kind == KindText {
		item.Text = text
	}
}

// Delete removes h. Deleting an unknown handle is a no-op.
func (c *Canvas) Delete(h core.Handle) {
	c.items.Del(h)
}

// FindOverlapping returns the handles of all primitives whose bounding box
// touches or intersects box, in creation order.
func (c *Canvas) FindOverlapping(box core.Box) []core.Handle {
	var found []core.Handle
	c.items.ForEach(func(h core.Handle, item *Item) bool {
		if item.Box.Overlaps(box) {
			found = append(found, h)
		}
		return true
	})
	slices.Sort(found)
	return found
}

// Items returns copies of all primitives in creation (stacking) order.
func (c *Canvas) Items() []Item {
	out := make([]Item, 0, c.items.Len())
	c.items.ForEach(func(_ core.Handle, item *Item) bool {
		out = append(out, *item)
		return true
	})
	slices.SortFunc(out, func(a, b Item) int {
		return int(a.Handle - b.Handle)
	})
	return out
}
