package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

func TestCreateAssignsIncreasingHandles(t *testing.T) {
	c := canvas.New(800, 600)

	a := c.CreateRect(core.NewBox(0, 0, 10, 10), "#FFFFFF")
	b := c.CreateOval(core.NewBox(0, 0, 20, 20), "#FFFFFF")
	txt := c.CreateText(400, 300, "hello", 24, core.ColorWhite)

	assert.NotEqual(t, core.Handle(0), a)
	assert.Less(t, a, b)
	assert.Less(t, b, txt)
	assert.Equal(t, 3, c.Len())
}

func TestMoveAndCoords(t *testing.T) {
	c := canvas.New(800, 600)
	h := c.CreateRect(core.NewBox(350, 492.5, 450, 507.5), "#FFB643")

	c.Move(h, -20, 0)

	assert.Equal(t, core.NewBox(330, 492.5, 430, 507.5), c.Coords(h))
}

func TestDeleteIsIdempotent(t *testing.T) {
	c := canvas.New(800, 600)
	h := c.CreateRect(core.NewBox(0, 0, 10, 10), "#FFFFFF")

	c.Delete(h)
	c.Delete(h)

	assert.Equal(t, core.Box{}, c.Coords(h))
	assert.Equal(t, 0, c.Len())

	// Operations on a deleted handle do nothing
	c.Move(h, 5, 5)
	c.SetFill(h, "#000000")
	assert.Equal(t, 0, c.Len())
}

func TestSetFillAndText(t *testing.T) {
	c := canvas.New(800, 600)
	r := c.CreateRect(core.NewBox(0, 0, 10, 10), "#8FE1A2")
	txt := c.CreateText(50, 20, "Lives: 3", 15, core.ColorWhite)

	c.SetFill(r, "#ED639E")
	c.SetText(txt, "Lives: 2")
	c.SetText(r, "ignored")

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, core.Color("#ED639E"), items[0].Fill)
	assert.Empty(t, items[0].Text)
	assert.Equal(t, "Lives: 2", items[1].Text)
	assert.Equal(t, 15, items[1].Size)
	assert.Equal(t, canvas.KindText, items[1].Kind)
}

func TestFindOverlappingIsInclusiveAndOrdered(t *testing.T) {
	c := canvas.New(800, 600)

	bg := c.CreateRect(core.NewBox(0, 0, 800, 600), "#6A5ACD")
	left := c.CreateRect(core.NewBox(100, 100, 200, 120), "#4535AA")
	right := c.CreateRect(core.NewBox(200, 100, 300, 120), "#4535AA")
	far := c.CreateRect(core.NewBox(500, 500, 600, 520), "#4535AA")

	// Ball box touching the shared edge of left and right
	got := c.FindOverlapping(core.NewBox(190, 110, 210, 130))

	assert.Equal(t, []core.Handle{bg, left, right}, got)
	assert.NotContains(t, got, far)
}

func TestFindOverlappingSkipsDeleted(t *testing.T) {
	c := canvas.New(800, 600)
	a := c.CreateRect(core.NewBox(0, 0, 10, 10), "#FFFFFF")
	b := c.CreateRect(core.NewBox(5, 5, 15, 15), "#FFFFFF")

	c.Delete(a)

	assert.Equal(t, []core.Handle{b}, c.FindOverlapping(core.NewBox(0, 0, 20, 20)))
}

func TestHandlesAreNeverReused(t *testing.T) {
	c := canvas.New(800, 600)
	first := c.CreateRect(core.NewBox(0, 0, 1, 1), "#FFFFFF")

	c.Delete(first)
	assert.Equal(t, 0, c.Len())

	second := c.CreateRect(core.NewBox(0, 0, 1, 1), "#FFFFFF")
	assert.Greater(t, second, first)
}

func TestItemsInCreationOrder(t *testing.T) {
	c := canvas.New(800, 600)
	var handles []core.Handle
	for i := range 50 {
		x := float64(i * 10)
		handles = append(handles, c.CreateRect(core.NewBox(x, 0, x+5, 5), "#FFFFFF"))
	}
	c.Delete(handles[10])

	items := c.Items()
	require.Len(t, items, 49)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].Handle, items[i].Handle)
	}
	assert.Equal(t, 800.0, c.Width())
	assert.Equal(t, 600.0, c.Height())
}
