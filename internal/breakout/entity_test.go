package breakout

import (
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

var testColors = map[int]core.Color{1: "#4535AA", 2: "#ED639E", 3: "#8FE1A2"}

func fillOf(t *testing.T, c *canvas.Canvas, h core.Handle) core.Color {
	t.Helper()
	for _, item := range c.Items() {
		if item.Handle == h {
			return item.Fill
		}
	}
	t.Fatalf("handle %d not on canvas", h)
	return core.ColorNone
}

func onCanvas(c *canvas.Canvas, h core.Handle) bool {
	for _, item := range c.Items() {
		if item.Handle == h {
			return true
		}
	}
	return false
}

func TestBallUpdateMovesAlongDirection(t *testing.T) {
	c := canvas.New(800, 600)
	ball := NewBall(c, 400, 480, 10, 15, 1, -1, core.ColorWhite)

	ball.Update()

	pos := ball.Position()
	if pos.CenterX() != 415 || pos.CenterY() != 465 {
		t.Errorf("ball center = (%v, %v), expected (415, 465)", pos.CenterX(), pos.CenterY())
	}
	if dx, dy := ball.Direction(); dx != 1 || dy != -1 {
		t.Errorf("direction = (%d, %d), expected unchanged (1, -1)", dx, dy)
	}
}

func TestBallUpdateBouncesBeforeMoving(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		dirX, dirY   int
		wantX, wantY float64
		wantDX       int
		wantDY       int
	}{
		{"right edge", 795, 300, 1, -1, 780, 285, -1, -1},
		{"left edge", 10, 300, -1, 1, 25, 315, 1, 1},
		{"past right edge", 805, 300, 1, 1, 790, 315, -1, 1},
		{"top edge", 400, 10, 1, -1, 415, 25, 1, 1},
		{"top corner", 10, 10, -1, -1, 25, 25, 1, 1},
		{"bottom is not a bounce", 400, 595, 1, 1, 415, 610, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := canvas.New(800, 600)
			ball := NewBall(c, tc.x, tc.y, 10, 15, tc.dirX, tc.dirY, core.ColorWhite)

			ball.Update()

			pos := ball.Position()
			if pos.CenterX() != tc.wantX || pos.CenterY() != tc.wantY {
				t.Errorf("center = (%v, %v), expected (%v, %v)", pos.CenterX(), pos.CenterY(), tc.wantX, tc.wantY)
			}
			if dx, dy := ball.Direction(); dx != tc.wantDX || dy != tc.wantDY {
				t.Errorf("direction = (%d, %d), expected (%d, %d)", dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestBallFreeze(t *testing.T) {
	c := canvas.New(800, 600)
	ball := NewBall(c, 400, 300, 10, 15, 1, 1, core.ColorWhite)

	if speed, ok := ball.Speed(); !ok || speed != 15 {
		t.Fatalf("Speed() = %v, %v; expected 15, true", speed, ok)
	}

	ball.Freeze()
	ball.Update()

	if _, ok := ball.Speed(); ok {
		t.Error("frozen ball should report no speed")
	}
	if pos := ball.Position(); pos.CenterX() != 400 || pos.CenterY() != 300 {
		t.Errorf("frozen ball moved to (%v, %v)", pos.CenterX(), pos.CenterY())
	}
}

func TestBallCollideSingleObject(t *testing.T) {
	tests := []struct {
		name    string
		ballX   float64
		dirX    int
		wantDX  int
		wantDY  int
		comment string
	}{
		{"center inside span", 400, 1, 1, 1, "vertical bounce"},
		{"center on right edge", 450, 1, 1, 1, "right edge is exclusive"},
		{"center on left edge", 350, -1, -1, 1, "left edge is exclusive"},
		{"center right of span", 451, -1, 1, -1, "forced right"},
		{"center left of span", 349, 1, -1, -1, "forced left"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := canvas.New(800, 600)
			paddle := NewPaddle(c, 400, 500, 100, 15, "#FFB643")
			ball := NewBall(c, tc.ballX, 485, 10, 15, tc.dirX, -1, core.ColorWhite)

			ball.Collide([]Object{{Kind: KindPaddle, Entity: &paddle.Entity}})

			if dx, dy := ball.Direction(); dx != tc.wantDX || dy != tc.wantDY {
				t.Errorf("%s: direction = (%d, %d), expected (%d, %d)", tc.comment, dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestBallCollideMultipleObjects(t *testing.T) {
	c := canvas.New(800, 600)
	left := NewBrick(c, 50, 80, 75, 20, 2, testColors)
	right := NewBrick(c, 140, 80, 75, 20, 1, testColors)
	// Center far right of both bricks: the multi-hit branch ignores it
	ball := NewBall(c, 700, 100, 10, 15, -1, -1, core.ColorWhite)

	ball.Collide([]Object{
		{Kind: KindBrick, Entity: &left.Entity, Brick: left},
		{Kind: KindBrick, Entity: &right.Entity, Brick: right},
	})

	if dx, dy := ball.Direction(); dx != -1 || dy != 1 {
		t.Errorf("direction = (%d, %d), expected (-1, 1)", dx, dy)
	}
	if left.Hits() != 1 {
		t.Errorf("left brick hits = %d, expected 1", left.Hits())
	}
	if !right.Destroyed() {
		t.Error("right brick should be destroyed")
	}
}

func TestBallCollideNothing(t *testing.T) {
	c := canvas.New(800, 600)
	ball := NewBall(c, 400, 300, 10, 15, 1, -1, core.ColorWhite)

	ball.Collide(nil)

	if dx, dy := ball.Direction(); dx != 1 || dy != -1 {
		t.Errorf("direction = (%d, %d), expected unchanged", dx, dy)
	}
}

func TestBallCollidePaddleDoesNotHit(t *testing.T) {
	c := canvas.New(800, 600)
	paddle := NewPaddle(c, 400, 500, 100, 15, "#FFB643")
	brick := NewBrick(c, 400, 470, 75, 20, 3, testColors)
	ball := NewBall(c, 400, 485, 10, 15, 1, 1, core.ColorWhite)

	ball.Collide([]Object{
		{Kind: KindPaddle, Entity: &paddle.Entity},
		{Kind: KindBrick, Entity: &brick.Entity, Brick: brick},
	})

	if brick.Hits() != 2 {
		t.Errorf("brick hits = %d, expected 2", brick.Hits())
	}
	if !onCanvas(c, paddle.Handle()) {
		t.Error("paddle should survive a collision")
	}
}

func TestBrickHit(t *testing.T) {
	c := canvas.New(800, 600)
	brick := NewBrick(c, 50, 80, 75, 20, 3, testColors)

	if got := fillOf(t, c, brick.Handle()); got != testColors[3] {
		t.Errorf("initial fill = %q, expected %q", got, testColors[3])
	}

	for want := 2; want >= 1; want-- {
		brick.Hit()
		if brick.Hits() != want {
			t.Fatalf("hits = %d, expected %d", brick.Hits(), want)
		}
		if brick.Destroyed() || !onCanvas(c, brick.Handle()) {
			t.Fatalf("brick removed early at %d hits", want)
		}
		if got := fillOf(t, c, brick.Handle()); got != testColors[want] {
			t.Errorf("fill at %d hits = %q, expected %q", want, got, testColors[want])
		}
	}

	brick.Hit()
	if !brick.Destroyed() || brick.Hits() != 0 {
		t.Errorf("brick should be destroyed with 0 hits, got %d", brick.Hits())
	}
	if onCanvas(c, brick.Handle()) {
		t.Error("destroyed brick should be deleted from the canvas")
	}

	// Further hits are ignored
	brick.Hit()
	if brick.Hits() != 0 {
		t.Errorf("hits after extra hit = %d, expected 0", brick.Hits())
	}
}

func TestPaddleMove(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		offset  float64
		moved   bool
		wantMin float64
	}{
		{"left inside", 400, -20, true, 330},
		{"right inside", 400, 20, true, 370},
		{"left to edge", 60, -10, true, 0},
		{"left past edge", 60, -20, false, 10},
		{"right to edge", 740, 10, true, 700},
		{"right past edge", 740, 20, false, 690},
		{"zero offset", 400, 0, true, 350},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := canvas.New(800, 600)
			paddle := NewPaddle(c, tc.x, 500, 100, 15, "#FFB643")
			before := paddle.Position()

			if got := paddle.Move(tc.offset); got != tc.moved {
				t.Errorf("Move(%v) = %v, expected %v", tc.offset, got, tc.moved)
			}

			after := paddle.Position()
			if after.MinX != tc.wantMin {
				t.Errorf("MinX = %v, expected %v", after.MinX, tc.wantMin)
			}
			if after.MinY != before.MinY || after.MaxY != before.MaxY {
				t.Error("paddle must not move vertically")
			}
		})
	}
}

func TestPaddleCarriesRestingBall(t *testing.T) {
	c := canvas.New(800, 600)
	paddle := NewPaddle(c, 400, 500, 100, 15, "#FFB643")
	ball := NewBall(c, 400, 480, 10, 15, 1, -1, core.ColorWhite)
	paddle.SetBall(ball)

	paddle.Move(-20)
	if x := ball.Position().CenterX(); x != 380 {
		t.Errorf("resting ball x = %v, expected 380", x)
	}

	// A blocked move leaves the ball alone too
	paddle.Move(-1000)
	if x := ball.Position().CenterX(); x != 380 {
		t.Errorf("resting ball x after blocked move = %v, expected 380", x)
	}

	paddle.SetBall(nil)
	paddle.Move(20)
	if x := ball.Position().CenterX(); x != 380 {
		t.Errorf("launched ball x = %v, expected 380", x)
	}
	if paddle.Ball() != nil {
		t.Error("Ball() should be nil after SetBall(nil)")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPaddle, "paddle"},
		{KindBrick, "brick"},
		{KindWall, "wall"},
		{Kind(42), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, expected %q", tc.kind, got, tc.want)
		}
	}
}
