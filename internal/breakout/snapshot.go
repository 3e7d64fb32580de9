package breakout

// Snapshot is the complete simulation state in primitive types, for
// determinism tests and debugging.
type Snapshot struct {
	Tick    uint64
	Phase   string
	Lives   int
	PaddleX int // Paddle left edge

	// Ball state; all zero before Setup
	BallX      int // Center
	BallY      int
	BallDirX   int
	BallDirY   int
	BallFrozen bool

	BricksRemaining int

	// Remaining hits per brick in grid order, 0 once destroyed
	BrickHits []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            g.ticks,
		Phase:           g.phase.String(),
		Lives:           g.lives,
		BricksRemaining: g.live,
		BrickHits:       make([]int, len(g.bricks)),
	}

	if g.paddle != nil {
		snap.PaddleX = int(g.paddle.Position().MinX)
	}
	if g.ball != nil {
		pos := g.ball.Position()
		snap.BallX = int(pos.CenterX())
		snap.BallY = int(pos.CenterY())
		snap.BallDirX, snap.BallDirY = g.ball.Direction()
		_, moving := g.ball.Speed()
		snap.BallFrozen = !moving
	}
	for i, b := range g.bricks {
		snap.BrickHits[i] = b.Hits()
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDirX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDirY) //#nosec G115 -- hash computation
	if snap.BallFrozen {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, v := range snap.BrickHits {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
