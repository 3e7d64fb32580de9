package breakout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Phase is the macro state of a game.
type Phase int

const (
	PhaseSetup    Phase = iota // Nothing built yet, or torn down
	PhaseReady                 // Ball resting on the paddle, waiting for start
	PhasePlaying               // Ball in play, ticks scheduled
	PhaseLifeLost              // Ball left the bottom, waiting to respawn
	PhaseWin                   // All bricks destroyed
	PhaseGameOver              // Out of lives
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseLifeLost:
		return "life_lost"
	case PhaseWin:
		return "win"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks will run in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseWin || p == PhaseGameOver
}

// Game owns every entity of one brick breaker session and drives them from
// the timer. All methods must be called from the goroutine that advances
// the timer.
type Game struct {
	surface Surface
	timer   Timer
	cfg     config.BreakoutConfig
	logger  *log.Logger

	phase Phase
	lives int
	ticks uint64
	input core.InputState

	paddle *Paddle
	ball   *Ball
	bricks []*Brick // Grid order, destroyed bricks included
	live   int      // Bricks not yet destroyed

	// arena maps surface handles of collidable entities to their objects.
	// The ball, background and text are never in it.
	arena *intmap.Map[core.Handle, Object]

	background []core.Handle
	hud        core.Handle
	banner     core.Handle
	hasBanner  bool

	// gen invalidates callbacks scheduled before the last Teardown.
	gen int
}

// New creates a game drawing on surface and scheduling on timer.
// A nil logger discards log output. Call Setup to build the arena.
func New(surface Surface, timer Timer, cfg config.BreakoutConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		surface: surface,
		timer:   timer,
		cfg:     cfg,
		logger:  logger,
		input:   core.NewInputState(),
		arena:   intmap.New[core.Handle, Object](64),
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Lives returns the remaining lives. It is negative after game over.
func (g *Game) Lives() int {
	return g.lives
}

// Ticks returns how many ball ticks have run since Setup.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Paddle returns the paddle, or nil before Setup.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Ball returns the current ball, or nil before Setup.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Bricks returns the bricks still in play, in grid order.
func (g *Game) Bricks() []*Brick {
	live := make([]*Brick, 0, g.live)
	for _, b := range g.bricks {
		if !b.Destroyed() {
			live = append(live, b)
		}
	}
	return live
}

// BricksRemaining returns the number of bricks still in play.
func (g *Game) BricksRemaining() int {
	return g.live
}

// Held reports whether a movement key is currently held.
func (g *Game) Held(a core.Action) bool {
	return g.input.Held(a)
}

// Setup builds the background, paddle, brick grid and HUD, serves the first
// ball and starts the paddle poll.
func (g *Game) Setup() {
	if g.phase != PhaseSetup {
		g.Teardown()
	}

	g.lives = g.cfg.Gameplay.Lives
	g.ticks = 0
	g.input.Clear()

	g.drawBackground()

	g.paddle = NewPaddle(g.surface, g.surface.Width()/2, g.cfg.Paddle.Y,
		g.cfg.Paddle.Width, g.cfg.Paddle.Height, g.cfg.Paddle.Color)
	g.arena.Put(g.paddle.Handle(), Object{Kind: KindPaddle, Entity: &g.paddle.Entity})

	g.buildBricks()

	g.hud = g.surface.CreateText(g.cfg.Text.LivesX, g.cfg.Text.LivesY,
		g.livesText(), g.cfg.Text.HUDSize, g.cfg.Text.Color)

	g.logger.Info("game set up", "bricks", g.live, "lives", g.lives)

	g.ready()
	gen := g.gen
	g.timer.AfterFunc(g.cfg.Timing.PaddlePoll(), func() { g.pollPaddle(gen) })
}

func (g *Game) drawBackground() {
	bands := g.cfg.Theme.Background
	if len(bands) == 0 {
		return
	}
	w, h := g.surface.Width(), g.surface.Height()
	step := h / float64(len(bands))
	for i, c := range bands {
		box := core.NewBox(0, float64(i)*step, w, float64(i+1)*step)
		g.background = append(g.background, g.surface.CreateRect(box, c))
	}
}

// buildBricks lays out one brick per column per row. Columns start at the
// margin and repeat every spacing pixels while the column start stays left
// of width minus margin.
func (g *Game) buildBricks() {
	bc := g.cfg.Bricks
	g.bricks = g.bricks[:0]
	g.live = 0

	for x := bc.Margin; x < g.surface.Width()-bc.Margin; x += bc.Spacing {
		for _, row := range bc.Rows {
			b := NewBrick(g.surface, x+bc.Spacing/2, row.Y, bc.Width, bc.Height, row.Hits, bc.Colors)
			g.bricks = append(g.bricks, b)
			g.arena.Put(b.Handle(), Object{Kind: KindBrick, Entity: &b.Entity, Brick: b})
			g.live++
		}
	}
}

func (g *Game) livesText() string {
	return fmt.Sprintf(g.cfg.Text.Lives, g.lives)
}

// ready replaces the ball with a fresh one resting on the paddle and shows
// the start prompt.
func (g *Game) ready() {
	if g.ball != nil {
		g.ball.Destroy()
	}

	x := g.paddle.Position().CenterX()
	bc := g.cfg.Ball
	g.ball = NewBall(g.surface, x, bc.SpawnY, bc.Radius, bc.Speed, bc.DirectionX, bc.DirectionY, bc.Color)
	g.paddle.SetBall(g.ball)

	g.surface.SetText(g.hud, g.livesText())
	g.showBanner(g.cfg.Text.Prompt)
	g.setPhase(PhaseReady)
}

// Start launches the resting ball. It does nothing outside the Ready phase
// and reports whether the ball was launched.
func (g *Game) Start() bool {
	if g.phase != PhaseReady {
		return false
	}

	g.clearBanner()
	g.paddle.SetBall(nil)
	g.setPhase(PhasePlaying)
	g.tick(g.gen)
	return true
}

// Restart tears the game down and builds a fresh one. It only applies once
// the game has ended and reports whether it restarted.
func (g *Game) Restart() bool {
	if !g.phase.Terminal() {
		return false
	}
	g.logger.Info("restarting")
	g.Teardown()
	g.Setup()
	return true
}

// Teardown removes every primitive the game created and stops all scheduled
// callbacks from running.
func (g *Game) Teardown() {
	g.gen++

	for _, h := range g.background {
		g.surface.Delete(h)
	}
	g.background = g.background[:0]

	if g.ball != nil {
		g.ball.Destroy()
		g.ball = nil
	}
	if g.paddle != nil {
		g.paddle.Destroy()
		g.paddle = nil
	}
	for _, b := range g.bricks {
		if !b.Destroyed() {
			b.Destroy()
		}
	}
	g.bricks = g.bricks[:0]
	g.live = 0
	g.arena.Clear()

	g.clearBanner()
	if g.hud != 0 {
		g.surface.Delete(g.hud)
		g.hud = 0
	}

	g.input.Clear()
	g.setPhase(PhaseSetup)
}

// KeyDown handles a key press. Movement keys set the held flag, Start
// launches the ball and Restart restarts a finished game.
func (g *Game) KeyDown(a core.Action) {
	switch a {
	case core.ActionLeft, core.ActionRight:
		g.input.Press(a)
	case core.ActionStart:
		g.Start()
	case core.ActionRestart:
		g.Restart()
	}
}

// KeyUp handles a key release.
func (g *Game) KeyUp(a core.Action) {
	g.input.Release(a)
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.logger.Info("phase", "from", g.phase, "to", p, "lives", g.lives)
	g.phase = p
}

func (g *Game) showBanner(text string) {
	g.clearBanner()
	g.banner = g.surface.CreateText(g.surface.Width()/2, g.surface.Height()/2,
		text, g.cfg.Text.BannerSize, g.cfg.Text.Color)
	g.hasBanner = true
}

func (g *Game) clearBanner() {
	if g.hasBanner {
		g.surface.Delete(g.banner)
		g.hasBanner = false
	}
}

// pollPaddle applies the held movement keys and reschedules itself until the
// game ends.
func (g *Game) pollPaddle(gen int) {
	if gen != g.gen || g.phase.Terminal() {
		return
	}

	step := g.cfg.Paddle.Step
	if g.input.Held(core.ActionLeft) {
		g.paddle.Move(-step)
	}
	if g.input.Held(core.ActionRight) {
		g.paddle.Move(step)
	}

	g.timer.AfterFunc(g.cfg.Timing.PaddlePoll(), func() { g.pollPaddle(gen) })
}

// tick runs one ball step: collisions, then the win and bottom checks, then
// the move.
func (g *Game) tick(gen int) {
	if gen != g.gen || g.phase != PhasePlaying {
		return
	}
	g.ticks++

	g.checkCollisions()

	switch {
	case g.live == 0:
		g.ball.Freeze()
		g.showBanner(g.cfg.Text.Win)
		g.setPhase(PhaseWin)

	case g.ball.Position().MaxY >= g.surface.Height():
		g.ball.Freeze()
		g.lives--
		g.logger.Debug("life lost", "lives", g.lives, "tick", g.ticks)
		if g.lives < 0 {
			g.showBanner(g.cfg.Text.GameOver)
			g.setPhase(PhaseGameOver)
			return
		}
		g.setPhase(PhaseLifeLost)
		g.timer.AfterFunc(g.cfg.Timing.RespawnDelay(), func() {
			if gen == g.gen && g.phase == PhaseLifeLost {
				g.ready()
			}
		})

	default:
		g.ball.Update()
		g.timer.AfterFunc(g.cfg.Timing.Tick(), func() { g.tick(gen) })
	}
}

// checkCollisions resolves everything overlapping the ball and then drops
// bricks destroyed by the response from the arena. Handles with no live
// owner are skipped.
func (g *Game) checkCollisions() {
	handles := g.surface.FindOverlapping(g.ball.Position())

	objects := make([]Object, 0, len(handles))
	for _, h := range handles {
		if obj, ok := g.arena.Get(h); ok {
			objects = append(objects, obj)
		}
	}
	if len(objects) == 0 {
		return
	}

	g.ball.Collide(objects)

	for _, obj := range objects {
		if obj.Kind != KindBrick || !obj.Brick.Destroyed() {
			continue
		}
		h := obj.Brick.Handle()
		if _, ok := g.arena.Get(h); ok {
			g.arena.Del(h)
			g.live--
			g.logger.Debug("brick destroyed", "handle", h, "remaining", g.live)
		}
	}
}
