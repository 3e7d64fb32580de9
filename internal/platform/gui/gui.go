// Package gui runs the brick breaker in a desktop window with Ebitengine.
// Ebitengine reports real key releases, so held keys map straight onto the
// game's input state.
package gui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/sched"
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Brick Breaker"

type binding struct {
	key    ebiten.Key
	action core.Action
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeySpace, core.ActionStart},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// Game adapts a breakout.Game to ebiten.Game.
type Game struct {
	canvas *canvas.Canvas
	clock  *sched.Scheduler
	game   *breakout.Game
	logger *log.Logger

	step  time.Duration
	font  *text.GoTextFaceSource
	faces map[int]*text.GoTextFace
}

// New creates a window game running at tps updates per second.
func New(cfg config.BreakoutConfig, tps int, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	font, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gui: failed to load font: %w", err)
	}

	c := canvas.New(cfg.Arena.Width, cfg.Arena.Height)
	clock := sched.New()
	return &Game{
		canvas: c,
		clock:  clock,
		game:   breakout.New(c, clock, cfg, logger),
		logger: logger,
		step:   time.Second / time.Duration(tps),
		font:   font,
		faces:  make(map[int]*text.GoTextFace),
	}, nil
}

// handleInput forwards key edges to the game. It reports whether quit was
// requested.
func (g *Game) handleInput(pressed, released func(ebiten.Key) bool) bool {
	for _, b := range bindings {
		switch {
		case pressed(b.key):
			if b.action == core.ActionQuit {
				return true
			}
			g.game.KeyDown(b.action)
		case released(b.key):
			g.game.KeyUp(b.action)
		}
	}
	return false
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.handleInput(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased) {
		return ebiten.Termination
	}
	g.clock.Advance(g.step)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, item := range g.canvas.Items() {
		b := item.Box
		clr := item.Fill.RGBA()
		switch item.Kind {
		case canvas.KindRect:
			vector.DrawFilledRect(screen, float32(b.MinX), float32(b.MinY),
				float32(b.Width()), float32(b.Height()), clr, false)
		case canvas.KindOval:
			vector.DrawFilledCircle(screen, float32(b.CenterX()), float32(b.CenterY()),
				float32(b.Width()/2), clr, true)
		case canvas.KindText:
			op := &text.DrawOptions{}
			op.GeoM.Translate(b.MinX, b.MinY)
			op.PrimaryAlign = text.AlignCenter
			op.SecondaryAlign = text.AlignCenter
			op.ColorScale.ScaleWithColor(clr)
			text.Draw(screen, item.Text, g.face(item.Size), op)
		}
	}
}

func (g *Game) face(size int) *text.GoTextFace {
	if f, ok := g.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: g.font, Size: float64(size)}
	g.faces[size] = f
	return f
}

// Layout implements ebiten.Game. The logical screen is the arena.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.canvas.Width()), int(g.canvas.Height())
}

// Run opens the window and blocks until it is closed or quit is pressed.
func Run(cfg config.BreakoutConfig, tps int, logger *log.Logger) error {
	g, err := New(cfg, tps, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.Arena.Width), int(cfg.Arena.Height))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(int(time.Second / g.step))

	g.game.Setup()
	g.logger.Debug("arena ready", "primitives", g.canvas.Len())
	defer g.game.Teardown()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	g.logger.Info("window closed", "phase", g.game.Phase(), "lives", g.game.Lives(), "played", g.clock.Now())
	return nil
}
