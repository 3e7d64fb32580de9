package tui

import (
	"time"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// keyHold turns terminal key presses into held keys. Terminals never report
// a release, so a key counts as released once no repeat arrives in time, or
// as soon as the opposite direction is pressed. A fresh press waits out the
// terminal's initial repeat delay; later repeats use the shorter timeout.
type keyHold struct {
	game    *breakout.Game
	timer   breakout.Timer
	delay   time.Duration
	timeout time.Duration
	gen     map[core.Action]int
}

func newKeyHold(game *breakout.Game, timer breakout.Timer, delay, timeout time.Duration) *keyHold {
	return &keyHold{
		game:    game,
		timer:   timer,
		delay:   delay,
		timeout: timeout,
		gen:     make(map[core.Action]int),
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}

// press marks a as held and arms its release.
func (h *keyHold) press(a core.Action) {
	if other := opposite(a); h.game.Held(other) {
		h.gen[other]++
		h.game.KeyUp(other)
	}

	wait := h.delay
	if h.game.Held(a) {
		wait = h.timeout
	}

	h.game.KeyDown(a)
	h.gen[a]++
	gen := h.gen[a]
	h.timer.AfterFunc(wait, func() {
		if h.gen[a] == gen {
			h.game.KeyUp(a)
		}
	})
}
