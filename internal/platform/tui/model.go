package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/sched"
)

// session holds the state shared across Model copies.
type session struct {
	canvas *canvas.Canvas
	clock  *sched.Scheduler
	game   *breakout.Game
	hold   *keyHold
	logger *log.Logger
}

// Model is the Bubble Tea model for a brick breaker session.
type Model struct {
	s        *session
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	frame    time.Duration
	quitting bool
}

// NewModel creates a model for one game. The game is set up in Init.
func NewModel(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := canvas.New(cfg.Arena.Width, cfg.Arena.Height)
	clock := sched.New()
	game := breakout.New(c, clock, cfg, logger)

	return Model{
		s: &session{
			canvas: c,
			clock:  clock,
			game:   game,
			hold:   newKeyHold(game, clock, cfg.Timing.HoldDelay(), cfg.Timing.HoldTimeout()),
			logger: logger,
		},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(rt.ScreenW, playfieldHeight(rt.ScreenH)),
		frame:  frameInterval(rt.FrameRate),
	}
}

// playfieldHeight leaves one row for the help footer.
func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
}

// Game returns the game driven by the model.
func (m Model) Game() *breakout.Game {
	return m.s.game
}

// Init sets up the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.s.game.Setup()
	m.s.logger.Debug("arena ready", "primitives", m.s.canvas.Len())
	return tickCmd(m.frame)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.s.clock.Advance(m.frame)
		return m, tickCmd(m.frame)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.s.logger.Info("session ended", "phase", m.s.game.Phase(), "lives", m.s.game.Lives(),
			"played", m.s.clock.Now())
		m.s.game.Teardown()
		m.s.logger.Debug("game torn down", "primitives", m.s.canvas.Len(), "stale_callbacks", m.s.clock.Pending())
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.s.hold.press(action)
	case core.ActionStart, core.ActionRestart:
		m.s.game.KeyDown(action)
	case core.ActionNone:
		if key.Matches(msg, m.keys.Screenshot) {
			if paths, err := m.saveScreenshot(); err != nil {
				m.s.logger.Warn("screenshot failed", "err", err)
			} else {
				m.s.logger.Info("screenshot saved", "paths", paths)
			}
		}
	}

	return m, nil
}

// saveScreenshot writes the current frame to ~/.brickbreaker/screenshots
// twice: with ANSI colors (.ans) and as plain text (.txt).
func (m Model) saveScreenshot() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("tui: failed to find home directory: %w", err)
	}

	dir := filepath.Join(home, ".brickbreaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("tui: failed to create screenshot directory: %w", err)
	}

	base := filepath.Join(dir, "breakout_"+time.Now().Format("20060102_150405"))
	frames := []struct{ ext, data string }{
		{".ans", m.frameString()},
		{".txt", m.screen.String()},
	}

	paths := make([]string, 0, len(frames))
	for _, f := range frames {
		path := base + f.ext
		if err := os.WriteFile(path, []byte(f.data+"\n"), 0o600); err != nil {
			return nil, fmt.Errorf("tui: failed to write screenshot: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (m Model) frameString() string {
	m.screen.Clear()
	DrawCanvas(m.screen, m.s.canvas.Items(), m.s.canvas.Width(), m.s.canvas.Height())
	return RenderScreen(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frameString() + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one game.
func Run(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(cfg, rt, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
