package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// BallGlyph is drawn for oval primitives.
const BallGlyph = '●'

// DrawCanvas rasterizes canvas items onto the screen in stacking order,
// scaling arena pixels to cells. Rectangles paint the cell background, ovals
// and text draw foreground runes over it. Items that land entirely off the
// screen are skipped.
func DrawCanvas(dst *core.Screen, items []canvas.Item, arenaW, arenaH float64) {
	if arenaW <= 0 || arenaH <= 0 {
		return
	}
	sx := float64(dst.Width()) / arenaW
	sy := float64(dst.Height()) / arenaH
	view := core.NewRect(0, 0, dst.Width(), dst.Height())

	for _, item := range items {
		switch item.Kind {
		case canvas.KindRect:
			if r := scaleBox(item.Box, sx, sy); view.Intersects(r) {
				dst.FillRect(r, item.Fill)
			}
		case canvas.KindOval:
			x := int(item.Box.CenterX() * sx)
			y := int(item.Box.CenterY() * sy)
			if view.Contains(x, y) {
				dst.SetColored(x, y, BallGlyph, item.Fill)
			}
		case canvas.KindText:
			x := int(math.Round(item.Box.MinX * sx))
			y := int(math.Round(item.Box.MinY * sy))
			if y >= 0 && y < dst.Height() {
				dst.DrawTextCentered(x, y, item.Text, item.Fill)
			}
		}
	}
}

// scaleBox maps a pixel box to cells. Every box covers at least one cell.
func scaleBox(b core.Box, sx, sy float64) core.Rect {
	x0 := int(math.Round(b.MinX * sx))
	y0 := int(math.Round(b.MinY * sy))
	x1 := int(math.Round(b.MaxX * sx))
	y1 := int(math.Round(b.MaxY * sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Color != core.ColorNone {
		style = style.Foreground(lipgloss.Color(c.Color))
	}
	if c.Bg != core.ColorNone {
		style = style.Background(lipgloss.Color(c.Bg))
	}
	return style
}
