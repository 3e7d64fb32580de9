package core

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a fill color in "#RRGGBB" form.
// Frontends hand it to lipgloss as-is or convert it with RGBA.
type Color string

// Common colors used by the HUD.
const (
	ColorNone  Color = ""
	ColorWhite Color = "#FFFFFF"
	ColorBlack Color = "#000000"
)

// Valid reports whether c parses as a hex color.
func (c Color) Valid() bool {
	_, err := colorful.Hex(string(c))
	return err == nil
}

// RGBA converts the color for image-based frontends.
// Invalid or empty colors become fully transparent.
func (c Color) RGBA() color.RGBA {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{}
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
