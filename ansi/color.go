// Package ansi resolves colour and text-style state for a MUD session:
// SGR attribute mutation, xterm/RGB/named colour resolution, and the
// running style-span buffer that turns styled text into flushed
// fragments. It has no notion of TELNET or MXP; both of those live
// above it and push/pop the Style values this package defines.
package ansi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorOrigin tags how a Color was produced, matching the spec's
// "RGB with origin tag: default, ANSI-16, xterm-256, RGB24, named".
type ColorOrigin int

const (
	ColorDefault ColorOrigin = iota
	ColorAnsi16
	ColorXterm256
	ColorRGB
	ColorNamed
)

// Color is a resolved foreground/background colour value.
type Color struct {
	Origin ColorOrigin
	Index  uint8 // meaningful for ColorAnsi16 (0-15) and ColorXterm256 (0-255)
	R, G, B uint8 // meaningful for ColorRGB and ColorNamed
	Name   string // meaningful for ColorNamed
}

// DefaultColor is the terminal's default foreground/background.
func DefaultColor() Color { return Color{Origin: ColorDefault} }

// Ansi16 builds a 4-bit ANSI colour (index 0-15).
func Ansi16(index uint8) Color { return Color{Origin: ColorAnsi16, Index: index % 16} }

// Xterm256 builds an 8-bit xterm palette colour.
func Xterm256(index uint8) Color { return Color{Origin: ColorXterm256, Index: index} }

// RGB24 builds a 24-bit true-colour value.
func RGB24(r, g, b uint8) Color { return Color{Origin: ColorRGB, R: r, G: g, B: b} }

// RGB is a plain 24-bit colour triple, used for Config.Colors palette
// overrides.
type RGB struct{ R, G, B uint8 }

// ResolveAnsi16 applies a configured 16-colour palette override to an
// ANSI-16 colour, producing an explicit RGB colour. Colours of any other
// origin, and a nil palette, pass through unchanged.
func ResolveAnsi16(c Color, palette *[16]RGB) Color {
	if c.Origin != ColorAnsi16 || palette == nil {
		return c
	}
	rgb := palette[c.Index]
	return Color{Origin: ColorRGB, R: rgb.R, G: rgb.G, B: rgb.B}
}

// namedColorHex is the MXP/HTML named-colour table used by <COLOR> and
// <FONT COLOR=...>. Kept small and explicit rather than importing a full
// CSS colour table, since MXP only ever needs this fixed set
// (https://www.zuggsoft.com/zmud/mxp.htm#Colors).
var namedColorHex = map[string]string{
	"black": "#000000", "maroon": "#800000", "green": "#008000",
	"olive": "#808000", "navy": "#000080", "purple": "#800080",
	"teal": "#008080", "silver": "#c0c0c0", "gray": "#808080",
	"grey": "#808080", "red": "#ff0000", "lime": "#00ff00",
	"yellow": "#ffff00", "blue": "#0000ff", "fuchsia": "#ff00ff",
	"aqua": "#00ffff", "white": "#ffffff", "orange": "#ffa500",
	"pink": "#ffc0cb", "brown": "#a52a2a", "cyan": "#00ffff",
	"magenta": "#ff00ff", "gold": "#ffd700", "violet": "#ee82ee",
	"indigo": "#4b0082", "steelblue": "#4682b4", "skyblue": "#87ceeb",
	"salmon": "#fa8072", "khaki": "#f0e68c", "coral": "#ff7f50",
	"chocolate": "#d2691e", "crimson": "#dc143c", "turquoise": "#40e0d0",
}

// NamedColor resolves an MXP colour name (case-insensitive) to a Color.
func NamedColor(name string) (Color, bool) {
	hex, ok := namedColorHex[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, false
	}
	r, g, b := c.RGB255()
	return Color{Origin: ColorNamed, Name: strings.ToLower(name), R: r, G: g, B: b}, true
}

// Lipgloss renders a Color as a lipgloss.TerminalColor, for consumers
// (the TUI) that want to paint TextFragment content directly.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	switch c.Origin {
	case ColorAnsi16, ColorXterm256:
		return lipgloss.Color(strconv.Itoa(int(c.Index)))
	case ColorRGB, ColorNamed:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	default:
		return lipgloss.NoColor{}
	}
}
