package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell or the ambient
// light of the LED matrix.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Board colors and the ambient palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorOrange
	ColorGray
	ColorPurple
	ColorViolet
)

var colorNames = map[Color]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorWhite:        "white",
	ColorBrightRed:    "bright_red",
	ColorBrightYellow: "bright_yellow",
	ColorOrange:       "orange",
	ColorGray:         "gray",
	ColorPurple:       "purple",
	ColorViolet:       "violet",
}

// String returns the config name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a config color name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}
