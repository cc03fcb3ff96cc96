package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/platform/matrix"
)

// colorCodes maps core.Color to ANSI 256-color codes.
// Every color a palette can name has an entry; ColorDefault has none.
var colorCodes = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
	core.ColorPurple:       "93",
	core.ColorViolet:       "177",
}

// styleFor returns the foreground style of c, plain for unknown colors.
func styleFor(c core.Color) lipgloss.Style {
	code, ok := colorCodes[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// Text styles shared by the game screen and the leaderboard.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(runColor).Render(run.String()))
		run.Reset()
	}
	return sb.String()
}

// RenderBoard draws a matrix frame on a fresh screen and styles it.
func RenderBoard(f matrix.Frame) string {
	w, h := matrix.BoardSize(f.Width, f.Height)
	screen := core.NewScreen(w, h)
	matrix.Draw(f, screen, 0, 0)
	return RenderScreen(screen)
}
