package matrix

import (
	"strconv"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Visual characters for rendering
const (
	LitChar   = '█'
	UnlitChar = '·'
)

// Drawing colors
const (
	LitColor    = core.ColorBrightRed
	UnlitColor  = core.ColorGray
	NumberColor = core.ColorBrightYellow
	FrameColor  = core.ColorGray // box color while the ambient light is off
)

// cellW is the width of one LED in terminal columns; terminal cells are
// roughly twice as tall as they are wide.
const cellW = 2

// BoardSize returns the screen size Draw needs for a width x height matrix.
func BoardSize(width, height int) (int, int) {
	return width*cellW + 4, height + 2
}

// Draw renders a frame into dst with its top-left corner at (x, y).
// The box takes the ambient color; the number overlay replaces the pixels.
func Draw(f Frame, dst *core.Screen, x, y int) {
	w, h := BoardSize(f.Width, f.Height)

	boxColor := FrameColor
	if f.Ambient != core.ColorDefault {
		boxColor = f.Ambient
	}
	dst.DrawBox(core.NewRect(x, y, w, h), boxColor)

	if f.ShowingNumber {
		text := strconv.Itoa(f.Number)
		tx := x + (w-len(text))/2
		dst.DrawTextColored(tx, y+h/2, text, NumberColor)
		return
	}

	for py := 0; py < f.Height; py++ {
		for px := 0; px < f.Width; px++ {
			sx := x + 2 + px*cellW
			sy := y + 1 + py
			if f.IsLit(px, py) {
				dst.SetColored(sx, sy, LitChar, LitColor)
				dst.SetColored(sx+1, sy, LitChar, LitColor)
			} else {
				dst.SetColored(sx, sy, UnlitChar, UnlitColor)
			}
		}
	}
}
