// Package matrix is an in-memory stand-in for a hand-held LED board: a small
// grid of lit/unlit pixels, an ambient light, a number overlay and a
// two-button pad. Terminal hosts snapshot it on every frame.
package matrix

import (
	"sync"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Display is a thread-safe LED matrix.
// Off-board coordinates are ignored and read as unlit.
type Display struct {
	mu      sync.Mutex
	bounds  core.Rect
	lit     []bool
	ambient core.Color
	number  int
	showing bool // number overlay active
}

// New creates a dark width x height matrix.
func New(width, height int) *Display {
	return &Display{
		bounds: core.NewRect(0, 0, width, height),
		lit:    make([]bool, width*height),
	}
}

func (d *Display) index(x, y int) (int, bool) {
	if !d.bounds.Contains(x, y) {
		return 0, false
	}
	return y*d.bounds.W + x, true
}

// Plot lights (x, y).
func (d *Display) Plot(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i, ok := d.index(x, y); ok {
		d.lit[i] = true
	}
}

// Unplot turns (x, y) off.
func (d *Display) Unplot(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i, ok := d.index(x, y); ok {
		d.lit[i] = false
	}
}

// PointIsLit reports whether (x, y) is lit.
func (d *Display) PointIsLit(x, y int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, ok := d.index(x, y)
	return ok && d.lit[i]
}

// SetAmbientColor sets the ambient light; core.ColorDefault turns it off.
func (d *Display) SetAmbientColor(c core.Color) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ambient = c
}

// ClearScreen turns every pixel off and hides the number.
// The ambient light is separate and keeps its color.
func (d *Display) ClearScreen() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.lit)
	d.showing = false
}

// ShowNumber overlays n on the matrix.
func (d *Display) ShowNumber(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.number = n
	d.showing = true
}

// Frame is a copy of the matrix state.
type Frame struct {
	Width, Height int
	Lit           []bool // row-major
	Ambient       core.Color
	Number        int
	ShowingNumber bool
}

// IsLit reports whether (x, y) was lit in the frame.
func (f Frame) IsLit(x, y int) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	return f.Lit[y*f.Width+x]
}

// Snapshot copies the current state.
func (d *Display) Snapshot() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	lit := make([]bool, len(d.lit))
	copy(lit, d.lit)
	return Frame{
		Width:         d.bounds.W,
		Height:        d.bounds.H,
		Lit:           lit,
		Ambient:       d.ambient,
		Number:        d.number,
		ShowingNumber: d.showing,
	}
}
