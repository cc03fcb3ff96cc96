// Package meteors implements the Meteors game: a platform on the bottom row of
// a 5x5 LED board dodges falling meteors until one lands on it.
//
// The package holds the simulation only. Pixels, buttons, timers and the random
// source are reached through the Display, Buttons, Clock and Rand interfaces so
// the same session runs on a terminal, over SSH or headless in tests.
package meteors

import (
	"fmt"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Board geometry.
const (
	Width  = 5
	Height = 5

	SpawnRow  = -1         // above the visible board
	GroundRow = Height - 1 // the platform's row
)

// Position is a cell on the board. Y grows downwards.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ClampX keeps x on the board.
func ClampX(x int) int {
	return core.Clamp(x, 0, Width-1)
}

// ClampY keeps y between the spawn row and the ground row.
func ClampY(y int) int {
	return core.Clamp(y, SpawnRow, GroundRow)
}

// InBounds reports whether p is a legal entity position, spawn row included.
func InBounds(p Position) bool {
	return p.X >= 0 && p.X < Width && p.Y >= SpawnRow && p.Y <= GroundRow
}

// mustInBounds panics on positions the clamping should have made unreachable.
func mustInBounds(p Position) {
	if !InBounds(p) {
		panic(fmt.Sprintf("meteors: position %v out of bounds", p))
	}
}
