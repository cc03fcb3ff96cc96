package meteors

import (
	"math"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Dodge picks the move that keeps the platform under the column whose next
// meteor lands last. Staying put wins ties. Used by the headless simulation.
func Dodge(platform Position, meteors []Position) core.Action {
	landsIn := func(x int) int {
		best := math.MaxInt
		for _, m := range meteors {
			if m.X == x {
				best = min(best, GroundRow-m.Y)
			}
		}
		return best
	}

	action, safest := core.ActionNone, landsIn(platform.X)
	if x := platform.X - 1; x >= 0 {
		if t := landsIn(x); t > safest {
			action, safest = core.ActionLeft, t
		}
	}
	if x := platform.X + 1; x < Width {
		if t := landsIn(x); t > safest {
			action = core.ActionRight
		}
	}
	return action
}
