package meteors

import (
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// SpeedRamp publishes the pause between simulation ticks.
// The pause only shrinks, one step per ramp period, down to a floor.
type SpeedRamp struct {
	delay    atomic.Int64
	decrease atomic.Int64
	floor    time.Duration
}

// NewSpeedRamp creates a ramp starting at initial.
func NewSpeedRamp(initial, decrease, floor time.Duration) *SpeedRamp {
	r := &SpeedRamp{floor: floor}
	r.Reset(initial, decrease)
	return r
}

// Reset restarts the ramp.
func (r *SpeedRamp) Reset(initial, decrease time.Duration) {
	r.delay.Store(int64(initial))
	r.decrease.Store(int64(max(decrease, 0)))
}

// Delay returns the current pause.
func (r *SpeedRamp) Delay() time.Duration {
	return time.Duration(r.delay.Load())
}

// Step shortens the pause by one decrement and returns the new value.
func (r *SpeedRamp) Step() time.Duration {
	d := max(r.Delay()-time.Duration(r.decrease.Load()), r.floor)
	r.delay.Store(int64(d))
	return d
}

// AtFloor reports whether the pause has reached its minimum.
func (r *SpeedRamp) AtFloor() bool {
	return r.Delay() <= r.floor
}

// ColorCycle publishes the spawn cap and picks the ambient color of each cycle.
type ColorCycle struct {
	limit   atomic.Int32
	maxCap  int32
	palette []core.Color
}

// NewColorCycle creates a cycle whose cap starts at initialCap.
func NewColorCycle(initialCap, maxCap int, palette []core.Color) *ColorCycle {
	c := &ColorCycle{
		maxCap:  int32(max(maxCap, initialCap)),
		palette: palette,
	}
	c.limit.Store(int32(initialCap))
	return c
}

// Cap returns how many meteors may be active at once.
func (c *ColorCycle) Cap() int {
	return int(c.limit.Load())
}

// Advance starts a new cycle: the cap grows by one up to its maximum and a
// palette color is drawn uniformly. An empty palette yields core.ColorDefault.
func (c *ColorCycle) Advance(rng Rand) core.Color {
	if cur := c.limit.Load(); cur < c.maxCap {
		c.limit.Store(cur + 1)
	}
	if len(c.palette) == 0 {
		return core.ColorDefault
	}
	return c.palette[rng.Intn(len(c.palette))]
}
