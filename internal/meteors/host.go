package meteors

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Display is the LED board the game draws on.
// Off-board coordinates are ignored by Plot and Unplot and are never lit.
type Display interface {
	Plot(x, y int)
	Unplot(x, y int)
	PointIsLit(x, y int) bool
	SetAmbientColor(c core.Color) // core.ColorDefault turns the light off
	ClearScreen()
	ShowNumber(n int)
}

// Buttons delivers button presses. Handlers may run on any goroutine.
type Buttons interface {
	OnButtonPressed(b core.Button, handler func())
}

// Clock suspends the calling activity.
type Clock interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in that case.
	Sleep(ctx context.Context, d time.Duration) error
}

// Rand is a uniform integer source; *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// RealClock sleeps on wall-clock timers.
type RealClock struct{}

// Sleep implements Clock.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// lockedRand shares one source between the spawn path and the color cycle.
type lockedRand struct {
	mu  sync.Mutex
	src Rand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}
