package meteors

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// fakeDisplay is an in-memory board that records driver calls.
type fakeDisplay struct {
	mu      sync.Mutex
	lit     map[Position]bool
	calls   []string
	ambient []core.Color
	number  int
	numbers int
	clears  int

	// onUnplot runs after each Unplot, outside the display lock.
	onUnplot func(x, y int)
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{lit: make(map[Position]bool), number: -1}
}

func onBoard(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func (d *fakeDisplay) Plot(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "plot"+Position{x, y}.String())
	if onBoard(x, y) {
		d.lit[Position{x, y}] = true
	}
}

func (d *fakeDisplay) Unplot(x, y int) {
	d.mu.Lock()
	d.calls = append(d.calls, "unplot"+Position{x, y}.String())
	delete(d.lit, Position{x, y})
	hook := d.onUnplot
	d.mu.Unlock()

	if hook != nil {
		hook(x, y)
	}
}

func (d *fakeDisplay) PointIsLit(x, y int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lit[Position{x, y}]
}

func (d *fakeDisplay) SetAmbientColor(c core.Color) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ambient = append(d.ambient, c)
}

func (d *fakeDisplay) ClearScreen() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears++
	d.lit = make(map[Position]bool)
}

func (d *fakeDisplay) ShowNumber(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.number = n
	d.numbers++
}

func (d *fakeDisplay) isLit(x, y int) bool {
	return d.PointIsLit(x, y)
}

func (d *fakeDisplay) resetCalls() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}

// fakeButtons stores handlers so tests can press buttons directly.
type fakeButtons struct {
	handlers map[core.Button][]func()
}

func newFakeButtons() *fakeButtons {
	return &fakeButtons{handlers: make(map[core.Button][]func())}
}

func (b *fakeButtons) OnButtonPressed(btn core.Button, h func()) {
	b.handlers[btn] = append(b.handlers[btn], h)
}

func (b *fakeButtons) press(btn core.Button) {
	for _, h := range b.handlers[btn] {
		h()
	}
}

// seqRand returns its values in order, wrapping around.
type seqRand struct {
	values []int
	i      int
}

func (r *seqRand) Intn(n int) int {
	v := r.values[r.i%len(r.values)] % n
	r.i++
	return v
}

// fakeClock never blocks and cancels the run after limit sleeps.
type fakeClock struct {
	mu     sync.Mutex
	limit  int
	cancel context.CancelFunc
	sleeps []time.Duration
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	n := len(c.sleeps)
	c.mu.Unlock()

	if n >= c.limit {
		c.cancel()
		return ctx.Err()
	}
	runtime.Gosched()
	return nil
}

func (c *fakeClock) count(d time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, s := range c.sleeps {
		if s == d {
			n++
		}
	}
	return n
}

// recordingListener logs field events in order.
type recordingListener struct {
	events []string
	exits  int
}

func (l *recordingListener) MeteorMoved(x, y int) {
	l.events = append(l.events, "moved"+Position{x, y}.String())
}

func (l *recordingListener) MeteorExited() {
	l.events = append(l.events, "exited")
	l.exits++
}

// placeMeteors replaces the field contents with meteors at the given cells.
func placeMeteors(f *MeteorField, cells ...Position) {
	f.meteors = f.meteors[:0]
	for _, p := range cells {
		m := NewMeteor(f.display, p.X)
		m.pos.Y = p.Y
		f.meteors = append(f.meteors, m)
	}
}
