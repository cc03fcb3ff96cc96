package matrix

import (
	"sync"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Pad is the two-button input driver.
type Pad struct {
	mu       sync.RWMutex
	handlers map[core.Button][]func()
}

// NewPad creates a pad with no handlers.
func NewPad() *Pad {
	return &Pad{handlers: make(map[core.Button][]func())}
}

// OnButtonPressed registers handler for b. Handlers run in registration order.
func (p *Pad) OnButtonPressed(b core.Button, handler func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[b] = append(p.handlers[b], handler)
}

// Press fires the handlers of b on the calling goroutine and returns how
// many ran.
func (p *Pad) Press(b core.Button) int {
	p.mu.RLock()
	hs := append([]func(){}, p.handlers[b]...)
	p.mu.RUnlock()

	for _, h := range hs {
		h()
	}
	return len(hs)
}
