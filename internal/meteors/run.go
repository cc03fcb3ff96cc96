package meteors

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Run shows the platform and drives the session until ctx is done, returning
// ctx.Err(). Three activities run side by side:
//
//   - the speed ramp shortens the tick pause by decrease every ramp period,
//     starting from initialDelay;
//   - the color cycle raises the spawn cap and flashes an ambient color;
//   - the simulation ticks, pausing for the current delay after each tick.
//
// Game over only changes what the simulation tick does; the ramp and the
// color cycle keep running. Run must be called once per session.
func (s *Session) Run(ctx context.Context, initialDelay, decrease time.Duration) error {
	s.ramp.Reset(initialDelay, decrease)

	s.mu.Lock()
	s.platform.Show()
	s.mu.Unlock()

	s.logger.Debug("session started",
		"delay", initialDelay,
		"decrease", decrease,
		"cap", s.cycle.Cap(),
	)

	var wg sync.WaitGroup
	for _, activity := range []func(context.Context){
		s.runRamp,
		s.runColorCycle,
		s.runSimulation,
	} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			activity(ctx)
		}()
	}
	wg.Wait()

	s.logger.Debug("session stopped", "points", s.Points(), "over", s.GameOver())
	return ctx.Err()
}

func (s *Session) runRamp(ctx context.Context) {
	logged := false
	for {
		s.ramp.Step()
		if !logged && s.ramp.AtFloor() {
			s.logger.Debug("speed ramp at floor", "delay", s.ramp.Delay())
			logged = true
		}
		if s.clock.Sleep(ctx, s.timing.RampPeriod) != nil {
			return
		}
	}
}

func (s *Session) runColorCycle(ctx context.Context) {
	for {
		color := s.cycle.Advance(s.rng)
		s.display.SetAmbientColor(color)
		if s.clock.Sleep(ctx, s.timing.Flash) != nil {
			return
		}
		s.display.SetAmbientColor(core.ColorDefault)
		if s.clock.Sleep(ctx, s.timing.CyclePeriod-s.timing.Flash) != nil {
			return
		}
	}
}

func (s *Session) runSimulation(ctx context.Context) {
	for {
		s.Tick()
		if s.clock.Sleep(ctx, s.ramp.Delay()) != nil {
			return
		}
	}
}
