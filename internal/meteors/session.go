package meteors

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Timing holds the scheduling and spawn-cap settings of a session.
// The starting pause and its decrement are passed to Run.
type Timing struct {
	MinDelay    time.Duration // floor of the tick pause
	RampPeriod  time.Duration // how often the pause shrinks
	CyclePeriod time.Duration // length of one color cycle
	Flash       time.Duration // ambient color on-time per cycle
	InitialCap  int
	MaxCap      int
	Palette     []core.Color
}

// DefaultTiming mirrors config.DefaultMeteorsConfig.
func DefaultTiming() Timing {
	return Timing{
		MinDelay:    250 * time.Millisecond,
		RampPeriod:  500 * time.Millisecond,
		CyclePeriod: 15 * time.Second,
		Flash:       time.Second,
		InitialCap:  2,
		MaxCap:      5,
		Palette:     []core.Color{core.ColorBlue, core.ColorPurple, core.ColorViolet, core.ColorRed},
	}
}

// TimingFromConfig converts a validated config.
func TimingFromConfig(cfg config.MeteorsConfig) (Timing, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return Timing{}, err
	}
	return Timing{
		MinDelay:    cfg.Timing.MinDelay(),
		RampPeriod:  cfg.Timing.RampPeriod(),
		CyclePeriod: cfg.Timing.CyclePeriod(),
		Flash:       cfg.Timing.Flash(),
		InitialCap:  cfg.Spawn.InitialCap,
		MaxCap:      cfg.Spawn.MaxCap,
		Palette:     palette,
	}, nil
}

// Option configures a Session.
type Option func(*Session)

// WithTiming replaces DefaultTiming.
func WithTiming(t Timing) Option {
	return func(s *Session) { s.timing = t }
}

// WithClock replaces RealClock.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithLogger sets the debug logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session is one game: a platform, the meteors, the score and the difficulty
// timers. A session is PLAYING until a meteor lands on the platform and OVER
// from then on; a new game needs a new Session.
type Session struct {
	display Display
	rng     Rand
	clock   Clock
	logger  *log.Logger
	timing  Timing

	// mu serializes board mutation between button handlers and the tick.
	mu       sync.Mutex
	platform *Platform
	field    *MeteorField

	gameOver atomic.Bool
	points   atomic.Int64

	ramp  *SpeedRamp
	cycle *ColorCycle
}

// NewSession creates a session drawing on d. rng is shared by spawning and
// the color cycle and is guarded internally.
func NewSession(d Display, rng Rand, opts ...Option) *Session {
	s := &Session{
		display: d,
		rng:     &lockedRand{src: rng},
		clock:   RealClock{},
		logger:  log.New(io.Discard),
		timing:  DefaultTiming(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.platform = NewPlatform(d)
	s.field = NewMeteorField(d, s.rng)
	s.ramp = NewSpeedRamp(s.timing.MinDelay, 0, s.timing.MinDelay)
	s.cycle = NewColorCycle(s.timing.InitialCap, s.timing.MaxCap, s.timing.Palette)
	return s
}

// Initialize connects the field events and the two buttons to the session.
// Call it once, before Run.
func (s *Session) Initialize(b Buttons) {
	s.field.SetListener(sessionListener{s})
	b.OnButtonPressed(core.ButtonLeft, s.MoveLeft)
	b.OnButtonPressed(core.ButtonRight, s.MoveRight)
}

// MoveLeft moves the platform left. Ignored once the game is over.
func (s *Session) MoveLeft() {
	s.movePlatform((*Platform).MoveLeft)
}

// MoveRight moves the platform right. Ignored once the game is over.
func (s *Session) MoveRight() {
	s.movePlatform((*Platform).MoveRight)
}

func (s *Session) movePlatform(move func(*Platform)) {
	if s.gameOver.Load() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOver.Load() {
		return
	}
	move(s.platform)
}

// Tick runs one simulation step. While playing it spawns a meteor if the field
// is below the current cap and advances the field; once over it shows the score.
func (s *Session) Tick() {
	if s.gameOver.Load() {
		s.display.ClearScreen()
		s.display.ShowNumber(s.Points())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.field.Size() < s.cycle.Cap() {
		s.field.Spawn()
	}
	s.field.AdvanceAll()
}

// GameOver reports whether a meteor has hit the platform.
func (s *Session) GameOver() bool {
	return s.gameOver.Load()
}

// Points returns the number of meteors that reached the ground.
func (s *Session) Points() int {
	return int(s.points.Load())
}

// State returns the score and game-over flag as of the last completed tick.
// A meteor that lands on the platform ends the game before it scores, so the
// pair is read under the board lock.
func (s *Session) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.GameState{
		Score:    s.Points(),
		GameOver: s.GameOver(),
	}
}

// Delay returns the current pause between ticks.
func (s *Session) Delay() time.Duration {
	return s.ramp.Delay()
}

// Cap returns the current spawn cap.
func (s *Session) Cap() int {
	return s.cycle.Cap()
}

// Snapshot returns the platform and meteor cells under the board lock.
func (s *Session) Snapshot() (platform Position, meteors []Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform.Pos(), s.field.Positions()
}

// sessionListener keeps the Listener methods off the Session API.
type sessionListener struct {
	s *Session
}

// MeteorMoved ends the game when a meteor enters the platform's cell.
// Runs inside Tick with the board lock held.
func (l sessionListener) MeteorMoved(x, y int) {
	s := l.s
	if s.gameOver.Load() || !s.platform.Collides(x, y) {
		return
	}
	if s.gameOver.CompareAndSwap(false, true) {
		s.logger.Debug("game over", "x", x, "y", y, "points", s.Points())
	}
}

// MeteorExited scores a grounded meteor, also after the game is over.
func (l sessionListener) MeteorExited() {
	l.s.points.Add(1)
}
