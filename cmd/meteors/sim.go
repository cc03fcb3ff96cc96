package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/meteors"
	"github.com/vovakirdan/tui-meteors/internal/platform/matrix"
)

var (
	flagSpeedup int
	flagTimeout time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot",
	Long: `Play one game without a terminal UI. An autopilot moves the platform away
from the meteor that would land on it first. All durations are divided by
--speedup, and the run stops at game over or after --timeout.

The result is logged to stderr; --log-level debug also logs the
game-over collision and when the speed-up reaches its floor.

Examples:
  meteors sim
  meteors sim --speedup 50 --timeout 10s
  meteors sim --seed 42 --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSpeedup, "speedup", 10, "Divide every game duration by this factor")
	simCmd.Flags().DurationVar(&flagTimeout, "timeout", time.Minute, "Stop the run after this long")
}

// simResult summarizes one headless game.
type simResult struct {
	Points   int
	GameOver bool
	Moves    int // platform moves made by the autopilot
	Delay    time.Duration
	Cap      int
	Elapsed  time.Duration
}

func runSim(_ *cobra.Command, _ []string) {
	if flagSpeedup < 1 {
		fmt.Fprintln(os.Stderr, "Error: --speedup must be at least 1")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, "meteors-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulation started", "seed", seed, "speedup", flagSpeedup, "timeout", flagTimeout)

	res, err := simulate(ctx, cfg.Scaled(flagSpeedup), seed, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulation finished",
		"points", res.Points,
		"game_over", res.GameOver,
		"moves", res.Moves,
		"delay", res.Delay,
		"cap", res.Cap,
		"elapsed", res.Elapsed.Round(time.Millisecond),
	)
}

// simulate plays one game on an in-memory matrix until game over or until
// ctx is done. The autopilot decides twice per minimum tick pause.
func simulate(ctx context.Context, cfg config.MeteorsConfig, seed int64, logger *log.Logger) (simResult, error) {
	timing, err := meteors.TimingFromConfig(cfg)
	if err != nil {
		return simResult{}, err
	}

	display := matrix.New(meteors.Width, meteors.Height)
	pad := matrix.NewPad()
	session := meteors.NewSession(display, rand.New(rand.NewSource(seed)),
		meteors.WithTiming(timing),
		meteors.WithLogger(logger),
	)
	session.Initialize(pad)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	done := make(chan struct{})
	go func() {
		defer close(done)
		//nolint:errcheck // Run only reports the context error
		session.Run(runCtx, cfg.Timing.InitialDelay(), cfg.Timing.DelayDecrease())
	}()

	ticker := time.NewTicker(max(timing.MinDelay/2, time.Millisecond))
	defer ticker.Stop()

	res := simResult{}
loop:
	for {
		select {
		case <-runCtx.Done():
			break loop
		case <-ticker.C:
			if session.GameOver() {
				break loop
			}
			platform, falling := session.Snapshot()
			if b, ok := meteors.Dodge(platform, falling).Button(); ok {
				pad.Press(b)
				res.Moves++
			}
		}
	}

	cancel()
	<-done

	res.Points = session.Points()
	res.GameOver = session.GameOver()
	res.Delay = session.Delay()
	res.Cap = session.Cap()
	res.Elapsed = time.Since(start)
	return res, nil
}
