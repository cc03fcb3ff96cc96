package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/platform/tui"
	"github.com/vovakirdan/tui-meteors/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  R           - New game (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Values from the config file
  hard   - Fast start, steep speed-up
  fixed  - No speed-up

Scores are kept until the program exits.

Examples:
  meteors play
  meteors play --difficulty easy
  meteors play --config ./my-meteors.yaml
  meteors play --log-file meteors.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "meteors")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for centering
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.GameOptions{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Meteors: cfg,
		Player:  playerName(),
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName returns the local user name for the leaderboard.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
