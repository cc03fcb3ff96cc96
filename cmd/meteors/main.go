// meteors is a meteor-dodging game for a 5x5 LED matrix, played in the terminal.
//
// Usage:
//
//	meteors play     - Play in this terminal
//	meteors serve    - Start SSH server for remote play
//	meteors sim      - Run a headless game with an autopilot
//	meteors config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set redraw rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "meteors",
	Short: "Meteors - dodge falling meteors on a 5x5 LED matrix",
	Long: `Meteors drops meteors onto a 5x5 LED matrix. Move the platform on the
bottom row left and right to stay out of their way; every meteor that reaches
the ground scores a point. The game speeds up over time and more meteors fall
at once every color cycle.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless game with an autopilot
  config   - Print the effective configuration

Examples:
  meteors play
  meteors play --difficulty hard
  meteors serve --ssh :2222
  meteors sim --speedup 20 --log-level debug`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
