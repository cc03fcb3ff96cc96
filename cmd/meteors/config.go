package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the config search and the
difficulty preset, as YAML. The output is a valid --config file.

Search order:
  --config <path>
  ~/.arcade/configs/meteors.yaml
  ./configs/meteors.yaml
  built-in defaults

Examples:
  meteors config
  meteors config --difficulty hard > ~/.arcade/configs/meteors.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(out)
}
