// iced is a slippery single-screen platformer for the terminal and the desktop.
//
// Usage:
//
//	iced play      - Play in the terminal
//	iced window    - Play in a desktop window
//	iced config    - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--config <path>       - Load a custom config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/iced/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "iced",
	Short: "ICED - a slippery platformer",
	Long: `ICED is a single-screen platformer on ice. Slide across the platforms,
dodge the spikes and touch the star as fast as you can.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  iced play
  iced window --config ./my-iced.yaml
  iced play --log-file iced.log --log-level debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig() (config.IcedConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.IcedConfig{}, err
	}
	if flagFPS < 0 {
		return config.IcedConfig{}, fmt.Errorf("--fps must not be negative, got %d", flagFPS)
	}
	if flagFPS > 0 {
		cfg.Frontend.TickRate = flagFPS
	}
	return cfg, nil
}

// newLogger builds the session logger. Without --log-file, logs go to fallback.
// The returned close function releases the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "iced",
		Level:           level,
	})
	return logger, closeFn, nil
}
