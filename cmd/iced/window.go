package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iced/internal/games/iced"
	"github.com/vovakirdan/iced/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play ICED in a desktop window at the configured window scale.

Controls:
  ←/A, →/D    - Move
  Space/↑/W   - Jump
  R           - Restart (after reaching the star)
  Esc/Q       - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("opening window", "scale", cfg.Frontend.WindowScale, "fps", cfg.Frontend.TickRate)
	return gui.Run(iced.New(cfg), cfg, logger)
}
