package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/iced/internal/core"
	"github.com/vovakirdan/iced/internal/games/iced"
	"github.com/vovakirdan/iced/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play ICED in the terminal. The world is scaled to fit the window.

Terminals do not report key releases, so a movement key keeps the player
sliding for a moment after the last key event.

Controls:
  ←/A, →/D    - Move
  Space/↑/W   - Jump
  R           - Restart (after reaching the star)
  Q/Esc       - Quit

Logs are discarded unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs need a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = cfg.Frontend.TickRate

	game := iced.New(cfg)
	logger.Info("starting terminal session", "width", width, "height", height, "fps", rc.TickRate)

	if err := tui.Run(game, rc, cfg.Frontend, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
