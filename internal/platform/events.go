// Package platform holds code shared by the terminal and window frontends.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/iced/internal/games/iced"
)

// LogEvents reports the session events of one frame. A nil logger is a no-op.
func LogEvents(logger *log.Logger, ev iced.Events, w iced.World) {
	if logger == nil {
		return
	}

	switch {
	case ev.Won:
		logger.Info("goal reached", "time", iced.FormatTime(w.WinTime))
	case ev.Died():
		cause := "fall"
		if ev.Spiked {
			cause = "spike"
		}
		logger.Info("player died", "cause", cause)
	case ev.Recovered:
		logger.Warn("player state was not finite, respawned")
	}
	if ev.Restarted {
		logger.Info("session restarted")
	}
	if ev.Jumped {
		logger.Debug("jump", "x", w.Player.Pos.X, "y", w.Player.Pos.Y)
	}
}
