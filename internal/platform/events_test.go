package platform

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/iced/internal/games/iced"
)

func TestLogEvents(t *testing.T) {
	tests := []struct {
		name     string
		ev       iced.Events
		expected string
	}{
		{"win", iced.Events{Won: true}, "goal reached"},
		{"spike", iced.Events{Spiked: true}, "cause=spike"},
		{"fall", iced.Events{Fell: true}, "cause=fall"},
		{"restart", iced.Events{Restarted: true}, "session restarted"},
		{"recovered", iced.Events{Recovered: true}, "not finite"},
		{"jump", iced.Events{Jumped: true}, "jump"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

			LogEvents(logger, tc.ev, iced.World{WinTime: 65.25})

			if !strings.Contains(buf.String(), tc.expected) {
				t.Errorf("log output %q should contain %q", buf.String(), tc.expected)
			}
		})
	}
}

func TestLogEventsQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	LogEvents(logger, iced.Events{}, iced.World{})
	if buf.Len() != 0 {
		t.Errorf("no events should log nothing, got %q", buf.String())
	}

	LogEvents(nil, iced.Events{Won: true}, iced.World{})
}
