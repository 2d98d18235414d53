// Package gui provides the Ebitengine window frontend for the game.
// It reads true key state, so held and just-pressed input map directly onto
// the simulation's input frame.
package gui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/iced/internal/config"
	"github.com/vovakirdan/iced/internal/core"
	"github.com/vovakirdan/iced/internal/games/iced"
	"github.com/vovakirdan/iced/internal/platform"
)

// Animation timings, in seconds.
const (
	goalPulseTime = 0.6
	bannerTime    = 0.5
)

// Game adapts an iced.Game to ebiten.Game.
type Game struct {
	game   *iced.Game
	art    *art
	logger *log.Logger
	dt     float64
	width  int
	height int

	input core.InputFrame

	// Goal pulse alternates between growing and shrinking tweens.
	pulseUp, pulseDown *gween.Tween
	pulseGrowing       bool
	goalScale          float32

	banner  *gween.Tween
	bannerT float32
}

// NewGame creates the window frontend. tickRate is the fixed update rate.
func NewGame(g *iced.Game, world config.WorldConfig, tickRate int, logger *log.Logger) (*Game, error) {
	a, err := newArt()
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return &Game{
		game:         g,
		art:          a,
		logger:       logger,
		dt:           1 / float64(tickRate),
		width:        int(world.Width),
		height:       int(world.Height),
		input:        core.NewInputFrame(),
		pulseUp:      gween.New(1, 1.15, goalPulseTime, ease.InOutSine),
		pulseDown:    gween.New(1.15, 1, goalPulseTime, ease.InOutSine),
		pulseGrowing: true,
		goalScale:    1,
		banner:       gween.New(0, 1, bannerTime, ease.OutBack),
	}, nil
}

// Update reads the keyboard and advances the simulation by one fixed tick.
func (g *Game) Update() error {
	readInput(&g.input)
	if g.input.WasPressed(core.ActionQuit) {
		return ebiten.Termination
	}

	ev := g.game.Step(g.input, g.dt)
	platform.LogEvents(g.logger, ev, g.game.World())

	g.updateAnimations(ev, float32(g.dt))
	return nil
}

func (g *Game) updateAnimations(ev iced.Events, dt float32) {
	tw := g.pulseDown
	if g.pulseGrowing {
		tw = g.pulseUp
	}
	var done bool
	g.goalScale, done = tw.Update(dt)
	if done {
		tw.Reset()
		g.pulseGrowing = !g.pulseGrowing
	}

	if ev.Won {
		g.banner.Reset()
	}
	if g.game.World().Won {
		g.bannerT, _ = g.banner.Update(dt)
	}
}

// Draw renders the current world.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.game.World()
	g.art.drawWorld(screen, w, float64(g.goalScale))
	g.art.drawHUD(screen, w, float64(g.bannerT))
}

// Layout fixes the logical screen to the world size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(g *iced.Game, cfg config.IcedConfig, logger *log.Logger) error {
	game, err := NewGame(g, cfg.World, cfg.Frontend.TickRate, logger)
	if err != nil {
		return err
	}

	scale := cfg.Frontend.WindowScale
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowSize(int(cfg.World.Width*scale), int(cfg.World.Height*scale))
	ebiten.SetTPS(cfg.Frontend.TickRate)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
