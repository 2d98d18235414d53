package iced

import (
	"github.com/vovakirdan/iced/internal/config"
	"github.com/vovakirdan/iced/internal/core"
)

// Game owns a World for a frontend and advances it one frame at a time.
type Game struct {
	cfg   config.IcedConfig
	level Level
	world World
}

// New creates a game on the default level.
func New(cfg config.IcedConfig) *Game {
	g := &Game{
		cfg:   cfg,
		level: DefaultLevel(core.Vec2{X: cfg.World.Width, Y: cfg.World.Height}),
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "iced"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "ICED - Slippery Platformer"
}

// Reset starts a fresh session.
func (g *Game) Reset() {
	g.world = NewWorld(g.cfg, g.level)
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) Events {
	var ev Events
	g.world, ev = Advance(g.world, dt, InputFrom(in))
	return ev
}

// World returns a snapshot of the current state for drawing.
func (g *Game) World() World {
	return g.world
}
