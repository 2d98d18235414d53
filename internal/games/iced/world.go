// Package iced implements a slippery single-screen platformer.
// The player slides across icy platforms, dodging spikes, to reach a goal star
// while a timer runs. All state lives in World and is advanced by Advance.
package iced

import (
	"github.com/vovakirdan/iced/internal/config"
	"github.com/vovakirdan/iced/internal/core"
)

// Rules holds the session constants the simulation reads every frame.
type Rules struct {
	Physics config.PhysicsConfig
	Bounds  core.Vec2 // World width and height
	Spawn   core.Vec2 // Respawn point for the player's top-left corner
}

// RulesFrom extracts simulation rules from a loaded configuration.
func RulesFrom(cfg config.IcedConfig) Rules {
	return Rules{
		Physics: cfg.Physics,
		Bounds:  core.Vec2{X: cfg.World.Width, Y: cfg.World.Height},
		Spawn:   core.Vec2{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY},
	}
}

// Player is the controllable rectangle.
type Player struct {
	Pos      core.Vec2 // Top-left corner
	Vel      core.Vec2
	W, H     float64
	Grounded bool

	// GroundTime is seconds since the player last stood on a platform.
	// It is tracked but jump permission only looks at Grounded, so there is
	// no coyote time.
	GroundTime float64
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Center returns the center of the player's rectangle.
func (p Player) Center() core.Vec2 {
	return p.Rect().Center()
}

// Radius is the radius used for circular hazard and goal tests.
func (p Player) Radius() float64 {
	return min(p.W, p.H) / 2
}

// Platform is a solid, static, axis-aligned block.
type Platform struct {
	Rect core.RectF
}

// Spike is a static hazard. It is drawn as a triangle but collides as a circle.
type Spike struct {
	Pos  core.Vec2
	Size float64
}

// Goal is the star the player must touch.
type Goal struct {
	Pos  core.Vec2
	Size float64
}

// Level is the static layout of a session.
type Level struct {
	Platforms []Platform
	Spikes    []Spike
	Goal      Goal
}

// DefaultLevel returns the built-in layout for a world of the given size.
// The floor and the floor spikes follow the bottom edge.
func DefaultLevel(bounds core.Vec2) Level {
	w, h := bounds.X, bounds.Y

	return Level{
		Platforms: []Platform{
			{Rect: core.NewRectF(0, 500, 300, 20)},
			{Rect: core.NewRectF(400, 450, 250, 20)},
			{Rect: core.NewRectF(150, 350, 200, 20)},
			{Rect: core.NewRectF(500, 300, 200, 20)},
			{Rect: core.NewRectF(100, 200, 150, 20)},
			{Rect: core.NewRectF(600, 200, 180, 20)},
			{Rect: core.NewRectF(0, h-20, w, 20)},
		},
		Spikes: []Spike{
			{Pos: core.Vec2{X: 320, Y: 480}, Size: 15},
			{Pos: core.Vec2{X: 520, Y: 430}, Size: 15},
			{Pos: core.Vec2{X: 670, Y: 280}, Size: 15},
			{Pos: core.Vec2{X: 300, Y: h - 40}, Size: 15},
			{Pos: core.Vec2{X: 500, Y: h - 40}, Size: 15},
			{Pos: core.Vec2{X: 250, Y: 330}, Size: 15},
			{Pos: core.Vec2{X: 350, Y: 180}, Size: 15},
		},
		Goal: Goal{Pos: core.Vec2{X: 650, Y: 150}, Size: 25},
	}
}

// World is the complete session state.
// Platforms, Spikes and Goal are read-only after NewWorld.
type World struct {
	Rules     Rules
	Player    Player
	Platforms []Platform
	Spikes    []Spike
	Goal      Goal

	Won     bool
	Timer   float64 // Seconds since the last reset, frozen while Won
	WinTime float64 // Timer value captured when the goal was reached
}

// NewWorld creates a session in the Playing state with the player at spawn.
func NewWorld(cfg config.IcedConfig, level Level) World {
	rules := RulesFrom(cfg)
	return World{
		Rules: rules,
		Player: Player{
			Pos: rules.Spawn,
			W:   cfg.Player.Width,
			H:   cfg.Player.Height,
		},
		Platforms: level.Platforms,
		Spikes:    level.Spikes,
		Goal:      level.Goal,
	}
}

// respawn moves the player back to spawn and stops it.
// Grounded and GroundTime are left alone; the next collision pass recomputes them.
func (w World) respawn(p Player) Player {
	p.Pos = w.Rules.Spawn
	p.Vel = core.Vec2{}
	return p
}
