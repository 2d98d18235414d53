// Package config provides YAML-based tuning for the game and its frontends.
package config

import (
	"errors"
	"fmt"
)

// IcedConfig contains all configuration for the game.
type IcedConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	World    WorldConfig    `yaml:"world"`
	Frontend FrontendConfig `yaml:"frontend"`
}

// PhysicsConfig defines movement parameters in world units per second.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpForce   float64 `yaml:"jump_force"` // Negative = up
	MoveAccel   float64 `yaml:"move_accel"` // Horizontal acceleration while grounded
	AirAccel    float64 `yaml:"air_accel"`  // Horizontal acceleration while airborne
	IceFriction float64 `yaml:"ice_friction"`
	MaxSpeed    float64 `yaml:"max_speed"`

	// GroundFriction is the non-ice friction value. Every platform is ice,
	// so the simulation never reads it.
	GroundFriction float64 `yaml:"ground_friction"`
}

// PlayerConfig defines the player's hitbox and respawn point.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// WorldConfig defines the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FrontendConfig defines timing for the terminal and window frontends.
type FrontendConfig struct {
	TickRate     int     `yaml:"tick_rate"`      // Simulation ticks per second
	MaxFrameTime float64 `yaml:"max_frame_time"` // Upper bound for a measured frame delta, seconds
	InitialHold  float64 `yaml:"initial_hold"`   // Terminal: how long a first key press counts as held
	RepeatHold   float64 `yaml:"repeat_hold"`    // Terminal: how long a repeated key press counts as held
	WindowScale  float64 `yaml:"window_scale"`   // Window: window size multiplier
}

// Validate checks that the configuration can drive a simulation.
func (c IcedConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	nonNegative("physics.gravity", c.Physics.Gravity)
	nonNegative("physics.move_accel", c.Physics.MoveAccel)
	nonNegative("physics.air_accel", c.Physics.AirAccel)
	nonNegative("physics.ice_friction", c.Physics.IceFriction)
	nonNegative("physics.ground_friction", c.Physics.GroundFriction)
	positive("physics.max_speed", c.Physics.MaxSpeed)
	if !(c.Physics.JumpForce < 0) {
		errs = append(errs, fmt.Errorf("physics.jump_force must be negative (up), got %v", c.Physics.JumpForce))
	}

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)

	if c.Frontend.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("frontend.tick_rate must be positive, got %d", c.Frontend.TickRate))
	}
	positive("frontend.max_frame_time", c.Frontend.MaxFrameTime)
	positive("frontend.initial_hold", c.Frontend.InitialHold)
	positive("frontend.repeat_hold", c.Frontend.RepeatHold)
	positive("frontend.window_scale", c.Frontend.WindowScale)

	return errors.Join(errs...)
}
