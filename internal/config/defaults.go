package config

import (
	_ "embed"
)

//go:embed defaults/iced.yaml
var defaultIcedYAML []byte

// DefaultIcedConfig returns the built-in configuration.
// It matches defaults/iced.yaml and is used when the embedded file cannot be parsed.
func DefaultIcedConfig() IcedConfig {
	return IcedConfig{
		Physics: PhysicsConfig{
			Gravity:        1200,
			JumpForce:      -700,
			MoveAccel:      800,
			AirAccel:       600,
			IceFriction:    120,
			GroundFriction: 600,
			MaxSpeed:       250,
		},
		Player: PlayerConfig{
			Width:  30,
			Height: 40,
			SpawnX: 100,
			SpawnY: 300,
		},
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Frontend: FrontendConfig{
			TickRate:     60,
			MaxFrameTime: 0.1,
			InitialHold:  0.5,
			RepeatHold:   0.12,
			WindowScale:  1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultIcedYAML
}
