package iced

import (
	"math"

	"github.com/vovakirdan/iced/internal/core"
)

// Input is the per-frame control state consumed by Advance.
type Input struct {
	Left    bool // Held
	Right   bool // Held
	Jump    bool // Pressed this frame
	Restart bool // Pressed this frame
}

// InputFrom converts a platform input frame into simulation input.
func InputFrom(f core.InputFrame) Input {
	return Input{
		Left:    f.IsHeld(core.ActionLeft),
		Right:   f.IsHeld(core.ActionRight),
		Jump:    f.WasPressed(core.ActionJump),
		Restart: f.WasPressed(core.ActionRestart),
	}
}

// Axis returns -1, 0 or +1. Holding both directions cancels out.
func (in Input) Axis() float64 {
	axis := 0.0
	if in.Left {
		axis--
	}
	if in.Right {
		axis++
	}
	return axis
}

// Events reports what happened during a single Advance call.
type Events struct {
	Jumped    bool
	Landed    bool
	Spiked    bool
	Fell      bool
	Won       bool
	Restarted bool
	Recovered bool // Non-finite player state was replaced by a respawn
}

// Died reports whether the player was sent back to spawn by a hazard or a fall.
func (e Events) Died() bool {
	return e.Spiked || e.Fell
}

// Advance runs one frame of the simulation and returns the next state.
// dt is the frame time in seconds; negative or non-finite values count as zero.
func Advance(w World, dt float64, in Input) (World, Events) {
	var ev Events
	dt = sanitizeDT(dt)
	phys := w.Rules.Physics
	p := w.Player
	wasGrounded := p.Grounded

	if !w.Won {
		w.Timer += dt
	}

	// Horizontal movement
	accel := phys.AirAccel
	if p.Grounded {
		accel = phys.MoveAccel
	}
	p.Vel.X += in.Axis() * accel * dt

	// Ice friction only applies on the ground; there is no air drag.
	if p.Grounded {
		p.Vel.X = applyFriction(p.Vel.X, phys.IceFriction*dt)
	}
	p.Vel.X = core.ClampF(p.Vel.X, -phys.MaxSpeed, phys.MaxSpeed)

	if in.Jump && p.Grounded {
		p.Vel.Y = phys.JumpForce
		p.Grounded = false
		ev.Jumped = true
	}

	if !p.Grounded {
		p.Vel.Y += phys.Gravity * dt
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	p = resolvePlatforms(p, w.Platforms)
	if p.Grounded {
		p.GroundTime = 0
		ev.Landed = !wasGrounded
	} else {
		p.GroundTime += dt
	}

	// Horizontal screen wrap
	if p.Pos.X > w.Rules.Bounds.X {
		p.Pos.X = -p.W
	}
	if p.Pos.X < -p.W {
		p.Pos.X = w.Rules.Bounds.X
	}

	// The center is recomputed per spike, so spikes after a hit test the spawn position.
	for _, s := range w.Spikes {
		if core.CircleHit(p.Center(), p.Radius(), s.Pos, s.Size) {
			p = w.respawn(p)
			w.Timer = 0
			ev.Spiked = true
		}
	}

	if !w.Won && core.CircleHit(p.Center(), p.Radius(), w.Goal.Pos, w.Goal.Size) {
		w.Won = true
		w.WinTime = w.Timer
		ev.Won = true
	}

	if p.Pos.Y > w.Rules.Bounds.Y {
		p = w.respawn(p)
		w.Timer = 0
		ev.Fell = true
	}

	if in.Restart && w.Won {
		w.Won = false
		w.Timer = 0
		p = w.respawn(p)
		ev.Restarted = true
	}

	if !p.Pos.IsFinite() || !p.Vel.IsFinite() {
		p = w.respawn(p)
		ev.Recovered = true
	}

	w.Player = p
	return w, ev
}

// resolvePlatforms pushes the player out of every platform it overlaps,
// in list order, along the axis of least penetration. Overlaps are measured
// against the rectangle from before any correction, so a player inside two
// stacked platforms receives both corrections.
func resolvePlatforms(p Player, platforms []Platform) Player {
	rect := p.Rect()
	p.Grounded = false

	for _, plat := range platforms {
		if !rect.Intersects(plat.Rect) && !rect.RestsOn(plat.Rect) {
			continue
		}
		overlap := rect.Overlap(plat.Rect)

		if overlap.W < overlap.H {
			// Horizontal collision
			if p.Pos.X < plat.Rect.X {
				p.Pos.X -= overlap.W
			} else {
				p.Pos.X += overlap.W
			}
			p.Vel.X = 0
			continue
		}

		// Vertical collision
		if p.Pos.Y < plat.Rect.Y {
			p.Pos.Y -= overlap.H
			p.Vel.Y = 0
			p.Grounded = true
		} else {
			p.Pos.Y += overlap.H
			p.Vel.Y = 0
		}
	}
	return p
}

// applyFriction reduces speed toward zero by amount without reversing it.
func applyFriction(speed, amount float64) float64 {
	if math.Abs(speed) > amount {
		return speed - math.Copysign(amount, speed)
	}
	return 0
}

func sanitizeDT(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}
