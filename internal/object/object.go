// Package object holds the game entities: ship, bullets and asteroids, plus
// the shared kinematics they are built on.
package object

import (
	"io"
	"math"
	"time"

	"github.com/graeme-lockley/cursor-asteroids/internal/draw"
	"github.com/graeme-lockley/cursor-asteroids/internal/geom"
	"github.com/graeme-lockley/cursor-asteroids/internal/input"
)

// Bounds is the logical playfield. All entities wrap inside it.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the center of the playfield.
func (b Bounds) Center() geom.Vec {
	return geom.Vec{X: b.Width / 2, Y: b.Height / 2}
}

// MinDimension returns the smaller of width and height.
func (b Bounds) MinDimension() float64 {
	return math.Min(b.Width, b.Height)
}

// Wrap wraps a position into [0, Width) x [0, Height) (Asteroids-style).
// This hard-edge policy is the single wrap rule for every entity.
func (b Bounds) Wrap(p *geom.Vec) {
	if b.Width > 0 {
		p.X = math.Mod(p.X, b.Width)
		if p.X < 0 {
			p.X += b.Width
		}
	}
	if b.Height > 0 {
		p.Y = math.Mod(p.Y, b.Height)
		if p.Y < 0 {
			p.Y += b.Height
		}
	}
}

// Spawner allows entities to spawn new entities during update.
type Spawner interface {
	SpawnBullet(b *Bullet)
}

// UpdateContext provides everything an entity needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   input.Input
	Bounds  Bounds
	Spawner Spawner
}

// DrawContext provides drawing resources for entities.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution half-block canvas
	Writer io.Writer    // Direct terminal output (HUD text)
}

// Body is the shared kinematic state: position, velocity and a collision
// radius. Advance applies simple Euler motion followed by the wrap policy.
type Body struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
}

// Advance moves the body by Vel*dt and wraps it into bounds.
func (b *Body) Advance(dt float64, bounds Bounds) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	bounds.Wrap(&b.Pos)
}

// ShouldRenderBlink returns true if an entity with remaining protection time
// should be rendered this frame (for a blinking effect). Always true once
// remainingTime <= 0.
func ShouldRenderBlink(remainingTime, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}
