package object

import (
	"sync"

	"github.com/graeme-lockley/cursor-asteroids/internal/geom"
)

// BulletSpeed is the bullet speed in logical units per second.
const BulletSpeed = 500.0

// BulletRadius is the collision radius of a bullet.
const BulletRadius = 2.0

// BulletMaxDistanceFrac caps total bullet travel at this fraction of the
// smaller playfield dimension, so a bullet can never complete a full lap.
const BulletMaxDistanceFrac = 0.95

// bulletPool reuses Bullet objects to reduce allocations under rapid fire.
var bulletPool = sync.Pool{
	New: func() any {
		return &Bullet{}
	},
}

// Bullet is a projectile fired by the ship. It expires once its cumulative
// travelled distance reaches its cap.
type Bullet struct {
	Body
	Traveled  float64 // Cumulative distance, monotonically non-decreasing
	MaxTravel float64
	dead      bool
}

// NewBullet creates a bullet at pos traveling in direction angle. The travel
// cap is derived from the playfield.
func NewBullet(pos geom.Vec, angle float64, bounds Bounds) *Bullet {
	b := bulletPool.Get().(*Bullet)
	b.Pos = pos
	b.Vel = geom.FromAngle(angle, BulletSpeed)
	b.Radius = BulletRadius
	b.Traveled = 0
	b.MaxTravel = bounds.MinDimension() * BulletMaxDistanceFrac
	b.dead = false
	return b
}

// Release returns the bullet to its pool for reuse.
func (b *Bullet) Release() {
	bulletPool.Put(b)
}

// Kill marks the bullet dead. The transition is irreversible.
func (b *Bullet) Kill() {
	b.dead = true
}

// Dead reports whether the bullet has expired or was killed.
func (b *Bullet) Dead() bool {
	return b.dead
}

// Update moves the bullet and accumulates travelled distance. Returns true
// when the bullet should be removed.
//
// The distance added each tick is the pre-wrap displacement |Vel|*dt. When a
// wrap splits the tick this equals (old position -> exited edge) plus
// (opposite edge -> new position), so wrapping never undercounts travel.
func (b *Bullet) Update(ctx UpdateContext) bool {
	if b.dead {
		return true
	}

	dt := ctx.Delta.Seconds()
	step := b.Vel.Scale(dt)
	b.Traveled += step.Len()

	b.Pos = b.Pos.Add(step)
	ctx.Bounds.Wrap(&b.Pos)

	if b.Traveled >= b.MaxTravel {
		b.dead = true
		return true
	}
	return false
}

// Draw renders the bullet as a small filled dot.
func (b *Bullet) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(b.Pos.X, b.Pos.Y, b.Radius)
}
