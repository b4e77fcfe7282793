package object

import (
	"math"
	"math/rand"

	"github.com/graeme-lockley/cursor-asteroids/internal/geom"
)

// Tier is the asteroid size class.
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
)

// Radius returns the collision radius for a tier. Radius is a pure function
// of the tier.
func (t Tier) Radius() float64 {
	switch t {
	case TierLarge:
		return 40
	case TierMedium:
		return 20
	default:
		return 10
	}
}

// Smaller returns the next tier down, or TierSmall and false when there is none.
func (t Tier) Smaller() (Tier, bool) {
	switch t {
	case TierLarge:
		return TierMedium, true
	case TierMedium:
		return TierSmall, true
	default:
		return TierSmall, false
	}
}

func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	default:
		return "small"
	}
}

// Initial wave asteroid speed range, logical units per second.
const (
	WaveSpeedMin = 50.0
	WaveSpeedMax = 100.0
)

// SplitSpeedFactor scales a parent's speed for its children.
const SplitSpeedFactor = 1.5

// SplitSpread is the maximum deviation of a child's heading from its parent's.
const SplitSpread = math.Pi / 4

// Asteroid is a destructible rock. Its silhouette is generated once at
// creation and only translated afterwards.
type Asteroid struct {
	Body
	Tier       Tier
	Silhouette []geom.Vec // Local-space irregular polygon
	destroyed  bool
}

// NewAsteroid creates an asteroid of the given tier at pos with velocity vel.
func NewAsteroid(pos, vel geom.Vec, tier Tier) *Asteroid {
	return &Asteroid{
		Body: Body{
			Pos:    pos,
			Vel:    vel,
			Radius: tier.Radius(),
		},
		Tier:       tier,
		Silhouette: newSilhouette(tier.Radius()),
	}
}

// NewWaveAsteroid creates a large asteroid on the playfield perimeter aimed
// loosely toward the center (heading perturbed by up to ±45°).
func NewWaveAsteroid(bounds Bounds) *Asteroid {
	var pos geom.Vec
	switch rand.Intn(4) {
	case 0: // Top
		pos = geom.Vec{X: rand.Float64() * bounds.Width, Y: 1}
	case 1: // Bottom
		pos = geom.Vec{X: rand.Float64() * bounds.Width, Y: bounds.Height - 1}
	case 2: // Left
		pos = geom.Vec{X: 1, Y: rand.Float64() * bounds.Height}
	default: // Right
		pos = geom.Vec{X: bounds.Width - 1, Y: rand.Float64() * bounds.Height}
	}

	angle := bounds.Center().Sub(pos).Heading()
	angle += (rand.Float64() - 0.5) * math.Pi / 2 // ±45°
	speed := WaveSpeedMin + rand.Float64()*(WaveSpeedMax-WaveSpeedMin)

	return NewAsteroid(pos, geom.FromAngle(angle, speed), TierLarge)
}

// newSilhouette builds an irregular closed polygon of roughly 8 vertices at
// even angular spacing with ±30% radius jitter.
func newSilhouette(radius float64) []geom.Vec {
	n := 8 + rand.Intn(3)
	verts := make([]geom.Vec, n)
	for i := range verts {
		angle := float64(i) * 2 * math.Pi / float64(n)
		dist := radius * (0.7 + rand.Float64()*0.6)
		verts[i] = geom.FromAngle(angle, dist)
	}
	return verts
}

// MarkDestroyed marks the asteroid for removal at the end of the tick.
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction.
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}

// Split returns the asteroid's children: two of the next tier down, each
// with 1.5x the parent's speed and a heading within ±45° of the parent's,
// randomized independently. Small asteroids yield none.
func (a *Asteroid) Split() []*Asteroid {
	child, ok := a.Tier.Smaller()
	if !ok {
		return nil
	}

	parentSpeed := a.Vel.Len()
	parentHeading := a.Vel.Heading()

	children := make([]*Asteroid, 2)
	for i := range children {
		angle := parentHeading + (rand.Float64()*2-1)*SplitSpread
		vel := geom.FromAngle(angle, parentSpeed*SplitSpeedFactor)
		children[i] = NewAsteroid(a.Pos, vel, child)
	}
	return children
}

// Update moves the asteroid. Returns true when it should be removed.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	if a.destroyed {
		return true
	}
	a.Advance(ctx.Delta.Seconds(), ctx.Bounds)
	return false
}

// Draw renders the asteroid's silhouette translated to its position.
func (a *Asteroid) Draw(ctx DrawContext) {
	points := ctx.Canvas.BorrowPoints(len(a.Silhouette))
	for i, v := range a.Silhouette {
		points[i].X = a.Pos.X + v.X
		points[i].Y = a.Pos.Y + v.Y
	}
	ctx.Canvas.DrawPolygon(points, false)
}
