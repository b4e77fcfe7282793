package object

import (
	"math"
	"math/rand"

	"github.com/graeme-lockley/cursor-asteroids/internal/draw"
	"github.com/graeme-lockley/cursor-asteroids/internal/geom"
)

// Ship tunables.
const (
	ShipRadius    = 15.0 // Collision radius
	RotationSpeed = 4.0  // Radians per second
	ThrustPower   = 300.0
	MaxSpeed      = 400.0
	// Friction is the fraction of velocity retained per second
	// (equivalent to a 0.99 multiplier per frame at 60 FPS).
	Friction = 0.55

	ShootDelay          = 0.2 // Minimum seconds between shots
	InvulnerabilityTime = 2.0 // Seconds of protection after (re)spawn
	DisintegrationTime  = 2.0 // Seconds the break-up animation plays
	BlinkFrequency      = 5.0 // Hz of the invulnerability blink

	// fragmentDamping is applied per frame at 60 FPS; the update scales it
	// to the actual frame time.
	fragmentDamping = 0.98
)

// ShipPhase is the ship's lifecycle state. Exactly one phase holds at a time.
type ShipPhase int

const (
	PhaseFlying ShipPhase = iota
	PhaseDisintegrating
	PhaseHidden
)

// Fragment is a piece of the ship's silhouette during disintegration.
// It is a visual effect, not a gameplay entity.
type Fragment struct {
	Points []geom.Vec // Local-space polyline
	Pos    geom.Vec
	Vel    geom.Vec
	Angle  float64
	Spin   float64 // Angular velocity, radians per second
}

// Ship is the player-controlled entity. It is created once per session and
// repositioned, never recreated, across deaths and respawns.
type Ship struct {
	Body
	Angle     float64 // Heading in radians (0 = right)
	Thrusting bool

	InvulnerableFor float64 // Seconds of damage exemption remaining
	ShootCooldown   float64 // Seconds until the next shot is allowed

	phase               ShipPhase
	DisintegrateElapsed float64
	Fragments           []Fragment
}

// NewShip creates a ship at pos, pointing up, with fresh invulnerability.
func NewShip(pos geom.Vec) *Ship {
	s := &Ship{}
	s.ResetTo(pos)
	return s
}

// Phase returns the ship's current lifecycle phase.
func (s *Ship) Phase() ShipPhase {
	return s.phase
}

// Visible reports whether the ship body should be rendered this frame,
// accounting for the invulnerability blink.
func (s *Ship) Visible() bool {
	if s.phase != PhaseFlying {
		return false
	}
	return ShouldRenderBlink(s.InvulnerableFor, BlinkFrequency)
}

// CanCollide reports whether the ship currently takes collision damage.
func (s *Ship) CanCollide() bool {
	return s.phase == PhaseFlying && s.InvulnerableFor <= 0
}

// ResetTo repositions the ship for flight: centered velocity-free spawn
// with a fresh invulnerability window. Always grants invulnerability.
func (s *Ship) ResetTo(pos geom.Vec) {
	s.Pos = pos
	s.Vel = geom.Vec{}
	s.Radius = ShipRadius
	s.Angle = -math.Pi / 2 // Pointing up
	s.Thrusting = false
	s.InvulnerableFor = InvulnerabilityTime
	s.ShootCooldown = 0
	s.phase = PhaseFlying
	s.DisintegrateElapsed = 0
	s.Fragments = nil
}

// StartDisintegration switches the ship into the break-up animation: the
// ship stops moving and its silhouette shatters into three fragments with
// randomized outward velocity and spin.
func (s *Ship) StartDisintegration() {
	if s.phase != PhaseFlying {
		return
	}
	s.phase = PhaseDisintegrating
	s.Vel = geom.Vec{}
	s.Thrusting = false
	s.DisintegrateElapsed = 0

	hull := s.silhouette()
	s.Fragments = make([]Fragment, 0, len(hull))
	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		mid := a.Add(b).Scale(0.5)

		outSpeed := 30 + rand.Float64()*40
		s.Fragments = append(s.Fragments, Fragment{
			Points: []geom.Vec{a.Sub(mid), b.Sub(mid)},
			Pos:    s.Pos.Add(mid),
			Vel:    mid.Scale(1 / math.Max(mid.Len(), 1)).Scale(outSpeed),
			Spin:   (rand.Float64()*2 - 1) * 4,
		})
	}
}

// silhouette returns the ship triangle in local space, nose first.
func (s *Ship) silhouette() []geom.Vec {
	nose := geom.FromAngle(s.Angle, s.Radius)
	left := geom.FromAngle(s.Angle+2.5, s.Radius*0.8)
	right := geom.FromAngle(s.Angle-2.5, s.Radius*0.8)
	return []geom.Vec{nose, left, right}
}

// Update advances the ship one tick. Input only applies while flying.
func (s *Ship) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()

	switch s.phase {
	case PhaseFlying:
		s.updateFlying(ctx, dt)
	case PhaseDisintegrating:
		s.updateDisintegrating(ctx, dt)
	case PhaseHidden:
		// Waiting for the orchestrator to respawn or end the game.
	}
}

func (s *Ship) updateFlying(ctx UpdateContext, dt float64) {
	if ctx.Input.Left {
		s.Angle -= RotationSpeed * dt
	}
	if ctx.Input.Right {
		s.Angle += RotationSpeed * dt
	}

	// Normalize angle to [-π, π]
	for s.Angle > math.Pi {
		s.Angle -= 2 * math.Pi
	}
	for s.Angle < -math.Pi {
		s.Angle += 2 * math.Pi
	}

	s.Thrusting = ctx.Input.Up
	if s.Thrusting {
		s.Vel = s.Vel.Add(geom.FromAngle(s.Angle, ThrustPower*dt))
	}

	// Friction applies every tick, then clamp to the speed cap.
	s.Vel = s.Vel.Scale(math.Pow(Friction, dt)).ClampLen(MaxSpeed)

	s.Advance(dt, ctx.Bounds)

	if s.InvulnerableFor > 0 {
		s.InvulnerableFor -= dt
		if s.InvulnerableFor < 0 {
			s.InvulnerableFor = 0
		}
	}

	if s.ShootCooldown > 0 {
		s.ShootCooldown -= dt
	}
	if ctx.Input.Fire && s.ShootCooldown <= 0 && ctx.Spawner != nil {
		s.ShootCooldown = ShootDelay
		nose := s.Pos.Add(geom.FromAngle(s.Angle, s.Radius))
		ctx.Spawner.SpawnBullet(NewBullet(nose, s.Angle, ctx.Bounds))
	}
}

func (s *Ship) updateDisintegrating(ctx UpdateContext, dt float64) {
	damp := math.Pow(fragmentDamping, dt*60)
	for i := range s.Fragments {
		f := &s.Fragments[i]
		f.Pos = f.Pos.Add(f.Vel.Scale(dt))
		ctx.Bounds.Wrap(&f.Pos)
		f.Angle += f.Spin * dt
		f.Vel = f.Vel.Scale(damp)
		f.Spin *= damp
	}

	s.DisintegrateElapsed += dt
	if s.DisintegrateElapsed >= DisintegrationTime {
		s.phase = PhaseHidden
		s.Fragments = nil
	}
}

// Draw renders the ship, its thrust flame, or its disintegration fragments,
// depending on phase.
func (s *Ship) Draw(ctx DrawContext) {
	switch s.phase {
	case PhaseFlying:
		if !s.Visible() {
			return
		}
		hull := s.silhouette()
		points := ctx.Canvas.BorrowPoints(len(hull))
		for i, v := range hull {
			points[i].X = s.Pos.X + v.X
			points[i].Y = s.Pos.Y + v.Y
		}
		ctx.Canvas.DrawPolygon(points, true)

		if s.Thrusting {
			back := s.Pos.Add(geom.FromAngle(s.Angle+math.Pi, s.Radius*1.2))
			tip := s.Pos.Add(geom.FromAngle(s.Angle+math.Pi, s.Radius*1.8))
			ctx.Canvas.DrawLine(
				pointFromVec(back),
				pointFromVec(tip),
			)
		}

	case PhaseDisintegrating:
		for i := range s.Fragments {
			f := &s.Fragments[i]
			sin, cos := math.Sincos(f.Angle)
			for j := 0; j+1 < len(f.Points); j++ {
				a := rotate(f.Points[j], sin, cos).Add(f.Pos)
				b := rotate(f.Points[j+1], sin, cos).Add(f.Pos)
				ctx.Canvas.DrawLine(pointFromVec(a), pointFromVec(b))
			}
		}

	case PhaseHidden:
		// Nothing to draw.
	}
}

func rotate(v geom.Vec, sin, cos float64) geom.Vec {
	return geom.Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

func pointFromVec(v geom.Vec) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}
