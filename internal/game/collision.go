package game

import (
	"github.com/graeme-lockley/cursor-asteroids/internal/object"
	"github.com/graeme-lockley/cursor-asteroids/internal/physics"
)

// resolveCollisions runs the per-tick collision scan. Bodies are marked for
// destruction during the scan and skipped once marked, then all effects
// (scoring, splitting, removal) are applied afterwards - nothing is matched
// twice within a tick and nothing is spliced mid-iteration.
func (g *Game) resolveCollisions() {
	var destroyed []*object.Asteroid

	// Bullet hits. A bullet spends itself on its first hit.
	for _, b := range g.Bullets {
		if b.Dead() {
			continue
		}
		for _, a := range g.Asteroids {
			if a.IsDestroyed() {
				continue
			}
			if physics.CirclesOverlap(b.Pos, b.Radius, a.Pos, a.Radius) {
				b.Kill()
				a.MarkDestroyed()
				destroyed = append(destroyed, a)
				break
			}
		}
	}

	// Ship hit. At most one per tick; the disintegration and the ensuing
	// invulnerability window debounce any lingering overlap.
	if g.Phase == PhasePlaying && g.Ship.CanCollide() {
		for _, a := range g.Asteroids {
			if a.IsDestroyed() {
				continue
			}
			if physics.CirclesOverlap(g.Ship.Pos, g.Ship.Radius, a.Pos, a.Radius) {
				a.MarkDestroyed()
				destroyed = append(destroyed, a)
				g.shipHit()
				break
			}
		}
	}

	g.applyDestruction(destroyed)
}

// applyDestruction applies the effects of this tick's destroyed asteroids:
// score by pre-split tier, explosion cues, split offspring, beat pacing,
// and the wave-clear transition.
func (g *Game) applyDestruction(destroyed []*object.Asteroid) {
	if len(destroyed) == 0 {
		return
	}

	for _, a := range destroyed {
		g.addScore(scoreForTier(a.Tier))
		g.sounds.PlayExplosion(a.Tier)
		g.Asteroids = append(g.Asteroids, a.Split()...)
		g.waveUnitsDestroyed++
	}

	kept := g.Asteroids[:0]
	for _, a := range g.Asteroids {
		if !a.IsDestroyed() {
			kept = append(kept, a)
		}
	}
	g.Asteroids = kept

	if g.waveUnits > 0 {
		g.sounds.SetBeatProgress(float64(g.waveUnitsDestroyed) / float64(g.waveUnits))
	}

	if len(g.Asteroids) == 0 && g.Phase == PhasePlaying {
		g.onWaveClear()
	}
}
