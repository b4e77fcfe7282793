// Package game owns the simulation: entity lifecycle, collisions, waves,
// scoring and the deferred-action scheduler, driven by a fixed-FPS loop.
package game

import (
	"time"

	"github.com/graeme-lockley/cursor-asteroids/internal/input"
	"github.com/graeme-lockley/cursor-asteroids/internal/object"
)

// Phase is the orchestrator's top-level state.
type Phase int

const (
	PhaseTitle           Phase = iota // Title screen, before the first game
	PhasePlaying                      // Active gameplay
	PhaseGameOverPending              // Fatal hit taken, overlay not yet shown
	PhaseGameOver                     // Overlay shown, any key restarts
)

// Game holds all session state and advances it one tick at a time. A single
// instance exists per session and is reinitialized wholesale by Reset.
type Game struct {
	Bounds object.Bounds

	Ship      *object.Ship
	Bullets   []*object.Bullet
	Asteroids []*object.Asteroid

	Score     int
	HighScore int
	Lives     int
	Wave      int

	Phase  Phase
	Paused bool

	// GameOverVisible is the overlay signal read by the host UI.
	GameOverVisible bool

	// extraLifeWatermark is the last extra-life threshold already awarded,
	// so crossing a threshold is rewarded exactly once.
	extraLifeWatermark int

	// Wave progress in lineage units, used to pace the background beat.
	waveUnits          int
	waveUnitsDestroyed int

	sched  Scheduler
	sounds Sounds
	scores HighScores

	thrustSounding bool
}

// New creates a session. sounds must be non-nil (use NopSounds); scores may
// be nil for memory-only high scores.
func New(sounds Sounds, scores HighScores) *Game {
	g := &Game{
		Bounds: object.Bounds{Width: FieldWidth, Height: FieldHeight},
		Phase:  PhaseTitle,
		Lives:  InitialLives,
		Wave:   1,
		sounds: sounds,
		scores: scores,
	}
	g.Ship = object.NewShip(g.Bounds.Center())

	if scores != nil {
		if hs, err := scores.Load(); err == nil && hs > g.HighScore {
			g.HighScore = hs
		}
	}
	return g
}

// SpawnBullet implements object.Spawner: the ship fires through here.
func (g *Game) SpawnBullet(b *object.Bullet) {
	g.Bullets = append(g.Bullets, b)
	g.sounds.PlayShot()
}

// TogglePause pauses or resumes the simulation. Only meaningful while
// playing; no game logic advances while paused.
func (g *Game) TogglePause() {
	if g.Phase != PhasePlaying {
		return
	}
	g.Paused = !g.Paused
	if g.Paused {
		g.stopThrustSound()
	}
}

// Update advances the session one tick.
func (g *Game) Update(inp input.Input, delta time.Duration) {
	switch g.Phase {
	case PhaseTitle:
		if inp.Fire || inp.Enter {
			g.Reset()
		}

	case PhasePlaying, PhaseGameOverPending:
		if g.Paused {
			return
		}
		g.tick(inp, delta)

	case PhaseGameOver:
		// Asteroids keep drifting behind the overlay.
		ctx := object.UpdateContext{Delta: delta, Bounds: g.Bounds}
		for _, a := range g.Asteroids {
			a.Update(ctx)
		}
		if inp.AnyKey {
			g.Reset()
		}
	}
}

// tick runs one simulation step: ship, bullets, asteroids, collisions, and
// the deferred-action scheduler, in that order.
func (g *Game) tick(inp input.Input, delta time.Duration) {
	// Once the fatal hit has landed the ship no longer answers input.
	if g.Phase != PhasePlaying {
		inp = input.Input{}
	}

	ctx := object.UpdateContext{
		Delta:   delta,
		Input:   inp,
		Bounds:  g.Bounds,
		Spawner: g,
	}

	g.Ship.Update(ctx)
	g.updateThrustSound()

	kept := g.Bullets[:0]
	for _, b := range g.Bullets {
		if b.Update(ctx) {
			b.Release()
			continue
		}
		kept = append(kept, b)
	}
	g.Bullets = kept

	for _, a := range g.Asteroids {
		a.Update(ctx)
	}

	g.resolveCollisions()

	g.sched.Advance(delta.Seconds())
}

// updateThrustSound keeps the looping thrust cue in step with the ship.
func (g *Game) updateThrustSound() {
	thrusting := g.Ship.Phase() == object.PhaseFlying && g.Ship.Thrusting
	if thrusting && !g.thrustSounding {
		g.sounds.StartThrust()
		g.thrustSounding = true
	} else if !thrusting && g.thrustSounding {
		g.stopThrustSound()
	}
}

func (g *Game) stopThrustSound() {
	if g.thrustSounding {
		g.sounds.StopThrust()
		g.thrustSounding = false
	}
}

// addScore adds points, tracks the high score opportunistically, and awards
// one extra life per ExtraLifeScore threshold crossed. A single jump across
// several thresholds awards several lives; the watermark guarantees each
// threshold pays out exactly once.
func (g *Game) addScore(points int) {
	g.Score += points
	if g.Score > g.HighScore {
		g.HighScore = g.Score
	}
	for g.Score >= g.extraLifeWatermark+ExtraLifeScore {
		g.extraLifeWatermark += ExtraLifeScore
		g.Lives++
		g.sounds.PlayExtraLife()
	}
}

func scoreForTier(t object.Tier) int {
	switch t {
	case object.TierLarge:
		return ScoreLargeAsteroid
	case object.TierMedium:
		return ScoreMediumAsteroid
	default:
		return ScoreSmallAsteroid
	}
}

// shipHit handles the ship losing a life: disintegration plays, then either
// a scheduled respawn or the terminal game-over sequence.
func (g *Game) shipHit() {
	g.Lives--
	g.stopThrustSound()
	g.Ship.StartDisintegration()

	if g.Lives > 0 {
		center := g.Bounds.Center()
		g.sched.After(object.DisintegrationTime+RespawnDelay, func() {
			g.Ship.ResetTo(center)
		})
		return
	}

	// Fatal hit: the overlay comes after a fixed delay; the ship stays
	// hidden and never auto-respawns.
	g.Phase = PhaseGameOverPending
	g.sched.After(GameOverDelay, g.enterGameOver)
}

// enterGameOver finishes the terminal transition started by the fatal hit.
func (g *Game) enterGameOver() {
	g.Phase = PhaseGameOver
	g.GameOverVisible = true
	g.sounds.StopBeat()
	g.stopThrustSound()

	// Anything still scheduled (wave spawn, beat resume) is now stale.
	g.sched.CancelAll()

	if g.scores != nil {
		_ = g.scores.Save(g.HighScore)
	}
}

// onWaveClear runs when the last asteroid of a wave is destroyed.
func (g *Game) onWaveClear() {
	g.Wave++
	g.sounds.StopBeat()
	g.sounds.PlayWaveClear()

	g.sched.After(WaveSpawnDelay, func() {
		g.spawnWave()
		g.sched.After(BeatResumeDelay, g.sounds.StartBeat)
	})
}

// spawnWave populates the field for the current wave: BaseAsteroids + wave
// large asteroids entering from the playfield perimeter.
func (g *Game) spawnWave() {
	count := BaseAsteroids + g.Wave
	for i := 0; i < count; i++ {
		g.Asteroids = append(g.Asteroids, object.NewWaveAsteroid(g.Bounds))
	}
	g.waveUnits = count * lineageUnits
	g.waveUnitsDestroyed = 0
	g.sounds.SetBeatProgress(0)
}

// Reset reinitializes the whole session for a fresh game. Any pending
// deferred action is cancelled so nothing stale fires into the new game.
func (g *Game) Reset() {
	g.sched.CancelAll()

	g.Score = 0
	g.Lives = InitialLives
	g.Wave = 1
	g.extraLifeWatermark = 0
	g.GameOverVisible = false
	g.Paused = false
	g.stopThrustSound()

	for _, b := range g.Bullets {
		b.Release()
	}
	g.Bullets = g.Bullets[:0]
	g.Asteroids = g.Asteroids[:0]

	g.Ship.ResetTo(g.Bounds.Center())

	g.Phase = PhasePlaying
	g.spawnWave()
	g.sounds.StartBeat()
}

// PendingTasks reports how many deferred actions are still scheduled.
func (g *Game) PendingTasks() int {
	return g.sched.Pending()
}
