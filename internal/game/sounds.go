package game

import "github.com/graeme-lockley/cursor-asteroids/internal/object"

// Sounds receives audio cues from the game. Implementations must never
// block or return errors to game logic; a broken audio device degrades to
// silence, not to a broken game.
type Sounds interface {
	// One-shot cues.
	PlayShot()
	PlayExplosion(tier object.Tier)
	PlayExtraLife()
	PlayWaveClear()

	// Thrust loop, held while the thrust key is down.
	StartThrust()
	StopThrust()

	// Background beat. Progress is the fraction of the current wave
	// destroyed so far and speeds the beat up from its base tempo.
	StartBeat()
	SetBeatProgress(progress float64)
	StopBeat()
}

// NopSounds is a Sounds implementation that does nothing. Used for SSH
// sessions (a pty carries no audio) and in tests.
type NopSounds struct{}

func (NopSounds) PlayShot()                 {}
func (NopSounds) PlayExplosion(object.Tier) {}
func (NopSounds) PlayExtraLife()            {}
func (NopSounds) PlayWaveClear()            {}
func (NopSounds) StartThrust()              {}
func (NopSounds) StopThrust()               {}
func (NopSounds) StartBeat()                {}
func (NopSounds) SetBeatProgress(float64)   {}
func (NopSounds) StopBeat()                 {}

var _ Sounds = NopSounds{}

// HighScores persists the best score across sessions. Implementations may
// be memory-only; errors are advisory and never interrupt gameplay.
type HighScores interface {
	Load() (int, error)
	Save(score int) error
}
