// Package audio synthesizes every game sound procedurally and plays it
// through a single beep mixer. One-shot cues go through fixed-size voice
// pools; the thrust loop and the background beat are persistent streamers
// toggled by pause controls.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/graeme-lockley/cursor-asteroids/internal/object"
)

// Manager owns the speaker and serves game sound cues. All methods are safe
// when the manager is disabled (Start failed or never ran): they do nothing,
// so a machine without an audio device plays a silent game rather than none.
type Manager struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  *effects.Volume
	enabled bool

	shot      *voicePool
	explosion *voicePool
	jingle    *voicePool

	thrustCtrl *beep.Ctrl
	beat       *beatStreamer
	beatCtrl   *beep.Ctrl
}

// NewManager creates a disabled manager. Call Start to bind the speaker.
func NewManager() *Manager {
	m := &Manager{mixer: &beep.Mixer{}}
	m.shot = newVoicePool(&m.mu, m.mixer)
	m.explosion = newVoicePool(&m.mu, m.mixer)
	m.jingle = newVoicePool(&m.mu, m.mixer)

	m.beat = newBeat(&m.mu)
	m.beatCtrl = &beep.Ctrl{Streamer: m.beat, Paused: true}
	m.thrustCtrl = &beep.Ctrl{Streamer: newThrust(), Paused: true}
	m.mixer.Add(m.beatCtrl)
	m.mixer.Add(m.thrustCtrl)

	m.volume = &effects.Volume{Streamer: m.mixer, Base: 2, Volume: 0}
	return m
}

// Start initializes the audio device and begins playback. On failure the
// manager stays disabled and the error is returned for logging only; every
// cue method remains a safe no-op.
func (m *Manager) Start() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.volume)

	m.mu.Lock()
	m.enabled = true
	m.mu.Unlock()
	return nil
}

// Close silences everything. The speaker itself stays open; beep has no
// teardown, so clearing the mixer is the clean stop.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}
	m.enabled = false
	m.beatCtrl.Paused = true
	m.thrustCtrl.Paused = true
	m.shot.stopAll()
	m.explosion.stopAll()
	m.jingle.stopAll()
}

// SetVolume sets master volume in 0..1. Zero is fully silent.
func (m *Manager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	m.mu.Lock()
	m.volume.Silent = v == 0
	m.volume.Volume = 2 * (v - 1) // Base 2: 1.0 is unity, 0.5 is half
	m.mu.Unlock()
}

// PlayShot fires the laser blip.
func (m *Manager) PlayShot() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}
	m.shot.play(newTone(880, 0.25, time.Millisecond, 90*time.Millisecond, 5))
}

// PlayExplosion plays a blast scaled to asteroid size: bigger rock, lower
// rumble, longer tail.
func (m *Manager) PlayExplosion(tier object.Tier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}

	var s beep.Streamer
	switch tier {
	case object.TierLarge:
		s = newNoise(45, 0.8, 900*time.Millisecond)
	case object.TierMedium:
		s = newNoise(70, 0.7, 600*time.Millisecond)
	default:
		s = newNoise(100, 0.6, 400*time.Millisecond)
	}
	m.explosion.play(s)
}

// PlayExtraLife plays the rising bonus jingle.
func (m *Manager) PlayExtraLife() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}
	m.jingle.play(newArpeggio([]float64{523.25, 659.25, 783.99, 1046.50}, 90*time.Millisecond))
}

// PlayWaveClear plays the short sting between waves.
func (m *Manager) PlayWaveClear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}
	m.jingle.play(newArpeggio([]float64{392.00, 523.25, 659.25}, 120*time.Millisecond))
}

// StartThrust unpauses the engine rumble loop.
func (m *Manager) StartThrust() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}
	m.thrustCtrl.Paused = false
}

// StopThrust pauses the engine rumble loop.
func (m *Manager) StopThrust() {
	m.mu.Lock()
	m.thrustCtrl.Paused = true
	m.mu.Unlock()
}

// StartBeat restarts the background pulse from a fresh downbeat.
func (m *Manager) StartBeat() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}
	m.beat.reset()
	m.beatCtrl.Paused = false
}

// SetBeatProgress speeds the pulse up as the wave thins out. Takes effect at
// the next thump boundary.
func (m *Manager) SetBeatProgress(progress float64) {
	m.mu.Lock()
	m.beat.setProgress(progress)
	m.mu.Unlock()
}

// StopBeat pauses the background pulse.
func (m *Manager) StopBeat() {
	m.mu.Lock()
	m.beatCtrl.Paused = true
	m.mu.Unlock()
}
