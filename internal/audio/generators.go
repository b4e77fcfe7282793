package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// toneStreamer generates a sine tone with a linear attack and exponential
// decay. It reports done once the envelope has faded out.
type toneStreamer struct {
	freq     float64
	amp      float64
	attack   int // Samples
	total    int // Samples
	decayExp float64
	pos      int
}

func newTone(freq, amp float64, attack, duration time.Duration, decayExp float64) *toneStreamer {
	return &toneStreamer{
		freq:     freq,
		amp:      amp,
		attack:   sampleRate.N(attack),
		total:    sampleRate.N(duration),
		decayExp: decayExp,
	}
}

func (g *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(sampleRate)
		u := float64(g.pos) / float64(g.total)

		env := math.Exp(-g.decayExp * u)
		if g.attack > 0 && g.pos < g.attack {
			env *= float64(g.pos) / float64(g.attack)
		}

		s := g.amp * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *toneStreamer) Err() error { return nil }

// noiseStreamer generates decaying filtered noise mixed with a low rumble,
// for explosion sounds. Lower rumble frequency reads as a bigger blast.
type noiseStreamer struct {
	rumbleFreq float64
	amp        float64
	total      int
	seed       int64
	lowpass    float64 // One-pole filter state
	pos        int
}

func newNoise(rumbleFreq, amp float64, duration time.Duration) *noiseStreamer {
	return &noiseStreamer{
		rumbleFreq: rumbleFreq,
		amp:        amp,
		total:      sampleRate.N(duration),
		seed:       time.Now().UnixNano(),
	}
}

func (g *noiseStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(sampleRate)
		u := float64(g.pos) / float64(g.total)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// One-pole low-pass that closes as the sound decays, so the tail
		// loses its hiss before it loses its body.
		cutoff := 0.4 * (1 - u)
		g.lowpass += cutoff * (noise - g.lowpass)

		env := math.Exp(-5 * u)
		rumble := 0.5 * math.Sin(2*math.Pi*g.rumbleFreq*t)

		s := g.amp * env * (0.6*g.lowpass + rumble)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *noiseStreamer) Err() error { return nil }

// thrustStreamer generates an endless low rumble for the engine loop. It is
// meant to be wrapped in a beep.Ctrl and paused rather than removed.
type thrustStreamer struct {
	seed    int64
	lowpass float64
	pos     int
}

func newThrust() *thrustStreamer {
	return &thrustStreamer{seed: time.Now().UnixNano()}
}

func (g *thrustStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.lowpass += 0.08 * (noise - g.lowpass)

		// Slow amplitude wobble keeps the loop from sounding static.
		wobble := 0.85 + 0.15*math.Sin(2*math.Pi*7*t)
		rumble := 0.25 * math.Sin(2*math.Pi*55*t)

		s := 0.35 * wobble * (g.lowpass + rumble)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *thrustStreamer) Err() error { return nil }

// newArpeggio chains short tones into a rising or falling figure, used for
// the extra-life jingle and the wave-clear sting.
func newArpeggio(freqs []float64, noteLen time.Duration) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = newTone(f, 0.3, 2*time.Millisecond, noteLen, 3)
	}
	return beep.Seq(notes...)
}
