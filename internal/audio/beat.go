package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

const (
	// Beat tempo range. The background pulse starts at the slow interval
	// and tightens toward the fast one as the wave is whittled down.
	beatIntervalSlow = 1 * time.Second
	beatIntervalFast = 250 * time.Millisecond

	beatLowFreq  = 55.0
	beatHighFreq = 69.3 // A two semitones' worth above, the classic two-note pulse

	beatThumpLen = 90 * time.Millisecond
)

// beatStreamer is an endless two-note pulse. The interval between thumps is
// re-read at each thump boundary, so tempo changes land on the beat instead
// of warping mid-thump.
type beatStreamer struct {
	mu       *sync.Mutex // Shared with the owning Manager
	interval int         // Samples between thump starts
	pos      int         // Samples into the current interval
	high     bool
	thumpLen int
}

func newBeat(mu *sync.Mutex) *beatStreamer {
	return &beatStreamer{
		mu:       mu,
		interval: sampleRate.N(beatIntervalSlow),
		thumpLen: sampleRate.N(beatThumpLen),
	}
}

// setProgress maps wave completion (0..1) onto the tempo range. Caller must
// hold mu.
func (b *beatStreamer) setProgress(progress float64) {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	slow := beatIntervalSlow.Seconds()
	fast := beatIntervalFast.Seconds()
	sec := slow - progress*(slow-fast)
	b.interval = sampleRate.N(time.Duration(sec * float64(time.Second)))
}

// reset restarts the pulse from a fresh downbeat. Caller must hold mu.
func (b *beatStreamer) reset() {
	b.pos = 0
	b.high = false
}

func (b *beatStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range samples {
		var s float64
		if b.pos < b.thumpLen {
			t := float64(b.pos) / float64(sampleRate)
			u := float64(b.pos) / float64(b.thumpLen)
			freq := beatLowFreq
			if b.high {
				freq = beatHighFreq
			}
			s = 0.4 * math.Exp(-4*u) * math.Sin(2*math.Pi*freq*t)
		}
		samples[i][0] = s
		samples[i][1] = s

		b.pos++
		if b.pos >= b.interval {
			b.pos = 0
			b.high = !b.high
		}
	}
	return len(samples), true
}

func (b *beatStreamer) Err() error { return nil }

var _ beep.Streamer = (*beatStreamer)(nil)
