package audio

import (
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls n samples through the mixer, which runs completion callbacks
// for any streamer that finishes.
func drain(m *beep.Mixer, n int) {
	buf := make([][2]float64, 512)
	for n > 0 {
		chunk := len(buf)
		if n < chunk {
			chunk = n
		}
		m.Stream(buf[:chunk])
		n -= chunk
	}
}

// fakeClock hands out strictly increasing timestamps.
func fakeClock() func() time.Time {
	base := time.Unix(0, 0)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func TestPoolFillsFreeVoicesFirst(t *testing.T) {
	var mu sync.Mutex
	mixer := &beep.Mixer{}
	p := newVoicePool(&mu, mixer)
	p.now = fakeClock()

	mu.Lock()
	for i := 0; i < voicesPerCue; i++ {
		p.play(newTone(440, 0.2, time.Millisecond, time.Second, 3))
	}
	got := p.active()
	mu.Unlock()

	if got != voicesPerCue {
		t.Errorf("expected %d active voices, got %d", voicesPerCue, got)
	}
}

func TestPoolStealsOldestWhenFull(t *testing.T) {
	var mu sync.Mutex
	mixer := &beep.Mixer{}
	p := newVoicePool(&mu, mixer)
	p.now = fakeClock()

	mu.Lock()
	for i := 0; i < voicesPerCue; i++ {
		p.play(newTone(440, 0.2, time.Millisecond, time.Second, 3))
	}
	oldCtrl := p.voices[0].ctrl // Earliest start, the steal target

	p.play(newTone(880, 0.2, time.Millisecond, time.Second, 3))

	if got := p.active(); got != voicesPerCue {
		t.Errorf("overflow must not grow the pool: %d active", got)
	}
	if p.voices[0].ctrl == oldCtrl {
		t.Error("expected the oldest voice to be replaced")
	}
	if oldCtrl.Streamer != nil {
		t.Error("stolen voice's old streamer should be silenced")
	}
	mu.Unlock()
}

func TestVoiceReleasedOnCompletion(t *testing.T) {
	var mu sync.Mutex
	mixer := &beep.Mixer{}
	p := newVoicePool(&mu, mixer)

	mu.Lock()
	p.play(newTone(440, 0.2, time.Millisecond, 10*time.Millisecond, 3))
	mu.Unlock()

	// 10ms at 44.1kHz is 441 samples; drain well past that.
	drain(mixer, 2048)

	mu.Lock()
	got := p.active()
	mu.Unlock()
	if got != 0 {
		t.Errorf("finished voice should be released, %d still active", got)
	}
}

func TestReleasedVoiceIsReusedWithoutStealing(t *testing.T) {
	var mu sync.Mutex
	mixer := &beep.Mixer{}
	p := newVoicePool(&mu, mixer)
	p.now = fakeClock()

	mu.Lock()
	for i := 0; i < voicesPerCue; i++ {
		p.play(newTone(440, 0.2, time.Millisecond, 10*time.Millisecond, 3))
	}
	mu.Unlock()

	drain(mixer, 2048)

	mu.Lock()
	if got := p.active(); got != 0 {
		t.Fatalf("expected all voices free, %d active", got)
	}
	p.play(newTone(440, 0.2, time.Millisecond, time.Second, 3))
	if got := p.active(); got != 1 {
		t.Errorf("expected exactly one active voice, got %d", got)
	}
	mu.Unlock()
}

func TestStopAllSilencesPool(t *testing.T) {
	var mu sync.Mutex
	mixer := &beep.Mixer{}
	p := newVoicePool(&mu, mixer)

	mu.Lock()
	p.play(newTone(440, 0.2, time.Millisecond, time.Second, 3))
	p.play(newTone(550, 0.2, time.Millisecond, time.Second, 3))
	p.stopAll()
	got := p.active()
	mu.Unlock()

	if got != 0 {
		t.Errorf("stopAll should free every voice, %d active", got)
	}
}
