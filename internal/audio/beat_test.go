package audio

import (
	"sync"
	"testing"
)

func TestBeatTempoFollowsProgress(t *testing.T) {
	var mu sync.Mutex
	b := newBeat(&mu)

	slow := sampleRate.N(beatIntervalSlow)
	fast := sampleRate.N(beatIntervalFast)

	if b.interval != slow {
		t.Fatalf("fresh beat should start slow: want %d, got %d", slow, b.interval)
	}

	mu.Lock()
	b.setProgress(1)
	mu.Unlock()
	if b.interval != fast {
		t.Errorf("full progress should reach the fast interval: want %d, got %d", fast, b.interval)
	}

	mu.Lock()
	b.setProgress(0.5)
	mu.Unlock()
	if b.interval <= fast || b.interval >= slow {
		t.Errorf("half progress should land between %d and %d, got %d", fast, slow, b.interval)
	}
}

func TestBeatProgressClamped(t *testing.T) {
	var mu sync.Mutex
	b := newBeat(&mu)

	mu.Lock()
	b.setProgress(-3)
	mu.Unlock()
	if b.interval != sampleRate.N(beatIntervalSlow) {
		t.Error("negative progress should clamp to the slow interval")
	}

	mu.Lock()
	b.setProgress(7)
	mu.Unlock()
	if b.interval != sampleRate.N(beatIntervalFast) {
		t.Error("excess progress should clamp to the fast interval")
	}
}

func TestBeatAlternatesNotes(t *testing.T) {
	var mu sync.Mutex
	b := newBeat(&mu)

	buf := make([][2]float64, b.interval)
	if n, ok := b.Stream(buf); !ok || n != len(buf) {
		t.Fatalf("Stream returned (%d, %v)", n, ok)
	}
	if !b.high {
		t.Error("first interval boundary should switch to the high note")
	}

	b.Stream(buf)
	if b.high {
		t.Error("second interval boundary should switch back to the low note")
	}
}

func TestBeatThumpThenSilence(t *testing.T) {
	var mu sync.Mutex
	b := newBeat(&mu)

	buf := make([][2]float64, b.interval)
	b.Stream(buf)

	audible := false
	for i := 0; i < b.thumpLen; i++ {
		if buf[i][0] != 0 {
			audible = true
			break
		}
	}
	if !audible {
		t.Error("thump window should contain audible samples")
	}

	for i := b.thumpLen; i < len(buf); i++ {
		if buf[i][0] != 0 {
			t.Fatalf("expected silence between thumps, sample %d is %f", i, buf[i][0])
		}
	}
}

func TestBeatResetRestartsDownbeat(t *testing.T) {
	var mu sync.Mutex
	b := newBeat(&mu)

	buf := make([][2]float64, b.interval+100)
	b.Stream(buf)

	mu.Lock()
	b.reset()
	high, pos := b.high, b.pos
	mu.Unlock()

	if high || pos != 0 {
		t.Errorf("reset should restore the downbeat: high=%v pos=%d", high, pos)
	}
}
