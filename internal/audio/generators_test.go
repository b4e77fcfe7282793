package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// streamAll pulls a streamer to completion and returns the total sample
// count, failing the test if it never ends.
func streamAll(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][1] < -1 || buf[i][1] > 1 {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("streamer did not finish within %d samples", limit)
		}
	}
}

func TestToneHasExactDuration(t *testing.T) {
	dur := 90 * time.Millisecond
	tone := newTone(880, 0.25, time.Millisecond, dur, 5)

	got := streamAll(t, tone, 2*sampleRate.N(dur))
	if want := sampleRate.N(dur); got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
	if tone.Err() != nil {
		t.Errorf("unexpected error: %v", tone.Err())
	}
}

func TestToneAmplitudeBounded(t *testing.T) {
	tone := newTone(440, 0.3, time.Millisecond, 50*time.Millisecond, 3)
	buf := make([][2]float64, sampleRate.N(50*time.Millisecond))
	tone.Stream(buf)

	for i, s := range buf {
		if s[0] > 0.3 || s[0] < -0.3 {
			t.Fatalf("sample %d exceeds amplitude bound: %f", i, s[0])
		}
	}
}

func TestNoiseEndsAndStaysBounded(t *testing.T) {
	dur := 400 * time.Millisecond
	n := newNoise(100, 0.6, dur)

	got := streamAll(t, n, 2*sampleRate.N(dur))
	if want := sampleRate.N(dur); got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}

func TestThrustLoopsForever(t *testing.T) {
	th := newThrust()
	buf := make([][2]float64, 4096)

	for i := 0; i < 8; i++ {
		n, ok := th.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("thrust loop must never end: (%d, %v)", n, ok)
		}
	}
}

func TestArpeggioPlaysEveryNote(t *testing.T) {
	noteLen := 90 * time.Millisecond
	freqs := []float64{523.25, 659.25, 783.99, 1046.50}
	arp := newArpeggio(freqs, noteLen)

	want := len(freqs) * sampleRate.N(noteLen)
	got := streamAll(t, arp, 2*want)
	if got != want {
		t.Errorf("expected %d samples for %d notes, got %d", want, len(freqs), got)
	}
}
