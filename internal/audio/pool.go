package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// voicesPerCue bounds how many instances of one cue may overlap. Rapid fire
// reuses the oldest voice instead of stacking streamers without limit.
const voicesPerCue = 4

type voice struct {
	ctrl    *beep.Ctrl
	started time.Time
}

// voicePool manages a fixed set of voices for one cue. Triggering picks a
// free voice, or steals the longest-playing one when all are busy. Finished
// streamers release their voice through a completion callback, so a voice is
// only ever "busy" while its sound is audible.
type voicePool struct {
	mu     *sync.Mutex // Shared with the owning Manager
	mixer  *beep.Mixer
	voices [voicesPerCue]voice
	now    func() time.Time
}

func newVoicePool(mu *sync.Mutex, mixer *beep.Mixer) *voicePool {
	return &voicePool{mu: mu, mixer: mixer, now: time.Now}
}

// play starts a fresh streamer on a pool voice. Caller must hold mu.
func (p *voicePool) play(s beep.Streamer) {
	v := p.pick()
	if v.ctrl != nil {
		// Steal: silencing the old ctrl makes the mixer drop it on the
		// next pull, so the stolen sound cuts out instead of lingering.
		v.ctrl.Streamer = nil
	}

	ctrl := &beep.Ctrl{}
	ctrl.Streamer = beep.Seq(s, beep.Callback(func() {
		p.mu.Lock()
		if v.ctrl == ctrl {
			v.ctrl = nil
		}
		p.mu.Unlock()
	}))

	v.ctrl = ctrl
	v.started = p.now()
	p.mixer.Add(ctrl)
}

// pick returns a free voice, or the longest-playing one when none is free.
func (p *voicePool) pick() *voice {
	oldest := &p.voices[0]
	for i := range p.voices {
		v := &p.voices[i]
		if v.ctrl == nil {
			return v
		}
		if v.started.Before(oldest.started) {
			oldest = v
		}
	}
	return oldest
}

// active counts voices still playing. Caller must hold mu.
func (p *voicePool) active() int {
	n := 0
	for i := range p.voices {
		if p.voices[i].ctrl != nil {
			n++
		}
	}
	return n
}

// stopAll silences every voice in the pool. Caller must hold mu.
func (p *voicePool) stopAll() {
	for i := range p.voices {
		if p.voices[i].ctrl != nil {
			p.voices[i].ctrl.Streamer = nil
			p.voices[i].ctrl = nil
		}
	}
}
