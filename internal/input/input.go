// Package input turns a raw terminal byte stream into per-frame input snapshots.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals deliver key repeats, not key-up events, so holding is inferred.
const keyHoldDuration = 30 * time.Millisecond

// Input is the polled input snapshot for one frame. Left/Right/Up are
// level-triggered; Fire is edge-gated downstream by the ship's own cooldown.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Fire    bool
	Pause   bool
	Enter   bool
	AnyKey  bool // Any byte arrived this frame (game-over restart trigger)
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	fire  time.Time
	pause time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state so
// simultaneous key combinations can be detected across frames.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all available bytes from the stream (non-blocking), handles
// escape sequences for arrow keys, and builds the frame's input snapshot.
func Read(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> (arrow keys)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			case 'B':
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Up:      now.Sub(s.state.up) < keyHoldDuration,
		Fire:    now.Sub(s.state.fire) < keyHoldDuration,
		Pause:   now.Sub(s.state.pause) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		AnyKey:  len(buf) > 0,
		Pressed: buf,
	}
}

// Reset clears held-key state, e.g. when transitioning between screens so a
// held fire key does not immediately shoot after a restart.
func Reset(s *Stream) {
	s.state = keyState{}
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // q or Ctrl-C
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case ' ':
		state.fire = now
	case 'p', 'P':
		state.pause = now
	case '\n', '\r':
		state.enter = now
	}
}
