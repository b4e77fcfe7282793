package game

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/graeme-lockley/cursor-asteroids/internal/draw"
	"github.com/graeme-lockley/cursor-asteroids/internal/input"
	"github.com/graeme-lockley/cursor-asteroids/internal/object"
)

// Options configures a game loop run.
type Options struct {
	// TermSize reports the terminal dimensions each frame. Defaults to the
	// local stdout size when nil.
	TermSize draw.TermSizeFunc

	// Sounds receives audio cues. Defaults to NopSounds when nil.
	Sounds Sounds

	// Scores persists the high score. May be nil (memory-only).
	Scores HighScores
}

// Run drives the standard Input, Update, Draw cycle at a fixed frame rate
// until the player quits or the input stream closes. It owns the terminal
// for its duration: cursor hidden, screen cleared on entry and exit.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}
	if opts.Sounds == nil {
		opts.Sounds = NopSounds{}
	}

	g := New(opts.Sounds, opts.Scores)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	viewW, viewH, offCol, offRow := fitView(termWidth, termHeight)

	canvas := draw.NewCanvas(viewW, viewH, FieldWidth, FieldHeight)
	canvas.SetOffset(offCol, offRow)
	cw := draw.NewChunkWriter(w, offCol, offRow)

	lastPhase := g.Phase
	pauseHeld := false
	lastTime := time.Now()

	for {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT =====
		inp := input.Read(stream)
		if inp.Quit {
			break
		}
		if inp.Pause {
			if !pauseHeld {
				g.TogglePause()
			}
			pauseHeld = true
		} else {
			pauseHeld = false
		}

		// ===== RESIZE =====
		tw, th, err := opts.TermSize()
		if err != nil {
			return fmt.Errorf("read terminal size: %w", err)
		}
		if tw != termWidth || th != termHeight {
			termWidth, termHeight = tw, th
			viewW, viewH, offCol, offRow = fitView(termWidth, termHeight)
			canvas.Resize(viewW, viewH)
			canvas.SetOffset(offCol, offRow)
			cw.SetOffset(offCol, offRow)
			draw.ClearScreen(w)
		}

		// ===== UPDATE =====
		g.Update(inp, delta)

		// Drop any held keys across screen transitions so a held fire key
		// does not shoot the instant a new game starts.
		if g.Phase != lastPhase {
			input.Reset(stream)
			lastPhase = g.Phase
		}

		// ===== DRAW =====
		if err := drawFrame(g, canvas, cw); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// fitView clamps the drawable area to the supported maximum and centers it
// in the terminal. Oversized terminals get a centered fixed-size view rather
// than an ever-larger (and ever-slower) one.
func fitView(termWidth, termHeight int) (viewW, viewH, offCol, offRow int) {
	viewW, viewH = termWidth, termHeight
	if viewW > MaxTermWidth {
		viewW = MaxTermWidth
	}
	if viewH > MaxTermHeight {
		viewH = MaxTermHeight
	}
	offCol = (termWidth - viewW) / 2
	offRow = (termHeight - viewH) / 2
	return viewW, viewH, offCol, offRow
}

// drawFrame renders one frame: entities onto the canvas, then the text
// overlay on top, then a single chunked flush.
func drawFrame(g *Game, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	canvas.Clear()

	ctx := object.DrawContext{Canvas: canvas, Writer: cw}

	if g.Phase != PhaseTitle {
		for _, a := range g.Asteroids {
			a.Draw(ctx)
		}
		for _, b := range g.Bullets {
			b.Draw(ctx)
		}
		g.Ship.Draw(ctx)
	}

	canvas.Render(cw)
	g.drawUI(cw, canvas.TerminalWidth(), canvas.TerminalHeight())

	return cw.Flush()
}
