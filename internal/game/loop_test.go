package game

import (
	"strings"
	"testing"

	"github.com/graeme-lockley/cursor-asteroids/internal/draw"
)

func TestFitViewClampsAndCenters(t *testing.T) {
	cases := []struct {
		name           string
		termW, termH   int
		wantW, wantH   int
		wantOC, wantOR int
	}{
		{"small terminal", 80, 24, 80, 24, 0, 0},
		{"at the cap", MaxTermWidth, MaxTermHeight, MaxTermWidth, MaxTermHeight, 0, 0},
		{"wide terminal", MaxTermWidth + 40, 50, MaxTermWidth, 50, 20, 0},
		{"tall terminal", 120, MaxTermHeight + 10, 120, MaxTermHeight, 0, 5},
		{"huge terminal", 400, 175, MaxTermWidth, MaxTermHeight, 100, 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, h, oc, or := fitView(c.termW, c.termH)
			if w != c.wantW || h != c.wantH {
				t.Errorf("view: got %dx%d, want %dx%d", w, h, c.wantW, c.wantH)
			}
			if oc != c.wantOC || or != c.wantOR {
				t.Errorf("offset: got (%d,%d), want (%d,%d)", oc, or, c.wantOC, c.wantOR)
			}
		})
	}
}

func TestDrawFrameRendersPlayingState(t *testing.T) {
	g, _ := newTestGame()
	startPlaying(g)

	var sb strings.Builder
	canvas := draw.NewCanvas(100, 40, FieldWidth, FieldHeight)
	cw := draw.NewChunkWriter(&sb, 0, 0)

	if err := drawFrame(g, canvas, cw); err != nil {
		t.Fatalf("drawFrame() error: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "Score:") {
		t.Error("playing frame should include the score HUD")
	}
	if !strings.ContainsRune(out, draw.BlockFull) &&
		!strings.ContainsRune(out, draw.BlockUpperHalf) &&
		!strings.ContainsRune(out, draw.BlockLowerHalf) {
		t.Error("playing frame should render entity pixels")
	}
}

func TestDrawFrameRendersTitleScreen(t *testing.T) {
	g, _ := newTestGame()

	var sb strings.Builder
	canvas := draw.NewCanvas(100, 40, FieldWidth, FieldHeight)
	cw := draw.NewChunkWriter(&sb, 0, 0)

	if err := drawFrame(g, canvas, cw); err != nil {
		t.Fatalf("drawFrame() error: %v", err)
	}

	if !strings.Contains(sb.String(), "Controls") {
		t.Error("title frame should show the controls listing")
	}
}
