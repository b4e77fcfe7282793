package draw

import (
	"math"
	"strings"
	"testing"
)

func pixelAt(c *Canvas, x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

func anyPixel(c *Canvas) bool {
	for _, p := range c.pixels {
		if p {
			return true
		}
	}
	return false
}

func TestSetFloatScalesLogicalCoordinates(t *testing.T) {
	// 100 cols for 800 logical units: 1 pixel per 8 units horizontally.
	// 50 rows = 100 sub-pixels for 600 units: 1 per 6 vertically.
	c := NewCanvas(100, 50, 800, 600)

	c.SetFloat(400, 300)

	if !pixelAt(c, 50, 50) {
		t.Error("logical center should map to the canvas center")
	}
}

func TestClearResetsPixels(t *testing.T) {
	c := NewCanvas(40, 20, 800, 600)
	c.SetFloat(100, 100)
	if !anyPixel(c) {
		t.Fatal("expected a pixel before clearing")
	}

	c.Clear()
	if anyPixel(c) {
		t.Error("clear should drop every pixel")
	}
}

func TestDrawLineConnectsEndpoints(t *testing.T) {
	c := NewCanvas(80, 40, 800, 600)

	c.DrawLine(Point{X: 0, Y: 300}, Point{X: 800, Y: 300})

	// A horizontal line across the middle should light most of the row.
	y := int(math.Round(300 * c.scaleY))
	lit := 0
	for x := 0; x < c.termWidth; x++ {
		if pixelAt(c, x, y) {
			lit++
		}
	}
	if lit < c.termWidth-1 {
		t.Errorf("expected a full horizontal line, %d of %d pixels lit", lit, c.termWidth)
	}
}

func TestFilledPolygonCoversInterior(t *testing.T) {
	c := NewCanvas(80, 40, 800, 600)

	square := []Point{
		{X: 200, Y: 150},
		{X: 600, Y: 150},
		{X: 600, Y: 450},
		{X: 200, Y: 450},
	}
	c.DrawPolygon(square, true)

	cx := int(400 * c.scaleX)
	cy := int(300 * c.scaleY)
	if !pixelAt(c, cx, cy) {
		t.Error("interior of a filled polygon should be lit")
	}

	outside := int(100 * c.scaleX)
	if pixelAt(c, outside, cy) {
		t.Error("pixels outside the polygon must stay dark")
	}
}

func TestOutlinedPolygonLeavesInteriorDark(t *testing.T) {
	c := NewCanvas(80, 40, 800, 600)

	square := []Point{
		{X: 200, Y: 150},
		{X: 600, Y: 150},
		{X: 600, Y: 450},
		{X: 200, Y: 450},
	}
	c.DrawPolygon(square, false)

	cx := int(400 * c.scaleX)
	cy := int(300 * c.scaleY)
	if pixelAt(c, cx, cy) {
		t.Error("outline-only polygon should not fill its interior")
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(80, 40, 800, 600)

	c.FillCircle(400, 300, 40)

	if !pixelAt(c, int(400*c.scaleX), int(300*c.scaleY)) {
		t.Error("circle center should be lit")
	}
	if pixelAt(c, int(500*c.scaleX), int(300*c.scaleY)) {
		t.Error("point outside the radius should be dark")
	}
}

func TestOffscreenDrawingIsSafe(t *testing.T) {
	c := NewCanvas(40, 20, 800, 600)

	// Must not panic or write out of bounds.
	c.SetFloat(-100, -100)
	c.SetFloat(5000, 5000)
	c.DrawLine(Point{X: -500, Y: -500}, Point{X: 2000, Y: 2000})
}

func TestRenderUsesHalfBlocks(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)

	// Sub-pixel (2,0) only: upper half of the first row.
	c.setPixel(2, 0)

	var sb strings.Builder
	c.Render(&sb)
	out := sb.String()

	if !strings.ContainsRune(out, BlockUpperHalf) {
		t.Errorf("expected an upper half-block in output %q", out)
	}
	if strings.ContainsRune(out, BlockFull) || strings.ContainsRune(out, BlockLowerHalf) {
		t.Errorf("unexpected block characters in output %q", out)
	}

	c.Clear()
	c.setPixel(2, 0)
	c.setPixel(2, 1)
	sb.Reset()
	c.Render(&sb)
	if !strings.ContainsRune(sb.String(), BlockFull) {
		t.Errorf("stacked sub-pixels should render a full block, got %q", sb.String())
	}
}

func TestRenderAppliesOffsets(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)
	c.SetOffset(7, 3)
	c.setPixel(0, 0)

	var sb strings.Builder
	c.Render(&sb)

	// Row 1 col 1 shifted by (3, 7).
	if !strings.Contains(sb.String(), "\033[4;8H") {
		t.Errorf("expected offset cursor move in %q", sb.String())
	}
}

func TestResizeKeepsLogicalSpace(t *testing.T) {
	c := NewCanvas(40, 20, 800, 600)
	c.Resize(80, 40)

	if c.TerminalWidth() != 80 || c.TerminalHeight() != 40 {
		t.Fatalf("resize not applied: %dx%d", c.TerminalWidth(), c.TerminalHeight())
	}

	// The logical center must still map to the terminal center.
	c.SetFloat(400, 300)
	if !pixelAt(c, 40, 40) {
		t.Error("logical center should track the new terminal size")
	}
}

func TestChunkWriterWriteAt(t *testing.T) {
	var sb strings.Builder
	cw := NewChunkWriter(&sb, 2, 1)

	cw.WriteAt(5, 3, "SCORE")
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	want := "\033[4;7HSCORE"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestChunkWriterFlushResetsBuffer(t *testing.T) {
	var sb strings.Builder
	cw := NewChunkWriter(&sb, 0, 0)

	cw.WriteString("one")
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	cw.WriteString("two")
	if err := cw.Flush(); err != nil {
		t.Fatalf("second Flush() error: %v", err)
	}

	if sb.String() != "onetwo" {
		t.Errorf("expected sequential writes, got %q", sb.String())
	}
}
