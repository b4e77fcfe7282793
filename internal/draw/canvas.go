// Package draw renders game geometry to a terminal using half-block
// characters, giving the canvas twice the vertical resolution of the
// character grid. Game code works in a fixed logical coordinate space;
// the canvas scales it to whatever terminal it is rendered on.
package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Half-block characters used for rendering.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer with 2x vertical resolution.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// Offset for centering the render area when the terminal is larger
	// than the maximum render resolution (0-based columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to keep the render path allocation-free.
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	pointBuf        []Point
}

// NewCanvas creates a canvas that scales from the logical coordinate space
// to the given terminal dimensions.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]bool, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions, keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset used to center the render area.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// TerminalWidth returns the terminal columns the canvas renders to.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal rows the canvas renders to.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// BorrowPoints returns a scratch []Point of length n, valid until the next
// call. Lets callers build per-frame polygons without allocating.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.pointBuf) < n {
		c.pointBuf = make([]Point, n)
	}
	return c.pointBuf[:n]
}

// setPixel sets a pixel at terminal sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// SetFloat sets a pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolyline strokes an open chain of logical points.
func (c *Canvas) DrawPolyline(points []Point) {
	for i := 0; i+1 < len(points); i++ {
		c.DrawLine(points[i], points[i+1])
	}
}

// DrawPolygon strokes a closed polygon; fills the interior when filled is true.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// FillCircle fills a circle at logical center (cx, cy) with logical radius r.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	pxMin := int(math.Floor((cx - r) * c.scaleX))
	pxMax := int(math.Ceil((cx + r) * c.scaleX))
	pyMin := int(math.Floor((cy - r) * c.scaleY))
	pyMax := int(math.Ceil((cy + r) * c.scaleY))

	for py := pyMin; py <= pyMax; py++ {
		for px := pxMin; px <= pxMax; px++ {
			lx := float64(px)/c.scaleX - cx
			ly := float64(py)/c.scaleY - cy
			if lx*lx+ly*ly <= r*r {
				c.setPixel(px, py)
			}
		}
	}
}

// fillPolygon fills a polygon using a scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			xEnd := int(math.Floor(intersections[i+1]))
			for x := int(math.Ceil(intersections[i])); x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once; 1400 stays under a
// typical MTU so frames flow smoothly over SSH.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := row*2+1 < c.subPixelHeight && c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
