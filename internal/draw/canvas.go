package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/sshnake/internal/physics"
)

// Canvas is a colored drawing buffer with 2x vertical resolution using
// half-block characters. Drawing calls take logical coordinates that are
// scaled to terminal pixels.
//
// Render only emits cells that changed since the previous Render, so
// anything written over the canvas area by other means must be reported
// with MarkTextDirty or ForceRedraw.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	prev           []cellColors

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf  []byte
	polygonBuf []Point
}

// cellColors is what one terminal cell shows: two stacked sub-pixels.
type cellColors struct {
	top, bottom Color
}

// staleCell never matches a real cell, forcing a repaint.
var staleCell = cellColors{top: math.MaxUint16, bottom: math.MaxUint16}

// newCanvas creates a canvas with a 1:1 mapping between logical units and
// sub-pixels. Tests use it to address pixels directly.
func newCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.allocate(termWidth, termHeight)
	return c
}

func (c *Canvas) allocate(termWidth, termHeight int) {
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]Color, c.subPixelHeight*termWidth)
	c.prev = make([]cellColors, termHeight*termWidth)
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	c.ForceRedraw()
}

// Resize updates the canvas for new terminal dimensions while keeping
// logical size. Pixel content is discarded when the size changes.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.allocate(termWidth, termHeight)
	}
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.offsetCol = col
		c.offsetRow = row
		c.ForceRedraw()
	}
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render repaint every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = staleCell
	}
}

// MarkTextDirty marks n cells starting at the 1-based canvas position
// (col, row) for repaint, after text has been written over them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.prev[r*c.termWidth+x] = staleCell
		}
	}
}

// cellsChanged reports whether the next Render repaints any of the n cells
// starting at the 1-based canvas position (col, row).
func (c *Canvas) cellsChanged(col, row, n int) bool {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return false
	}
	for x := max(col-1, 0); x < min(col-1+n, c.termWidth); x++ {
		cur := cellColors{
			top:    c.pixels[r*2*c.termWidth+x],
			bottom: c.pixels[(r*2+1)*c.termWidth+x],
		}
		if c.prev[r*c.termWidth+x] != cur {
			return true
		}
	}
	return false
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// pixelAt returns the color of the sub-pixel at terminal pixel coordinates.
func (c *Canvas) pixelAt(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorDefault
	}
	return c.pixels[y*c.termWidth+x]
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
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
		c.setPixel(x1, y1, col)

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

// DrawPolygon draws a closed polygon outline.
func (c *Canvas) DrawPolygon(points []Point, col Color) {
	if len(points) < 3 {
		return
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillWhere sets every pixel whose center lies inside the logical box
// [x0,x1]x[y0,y1] and satisfies inside.
func (c *Canvas) fillWhere(x0, y0, x1, y1 float64, col Color, inside func(lx, ly float64) bool) {
	pxStart := int(math.Floor(x0 * c.scaleX))
	pxEnd := int(math.Ceil(x1 * c.scaleX))
	pyStart := int(math.Floor(y0 * c.scaleY))
	pyEnd := int(math.Ceil(y1 * c.scaleY))

	for py := pyStart; py < pyEnd; py++ {
		ly := (float64(py) + 0.5) / c.scaleY
		for px := pxStart; px < pxEnd; px++ {
			lx := (float64(px) + 0.5) / c.scaleX
			if inside(lx, ly) {
				c.setPixel(px, py, col)
			}
		}
	}
}

// FillCircle fills a circle given in logical coordinates.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	c.fillWhere(cx-r, cy-r, cx+r, cy+r, col, func(lx, ly float64) bool {
		return physics.PointInCircle(lx, ly, cx, cy, r)
	})
}

// FillRoundedSquare fills a square with rounded corners.
func (c *Canvas) FillRoundedSquare(x, y, size, radius float64, col Color) {
	c.fillWhere(x, y, x+size, y+size, col, func(lx, ly float64) bool {
		return physics.PointInRoundedRect(lx, ly, x, y, size, size, radius)
	})
}

// cornerSegments is the number of line segments per rounded corner.
const cornerSegments = 3

// StrokeRoundedSquare outlines a square with rounded corners. The outline
// is inset by one pixel on the right and bottom so it stays inside the
// square's own cells.
func (c *Canvas) StrokeRoundedSquare(x, y, size, radius float64, col Color) {
	w := size - 1/c.scaleX
	h := size - 1/c.scaleY
	if w <= 0 || h <= 0 {
		return
	}
	points := roundedRectPoints(c.BorrowPoints(4*(cornerSegments+1)), x, y, w, h, radius)
	c.DrawPolygon(points, col)
}

// roundedRectPoints fills dst (len 4*(cornerSegments+1)) with the outline
// of a rounded rectangle, clockwise from the top-right corner.
func roundedRectPoints(dst []Point, x, y, w, h, r float64) []Point {
	r = math.Min(r, math.Min(w, h)/2)
	centers := [4]Point{
		{X: x + w - r, Y: y + r},     // top-right
		{X: x + w - r, Y: y + h - r}, // bottom-right
		{X: x + r, Y: y + h - r},     // bottom-left
		{X: x + r, Y: y + r},         // top-left
	}

	i := 0
	for corner, center := range centers {
		start := -math.Pi/2 + float64(corner)*math.Pi/2
		for s := 0; s <= cornerSegments; s++ {
			a := start + float64(s)*(math.Pi/2)/cornerSegments
			dst[i] = Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
			i++
		}
	}
	return dst[:i]
}

// Render writes every cell that changed since the previous Render using
// half-block characters with 256-color foreground/background.
func (c *Canvas) Render(w io.Writer) {
	buf := c.renderBuf[:0]
	fg, bg := staleCell.top, staleCell.bottom
	lastRow, lastCol := -1, -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cur := cellColors{
				top:    c.pixels[topOffset+col],
				bottom: c.pixels[bottomOffset+col],
			}
			idx := row*c.termWidth + col
			if c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur

			if row != lastRow || col != lastCol+1 {
				buf = appendCursor(buf, col+1+c.offsetCol, row+1+c.offsetRow)
			}
			lastRow, lastCol = row, col

			ch, wantFg, wantBg := glyph(cur)
			if wantFg != fg {
				buf = appendFg(buf, wantFg)
				fg = wantFg
			}
			if wantBg != bg {
				buf = appendBg(buf, wantBg)
				bg = wantBg
			}
			buf = utf8.AppendRune(buf, ch)
		}
	}

	if lastRow >= 0 {
		buf = append(buf, ColorReset...)
	}
	c.renderBuf = buf
	w.Write(buf)
}

// glyph picks the character and colors that show a cell's two sub-pixels.
func glyph(cell cellColors) (ch rune, fg, bg Color) {
	switch {
	case cell.top == cell.bottom && cell.top == ColorDefault:
		return BlockEmpty, ColorDefault, ColorDefault
	case cell.top == cell.bottom:
		return BlockFull, cell.top, cell.top
	case cell.top == ColorDefault:
		return BlockLowerHalf, cell.bottom, ColorDefault
	default:
		return BlockUpperHalf, cell.top, cell.bottom
	}
}

func appendCursor(dst []byte, col, row int) []byte {
	dst = append(dst, "\033["...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// RenderBorder draws a box border around the canvas area with header
// embedded in the top edge and footer in the bottom edge. Edges are only
// drawn where the offsets leave room for them.
func (c *Canvas) RenderBorder(w io.Writer, header, footer string) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*6 + c.termHeight*2*12)

	if hasV {
		topBar := titledBar(header, c.termWidth)
		bottomBar := titledBar(footer, c.termWidth)
		if hasH {
			buf.Write(appendCursor(nil, left, top))
			buf.WriteString("┌" + topBar + "┐")
			buf.Write(appendCursor(nil, left, bottom))
			buf.WriteString("└" + bottomBar + "┘")
		} else {
			buf.Write(appendCursor(nil, c.offsetCol+1, top))
			buf.WriteString(topBar)
			buf.Write(appendCursor(nil, c.offsetCol+1, bottom))
			buf.WriteString(bottomBar)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			buf.Write(appendCursor(nil, left, row))
			buf.WriteString("│")
			buf.Write(appendCursor(nil, right, row))
			buf.WriteString("│")
		}
	}

	io.WriteString(w, buf.String())
}

// titledBar returns a horizontal rule of exactly width runes with title
// embedded near the left end.
func titledBar(title string, width int) string {
	if width <= 0 {
		return ""
	}
	if title == "" {
		return strings.Repeat("─", width)
	}
	label := []rune("─ " + title + " ")
	if len(label) > width {
		label = label[:width]
	}
	return string(label) + strings.Repeat("─", width-len(label))
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
