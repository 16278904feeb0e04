package draw

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Surface adapts a Canvas to shape-level drawing calls in logical
// coordinates. Text cannot be rasterised into half-blocks, so centered text
// is queued as labels and written over the canvas by Render.
type Surface struct {
	canvas *Canvas
	labels []label
	shown  []label // Labels currently on the terminal
}

type label struct {
	col, row int // 1-based canvas position
	text     string
	font     Font
}

// NewSurface wraps c.
func NewSurface(c *Canvas) *Surface {
	return &Surface{canvas: c}
}

// ClearBackground fills the whole canvas with col and drops queued text.
func (s *Surface) ClearBackground(col Color) {
	s.canvas.Fill(col)
	s.labels = s.labels[:0]
}

// DrawFilledCircle fills a circle centered at (cx, cy).
func (s *Surface) DrawFilledCircle(cx, cy, r float64, fill Color) {
	s.canvas.FillCircle(cx, cy, r, fill)
}

// DrawRoundedSquare fills a rounded square and, unless stroke is the
// default color, outlines it.
func (s *Surface) DrawRoundedSquare(x, y, size, radius float64, fill, stroke Color) {
	s.canvas.FillRoundedSquare(x, y, size, radius, fill)
	if stroke != ColorDefault {
		s.canvas.StrokeRoundedSquare(x, y, size, radius, stroke)
	}
}

// DrawCenteredText queues text centered on (x, y).
func (s *Surface) DrawCenteredText(text string, x, y float64, font Font) {
	if font.Size >= LargeFont {
		text = letterSpace(text)
	}
	col, row := s.canvas.LogicalToTerminal(x, y)
	col -= utf8.RuneCountInString(text) / 2
	s.labels = append(s.labels, label{col: col, row: row, text: text, font: font})
}

// Render writes the changed canvas cells followed by the labels. Labels
// are only rewritten when the set changed or the canvas repaints cells
// under them; dropped labels are marked dirty so the canvas restores them.
func (s *Surface) Render(cw *ChunkWriter) {
	rewrite := !slices.Equal(s.labels, s.shown)
	if rewrite {
		for _, l := range s.shown {
			if slices.Contains(s.labels, l) {
				continue
			}
			if col, text, ok := s.clip(l); ok {
				s.canvas.MarkTextDirty(col, l.row, len(text))
			}
		}
	}
	for _, l := range s.labels {
		if col, text, ok := s.clip(l); ok && s.canvas.cellsChanged(col, l.row, len(text)) {
			rewrite = true
		}
	}

	s.canvas.Render(cw)
	if rewrite {
		for _, l := range s.labels {
			s.writeLabel(cw, l)
		}
	}
	s.shown = append(s.shown[:0], s.labels...)
}

// WriteCentered writes text horizontally centered on the 1-based canvas
// row immediately, for overlays that only last one frame. The cells are
// marked dirty so the canvas restores them once the overlay stops.
func (s *Surface) WriteCentered(cw *ChunkWriter, row int, text string, font Font) {
	l := label{
		col:  (s.canvas.TerminalWidth()-utf8.RuneCountInString(text))/2 + 1,
		row:  row,
		text: text,
		font: font,
	}
	if col, text, ok := s.writeLabel(cw, l); ok {
		s.canvas.MarkTextDirty(col, l.row, len(text))
	}
}

// clip returns the part of l that fits on the canvas.
func (s *Surface) clip(l label) (col int, text []rune, ok bool) {
	if l.row < 1 || l.row > s.canvas.TerminalHeight() {
		return 0, nil, false
	}
	col = max(l.col, 1)
	text = []rune(l.text)
	n := s.canvas.TerminalWidth() - col + 1
	if n <= 0 {
		return 0, nil, false
	}
	if len(text) > n {
		text = text[:n]
	}
	return col, text, true
}

func (s *Surface) writeLabel(cw *ChunkWriter, l label) (col int, text []rune, ok bool) {
	col, text, ok = s.clip(l)
	if !ok {
		return 0, nil, false
	}

	var style []byte
	if l.font.Bold {
		style = append(style, attrBold...)
	}
	style = appendFg(style, l.font.Color)
	style = appendBg(style, l.font.Background)

	cw.MoveCursor(col, l.row)
	cw.Write(style)
	cw.WriteString(string(text))
	cw.WriteString(ColorReset)
	return col, text, true
}

// letterSpace renders "GAME OVER" as "G A M E   O V E R".
func letterSpace(text string) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
