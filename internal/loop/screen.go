package loop

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/tomz197/sshnake/internal/draw"
	"github.com/tomz197/sshnake/internal/game"
	"github.com/tomz197/sshnake/internal/loop/config"
)

// Rows and columns kept free around the canvas for the border.
const (
	borderCols = 2
	borderRows = 2
)

// blinkPeriod toggles the idle prompt.
const blinkPeriod = 600 * time.Millisecond

var (
	promptFont = draw.Font{Bold: true, Color: draw.ColorWhite, Background: draw.ColorGreen}
	noticeFont = draw.Font{Bold: true, Color: draw.ColorYellow, Background: draw.ColorBlack}
)

type layout struct {
	width, height        int // Canvas size in terminal cells
	offsetCol, offsetRow int
	tooSmall             bool
}

// computeLayout fits the board into the terminal, keeping its aspect ratio.
// Each cell holds two vertical pixels, so a square board is twice as wide
// in columns as it is tall in rows.
func computeLayout(termWidth, termHeight int) layout {
	w := min(termWidth-borderCols, config.MaxTermWidth)
	h := min(termHeight-borderRows, config.MaxTermHeight)

	aspect := float64(game.BoardWidth) / float64(game.BoardHeight)
	if maxW := int(float64(2*h) * aspect); w > maxW {
		w = maxW
	} else {
		h = int(math.Ceil(float64(w) / (2 * aspect)))
	}

	l := layout{
		width:    max(w, 1),
		height:   max(h, 1),
		tooSmall: w < config.MinTermWidth || h < config.MinTermHeight,
	}
	l.offsetCol = max((termWidth-l.width)/2, 0)
	l.offsetRow = max((termHeight-l.height)/2, 0)
	return l
}

// drawFrame writes everything that changed since the last frame.
func (s *Session) drawFrame() error {
	if s.tooSmall {
		s.chunkWriter.WriteAbsolute(1, 1, fmt.Sprintf("Terminal too small (min %dx%d)",
			config.MinTermWidth+borderCols, config.MinTermHeight+borderRows))
		return s.chunkWriter.Flush()
	}

	s.surface.Render(s.chunkWriter)

	border := [2]string{s.header(), s.footer()}
	if s.borderStale || border != s.lastBorder {
		s.canvas.RenderBorder(s.chunkWriter, border[0], border[1])
		s.lastBorder = border
		s.borderStale = false
	}

	s.drawOverlays()
	return s.chunkWriter.Flush()
}

func (s *Session) header() string {
	h := "Score: " + s.score
	if s.server != nil {
		h += "  Online: " + strconv.Itoa(s.server.Players())
	}
	return h
}

func (s *Session) footer() string {
	if s.shuttingDown() {
		return "q quit"
	}
	switch s.engine.State() {
	case game.StateIdle:
		return "arrows/wasd start  q quit"
	case game.StateGameOver:
		return "r restart  q quit"
	default:
		return "r reset  q quit"
	}
}

// drawOverlays writes one-frame text over the canvas. The canvas repaints
// the cells underneath on the next frame once an overlay stops.
func (s *Session) drawOverlays() {
	mid := s.canvas.TerminalHeight()/2 + 1
	now := s.now()

	switch {
	case s.shuttingDown():
		left := max(int(math.Ceil(s.shutdownAt.Sub(now).Seconds())), 0)
		s.surface.WriteCentered(s.chunkWriter, mid, fmt.Sprintf(" Server shutting down in %ds ", left), noticeFont)
	case s.isInactive:
		s.surface.WriteCentered(s.chunkWriter, mid, " Inactive: press any key ", noticeFont)
	case s.engine.State() == game.StateIdle:
		if (now.UnixMilli()/blinkPeriod.Milliseconds())%2 == 0 {
			s.surface.WriteCentered(s.chunkWriter, mid+2, " Press an arrow key to start ", promptFont)
		}
	case s.engine.State() == game.StateGameOver:
		s.surface.WriteCentered(s.chunkWriter, mid+2, " Press R to play again ", promptFont)
	}
}
