package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestSurfaceCenteredText(t *testing.T) {
	s := NewSurface(NewScaledCanvas(20, 10, 100, 100))
	s.ClearBackground(ColorGreen)
	s.DrawCenteredText("HI", 50, 50, Font{Color: ColorWhite, Background: ColorGreen})

	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	s.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	got := out.String()
	want := "\033[6;10H\033[38;5;231m\033[48;5;28mHI" + ColorReset
	if !strings.Contains(got, want) {
		t.Fatalf("label %q not found in output", want)
	}
}

func TestSurfaceLargeFontLetterSpaced(t *testing.T) {
	s := NewSurface(NewScaledCanvas(40, 10, 100, 100))
	s.DrawCenteredText("GAME OVER", 50, 50, Font{Size: 50, Bold: true})

	if len(s.labels) != 1 {
		t.Fatalf("labels = %d, want 1", len(s.labels))
	}
	l := s.labels[0]
	if l.text != "G A M E   O V E R" {
		t.Fatalf("text = %q", l.text)
	}
	// 17 runes centered on column 21
	if l.col != 21-17/2 {
		t.Fatalf("col = %d, want %d", l.col, 21-17/2)
	}
}

func TestSurfaceClearDropsLabels(t *testing.T) {
	s := NewSurface(newCanvas(10, 5))
	s.DrawCenteredText("x", 5, 5, Font{})
	s.ClearBackground(ColorGreen)

	if len(s.labels) != 0 {
		t.Fatalf("labels survived ClearBackground: %v", s.labels)
	}
}

func TestSurfaceRoundedSquareWithoutStroke(t *testing.T) {
	c := NewScaledCanvas(20, 10, 100, 100)
	s := NewSurface(c)
	s.DrawRoundedSquare(0, 0, 25, 5, ColorLightGreen, ColorDefault)

	if c.pixelAt(0, 2) != ColorLightGreen {
		t.Fatal("edge pixel should keep the fill color when stroke is default")
	}
}

func TestChunkWriterOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "ok")
	if cw.Len() == 0 {
		t.Fatal("nothing queued")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if out.String() != "\033[3;4Hok" {
		t.Fatalf("output = %q", out.String())
	}
	if cw.Len() != 0 {
		t.Fatal("flush should empty the buffer")
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	payload := strings.Repeat("abcdefghij", 1000)
	cw.WriteString(payload)

	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if out.String() != payload {
		t.Fatalf("flushed %d bytes, want %d", out.Len(), len(payload))
	}
}

func TestWriteCenteredTruncatesToCanvas(t *testing.T) {
	s := NewSurface(newCanvas(6, 3))

	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	s.WriteCentered(cw, 2, "abcdefghij", Font{})
	s.WriteCentered(cw, 9, "off canvas", Font{})
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "\033[2;1H") || !strings.Contains(got, "abcdef"+ColorReset) {
		t.Fatalf("expected truncated label at row 2 col 1, got %q", got)
	}
	if strings.Contains(got, "off canvas") {
		t.Fatalf("label outside the canvas was written: %q", got)
	}
}

func renderString(t *testing.T, s *Surface) string {
	t.Helper()
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	s.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return out.String()
}

func TestSurfaceLabelWrittenOnce(t *testing.T) {
	s := NewSurface(NewScaledCanvas(40, 10, 100, 100))
	over := Font{Size: 50, Bold: true, Color: ColorDarkGreen, Background: ColorGreen}
	s.ClearBackground(ColorGreen)
	s.DrawCenteredText("GAME OVER", 50, 50, over)

	if got := renderString(t, s); !strings.Contains(got, "G A M E") {
		t.Fatalf("first frame missing label: %q", got)
	}
	if got := renderString(t, s); got != "" {
		t.Fatalf("unchanged frame wrote %q", got)
	}

	// Same board and label drawn again, as a redraw of a finished game does.
	s.ClearBackground(ColorGreen)
	s.DrawCenteredText("GAME OVER", 50, 50, over)
	if got := renderString(t, s); got != "" {
		t.Fatalf("identical redraw wrote %q", got)
	}
}

func TestSurfaceLabelRestoredAfterOverlay(t *testing.T) {
	s := NewSurface(NewScaledCanvas(40, 10, 100, 100))
	s.ClearBackground(ColorGreen)
	s.DrawCenteredText("GAME OVER", 50, 50, Font{Size: 50})
	renderString(t, s)

	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	s.WriteCentered(cw, 6, "notice", Font{})
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if got := renderString(t, s); !strings.Contains(got, "G A M E") {
		t.Fatalf("label not rewritten after the overlay covered it: %q", got)
	}
}

func TestSurfaceDroppedLabelRepainted(t *testing.T) {
	s := NewSurface(NewScaledCanvas(40, 10, 100, 100))
	s.ClearBackground(ColorGreen)
	s.DrawCenteredText("GAME OVER", 50, 50, Font{Size: 50})
	renderString(t, s)

	s.ClearBackground(ColorGreen)
	got := renderString(t, s)
	if got == "" {
		t.Fatal("cells under the dropped label were not repainted")
	}
	if strings.Contains(got, "G A M E") {
		t.Fatalf("dropped label written again: %q", got)
	}
}
