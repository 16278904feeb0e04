package game

import (
	"fmt"
	"testing"

	"github.com/tomz197/sshnake/internal/draw"
)

type opLog struct {
	ops []string
}

func (l *opLog) ClearBackground(c draw.Color) {
	l.ops = append(l.ops, fmt.Sprintf("clear %d", c))
}

func (l *opLog) DrawFilledCircle(cx, cy, r float64, fill draw.Color) {
	l.ops = append(l.ops, fmt.Sprintf("circle %.1f,%.1f r%.1f", cx, cy, r))
}

func (l *opLog) DrawRoundedSquare(x, y, size, radius float64, fill, stroke draw.Color) {
	l.ops = append(l.ops, fmt.Sprintf("square %.0f,%.0f s%.0f r%.0f", x, y, size, radius))
}

func (l *opLog) DrawCenteredText(text string, x, y float64, font draw.Font) {
	l.ops = append(l.ops, fmt.Sprintf("text %q %.0f,%.0f", text, x, y))
}

func TestRenderBoardOrder(t *testing.T) {
	surface := &opLog{}
	r := NewSurfaceRenderer(surface)

	r.RenderBoard(Snapshot{
		Board:   DefaultBoard(),
		Snake:   Snake{{100, 0}, {75, 0}},
		Food:    Cell{200, 50},
		HasFood: true,
	})

	want := []string{
		fmt.Sprintf("clear %d", draw.ColorGreen),
		"circle 212.5,62.5 r12.5",
		"square 100,0 s25 r5",
		"square 75,0 s25 r5",
	}
	if len(surface.ops) != len(want) {
		t.Fatalf("ops = %q, want %q", surface.ops, want)
	}
	for i := range want {
		if surface.ops[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, surface.ops[i], want[i])
		}
	}
}

func TestRenderBoardWithoutFood(t *testing.T) {
	surface := &opLog{}
	NewSurfaceRenderer(surface).RenderBoard(Snapshot{
		Board: DefaultBoard(),
		Snake: DefaultBoard().DefaultSnake(),
	})

	for _, op := range surface.ops {
		if len(op) >= 6 && op[:6] == "circle" {
			t.Fatalf("idle board drew food: %q", op)
		}
	}
	if len(surface.ops) != 6 {
		t.Fatalf("ops = %d, want background plus 5 segments", len(surface.ops))
	}
}

func TestRenderGameOverCentered(t *testing.T) {
	surface := &opLog{}
	NewSurfaceRenderer(surface).RenderGameOver(Snapshot{Board: DefaultBoard()})

	if len(surface.ops) != 1 || surface.ops[0] != `text "GAME OVER" 250,250` {
		t.Fatalf("ops = %q", surface.ops)
	}
}
