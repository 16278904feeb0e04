package game

import "github.com/tomz197/sshnake/internal/draw"

// Surface is a drawing target addressed in logical board pixels.
type Surface interface {
	ClearBackground(c draw.Color)
	DrawFilledCircle(cx, cy, r float64, fill draw.Color)
	DrawRoundedSquare(x, y, size, radius float64, fill, stroke draw.Color)
	DrawCenteredText(text string, x, y float64, font draw.Font)
}

// Palette holds the board colors.
type Palette struct {
	Background  draw.Color
	Snake       draw.Color
	SnakeBorder draw.Color
	Food        draw.Color
	GameOver    draw.Font
}

// DefaultPalette is green board, light green snake with black border, red food.
var DefaultPalette = Palette{
	Background:  draw.ColorGreen,
	Snake:       draw.ColorLightGreen,
	SnakeBorder: draw.ColorBlack,
	Food:        draw.ColorRed,
	GameOver: draw.Font{
		Size:       LargeFontSize,
		Bold:       true,
		Color:      draw.ColorDarkGreen,
		Background: draw.ColorGreen,
	},
}

// SurfaceRenderer paints snapshots onto a Surface.
type SurfaceRenderer struct {
	Surface      Surface
	Palette      Palette
	CornerRadius float64
}

// NewSurfaceRenderer returns a renderer using the default palette.
func NewSurfaceRenderer(s Surface) *SurfaceRenderer {
	return &SurfaceRenderer{
		Surface:      s,
		Palette:      DefaultPalette,
		CornerRadius: SnakeCornerRadius,
	}
}

// RenderBoard paints background, food (if placed) and snake, in that order.
func (r *SurfaceRenderer) RenderBoard(snap Snapshot) {
	r.Surface.ClearBackground(r.Palette.Background)

	unit := float64(snap.Board.Unit)
	if snap.HasFood {
		r.Surface.DrawFilledCircle(
			float64(snap.Food.X)+unit/2,
			float64(snap.Food.Y)+unit/2,
			unit/2,
			r.Palette.Food,
		)
	}

	for _, part := range snap.Snake {
		r.Surface.DrawRoundedSquare(float64(part.X), float64(part.Y), unit, r.CornerRadius,
			r.Palette.Snake, r.Palette.SnakeBorder)
	}
}

// RenderGameOver draws the centered "GAME OVER" banner.
func (r *SurfaceRenderer) RenderGameOver(snap Snapshot) {
	r.Surface.DrawCenteredText("GAME OVER",
		float64(snap.Board.Width)/2, float64(snap.Board.Height)/2, r.Palette.GameOver)
}
