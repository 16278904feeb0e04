// Package game implements the snake simulation: grid geometry, the pure
// step function and the Engine state machine that drives it.
package game

// Cell is a grid position in logical pixels. Both coordinates are
// multiples of the board unit; origin is top-left, y grows downward.
type Cell struct {
	X, Y int
}

// Add returns c moved by v.
func (c Cell) Add(v Velocity) Cell {
	return Cell{X: c.X + v.DX, Y: c.Y + v.DY}
}

// Velocity is the per-tick head displacement.
type Velocity struct {
	DX, DY int
}

// Reverse returns the opposite velocity.
func (v Velocity) Reverse() Velocity {
	return Velocity{DX: -v.DX, DY: -v.DY}
}

// Valid reports whether exactly one component is ±unit and the other is zero.
func (v Velocity) Valid(unit int) bool {
	switch {
	case v.DY == 0:
		return v.DX == unit || v.DX == -unit
	case v.DX == 0:
		return v.DY == unit || v.DY == -unit
	default:
		return false
	}
}

// Direction is a steering request.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Velocity converts the direction to a velocity of one unit per tick.
// ok is false for anything but the four recognized directions.
func (d Direction) Velocity(unit int) (v Velocity, ok bool) {
	switch d {
	case DirLeft:
		return Velocity{DX: -unit}, true
	case DirUp:
		return Velocity{DY: -unit}, true
	case DirRight:
		return Velocity{DX: unit}, true
	case DirDown:
		return Velocity{DY: unit}, true
	default:
		return Velocity{}, false
	}
}

// Board is the playable area in logical pixels.
type Board struct {
	Width  int
	Height int
	Unit   int
}

// DefaultBoard returns the standard 500x500 board with 25px cells.
func DefaultBoard() Board {
	return Board{
		Width:  BoardWidth,
		Height: BoardHeight,
		Unit:   UnitSize,
	}
}

// Cols returns the number of cells per row.
func (b Board) Cols() int {
	return b.Width / b.Unit
}

// Rows returns the number of cells per column.
func (b Board) Rows() int {
	return b.Height / b.Unit
}

// Contains reports whether c lies within [0, Width) x [0, Height).
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// DefaultVelocity is the rightward start vector.
func (b Board) DefaultVelocity() Velocity {
	return Velocity{DX: b.Unit}
}

// DefaultSnake returns the canonical 5-cell horizontal snake along the top
// row, head at (4*unit, 0).
func (b Board) DefaultSnake() Snake {
	s := make(Snake, 5)
	for i := range s {
		s[i] = Cell{X: (4 - i) * b.Unit, Y: 0}
	}
	return s
}
