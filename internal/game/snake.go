package game

// Snake is an ordered list of cells, head first.
type Snake []Cell

// Head returns the first cell.
func (s Snake) Head() Cell {
	return s[0]
}

// Tail returns the last cell.
func (s Snake) Tail() Cell {
	return s[len(s)-1]
}

// Contains reports whether any cell equals c.
func (s Snake) Contains(c Cell) bool {
	for _, part := range s {
		if part == c {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no storage with s.
func (s Snake) Clone() Snake {
	out := make(Snake, len(s))
	copy(out, s)
	return out
}

// StepResult is the outcome of advancing the snake by one tick.
type StepResult struct {
	Snake    Snake
	Ate      bool // Grew onto the food; otherwise the tail slid forward
	Collided bool // Head left the board or hit the body
}

// Step computes the next snake geometry without touching s.
//
// The new head is prepended; if it lands on food the snake keeps its tail,
// otherwise the tail is dropped. Collision is evaluated after the move, so
// moving into the cell the tail just vacated is safe.
func Step(b Board, s Snake, v Velocity, food Cell) StepResult {
	head := s.Head().Add(v)

	next := make(Snake, 0, len(s)+1)
	next = append(next, head)
	next = append(next, s...)

	ate := head == food
	if !ate {
		next = next[:len(next)-1]
	}

	return StepResult{
		Snake:    next,
		Ate:      ate,
		Collided: !b.Contains(head) || next[1:].Contains(head),
	}
}
