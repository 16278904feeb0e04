package game

import "testing"

func TestStep(t *testing.T) {
	b := DefaultBoard()
	right := Velocity{DX: 25}

	tests := []struct {
		name         string
		snake        Snake
		velocity     Velocity
		food         Cell
		wantHead     Cell
		wantLen      int
		wantAte      bool
		wantCollided bool
	}{
		{
			name:     "slide right",
			snake:    canonicalSnake(),
			velocity: right,
			food:     Cell{300, 300},
			wantHead: Cell{125, 0},
			wantLen:  5,
		},
		{
			name:     "grow onto food",
			snake:    canonicalSnake(),
			velocity: right,
			food:     Cell{125, 0},
			wantHead: Cell{125, 0},
			wantLen:  6,
			wantAte:  true,
		},
		{
			name:         "leave left edge",
			snake:        Snake{{0, 0}, {0, 25}},
			velocity:     Velocity{DX: -25},
			food:         Cell{300, 300},
			wantHead:     Cell{-25, 0},
			wantLen:      2,
			wantCollided: true,
		},
		{
			name:         "leave right edge",
			snake:        Snake{{475, 100}, {450, 100}},
			velocity:     right,
			food:         Cell{300, 300},
			wantHead:     Cell{500, 100},
			wantLen:      2,
			wantCollided: true,
		},
		{
			name:         "leave bottom edge",
			snake:        Snake{{100, 475}, {100, 450}},
			velocity:     Velocity{DY: 25},
			food:         Cell{300, 300},
			wantHead:     Cell{100, 500},
			wantLen:      2,
			wantCollided: true,
		},
		{
			name:         "leave top edge",
			snake:        Snake{{100, 0}, {100, 25}},
			velocity:     Velocity{DY: -25},
			food:         Cell{300, 300},
			wantHead:     Cell{100, -25},
			wantLen:      2,
			wantCollided: true,
		},
		{
			name: "bite own body",
			snake: Snake{
				{100, 100}, {125, 100}, {125, 125}, {100, 125}, {75, 125}, {75, 100},
			},
			velocity:     Velocity{DY: 25},
			food:         Cell{300, 300},
			wantHead:     Cell{100, 125},
			wantLen:      6,
			wantCollided: true,
		},
		{
			name: "follow vacated tail",
			snake: Snake{
				{100, 100}, {125, 100}, {125, 125}, {100, 125},
			},
			velocity: Velocity{DY: 25},
			food:     Cell{300, 300},
			wantHead: Cell{100, 125},
			wantLen:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.snake.Clone()
			res := Step(b, tt.snake, tt.velocity, tt.food)

			if !snakesEqual(tt.snake, orig) {
				t.Fatalf("Step mutated its input: %v", tt.snake)
			}
			if res.Snake.Head() != tt.wantHead {
				t.Errorf("head = %v, want %v", res.Snake.Head(), tt.wantHead)
			}
			if len(res.Snake) != tt.wantLen {
				t.Errorf("length = %d, want %d", len(res.Snake), tt.wantLen)
			}
			if res.Ate != tt.wantAte {
				t.Errorf("ate = %v, want %v", res.Ate, tt.wantAte)
			}
			if res.Collided != tt.wantCollided {
				t.Errorf("collided = %v, want %v", res.Collided, tt.wantCollided)
			}
		})
	}
}

func TestDirectionVelocity(t *testing.T) {
	for _, d := range []Direction{DirLeft, DirUp, DirRight, DirDown} {
		v, ok := d.Velocity(25)
		if !ok || !v.Valid(25) {
			t.Errorf("%v: velocity %v ok=%v", d, v, ok)
		}
	}
	if _, ok := DirNone.Velocity(25); ok {
		t.Error("DirNone should not map to a velocity")
	}
	if (Velocity{DX: 25, DY: 25}).Valid(25) || (Velocity{}).Valid(25) {
		t.Error("diagonal and zero velocities must be invalid")
	}
}

func TestDefaultSnakeIsCanonical(t *testing.T) {
	s := DefaultBoard().DefaultSnake()
	if !snakesEqual(s, canonicalSnake()) {
		t.Fatalf("default snake = %v", s)
	}
	for i := 1; i < len(s); i++ {
		dx, dy := s[i-1].X-s[i].X, s[i-1].Y-s[i].Y
		if !(Velocity{DX: dx, DY: dy}).Valid(25) {
			t.Fatalf("cells %d and %d are not one unit apart", i-1, i)
		}
	}
}

func TestDefaultBoardGeometry(t *testing.T) {
	b := DefaultBoard()
	if BoardWidth%UnitSize != 0 || BoardHeight%UnitSize != 0 {
		t.Fatalf("board %dx%d is not a multiple of unit %d", BoardWidth, BoardHeight, UnitSize)
	}
	if b.Cols() != 20 || b.Rows() != 20 {
		t.Fatalf("grid = %dx%d, want 20x20", b.Cols(), b.Rows())
	}
	if e := NewEngine(Options{}); e.interval != TickInterval {
		t.Fatalf("default interval = %v, want %v", e.interval, TickInterval)
	}
}
