package game

import (
	"math/rand"
	"strconv"
	"time"
)

// RunState is the engine's lifecycle phase.
type RunState int

const (
	StateIdle     RunState = iota // Waiting for the first direction key
	StateRunning                  // Ticking
	StateGameOver                 // Terminal until Reset
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// ScoreDisplay mirrors the score outside the engine.
type ScoreDisplay interface {
	SetText(value string)
}

// Renderer paints engine state. The engine calls it after every state change.
type Renderer interface {
	RenderBoard(snap Snapshot)
	RenderGameOver(snap Snapshot)
}

// Snapshot is a copy of the engine state safe to retain.
type Snapshot struct {
	State    RunState
	Board    Board
	Snake    Snake
	Velocity Velocity
	Food     Cell
	HasFood  bool // False while Idle
	Score    int
}

// Options configures an Engine. Zero fields fall back to defaults.
type Options struct {
	Board        Board
	TickInterval time.Duration
	Clock        Clock
	Rand         *rand.Rand
	Display      ScoreDisplay
	Renderer     Renderer
}

// Engine is the snake state machine: Idle -> Running -> GameOver -> Idle.
//
// An Engine is not safe for concurrent use. The owner serialises Tick,
// HandleDirection and Reset, typically from a single select loop reading
// Ticks().
type Engine struct {
	board    Board
	interval time.Duration
	clock    Clock
	rng      *rand.Rand
	display  ScoreDisplay
	renderer Renderer

	state    RunState
	snake    Snake
	velocity Velocity
	food     Cell
	hasFood  bool
	score    int
	ticker   Ticker
}

// NewEngine creates an Idle engine and renders the initial board.
func NewEngine(opts Options) *Engine {
	if opts.Board.Unit == 0 {
		opts.Board = DefaultBoard()
	}
	if opts.TickInterval == 0 {
		opts.TickInterval = TickInterval
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Display == nil {
		opts.Display = nopDisplay{}
	}
	if opts.Renderer == nil {
		opts.Renderer = nopRenderer{}
	}

	e := &Engine{
		board:    opts.Board,
		interval: opts.TickInterval,
		clock:    opts.Clock,
		rng:      opts.Rand,
		display:  opts.Display,
		renderer: opts.Renderer,
	}
	e.Reset()
	return e
}

// State returns the current lifecycle phase.
func (e *Engine) State() RunState {
	return e.state
}

// Score returns the number of foods eaten since the run started.
func (e *Engine) Score() int {
	return e.score
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:    e.state,
		Board:    e.board,
		Snake:    e.snake.Clone(),
		Velocity: e.velocity,
		Food:     e.food,
		HasFood:  e.hasFood,
		Score:    e.score,
	}
}

// Ticks returns the running clock's channel, or nil when not Running so a
// select case on it blocks.
func (e *Engine) Ticks() <-chan time.Time {
	if e.state != StateRunning || e.ticker == nil {
		return nil
	}
	return e.ticker.C()
}

// HandleDirection applies a steering request. The first request while Idle
// starts a run. Requests that reverse the current velocity are ignored, as
// is anything outside the four directions.
func (e *Engine) HandleDirection(d Direction) {
	v, ok := d.Velocity(e.board.Unit)
	if !ok {
		return
	}

	switch e.state {
	case StateIdle:
		e.start()
		e.steer(v)
	case StateRunning:
		e.steer(v)
	}
}

// Tick advances a Running simulation by one step.
func (e *Engine) Tick() {
	if e.state != StateRunning {
		return
	}

	res := Step(e.board, e.snake, e.velocity, e.food)
	e.snake = res.Snake

	if res.Ate {
		e.score++
		e.display.SetText(strconv.Itoa(e.score))
		e.placeFood()
	}

	if res.Collided {
		e.stopClock()
		e.state = StateGameOver
		snap := e.Snapshot()
		e.renderer.RenderBoard(snap)
		e.renderer.RenderGameOver(snap)
		return
	}

	e.renderer.RenderBoard(e.Snapshot())
}

// Reset restores the canonical snake, default velocity and zero score and
// returns to Idle from any state.
func (e *Engine) Reset() {
	e.stopClock()
	e.state = StateIdle
	e.snake = e.board.DefaultSnake()
	e.velocity = e.board.DefaultVelocity()
	e.food = Cell{}
	e.hasFood = false
	e.score = 0
	e.display.SetText("0")
	e.renderer.RenderBoard(e.Snapshot())
}

// Redraw re-renders the current state, including the game over overlay.
func (e *Engine) Redraw() {
	snap := e.Snapshot()
	e.renderer.RenderBoard(snap)
	if e.state == StateGameOver {
		e.renderer.RenderGameOver(snap)
	}
}

func (e *Engine) start() {
	e.state = StateRunning
	e.score = 0
	e.display.SetText("0")
	e.placeFood()
	e.ticker = e.clock.NewTicker(e.interval)
}

func (e *Engine) steer(v Velocity) {
	if v == e.velocity.Reverse() {
		return
	}
	e.velocity = v
}

// placeFood picks a uniformly random cell. Cells under the snake are not
// excluded.
func (e *Engine) placeFood() {
	e.food = Cell{
		X: e.rng.Intn(e.board.Cols()) * e.board.Unit,
		Y: e.rng.Intn(e.board.Rows()) * e.board.Unit,
	}
	e.hasFood = true
}

func (e *Engine) stopClock() {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

type nopDisplay struct{}

func (nopDisplay) SetText(string) {}

type nopRenderer struct{}

func (nopRenderer) RenderBoard(Snapshot)    {}
func (nopRenderer) RenderGameOver(Snapshot) {}
