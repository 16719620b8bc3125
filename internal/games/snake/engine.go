package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the engine's lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused // Running with a Neutral direction; never stored, always derived
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Cause explains why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// StepEvent reports what a single Step did.
type StepEvent int

const (
	EventIdle  StepEvent = iota // Nothing moved (not started, stopped or over)
	EventMoved                  // Snake moved one cell
	EventAte                    // Snake moved onto food and grew
	EventDied                   // Snake hit a wall or itself
)

func (e StepEvent) String() string {
	switch e {
	case EventIdle:
		return "idle"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	default:
		return "unknown"
	}
}

// Engine owns the complete game state and is its only writer.
// It is not safe for concurrent use; the host drives it from a single loop.
type Engine struct {
	cfg     config.SnakeConfig
	grid    core.Grid
	spawner *Spawner

	body     *Body
	dir      core.Direction
	food     core.Cell
	hasFood  bool
	score    int
	interval time.Duration
	started  bool
	over     bool
	cause    Cause

	steps     uint64
	foodEaten int
}

// NewEngine validates cfg and returns an engine in the reset state.
func NewEngine(cfg config.SnakeConfig, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		grid:    core.NewGrid(cfg.Grid.Size),
		spawner: NewSpawner(rng),
	}
	e.Reset()
	return e, nil
}

// Reset puts the canonical two-segment snake in the middle of the grid,
// pointing up with its tail below the head, and waits for the first direction.
func (e *Engine) Reset() {
	center := e.grid.Center()
	e.body = NewBody(center, center.Add(core.Down))
	e.dir = core.Neutral
	e.score = 0
	e.interval = e.cfg.Pacing.InitialInterval()
	e.started = false
	e.over = false
	e.cause = CauseNone
	e.steps = 0
	e.foodEaten = 0

	// Validate guarantees a grid far larger than two segments
	if err := e.placeFood(); err != nil {
		panic(fmt.Sprintf("snake: reset on a validated grid: %v", err))
	}
}

// RequestDirection sets the snake's direction. It returns false when the
// request is ignored: the game is over, d is Neutral, or d is the exact
// opposite of the current direction of a snake with two or more segments.
//
// A stopped snake has no current direction, so any direction is accepted;
// heading back into the neck then ends the game on the next step.
func (e *Engine) RequestDirection(d core.Direction) bool {
	if e.over || d.IsNeutral() {
		return false
	}
	if e.body.Len() >= 2 && d.IsOpposite(e.dir) {
		return false
	}

	e.dir = d
	e.started = true
	return true
}

// Stop zeroes the direction of a running snake, pausing it in place.
// The next accepted direction resumes movement.
func (e *Engine) Stop() bool {
	if e.Status() != StatusRunning {
		return false
	}
	e.dir = core.Neutral
	return true
}

// Step advances the snake one cell. Unless the game is running with a
// direction set it does nothing and returns EventIdle.
//
// Moving into any current segment ends the game, including the tail cell
// that would be vacated by this very move.
//
// The returned error is non-nil only when no free cell is left for food;
// the game is over at that point.
func (e *Engine) Step() (StepEvent, error) {
	if e.over || !e.started || e.dir.IsNeutral() {
		return EventIdle, nil
	}

	candidate := e.body.PeekNextHead(e.dir)

	if !e.grid.InBounds(candidate) {
		e.end(CauseWall)
		return EventDied, nil
	}
	if e.body.Occupies(candidate) {
		e.end(CauseSelf)
		return EventDied, nil
	}

	grows := e.hasFood && candidate == e.food
	e.body.Advance(candidate, grows)
	e.steps++

	if !grows {
		return EventMoved, nil
	}

	e.score += e.cfg.Scoring.FoodPoints
	e.foodEaten++
	e.interval = max(e.cfg.Pacing.MinInterval(), e.interval-e.cfg.Pacing.Decrement())

	if err := e.placeFood(); err != nil {
		e.end(CauseBoardFull)
		return EventAte, fmt.Errorf("snake: step %d: %w", e.steps, err)
	}
	return EventAte, nil
}

func (e *Engine) end(cause Cause) {
	e.over = true
	e.cause = cause
}

func (e *Engine) placeFood() error {
	food, err := e.spawner.Place(e.body, e.grid)
	if err != nil {
		e.hasFood = false
		return err
	}
	e.food = food
	e.hasFood = true
	return nil
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	switch {
	case e.over:
		return StatusOver
	case !e.started:
		return StatusNotStarted
	case e.dir.IsNeutral():
		return StatusPaused
	default:
		return StatusRunning
	}
}

// Snake returns the snake's cells, head first.
func (e *Engine) Snake() []core.Cell {
	return e.body.Segments()
}

// Head returns the head cell.
func (e *Engine) Head() core.Cell {
	return e.body.Head()
}

// Len returns the snake's length.
func (e *Engine) Len() int {
	return e.body.Len()
}

// Food returns the food cell and whether food is on the board.
func (e *Engine) Food() (core.Cell, bool) {
	return e.food, e.hasFood
}

// Direction returns the current (pending) direction.
func (e *Engine) Direction() core.Direction {
	return e.dir
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Interval returns the current time between steps.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// Cause returns why the game ended, or CauseNone.
func (e *Engine) Cause() Cause {
	return e.cause
}

// Grid returns the playing field.
func (e *Engine) Grid() core.Grid {
	return e.grid
}
