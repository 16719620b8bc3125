// Package snake implements the snake game: a deterministic state machine
// stepped by a variable-interval clock on top of a fixed-rate host poll.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of rows above the board.
const hudHeight = 1

// Game hosts an Engine on a fixed-rate poll: it drains queued input into the
// engine, advances a simulated clock by one poll period and steps the
// engine whenever the clock fires.
type Game struct {
	cfg    config.SnakeConfig
	preset config.DifficultyPreset

	engine *Engine
	clock  *Clock
	rng    *rand.Rand

	tick     uint64
	tickRate int           // Polls per simulated second
	now      time.Duration // Simulated time since Reset, tick/tickRate seconds

	lastEvent StepEvent
	err       error

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the given configuration and preset label.
// The configuration is validated here so Reset cannot fail later.
func New(cfg config.SnakeConfig, preset config.DifficultyPreset) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, preset: preset}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset == "" {
		return "Snake"
	}
	return fmt.Sprintf("Snake (%s)", g.preset)
}

// Reset initializes the game from scratch with a fresh RNG.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))

	engine, err := NewEngine(g.cfg, g.rng)
	if err != nil {
		g.err = err
		return
	}
	g.engine = engine
	g.clock = NewClock(engine.Interval())
	g.err = nil
	g.lastEvent = EventIdle
	g.tick = 0
	g.now = 0

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickRate = tickRate

	g.SetScreenSize(rc.ScreenW, rc.ScreenH)
}

// restart resets the engine but keeps the RNG stream and the clock's time base.
func (g *Game) restart() {
	g.engine.Reset()
	g.clock.SetInterval(g.engine.Interval())
	g.clock.Reset(g.now)
	g.lastEvent = EventIdle
}

// SetScreenSize records the drawable area; the simulation holds while it is too small.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	reqW, reqH := g.RequiredSize()
	g.tooSmall = w < reqW || h < reqH
}

// RequiredSize returns the minimum screen size for the board plus HUD.
// Each grid cell is two columns wide to keep the board roughly square.
// The hint line under the board is drawn only when a spare row exists.
func (g *Game) RequiredSize() (w, h int) {
	n := g.cfg.Grid.Size
	return 2*n + 2, hudHeight + n + 2
}

// Step processes this poll's input and advances the simulated clock by one poll period.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.engine == nil || g.err != nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	g.tick++
	// Derived from the tick count so 1/tickRate never accumulates rounding
	g.now = time.Duration(g.tick) * time.Second / time.Duration(g.tickRate)
	g.lastEvent = EventIdle

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, action := range input.Actions() {
		g.apply(action)
	}

	if g.clock.Fire(g.now) {
		event, err := g.engine.Step()
		g.lastEvent = event
		if event == EventAte {
			g.clock.SetInterval(g.engine.Interval())
		}
		if err != nil {
			g.err = err
		}
	}

	return core.StepResult{State: g.State(), Err: g.err}
}

// apply forwards one translated key action to the engine.
func (g *Game) apply(action core.Action) {
	switch action {
	case core.ActionRestart:
		if g.engine.Status() == StatusOver {
			g.restart()
		}
	case core.ActionStop:
		g.engine.Stop()
	default:
		if d, ok := action.Direction(); ok {
			g.engine.RequestDirection(d)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	status := g.engine.Status()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: status == StatusOver,
		Paused:   status == StatusPaused,
	}
}

// Engine exposes the underlying state machine for read-only inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// LastEvent returns what the engine did during the most recent poll.
func (g *Game) LastEvent() StepEvent {
	return g.lastEvent
}

// Err returns the internal error that halted the simulation, if any.
func (g *Game) Err() error {
	return g.err
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Steps: %d, Score: %d\n", s.Tick, s.Steps, s.Score)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Interval: %dms\n", s.SnakeLen, s.Dir, s.IntervalMs)
	fmt.Fprintf(&b, "Head: %s, Food: %s\n", s.Head, s.Food)
	fmt.Fprintf(&b, "Status: %s, Cause: %s\n", s.Status, s.Cause)
	return b.String()
}
