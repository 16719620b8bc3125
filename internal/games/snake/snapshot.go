package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick       uint64
	Steps      uint64
	Score      int
	FoodEaten  int
	SnakeLen   int
	Head       core.Cell
	Dir        core.Direction
	Food       core.Cell
	HasFood    bool
	IntervalMs int
	Status     Status
	Cause      Cause
}

// Snapshot returns the engine's state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Steps:      e.steps,
		Score:      e.score,
		FoodEaten:  e.foodEaten,
		SnakeLen:   e.body.Len(),
		Head:       e.body.Head(),
		Dir:        e.dir,
		Food:       e.food,
		HasFood:    e.hasFood,
		IntervalMs: int(e.interval.Milliseconds()),
		Status:     e.Status(),
		Cause:      e.cause,
	}
}

// Snapshot returns the current game snapshot including the host tick count.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Tick: g.tick}
	}
	s := g.engine.Snapshot()
	s.Tick = g.tick
	return s
}
