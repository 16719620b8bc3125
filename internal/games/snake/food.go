package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when the snake covers every cell and no food can
// be placed. It marks the maximum achievable score.
var ErrBoardFull = errors.New("snake: no free cell left for food")

// Spawner picks food positions.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Place reject-samples uniformly random cells until it finds one the body
// does not occupy. The full-board case is detected up front.
func (s *Spawner) Place(body *Body, grid core.Grid) (core.Cell, error) {
	if body.Len() >= grid.Area() {
		return core.Cell{}, fmt.Errorf("%w (length %d on %dx%d grid)", ErrBoardFull, body.Len(), grid.Size, grid.Size)
	}

	for {
		c := core.Cell{
			X: s.rng.Intn(grid.Size),
			Y: s.rng.Intn(grid.Size),
		}
		if !body.Occupies(c) {
			return c, nil
		}
	}
}
