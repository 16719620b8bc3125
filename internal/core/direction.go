package core

// Direction is a unit movement delta on the grid.
// The zero value is Neutral (no movement).
type Direction struct {
	DX, DY int
}

// The four movement directions plus Neutral.
var (
	Neutral = Direction{}
	Up      = Direction{DX: 0, DY: -1}
	Down    = Direction{DX: 0, DY: 1}
	Left    = Direction{DX: -1, DY: 0}
	Right   = Direction{DX: 1, DY: 0}
)

// IsNeutral reports whether the direction has no movement.
func (d Direction) IsNeutral() bool {
	return d == Neutral
}

// Opposite returns the reverse direction. Neutral is its own opposite.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether d and other point exactly against each other.
// Neutral is never opposite to anything.
func (d Direction) IsOpposite(other Direction) bool {
	if d.IsNeutral() || other.IsNeutral() {
		return false
	}
	return d == other.Opposite()
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Neutral:
		return "neutral"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
