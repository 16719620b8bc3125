package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Body is the snake's ordered list of segments, head at index 0.
// Only the Engine mutates it.
type Body struct {
	segments []core.Cell
}

// NewBody creates a body from cells listed head first.
func NewBody(cells ...core.Cell) *Body {
	segments := make([]core.Cell, len(cells))
	copy(segments, cells)
	return &Body{segments: segments}
}

// Head returns the first segment.
func (b *Body) Head() core.Cell {
	return b.segments[0]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []core.Cell {
	out := make([]core.Cell, len(b.segments))
	copy(out, b.segments)
	return out
}

// PeekNextHead returns where the head would be after moving in d.
func (b *Body) PeekNextHead(d core.Direction) core.Cell {
	return b.Head().Add(d)
}

// Advance prepends newHead. Unless grows is set the tail is dropped,
// so the length stays the same.
func (b *Body) Advance(newHead core.Cell, grows bool) {
	if grows {
		b.segments = append(b.segments, core.Cell{})
	}
	copy(b.segments[1:], b.segments[:len(b.segments)-1])
	b.segments[0] = newHead
}

// Occupies reports whether any segment sits on c.
func (b *Body) Occupies(c core.Cell) bool {
	for _, seg := range b.segments {
		if seg == c {
			return true
		}
	}
	return false
}
