package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBodyPeekDoesNotMutate(t *testing.T) {
	b := NewBody(core.Cell{X: 5, Y: 5}, core.Cell{X: 5, Y: 6})

	next := b.PeekNextHead(core.Up)

	if next != (core.Cell{X: 5, Y: 4}) {
		t.Errorf("PeekNextHead(up) = %v, expected (5,4)", next)
	}
	if b.Head() != (core.Cell{X: 5, Y: 5}) || b.Len() != 2 {
		t.Error("PeekNextHead should not change the body")
	}
}

func TestBodyAdvance(t *testing.T) {
	tests := []struct {
		name     string
		grows    bool
		expected []core.Cell
	}{
		{
			name:     "moves without growing",
			grows:    false,
			expected: []core.Cell{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6}},
		},
		{
			name:     "grows keeping the tail",
			grows:    true,
			expected: []core.Cell{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(core.Cell{X: 5, Y: 5}, core.Cell{X: 5, Y: 6}, core.Cell{X: 5, Y: 7})
			b.Advance(core.Cell{X: 5, Y: 4}, tc.grows)

			got := b.Segments()
			if len(got) != len(tc.expected) {
				t.Fatalf("Segments() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("segment %d = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestBodyAdvanceSingleSegment(t *testing.T) {
	b := NewBody(core.Cell{X: 1, Y: 1})
	b.Advance(core.Cell{X: 2, Y: 1}, false)

	if b.Len() != 1 || b.Head() != (core.Cell{X: 2, Y: 1}) {
		t.Errorf("single segment should just move, got %v", b.Segments())
	}
}

func TestBodyOccupies(t *testing.T) {
	b := NewBody(core.Cell{X: 1, Y: 1}, core.Cell{X: 1, Y: 2}, core.Cell{X: 2, Y: 2})

	for _, c := range b.Segments() {
		if !b.Occupies(c) {
			t.Errorf("Occupies(%v) = false for a segment", c)
		}
	}
	if b.Occupies(core.Cell{X: 0, Y: 0}) {
		t.Error("Occupies should be false for a free cell")
	}
}

func TestBodySegmentsIsACopy(t *testing.T) {
	b := NewBody(core.Cell{X: 1, Y: 1}, core.Cell{X: 1, Y: 2})
	segs := b.Segments()
	segs[0] = core.Cell{X: 9, Y: 9}

	if b.Head() != (core.Cell{X: 1, Y: 1}) {
		t.Error("mutating Segments() result leaked into the body")
	}
}
