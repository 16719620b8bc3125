package core

import "fmt"

// Cell is a single square on the playing field.
type Cell struct {
	X, Y int
}

// Add returns the cell shifted by the direction's unit delta.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the bounded square playing field of Size x Size cells.
// The zero-based origin is the top-left corner.
type Grid struct {
	Size int
}

// NewGrid creates a grid with the given side length.
func NewGrid(size int) Grid {
	return Grid{Size: size}
}

// InBounds reports whether c lies inside the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Size * g.Size
}

// Center returns the middle cell, rounding down on even sizes.
func (g Grid) Center() Cell {
	mid := g.Size / 2
	return Cell{X: mid, Y: mid}
}
