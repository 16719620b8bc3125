package core

import "strings"

// Screen is a fixed-size grid of runes. Games paint into it; the platform
// layer decides how to show it. Writes outside the bounds are dropped.
type Screen struct {
	width, height int
	buf           []rune // Row-major, width*height
}

// NewScreen returns a blank screen. Negative sizes are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.width }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.height }

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the dimensions, keeping the overlapping top-left area.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.buf != nil && width == s.width && height == s.height {
		return
	}

	buf := make([]rune, width*height)
	for i := range buf {
		buf[i] = ' '
	}
	for y := range min(height, s.height) {
		n := min(width, s.width)
		copy(buf[y*width:y*width+n], s.buf[y*s.width:y*s.width+n])
	}

	s.width, s.height, s.buf = width, height, buf
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.buf {
		s.buf[i] = ' '
	}
}

// Set writes r at (x, y).
func (s *Screen) Set(x, y int, r rune) {
	if s.Bounds().Contains(x, y) {
		s.buf[y*s.width+x] = r
	}
}

// Get reads (x, y); outside the bounds it reads a space.
func (s *Screen) Get(x, y int) rune {
	if !s.Bounds().Contains(x, y) {
		return ' '
	}
	return s.buf[y*s.width+x]
}

// DrawText writes text left to right from (x, y), one rune per column.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r)
	}
}

// DrawTextCentered writes text on row y, centered horizontally.
func (s *Screen) DrawTextCentered(y int, text string) {
	runes := []rune(text)
	s.DrawText((s.width-len(runes))/2, y, text)
}

// DrawRect fills r with fill.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox outlines r with box-drawing runes.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// Row returns row y as a string; rows outside the screen read as blanks.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.buf[y*s.width : (y+1)*s.width])
}

// String returns all rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
