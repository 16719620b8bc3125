package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	runeHead = 'O'
	runeBody = 'o'
	runeFood = '*'
)

// Render draws the game to the screen. It only reads state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		reqW, reqH := g.RequiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", reqW, reqH))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board)

	if food, ok := g.engine.Food(); ok {
		g.setCell(dst, board, food, runeFood)
	}
	// Tail first so the head is never hidden
	segments := g.engine.Snake()
	for i := len(segments) - 1; i >= 0; i-- {
		r := runeBody
		if i == 0 {
			r = runeHead
		}
		g.setCell(dst, board, segments[i], r)
	}

	g.renderStatus(dst, board)

	if g.engine.Status() == StatusOver {
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - %s", g.engine.Score(), causeText(g.engine.Cause())))
	}
}

// boardRect returns the board outline, centered horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	n := g.engine.Grid().Size
	w := 2*n + 2
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, n+2)
}

// setCell draws a grid cell; each cell spans two columns, content in the first.
func (g *Game) setCell(dst *core.Screen, board core.Rect, c core.Cell, r rune) {
	inner := board.Inset(1)
	dst.Set(inner.X+2*c.X, inner.Y+c.Y, r)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	e := g.engine
	hud := fmt.Sprintf(" %s - Score: %d  Length: %d  Speed: %dms",
		g.Title(), e.Score(), e.Len(), e.Interval().Milliseconds())
	dst.DrawText(0, 0, hud)
}

// renderStatus draws the hint line under the board.
func (g *Game) renderStatus(dst *core.Screen, board core.Rect) {
	var text string
	switch g.engine.Status() {
	case StatusNotStarted:
		text = "Arrows/WASD to start"
	case StatusPaused:
		text = "Stopped - pick a direction to resume"
	case StatusOver:
		text = "R to restart"
	}
	dst.DrawTextCentered(board.Bottom(), text)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func causeText(c Cause) string {
	switch c {
	case CauseWall:
		return "hit the wall"
	case CauseSelf:
		return "bit itself"
	case CauseBoardFull:
		return "filled the board"
	default:
		return ""
	}
}
