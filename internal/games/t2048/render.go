package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	minScreenW = 4*cellWidth + 3
	minScreenH = hudHeight + 4*cellHeight + 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols
	boardW := cols*cellWidth + 1
	boardH := rows*cellHeight + 1
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	renderGrid(dst, boardX, boardY, rows, cols)

	if g.anim.phase == PhaseSlide {
		g.renderSliding(dst, boardX, boardY)
	} else {
		g.renderTiles(dst, boardX, boardY)
	}

	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	_, y := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()
	dst.DrawTextCentered(y, "Window too small", core.ColorOverlay)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorMuted)
}

// renderHUD draws the title, target and move counter.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, "2 0 4 8", core.ColorTitle)

	target := fmt.Sprintf("Target: %d", g.Target())
	dst.DrawTextColor(boardX, 1, target, core.ColorMuted)

	maxTile := 0
	for _, row := range g.values {
		for _, v := range row {
			maxTile = max(maxTile, v)
		}
	}
	moves := fmt.Sprintf("Moves: %d", g.session.Turns())
	dst.DrawTextColor(max(boardX+boardW-len(moves), boardX), 1, moves, core.ColorMuted)
	dst.DrawTextColor(boardX, 2, fmt.Sprintf("Max: %d", maxTile), core.ColorMuted)
}

// renderGrid draws the cell borders.
func renderGrid(dst *core.Screen, boardX, boardY, rows, cols int) {
	for y := range rows + 1 {
		for x := range cols + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGrid)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGrid)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGrid)
				}
			}
		}
	}
}

// renderTiles draws the settled board, popping in the spawned tile.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	for r, row := range g.values {
		for c, v := range row {
			if v == 0 {
				continue
			}
			x := boardX + c*cellWidth + 1
			y := boardY + r*cellHeight + 1

			if s := g.anim.spawned; s != nil && s.Row == r && s.Col == c && g.anim.popProgress() < 0.5 {
				drawCentered(dst, x, y, "·", core.ColorMuted)
				continue
			}
			drawCentered(dst, x, y, strconv.Itoa(v), core.TileColor(v))
		}
	}
}

// renderSliding draws tiles at their interpolated positions.
func (g *Game) renderSliding(dst *core.Screen, boardX, boardY int) {
	for _, t := range g.anim.tiles {
		row, col := t.position()
		x := boardX + int(math.Round(col*cellWidth)) + 1
		y := boardY + int(math.Round(row*cellHeight)) + 1
		drawCentered(dst, x, y, strconv.Itoa(t.Value), core.TileColor(t.Value))
	}
}

// drawCentered draws text centered in the cell interior starting at x.
func drawCentered(dst *core.Screen, x, y int, text string, c core.Color) {
	pad := max((cellWidth-1-len([]rune(text)))/2, 0)
	dst.DrawTextColor(x+pad, y, text, c)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.state == engine.Won && !g.anim.active():
		drawOverlay(dst, board, "YOU WIN!", fmt.Sprintf("Reached %d", g.Target()), "Press R to restart")
	case g.state == engine.Lost && !g.anim.active():
		drawOverlay(dst, board, "GAME OVER", "No moves left", "Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorOverlay)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawTextColor(x, box.Y+1+i, line, core.ColorOverlay)
	}
}
