package labyrinth

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/labyrinth/internal/config"
	platformcore "github.com/vovakirdan/labyrinth/internal/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
)

const (
	cellWidth    = 3 // Columns per tile
	cellHeight   = 2 // Rows per tile
	markerWidth  = 2 // Row shift markers left of the board
	hudHeight    = 3
	footerHeight = 2
)

// Glyphs drawn in place of a tile's center.
const (
	tokenGlyph = '●'
	goalGlyph  = '◆'
)

// theme holds the resolved board colors.
type theme struct {
	tile      platformcore.Color
	reachable platformcore.Color
	token     platformcore.Color
	goal      platformcore.Color
	cursor    platformcore.Color
	pinned    platformcore.Color
	movable   platformcore.Color
}

func newTheme(tc config.ThemeConfig) theme {
	return theme{
		tile:      platformcore.ParseColorOr(tc.Tile, platformcore.ColorWhite),
		reachable: platformcore.ParseColorOr(tc.Reachable, platformcore.ColorGreen),
		token:     platformcore.ParseColorOr(tc.Token, platformcore.ColorBrightYellow),
		goal:      platformcore.ParseColorOr(tc.Goal, platformcore.ColorBrightMagenta),
		cursor:    platformcore.ParseColorOr(tc.Cursor, platformcore.ColorBrightCyan),
		pinned:    platformcore.ParseColorOr(tc.Pinned, platformcore.ColorGray),
		movable:   platformcore.ParseColorOr(tc.Movable, platformcore.ColorBlue),
	}
}

// centerGlyphs maps an open-side mask (N=1, E=2, S=4, W=8) to the stroke
// drawn in the middle of a tile.
var centerGlyphs = [16]rune{
	'·', '╵', '╶', '└', '╷', '│', '┌', '├',
	'╴', '┘', '─', '┴', '┐', '┤', '┬', '┼',
}

func sideMask(t core.Tile) int {
	mask := 0
	for _, d := range t.OpenSides() {
		mask |= 1 << d
	}
	return mask
}

// boardSize returns the on-screen size of b including the shift markers.
func boardSize(b *core.Board) (w, h int) {
	return markerWidth + b.Columns()*cellWidth, 1 + b.Rows()*cellHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.board == nil {
		g.renderNoBoard(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardSize(g.board)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderMarkers(dst, boardX, boardY)
	g.renderBoard(dst, boardX+markerWidth, boardY+1)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderNoBoard explains why nothing can be played.
func (g *Game) renderNoBoard(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "No levels to play")
	if g.loadErr != nil {
		dst.DrawTextCentered(y+1, g.loadErr.Error())
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	w, h := boardSize(g.board)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h+hudHeight+footerHeight))
}

// renderHUD draws the title, score and progress.
func (g *Game) renderHUD(dst *platformcore.Screen, boardX, boardW int) {
	title := "LABYRINTH"
	if g.level.Name != "" {
		title += ": " + g.level.Name
	}
	dst.DrawTextCentered(0, title)

	left := fmt.Sprintf("Score: %d", g.score)
	var right string
	if g.mode == ModeCampaign {
		right = fmt.Sprintf("Level %d/%d", g.levelIndex+1, len(g.levels))
	} else if g.cfg.Endless.Rounds > 0 {
		right = fmt.Sprintf("Round %d/%d", g.round+1, g.cfg.Endless.Rounds)
	} else {
		right = fmt.Sprintf("Round %d", g.round+1)
	}

	// Wide enough for both sides even on narrow boards
	w := max(boardW, utf8.RuneCountInString(left)+utf8.RuneCountInString(right)+2)
	x := boardX - (w-boardW)/2
	dst.DrawText(x, 1, left)
	dst.DrawText(x+w-utf8.RuneCountInString(right), 1, right)

	dst.DrawTextCentered(2, fmt.Sprintf("Actions: %d  Par: %d", g.actions, g.par))
}

// renderMarkers shows which rows and columns can shift: × pinned,
// ↔/↕ on its own, ⇔/⇕ dragging other lines along.
func (g *Game) renderMarkers(dst *platformcore.Screen, boardX, boardY int) {
	for row := 0; row < g.board.Rows(); row++ {
		r, c := g.lineMarker(row, 0, core.East, '↔', '⇔')
		dst.SetColor(boardX, boardY+1+row*cellHeight+1, r, c)
	}
	for col := 0; col < g.board.Columns(); col++ {
		r, c := g.lineMarker(0, col, core.South, '↕', '⇕')
		dst.SetColor(boardX+markerWidth+col*cellWidth+1, boardY, r, c)
	}
}

func (g *Game) lineMarker(row, col int, d core.Direction, single, band rune) (rune, platformcore.Color) {
	from, to, ok := g.board.MoveSpan(row, col, d)
	switch {
	case !ok:
		return '×', g.theme.pinned
	case to > from:
		return band, g.theme.movable
	default:
		return single, g.theme.pinned
	}
}

// renderBoard draws every tile as a 3x2 block of strokes.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY int) {
	for pos := 0; pos < g.board.Size(); pos++ {
		row, col := g.board.RowCol(pos)
		px := boardX + col*cellWidth
		py := boardY + row*cellHeight
		t := g.board.AtPos(pos)

		color := g.theme.tile
		if g.reach[pos] {
			color = g.theme.reachable
		}

		top, left, right := ' ', ' ', ' '
		if t.Opens(core.North) {
			top = '│'
		}
		if t.Opens(core.West) {
			left = '─'
		}
		if t.Opens(core.East) {
			right = '─'
		}

		center, centerColor := centerGlyphs[sideMask(t)], color
		switch pos {
		case g.token:
			center, centerColor = tokenGlyph, g.theme.token
		case g.goal:
			center, centerColor = goalGlyph, g.theme.goal
		}

		dst.SetColor(px+1, py, top, color)
		dst.SetColor(px, py+1, left, color)
		dst.SetColor(px+1, py+1, center, centerColor)
		dst.SetColor(px+2, py+1, right, color)

		if pos == g.cursor {
			dst.SetColor(px, py, '┌', g.theme.cursor)
			dst.SetColor(px+2, py, '┐', g.theme.cursor)
		}
	}
}

// renderFooter shows the latest message or the level hint.
func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	line := g.message
	if line == "" {
		line = g.level.Metadata["hint"]
	}
	if line != "" {
		dst.DrawTextCentered(y, line)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		gain := fmt.Sprintf("Cleared in %d (par %d): +%d", g.actions, g.par, g.lastGain)
		switch {
		case g.mode == ModeEndless && g.cfg.Endless.Rounds > 0 && g.round >= g.cfg.Endless.Rounds:
			g.drawOverlay(dst, centerX, centerY, gain, "Last round!")
		case g.mode == ModeCampaign && g.levelIndex >= len(g.levels)-1:
			g.drawOverlay(dst, centerX, centerY, gain, "Final level complete!")
		default:
			g.drawOverlay(dst, centerX, centerY, gain, "Enter: next board")
		}
		return
	}

	if g.won {
		title := "CAMPAIGN COMPLETE!"
		if g.mode == ModeEndless {
			title = "RUN COMPLETE!"
		}
		g.drawOverlay(dst, centerX, centerY, title, fmt.Sprintf("Score: %d", g.score), "Press R to restart")
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := platformcore.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
