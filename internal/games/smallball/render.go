package smallball

import (
	"fmt"

	"github.com/tiltgames/tilt-arcade/internal/core"
)

// The game simulates a 128x64 pixel display; terminal cells are roughly
// twice as tall as wide, so 2x4 pixels map to one cell and the field comes
// out as a 64x16 block centered on screen.
const (
	pixelsPerCellX = 2
	pixelsPerCellY = 4

	displayPixelsW = 128
	displayPixelsH = 64
)

const (
	gameName     = "Small Ball"
	scoreText    = "score: "
	lowScoreText = "low score: "
	gameOverText = "Game Over"
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	switch g.state.Mode() {
	case ModeIntro:
		g.renderSplash(dst)
	case ModePlay:
		g.renderField(dst)
	case ModeOver:
		g.renderGameOver(dst)
	}

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " paused ", core.ColorYellow)
	}
}

// origin returns the top-left cell of the centered 64x16 display area.
func (g *Game) origin(dst *core.Screen) (int, int) {
	offX := (dst.Width() - displayPixelsW/pixelsPerCellX) / 2
	offY := (dst.Height() - displayPixelsH/pixelsPerCellY) / 2
	return offX, offY
}

// cellRect converts a pixel-space rectangle to screen cells.
func (g *Game) cellRect(dst *core.Screen, x, y, w, h int) core.Rect {
	offX, offY := g.origin(dst)
	return core.Rect{
		X: offX + x/pixelsPerCellX,
		Y: offY + y/pixelsPerCellY,
		W: max(1, w/pixelsPerCellX),
		H: max(1, h/pixelsPerCellY),
	}
}

func (g *Game) renderSplash(dst *core.Screen) {
	_, offY := g.origin(dst)

	dst.DrawTextCentered(offY+1, gameName, core.ColorCyan)
	dst.DrawTextCentered(offY+3, "tilt the board, touch every goal", core.ColorGray)

	// Three decorative shapes, as on the original splash screen.
	shapes := []struct {
		x, y int
		fill rune
	}{
		{20, 28, '▲'},
		{52, 28, '■'},
		{88, 28, '●'},
	}
	for _, sh := range shapes {
		r := g.cellRect(dst, sh.x, sh.y, 16, 16)
		dst.DrawBox(r, core.ColorBlue)
		dst.SetCell(r.X+r.W/2, r.Y+r.H/2, sh.fill, core.ColorWhite)
	}
}

func (g *Game) renderField(dst *core.Screen) {
	offX, offY := g.origin(dst)
	outline := g.state.FieldOutline()

	dst.DrawText(offX, offY, fmt.Sprintf("%s%d", scoreText, g.state.Score()), core.ColorWhite)
	dst.DrawBox(g.cellRect(dst, outline.X, outline.Y, outline.W, outline.H), core.ColorGray)

	for _, goal := range g.state.AliveGoals() {
		loc := goal.Location()
		dst.DrawRect(g.cellRect(dst, loc.X, loc.Y, goal.Size(), goal.Size()), '░', core.ColorYellow)
	}

	ball := g.state.Ball()
	loc := ball.Location()
	dst.DrawRect(g.cellRect(dst, loc.X, loc.Y, ball.Size(), ball.Size()), '█', core.ColorCyan)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	_, offY := g.origin(dst)

	dst.DrawTextCentered(offY+1, gameOverText, core.ColorRed)
	dst.DrawTextCentered(offY+5, fmt.Sprintf("%s%d", scoreText, g.state.Score()), core.ColorWhite)

	low := "-"
	if g.state.LowScore() != NoLowScore {
		low = fmt.Sprintf("%d", g.state.LowScore())
	}
	dst.DrawTextCentered(offY+9, fmt.Sprintf("%s%s", lowScoreText, low), core.ColorWhite)
}
