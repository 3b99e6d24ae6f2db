package game

import (
	"fmt"

	"github.com/codequest-game/codequest/internal/core"
)

// Grid tiles render two columns wide so cells look square in a terminal.
const tileWidth = 2

// PaneSize returns the screen size needed to draw the game: the framed
// grid plus HUD and challenge lines underneath.
func (g *Game) PaneSize() (w, h int) {
	b := g.world.Bounds()
	w = b.W*tileWidth + 1
	h = b.H + 2 + 3
	return w, h
}

// Render draws the full game pane into the screen buffer: framed grid,
// entities, score popups, HUD and active challenge.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	b := g.world.Bounds()
	boxW := b.W*tileWidth + 1
	boxH := b.H + 2
	s.DrawBoxColored(core.NewRect(0, 0, boxW, boxH), core.ColorGray)

	if ch := g.CurrentChallenge(); ch != nil {
		tx, ty := tileToScreen(ch.Target)
		s.SetCell(tx, ty, '◎', core.ColorBrightMagenta)
	}
	for _, o := range g.world.Obstacles() {
		glyph, color := o.Glyph()
		x, y := tileToScreen(o.Pos())
		s.SetCell(x, y, glyph, color)
	}
	for _, gem := range g.world.Gems() {
		if gem.Collected() {
			continue
		}
		glyph, color := gem.Glyph()
		x, y := tileToScreen(gem.Pos())
		s.SetCell(x, y, glyph, color)
	}
	hx, hy := tileToScreen(g.hero.Pos())
	s.SetCell(hx, hy, '@', core.ColorBrightCyan)

	g.renderEffects(s)
	g.renderHUD(s, boxH)
	g.renderBanner(s, boxW, boxH)
}

func tileToScreen(p core.Point) (x, y int) {
	return 1 + p.X*tileWidth, 1 + p.Y
}

func (g *Game) renderEffects(s *core.Screen) {
	total := g.settings.Effects.FloatTicks
	for _, fx := range g.effects {
		x, y := tileToScreen(fx.pos)
		drift := 0
		if total > 0 {
			drift = (total - fx.ticks) * 3 / total
		}
		s.DrawTextColored(x, y-1-drift, fx.text, fx.color)
	}
}

func (g *Game) renderHUD(s *core.Screen, y int) {
	snap := g.Snapshot()
	moves := fmt.Sprintf("%d", snap.Moves)
	if snap.MoveBudget > 0 {
		moves = fmt.Sprintf("%d/%d", snap.Moves, snap.MoveBudget)
	}
	hud := fmt.Sprintf("Score %d  Gems %d/%d  Moves %s", snap.Score, snap.Gems, snap.GemsTotal, moves)
	s.DrawTextColored(0, y, hud, core.ColorBrightWhite)

	if ch := g.CurrentChallenge(); ch != nil {
		s.DrawTextColored(0, y+1, fmt.Sprintf("Challenge %d/%d: %s", snap.Challenge+1, snap.Total, ch.Title), core.ColorYellow)
		s.DrawTextColored(0, y+2, ch.Description, core.ColorGray)
	} else {
		s.DrawTextColored(0, y+1, "All challenges complete!", core.ColorBrightGreen)
	}
}

func (g *Game) renderBanner(s *core.Screen, boxW, boxH int) {
	var text string
	var color core.Color
	switch g.status {
	case StatusWon:
		text = " YOU WIN! "
		color = core.ColorBrightGreen
	case StatusLost:
		text = " OUT OF MOVES "
		color = core.ColorBrightRed
	default:
		return
	}
	x := (boxW - len(text)) / 2
	y := boxH / 2
	s.DrawTextColored(x, y, text, color)
}
