package game

import (
	"fmt"

	"github.com/codequest-game/codequest/internal/config"
	"github.com/codequest-game/codequest/internal/core"
)

// World holds the static grid contents for one run: bounds, obstacles
// and gems. The hero lives outside the world so movement logic can
// treat the world as read-mostly.
type World struct {
	bounds    core.Rect
	obstacles []*Obstacle
	gems      []*Gem
	blocked   map[core.Point]*Obstacle
	gemAt     map[core.Point]*Gem
}

// NewWorld builds a world and hero from validated level data.
func NewWorld(lvl *config.Level) (*World, *Hero, error) {
	w := &World{
		bounds:  core.NewRect(0, 0, lvl.Grid.Cols, lvl.Grid.Rows),
		blocked: make(map[core.Point]*Obstacle),
		gemAt:   make(map[core.Point]*Gem),
	}

	var nextID EntityID
	for _, oc := range lvl.Obstacles {
		kind, err := ParseObstacleKind(oc.Kind)
		if err != nil {
			return nil, nil, err
		}
		o, err := NewObstacle(nextID, core.Point{X: oc.Col, Y: oc.Row}, kind)
		if err != nil {
			return nil, nil, err
		}
		nextID++
		w.obstacles = append(w.obstacles, o)
		w.blocked[o.Pos()] = o
	}
	for _, gc := range lvl.Gems {
		kind, err := ParseGemKind(gc.Kind)
		if err != nil {
			return nil, nil, err
		}
		g, err := NewGem(nextID, core.Point{X: gc.Col, Y: gc.Row}, kind)
		if err != nil {
			return nil, nil, err
		}
		nextID++
		w.gems = append(w.gems, g)
		w.gemAt[g.Pos()] = g
	}

	start := core.Point{X: lvl.Hero.StartCol, Y: lvl.Hero.StartRow}
	if !w.InBounds(start) {
		return nil, nil, fmt.Errorf("game: hero start %v outside grid", start)
	}
	if w.BlockedAt(start) {
		return nil, nil, fmt.Errorf("game: hero start %v is blocked", start)
	}
	hero := NewHero(nextID, start)

	return w, hero, nil
}

// Bounds returns the grid rectangle.
func (w *World) Bounds() core.Rect { return w.bounds }

// InBounds reports whether the tile lies on the grid.
func (w *World) InBounds(p core.Point) bool {
	return w.bounds.ContainsPoint(p)
}

// BlockedAt reports whether an obstacle occupies the tile.
func (w *World) BlockedAt(p core.Point) bool {
	_, ok := w.blocked[p]
	return ok
}

// GemAt returns the uncollected gem on the tile, if any.
func (w *World) GemAt(p core.Point) *Gem {
	g, ok := w.gemAt[p]
	if !ok || g.Collected() {
		return nil
	}
	return g
}

// Obstacles returns all obstacles in placement order.
func (w *World) Obstacles() []*Obstacle { return w.obstacles }

// Gems returns all gems in placement order, collected ones included.
func (w *World) Gems() []*Gem { return w.gems }

// RemainingGems counts gems not yet collected.
func (w *World) RemainingGems() int {
	n := 0
	for _, g := range w.gems {
		if !g.Collected() {
			n++
		}
	}
	return n
}
