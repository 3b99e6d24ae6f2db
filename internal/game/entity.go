package game

import (
	"fmt"

	"github.com/codequest-game/codequest/internal/core"
)

// EntityID uniquely identifies an entity within a single world.
type EntityID int

// Entity is anything that occupies a tile on the grid.
type Entity interface {
	ID() EntityID
	Pos() core.Point
}

// Movable is an entity whose position can change during play.
type Movable interface {
	Entity
	MoveTo(p core.Point)
}

// Collectible is an entity the hero can pick up for points.
type Collectible interface {
	Entity
	Value() int
	Collected() bool
	Collect()
}

// Blocking is an entity that prevents movement onto its tile.
type Blocking interface {
	Entity
	Blocks() bool
}

// Direction is a cardinal movement direction on the grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the grid offset for one step in the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// GemKind is the species of a collectible gem.
type GemKind string

const (
	GemRuby     GemKind = "ruby"
	GemEmerald  GemKind = "emerald"
	GemSapphire GemKind = "sapphire"
	GemGold     GemKind = "gold"
	GemDiamond  GemKind = "diamond"
)

type gemInfo struct {
	value int
	color core.Color
}

var gemKinds = map[GemKind]gemInfo{
	GemRuby:     {value: 10, color: core.ColorRed},
	GemEmerald:  {value: 15, color: core.ColorGreen},
	GemSapphire: {value: 20, color: core.ColorBlue},
	GemGold:     {value: 25, color: core.ColorYellow},
	GemDiamond:  {value: 50, color: core.ColorCyan},
}

// ParseGemKind validates a gem kind name from level data.
func ParseGemKind(s string) (GemKind, error) {
	k := GemKind(s)
	if _, ok := gemKinds[k]; !ok {
		return "", fmt.Errorf("game: unknown gem kind %q", s)
	}
	return k, nil
}

// Gem is a collectible placed on the grid.
type Gem struct {
	id        EntityID
	pos       core.Point
	kind      GemKind
	collected bool
}

// NewGem builds a gem of a known kind at the given tile.
func NewGem(id EntityID, pos core.Point, kind GemKind) (*Gem, error) {
	if _, ok := gemKinds[kind]; !ok {
		return nil, fmt.Errorf("game: unknown gem kind %q", kind)
	}
	if pos.X < 0 || pos.Y < 0 {
		return nil, fmt.Errorf("game: gem position %v is negative", pos)
	}
	return &Gem{id: id, pos: pos, kind: kind}, nil
}

func (g *Gem) ID() EntityID    { return g.id }
func (g *Gem) Pos() core.Point { return g.pos }
func (g *Gem) Kind() GemKind   { return g.kind }
func (g *Gem) Value() int      { return gemKinds[g.kind].value }
func (g *Gem) Collected() bool { return g.collected }
func (g *Gem) Collect()        { g.collected = true }

// Glyph returns the rune and color used to draw the gem.
func (g *Gem) Glyph() (rune, core.Color) {
	return '♦', gemKinds[g.kind].color
}

// ObstacleKind is the species of an impassable obstacle.
type ObstacleKind string

const (
	ObstacleRock  ObstacleKind = "rock"
	ObstacleCrate ObstacleKind = "crate"
	ObstacleBush  ObstacleKind = "bush"
)

type obstacleInfo struct {
	glyph rune
	color core.Color
}

var obstacleKinds = map[ObstacleKind]obstacleInfo{
	ObstacleRock:  {glyph: '●', color: core.ColorGray},
	ObstacleCrate: {glyph: '▣', color: core.ColorOrange},
	ObstacleBush:  {glyph: '♣', color: core.ColorGreen},
}

// ParseObstacleKind validates an obstacle kind name from level data.
func ParseObstacleKind(s string) (ObstacleKind, error) {
	k := ObstacleKind(s)
	if _, ok := obstacleKinds[k]; !ok {
		return "", fmt.Errorf("game: unknown obstacle kind %q", s)
	}
	return k, nil
}

// Obstacle is a static blocker on the grid.
type Obstacle struct {
	id   EntityID
	pos  core.Point
	kind ObstacleKind
}

// NewObstacle builds an obstacle of a known kind at the given tile.
func NewObstacle(id EntityID, pos core.Point, kind ObstacleKind) (*Obstacle, error) {
	if _, ok := obstacleKinds[kind]; !ok {
		return nil, fmt.Errorf("game: unknown obstacle kind %q", kind)
	}
	if pos.X < 0 || pos.Y < 0 {
		return nil, fmt.Errorf("game: obstacle position %v is negative", pos)
	}
	return &Obstacle{id: id, pos: pos, kind: kind}, nil
}

func (o *Obstacle) ID() EntityID       { return o.id }
func (o *Obstacle) Pos() core.Point    { return o.pos }
func (o *Obstacle) Kind() ObstacleKind { return o.kind }
func (o *Obstacle) Blocks() bool       { return true }

// Glyph returns the rune and color used to draw the obstacle.
func (o *Obstacle) Glyph() (rune, core.Color) {
	info := obstacleKinds[o.kind]
	return info.glyph, info.color
}

// Hero is the player-controlled entity.
type Hero struct {
	id     EntityID
	pos    core.Point
	facing Direction
}

// NewHero places the hero at its starting tile.
func NewHero(id EntityID, pos core.Point) *Hero {
	return &Hero{id: id, pos: pos, facing: DirRight}
}

func (h *Hero) ID() EntityID        { return h.id }
func (h *Hero) Pos() core.Point     { return h.pos }
func (h *Hero) Facing() Direction   { return h.facing }
func (h *Hero) MoveTo(p core.Point) { h.pos = p }

// Face turns the hero without moving it.
func (h *Hero) Face(d Direction) {
	if d != DirNone {
		h.facing = d
	}
}
