package game

import (
	"errors"
	"fmt"

	"github.com/codequest-game/codequest/internal/config"
	"github.com/codequest-game/codequest/internal/core"
)

// Game runs one quest: a world, a hero, ordered challenges and a score.
// Commands mutate state through Exec; Step advances time-based effects
// only, so a run with no input is idempotent frame to frame.
type Game struct {
	level    *config.Level
	settings config.Settings

	world *World
	hero  *Hero

	status     Status
	score      int
	gems       int
	moves      int
	commands   int
	challenges []*Challenge
	current    int

	tick    uint64
	effects []floatText

	err error
}

// floatText is a short-lived score popup above a tile.
type floatText struct {
	text  string
	pos   core.Point
	ticks int
	color core.Color
}

// New builds a game from validated level data.
func New(lvl *config.Level, settings config.Settings) (*Game, error) {
	g := &Game{level: lvl, settings: settings}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset rebuilds the run from the level definition. Score, moves and
// challenge progress start over.
func (g *Game) Reset() error {
	world, hero, err := NewWorld(g.level)
	if err != nil {
		return err
	}
	g.world = world
	g.hero = hero
	g.status = StatusRunning
	g.score = 0
	g.gems = 0
	g.moves = 0
	g.commands = 0
	g.challenges = buildChallenges(g.level)
	g.current = 0
	g.tick = 0
	g.effects = nil
	g.err = nil
	return nil
}

// Err returns the terminal runtime error, if the run was aborted by one.
func (g *Game) Err() error { return g.err }

// Status returns the current run status.
func (g *Game) Status() Status { return g.status }

// World exposes the grid contents for rendering.
func (g *Game) World() *World { return g.world }

// Hero exposes the player entity for rendering.
func (g *Game) Hero() *Hero { return g.hero }

// Level returns the level definition the game was built from.
func (g *Game) Level() *config.Level { return g.level }

// CurrentChallenge returns the active objective, or nil when all are done.
func (g *Game) CurrentChallenge() *Challenge {
	if g.current >= len(g.challenges) {
		return nil
	}
	return g.challenges[g.current]
}

// Challenges returns all objectives in order.
func (g *Game) Challenges() []*Challenge { return g.challenges }

// Step advances one tick. Only cosmetic state changes here: popups age
// out, nothing about score, position or status moves.
func (g *Game) Step() {
	g.tick++
	alive := g.effects[:0]
	for _, fx := range g.effects {
		fx.ticks--
		if fx.ticks > 0 {
			alive = append(alive, fx)
		}
	}
	g.effects = alive
}

// Exec executes one console line and returns the feedback events.
// Lines typed after the run ended (other than reset) are refused.
func (g *Game) Exec(line string) []Event {
	cmd, err := ParseCommand(line)
	if err != nil {
		return parseErrorEvents(err)
	}

	if cmd.Builtin != BuiltinNone {
		return g.execBuiltin(cmd.Builtin)
	}

	if g.status.Terminal() {
		return []Event{failure(fmt.Sprintf("the quest is over (%s) - type reset to play again", g.status))}
	}

	g.commands++
	return g.execMethod(cmd)
}

func parseErrorEvents(err error) []Event {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return []Event{failure(err.Error())}
	}
	evs := []Event{failure(fmt.Sprintf("%s error: %s", pe.Kind, pe.Message))}
	if pe.Suggestion != "" {
		evs = append(evs, hint(pe.Suggestion))
	}
	return evs
}

func (g *Game) execBuiltin(b Builtin) []Event {
	switch b {
	case BuiltinHelp:
		return helpEvents()
	case BuiltinHint:
		return g.hintEvents()
	case BuiltinClear:
		return []Event{{Kind: EventClear}}
	case BuiltinReset:
		if err := g.Reset(); err != nil {
			return []Event{failure("reset failed: " + err.Error())}
		}
		return []Event{success("Game reset! Good luck, adventurer.")}
	}
	return nil
}

func helpEvents() []Event {
	return []Event{
		info("Hero methods:"),
		info("  hero.move_right()  hero.move_left()"),
		info("  hero.move_up()     hero.move_down()"),
		info("  hero.say(\"message\")"),
		info("  hero.spin()  hero.dance()  hero.jump()"),
		info("Console: help, hint, clear, reset"),
	}
}

func (g *Game) hintEvents() []Event {
	ch := g.CurrentChallenge()
	if ch == nil {
		return []Event{hint("All challenges complete - nothing left to do!")}
	}
	pos := g.hero.Pos()
	dx := ch.Target.X - pos.X
	dy := ch.Target.Y - pos.Y
	if dx == 0 && dy == 0 {
		return []Event{hint("You are standing on the target!")}
	}
	var steps []string
	if dx > 0 {
		steps = append(steps, fmt.Sprintf("%d right", dx))
	} else if dx < 0 {
		steps = append(steps, fmt.Sprintf("%d left", -dx))
	}
	if dy > 0 {
		steps = append(steps, fmt.Sprintf("%d down", dy))
	} else if dy < 0 {
		steps = append(steps, fmt.Sprintf("%d up", -dy))
	}
	msg := "Target '" + ch.Title + "': " + steps[0]
	if len(steps) == 2 {
		msg += " and " + steps[1]
	}
	return []Event{hint(msg + " from here. Watch out for obstacles.")}
}

func (g *Game) execMethod(cmd Command) []Event {
	switch cmd.Method {
	case "move_right":
		return g.move(DirRight)
	case "move_left":
		return g.move(DirLeft)
	case "move_up":
		return g.move(DirUp)
	case "move_down":
		return g.move(DirDown)
	case "say":
		if !cmd.HasArg {
			return []Event{failure("say needs a message: hero.say(\"hello\")")}
		}
		return []Event{info("Hero says: \"" + cmd.Arg + "\"")}
	case "spin":
		g.hero.Face(DirRight)
		return []Event{info("Hero spins around. Wheeee!")}
	case "dance":
		return []Event{info("Hero busts a move. Nice rhythm!")}
	case "jump":
		return []Event{info("Hero jumps on the spot. Boing!")}
	case "attack":
		return []Event{info("Hero swings at the air. Combat arrives in a later quest.")}
	case "defend":
		return []Event{info("Hero raises a shield. Nothing is attacking... yet.")}
	case "collect":
		return []Event{info("Gems are collected by walking onto them.")}
	}
	return []Event{failure("hero has no method '" + cmd.Method + "'")}
}

// move attempts one step. Blocked or out-of-bounds steps cost nothing;
// successful steps count against the move budget and trigger pickups
// and challenge checks.
func (g *Game) move(d Direction) []Event {
	g.hero.Face(d)
	dx, dy := d.Delta()
	target := g.hero.Pos().Add(dx, dy)

	if !g.world.InBounds(target) {
		return []Event{failure(fmt.Sprintf("Can't move %s - edge of the world!", d))}
	}
	if g.world.BlockedAt(target) {
		return []Event{failure(fmt.Sprintf("Can't move %s - something is in the way!", d))}
	}

	g.hero.MoveTo(target)
	g.moves++
	evs := []Event{success(fmt.Sprintf("Hero moved %s to (%d, %d)", d, target.X, target.Y))}

	if gem := g.world.GemAt(target); gem != nil {
		gem.Collect()
		g.gems++
		g.score += gem.Value()
		evs = append(evs, success(fmt.Sprintf("Picked up a %s! +%d points", gem.Kind(), gem.Value())))
		g.addFloat(fmt.Sprintf("+%d", gem.Value()), target, core.ColorBrightYellow)
	}

	if ch := g.CurrentChallenge(); ch != nil && target == ch.Target {
		ch.Completed = true
		g.current++
		g.score += ch.Reward
		evs = append(evs, success(fmt.Sprintf("Challenge complete: %s! +%d points", ch.Title, ch.Reward)))
		g.addFloat(fmt.Sprintf("+%d", ch.Reward), target, core.ColorBrightGreen)
		if g.CurrentChallenge() == nil {
			if err := g.transition(StatusWon); err != nil {
				g.err = err
				return append(evs, failure(err.Error()))
			}
			evs = append(evs, success(fmt.Sprintf("You win! Final score: %d", g.score)))
			return evs
		}
		evs = append(evs, info("Next challenge: "+g.CurrentChallenge().Title))
	}

	if g.level.MoveBudget > 0 && g.moves >= g.level.MoveBudget && g.status == StatusRunning {
		if err := g.transition(StatusLost); err != nil {
			g.err = err
			return append(evs, failure(err.Error()))
		}
		evs = append(evs, failure("Out of moves! Type reset to try again."))
	}
	return evs
}

// transition applies a status change, enforcing the transition table.
func (g *Game) transition(to Status) error {
	if !CanTransition(g.status, to) {
		return &TransitionError{From: g.status, To: to}
	}
	g.status = to
	return nil
}

func (g *Game) addFloat(text string, pos core.Point, color core.Color) {
	ticks := g.settings.Effects.FloatTicks
	if ticks <= 0 {
		return
	}
	g.effects = append(g.effects, floatText{text: text, pos: pos, ticks: ticks, color: color})
}

// Snapshot is an immutable view of run statistics, for HUDs, tests and
// the score store.
type Snapshot struct {
	Tick       uint64
	Status     Status
	Score      int
	Gems       int
	GemsTotal  int
	Moves      int
	MoveBudget int
	Commands   int
	HeroX      int
	HeroY      int
	Challenge  int
	Total      int
}

// Snapshot captures the current run statistics.
func (g *Game) Snapshot() Snapshot {
	pos := g.hero.Pos()
	return Snapshot{
		Tick:       g.tick,
		Status:     g.status,
		Score:      g.score,
		Gems:       g.gems,
		GemsTotal:  len(g.world.Gems()),
		Moves:      g.moves,
		MoveBudget: g.level.MoveBudget,
		Commands:   g.commands,
		HeroX:      pos.X,
		HeroY:      pos.Y,
		Challenge:  g.current,
		Total:      len(g.challenges),
	}
}
