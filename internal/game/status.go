package game

import "fmt"

// Status is the lifecycle state of a quest run.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the run.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// transitions is the exhaustive table of legal status changes.
// Runs only move forward: once won or lost, the only way back to
// running is an explicit Reset, which rebuilds the state machine.
var transitions = map[Status]map[Status]bool{
	StatusRunning: {StatusWon: true, StatusLost: true},
	StatusWon:     {},
	StatusLost:    {},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// TransitionError reports an illegal status change. It signals corrupted
// game state and terminates the current run.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("game: illegal status transition %s -> %s", e.From, e.To)
}
