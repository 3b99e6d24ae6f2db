package game

// EventKind selects how the console renders an event line.
type EventKind int

const (
	EventInfo EventKind = iota
	EventSuccess
	EventError
	EventHint
	// EventClear tells the console to drop its scrollback.
	EventClear
)

// Event is one line of feedback produced by executing a command.
type Event struct {
	Kind EventKind
	Text string
}

func info(text string) Event    { return Event{Kind: EventInfo, Text: text} }
func success(text string) Event { return Event{Kind: EventSuccess, Text: text} }
func failure(text string) Event { return Event{Kind: EventError, Text: text} }
func hint(text string) Event    { return Event{Kind: EventHint, Text: text} }
