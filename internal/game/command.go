package game

import (
	"regexp"
	"strings"
)

// ParseErrorKind classifies a rejected console line so the UI can show
// a teaching-oriented message instead of a bare failure.
type ParseErrorKind int

const (
	// ParseErrSyntax covers malformed calls: missing parentheses,
	// unbalanced quotes, stray arguments.
	ParseErrSyntax ParseErrorKind = iota
	// ParseErrName covers lines that do not reference the hero object.
	ParseErrName
	// ParseErrUnknownMethod covers calls to methods the hero does not have.
	ParseErrUnknownMethod
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrSyntax:
		return "syntax"
	case ParseErrName:
		return "name"
	case ParseErrUnknownMethod:
		return "unknown method"
	default:
		return "parse"
	}
}

// ParseError describes why a console line was rejected, with an optional
// correction suggestion.
type ParseError struct {
	Kind       ParseErrorKind
	Input      string
	Message    string
	Suggestion string
}

func (e *ParseError) Error() string { return e.Message }

// Builtin is a console command that talks to the game shell rather than
// the hero.
type Builtin int

const (
	BuiltinNone Builtin = iota
	BuiltinHelp
	BuiltinHint
	BuiltinClear
	BuiltinReset
)

// Command is a parsed console line: either a builtin or a hero method
// call with an optional string argument.
type Command struct {
	Builtin Builtin
	Method  string
	Arg     string
	HasArg  bool
}

var heroCallRe = regexp.MustCompile(`^hero\.(\w+)\((.*)\)$`)

// heroMethods is the set of methods the hero responds to.
var heroMethods = map[string]bool{
	"move_right": true,
	"move_left":  true,
	"move_up":    true,
	"move_down":  true,
	"say":        true,
	"spin":       true,
	"dance":      true,
	"jump":       true,
	"attack":     true,
	"defend":     true,
	"collect":    true,
}

// methodSuggestions maps frequent misspellings to the intended method.
var methodSuggestions = map[string]string{
	"move_rigth": "move_right",
	"move_right": "move_right",
	"mvoe_right": "move_right",
	"moveright":  "move_right",
	"move_lef":   "move_left",
	"move_letf":  "move_left",
	"moveleft":   "move_left",
	"move_u":     "move_up",
	"moveup":     "move_up",
	"move_dow":   "move_down",
	"move_donw":  "move_down",
	"movedown":   "move_down",
	"sya":        "say",
	"spinn":      "spin",
	"danse":      "dance",
	"jmp":        "jump",
	"atack":      "attack",
	"colect":     "collect",
}

// ParseCommand parses one console line. Builtins are matched first,
// then hero method calls. Errors are *ParseError with a kind the UI
// can translate into an explanation.
func ParseCommand(line string) (Command, error) {
	input := strings.TrimSpace(line)
	if input == "" {
		return Command{}, &ParseError{
			Kind:    ParseErrSyntax,
			Input:   input,
			Message: "empty command",
		}
	}

	switch strings.ToLower(input) {
	case "help":
		return Command{Builtin: BuiltinHelp}, nil
	case "hint":
		return Command{Builtin: BuiltinHint}, nil
	case "clear":
		return Command{Builtin: BuiltinClear}, nil
	case "reset":
		return Command{Builtin: BuiltinReset}, nil
	}

	if !strings.HasPrefix(input, "hero.") {
		name := input
		if i := strings.IndexAny(name, ".( "); i >= 0 {
			name = name[:i]
		}
		return Command{}, &ParseError{
			Kind:       ParseErrName,
			Input:      input,
			Message:    "name '" + name + "' is not defined",
			Suggestion: "commands start with 'hero.' - try hero.move_right()",
		}
	}

	m := heroCallRe.FindStringSubmatch(input)
	if m == nil {
		return Command{}, &ParseError{
			Kind:       ParseErrSyntax,
			Input:      input,
			Message:    "invalid syntax",
			Suggestion: "did you forget the parentheses? e.g. hero.move_right()",
		}
	}

	method, rawArg := m[1], strings.TrimSpace(m[2])
	if !heroMethods[method] {
		pe := &ParseError{
			Kind:    ParseErrUnknownMethod,
			Input:   input,
			Message: "hero has no method '" + method + "'",
		}
		if want, ok := methodSuggestions[method]; ok {
			pe.Suggestion = "did you mean hero." + want + "()?"
		} else {
			pe.Suggestion = "type help to list hero methods"
		}
		return Command{}, pe
	}

	cmd := Command{Method: method}
	if rawArg != "" {
		arg, ok := unquote(rawArg)
		if !ok {
			return Command{}, &ParseError{
				Kind:       ParseErrSyntax,
				Input:      input,
				Message:    "invalid argument " + rawArg,
				Suggestion: "strings need quotes, e.g. hero.say(\"hello\")",
			}
		}
		cmd.Arg = arg
		cmd.HasArg = true
	}
	return cmd, nil
}

// unquote strips matching single or double quotes from a string literal.
func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	first, last := s[0], s[len(s)-1]
	if first != last || (first != '"' && first != '\'') {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if strings.ContainsRune(inner, rune(first)) {
		return "", false
	}
	return inner, true
}
