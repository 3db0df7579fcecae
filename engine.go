package smartcalc

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Engine classifies input lines and dispatches them to the variable
// store or the expression pipeline. It owns the one Store for the run
// and is not safe for concurrent use.
type Engine struct {
	store *Store
}

// NewEngine creates an engine around store.
func NewEngine(store *Store) *Engine {
	return &Engine{store: store}
}

// Run processes one input line and returns the text to print. A blank
// line and a successful assignment both return the empty string. Any
// failure is a CalcError carrying one of the four boundary kinds.
func (e *Engine) Run(line string) (string, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return "", nil
	case isQuery(line):
		if !isName(line) {
			return "", &IdentError{Name: line}
		}
		v, err := e.store.Resolve(line)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	case strings.Contains(line, "="):
		return "", e.assign(line)
	default:
		return e.eval(line)
	}
}

// isQuery reports whether line looks like a variable lookup rather than
// an expression: it starts with a letter and contains no operator,
// bracket, or assignment characters.
func isQuery(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	if !unicode.In(r, unicode.Latin) {
		return false
	}
	return !strings.ContainsAny(line, Operators+"()=")
}

// assign splits line on = and binds the left side to the right.
func (e *Engine) assign(line string) error {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return &AssignError{Text: line}
	}
	name := strings.TrimSpace(parts[0])
	source := strings.TrimSpace(parts[1])
	if !isName(name) {
		return &IdentError{Name: name}
	}
	return e.store.Assign(name, source)
}

// eval runs the tokenize, convert, evaluate pipeline over line.
func (e *Engine) eval(line string) (string, error) {
	post, err := toPostfix(lex(line))
	if err != nil {
		return "", normalize(err)
	}
	v, err := post.evaluate(e.store)
	if err != nil {
		return "", normalize(err)
	}
	return v, nil
}

// normalize guarantees that a pipeline failure carries a boundary kind.
// Unknown-variable errors keep their kind; anything unkinded collapses
// to an invalid expression.
func normalize(err error) error {
	var c CalcError
	if errors.As(err, &c) {
		return c
	}
	return &ExprError{Err: err}
}
