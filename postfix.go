package smartcalc

import (
	"strings"

	"github.com/ahrtr/gocontainer/stack"
)

// priority reports the binding strength of an operator. Anything outside
// the table, including brackets, ranks below every real operator.
func priority(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	case "^":
		return 3
	}
	return 0
}

// Expression is a sequence of operand and operator tokens in postfix
// order, ready for stack evaluation.
type Expression []token

// String renders the expression as space-separated postfix notation.
func (e Expression) String() string {
	var b strings.Builder
	for i, t := range e {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
	}
	return b.String()
}

// Postfix converts an infix expression to its postfix rendering.
func Postfix(line string) (string, error) {
	e, err := toPostfix(lex(line))
	if err != nil {
		return "", normalize(err)
	}
	return e.String(), nil
}

// toPostfix runs the shunting-yard conversion over the token stream.
// Operators wait on a stack until an operator of no higher priority, a
// close bracket, or the end of input flushes them to the output.
func toPostfix(l *lexer) (Expression, error) {
	var out Expression
	ops := stack.New()
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			break
		}
		switch tok.kind {
		case tokenOperand:
			out = append(out, tok)
		case tokenOp:
			for {
				top, ok := ops.Peek().(token)
				if !ok || top.kind == tokenOpen || priority(tok.text) > priority(top.text) {
					break
				}
				ops.Pop()
				out = append(out, top)
			}
			ops.Push(tok)
		case tokenOpen:
			ops.Push(tok)
		case tokenClose:
			for {
				top, ok := ops.Pop().(token)
				if !ok {
					return nil, &BracketError{Bracket: ")"}
				}
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		}
	}
	for !ops.IsEmpty() {
		top := ops.Pop().(token)
		if top.kind == tokenOpen {
			return nil, &BracketError{Bracket: "("}
		}
		out = append(out, top)
	}
	return out, nil
}
