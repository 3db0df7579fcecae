package smartcalc

import (
	"io"
	"strings"
)

type token struct {
	text string
	kind tokenKind
}

func (t token) String() string { return t.kind.String() + ":" + t.text }

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenOperand is an integer literal or a variable name. Operands
	// stay opaque text until evaluation resolves them.
	tokenOperand
	// tokenOp is one of the five operators.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "EOF"
	case tokenOperand:
		return "Operand"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	}
	return "None"
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// lexer scans one input line into tokens. It is single pass: each token
// is consumed from the source as next produces it.
type lexer struct {
	src *strings.Reader
	buf strings.Builder
	eof bool
}

func lex(src string) *lexer {
	return &lexer{src: strings.NewReader(src)}
}

// next scans the next token from the input. The first time the end of
// input is reached the result is an EOF token with a nil error;
// subsequent calls return io.EOF.
//
// Runs of + and - collapse into a single sign by multiplication, so
// "--" and "- -" both scan as "+". A token that starts with a sign but
// is not purely signs, such as "-2", is an operand. Any other
// multi-character token starting with an operator rune is an error.
func (l *lexer) next() (token, error) {
	if l.eof {
		return token{}, io.EOF
	}
	r, _, err := l.src.ReadRune()
	for err == nil && r == ' ' {
		r, _, err = l.src.ReadRune()
	}
	if err != nil {
		l.eof = true
		return token{kind: tokenEOF}, nil
	}
	switch r {
	case '(':
		return token{text: "(", kind: tokenOpen}, nil
	case ')':
		return token{text: ")", kind: tokenClose}, nil
	}
	l.src.UnreadRune()
	word := l.scanWord()
	if !strings.ContainsRune(Operators, rune(word[0])) {
		return token{text: word, kind: tokenOperand}, nil
	}
	if word == "*" || word == "/" || word == "^" {
		return token{text: word, kind: tokenOp}, nil
	}
	if !isSigns(word) {
		if word[0] == '+' || word[0] == '-' {
			// A signed word like "-2" is an operand; its sign is part
			// of the literal.
			return token{text: word, kind: tokenOperand}, nil
		}
		return token{}, &TokenError{Text: word}
	}
	neg := signParity(word)
	// Fold any following sign runs into this token, so that "- - 3"
	// scans the same as "--3".
	for {
		more, ok := l.peekSigns()
		if !ok {
			break
		}
		if signParity(more) {
			neg = !neg
		}
	}
	if neg {
		return token{text: "-", kind: tokenOp}, nil
	}
	return token{text: "+", kind: tokenOp}, nil
}

// scanWord reads a maximal run of runes that are not spaces and not
// parentheses. The caller has checked that at least one such rune is
// next in the source.
func (l *lexer) scanWord() string {
	l.buf.Reset()
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			break
		}
		if r == ' ' || r == '(' || r == ')' {
			l.src.UnreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	return l.buf.String()
}

// peekSigns consumes and returns the next word only if it is a run of
// signs. Otherwise the source is left where it was.
func (l *lexer) peekSigns() (string, bool) {
	pos, _ := l.src.Seek(0, io.SeekCurrent)
	r, _, err := l.src.ReadRune()
	for err == nil && r == ' ' {
		r, _, err = l.src.ReadRune()
	}
	if err != nil || (r != '+' && r != '-') {
		l.src.Seek(pos, io.SeekStart)
		return "", false
	}
	l.src.UnreadRune()
	word := l.scanWord()
	if !isSigns(word) {
		l.src.Seek(pos, io.SeekStart)
		return "", false
	}
	return word, true
}

// isSigns reports whether word consists entirely of + and - runes.
func isSigns(word string) bool {
	for _, r := range word {
		if r != '+' && r != '-' {
			return false
		}
	}
	return true
}

// signParity reports whether word holds an odd number of minus signs,
// in which case the collapsed sign is negative.
func signParity(word string) bool {
	return strings.Count(word, "-")%2 == 1
}
