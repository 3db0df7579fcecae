package smartcalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies a calculator error into one of the four fixed
// messages the calculator reports at its boundary.
type ErrorKind int

const (
	KindInvalidExpression ErrorKind = iota
	KindInvalidIdentifier
	KindInvalidAssignment
	KindUnknownVariable
)

// Message returns the boundary text for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case KindInvalidIdentifier:
		return "Invalid identifier"
	case KindInvalidAssignment:
		return "Invalid assignment"
	case KindUnknownVariable:
		return "Unknown variable"
	}
	return "Invalid expression"
}

// CalcError is implemented by every error the calculator produces. The
// detailed message is for diagnostics; front ends print Kind().Message().
type CalcError interface {
	error
	Kind() ErrorKind
}

// Message renders err as the calculator's fixed boundary message.
func Message(err error) string {
	var c CalcError
	if errors.As(err, &c) {
		return c.Kind().Message()
	}
	return KindInvalidExpression.Message()
}

// TokenError indicates a token the tokenizer cannot make sense of, such
// as a multi-character token starting with * / or ^.
type TokenError struct {
	// Text is the offending token.
	Text string
}

func (err *TokenError) Error() string {
	return "invalid token " + strconv.Quote(err.Text)
}

func (err *TokenError) Kind() ErrorKind { return KindInvalidExpression }

// BracketError indicates unbalanced parentheses.
type BracketError struct {
	// Bracket is the parenthesis left without a partner.
	Bracket string
}

func (err *BracketError) Error() string {
	if err.Bracket == ")" {
		return "close bracket ) with no open bracket"
	}
	return "open bracket ( with no close bracket"
}

func (err *BracketError) Kind() ErrorKind { return KindInvalidExpression }

// OperandError indicates an operator that ran out of operands during
// postfix evaluation.
type OperandError struct {
	// Op is the operator that was being applied.
	Op string
}

func (err *OperandError) Error() string {
	return "operator " + strconv.Quote(err.Op) + " is missing an operand"
}

func (err *OperandError) Kind() ErrorKind { return KindInvalidExpression }

// ResultError indicates that evaluation did not reduce to a single value.
type ResultError struct {
	// N is the number of values on the operand stack.
	N int
}

func (err *ResultError) Error() string {
	return "evaluation left " + strconv.Itoa(err.N) + " values instead of one"
}

func (err *ResultError) Kind() ErrorKind { return KindInvalidExpression }

// DivisionError indicates a division by zero.
type DivisionError struct{}

func (err *DivisionError) Error() string { return "division by zero" }

func (err *DivisionError) Kind() ErrorKind { return KindInvalidExpression }

// ExponentError indicates an exponent outside the supported range. Only
// non-negative exponents fitting a machine integer are evaluated.
type ExponentError struct {
	// Exp is the decimal text of the rejected exponent.
	Exp string
}

func (err *ExponentError) Error() string {
	return "exponent " + err.Exp + " out of range"
}

func (err *ExponentError) Kind() ErrorKind { return KindInvalidExpression }

// ExprError wraps a failure from the expression pipeline that carries no
// kind of its own.
type ExprError struct {
	Err error
}

func (err *ExprError) Error() string {
	return "invalid expression: " + err.Err.Error()
}

func (err *ExprError) Unwrap() error { return err.Err }

func (err *ExprError) Kind() ErrorKind { return KindInvalidExpression }

// IdentError indicates a name that fails the identifier shape check:
// identifiers are one or more letters.
type IdentError struct {
	// Name is the rejected name.
	Name string
}

func (err *IdentError) Error() string {
	return "invalid identifier " + strconv.Quote(err.Name)
}

func (err *IdentError) Kind() ErrorKind { return KindInvalidIdentifier }

// AssignError indicates a malformed assignment: the wrong number of
// =-separated parts, or a right-hand side that is neither an integer
// literal nor a bound variable.
type AssignError struct {
	// Text is the malformed part.
	Text string
}

func (err *AssignError) Error() string {
	return "cannot assign " + strconv.Quote(err.Text)
}

func (err *AssignError) Kind() ErrorKind { return KindInvalidAssignment }

// UnknownVariableError indicates a lookup chain that reached a name with
// no binding.
type UnknownVariableError struct {
	// Name is the unbound name.
	Name string
}

func (err *UnknownVariableError) Error() string {
	return "unknown variable " + strconv.Quote(err.Name)
}

func (err *UnknownVariableError) Kind() ErrorKind { return KindUnknownVariable }

var (
	_ CalcError = (*TokenError)(nil)
	_ CalcError = (*BracketError)(nil)
	_ CalcError = (*OperandError)(nil)
	_ CalcError = (*ResultError)(nil)
	_ CalcError = (*DivisionError)(nil)
	_ CalcError = (*ExponentError)(nil)
	_ CalcError = (*ExprError)(nil)
	_ CalcError = (*IdentError)(nil)
	_ CalcError = (*AssignError)(nil)
	_ CalcError = (*UnknownVariableError)(nil)
)
