package smartcalc

import (
	"math/big"

	"github.com/ahrtr/gocontainer/stack"
)

// evaluate reduces a postfix expression to its decimal value. Operand
// tokens stay strings on the stack; an operator resolves the two values
// it pops, right first, and pushes the decimal text of the result.
func (e Expression) evaluate(vars *Store) (string, error) {
	operands := stack.New()
	for _, tok := range e {
		if tok.kind != tokenOp {
			operands.Push(tok.text)
			continue
		}
		right, err := popOperand(operands, vars, tok.text)
		if err != nil {
			return "", err
		}
		left, err := popOperand(operands, vars, tok.text)
		if err != nil {
			return "", err
		}
		r, err := apply(tok.text, left, right)
		if err != nil {
			return "", err
		}
		operands.Push(r.String())
	}
	text, ok := operands.Pop().(string)
	if !ok {
		return "", &ResultError{N: 0}
	}
	if n := operands.Size(); n != 0 {
		return "", &ResultError{N: n + 1}
	}
	v, err := resolveOperand(text, vars)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// popOperand pops the next operand for op and resolves it to an integer.
func popOperand(operands stack.Interface, vars *Store, op string) (*big.Int, error) {
	text, ok := operands.Pop().(string)
	if !ok {
		return nil, &OperandError{Op: op}
	}
	return resolveOperand(text, vars)
}

// resolveOperand turns operand text into its integer value: a literal
// parses directly, a well-formed name goes through the variable chain,
// and anything else is a malformed token.
func resolveOperand(text string, vars *Store) (*big.Int, error) {
	if v, ok := new(big.Int).SetString(text, 10); ok {
		return v, nil
	}
	if !isName(text) {
		return nil, &TokenError{Text: text}
	}
	return vars.Resolve(text)
}

// apply computes left op right. Division truncates toward zero and
// rejects a zero divisor; exponentiation rejects exponents that are
// negative or too large for a machine integer.
func apply(op string, left, right *big.Int) (*big.Int, error) {
	z := new(big.Int)
	switch op {
	case "+":
		z.Add(left, right)
	case "-":
		z.Sub(left, right)
	case "*":
		z.Mul(left, right)
	case "/":
		if right.Sign() == 0 {
			return nil, &DivisionError{}
		}
		z.Quo(left, right)
	case "^":
		if right.Sign() < 0 || !right.IsInt64() {
			return nil, &ExponentError{Exp: right.String()}
		}
		z.Exp(left, right, nil)
	default:
		return nil, &TokenError{Text: op}
	}
	return z, nil
}
