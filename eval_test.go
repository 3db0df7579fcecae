package smartcalc

import (
	"errors"
	"math/big"
	"testing"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name string
		op   string
		l, r int64
		want string
	}{
		{"add", "+", 5, 3, "8"},
		{"sub", "-", 5, 8, "-3"},
		{"mul", "*", 4, 5, "20"},
		{"div", "/", 10, 3, "3"},
		{"div-trunc-neg", "/", -10, 3, "-3"},
		{"pow", "^", 2, 10, "1024"},
		{"pow-zero", "^", 7, 0, "1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			z, err := apply(c.op, big.NewInt(c.l), big.NewInt(c.r))
			if err != nil {
				t.Fatalf("%d %s %d: unexpected error %v", c.l, c.op, c.r, err)
			}
			if got := z.String(); got != c.want {
				t.Errorf("%d %s %d: want %s, got %s", c.l, c.op, c.r, c.want, got)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	cases := []struct {
		name string
		op   string
		l, r *big.Int
		as   any
	}{
		{"div-zero", "/", big.NewInt(1), big.NewInt(0), new(*DivisionError)},
		{"pow-neg", "^", big.NewInt(2), big.NewInt(-1), new(*ExponentError)},
		{"pow-huge", "^", big.NewInt(2), huge, new(*ExponentError)},
		{"bad-op", "%", big.NewInt(1), big.NewInt(1), new(*TokenError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := apply(c.op, c.l, c.r)
			if err == nil {
				t.Fatalf("%s %s %s: no error", c.l, c.op, c.r)
			}
			if !errors.As(err, c.as) {
				t.Errorf("%s %s %s: error %#v has wrong type", c.l, c.op, c.r, err)
			}
			if got := Message(err); got != "Invalid expression" {
				t.Errorf("wrong message %q", got)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	vars := NewStore()
	if err := vars.Assign("a", "5"); err != nil {
		t.Fatal(err)
	}
	if err := vars.Assign("b", "a"); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"literal", "42", "42"},
		{"var", "( a )", "5"},
		{"alias", "b + 1", "6"},
		{"mixed", "a * b + 2", "27"},
		{"huge", "123456789012345678901234567890 + 1", "123456789012345678901234567891"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := toPostfix(lex(c.src))
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			got, err := e.evaluate(vars)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("%q: want %s, got %s", c.src, c.want, got)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	vars := NewStore()
	cases := []struct {
		name string
		src  string
		as   any
	}{
		{"unknown", "x + 1", new(*UnknownVariableError)},
		{"underflow", "- 5", new(*OperandError)},
		{"leftover", "1 2", new(*ResultError)},
		{"empty", "( )", new(*ResultError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := toPostfix(lex(c.src))
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			_, err = e.evaluate(vars)
			if err == nil {
				t.Fatalf("%q evaluated without error", c.src)
			}
			if !errors.As(err, c.as) {
				t.Errorf("%q: error %#v has wrong type", c.src, err)
			}
		})
	}
}
