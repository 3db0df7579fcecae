// Package smartcalc implements an interactive arbitrary-precision integer
// calculator.
//
// Input lines are classified as variable queries, assignments, or
// expressions. Expressions support the operators + - * / ^ with the usual
// precedence, parentheses, and chained unary signs, so "5 - - 3" is the
// same as "5 + 3". Variables hold integers of any size and may alias other
// variables; an alias chain is followed at lookup time.
//
// The Engine type ties the pieces together and is what the command-line
// front end talks to.
package smartcalc
