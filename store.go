package smartcalc

import (
	"math/big"
	"sort"
	"unicode"
)

// Store maps variable names to either a canonical integer literal or the
// name of another variable. An alias chain is followed at lookup time,
// so "b = a" tracks later reassignments of a. A Store is built once at
// startup and owned by a single Engine; it is not safe for concurrent
// use.
type Store struct {
	vars map[string]string
}

// NewStore creates an empty variable store.
func NewStore() *Store {
	return &Store{vars: make(map[string]string)}
}

// Assign binds name to source, overwriting any previous binding. The
// name must be a well-formed identifier and source must be an integer
// literal or an already-bound variable.
func (s *Store) Assign(name, source string) error {
	if !isName(name) {
		return &IdentError{Name: name}
	}
	if !isLiteral(source) {
		if _, bound := s.vars[source]; !bound {
			return &AssignError{Text: source}
		}
	}
	s.vars[name] = source
	return nil
}

// Resolve follows the alias chain from name until it reaches a literal
// and returns that value. An unbound link fails, as does a chain that
// revisits a name: a cycle can never reach a literal, so it reports the
// same way.
func (s *Store) Resolve(name string) (*big.Int, error) {
	seen := make(map[string]bool)
	for {
		if seen[name] {
			return nil, &UnknownVariableError{Name: name}
		}
		seen[name] = true
		source, ok := s.vars[name]
		if !ok {
			return nil, &UnknownVariableError{Name: name}
		}
		if v, ok := new(big.Int).SetString(source, 10); ok {
			return v, nil
		}
		name = source
	}
}

// Bound reports whether name currently has a binding.
func (s *Store) Bound(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Names returns the bound variable names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Delete removes the binding for name, if any.
func (s *Store) Delete(name string) {
	delete(s.vars, name)
}

// Clear removes all bindings.
func (s *Store) Clear() {
	s.vars = make(map[string]string)
}

// isName reports whether text is a well-formed variable name: one or
// more letters and nothing else.
func isName(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.In(r, unicode.Latin) {
			return false
		}
	}
	return true
}

// isLiteral reports whether text parses as a base-10 integer.
func isLiteral(text string) bool {
	_, ok := new(big.Int).SetString(text, 10)
	return ok
}
