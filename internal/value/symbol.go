package value

import "github.com/plorth-go/plorth/internal/position"

// Symbol is a source-level identifier plus optional source position. It
// represents a word reference in code; the evaluator resolves it through
// prototype dispatch, the local dictionary, and finally the global
// dictionary.
type Symbol struct {
	Identifier string
	Pos        position.Position
	HasPos     bool
}

// NewSymbol constructs a Symbol with no position information.
func NewSymbol(id string) *Symbol {
	return &Symbol{Identifier: id}
}

// NewSymbolAt constructs a Symbol carrying a source position.
func NewSymbolAt(id string, pos position.Position) *Symbol {
	return &Symbol{Identifier: id, Pos: pos, HasPos: true}
}

func (s *Symbol) Kind() Kind { return KindSymbol }

func (s *Symbol) Equals(other Value) bool {
	o, ok := other.(*Symbol)
	return ok && o.Identifier == s.Identifier
}

func (s *Symbol) String() string { return s.Identifier }

func (s *Symbol) Source() string { return s.Identifier }
