package parser

import (
	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/value"
)

// Compile parses source (attributed to filename for diagnostics) and
// wraps the resulting token sequence into a callable compiled quote.
// Its signature matches runtime.CompilerFunc, so a runtime wires it in
// directly: rt.Compiler = parser.Compile.
func Compile(filename, source string) (value.Quote, *value.Error) {
	elems, err := New(filename, source).ParseProgram()
	if err != nil {
		return nil, err
	}
	return eval.NewCompiledQuote(elems, filename), nil
}
