package value

// Word is a pair of (symbol, quote), the binding installed by a `:name
// body ;` declaration or by a native built-in registration.
type Word struct {
	Sym   *Symbol
	Quote Quote
}

// NewWord pairs sym with quote.
func NewWord(sym *Symbol, quote Quote) *Word {
	return &Word{Sym: sym, Quote: quote}
}

// Identifier implements dictionary.Entry: the dictionary indexes words by
// their symbol's identifier.
func (w *Word) Identifier() string { return w.Sym.Identifier }

func (w *Word) Kind() Kind { return KindWord }

func (w *Word) Equals(other Value) bool {
	o, ok := other.(*Word)
	if !ok {
		return false
	}
	return o.Sym.Equals(w.Sym) && o.Quote.Equals(w.Quote)
}

func (w *Word) String() string {
	return ":" + w.Sym.Identifier + " " + w.Quote.String() + " ;"
}

func (w *Word) Source() string {
	return ": " + w.Sym.Identifier + " " + w.Quote.Source() + " ;"
}
