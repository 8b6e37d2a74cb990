package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/value"
)

// Parser turns source text into an ordered sequence of token values.
type Parser struct {
	r *reader
}

// New constructs a Parser over source, whose positions are reported
// relative to filename (empty for REPL/eval input).
func New(filename, source string) *Parser {
	return &Parser{r: newReader(filename, source)}
}

// ParseProgram parses the whole input as `value*` and returns the
// resulting token sequence.
func (p *Parser) ParseProgram() ([]value.Value, *value.Error) {
	var out []value.Value
	for {
		p.skipIgnorable()
		if p.r.eof() {
			return out, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func (p *Parser) errorf(format string, args ...interface{}) *value.Error {
	return value.NewErrorAt(value.ErrSyntax, fmt.Sprintf(format, args...), p.r.pos())
}

// skipIgnorable skips whitespace runs and '#' line comments.
func (p *Parser) skipIgnorable() {
	for {
		ch, ok := p.r.peek()
		if !ok {
			return
		}
		if unicode.IsSpace(ch) {
			p.r.advance()
			continue
		}
		if ch == '#' {
			for {
				c, ok := p.r.peek()
				if !ok || c == '\n' || c == '\r' {
					break
				}
				p.r.advance()
			}
			continue
		}
		return
	}
}

func (p *Parser) parseValue() (value.Value, *value.Error) {
	p.skipIgnorable()
	ch, ok := p.r.peek()
	if !ok {
		return nil, p.errorf("Unexpected end of input; Missing value")
	}
	switch {
	case ch == '"' || ch == '\'':
		return p.parseString()
	case ch == '(':
		return p.parseQuote()
	case ch == '[':
		return p.parseArray()
	case ch == '{':
		return p.parseObject()
	case ch == ':':
		return p.parseWordDef()
	case isPunctuation(ch):
		return nil, p.errorf("Unexpected '%c'; Missing value", ch)
	default:
		return p.parseSymbol()
	}
}

// parseSequence parses `value*` up to (but not consuming) a rune for
// which stop returns true, erroring on unexpected end of input.
func (p *Parser) parseSequence(closeName string, stop func(rune) bool) ([]value.Value, *value.Error) {
	var out []value.Value
	for {
		p.skipIgnorable()
		ch, ok := p.r.peek()
		if !ok {
			return nil, p.errorf("Unterminated %s; Missing %s", closeName, closeName)
		}
		if stop(ch) {
			return out, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func (p *Parser) parseQuote() (value.Value, *value.Error) {
	p.r.advance() // '('
	elems, err := p.parseSequence("quote", func(ch rune) bool { return ch == ')' })
	if err != nil {
		return nil, err
	}
	p.r.advance() // ')'
	return eval.NewCompiledQuote(elems, p.r.filename), nil
}

func (p *Parser) parseWordDef() (value.Value, *value.Error) {
	start := p.r.pos()
	p.r.advance() // ':'
	p.skipIgnorable()
	ch, ok := p.r.peek()
	if !ok || isPunctuation(ch) {
		return nil, p.errorf("Missing word name")
	}
	name, _ := p.readWordChars()
	sym := value.NewSymbolAt(name, start)

	elems, err := p.parseSequence("word declaration", func(ch rune) bool { return ch == ';' })
	if err != nil {
		return nil, err
	}
	p.r.advance() // ';'
	// A body that is a single quote literal, as in `: sq ( dup * ) ;`,
	// becomes the word's quote itself, so calling the word runs it.
	if len(elems) == 1 {
		if q, ok := elems[0].(*eval.CompiledQuote); ok {
			return value.NewWord(sym, q), nil
		}
	}
	quote := eval.NewCompiledQuote(elems, p.r.filename)
	return value.NewWord(sym, quote), nil
}

func (p *Parser) parseArray() (value.Value, *value.Error) {
	p.r.advance() // '['
	p.skipIgnorable()
	if ch, ok := p.r.peek(); ok && ch == ']' {
		p.r.advance()
		return value.NewArray(nil), nil
	}
	var elems []value.Value
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		p.skipIgnorable()
		ch, ok := p.r.peek()
		if !ok {
			return nil, p.errorf("Unterminated array; Missing ']'")
		}
		switch ch {
		case ',':
			p.r.advance()
			p.skipIgnorable()
			if ch2, ok := p.r.peek(); ok && ch2 == ']' {
				return nil, p.errorf("Unexpected ']'; Missing value")
			}
		case ']':
			p.r.advance()
			return value.NewArray(elems), nil
		default:
			return nil, p.errorf("Missing ',' or ']' in array")
		}
	}
}

func (p *Parser) parseObject() (value.Value, *value.Error) {
	p.r.advance() // '{'
	p.skipIgnorable()
	if ch, ok := p.r.peek(); ok && ch == '}' {
		p.r.advance()
		return value.EmptyObject(), nil
	}
	obj := value.EmptyObject()
	for {
		p.skipIgnorable()
		ch, ok := p.r.peek()
		if !ok || (ch != '"' && ch != '\'') {
			return nil, p.errorf("Missing property key")
		}
		keyVal, err := p.parseString()
		if err != nil {
			return nil, err
		}
		key := keyVal.(*value.String).String()

		p.skipIgnorable()
		ch, ok = p.r.peek()
		if !ok || ch != ':' {
			return nil, p.errorf("Missing ':' after property key")
		}
		p.r.advance()

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)

		p.skipIgnorable()
		ch, ok = p.r.peek()
		if !ok {
			return nil, p.errorf("Unterminated object; Missing '}'")
		}
		switch ch {
		case ',':
			p.r.advance()
			p.skipIgnorable()
			if ch2, ok := p.r.peek(); ok && ch2 == '}' {
				return nil, p.errorf("Unexpected '}'; Missing property key")
			}
		case '}':
			p.r.advance()
			return obj, nil
		default:
			return nil, p.errorf("Missing ',' or '}' in object")
		}
	}
}

func (p *Parser) parseSymbol() (value.Value, *value.Error) {
	start := p.r.pos()
	text, ok := p.readWordChars()
	if !ok {
		return nil, p.errorf("Unexpected end of input; Missing value")
	}
	return value.NewSymbolAt(text, start), nil
}

func (p *Parser) readWordChars() (string, bool) {
	var b strings.Builder
	for {
		ch, ok := p.r.peek()
		if !ok || !isWordChar(ch) {
			break
		}
		p.r.advance()
		b.WriteRune(ch)
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

func (p *Parser) parseString() (value.Value, *value.Error) {
	quoteCh, _ := p.r.advance()
	var b strings.Builder
	for {
		ch, ok := p.r.advance()
		if !ok {
			return nil, p.errorf("Unterminated string; Missing '%c'", quoteCh)
		}
		if ch == quoteCh {
			return value.NewString(b.String()), nil
		}
		if ch != '\\' {
			b.WriteRune(ch)
			continue
		}
		esc, ok := p.r.advance()
		if !ok {
			return nil, p.errorf("Unterminated string; Missing '%c'", quoteCh)
		}
		switch esc {
		case 'b':
			b.WriteRune('\b')
		case 't':
			b.WriteRune('\t')
		case 'n':
			b.WriteRune('\n')
		case 'f':
			b.WriteRune('\f')
		case 'r':
			b.WriteRune('\r')
		case '"':
			b.WriteRune('"')
		case '\'':
			b.WriteRune('\'')
		case '\\':
			b.WriteRune('\\')
		case '/':
			b.WriteRune('/')
		case 'u':
			r, err := p.readUnicodeEscape()
			if err != nil {
				return nil, err
			}
			b.WriteRune(r)
		default:
			return nil, p.errorf("Illegal escape sequence '\\%c'", esc)
		}
	}
}

func (p *Parser) readUnicodeEscape() (rune, *value.Error) {
	var code rune
	for i := 0; i < 4; i++ {
		ch, ok := p.r.advance()
		if !ok {
			return 0, p.errorf("Unterminated escape sequence; Missing hex digit")
		}
		digit, ok := hexDigit(ch)
		if !ok {
			return 0, p.errorf("Illegal escape sequence; Expected hex digit, got '%c'", ch)
		}
		code = code*16 + rune(digit)
	}
	if !unicode.IsPrint(code) && !validCodePoint(code) {
		return 0, p.errorf("Illegal escape sequence; Invalid code point")
	}
	return code, nil
}

func validCodePoint(r rune) bool {
	return r >= 0 && r <= unicode.MaxRune
}

func hexDigit(ch rune) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10, true
	default:
		return 0, false
	}
}
