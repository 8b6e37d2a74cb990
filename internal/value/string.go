package value

import "strings"

// String is a finite ordered sequence of Unicode code points, represented
// as a tree of sharing nodes (leaf / concat / slice / reverse) so that
// concatenation, slicing, reversal and repetition are O(1) amortized to
// construct instead of eagerly copying the whole sequence. Random access
// and Len are allowed to be O(depth)/O(n) per the core spec.
type String struct {
	node stringNode
}

type stringNode interface {
	length() int
	runeAt(i int) rune
	appendTo(dst []rune) []rune
}

// ---- leaf ----

type stringLeaf []rune

func (l stringLeaf) length() int        { return len(l) }
func (l stringLeaf) runeAt(i int) rune  { return l[i] }
func (l stringLeaf) appendTo(dst []rune) []rune {
	return append(dst, l...)
}

// ---- concat ----

type stringConcat struct {
	left, right stringNode
	len         int
}

func (c *stringConcat) length() int { return c.len }

func (c *stringConcat) runeAt(i int) rune {
	ll := c.left.length()
	if i < ll {
		return c.left.runeAt(i)
	}
	return c.right.runeAt(i - ll)
}

func (c *stringConcat) appendTo(dst []rune) []rune {
	dst = c.left.appendTo(dst)
	return c.right.appendTo(dst)
}

// ---- slice (substring) ----

type stringSlice struct {
	base  stringNode
	start int
	len   int
}

func (s *stringSlice) length() int { return s.len }

func (s *stringSlice) runeAt(i int) rune { return s.base.runeAt(s.start + i) }

func (s *stringSlice) appendTo(dst []rune) []rune {
	for i := 0; i < s.len; i++ {
		dst = append(dst, s.runeAt(i))
	}
	return dst
}

// ---- reverse ----

type stringReverse struct {
	base stringNode
}

func (r *stringReverse) length() int { return r.base.length() }

func (r *stringReverse) runeAt(i int) rune {
	return r.base.runeAt(r.base.length() - 1 - i)
}

func (r *stringReverse) appendTo(dst []rune) []rune {
	n := r.base.length()
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, r.base.runeAt(i))
	}
	return dst
}

// ---- String value ----

// NewString constructs a String value from a Go string (a leaf node).
func NewString(s string) *String {
	return &String{node: stringLeaf([]rune(s))}
}

func emptyString() *String { return &String{node: stringLeaf(nil)} }

// StringConcat concatenates a and b in O(1), sharing their nodes.
func StringConcat(a, b *String) *String {
	if a.Len() == 0 {
		return b
	}
	if b.Len() == 0 {
		return a
	}
	return &String{node: &stringConcat{left: a.node, right: b.node, len: a.Len() + b.Len()}}
}

// StringSlice returns the substring [start, start+length), or ok=false if
// out of range.
func StringSlice(s *String, start, length int) (*String, bool) {
	if start < 0 || length < 0 || start+length > s.Len() {
		return nil, false
	}
	if length == 0 {
		return emptyString(), true
	}
	return &String{node: &stringSlice{base: s.node, start: start, len: length}}, true
}

// StringReverse reverses s in O(1).
func StringReverse(s *String) *String {
	if s.Len() <= 1 {
		return s
	}
	return &String{node: &stringReverse{base: s.node}}
}

// StringRepeat repeats s n times via balanced doubling (O(log n) concats).
func StringRepeat(s *String, n int) *String {
	if n <= 0 || s.Len() == 0 {
		return emptyString()
	}
	result := emptyString()
	base := s
	for n > 0 {
		if n&1 == 1 {
			result = StringConcat(result, base)
		}
		base = StringConcat(base, base)
		n >>= 1
	}
	return result
}

// Len returns the number of code points.
func (s *String) Len() int { return s.node.length() }

// RuneAt returns the code point at index i, or ok=false if out of range.
func (s *String) RuneAt(i int) (rune, bool) {
	if i < 0 || i >= s.Len() {
		return 0, false
	}
	return s.node.runeAt(i), true
}

// Runes materializes the full code point sequence. O(n).
func (s *String) Runes() []rune {
	return s.node.appendTo(make([]rune, 0, s.Len()))
}

func (s *String) Kind() Kind { return KindString }

func (s *String) Equals(other Value) bool {
	o, ok := other.(*String)
	if !ok {
		return false
	}
	if s.Len() != o.Len() {
		return false
	}
	n := s.Len()
	for i := 0; i < n; i++ {
		a, _ := s.RuneAt(i)
		b, _ := o.RuneAt(i)
		if a != b {
			return false
		}
	}
	return true
}

// String renders the bare text, the to_string form.
func (s *String) String() string {
	return string(s.Runes())
}

// Source renders the to_source form: a double-quoted, escaped literal.
func (s *String) Source() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s.Runes() {
		switch r {
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
