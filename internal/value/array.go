package value

import "strings"

// Array is a finite ordered sequence of values, represented as a tree of
// sharing nodes (leaf / concat / push / slice / reverse) for the same
// reason String is: O(1) amortized construction for concatenation,
// trailing-push and reversal, with O(depth) random access.
type Array struct {
	node arrayNode
}

type arrayNode interface {
	length() int
	at(i int) Value
	appendTo(dst []Value) []Value
}

// ---- leaf ----

type arrayLeaf []Value

func (l arrayLeaf) length() int   { return len(l) }
func (l arrayLeaf) at(i int) Value { return l[i] }
func (l arrayLeaf) appendTo(dst []Value) []Value {
	return append(dst, l...)
}

// ---- concat ----

type arrayConcat struct {
	left, right arrayNode
	len         int
}

func (c *arrayConcat) length() int { return c.len }

func (c *arrayConcat) at(i int) Value {
	ll := c.left.length()
	if i < ll {
		return c.left.at(i)
	}
	return c.right.at(i - ll)
}

func (c *arrayConcat) appendTo(dst []Value) []Value {
	dst = c.left.appendTo(dst)
	return c.right.appendTo(dst)
}

// ---- push (single trailing element extension) ----

type arrayPush struct {
	base arrayNode
	elem Value
}

func (p *arrayPush) length() int { return p.base.length() + 1 }

func (p *arrayPush) at(i int) Value {
	if i == p.base.length() {
		return p.elem
	}
	return p.base.at(i)
}

func (p *arrayPush) appendTo(dst []Value) []Value {
	dst = p.base.appendTo(dst)
	return append(dst, p.elem)
}

// ---- slice ----

type arraySlice struct {
	base  arrayNode
	start int
	len   int
}

func (s *arraySlice) length() int { return s.len }

func (s *arraySlice) at(i int) Value { return s.base.at(s.start + i) }

func (s *arraySlice) appendTo(dst []Value) []Value {
	for i := 0; i < s.len; i++ {
		dst = append(dst, s.at(i))
	}
	return dst
}

// ---- reverse ----

type arrayReverse struct {
	base arrayNode
}

func (r *arrayReverse) length() int { return r.base.length() }

func (r *arrayReverse) at(i int) Value { return r.base.at(r.base.length() - 1 - i) }

func (r *arrayReverse) appendTo(dst []Value) []Value {
	n := r.base.length()
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, r.base.at(i))
	}
	return dst
}

// ---- Array value ----

// NewArray constructs an Array from a slice of values (a leaf node). The
// slice is not retained by reference beyond this call -- callers should
// not mutate it afterward.
func NewArray(elems []Value) *Array {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return &Array{node: arrayLeaf(cp)}
}

func emptyArray() *Array { return &Array{node: arrayLeaf(nil)} }

// ArrayConcat concatenates a and b in O(1).
func ArrayConcat(a, b *Array) *Array {
	if a.Len() == 0 {
		return b
	}
	if b.Len() == 0 {
		return a
	}
	return &Array{node: &arrayConcat{left: a.node, right: b.node, len: a.Len() + b.Len()}}
}

// ArrayPush appends a single trailing element in O(1).
func ArrayPush(a *Array, v Value) *Array {
	return &Array{node: &arrayPush{base: a.node, elem: v}}
}

// ArraySlice returns elements [start, start+length), or ok=false if out of
// range.
func ArraySlice(a *Array, start, length int) (*Array, bool) {
	if start < 0 || length < 0 || start+length > a.Len() {
		return nil, false
	}
	if length == 0 {
		return emptyArray(), true
	}
	return &Array{node: &arraySlice{base: a.node, start: start, len: length}}, true
}

// ArrayReverse reverses a in O(1).
func ArrayReverse(a *Array) *Array {
	if a.Len() <= 1 {
		return a
	}
	return &Array{node: &arrayReverse{base: a.node}}
}

// Len returns the element count.
func (a *Array) Len() int { return a.node.length() }

// At returns the element at index i, or ok=false if out of range.
func (a *Array) At(i int) (Value, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.node.at(i), true
}

// Values materializes the full element sequence. O(n).
func (a *Array) Values() []Value {
	return a.node.appendTo(make([]Value, 0, a.Len()))
}

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) Equals(other Value) bool {
	o, ok := other.(*Array)
	if !ok || a.Len() != o.Len() {
		return false
	}
	n := a.Len()
	for i := 0; i < n; i++ {
		av, _ := a.At(i)
		ov, _ := o.At(i)
		if !av.Equals(ov) {
			return false
		}
	}
	return true
}

func (a *Array) String() string {
	return a.renderJoined(func(v Value) string { return v.String() })
}

func (a *Array) Source() string {
	return a.renderJoined(func(v Value) string { return v.Source() })
}

func (a *Array) renderJoined(render func(Value) string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(render(v))
	}
	b.WriteByte(']')
	return b.String()
}
