package value

import "strings"

// Object is an insertion-ordered mapping from string keys to values.
// Property lookup may walk a prototype chain via the conventional
// "__proto__" property.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject constructs an Object from props, inserting the keys in the
// order they are listed in order (Go map iteration order is not used).
func NewObject(order []string, props map[string]Value) *Object {
	o := &Object{keys: make([]string, 0, len(order)), values: make(map[string]Value, len(props))}
	for _, k := range order {
		o.Set(k, props[k])
	}
	return o
}

// EmptyObject returns a fresh object with no properties.
func EmptyObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Get returns the property named key, or ok=false if absent.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set inserts or replaces the property named key. New keys are appended to
// the insertion order; existing keys keep their original position.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes the property named key, if present.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the property names in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of properties.
func (o *Object) Len() int { return len(o.keys) }

// Clone returns a shallow copy (same values, independent key order/map).
func (o *Object) Clone() *Object {
	c := EmptyObject()
	for _, k := range o.keys {
		c.Set(k, o.values[k])
	}
	return c
}

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) Equals(other Value) bool {
	oo, ok := other.(*Object)
	if !ok || o.Len() != oo.Len() {
		return false
	}
	for _, k := range o.keys {
		ov, ok := oo.Get(k)
		if !ok {
			return false
		}
		if !o.values[k].Equals(ov) {
			return false
		}
	}
	return true
}

func (o *Object) String() string {
	return o.renderJoined(func(v Value) string { return v.String() })
}

func (o *Object) Source() string {
	return o.renderJoined(func(v Value) string { return v.Source() })
}

func (o *Object) renderJoined(render func(Value) string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(NewString(k).Source())
		b.WriteString(": ")
		b.WriteString(render(o.values[k]))
	}
	b.WriteByte('}')
	return b.String()
}

// maxPrototypeDepth bounds the __proto__ walk so a cycle (which only Go
// code calling Set can build; the "!" word sets properties on a copy)
// cannot hang the interpreter. A walk that reaches the bound just stops:
// no error is raised, and a lookup then reports the key as not found.
const maxPrototypeDepth = 1024

// ErrPrototypeCycle is the message text describing a walk that reached
// maxPrototypeDepth. Nothing in this package returns or raises it.
var ErrPrototypeCycle = "prototype chain exceeded depth limit"

// OwnProto returns the value of this object's own "__proto__" property,
// if present and itself an Object; a non-object __proto__ is treated as
// absent (terminates any chain walk), matching the reference
// implementation's behavior for the open question in the core spec.
func (o *Object) OwnProto() (*Object, bool) {
	v, ok := o.Get("__proto__")
	if !ok {
		return nil, false
	}
	p, ok := v.(*Object)
	return p, ok
}

// LookupInChain checks o itself for key, then walks o's own __proto__
// chain (up to maxPrototypeDepth) looking for the first ancestor that has
// it. This is the lookup the evaluator uses for prototype-based method
// dispatch: o is the top-of-stack value's prototype object, and the chain
// walk follows "__proto__" links until it reaches an object without one.
// The per-type prototypes have no "__proto__", so for a non-object value
// the lookup covers only its type's prototype.
func LookupInChain(o *Object, key string) (Value, bool) {
	if v, ok := o.Get(key); ok {
		return v, true
	}
	var found Value
	var ok bool
	o.WalkPrototypeChain(func(ancestor *Object) bool {
		if v, has := ancestor.Get(key); has {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// WalkPrototypeChain visits this object's own proto chain (not including o
// itself), calling visit for each ancestor, stopping early if visit
// returns false. It returns false if the chain exceeds maxPrototypeDepth
// (a user-constructed __proto__ cycle).
func (o *Object) WalkPrototypeChain(visit func(*Object) bool) bool {
	cur := o
	for depth := 0; depth < maxPrototypeDepth; depth++ {
		next, ok := cur.OwnProto()
		if !ok {
			return true
		}
		if !visit(next) {
			return true
		}
		cur = next
	}
	return false
}
