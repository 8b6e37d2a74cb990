package value

// Boolean wraps a truth value. There are exactly two instances, True and
// False, shared throughout the runtime so boolean identity equals boolean
// equality.
type Boolean struct {
	value bool
}

// True and False are the two canonical Boolean instances.
var (
	True  = &Boolean{value: true}
	False = &Boolean{value: false}
)

// Bool returns the canonical Boolean instance for b.
func Bool(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

// Value returns the underlying bool.
func (b *Boolean) Value() bool { return b.value }

func (b *Boolean) Kind() Kind { return KindBoolean }

func (b *Boolean) Equals(other Value) bool {
	o, ok := other.(*Boolean)
	return ok && o.value == b.value
}

func (b *Boolean) String() string {
	if b.value {
		return "true"
	}
	return "false"
}

func (b *Boolean) Source() string { return b.String() }
