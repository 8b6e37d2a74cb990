package value

import (
	"math"
	"strconv"
	"strings"
)

// Number is either a 64-bit signed integer or an IEEE-754 double, per the
// promotion rule in the core spec: arithmetic promotes to real when either
// operand is real, or when an integer operation would overflow int64.
type Number struct {
	isReal bool
	i      int64
	r      float64
}

// NewInt returns an integer Number.
func NewInt(i int64) *Number { return &Number{i: i} }

// NewReal returns a real Number.
func NewReal(r float64) *Number { return &Number{isReal: true, r: r} }

// ParseNumber parses text as a Plorth number literal. Literals containing
// '.', 'e' or 'E' parse as real; "nan", "inf" and "-inf" (lowercase only)
// are recognized real literals. Returns ok=false if text is not a valid
// number.
func ParseNumber(text string) (*Number, bool) {
	switch text {
	case "nan":
		return NewReal(math.NaN()), true
	case "inf":
		return NewReal(math.Inf(1)), true
	case "-inf":
		return NewReal(math.Inf(-1)), true
	}
	if text == "" {
		return nil, false
	}
	if strings.ContainsAny(text, ".eE") {
		r, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, false
		}
		return NewReal(r), true
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Might still be a real with an exponent-less but out-of-int64 value.
		if r, ferr := strconv.ParseFloat(text, 64); ferr == nil {
			return NewReal(r), true
		}
		return nil, false
	}
	return NewInt(i), true
}

// IsReal reports whether this number is a real (as opposed to integer).
func (n *Number) IsReal() bool { return n.isReal }

// Int64 returns the number truncated toward zero to an int64. Real-to-int
// coercion truncates, per spec.
func (n *Number) Int64() int64 {
	if n.isReal {
		return int64(n.r)
	}
	return n.i
}

// Float64 returns the number widened to float64.
func (n *Number) Float64() float64 {
	if n.isReal {
		return n.r
	}
	return float64(n.i)
}

func (n *Number) Kind() Kind { return KindNumber }

func (n *Number) Equals(other Value) bool {
	o, ok := other.(*Number)
	if !ok {
		return false
	}
	if !n.isReal && !o.isReal {
		return n.i == o.i
	}
	return n.Float64() == o.Float64()
}

func (n *Number) String() string {
	return n.Source()
}

// Source renders using Go's shortest-round-trip %g-equivalent formatting
// for reals (strconv.FormatFloat with precision -1), and base-10 for ints.
func (n *Number) Source() string {
	if !n.isReal {
		return strconv.FormatInt(n.i, 10)
	}
	switch {
	case math.IsNaN(n.r):
		return "nan"
	case math.IsInf(n.r, 1):
		return "inf"
	case math.IsInf(n.r, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n.r, 'g', -1, 64)
}

// addOverflows reports whether a+b overflows int64.
func addOverflows(a, b int64) bool {
	sum := a + b
	return ((a ^ sum) & (b ^ sum)) < 0
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	p := a * b
	return p/b != a
}

// Add implements '+' promotion: int+int stays int unless it overflows, any
// real operand promotes the result to real.
func Add(a, b *Number) *Number {
	if !a.isReal && !b.isReal && !addOverflows(a.i, b.i) {
		return NewInt(a.i + b.i)
	}
	return NewReal(a.Float64() + b.Float64())
}

// Sub implements '-' with the same promotion rule as Add.
func Sub(a, b *Number) *Number {
	if !a.isReal && !b.isReal && !addOverflows(a.i, -b.i) {
		return NewInt(a.i - b.i)
	}
	return NewReal(a.Float64() - b.Float64())
}

// Mul implements '*' with the same promotion rule as Add.
func Mul(a, b *Number) *Number {
	if !a.isReal && !b.isReal && !mulOverflows(a.i, b.i) {
		return NewInt(a.i * b.i)
	}
	return NewReal(a.Float64() * b.Float64())
}

// Div implements '/'. Division always promotes to real, matching the
// reference implementation's floating-point division semantics; integer
// division is exposed separately by the library layer where needed.
func Div(a, b *Number) *Number {
	return NewReal(a.Float64() / b.Float64())
}

// Compare returns -1, 0 or 1 comparing a to b numerically, promoting to
// real for comparison whenever either operand is real.
func Compare(a, b *Number) int {
	if !a.isReal && !b.isReal {
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		default:
			return 0
		}
	}
	af, bf := a.Float64(), b.Float64()
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}
