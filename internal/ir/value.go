package ir

import "fmt"

// Value is the payload of a literal expression and the result domain of
// constant evaluation.
type Value interface {
	value()
	String() string
}

// Int is an integer literal value.
type Int int64

func (Int) value() {}

func (v Int) String() string { return fmt.Sprintf("%d", int64(v)) }

// Sym is a symbolic literal value: the boolean literals, the null access
// value, or an enumeration literal name.
type Sym string

func (Sym) value() {}

func (v Sym) String() string { return string(v) }

// Range is an inclusive value range. It is produced transiently by the
// constant evaluator for case-label bounds; it never appears in lowered
// programs.
type Range struct {
	First Value
	Last  Value
}

func (Range) value() {}

func (v Range) String() string { return fmt.Sprintf("%s..%s", v.First, v.Last) }

// Well-known symbolic literals.
const (
	True  Sym = "True"
	False Sym = "False"
	Null  Sym = "Null"
)

// FromBool returns the symbolic literal for a Go boolean.
func FromBool(b bool) Sym {
	if b {
		return True
	}
	return False
}

// ToBool reports whether a value is the true literal.
func ToBool(v Value) bool {
	return v == True
}
