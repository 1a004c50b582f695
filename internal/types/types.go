// Package types holds the abstract value types handed to downstream
// analyses and the typer composition boundary mapping source type
// references onto them.
package types

import "fmt"

// Type is an abstract-domain type.
type Type interface {
	isType()
	String() string
}

// Boolean is the abstract boolean type.
type Boolean struct{}

func (Boolean) isType() {}

func (Boolean) String() string { return "Boolean" }

// IntRange is an inclusive machine integer range.
type IntRange struct {
	First int64
	Last  int64
}

func (IntRange) isType() {}

func (t IntRange) String() string { return fmt.Sprintf("[%d..%d]", t.First, t.Last) }

// Enum is an enumeration over named literals, in position order.
type Enum struct {
	Literals []string
}

func (Enum) isType() {}

func (t Enum) String() string { return fmt.Sprintf("Enum%v", t.Literals) }

// Pointer is an access type over an abstract element type.
type Pointer struct {
	Elem Type
}

func (Pointer) isType() {}

func (t Pointer) String() string { return fmt.Sprintf("Pointer(%s)", t.Elem) }
