package diag

import "fmt"

// Code is a compact, stable identifier for a diagnostic category.
type Code uint16

const (
	// UnknownCode is the fallback for uncategorized failures.
	UnknownCode Code = 0

	// UnsupportedConstruct: the lowering engine met an AST node or
	// operator it has no rule for. Fatal for the subprogram.
	UnsupportedConstruct Code = 1001
	// StaticityViolation: constant evaluation failed in a context the
	// source language guarantees to be static (case labels). Fatal for
	// the subprogram.
	StaticityViolation Code = 1002
	// NotConstant: a best-effort constant evaluation failed. Informational
	// only; lowering proceeds.
	NotConstant Code = 1003
)

func (c Code) String() string {
	switch c {
	case UnsupportedConstruct:
		return "E1001"
	case StaticityViolation:
		return "E1002"
	case NotConstant:
		return "I1003"
	default:
		return fmt.Sprintf("X%04d", uint16(c))
	}
}
