package lower

import (
	"fmt"

	"basicir/internal/astx"
)

// UnsupportedConstructError rejects a subprogram containing an AST node or
// operator the engine has no lowering rule for. There is no partial
// lowering: the whole subprogram is discarded.
type UnsupportedConstructError struct {
	Node astx.Node
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("lower: cannot transform %q (%s)", e.Node.Text(), e.Node.Kind())
}

// StaticityError rejects a subprogram whose case choice failed constant
// evaluation. The source language guarantees case choices are static, so
// this is either a source rule violation or an evaluator gap; both are
// unrecoverable for the subprogram.
type StaticityError struct {
	Node astx.Node
	Err  error
}

func (e *StaticityError) Error() string {
	return fmt.Sprintf("lower: case choice %q must be static: %v", e.Node.Text(), e.Err)
}

func (e *StaticityError) Unwrap() error { return e.Err }

func unsupported(n astx.Node) error {
	return &UnsupportedConstructError{Node: n}
}
