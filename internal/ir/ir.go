// Package ir provides the Basic intermediate representation.
//
// The IR is the reduced instruction set an abstract-interpretation engine
// consumes: sequencing, nondeterministic split, assumption, havoc/read,
// use, goto/label. Every control construct of the source language is
// compiled down to these forms by the lowering engine.
//
// Statements and expressions follow the Kind + Data payload layout: Kind
// discriminates the variant and Data carries the variant-specific fields.
package ir

import "basicir/internal/astx"

// Program is the IR of one subprogram: an ordered list of statements
// executed one after the other.
type Program struct {
	Stmts []*Stmt
	// Orig links back to the subprogram body the program was lowered from.
	Orig astx.Node
}
