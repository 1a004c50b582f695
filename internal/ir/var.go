package ir

import "basicir/internal/astx"

// Variable is a program variable. Declared variables are created once per
// declaration site and shared by identity across every reference;
// synthetic temporaries are created fresh per use under a collision-free
// name.
type Variable struct {
	Name string
	Type astx.TypeRef
	// Purpose tags compiler-introduced variables; nil for source-declared
	// variables.
	Purpose Purpose
	Orig    astx.Node
}

func (v *Variable) String() string { return v.Name }

// Purpose identifies why a variable or assumption was synthesized by the
// lowering engine. Downstream checkers use it to suppress or specialize
// reports; the core never reads it back.
type Purpose interface {
	purpose()
	String() string
}

// SyntheticVariable marks a compiler-introduced temporary. Checkers must
// never report against variables carrying it.
type SyntheticVariable struct{}

func (SyntheticVariable) purpose() {}

func (SyntheticVariable) String() string { return "synthetic" }

// DerefCheck marks an assumption introduced as a null-check obligation for
// the given dereferenced prefix.
type DerefCheck struct {
	Prefix *Expr
}

func (DerefCheck) purpose() {}

func (DerefCheck) String() string { return "deref-check" }
