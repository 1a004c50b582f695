// Package normalize eliminates universal numeric types from lowered
// programs.
//
// The source language types some literal-only expressions with internal
// "universal" numeric types that have no runtime representation. A single
// post-order pass folds every such expression to a concretely-typed
// literal via constant evaluation, threading the expected type down from
// context: the assignment target's type, the boolean type for assumption
// expressions, or the non-universal sibling operand's type inside a binary
// expression. The pass is idempotent; running it on an already normalized
// program changes nothing.
package normalize

import (
	"basicir/internal/astx"
	"basicir/internal/eval"
	"basicir/internal/ir"
)

// Pass normalizes programs produced against one extraction context.
type Pass struct {
	ev  *eval.Evaluator
	std astx.StdTypes
}

// New creates a pass backed by the context's shared evaluator.
func New(ev *eval.Evaluator, std astx.StdTypes) *Pass {
	return &Pass{ev: ev, std: std}
}

// Program rewrites the program in place.
func (p *Pass) Program(prog *ir.Program) {
	p.stmts(prog.Stmts)
}

func (p *Pass) stmts(stmts []*ir.Stmt) {
	for _, st := range stmts {
		p.stmt(st)
	}
}

func (p *Pass) stmt(st *ir.Stmt) {
	switch d := st.Data.(type) {
	case ir.AssignData:
		d.Expr = p.convert(d.Expr, d.Dest.Type)
		st.Data = d
	case ir.AssumeData:
		d.Expr = p.convert(d.Expr, p.std.Bool())
		st.Data = d
	case ir.SplitData:
		for _, branch := range d.Branches {
			p.stmts(branch)
		}
	case ir.LoopData:
		p.stmts(d.Body)
	}
}

// convert returns an equivalent expression free of universal type hints.
// Prefers building a fresh literal over mutating shared nodes; when
// folding is impossible it recurses into children, which should not
// trigger for well-typed input.
func (p *Pass) convert(e *ir.Expr, expected astx.TypeRef) *ir.Expr {
	if e == nil {
		return nil
	}
	if p.universal(e.Type) {
		if v, err := p.ev.Eval(e); err == nil {
			return ir.NewLit(v, expected, e.Orig)
		}
	}
	switch d := e.Data.(type) {
	case ir.BinData:
		// At most one operand can be universal, so the other one
		// determines the expected type of both.
		operandExpected := d.Rhs.Type
		if p.universal(d.Rhs.Type) {
			operandExpected = d.Lhs.Type
		}
		d.Lhs = p.convert(d.Lhs, operandExpected)
		d.Rhs = p.convert(d.Rhs, operandExpected)
		e.Data = d
	case ir.UnData:
		d.Operand = p.convert(d.Operand, expected)
		e.Data = d
	}
	return e
}

func (p *Pass) universal(hint astx.TypeRef) bool {
	if hint == nil {
		return false
	}
	return hint == p.std.UniversalInt() || hint == p.std.UniversalReal()
}
