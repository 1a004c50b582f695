// Package eval evaluates closed-form IR expressions to literal values.
//
// Evaluation is best-effort: anything that is not a constant expression
// fails with ErrNotConst. There is no constant propagation through
// variables; named-constant values are inlined at lowering time, so a bare
// identifier always fails.
package eval

import (
	"errors"
	"fmt"
	"sync"

	"basicir/internal/ir"
)

// ErrNotConst signals that an expression is not a constant expression.
// Callers in best-effort contexts treat it as a routine outcome; callers
// in mandatory-static contexts must escalate it.
var ErrNotConst = errors.New("not a constant expression")

// Evaluator evaluates IR expressions statically.
//
// Successful results are memoized per expression node identity: the same
// constant sub-expression may be inlined at many lowering sites, and two
// structurally equal literals may carry different type hints, so keying is
// by *ir.Expr, never by structure. The cache is mutex-guarded so one
// evaluator can be shared by concurrent lowerings of one extraction
// context.
type Evaluator struct {
	mu    sync.Mutex
	cache map[*ir.Expr]ir.Value
}

// New creates an evaluator with an empty memoization cache.
func New() *Evaluator {
	return &Evaluator{cache: make(map[*ir.Expr]ir.Value)}
}

// Eval evaluates an expression to a literal value or a range.
func (ev *Evaluator) Eval(e *ir.Expr) (ir.Value, error) {
	if e == nil {
		return nil, fmt.Errorf("eval: nil expression: %w", ErrNotConst)
	}

	ev.mu.Lock()
	v, ok := ev.cache[e]
	ev.mu.Unlock()
	if ok {
		return v, nil
	}

	v, err := ev.evalExpr(e)
	if err != nil {
		return nil, err
	}

	ev.mu.Lock()
	ev.cache[e] = v
	ev.mu.Unlock()
	return v, nil
}

func (ev *Evaluator) evalExpr(e *ir.Expr) (ir.Value, error) {
	switch d := e.Data.(type) {
	case ir.LitData:
		return d.Val, nil
	case ir.IdentData:
		return nil, fmt.Errorf("eval: identifier %s: %w", d.Var.Name, ErrNotConst)
	case ir.BinData:
		rule, ok := binRules[d.Op.Sym()]
		if !ok {
			return nil, fmt.Errorf("eval: operator %s: %w", d.Op, ErrNotConst)
		}
		lhs, err := ev.Eval(d.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := ev.Eval(d.Rhs)
		if err != nil {
			return nil, err
		}
		return rule(lhs, rhs)
	case ir.UnData:
		rule, ok := unRules[d.Op.Sym()]
		if !ok {
			return nil, fmt.Errorf("eval: operator %s: %w", d.Op, ErrNotConst)
		}
		operand, err := ev.Eval(d.Operand)
		if err != nil {
			return nil, err
		}
		return rule(operand)
	default:
		return nil, fmt.Errorf("eval: expression kind %s: %w", e.Kind, ErrNotConst)
	}
}
