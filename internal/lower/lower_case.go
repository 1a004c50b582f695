package lower

import (
	"basicir/internal/astx"
	"basicir/internal/ir"
)

// lowerCase lowers multi-way dispatch:
//
//	case x is
//	  when CST1       => S1;
//	  when CST2 | CST3 => S2;
//	  when RANGE      => S3;
//	  when others     => S4;
//	end case;
//
// becomes
//
//	split:
//	  assume(x == CST1)
//	  S1
//	|:
//	  assume(x == CST2 || x == CST3)
//	  S2
//	|:
//	  assume(x >= GetFirst(RANGE) && x <= GetLast(RANGE))
//	  S3
//	|:
//	  assume(!(x == CST1 || (x == CST2 || x == CST3) || ...))
//	  S4
//
// The source language guarantees case alternatives are exhaustive and
// pairwise disjoint, which is what makes a flat N-branch split (rather
// than an if-elsif chain) sound. The engine relies on that guarantee, it
// does not verify it. Choices are statically known, so evaluating them
// must succeed; a failure is a StaticityError.
func (l *lowerer) lowerCase(s astx.CaseStmt) ([]*ir.Stmt, error) {
	casePre, caseExpr, err := l.lowerExpr(s.Selector())
	if err != nil {
		return nil, err
	}

	type alt struct {
		guard *ir.Expr
		stmts []*ir.Stmt
	}
	var alts []alt
	var othersStmts [][]*ir.Stmt
	var guards []*ir.Expr

	for _, a := range s.Alternatives() {
		stmts, err := l.lowerStmts(a.Stmts())
		if err != nil {
			return nil, err
		}
		if isOthersAlt(a) {
			othersStmts = append(othersStmts, stmts)
			continue
		}
		guard, err := l.genCaseCondition(caseExpr, a.Choices())
		if err != nil {
			return nil, err
		}
		guards = append(guards, guard)
		alts = append(alts, alt{guard: guard, stmts: stmts})
	}

	branches := make([][]*ir.Stmt, 0, len(alts)+len(othersStmts))
	for _, a := range alts {
		branches = append(branches, append([]*ir.Stmt{ir.NewAssume(a.guard, nil, nil)}, a.stmts...))
	}

	// The others guard is the negated disjunction of every explicit
	// guard. A case consisting of others alone matches unconditionally.
	for _, stmts := range othersStmts {
		var othersGuard *ir.Expr
		if len(guards) == 0 {
			othersGuard = ir.NewLit(ir.True, l.boolType(), nil)
		} else {
			othersGuard = ir.NewUn(ir.Not, l.foldOr(guards), l.boolType(), nil)
		}
		branches = append(branches, append([]*ir.Stmt{ir.NewAssume(othersGuard, nil, nil)}, stmts...))
	}

	// A degenerate case with a single branch needs no split; splitting
	// would break the branch-count invariant.
	if len(branches) == 1 {
		return append(casePre, branches[0]...), nil
	}

	return append(casePre, ir.NewSplit(branches, s)), nil
}

// genCaseCondition builds the guard for entering one case alternative:
// an equality test per scalar choice, a conjunctive bound test per range
// choice, left-folded into a disjunction when the alternative lists
// several choices. For example, choices [1, 2, 10..20] on selector X give
//
//	X == 1 || X == 2 || (X >= 10 && X <= 20)
func (l *lowerer) genCaseCondition(selector *ir.Expr, choices []astx.Expr) (*ir.Expr, error) {
	conds := make([]*ir.Expr, 0, len(choices))
	for _, choice := range choices {
		// Choice expressions are closed-form; their lowering produces no
		// pre-statements worth keeping.
		_, choiceExpr, err := l.lowerExpr(choice)
		if err != nil {
			return nil, err
		}
		val, err := l.ctx.ev.Eval(choiceExpr)
		if err != nil {
			return nil, &StaticityError{Node: choice, Err: err}
		}
		cond, err := l.genSingleCondition(selector, choice, val)
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)
	}
	return l.foldOr(conds), nil
}

func (l *lowerer) genSingleCondition(selector *ir.Expr, choice astx.Expr, val ir.Value) (*ir.Expr, error) {
	switch v := val.(type) {
	case ir.Int:
		return ir.NewBin(selector, ir.Eq, l.intLit(v), l.boolType(), nil), nil
	case ir.Range:
		first, okf := v.First.(ir.Int)
		last, okl := v.Last.(ir.Int)
		if !okf || !okl {
			return nil, unsupported(choice)
		}
		lo := ir.NewBin(selector, ir.Ge, l.intLit(first), l.boolType(), nil)
		hi := ir.NewBin(selector, ir.Le, l.intLit(last), l.boolType(), nil)
		return ir.NewBin(lo, ir.And, hi, l.boolType(), nil), nil
	default:
		return nil, unsupported(choice)
	}
}

// foldOr left-folds conditions into a disjunction.
func (l *lowerer) foldOr(conds []*ir.Expr) *ir.Expr {
	acc := conds[0]
	for _, cond := range conds[1:] {
		acc = ir.NewBin(acc, ir.Or, cond, l.boolType(), nil)
	}
	return acc
}

func (l *lowerer) intLit(v ir.Int) *ir.Expr {
	return ir.NewLit(v, l.ctx.std.Int(), nil)
}

func (l *lowerer) boolType() astx.TypeRef {
	return l.ctx.std.Bool()
}

func isOthersAlt(a astx.CaseAlt) bool {
	for _, choice := range a.Choices() {
		if choice.Kind() == astx.KindOthersDesignator {
			return true
		}
	}
	return false
}
