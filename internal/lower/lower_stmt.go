package lower

import (
	"basicir/internal/astx"
	"basicir/internal/ir"
)

// lowerStmt emulates one source statement as a list of IR statements.
// Dispatch is on the node kind; several statement interfaces share method
// sets (every loop flavor exposes Body), so interface type switches cannot
// discriminate them.
func (l *lowerer) lowerStmt(s astx.Stmt) ([]*ir.Stmt, error) {
	switch s.Kind() {
	case astx.KindAssignStmt:
		return l.lowerAssign(s.(astx.AssignStmt))

	case astx.KindIfStmt:
		stmt := s.(astx.IfStmt)
		thenStmts, err := l.lowerStmts(stmt.Then())
		if err != nil {
			return nil, err
		}
		elseStmts, err := l.lowerStmts(stmt.Else())
		if err != nil {
			return nil, err
		}
		return l.genSplit(stmt.Cond(), thenStmts, elseStmts, stmt)

	case astx.KindCaseStmt:
		return l.lowerCase(s.(astx.CaseStmt))

	case astx.KindLoopStmt:
		stmt := s.(astx.LoopStmt)
		exit := ir.NewLabel(l.fresh("exit_loop"), nil)
		l.loops = append(l.loops, loopEntry{node: stmt, exit: exit})
		body, err := l.lowerStmts(stmt.Body())
		l.loops = l.loops[:len(l.loops)-1]
		if err != nil {
			return nil, err
		}
		return []*ir.Stmt{ir.NewLoop(body, stmt), exit}, nil

	case astx.KindWhileLoopStmt:
		return l.lowerWhile(s.(astx.WhileLoopStmt))

	case astx.KindForLoopStmt:
		// Counted loops have no sound generic abstraction here; rejecting
		// them keeps the all-or-nothing failure policy.
		return nil, unsupported(s)

	case astx.KindLabelStmt:
		label, ok := l.labels[s.(astx.LabelStmt).Label()]
		if !ok {
			return nil, unsupported(s)
		}
		return []*ir.Stmt{label}, nil

	case astx.KindGotoStmt:
		stmt := s.(astx.GotoStmt)
		label, ok := l.labels[stmt.Target()]
		if !ok {
			return nil, unsupported(s)
		}
		return []*ir.Stmt{ir.NewGoto(label, stmt)}, nil

	case astx.KindNamedStmt:
		return l.lowerStmt(s.(astx.NamedStmt).Inner())

	case astx.KindExitStmt:
		return l.lowerExit(s.(astx.ExitStmt))

	default:
		return nil, unsupported(s)
	}
}

func (l *lowerer) lowerAssign(s astx.AssignStmt) ([]*ir.Stmt, error) {
	exprPre, expr, err := l.lowerExpr(s.Value())
	if err != nil {
		return nil, err
	}
	dest := s.Dest()
	ref, ok := dest.Ref().(astx.ObjectDecl)
	if !ok {
		return nil, unsupported(dest)
	}
	v, ok := l.vars[declKey{decl: ref, name: dest.Name()}]
	if !ok {
		return nil, unsupported(dest)
	}
	return append(exprPre, ir.NewAssign(ir.NewIdent(v, dest.TypeHint(), dest), expr, s)), nil
}

// lowerWhile lowers a condition-guarded loop:
//
//	while C loop S; end loop;
//
// becomes
//
//	loop:
//	  assume(C)
//	  S
//	assume(!C)
//
// The trailing negated assumption makes "fell out of the loop" explicit
// for the analysis. It is sound because the only non-condition exits the
// engine emits are gotos, which jump past the assumption to the exit
// label placed after it.
func (l *lowerer) lowerWhile(s astx.WhileLoopStmt) ([]*ir.Stmt, error) {
	condPre, cond, err := l.lowerExpr(s.Cond())
	if err != nil {
		return nil, err
	}
	notCond := ir.NewUn(ir.Not, cond, cond.Type, nil)

	exit := ir.NewLabel(l.fresh("exit_while_loop"), nil)
	l.loops = append(l.loops, loopEntry{node: s, exit: exit})
	body, err := l.lowerStmts(s.Body())
	l.loops = l.loops[:len(l.loops)-1]
	if err != nil {
		return nil, err
	}

	loopBody := append(condPre, ir.NewAssume(cond, nil, nil))
	loopBody = append(loopBody, body...)

	return []*ir.Stmt{
		ir.NewLoop(loopBody, s),
		ir.NewAssume(notCond, nil, nil),
		exit,
	}, nil
}

// lowerExit resolves the exited loop on the loop stack and lowers to a
// goto, wrapped in a split when the exit is conditional:
//
//	loop exit when C; end loop;
//
// becomes
//
//	loop:
//	  split:
//	    assume(C)
//	    goto exit_loop0
//	  |:
//	    assume(!C)
//	exit_loop0:
func (l *lowerer) lowerExit(s astx.ExitStmt) ([]*ir.Stmt, error) {
	if len(l.loops) == 0 {
		return nil, unsupported(s)
	}

	var exited *loopEntry
	if s.Loop() == nil {
		exited = &l.loops[len(l.loops)-1]
	} else {
		for i := range l.loops {
			if l.loops[i].node == s.Loop() {
				exited = &l.loops[i]
				break
			}
		}
		if exited == nil {
			return nil, unsupported(s)
		}
	}

	exitGoto := ir.NewGoto(exited.exit, s)
	if s.Cond() == nil {
		return []*ir.Stmt{exitGoto}, nil
	}
	return l.genSplit(s.Cond(), []*ir.Stmt{exitGoto}, nil, s)
}
