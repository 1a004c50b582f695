// Package lower compiles external ASTs into Basic IR.
//
// One subprogram lowers to one ir.Program. Every control construct is
// reduced to sequencing, nondeterministic splits, assumptions, havocs and
// gotos; loops become unbounded nondeterministic repetition. A subprogram
// either lowers completely or is rejected with a fatal, subprogram-scoped
// error; see errors.go for the taxonomy.
package lower

import (
	"fmt"

	"basicir/internal/astx"
	"basicir/internal/ir"
)

// GenIR lowers one subprogram body to a Basic IR program. The result is
// not yet normalized; ExtractPrograms runs the universal-type pass on top.
func GenIR(ec *Context, subp astx.SubpBody) (*ir.Program, error) {
	l := &lowerer{
		ctx:    ec,
		subp:   subp,
		labels: make(map[astx.LabelDecl]*ir.Stmt),
		vars:   make(map[declKey]*ir.Variable),
		tmps:   make(map[string]int),
	}

	// Pre-transform every label: a goto may be lowered before its label
	// statement is visited.
	for _, ld := range subp.LabelDecls() {
		l.labels[ld] = ir.NewLabel(ld.Name(), ld)
	}

	declStmts, err := l.lowerDecls(subp.Decls())
	if err != nil {
		return nil, err
	}
	bodyStmts, err := l.lowerStmts(subp.Stmts())
	if err != nil {
		return nil, err
	}

	return &ir.Program{
		Stmts: append(declStmts, bodyStmts...),
		Orig:  subp,
	}, nil
}

// declKey identifies one declared object: the declaration site plus the
// surface name, since one declaration can introduce several objects.
type declKey struct {
	decl astx.Decl
	name string
}

// loopEntry tracks one loop the lowering is currently inside of.
type loopEntry struct {
	node astx.Stmt // the source loop statement
	exit *ir.Stmt  // its exit label
}

// lowerer holds the per-invocation lowering state. It is not reused
// across subprograms.
type lowerer struct {
	ctx    *Context
	subp   astx.SubpBody
	labels map[astx.LabelDecl]*ir.Stmt
	loops  []loopEntry
	vars   map[declKey]*ir.Variable
	tmps   map[string]int
}

// fresh returns a collision-free name for a synthesized entity: the base
// name plus a per-base monotonically increasing counter.
func (l *lowerer) fresh(base string) string {
	n := l.tmps[base]
	l.tmps[base]++
	return fmt.Sprintf("%s%d", base, n)
}

func (l *lowerer) lowerDecls(decls []astx.Decl) ([]*ir.Stmt, error) {
	var out []*ir.Stmt
	for _, d := range decls {
		stmts, err := l.lowerDecl(d)
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}
	return out, nil
}

func (l *lowerer) lowerStmts(stmts []astx.Stmt) ([]*ir.Stmt, error) {
	var out []*ir.Stmt
	for _, s := range stmts {
		lowered, err := l.lowerStmt(s)
		if err != nil {
			return nil, err
		}
		out = append(out, lowered...)
	}
	return out, nil
}

// lowerDecl emulates the declaration's semantics as statements.
//
// Type and named-constant declarations erase: their values are resolved at
// use sites. Object declarations register one variable per declared name;
// without an initializer each variable is havocked, with one the
// initializer is lowered once and every name is assigned the same
// expression node.
func (l *lowerer) lowerDecl(d astx.Decl) ([]*ir.Stmt, error) {
	switch decl := d.(type) {
	case astx.TypeDecl:
		return nil, nil
	case astx.NumberDecl:
		return nil, nil
	case astx.LabelDecl:
		return nil, nil
	case astx.ObjectDecl:
		tdecl := decl.DeclType()
		for _, id := range decl.Names() {
			l.vars[declKey{decl: decl, name: id.Name()}] = &ir.Variable{
				Name: id.Name(),
				Type: tdecl,
				Orig: id,
			}
		}

		if decl.Default() == nil {
			stmts := make([]*ir.Stmt, 0, len(decl.Names()))
			for _, id := range decl.Names() {
				v := l.vars[declKey{decl: decl, name: id.Name()}]
				stmts = append(stmts, ir.NewRead(ir.NewIdent(v, tdecl, id), decl))
			}
			return stmts, nil
		}

		dvalPre, dval, err := l.lowerExpr(decl.Default())
		if err != nil {
			return nil, err
		}
		stmts := dvalPre
		for _, id := range decl.Names() {
			v := l.vars[declKey{decl: decl, name: id.Name()}]
			stmts = append(stmts, ir.NewAssign(ir.NewIdent(v, tdecl, id), dval, decl))
		}
		return stmts, nil
	default:
		return nil, unsupported(d)
	}
}

// genSplit lowers a binary branch point: the condition's own
// pre-statements are emitted once, before the split, then one branch
// assumes the condition and the other assumes its negation.
func (l *lowerer) genSplit(cond astx.Expr, thenStmts, elseStmts []*ir.Stmt, orig astx.Node) ([]*ir.Stmt, error) {
	condPre, condExpr, err := l.lowerExpr(cond)
	if err != nil {
		return nil, err
	}
	notCond := ir.NewUn(ir.Not, condExpr, condExpr.Type, nil)

	thenBranch := append([]*ir.Stmt{ir.NewAssume(condExpr, nil, nil)}, thenStmts...)
	elseBranch := append([]*ir.Stmt{ir.NewAssume(notCond, nil, nil)}, elseStmts...)

	return append(condPre, ir.NewSplit([][]*ir.Stmt{thenBranch, elseBranch}, orig)), nil
}
