package lower

import (
	"strconv"

	"basicir/internal/astx"
	"basicir/internal/ir"
)

// binOps maps source binary operators with a direct IR equivalent. The
// short-circuit forms are absent on purpose; they desugar to splits.
var binOps = map[astx.OpKind]*ir.Operator{
	astx.OpLt:        ir.Lt,
	astx.OpLe:        ir.Le,
	astx.OpEq:        ir.Eq,
	astx.OpNeq:       ir.Neq,
	astx.OpGe:        ir.Ge,
	astx.OpGt:        ir.Gt,
	astx.OpAnd:       ir.And,
	astx.OpOr:        ir.Or,
	astx.OpPlus:      ir.Plus,
	astx.OpMinus:     ir.Minus,
	astx.OpDoubleDot: ir.DotDot,
}

var unOps = map[astx.OpKind]*ir.Operator{
	astx.OpNeg: ir.Neg,
	astx.OpNot: ir.Not,
}

var attrOps = map[astx.AttrKind]*ir.Operator{
	astx.AttrAccess: ir.Address,
	astx.AttrFirst:  ir.GetFirst,
	astx.AttrLast:   ir.GetLast,
}

// lowerExpr lowers a source expression into (pre-statements, expression).
// Pre-statements must be inserted immediately before the statement that
// consumes the result; when a sub-lowering happens inside a branch, its
// pre-statements stay inside that branch. Dispatch is on the node kind,
// matching lowerStmt; the literal interfaces carry no methods of their
// own to switch on.
func (l *lowerer) lowerExpr(e astx.Expr) ([]*ir.Stmt, *ir.Expr, error) {
	switch e.Kind() {
	case astx.KindParenExpr:
		return l.lowerExpr(e.(astx.ParenExpr).Inner())

	case astx.KindBinExpr:
		expr := e.(astx.BinExpr)
		if expr.Op() == astx.OpAndThen || expr.Op() == astx.OpOrElse {
			return l.lowerShortCircuit(expr)
		}
		op, ok := binOps[expr.Op()]
		if !ok {
			return nil, nil, unsupported(e)
		}
		lhsPre, lhs, err := l.lowerExpr(expr.Left())
		if err != nil {
			return nil, nil, err
		}
		rhsPre, rhs, err := l.lowerExpr(expr.Right())
		if err != nil {
			return nil, nil, err
		}
		return append(lhsPre, rhsPre...), ir.NewBin(lhs, op, rhs, e.TypeHint(), e), nil

	case astx.KindUnExpr:
		expr := e.(astx.UnExpr)
		op, ok := unOps[expr.Op()]
		if !ok {
			return nil, nil, unsupported(e)
		}
		innerPre, inner, err := l.lowerExpr(expr.Operand())
		if err != nil {
			return nil, nil, err
		}
		return innerPre, ir.NewUn(op, inner, e.TypeHint(), e), nil

	case astx.KindIfExpr:
		return l.lowerIfExpr(e.(astx.IfExpr))

	case astx.KindIdentifier:
		return l.lowerIdent(e.(astx.Ident))

	case astx.KindIntLiteral:
		val, err := strconv.ParseInt(e.Text(), 10, 64)
		if err != nil {
			return nil, nil, unsupported(e)
		}
		return nil, ir.NewLit(ir.Int(val), e.TypeHint(), e), nil

	case astx.KindNullLiteral:
		return nil, ir.NewLit(ir.Null, e.TypeHint(), e), nil

	case astx.KindDerefExpr:
		return l.lowerDeref(e.(astx.DerefExpr))

	case astx.KindAttributeRef:
		expr := e.(astx.AttributeRef)
		op, ok := attrOps[expr.Attr()]
		if !ok {
			return nil, nil, unsupported(e)
		}
		prefixPre, prefix, err := l.lowerExpr(expr.Prefix())
		if err != nil {
			return nil, nil, err
		}
		return prefixPre, ir.NewUn(op, prefix, e.TypeHint(), e), nil

	default:
		return nil, nil, unsupported(e)
	}
}

// lowerIdent lowers a name according to what it refers to: object
// declarations to their registered variable, enumeration literals to
// symbolic literals, named constants and signed integer types by inlining
// their defining expression.
func (l *lowerer) lowerIdent(e astx.Ident) ([]*ir.Stmt, *ir.Expr, error) {
	switch ref := e.Ref().(type) {
	case astx.ObjectDecl:
		v, ok := l.vars[declKey{decl: ref, name: e.Name()}]
		if !ok {
			return nil, nil, unsupported(e)
		}
		return nil, ir.NewIdent(v, e.TypeHint(), e), nil
	case astx.EnumLiteralDecl:
		return nil, ir.NewLit(ir.Sym(e.Text()), ref.EnumType(), e), nil
	case astx.NumberDecl:
		return l.lowerExpr(ref.Value())
	case astx.TypeDecl:
		if rng := ref.IntRangeExpr(); rng != nil {
			return l.lowerExpr(rng)
		}
		return nil, nil, unsupported(e)
	default:
		return nil, nil, unsupported(e)
	}
}

// lowerIfExpr lowers a conditional value expression:
//
//	x := (if C then A else B);
//
// becomes
//
//	split:
//	  assume(C)
//	  tmp = A
//	|:
//	  assume(!C)
//	  tmp = B
//	x = tmp
func (l *lowerer) lowerIfExpr(e astx.IfExpr) ([]*ir.Stmt, *ir.Expr, error) {
	// The temporary is synthetic so checkers know not to report on it.
	tmp := ir.NewIdent(&ir.Variable{
		Name:    l.fresh("tmp"),
		Type:    e.TypeHint(),
		Purpose: ir.SyntheticVariable{},
		Orig:    e,
	}, e.TypeHint(), e)

	thenPre, thenExpr, err := l.lowerExpr(e.Then())
	if err != nil {
		return nil, nil, err
	}
	elsePre, elseExpr, err := l.lowerExpr(e.Else())
	if err != nil {
		return nil, nil, err
	}

	pre, err := l.genSplit(
		e.Cond(),
		append(thenPre, ir.NewAssign(tmp, thenExpr, nil)),
		append(elsePre, ir.NewAssign(tmp, elseExpr, nil)),
		e,
	)
	if err != nil {
		return nil, nil, err
	}
	return pre, tmp, nil
}

// lowerShortCircuit desugars and-then / or-else. The right operand's
// evaluation must be conditionally suppressed, so the expression becomes a
// synthetic boolean fed by a nested split mirroring the short-circuit
// truth table:
//
//	x := C1 and then C2;      x := C1 or else C2;
//
//	split:                    split:
//	  assume(C1)                assume(C1)
//	  split:                    res = True
//	    assume(C2)            |:
//	    res = True              assume(!C1)
//	  |:                        split:
//	    assume(!C2)               assume(C2)
//	    res = False               res = True
//	|:                          |:
//	  assume(!C1)                 assume(!C2)
//	  res = False                 res = False
//	x = res                   x = res
func (l *lowerer) lowerShortCircuit(e astx.BinExpr) ([]*ir.Stmt, *ir.Expr, error) {
	boolHint := e.TypeHint()
	res := ir.NewIdent(&ir.Variable{
		Name:    l.fresh("tmp"),
		Type:    boolHint,
		Purpose: ir.SyntheticVariable{},
		Orig:    e,
	}, boolHint, e)

	// Fresh assignment nodes per use: branches must not share mutable
	// statements.
	resEq := func(val ir.Sym) *ir.Stmt {
		return ir.NewAssign(res, ir.NewLit(val, boolHint, nil), nil)
	}

	var resStmts []*ir.Stmt
	var err error
	if e.Op() == astx.OpAndThen {
		inner, ierr := l.genSplit(e.Right(), []*ir.Stmt{resEq(ir.True)}, []*ir.Stmt{resEq(ir.False)}, nil)
		if ierr != nil {
			return nil, nil, ierr
		}
		resStmts, err = l.genSplit(e.Left(), inner, []*ir.Stmt{resEq(ir.False)}, e)
	} else {
		inner, ierr := l.genSplit(e.Right(), []*ir.Stmt{resEq(ir.True)}, []*ir.Stmt{resEq(ir.False)}, nil)
		if ierr != nil {
			return nil, nil, ierr
		}
		resStmts, err = l.genSplit(e.Left(), []*ir.Stmt{resEq(ir.True)}, inner, e)
	}
	if err != nil {
		return nil, nil, err
	}
	return resStmts, res, nil
}

// lowerDeref lowers an explicit dereference, materializing the null-check
// obligation as an assumption tagged DerefCheck right before the access.
func (l *lowerer) lowerDeref(e astx.DerefExpr) ([]*ir.Stmt, *ir.Expr, error) {
	prefixPre, prefix, err := l.lowerExpr(e.Prefix())
	if err != nil {
		return nil, nil, err
	}
	notNull := ir.NewBin(
		prefix,
		ir.Neq,
		ir.NewLit(ir.Null, e.Prefix().TypeHint(), nil),
		l.ctx.Std().Bool(),
		nil,
	)
	pre := append(prefixPre, ir.NewAssume(notNull, ir.DerefCheck{Prefix: prefix}, nil))
	return pre, ir.NewUn(ir.Deref, prefix, e.TypeHint(), e), nil
}
