package testkit

import (
	"fmt"
	"strconv"

	"basicir/internal/astx"
)

// Ident implements astx.Ident.
type Ident struct {
	Nm      string
	RefDecl astx.Decl
	Hint    astx.TypeRef
}

func (e *Ident) Kind() astx.Kind        { return astx.KindIdentifier }
func (e *Ident) Text() string           { return e.Nm }
func (e *Ident) TypeHint() astx.TypeRef { return e.Hint }
func (e *Ident) Name() string           { return e.Nm }
func (e *Ident) Ref() astx.Decl         { return e.RefDecl }

// IntLit implements astx.IntLiteral.
type IntLit struct {
	Txt  string
	Hint astx.TypeRef
}

// Num builds an integer literal with the universal integer type hint, the
// static type the source language gives plain numeric literals.
func Num(std *Std, v int64) *IntLit {
	return &IntLit{Txt: strconv.FormatInt(v, 10), Hint: std.UnivInt}
}

func (e *IntLit) Kind() astx.Kind        { return astx.KindIntLiteral }
func (e *IntLit) Text() string           { return e.Txt }
func (e *IntLit) TypeHint() astx.TypeRef { return e.Hint }

// NullLit implements astx.NullLiteral.
type NullLit struct {
	Hint astx.TypeRef
}

func (e *NullLit) Kind() astx.Kind        { return astx.KindNullLiteral }
func (e *NullLit) Text() string           { return "null" }
func (e *NullLit) TypeHint() astx.TypeRef { return e.Hint }

// Paren implements astx.ParenExpr.
type Paren struct {
	X astx.Expr
}

func (e *Paren) Kind() astx.Kind        { return astx.KindParenExpr }
func (e *Paren) Text() string           { return "(" + e.X.Text() + ")" }
func (e *Paren) TypeHint() astx.TypeRef { return e.X.TypeHint() }
func (e *Paren) Inner() astx.Expr       { return e.X }

// Bin implements astx.BinExpr.
type Bin struct {
	Lhs      astx.Expr
	Operator astx.OpKind
	Rhs      astx.Expr
	Hint     astx.TypeRef
}

func (e *Bin) Kind() astx.Kind { return astx.KindBinExpr }

func (e *Bin) Text() string {
	return fmt.Sprintf("%s %s %s", e.Lhs.Text(), fmtOp(e.Operator), e.Rhs.Text())
}

func (e *Bin) TypeHint() astx.TypeRef { return e.Hint }
func (e *Bin) Left() astx.Expr        { return e.Lhs }
func (e *Bin) Op() astx.OpKind        { return e.Operator }
func (e *Bin) Right() astx.Expr       { return e.Rhs }

// Un implements astx.UnExpr.
type Un struct {
	Operator astx.OpKind
	X        astx.Expr
	Hint     astx.TypeRef
}

func (e *Un) Kind() astx.Kind        { return astx.KindUnExpr }
func (e *Un) Text() string           { return fmt.Sprintf("%s %s", fmtOp(e.Operator), e.X.Text()) }
func (e *Un) TypeHint() astx.TypeRef { return e.Hint }
func (e *Un) Op() astx.OpKind        { return e.Operator }
func (e *Un) Operand() astx.Expr     { return e.X }

// IfExpr implements astx.IfExpr.
type IfExpr struct {
	C    astx.Expr
	T    astx.Expr
	E    astx.Expr
	Hint astx.TypeRef
}

func (e *IfExpr) Kind() astx.Kind { return astx.KindIfExpr }

func (e *IfExpr) Text() string {
	return fmt.Sprintf("if %s then %s else %s", e.C.Text(), e.T.Text(), e.E.Text())
}

func (e *IfExpr) TypeHint() astx.TypeRef { return e.Hint }
func (e *IfExpr) Cond() astx.Expr        { return e.C }
func (e *IfExpr) Then() astx.Expr        { return e.T }
func (e *IfExpr) Else() astx.Expr        { return e.E }

// DerefE implements astx.DerefExpr.
type DerefE struct {
	P    astx.Expr
	Hint astx.TypeRef
}

func (e *DerefE) Kind() astx.Kind        { return astx.KindDerefExpr }
func (e *DerefE) Text() string           { return e.P.Text() + ".all" }
func (e *DerefE) TypeHint() astx.TypeRef { return e.Hint }
func (e *DerefE) Prefix() astx.Expr      { return e.P }

// AttrRef implements astx.AttributeRef.
type AttrRef struct {
	P    astx.Expr
	A    astx.AttrKind
	Hint astx.TypeRef
}

func (e *AttrRef) Kind() astx.Kind        { return astx.KindAttributeRef }
func (e *AttrRef) Text() string           { return e.P.Text() + "'attr" }
func (e *AttrRef) TypeHint() astx.TypeRef { return e.Hint }
func (e *AttrRef) Prefix() astx.Expr      { return e.P }
func (e *AttrRef) Attr() astx.AttrKind    { return e.A }

// Others implements the `others` choice designator.
type Others struct{}

func (e *Others) Kind() astx.Kind        { return astx.KindOthersDesignator }
func (e *Others) Text() string           { return "others" }
func (e *Others) TypeHint() astx.TypeRef { return nil }
