package ir

import "basicir/internal/astx"

// ExprKind enumerates IR expression kinds.
type ExprKind uint8

const (
	// ExprIdent references a variable.
	ExprIdent ExprKind = iota
	// ExprLit is a literal value.
	ExprLit
	// ExprBin is a binary operation.
	ExprBin
	// ExprUn is a unary operation.
	ExprUn
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "Ident"
	case ExprLit:
		return "Lit"
	case ExprBin:
		return "Bin"
	case ExprUn:
		return "Un"
	default:
		return "Unknown"
	}
}

// Expr represents an IR expression. Type carries the static type from the
// external type system; Orig links back to the originating AST node.
type Expr struct {
	Kind ExprKind
	Type astx.TypeRef
	Orig astx.Node
	Data ExprData // Kind-specific payload
}

// ExprData is the interface for expression-specific data.
type ExprData interface {
	exprData()
}

// IdentData holds data for ExprIdent.
type IdentData struct {
	Var *Variable
}

func (IdentData) exprData() {}

// LitData holds data for ExprLit.
type LitData struct {
	Val Value
}

func (LitData) exprData() {}

// BinData holds data for ExprBin.
type BinData struct {
	Lhs *Expr
	Op  *Operator
	Rhs *Expr
}

func (BinData) exprData() {}

// UnData holds data for ExprUn.
type UnData struct {
	Op      *Operator
	Operand *Expr
}

func (UnData) exprData() {}

// NewIdent builds a variable reference.
func NewIdent(v *Variable, hint astx.TypeRef, orig astx.Node) *Expr {
	return &Expr{Kind: ExprIdent, Type: hint, Orig: orig, Data: IdentData{Var: v}}
}

// NewLit builds a literal expression.
func NewLit(val Value, hint astx.TypeRef, orig astx.Node) *Expr {
	return &Expr{Kind: ExprLit, Type: hint, Orig: orig, Data: LitData{Val: val}}
}

// NewBin builds a binary expression.
func NewBin(lhs *Expr, op *Operator, rhs *Expr, hint astx.TypeRef, orig astx.Node) *Expr {
	return &Expr{Kind: ExprBin, Type: hint, Orig: orig, Data: BinData{Lhs: lhs, Op: op, Rhs: rhs}}
}

// NewUn builds a unary expression.
func NewUn(op *Operator, operand *Expr, hint astx.TypeRef, orig astx.Node) *Expr {
	return &Expr{Kind: ExprUn, Type: hint, Orig: orig, Data: UnData{Op: op, Operand: operand}}
}
