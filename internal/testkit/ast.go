// Package testkit provides an in-memory AST implementing the astx
// contract, so lowering tests can build subprograms without a parser.
// Every node type uses pointer receivers; node identity is pointer
// identity, as the contract requires.
package testkit

import (
	"fmt"
	"strings"

	"basicir/internal/astx"
)

// Std implements astx.StdTypes with four distinct type declarations.
type Std struct {
	BoolType *TypeDecl
	IntType  *TypeDecl
	UnivInt  *TypeDecl
	UnivReal *TypeDecl
}

// NewStd creates a fresh set of standard type handles.
func NewStd() *Std {
	return &Std{
		BoolType: &TypeDecl{Name: "Boolean"},
		IntType:  &TypeDecl{Name: "Integer"},
		UnivInt:  &TypeDecl{Name: "universal_int"},
		UnivReal: &TypeDecl{Name: "universal_real"},
	}
}

func (s *Std) Bool() astx.TypeRef          { return s.BoolType }
func (s *Std) Int() astx.TypeRef           { return s.IntType }
func (s *Std) UniversalInt() astx.TypeRef  { return s.UnivInt }
func (s *Std) UniversalReal() astx.TypeRef { return s.UnivReal }

// Unit implements astx.Unit.
type Unit struct {
	Subps []astx.SubpBody
	StdT  *Std
}

func (u *Unit) Subprograms() []astx.SubpBody { return u.Subps }
func (u *Unit) Std() astx.StdTypes           { return u.StdT }

// Subp implements astx.SubpBody.
type Subp struct {
	Nm     string
	Dcls   []astx.Decl
	Body   []astx.Stmt
	Labels []astx.LabelDecl
}

func (s *Subp) Kind() astx.Kind              { return astx.KindSubpBody }
func (s *Subp) Text() string                 { return s.Nm }
func (s *Subp) Name() string                 { return s.Nm }
func (s *Subp) Decls() []astx.Decl           { return s.Dcls }
func (s *Subp) Stmts() []astx.Stmt           { return s.Body }
func (s *Subp) LabelDecls() []astx.LabelDecl { return s.Labels }

// TypeDecl implements astx.TypeDecl. At most one of RangeExpr, Enum and
// PointeeType should be set; a bare TypeDecl models an opaque type.
type TypeDecl struct {
	astx.DeclMarker
	Name        string
	RangeExpr   astx.Expr
	Enum        []string
	PointeeType astx.TypeRef
}

func (t *TypeDecl) Kind() astx.Kind         { return astx.KindTypeDecl }
func (t *TypeDecl) Text() string            { return t.Name }
func (t *TypeDecl) IntRangeExpr() astx.Expr { return t.RangeExpr }
func (t *TypeDecl) EnumLiterals() []string  { return t.Enum }
func (t *TypeDecl) Pointee() astx.TypeRef   { return t.PointeeType }

// ObjectDecl implements astx.ObjectDecl.
type ObjectDecl struct {
	astx.DeclMarker
	Idents []*Ident
	Type   astx.TypeRef
	Init   astx.Expr
}

// NewObject declares names of type t with an optional shared initializer.
func NewObject(t astx.TypeRef, init astx.Expr, names ...string) *ObjectDecl {
	d := &ObjectDecl{Type: t, Init: init}
	for _, name := range names {
		d.Idents = append(d.Idents, &Ident{Nm: name, RefDecl: d, Hint: t})
	}
	return d
}

func (d *ObjectDecl) Kind() astx.Kind { return astx.KindObjectDecl }

func (d *ObjectDecl) Text() string {
	names := make([]string, len(d.Idents))
	for i, id := range d.Idents {
		names[i] = id.Nm
	}
	return strings.Join(names, ", ")
}

func (d *ObjectDecl) Names() []astx.Ident {
	out := make([]astx.Ident, len(d.Idents))
	for i, id := range d.Idents {
		out[i] = id
	}
	return out
}

func (d *ObjectDecl) DeclType() astx.TypeRef { return d.Type }
func (d *ObjectDecl) Default() astx.Expr     { return d.Init }

// Use returns a fresh reference to the declaration's (single) name.
func (d *ObjectDecl) Use() *Ident {
	return &Ident{Nm: d.Idents[0].Nm, RefDecl: d, Hint: d.Type}
}

// UseName returns a fresh reference to one of the declared names.
func (d *ObjectDecl) UseName(name string) *Ident {
	return &Ident{Nm: name, RefDecl: d, Hint: d.Type}
}

// NumberDecl implements astx.NumberDecl.
type NumberDecl struct {
	astx.DeclMarker
	Nm  string
	Val astx.Expr
}

func (d *NumberDecl) Kind() astx.Kind  { return astx.KindNumberDecl }
func (d *NumberDecl) Text() string     { return d.Nm }
func (d *NumberDecl) Value() astx.Expr { return d.Val }

// Use returns a reference inlining the named constant.
func (d *NumberDecl) Use() *Ident {
	return &Ident{Nm: d.Nm, RefDecl: d}
}

// EnumLiteralDecl implements astx.EnumLiteralDecl.
type EnumLiteralDecl struct {
	astx.DeclMarker
	Nm  string
	Typ astx.TypeRef
}

func (d *EnumLiteralDecl) Kind() astx.Kind        { return astx.KindEnumLiteralDecl }
func (d *EnumLiteralDecl) Text() string           { return d.Nm }
func (d *EnumLiteralDecl) Name() string           { return d.Nm }
func (d *EnumLiteralDecl) EnumType() astx.TypeRef { return d.Typ }

// Use returns a reference to the enumeration literal.
func (d *EnumLiteralDecl) Use() *Ident {
	return &Ident{Nm: d.Nm, RefDecl: d, Hint: d.Typ}
}

// LabelDecl implements astx.LabelDecl.
type LabelDecl struct {
	astx.DeclMarker
	Nm string
}

func (d *LabelDecl) Kind() astx.Kind { return astx.KindLabelDecl }
func (d *LabelDecl) Text() string    { return d.Nm }
func (d *LabelDecl) Name() string    { return d.Nm }

var opText = map[astx.OpKind]string{
	astx.OpLt:        "<",
	astx.OpLe:        "<=",
	astx.OpEq:        "=",
	astx.OpNeq:       "/=",
	astx.OpGe:        ">=",
	astx.OpGt:        ">",
	astx.OpAnd:       "and",
	astx.OpOr:        "or",
	astx.OpAndThen:   "and then",
	astx.OpOrElse:    "or else",
	astx.OpPlus:      "+",
	astx.OpMinus:     "-",
	astx.OpDoubleDot: "..",
	astx.OpNot:       "not",
	astx.OpNeg:       "-",
}

func fmtOp(op astx.OpKind) string {
	if s, ok := opText[op]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", op)
}
