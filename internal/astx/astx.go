// Package astx defines the structural query contract the lowering engine
// requires from an external AST.
//
// The engine never parses source text; it consumes an already-resolved
// syntax tree through the interfaces below: node-kind discrimination,
// children accessors, declaration-reference resolution and static
// expression types. Adapters must implement every interface with pointer
// receivers (or otherwise guarantee comparable node values): the
// declaration registry, the label table and the loop stack all key on node
// identity.
package astx

// Kind discriminates adapter node kinds.
type Kind uint8

const (
	// KindSubpBody is a subprogram body (declarative part + statements).
	KindSubpBody Kind = iota

	// Declarations.
	KindObjectDecl
	KindTypeDecl
	KindNumberDecl
	KindEnumLiteralDecl
	KindLabelDecl

	// Statements.
	KindAssignStmt
	KindIfStmt
	KindCaseStmt
	KindCaseAlt
	KindLoopStmt
	KindWhileLoopStmt
	KindForLoopStmt
	KindLabelStmt
	KindGotoStmt
	KindNamedStmt
	KindExitStmt

	// Expressions.
	KindParenExpr
	KindBinExpr
	KindUnExpr
	KindIfExpr
	KindIdentifier
	KindIntLiteral
	KindNullLiteral
	KindDerefExpr
	KindAttributeRef
	KindOthersDesignator
)

// String returns a human-readable name for the node kind.
func (k Kind) String() string {
	switch k {
	case KindSubpBody:
		return "SubpBody"
	case KindObjectDecl:
		return "ObjectDecl"
	case KindTypeDecl:
		return "TypeDecl"
	case KindNumberDecl:
		return "NumberDecl"
	case KindEnumLiteralDecl:
		return "EnumLiteralDecl"
	case KindLabelDecl:
		return "LabelDecl"
	case KindAssignStmt:
		return "AssignStmt"
	case KindIfStmt:
		return "IfStmt"
	case KindCaseStmt:
		return "CaseStmt"
	case KindCaseAlt:
		return "CaseAlt"
	case KindLoopStmt:
		return "LoopStmt"
	case KindWhileLoopStmt:
		return "WhileLoopStmt"
	case KindForLoopStmt:
		return "ForLoopStmt"
	case KindLabelStmt:
		return "LabelStmt"
	case KindGotoStmt:
		return "GotoStmt"
	case KindNamedStmt:
		return "NamedStmt"
	case KindExitStmt:
		return "ExitStmt"
	case KindParenExpr:
		return "ParenExpr"
	case KindBinExpr:
		return "BinExpr"
	case KindUnExpr:
		return "UnExpr"
	case KindIfExpr:
		return "IfExpr"
	case KindIdentifier:
		return "Identifier"
	case KindIntLiteral:
		return "IntLiteral"
	case KindNullLiteral:
		return "NullLiteral"
	case KindDerefExpr:
		return "DerefExpr"
	case KindAttributeRef:
		return "AttributeRef"
	case KindOthersDesignator:
		return "OthersDesignator"
	default:
		return "Unknown"
	}
}

// Node is the base contract for every adapter node.
type Node interface {
	Kind() Kind
	// Text returns the source text of the node, used for diagnostics and
	// literal token decoding.
	Text() string
}

// TypeRef is an opaque handle to a source type declaration. Handles compare
// by identity: two references to the same declaration must be ==.
type TypeRef interface {
	Node
}

// Expr is a node with a statically determined type.
type Expr interface {
	Node
	// TypeHint returns the static type of the expression, or nil when the
	// adapter cannot determine one.
	TypeHint() TypeRef
}

// Stmt marks statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Decl marks declaration nodes.
type Decl interface {
	Node
	declNode()
}

// StmtMarker and DeclMarker can be embedded by adapters to satisfy the
// Stmt and Decl marker methods.
type StmtMarker struct{}

func (StmtMarker) stmtNode() {}

// DeclMarker is the Decl counterpart of StmtMarker.
type DeclMarker struct{}

func (DeclMarker) declNode() {}

// StdTypes exposes the handles of the source language's standard types.
// Programs extracted against the same StdTypes have compatible hints.
type StdTypes interface {
	Bool() TypeRef
	Int() TypeRef
	// UniversalInt and UniversalReal are the compiler-internal ambiguous
	// numeric types eliminated by the normalizer.
	UniversalInt() TypeRef
	UniversalReal() TypeRef
}

// Unit is one compilation unit: an ordered set of subprogram bodies
// sharing standard types.
type Unit interface {
	Subprograms() []SubpBody
	Std() StdTypes
}

// SubpBody is a subprogram body.
type SubpBody interface {
	Node
	Name() string
	Decls() []Decl
	Stmts() []Stmt
	// LabelDecls returns every label declared anywhere in the body, in
	// source order. Required up front because a goto may precede its label.
	LabelDecls() []LabelDecl
}

// LabelDecl is the declaration of a statement label.
type LabelDecl interface {
	Decl
	Name() string
}

// ObjectDecl declares one or more objects of a common type, with an
// optional shared initializer.
type ObjectDecl interface {
	Decl
	// Names returns the declared identifiers; each carries the object type
	// as its hint.
	Names() []Ident
	// DeclType returns the designated type of the declaration.
	DeclType() TypeRef
	// Default returns the initializer expression, or nil.
	Default() Expr
}

// NumberDecl is a named-constant declaration; references inline Value.
type NumberDecl interface {
	Decl
	Value() Expr
}

// TypeDecl is a type declaration. Only the queries the lowering engine and
// the typers need are exposed.
type TypeDecl interface {
	Decl
	TypeRef
	// IntRangeExpr returns the defining range expression of a signed
	// integer type declaration (a DotDot binary expression), or nil for
	// any other type declaration.
	IntRangeExpr() Expr
	// EnumLiterals returns the enumeration literal names of an enumeration
	// type declaration, in position order, or nil.
	EnumLiterals() []string
	// Pointee returns the designated type of an access type declaration,
	// or nil.
	Pointee() TypeRef
}

// EnumLiteralDecl is the declaration of one enumeration literal.
type EnumLiteralDecl interface {
	Decl
	Name() string
	// EnumType returns the enumeration type the literal belongs to.
	EnumType() TypeRef
}

// AssignStmt is `dest := value`.
type AssignStmt interface {
	Stmt
	Dest() Ident
	Value() Expr
}

// IfStmt is an if/else statement; elsif chains are presented by the
// adapter as nested IfStmts in the else part.
type IfStmt interface {
	Stmt
	Cond() Expr
	Then() []Stmt
	Else() []Stmt
}

// CaseStmt is a multi-way dispatch over a selector. The source language
// guarantees alternatives are exhaustive and pairwise disjoint.
type CaseStmt interface {
	Stmt
	Selector() Expr
	Alternatives() []CaseAlt
}

// CaseAlt is one alternative of a case statement. The `others` alternative
// carries a single OthersDesignator choice.
type CaseAlt interface {
	Node
	Choices() []Expr
	Stmts() []Stmt
}

// LoopStmt is a bare (endless) loop.
type LoopStmt interface {
	Stmt
	Body() []Stmt
}

// WhileLoopStmt is a condition-guarded loop.
type WhileLoopStmt interface {
	Stmt
	Cond() Expr
	Body() []Stmt
}

// ForLoopStmt is a counted loop. The engine rejects it as unsupported; the
// interface exists so adapters can still represent it.
type ForLoopStmt interface {
	Stmt
	Body() []Stmt
}

// LabelStmt marks a label occurrence in the statement list.
type LabelStmt interface {
	Stmt
	Label() LabelDecl
}

// GotoStmt transfers control to a label. Name resolution has already been
// performed by the adapter.
type GotoStmt interface {
	Stmt
	Target() LabelDecl
}

// NamedStmt wraps a statement carrying a name (named loops); exit
// statements resolve against the wrapped statement node.
type NamedStmt interface {
	Stmt
	Inner() Stmt
}

// ExitStmt leaves a loop, optionally when a condition holds.
type ExitStmt interface {
	Stmt
	// Loop returns the loop statement being exited, or nil for the
	// innermost enclosing loop. Name-to-loop resolution is the adapter's
	// job; the handle must be the identical node pushed on the loop stack.
	Loop() Stmt
	// Cond returns the `when` condition, or nil for an unconditional exit.
	Cond() Expr
}

// OpKind enumerates source operators the lowering engine understands.
type OpKind uint8

const (
	OpLt OpKind = iota
	OpLe
	OpEq
	OpNeq
	OpGe
	OpGt
	OpAnd
	OpOr
	OpAndThen
	OpOrElse
	OpPlus
	OpMinus
	OpDoubleDot
	OpNot
	OpNeg
)

// AttrKind enumerates attribute references the lowering engine understands.
type AttrKind uint8

const (
	AttrAccess AttrKind = iota
	AttrFirst
	AttrLast
)

// ParenExpr is a parenthesized expression; lowering unwraps it.
type ParenExpr interface {
	Expr
	Inner() Expr
}

// BinExpr is a binary operation, including the short-circuit forms.
type BinExpr interface {
	Expr
	Left() Expr
	Op() OpKind
	Right() Expr
}

// UnExpr is a unary operation.
type UnExpr interface {
	Expr
	Op() OpKind
	Operand() Expr
}

// IfExpr is a conditional value expression.
type IfExpr interface {
	Expr
	Cond() Expr
	Then() Expr
	Else() Expr
}

// Ident is a name reference. Ref returns the declaration the name resolves
// to: an ObjectDecl, EnumLiteralDecl, NumberDecl or TypeDecl.
type Ident interface {
	Expr
	Name() string
	Ref() Decl
}

// IntLiteral is an integer literal; Text holds the token image.
type IntLiteral interface {
	Expr
}

// NullLiteral is the null access value.
type NullLiteral interface {
	Expr
}

// DerefExpr is an explicit dereference of an access value.
type DerefExpr interface {
	Expr
	Prefix() Expr
}

// AttributeRef is `prefix'Attr`.
type AttributeRef interface {
	Expr
	Prefix() Expr
	Attr() AttrKind
}
