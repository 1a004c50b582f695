package ir

// OpSym identifies an operator symbol. Evaluation rules key on the symbol,
// not on operator node identity.
type OpSym uint8

const (
	SymPlus OpSym = iota
	SymMinus
	SymLt
	SymLe
	SymEq
	SymNeq
	SymGe
	SymGt
	SymAnd
	SymOr
	SymDotDot
	SymNot
	SymNeg
	SymAddress
	SymDeref
	SymGetFirst
	SymGetLast
)

// String returns the printed form of the operator symbol.
func (s OpSym) String() string {
	switch s {
	case SymPlus:
		return "+"
	case SymMinus:
		return "-"
	case SymLt:
		return "<"
	case SymLe:
		return "<="
	case SymEq:
		return "=="
	case SymNeq:
		return "!="
	case SymGe:
		return ">="
	case SymGt:
		return ">"
	case SymAnd:
		return "&&"
	case SymOr:
		return "||"
	case SymDotDot:
		return ".."
	case SymNot:
		return "!"
	case SymNeg:
		return "-"
	case SymAddress:
		return "&"
	case SymDeref:
		return "*"
	case SymGetFirst:
		return "GetFirst"
	case SymGetLast:
		return "GetLast"
	default:
		return "?"
	}
}

// Operator is one element of the closed operator set. Each symbol has
// exactly one instance, so pointer comparison is a valid fast path, but
// semantic equality is by Sym.
type Operator struct {
	sym OpSym
}

// Sym returns the operator's symbol.
func (o *Operator) Sym() OpSym { return o.sym }

func (o *Operator) String() string { return o.sym.String() }

// The binary operator singletons.
var (
	Plus   = &Operator{SymPlus}
	Minus  = &Operator{SymMinus}
	Lt     = &Operator{SymLt}
	Le     = &Operator{SymLe}
	Eq     = &Operator{SymEq}
	Neq    = &Operator{SymNeq}
	Ge     = &Operator{SymGe}
	Gt     = &Operator{SymGt}
	And    = &Operator{SymAnd}
	Or     = &Operator{SymOr}
	DotDot = &Operator{SymDotDot}
)

// The unary operator singletons.
var (
	Not      = &Operator{SymNot}
	Neg      = &Operator{SymNeg}
	Address  = &Operator{SymAddress}
	Deref    = &Operator{SymDeref}
	GetFirst = &Operator{SymGetFirst}
	GetLast  = &Operator{SymGetLast}
)
