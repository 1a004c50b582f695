package types

import (
	"strconv"
	"strings"

	"basicir/internal/astx"
)

// Typer maps a source type reference to an abstract-domain type. The
// second result reports whether the typer matched; a non-matching typer is
// not an error, it just defers to the next one in a composition.
type Typer func(hint astx.TypeRef) (Type, bool)

// Or composes two typers by ordered fallback: t wins when it matches,
// otherwise the other typer is consulted.
func (t Typer) Or(other Typer) Typer {
	return func(hint astx.TypeRef) (Type, bool) {
		if tpe, ok := t(hint); ok {
			return tpe, true
		}
		return other(hint)
	}
}

// Standard types the built-in boolean and integer types.
func Standard(std astx.StdTypes) Typer {
	return func(hint astx.TypeRef) (Type, bool) {
		switch hint {
		case std.Bool():
			return Boolean{}, true
		case std.Int():
			return IntRange{First: -(1 << 31), Last: 1<<31 - 1}, true
		default:
			return nil, false
		}
	}
}

// IntRangeDecl types signed integer type declarations from their defining
// range bounds.
func IntRangeDecl() Typer {
	return func(hint astx.TypeRef) (Type, bool) {
		decl, ok := hint.(astx.TypeDecl)
		if !ok {
			return nil, false
		}
		rng := decl.IntRangeExpr()
		if rng == nil {
			return nil, false
		}
		bin, ok := rng.(astx.BinExpr)
		if !ok || bin.Op() != astx.OpDoubleDot {
			return nil, false
		}
		first, err1 := parseBound(bin.Left())
		last, err2 := parseBound(bin.Right())
		if err1 != nil || err2 != nil {
			return nil, false
		}
		return IntRange{First: first, Last: last}, true
	}
}

// EnumDecl types enumeration type declarations.
func EnumDecl() Typer {
	return func(hint astx.TypeRef) (Type, bool) {
		decl, ok := hint.(astx.TypeDecl)
		if !ok {
			return nil, false
		}
		lits := decl.EnumLiterals()
		if lits == nil {
			return nil, false
		}
		return Enum{Literals: lits}, true
	}
}

// AccessDecl types access type declarations, recursively typing the
// pointee through inner. The indirection allows the composed typer to
// reference itself.
func AccessDecl(inner *Typer) Typer {
	return func(hint astx.TypeRef) (Type, bool) {
		decl, ok := hint.(astx.TypeDecl)
		if !ok {
			return nil, false
		}
		pointee := decl.Pointee()
		if pointee == nil {
			return nil, false
		}
		elem, ok := (*inner)(pointee)
		if !ok {
			return nil, false
		}
		return Pointer{Elem: elem}, true
	}
}

// Default composes the full typer for the source language: standard types,
// integer range declarations, enumerations and access types, in that
// order. Access types recurse through the whole composition.
func Default(std astx.StdTypes) Typer {
	var typer Typer
	typer = Standard(std).
		Or(IntRangeDecl()).
		Or(EnumDecl()).
		Or(AccessDecl(&typer))
	return typer
}

func parseBound(e astx.Expr) (int64, error) {
	text := strings.TrimSpace(e.Text())
	if neg, ok := e.(astx.UnExpr); ok && neg.Op() == astx.OpNeg {
		v, err := parseBound(neg.Operand())
		return -v, err
	}
	return strconv.ParseInt(text, 10, 64)
}
