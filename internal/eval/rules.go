package eval

import (
	"fmt"

	"basicir/internal/ir"
)

type binRule func(x, y ir.Value) (ir.Value, error)

type unRule func(x ir.Value) (ir.Value, error)

// The fixed operator rule tables. An operator absent from its table makes
// the whole expression non-constant.
var binRules = map[ir.OpSym]binRule{
	ir.SymAnd: func(x, y ir.Value) (ir.Value, error) {
		return ir.FromBool(ir.ToBool(x) && ir.ToBool(y)), nil
	},
	ir.SymOr: func(x, y ir.Value) (ir.Value, error) {
		return ir.FromBool(ir.ToBool(x) || ir.ToBool(y)), nil
	},
	ir.SymEq: func(x, y ir.Value) (ir.Value, error) {
		return ir.FromBool(x == y), nil
	},
	ir.SymNeq: func(x, y ir.Value) (ir.Value, error) {
		return ir.FromBool(x != y), nil
	},
	ir.SymLt: ordering(func(x, y int64) bool { return x < y }),
	ir.SymLe: ordering(func(x, y int64) bool { return x <= y }),
	ir.SymGe: ordering(func(x, y int64) bool { return x >= y }),
	ir.SymGt: ordering(func(x, y int64) bool { return x > y }),
	ir.SymDotDot: func(x, y ir.Value) (ir.Value, error) {
		return ir.Range{First: x, Last: y}, nil
	},
	ir.SymPlus:  arith(func(x, y int64) int64 { return x + y }),
	ir.SymMinus: arith(func(x, y int64) int64 { return x - y }),
}

var unRules = map[ir.OpSym]unRule{
	ir.SymNot: func(x ir.Value) (ir.Value, error) {
		return ir.FromBool(!ir.ToBool(x)), nil
	},
	ir.SymNeg: func(x ir.Value) (ir.Value, error) {
		i, ok := x.(ir.Int)
		if !ok {
			return nil, fmt.Errorf("eval: negate %s: %w", x, ErrNotConst)
		}
		return -i, nil
	},
	ir.SymGetFirst: func(x ir.Value) (ir.Value, error) {
		r, ok := x.(ir.Range)
		if !ok {
			return nil, fmt.Errorf("eval: GetFirst of %s: %w", x, ErrNotConst)
		}
		return r.First, nil
	},
	ir.SymGetLast: func(x ir.Value) (ir.Value, error) {
		r, ok := x.(ir.Range)
		if !ok {
			return nil, fmt.Errorf("eval: GetLast of %s: %w", x, ErrNotConst)
		}
		return r.Last, nil
	},
}

func ordering(cmp func(x, y int64) bool) binRule {
	return func(x, y ir.Value) (ir.Value, error) {
		xi, okx := x.(ir.Int)
		yi, oky := y.(ir.Int)
		if !okx || !oky {
			return nil, fmt.Errorf("eval: order %s and %s: %w", x, y, ErrNotConst)
		}
		return ir.FromBool(cmp(int64(xi), int64(yi))), nil
	}
}

func arith(op func(x, y int64) int64) binRule {
	return func(x, y ir.Value) (ir.Value, error) {
		xi, okx := x.(ir.Int)
		yi, oky := y.(ir.Int)
		if !okx || !oky {
			return nil, fmt.Errorf("eval: arithmetic on %s and %s: %w", x, y, ErrNotConst)
		}
		return ir.Int(op(int64(xi), int64(yi))), nil
	}
}
