package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basicir/internal/ir"
)

func lit(v ir.Value) *ir.Expr {
	return ir.NewLit(v, nil, nil)
}

func bin(lhs *ir.Expr, op *ir.Operator, rhs *ir.Expr) *ir.Expr {
	return ir.NewBin(lhs, op, rhs, nil, nil)
}

func TestEvalLiteral(t *testing.T) {
	ev := New()
	v, err := ev.Eval(lit(ir.Int(5)))
	require.NoError(t, err)
	assert.Equal(t, ir.Int(5), v)

	v, err = ev.Eval(lit(ir.True))
	require.NoError(t, err)
	assert.Equal(t, ir.True, v)
}

func TestEvalArithmetic(t *testing.T) {
	ev := New()

	v, err := ev.Eval(bin(lit(ir.Int(2)), ir.Plus, lit(ir.Int(3))))
	require.NoError(t, err)
	assert.Equal(t, ir.Int(5), v)

	v, err = ev.Eval(bin(lit(ir.Int(2)), ir.Minus, lit(ir.Int(3))))
	require.NoError(t, err)
	assert.Equal(t, ir.Int(-1), v)

	v, err = ev.Eval(ir.NewUn(ir.Neg, lit(ir.Int(7)), nil, nil))
	require.NoError(t, err)
	assert.Equal(t, ir.Int(-7), v)
}

func TestEvalComparisons(t *testing.T) {
	ev := New()

	cases := []struct {
		op   *ir.Operator
		x, y int64
		want ir.Sym
	}{
		{ir.Lt, 1, 2, ir.True},
		{ir.Le, 2, 2, ir.True},
		{ir.Ge, 1, 2, ir.False},
		{ir.Gt, 3, 2, ir.True},
		{ir.Eq, 2, 2, ir.True},
		{ir.Neq, 2, 2, ir.False},
	}
	for _, tc := range cases {
		v, err := ev.Eval(bin(lit(ir.Int(tc.x)), tc.op, lit(ir.Int(tc.y))))
		require.NoError(t, err, "op %s", tc.op)
		assert.Equal(t, tc.want, v, "%d %s %d", tc.x, tc.op, tc.y)
	}
}

func TestEvalLogic(t *testing.T) {
	ev := New()

	v, err := ev.Eval(bin(lit(ir.True), ir.And, lit(ir.False)))
	require.NoError(t, err)
	assert.Equal(t, ir.False, v)

	v, err = ev.Eval(bin(lit(ir.True), ir.Or, lit(ir.False)))
	require.NoError(t, err)
	assert.Equal(t, ir.True, v)

	v, err = ev.Eval(ir.NewUn(ir.Not, lit(ir.False), nil, nil))
	require.NoError(t, err)
	assert.Equal(t, ir.True, v)
}

func TestEvalRange(t *testing.T) {
	ev := New()

	rng := bin(lit(ir.Int(1)), ir.DotDot, lit(ir.Int(10)))
	v, err := ev.Eval(rng)
	require.NoError(t, err)
	assert.Equal(t, ir.Range{First: ir.Int(1), Last: ir.Int(10)}, v)

	v, err = ev.Eval(ir.NewUn(ir.GetFirst, rng, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, ir.Int(1), v)

	v, err = ev.Eval(ir.NewUn(ir.GetLast, rng, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, ir.Int(10), v)
}

func TestEvalIdentifierFails(t *testing.T) {
	ev := New()
	x := ir.NewIdent(&ir.Variable{Name: "X"}, nil, nil)

	_, err := ev.Eval(x)
	require.ErrorIs(t, err, ErrNotConst)

	// Operand failure propagates.
	_, err = ev.Eval(bin(x, ir.Plus, lit(ir.Int(1))))
	require.ErrorIs(t, err, ErrNotConst)
}

func TestEvalUnknownOperatorFails(t *testing.T) {
	ev := New()

	// Address-of has no evaluation rule.
	_, err := ev.Eval(ir.NewUn(ir.Address, lit(ir.Int(1)), nil, nil))
	require.ErrorIs(t, err, ErrNotConst)
}

func TestEvalMemoizesByNodeIdentity(t *testing.T) {
	calls := 0
	orig := binRules[ir.SymPlus]
	binRules[ir.SymPlus] = func(x, y ir.Value) (ir.Value, error) {
		calls++
		return orig(x, y)
	}
	defer func() { binRules[ir.SymPlus] = orig }()

	ev := New()
	sum := bin(lit(ir.Int(2)), ir.Plus, lit(ir.Int(3)))

	v, err := ev.Eval(sum)
	require.NoError(t, err)
	assert.Equal(t, ir.Int(5), v)
	assert.Equal(t, 1, calls)

	// Same node: served from the cache, no rule invocation.
	v, err = ev.Eval(sum)
	require.NoError(t, err)
	assert.Equal(t, ir.Int(5), v)
	assert.Equal(t, 1, calls)

	// A structurally equal but distinct node is evaluated on its own:
	// memoization keys on identity, never on structure.
	other := bin(lit(ir.Int(2)), ir.Plus, lit(ir.Int(3)))
	v, err = ev.Eval(other)
	require.NoError(t, err)
	assert.Equal(t, ir.Int(5), v)
	assert.Equal(t, 2, calls)
}
