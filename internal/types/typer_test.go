package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basicir/internal/astx"
	"basicir/internal/testkit"
	"basicir/internal/types"
)

func rangeDecl(name, first, last string) *testkit.TypeDecl {
	var lo astx.Expr = &testkit.IntLit{Txt: first}
	if first[0] == '-' {
		lo = &testkit.Un{Operator: astx.OpNeg, X: &testkit.IntLit{Txt: first[1:]}}
	}
	return &testkit.TypeDecl{
		Name:      name,
		RangeExpr: &testkit.Bin{Lhs: lo, Operator: astx.OpDoubleDot, Rhs: &testkit.IntLit{Txt: last}},
	}
}

func TestStandardTyper(t *testing.T) {
	std := testkit.NewStd()
	typer := types.Standard(std)

	tpe, ok := typer(std.Bool())
	require.True(t, ok)
	assert.Equal(t, types.Boolean{}, tpe)

	tpe, ok = typer(std.Int())
	require.True(t, ok)
	assert.Equal(t, types.IntRange{First: -(1 << 31), Last: 1<<31 - 1}, tpe)

	_, ok = typer(&testkit.TypeDecl{Name: "Opaque"})
	assert.False(t, ok)
}

func TestIntRangeDeclTyper(t *testing.T) {
	typer := types.IntRangeDecl()

	tpe, ok := typer(rangeDecl("Small", "1", "10"))
	require.True(t, ok)
	assert.Equal(t, types.IntRange{First: 1, Last: 10}, tpe)

	tpe, ok = typer(rangeDecl("Offset", "-5", "5"))
	require.True(t, ok)
	assert.Equal(t, types.IntRange{First: -5, Last: 5}, tpe)

	_, ok = typer(&testkit.TypeDecl{Name: "Opaque"})
	assert.False(t, ok)

	_, ok = typer(&testkit.TypeDecl{Name: "Color", Enum: []string{"Red"}})
	assert.False(t, ok)
}

func TestEnumDeclTyper(t *testing.T) {
	typer := types.EnumDecl()

	tpe, ok := typer(&testkit.TypeDecl{Name: "Color", Enum: []string{"Red", "Green", "Blue"}})
	require.True(t, ok)
	assert.Equal(t, types.Enum{Literals: []string{"Red", "Green", "Blue"}}, tpe)

	_, ok = typer(&testkit.TypeDecl{Name: "Opaque"})
	assert.False(t, ok)
}

func TestDefaultTyperComposition(t *testing.T) {
	std := testkit.NewStd()
	typer := types.Default(std)

	small := rangeDecl("Small", "0", "100")
	ptr := &testkit.TypeDecl{Name: "Small_Access", PointeeType: small}
	ptrPtr := &testkit.TypeDecl{Name: "Small_Access_Access", PointeeType: ptr}

	tpe, ok := typer(std.Bool())
	require.True(t, ok)
	assert.Equal(t, types.Boolean{}, tpe)

	tpe, ok = typer(small)
	require.True(t, ok)
	assert.Equal(t, types.IntRange{First: 0, Last: 100}, tpe)

	// Access types recurse through the whole composition, including
	// other access types.
	tpe, ok = typer(ptr)
	require.True(t, ok)
	assert.Equal(t, types.Pointer{Elem: types.IntRange{First: 0, Last: 100}}, tpe)

	tpe, ok = typer(ptrPtr)
	require.True(t, ok)
	assert.Equal(t, types.Pointer{Elem: types.Pointer{Elem: types.IntRange{First: 0, Last: 100}}}, tpe)

	_, ok = typer(&testkit.TypeDecl{Name: "Opaque"})
	assert.False(t, ok)

	_, ok = typer(&testkit.TypeDecl{Name: "Opaque_Access", PointeeType: &testkit.TypeDecl{Name: "Opaque"}})
	assert.False(t, ok)
}
