package ir_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"basicir/internal/ir"
)

func TestSnapshotRoundTrip(t *testing.T) {
	prog := sampleProgram()

	var buf bytes.Buffer
	require.NoError(t, ir.EncodeSnapshot(&buf, prog))

	snap, err := ir.DecodeSnapshot(&buf)
	require.NoError(t, err)

	assert.Equal(t, ir.SnapshotSchemaVersion, snap.Version)
	require.Len(t, snap.Stmts, len(prog.Stmts))

	assert.Equal(t, ir.StmtRead, snap.Stmts[0].Kind)
	assert.Equal(t, "X", snap.Stmts[0].Var.Name)

	split := snap.Stmts[1]
	assert.Equal(t, ir.StmtSplit, split.Kind)
	require.Len(t, split.Branches, 2)
	assert.Equal(t, ir.StmtAssume, split.Branches[0][0].Kind)
	assert.Equal(t, ">", split.Branches[0][0].Expr.Op)

	assert.Equal(t, ir.StmtGoto, snap.Stmts[3].Kind)
	assert.Equal(t, "done", snap.Stmts[3].Target)
	assert.Equal(t, ir.StmtLabel, snap.Stmts[4].Kind)
	assert.Equal(t, "done", snap.Stmts[4].Label)
}

func TestSnapshotPurposeAndValues(t *testing.T) {
	p := ir.NewIdent(&ir.Variable{Name: "P"}, nil, nil)
	notNull := ir.NewBin(p, ir.Neq, ir.NewLit(ir.Null, nil, nil), nil, nil)
	prog := &ir.Program{Stmts: []*ir.Stmt{
		ir.NewAssume(notNull, ir.DerefCheck{Prefix: p}, nil),
	}}

	var buf bytes.Buffer
	require.NoError(t, ir.EncodeSnapshot(&buf, prog))
	snap, err := ir.DecodeSnapshot(&buf)
	require.NoError(t, err)

	require.Len(t, snap.Stmts, 1)
	assert.Equal(t, "deref-check", snap.Stmts[0].Purpose)
	require.NotNil(t, snap.Stmts[0].Expr.Rhs.Lit)
	assert.Equal(t, string(ir.Null), snap.Stmts[0].Expr.Rhs.Lit.Sym)
}

func TestSnapshotRejectsWrongVersion(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.Encode(&ir.Snapshot{Version: ir.SnapshotSchemaVersion + 1}))

	_, err := ir.DecodeSnapshot(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version")
}
