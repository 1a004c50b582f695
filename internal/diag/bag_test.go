package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basicir/internal/diag"
)

func TestBagCapacity(t *testing.T) {
	bag := diag.NewBag(2)
	assert.True(t, bag.Add(diag.Diagnostic{Severity: diag.SevInfo, Subp: "P1"}))
	assert.True(t, bag.Add(diag.Diagnostic{Severity: diag.SevInfo, Subp: "P2"}))
	assert.False(t, bag.Add(diag.Diagnostic{Severity: diag.SevError, Subp: "P3"}))
	assert.Equal(t, 2, bag.Len())
	assert.False(t, bag.HasErrors())
}

func TestBagHasErrors(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Subp: "P"})
	assert.False(t, bag.HasErrors())
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Subp: "P"})
	assert.True(t, bag.HasErrors())
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.Diagnostic{Severity: diag.SevInfo, Subp: "A"})

	b := diag.NewBag(2)
	b.Add(diag.Diagnostic{Severity: diag.SevError, Subp: "B1"})
	b.Add(diag.Diagnostic{Severity: diag.SevError, Subp: "B2"})

	a.Merge(b)
	require.Equal(t, 3, a.Len())
	assert.True(t, a.HasErrors())
	assert.Equal(t, "B2", a.Items()[2].Subp)
}

func TestBagSortOrder(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{Severity: diag.SevInfo, Code: diag.NotConstant, Subp: "Q"})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.StaticityViolation, Subp: "P"})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.UnsupportedConstruct, Subp: "Q"})
	bag.Add(diag.Diagnostic{Severity: diag.SevInfo, Code: diag.NotConstant, Subp: "P"})

	bag.Sort()

	items := bag.Items()
	require.Len(t, items, 4)
	// Grouped by subprogram, errors before infos, then by code.
	assert.Equal(t, "P", items[0].Subp)
	assert.Equal(t, diag.StaticityViolation, items[0].Code)
	assert.Equal(t, "P", items[1].Subp)
	assert.Equal(t, diag.SevInfo, items[1].Severity)
	assert.Equal(t, "Q", items[2].Subp)
	assert.Equal(t, diag.UnsupportedConstruct, items[2].Code)
	assert.Equal(t, "Q", items[3].Subp)
	assert.Equal(t, diag.NotConstant, items[3].Code)
}

func TestBagReporter(t *testing.T) {
	bag := diag.NewBag(4)
	var r diag.Reporter = diag.BagReporter{Bag: bag}
	r.Report(diag.Diagnostic{Severity: diag.SevError, Subp: "P", Message: "rejected"})

	require.Equal(t, 1, bag.Len())
	assert.Equal(t, "rejected", bag.Items()[0].Message)

	// NopReporter satisfies the same contract and keeps nothing.
	diag.NopReporter{}.Report(diag.Diagnostic{Severity: diag.SevError})
}

func TestWithNoteDoesNotAliasNotes(t *testing.T) {
	base := diag.Diagnostic{Severity: diag.SevError, Subp: "P", Message: "bad"}
	first := base.WithNote("first")
	second := base.WithNote("second")

	require.Len(t, first.Notes, 1)
	require.Len(t, second.Notes, 1)
	assert.Equal(t, "first", first.Notes[0].Msg)
	assert.Equal(t, "second", second.Notes[0].Msg)
	assert.Empty(t, base.Notes)
}
