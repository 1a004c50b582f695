package diag

import (
	"sort"

	"fortio.org/safecast"
)

// Bag accumulates diagnostics up to a fixed capacity.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most max diagnostics.
func NewBag(max int) *Bag {
	capped, err := safecast.Conv[uint16](max)
	if err != nil {
		capped = ^uint16(0)
	}
	return &Bag{
		items: make([]Diagnostic, 0, capped),
		max:   capped,
	}
}

// Add appends a diagnostic, honoring the capacity limit. Returns false
// when the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any diagnostic has severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Len returns the number of collected diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the collected diagnostics. The slice aliases the bag's
// internal storage; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends every diagnostic of other, growing the capacity if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal, err := safecast.Conv[uint16](len(b.items) + len(other.items))
	if err != nil {
		newTotal = ^uint16(0)
	}
	if newTotal > b.max {
		b.max = newTotal
	}
	for _, d := range other.items {
		if len(b.items) >= int(b.max) {
			break
		}
		b.items = append(b.items, d)
	}
}

// Sort orders diagnostics by subprogram, severity (descending) and code
// for deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Subp != dj.Subp {
			return di.Subp < dj.Subp
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
