package diag

// Reporter is the minimal contract for receiving diagnostics from the
// extraction pipeline.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter collects reported diagnostics into a Bag.
type BagReporter struct {
	Bag *Bag
}

func (r BagReporter) Report(d Diagnostic) {
	r.Bag.Add(d)
}

// NopReporter discards every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
