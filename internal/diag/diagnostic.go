package diag

// Note adds secondary context to a diagnostic. Each note should add new
// information rather than repeat the diagnostic message.
type Note struct {
	Msg string
}

// Diagnostic is one extraction finding, attached to a subprogram.
type Diagnostic struct {
	Severity Severity
	Code     Code
	// Subp is the name of the subprogram the finding belongs to.
	Subp    string
	Message string
	Notes   []Note
}

// WithNote returns a copy of the diagnostic with an extra note appended.
func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], Note{Msg: msg})
	return d
}
