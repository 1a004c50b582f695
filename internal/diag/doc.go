// Package diag defines the diagnostic model for extraction failures.
//
// Lowering is all-or-nothing per subprogram: a failed subprogram yields no
// IR, but its siblings in the same unit still do. The failure surfaces as
// a Diagnostic collected in a Bag, so callers can extract a whole unit and
// report every rejected subprogram at once.
//
// Package diag performs no formatting or IO; rendering lives in
// internal/diagfmt.
package diag
