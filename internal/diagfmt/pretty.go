// Package diagfmt renders diagnostics for humans. It owns all formatting
// concerns so package diag can stay a pure data model.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"basicir/internal/diag"
)

// PrettyOpts configures Pretty output.
type PrettyOpts struct {
	// Color enables ANSI color codes regardless of terminal detection.
	Color bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	subpColor = color.New(color.Bold)
)

// Pretty writes one line per diagnostic, plus indented notes:
//
//	<subprogram>: <SEV> <CODE>: <message>
//	    note: <note>
//
// Call bag.Sort() first for deterministic output.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
			fmt.Fprintf(w, "%s: %s %s: %s\n", subpColor.Sprint(d.Subp), sev, d.Code, d.Message)
		} else {
			fmt.Fprintf(w, "%s: %s %s: %s\n", d.Subp, sev, d.Code, d.Message)
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "    note: %s\n", n.Msg)
		}
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
