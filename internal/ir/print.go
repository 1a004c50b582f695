package ir

import (
	"fmt"
	"io"
	"strings"
)

// Printer dumps IR to a human-readable text format. It is pure: the only
// effect is writing to w.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new IR printer.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Dump writes the program to the writer.
func Dump(w io.Writer, p *Program) error {
	return NewPrinter(w).PrintProgram(p)
}

// PrintProgram prints a complete program.
func (p *Printer) PrintProgram(prog *Program) error {
	p.printf("Program:\n")
	p.indent++
	p.printStmts(prog.Stmts)
	p.indent--
	return p.err
}

func (p *Printer) printStmts(stmts []*Stmt) {
	for _, st := range stmts {
		p.printStmt(st)
	}
}

func (p *Printer) printStmt(st *Stmt) {
	switch st.Kind {
	case StmtAssign:
		d := st.Data.(AssignData)
		p.printf("%s%s = %s\n", p.pad(), ExprString(d.Dest), ExprString(d.Expr))
	case StmtSplit:
		d := st.Data.(SplitData)
		p.printf("%ssplit:\n", p.pad())
		for i, branch := range d.Branches {
			if i > 0 {
				p.printf("%s|:\n", p.pad())
			}
			p.indent++
			p.printStmts(branch)
			p.indent--
		}
	case StmtLoop:
		d := st.Data.(LoopData)
		p.printf("%sloop:\n", p.pad())
		p.indent++
		p.printStmts(d.Body)
		p.indent--
	case StmtRead:
		d := st.Data.(ReadData)
		p.printf("%sread(%s)\n", p.pad(), ExprString(d.Var))
	case StmtUse:
		d := st.Data.(UseData)
		p.printf("%suse(%s)\n", p.pad(), ExprString(d.Var))
	case StmtAssume:
		d := st.Data.(AssumeData)
		p.printf("%sassume(%s)\n", p.pad(), ExprString(d.Expr))
	case StmtGoto:
		d := st.Data.(GotoData)
		p.printf("%sgoto %s\n", p.pad(), d.Target.Data.(LabelData).Name)
	case StmtLabel:
		d := st.Data.(LabelData)
		p.printf("%s%s:\n", p.pad(), d.Name)
	default:
		p.printf("%s<unknown stmt %d>\n", p.pad(), st.Kind)
	}
}

func (p *Printer) pad() string {
	return strings.Repeat("  ", p.indent)
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// ExprString renders an expression on one line.
func ExprString(e *Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ExprIdent:
		return e.Data.(IdentData).Var.Name
	case ExprLit:
		return e.Data.(LitData).Val.String()
	case ExprBin:
		d := e.Data.(BinData)
		return fmt.Sprintf("%s %s %s", ExprString(d.Lhs), d.Op, ExprString(d.Rhs))
	case ExprUn:
		d := e.Data.(UnData)
		if d.Operand != nil && d.Operand.Kind == ExprBin {
			return fmt.Sprintf("%s(%s)", d.Op, ExprString(d.Operand))
		}
		return fmt.Sprintf("%s%s", d.Op, ExprString(d.Operand))
	default:
		return fmt.Sprintf("<unknown expr %d>", e.Kind)
	}
}
