package testkit

import (
	"fmt"

	"basicir/internal/astx"
)

// Assign implements astx.AssignStmt.
type Assign struct {
	astx.StmtMarker
	Dst *Ident
	Val astx.Expr
}

func (s *Assign) Kind() astx.Kind  { return astx.KindAssignStmt }
func (s *Assign) Text() string     { return fmt.Sprintf("%s := %s", s.Dst.Text(), s.Val.Text()) }
func (s *Assign) Dest() astx.Ident { return s.Dst }
func (s *Assign) Value() astx.Expr { return s.Val }

// If implements astx.IfStmt.
type If struct {
	astx.StmtMarker
	C astx.Expr
	T []astx.Stmt
	E []astx.Stmt
}

func (s *If) Kind() astx.Kind   { return astx.KindIfStmt }
func (s *If) Text() string      { return "if " + s.C.Text() }
func (s *If) Cond() astx.Expr   { return s.C }
func (s *If) Then() []astx.Stmt { return s.T }
func (s *If) Else() []astx.Stmt { return s.E }

// Case implements astx.CaseStmt.
type Case struct {
	astx.StmtMarker
	Sel  astx.Expr
	Alts []*CaseAlt
}

func (s *Case) Kind() astx.Kind { return astx.KindCaseStmt }
func (s *Case) Text() string    { return "case " + s.Sel.Text() }

func (s *Case) Selector() astx.Expr { return s.Sel }

func (s *Case) Alternatives() []astx.CaseAlt {
	out := make([]astx.CaseAlt, len(s.Alts))
	for i, a := range s.Alts {
		out[i] = a
	}
	return out
}

// CaseAlt implements astx.CaseAlt.
type CaseAlt struct {
	Ch   []astx.Expr
	Body []astx.Stmt
}

func (a *CaseAlt) Kind() astx.Kind      { return astx.KindCaseAlt }
func (a *CaseAlt) Text() string         { return "when" }
func (a *CaseAlt) Choices() []astx.Expr { return a.Ch }
func (a *CaseAlt) Stmts() []astx.Stmt   { return a.Body }

// Loop implements astx.LoopStmt.
type Loop struct {
	astx.StmtMarker
	B []astx.Stmt
}

func (s *Loop) Kind() astx.Kind   { return astx.KindLoopStmt }
func (s *Loop) Text() string      { return "loop" }
func (s *Loop) Body() []astx.Stmt { return s.B }

// While implements astx.WhileLoopStmt.
type While struct {
	astx.StmtMarker
	C astx.Expr
	B []astx.Stmt
}

func (s *While) Kind() astx.Kind   { return astx.KindWhileLoopStmt }
func (s *While) Text() string      { return "while " + s.C.Text() }
func (s *While) Cond() astx.Expr   { return s.C }
func (s *While) Body() []astx.Stmt { return s.B }

// For implements astx.ForLoopStmt.
type For struct {
	astx.StmtMarker
	B []astx.Stmt
}

func (s *For) Kind() astx.Kind   { return astx.KindForLoopStmt }
func (s *For) Text() string      { return "for" }
func (s *For) Body() []astx.Stmt { return s.B }

// LabelSt implements astx.LabelStmt.
type LabelSt struct {
	astx.StmtMarker
	L *LabelDecl
}

func (s *LabelSt) Kind() astx.Kind       { return astx.KindLabelStmt }
func (s *LabelSt) Text() string          { return "<<" + s.L.Nm + ">>" }
func (s *LabelSt) Label() astx.LabelDecl { return s.L }

// Goto implements astx.GotoStmt.
type Goto struct {
	astx.StmtMarker
	L *LabelDecl
}

func (s *Goto) Kind() astx.Kind        { return astx.KindGotoStmt }
func (s *Goto) Text() string           { return "goto " + s.L.Nm }
func (s *Goto) Target() astx.LabelDecl { return s.L }

// Named implements astx.NamedStmt.
type Named struct {
	astx.StmtMarker
	Nm string
	S  astx.Stmt
}

func (s *Named) Kind() astx.Kind  { return astx.KindNamedStmt }
func (s *Named) Text() string     { return s.Nm + ": " + s.S.Text() }
func (s *Named) Inner() astx.Stmt { return s.S }

// Exit implements astx.ExitStmt. LoopNode is nil for an unnamed exit and
// C is nil for an unconditional one.
type Exit struct {
	astx.StmtMarker
	LoopNode astx.Stmt
	C        astx.Expr
}

func (s *Exit) Kind() astx.Kind { return astx.KindExitStmt }

func (s *Exit) Text() string {
	if s.C != nil {
		return "exit when " + s.C.Text()
	}
	return "exit"
}

func (s *Exit) Loop() astx.Stmt { return s.LoopNode }
func (s *Exit) Cond() astx.Expr { return s.C }
