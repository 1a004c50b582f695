package ir

import "basicir/internal/astx"

// StmtKind enumerates IR statement kinds.
type StmtKind uint8

const (
	// StmtAssign assigns an expression value to a variable.
	StmtAssign StmtKind = iota
	// StmtSplit is a nondeterministic choice among N >= 2 mutually
	// exclusive execution paths.
	StmtSplit
	// StmtLoop repeats its body a nondeterministic number of times.
	StmtLoop
	// StmtRead havocs a variable: assigns it an unconstrained value.
	StmtRead
	// StmtUse marks a variable as referenced at this point.
	StmtUse
	// StmtAssume declares an expression true from this point on this path.
	StmtAssume
	// StmtGoto transfers control to a label.
	StmtGoto
	// StmtLabel marks a jump target.
	StmtLabel
)

// String returns a human-readable name for the statement kind.
func (k StmtKind) String() string {
	switch k {
	case StmtAssign:
		return "Assign"
	case StmtSplit:
		return "Split"
	case StmtLoop:
		return "Loop"
	case StmtRead:
		return "Read"
	case StmtUse:
		return "Use"
	case StmtAssume:
		return "Assume"
	case StmtGoto:
		return "Goto"
	case StmtLabel:
		return "Label"
	default:
		return "Unknown"
	}
}

// Stmt represents an IR statement.
type Stmt struct {
	Kind StmtKind
	// Orig links back to the originating AST node, for diagnostics. May be
	// nil for synthesized statements.
	Orig astx.Node
	Data StmtData // Kind-specific payload
}

// StmtData is the interface for statement-specific data.
type StmtData interface {
	stmtData()
}

// AssignData holds data for StmtAssign.
type AssignData struct {
	Dest *Expr // always an ExprIdent
	Expr *Expr
}

func (AssignData) stmtData() {}

// SplitData holds data for StmtSplit. Branches are ordered and there are
// always at least two of them; binary if/else and short-circuit desugaring
// are the 2-branch special case.
type SplitData struct {
	Branches [][]*Stmt
}

func (SplitData) stmtData() {}

// LoopData holds data for StmtLoop.
type LoopData struct {
	Body []*Stmt
}

func (LoopData) stmtData() {}

// ReadData holds data for StmtRead.
type ReadData struct {
	Var *Expr // always an ExprIdent
}

func (ReadData) stmtData() {}

// UseData holds data for StmtUse. The lowering engine never emits Use, but
// downstream liveness consumers do.
type UseData struct {
	Var *Expr // always an ExprIdent
}

func (UseData) stmtData() {}

// AssumeData holds data for StmtAssume. Purpose tags why the assumption
// was synthesized; it is consumed by downstream checkers only.
type AssumeData struct {
	Expr    *Expr
	Purpose Purpose // nil for plain assumptions
}

func (AssumeData) stmtData() {}

// GotoData holds data for StmtGoto. Target is the label statement itself:
// every goto aiming at one label shares the same *Stmt.
type GotoData struct {
	Target *Stmt // always a StmtLabel
}

func (GotoData) stmtData() {}

// LabelData holds data for StmtLabel.
type LabelData struct {
	Name string
}

func (LabelData) stmtData() {}

// NewAssign builds an assignment statement.
func NewAssign(dest, expr *Expr, orig astx.Node) *Stmt {
	return &Stmt{Kind: StmtAssign, Orig: orig, Data: AssignData{Dest: dest, Expr: expr}}
}

// NewSplit builds a split statement over the given branches.
func NewSplit(branches [][]*Stmt, orig astx.Node) *Stmt {
	return &Stmt{Kind: StmtSplit, Orig: orig, Data: SplitData{Branches: branches}}
}

// NewLoop builds a nondeterministic loop statement.
func NewLoop(body []*Stmt, orig astx.Node) *Stmt {
	return &Stmt{Kind: StmtLoop, Orig: orig, Data: LoopData{Body: body}}
}

// NewRead builds a havoc statement.
func NewRead(v *Expr, orig astx.Node) *Stmt {
	return &Stmt{Kind: StmtRead, Orig: orig, Data: ReadData{Var: v}}
}

// NewUse builds a use statement.
func NewUse(v *Expr, orig astx.Node) *Stmt {
	return &Stmt{Kind: StmtUse, Orig: orig, Data: UseData{Var: v}}
}

// NewAssume builds an assumption statement.
func NewAssume(expr *Expr, purpose Purpose, orig astx.Node) *Stmt {
	return &Stmt{Kind: StmtAssume, Orig: orig, Data: AssumeData{Expr: expr, Purpose: purpose}}
}

// NewGoto builds a goto statement targeting the given label statement.
func NewGoto(label *Stmt, orig astx.Node) *Stmt {
	return &Stmt{Kind: StmtGoto, Orig: orig, Data: GotoData{Target: label}}
}

// NewLabel builds a label statement.
func NewLabel(name string, orig astx.Node) *Stmt {
	return &Stmt{Kind: StmtLabel, Orig: orig, Data: LabelData{Name: name}}
}
