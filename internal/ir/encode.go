package ir

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotSchemaVersion is bumped whenever the snapshot layout changes.
const SnapshotSchemaVersion uint16 = 1

// Snapshot is a self-contained, serializable image of a Program. Type
// hints are recorded by display text and label targets by name, so a
// snapshot does not retain identity with the extraction context it came
// from; it is meant for downstream consumers and on-disk caching.
type Snapshot struct {
	Version uint16     `msgpack:"v"`
	Subp    string     `msgpack:"subp,omitempty"`
	Stmts   []StmtSnap `msgpack:"stmts"`
}

// StmtSnap mirrors Stmt with only one of the payload field groups set,
// according to Kind.
type StmtSnap struct {
	Kind StmtKind `msgpack:"k"`

	Dest     *ExprSnap    `msgpack:"dest,omitempty"`
	Expr     *ExprSnap    `msgpack:"expr,omitempty"`
	Var      *ExprSnap    `msgpack:"var,omitempty"`
	Branches [][]StmtSnap `msgpack:"br,omitempty"`
	Body     []StmtSnap   `msgpack:"body,omitempty"`
	Purpose  string       `msgpack:"why,omitempty"`
	Label    string       `msgpack:"label,omitempty"`
	Target   string       `msgpack:"to,omitempty"`
}

// ExprSnap mirrors Expr.
type ExprSnap struct {
	Kind ExprKind `msgpack:"k"`
	Type string   `msgpack:"t,omitempty"`

	Name      string     `msgpack:"name,omitempty"`
	Synthetic bool       `msgpack:"syn,omitempty"`
	Lit       *ValueSnap `msgpack:"lit,omitempty"`
	Op        string     `msgpack:"op,omitempty"`
	Lhs       *ExprSnap  `msgpack:"lhs,omitempty"`
	Rhs       *ExprSnap  `msgpack:"rhs,omitempty"`
	Operand   *ExprSnap  `msgpack:"x,omitempty"`
}

// ValueSnap mirrors Value.
type ValueSnap struct {
	Int   *int64     `msgpack:"i,omitempty"`
	Sym   string     `msgpack:"s,omitempty"`
	First *ValueSnap `msgpack:"lo,omitempty"`
	Last  *ValueSnap `msgpack:"hi,omitempty"`
}

// EncodeSnapshot writes a msgpack snapshot of the program to w.
func EncodeSnapshot(w io.Writer, p *Program) error {
	snap := MakeSnapshot(p)
	enc := msgpack.NewEncoder(w)
	return enc.Encode(snap)
}

// DecodeSnapshot reads a msgpack snapshot from r and validates its schema
// version.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	dec := msgpack.NewDecoder(r)
	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, err
	}
	if snap.Version != SnapshotSchemaVersion {
		return nil, fmt.Errorf("ir: snapshot schema version %d, want %d", snap.Version, SnapshotSchemaVersion)
	}
	return &snap, nil
}

// MakeSnapshot converts a program to its serializable image.
func MakeSnapshot(p *Program) *Snapshot {
	snap := &Snapshot{Version: SnapshotSchemaVersion}
	if p.Orig != nil {
		snap.Subp = p.Orig.Text()
	}
	snap.Stmts = snapStmts(p.Stmts)
	return snap
}

func snapStmts(stmts []*Stmt) []StmtSnap {
	out := make([]StmtSnap, 0, len(stmts))
	for _, st := range stmts {
		out = append(out, snapStmt(st))
	}
	return out
}

func snapStmt(st *Stmt) StmtSnap {
	s := StmtSnap{Kind: st.Kind}
	switch d := st.Data.(type) {
	case AssignData:
		s.Dest = snapExpr(d.Dest)
		s.Expr = snapExpr(d.Expr)
	case SplitData:
		s.Branches = make([][]StmtSnap, 0, len(d.Branches))
		for _, br := range d.Branches {
			s.Branches = append(s.Branches, snapStmts(br))
		}
	case LoopData:
		s.Body = snapStmts(d.Body)
	case ReadData:
		s.Var = snapExpr(d.Var)
	case UseData:
		s.Var = snapExpr(d.Var)
	case AssumeData:
		s.Expr = snapExpr(d.Expr)
		if d.Purpose != nil {
			s.Purpose = d.Purpose.String()
		}
	case GotoData:
		s.Target = d.Target.Data.(LabelData).Name
	case LabelData:
		s.Label = d.Name
	}
	return s
}

func snapExpr(e *Expr) *ExprSnap {
	if e == nil {
		return nil
	}
	s := &ExprSnap{Kind: e.Kind}
	if e.Type != nil {
		s.Type = e.Type.Text()
	}
	switch d := e.Data.(type) {
	case IdentData:
		s.Name = d.Var.Name
		s.Synthetic = d.Var.Purpose != nil
	case LitData:
		s.Lit = snapValue(d.Val)
	case BinData:
		s.Op = d.Op.String()
		s.Lhs = snapExpr(d.Lhs)
		s.Rhs = snapExpr(d.Rhs)
	case UnData:
		s.Op = d.Op.String()
		s.Operand = snapExpr(d.Operand)
	}
	return s
}

func snapValue(v Value) *ValueSnap {
	switch val := v.(type) {
	case Int:
		i := int64(val)
		return &ValueSnap{Int: &i}
	case Sym:
		return &ValueSnap{Sym: string(val)}
	case Range:
		return &ValueSnap{First: snapValue(val.First), Last: snapValue(val.Last)}
	default:
		return nil
	}
}
