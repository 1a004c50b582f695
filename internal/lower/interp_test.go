package lower_test

import (
	"testing"

	"basicir/internal/ir"
)

// env maps variables to concrete values along one execution path.
type env map[*ir.Variable]ir.Value

func (e env) clone() env {
	out := make(env, len(e))
	for v, val := range e {
		out[v] = val
	}
	return out
}

// finalEnvs enumerates every feasible straight-line path through stmts:
// splits fork one path per branch, assumptions prune infeasible paths,
// assignments update the environment. Havocked variables must be seeded
// through start. Loops and gotos are outside what these tests interpret.
func finalEnvs(t *testing.T, stmts []*ir.Stmt, start env) []env {
	t.Helper()
	envs := []env{start.clone()}
	for _, st := range stmts {
		var next []env
		for _, cur := range envs {
			switch d := st.Data.(type) {
			case ir.AssignData:
				cur[d.Dest.Data.(ir.IdentData).Var] = evalIn(t, d.Expr, cur)
				next = append(next, cur)
			case ir.AssumeData:
				if ir.ToBool(evalIn(t, d.Expr, cur)) {
					next = append(next, cur)
				}
			case ir.SplitData:
				for _, branch := range d.Branches {
					next = append(next, finalEnvs(t, branch, cur)...)
				}
			case ir.ReadData:
				if _, ok := cur[d.Var.Data.(ir.IdentData).Var]; !ok {
					t.Fatalf("interp: read of unseeded variable %s", ir.ExprString(d.Var))
				}
				next = append(next, cur)
			case ir.UseData:
				next = append(next, cur)
			default:
				t.Fatalf("interp: statement kind %s not supported", st.Kind)
			}
		}
		envs = next
	}
	return envs
}

func evalIn(t *testing.T, e *ir.Expr, vars env) ir.Value {
	t.Helper()
	switch d := e.Data.(type) {
	case ir.LitData:
		return d.Val
	case ir.IdentData:
		val, ok := vars[d.Var]
		if !ok {
			t.Fatalf("interp: unbound variable %s", d.Var.Name)
		}
		return val
	case ir.BinData:
		lhs := evalIn(t, d.Lhs, vars)
		rhs := evalIn(t, d.Rhs, vars)
		switch d.Op.Sym() {
		case ir.SymAnd:
			return ir.FromBool(ir.ToBool(lhs) && ir.ToBool(rhs))
		case ir.SymOr:
			return ir.FromBool(ir.ToBool(lhs) || ir.ToBool(rhs))
		case ir.SymEq:
			return ir.FromBool(lhs == rhs)
		case ir.SymNeq:
			return ir.FromBool(lhs != rhs)
		case ir.SymLt:
			return ir.FromBool(lhs.(ir.Int) < rhs.(ir.Int))
		case ir.SymLe:
			return ir.FromBool(lhs.(ir.Int) <= rhs.(ir.Int))
		case ir.SymGe:
			return ir.FromBool(lhs.(ir.Int) >= rhs.(ir.Int))
		case ir.SymGt:
			return ir.FromBool(lhs.(ir.Int) > rhs.(ir.Int))
		case ir.SymPlus:
			return lhs.(ir.Int) + rhs.(ir.Int)
		case ir.SymMinus:
			return lhs.(ir.Int) - rhs.(ir.Int)
		}
	case ir.UnData:
		operand := evalIn(t, d.Operand, vars)
		switch d.Op.Sym() {
		case ir.SymNot:
			return ir.FromBool(!ir.ToBool(operand))
		case ir.SymNeg:
			return -operand.(ir.Int)
		}
	}
	t.Fatalf("interp: expression %s not supported", ir.ExprString(e))
	return nil
}
