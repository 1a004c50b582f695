package lower

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"basicir/internal/astx"
	"basicir/internal/diag"
	"basicir/internal/ir"
	"basicir/internal/normalize"
)

// Result is the outcome of lowering one subprogram. Exactly one of
// Program and Err is set.
type Result struct {
	Subp    astx.SubpBody
	Program *ir.Program
	Err     error
}

// ExtractPrograms lowers and normalizes every subprogram of the unit.
//
// Subprograms are processed concurrently, up to jobs at a time (GOMAXPROCS
// when jobs <= 0); they share the context's evaluator, whose cache is
// safe for concurrent use. A failed subprogram yields a diagnostic and a
// Result with Err set, and does not stop its siblings; there is no partial
// IR. Results keep the unit's subprogram order. The returned error is only
// non-nil when ctx is canceled; subprograms skipped because of the
// cancellation carry the context's error in their Result and produce no
// diagnostic.
func ExtractPrograms(ctx context.Context, ec *Context, unit astx.Unit, jobs int) ([]Result, *diag.Bag, error) {
	subps := unit.Subprograms()
	results := make([]Result, len(subps))
	if len(subps) == 0 {
		return results, diag.NewBag(1), nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	norm := normalize.New(ec.ev, ec.std)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(subps)))

	for i, subp := range subps {
		i, subp := i, subp
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = Result{Subp: subp, Err: gctx.Err()}
				return gctx.Err()
			default:
			}

			prog, err := GenIR(ec, subp)
			if err == nil {
				norm.Program(prog)
			}
			results[i] = Result{Subp: subp, Program: prog, Err: err}
			return nil
		})
	}

	err := g.Wait()

	bag := diag.NewBag(len(subps))
	for i := range results {
		rerr := results[i].Err
		if rerr == nil || errors.Is(rerr, context.Canceled) || errors.Is(rerr, context.DeadlineExceeded) {
			continue
		}
		bag.Add(failureDiagnostic(results[i].Subp, rerr))
	}
	bag.Sort()

	return results, bag, err
}

func failureDiagnostic(subp astx.SubpBody, err error) diag.Diagnostic {
	code := diag.UnsupportedConstruct
	var staticity *StaticityError
	if errors.As(err, &staticity) {
		code = diag.StaticityViolation
	}
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Subp:     subp.Name(),
		Message:  err.Error(),
	}
}
