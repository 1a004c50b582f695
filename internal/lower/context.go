package lower

import (
	"basicir/internal/astx"
	"basicir/internal/eval"
)

// Context is an extraction context. Programs extracted with the same
// context share standard type handles and one constant-evaluator cache,
// so their IR is mutually compatible. The context must outlive every
// program extracted with it.
type Context struct {
	std astx.StdTypes
	ev  *eval.Evaluator
}

// NewContext creates an extraction context over the given standard types.
func NewContext(std astx.StdTypes) *Context {
	return &Context{std: std, ev: eval.New()}
}

// Std returns the standard type handles.
func (c *Context) Std() astx.StdTypes { return c.std }

// Evaluator returns the shared constant evaluator.
func (c *Context) Evaluator() *eval.Evaluator { return c.ev }
