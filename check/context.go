package check

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumen/tree"
)

// TypeVarContext maps generic placeholders to concrete types. Applying it
// produces specialized views; it is never cached on a type.
type TypeVarContext struct {
	solutions map[string]tree.Type
	order     []string
}

func NewTypeVarContext() *TypeVarContext {
	return &TypeVarContext{solutions: map[string]tree.Type{}}
}

func (c *TypeVarContext) SetTypeVar(name string, ty tree.Type) {
	if _, ok := c.solutions[name]; !ok {
		c.order = append(c.order, name)
	}
	c.solutions[name] = ty
}

func (c *TypeVarContext) TypeVar(name string) (tree.Type, bool) {
	ty, ok := c.solutions[name]
	return ty, ok
}

func (c *TypeVarContext) IsEmpty() bool {
	return c == nil || len(c.solutions) == 0
}

func (c *TypeVarContext) String() string {
	parts := make([]string, 0, len(c.order))
	for _, name := range c.order {
		parts = append(parts, fmt.Sprintf("%v -> %v", name, c.solutions[name]))
	}
	return fmt.Sprintf("{{ %v }}", strings.Join(parts, " ; "))
}

// TypeVarContextForClass builds the substitution context binding a
// specialized class's type parameters to its type arguments. Parameters
// without a matching argument map to Unknown. Returns nil for an
// unspecialized class.
func TypeVarContextForClass(ct *tree.ClassType) *TypeVarContext {
	if len(ct.TypeArgs) == 0 || len(ct.Details.TypeParams) == 0 {
		return nil
	}
	ctx := NewTypeVarContext()
	for i, param := range ct.Details.TypeParams {
		if i < len(ct.TypeArgs) {
			ctx.SetTypeVar(param.Name, ct.TypeArgs[i])
		} else {
			ctx.SetTypeVar(param.Name, tree.NewUnknown())
		}
	}
	return ctx
}
