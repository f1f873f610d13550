package check

import (
	"github.com/lumen-lang/lumen/diag"
	"github.com/lumen-lang/lumen/tree"
)

type AssignTypeFlags int

const (
	// AssignEnforceInvariance requires the source and destination types to
	// match exactly rather than covariantly.
	AssignEnforceInvariance AssignTypeFlags = 1 << iota
)

// Evaluator is the general type-inference engine this core collaborates
// with. The record core never walks expressions or emits diagnostics on
// its own; everything funnels through here.
type Evaluator interface {
	AddDiagnostic(rule diag.Rule, message string, node tree.Node)
	AssignType(dest, src tree.Type, addendum *diag.Addendum, typeVarCtx *TypeVarContext, flags AssignTypeFlags) bool
	GetBuiltInType(node tree.Node, name string) tree.Type
	GetTypingType(node tree.Node, name string) tree.Type
	GetEffectiveTypeOfSymbol(sym *tree.Symbol) tree.Type
	GetTypeOfExpression(expr tree.Expr) tree.Type
	PrintType(ty tree.Type) string
	SetTypeResultForNode(node tree.Node, ty tree.Type)
}
