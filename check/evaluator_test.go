package check

import (
	"fmt"

	"github.com/lumen-lang/lumen/diag"
	"github.com/lumen-lang/lumen/tree"
)

// testEvaluator is a minimal stand-in for the general type-inference
// engine: enough assignability and expression typing to drive the
// record core.
type testEvaluator struct {
	checker  *Checker
	builtins map[string]tree.Type
	typing   map[string]tree.Type
	typeVars map[string]tree.Type

	diags       []testDiag
	typeResults map[tree.Node]tree.Type
}

type testDiag struct {
	Rule    diag.Rule
	Message string
}

func newTestSetup() (*Checker, *testEvaluator) {
	ev := &testEvaluator{
		builtins:    map[string]tree.Type{},
		typing:      map[string]tree.Type{},
		typeVars:    map[string]tree.Type{},
		typeResults: map[tree.Node]tree.Type{},
	}
	for _, name := range []string{"str", "int", "float", "bool", "None", "object", "tuple"} {
		ev.builtins[name] = tree.NewClassType(name, 0)
	}
	ev.typing["Iterable"] = tree.NewClassType("Iterable", 0)

	checker := NewChecker(ev)
	ev.checker = checker
	return checker, ev
}

func (e *testEvaluator) builtinClass(name string) *tree.ClassType {
	return e.builtins[name].(*tree.ClassType)
}

func (e *testEvaluator) strLiteral(value string) *tree.ClassType {
	return e.builtinClass("str").CloneWithLiteral(value)
}

func (e *testEvaluator) AddDiagnostic(rule diag.Rule, message string, node tree.Node) {
	e.diags = append(e.diags, testDiag{Rule: rule, Message: message})
}

func (e *testEvaluator) AssignType(dest, src tree.Type, addendum *diag.Addendum, ctx *TypeVarContext, flags AssignTypeFlags) bool {
	switch dest.Category() {
	case tree.CategoryAny, tree.CategoryUnknown:
		return true
	}
	switch src.Category() {
	case tree.CategoryAny, tree.CategoryUnknown, tree.CategoryNever:
		return true
	}

	if destUnion, ok := dest.(*tree.UnionType); ok {
		for _, sub := range destUnion.Subtypes {
			if e.AssignType(sub, src, nil, ctx, flags) {
				return true
			}
		}
		return false
	}

	destClass, okDest := dest.(*tree.ClassType)
	srcClass, okSrc := src.(*tree.ClassType)
	if !okDest || !okSrc {
		return false
	}

	if destClass.IsRecord() && srcClass.IsRecord() {
		return e.checker.AssignRecordToRecord(destClass, srcClass, addendum, ctx, flags)
	}

	if flags&AssignEnforceInvariance != 0 || destClass.LiteralValue != nil {
		return destClass.Details == srcClass.Details && destClass.LiteralValue == srcClass.LiteralValue
	}
	return isSubclass(srcClass, destClass)
}

func isSubclass(src, dest *tree.ClassType) bool {
	if src.Details == dest.Details {
		return true
	}
	for _, base := range src.Details.BaseClasses {
		if baseClass, ok := base.(*tree.ClassType); ok && isSubclass(baseClass, dest) {
			return true
		}
	}
	return false
}

func (e *testEvaluator) GetBuiltInType(node tree.Node, name string) tree.Type {
	if ty, ok := e.builtins[name]; ok {
		return ty
	}
	return tree.NewUnknown()
}

func (e *testEvaluator) GetTypingType(node tree.Node, name string) tree.Type {
	if ty, ok := e.typing[name]; ok {
		return ty
	}
	return tree.NewUnknown()
}

func (e *testEvaluator) GetEffectiveTypeOfSymbol(sym *tree.Symbol) tree.Type {
	if sym.SynthesizedType != nil {
		return sym.SynthesizedType
	}
	decl := sym.LastDecl()
	if decl == nil || decl.Annotation == nil {
		return tree.NewUnknown()
	}
	return e.typeOfAnnotation(decl.Annotation)
}

func (e *testEvaluator) typeOfAnnotation(expr tree.Expr) tree.Type {
	switch expr := expr.(type) {
	case *tree.NameExpr:
		if ty, ok := e.builtins[expr.Value]; ok {
			return ty
		}
		if ty, ok := e.typeVars[expr.Value]; ok {
			return ty
		}
		return tree.NewUnknown()
	case *tree.IndexExpr:
		if name, ok := expr.Base.(*tree.NameExpr); ok {
			switch name.Value {
			case "Required", "NotRequired", "ReadOnly":
				if len(expr.Args) > 0 {
					return e.typeOfAnnotation(expr.Args[0].Value)
				}
			}
		}
		return tree.NewUnknown()
	default:
		return tree.NewUnknown()
	}
}

func (e *testEvaluator) GetTypeOfExpression(expr tree.Expr) tree.Type {
	switch expr := expr.(type) {
	case *tree.StringLit:
		return e.strLiteral(expr.Value)
	case *tree.NameExpr:
		return e.typeOfAnnotation(expr)
	default:
		return tree.NewUnknown()
	}
}

func (e *testEvaluator) PrintType(ty tree.Type) string {
	return fmt.Sprintf("%v", ty)
}

func (e *testEvaluator) SetTypeResultForNode(node tree.Node, ty tree.Type) {
	e.typeResults[node] = ty
}

func (e *testEvaluator) diagMessages() []string {
	msgs := make([]string, 0, len(e.diags))
	for _, d := range e.diags {
		msgs = append(msgs, d.Message)
	}
	return msgs
}

// ========================

func nameExpr(value string) *tree.NameExpr {
	return &tree.NameExpr{Value: value}
}

func strLit(value string) *tree.StringLit {
	return &tree.StringLit{Value: value}
}

func modifierExpr(modifier string, inner tree.Expr) *tree.IndexExpr {
	return &tree.IndexExpr{
		Base: nameExpr(modifier),
		Args: []*tree.Argument{{Value: inner}},
	}
}

func newTestRecord(name string, flags tree.ClassFlags) *tree.ClassType {
	return tree.NewClassType(name, tree.ClassRecord|flags)
}

func addTestField(ct *tree.ClassType, name string, annotation tree.Expr) {
	sym := tree.NewSymbol(name, tree.SymbolInstanceMember)
	sym.AddDecl(&tree.Declaration{Kind: tree.DeclVariable, Annotation: annotation})
	ct.Details.Fields.Set(name, sym)
}

func indexNode(key string) *tree.IndexExpr {
	return &tree.IndexExpr{
		Base: nameExpr("obj"),
		Args: []*tree.Argument{{Value: strLit(key)}},
	}
}
