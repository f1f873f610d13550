package check

import (
	"github.com/lumen-lang/lumen/diag"
	"github.com/lumen-lang/lumen/tree"
)

const defaultRecordName = "Record"

const inlineRecordName = "<record>"

// CreateRecordType synthesizes a structural record type from the
// functional form. Two syntaxes are accepted:
//
//	Point = Record("Point", {"x": int, "y": int}, total=False)
//	Point = Record("Point", x=int, y=int)
//
// Shape errors are reported and synthesis continues with best-effort
// defaults; a usable (possibly degraded) type is always returned.
func (c *Checker) CreateRecordType(errorNode *tree.CallExpr, recordClass *tree.ClassType, args []*tree.Argument) *tree.ClassType {
	className := defaultRecordName
	nameValid := false
	if len(args) > 0 && args[0].Name == "" {
		if lit, ok := args[0].Value.(*tree.StringLit); ok && lit.Value != "" {
			className = lit.Value
			nameValid = true
		} else {
			c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordFirstArgMustBeName(), errorNode)
		}
	} else {
		c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordFirstArgMustBeName(), errorNode)
	}

	classType := tree.NewClassType(className, tree.ClassRecord|tree.ClassSynthesized)
	classType.Details.BaseClasses = []tree.Type{recordClass}

	if len(args) >= 2 && args[1].Name == "" {
		c.createRecordFromDictForm(errorNode, classType, args)
	} else {
		c.createRecordFromKeywordForm(errorNode, classType, args)
	}

	if assign := tree.EnclosingAssignment(errorNode); assign != nil && nameValid {
		if target, ok := assign.Target.(*tree.NameExpr); ok && target.Value != className {
			c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordAssignedName(className, target.Value), errorNode)
		}
	}

	c.SynthesizeRecordMethods(errorNode, classType)
	c.Eval.SetTypeResultForNode(errorNode, classType)
	return classType
}

func (c *Checker) createRecordFromDictForm(errorNode *tree.CallExpr, classType *tree.ClassType, args []*tree.Argument) {
	if dictExpr, ok := args[1].Value.(*tree.DictExpr); ok {
		c.addRecordFieldsFromDict(classType, dictExpr)
	} else {
		c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordSecondArgMustBeDict(), errorNode)
	}

	for _, arg := range args[2:] {
		switch arg.Name {
		case "total":
			if lit, ok := arg.Value.(*tree.BoolLit); ok {
				if !lit.Value {
					classType.Flags |= tree.ClassRecordValuesOmittable
				}
			} else {
				c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordTotalParamInvalid(), errorNode)
			}
		default:
			c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordExtraArgs(arg.Name), errorNode)
		}
	}
}

func (c *Checker) createRecordFromKeywordForm(errorNode *tree.CallExpr, classType *tree.ClassType, args []*tree.Argument) {
	// a bare call has no field arguments to scan
	if len(args) == 0 {
		return
	}
	for _, arg := range args[1:] {
		switch {
		case arg.Name == "":
			c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordExtraArgs(arg.Name), errorNode)
		case arg.Name == "total":
			c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordTotalNotAllowed(), errorNode)
		default:
			c.addRecordField(classType, arg.Name, arg.Value, errorNode)
		}
	}
}

// CreateInlineRecordType synthesizes an unnamed record type directly
// from a mapping-literal type annotation. It skips name validation and
// is always sealed.
func (c *Checker) CreateInlineRecordType(errorNode *tree.DictExpr, recordClass *tree.ClassType) *tree.ClassType {
	classType := tree.NewClassType(inlineRecordName,
		tree.ClassRecord|tree.ClassRecordClosed|tree.ClassSynthesized)
	classType.Details.BaseClasses = []tree.Type{recordClass}

	c.addRecordFieldsFromDict(classType, errorNode)

	c.SynthesizeRecordMethods(errorNode, classType)
	c.Eval.SetTypeResultForNode(errorNode, classType)
	return classType
}

func (c *Checker) addRecordFieldsFromDict(classType *tree.ClassType, dictExpr *tree.DictExpr) {
	for _, item := range dictExpr.Items {
		key, ok := item.Key.(*tree.StringLit)
		if !ok || key.Value == "" {
			c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordKeyMustBeString(), item.Key)
			continue
		}
		c.addRecordField(classType, key.Value, item.Value, item.Key)
	}
}

// addRecordField declares one field. A repeated name is diagnosed and
// ignored, never overwritten.
func (c *Checker) addRecordField(classType *tree.ClassType, name string, typeExpr tree.Expr, errorNode tree.Node) {
	if classType.Details.Fields.Contains(name) {
		c.Eval.AddDiagnostic(diag.RuleGeneral, diag.RecordDuplicateField(name), errorNode)
		return
	}

	sym := tree.NewSymbol(name, tree.SymbolInstanceMember)
	sym.AddDecl(&tree.Declaration{
		Kind:       tree.DeclVariable,
		Node:       errorNode,
		Annotation: typeExpr,
	})
	classType.Details.Fields.Set(name, sym)
}
