package check

import (
	"github.com/lumen-lang/lumen/common"
	"github.com/lumen-lang/lumen/diag"
	"github.com/lumen-lang/lumen/tree"
)

// IndexUsage describes one subscript access of a record type.
type IndexUsage struct {
	Method diag.AccessMethod
	// SetType is the assigned value's type for AccessSet.
	SetType tree.Type
	// Expected, when non-empty, supersedes the locally built addendum in
	// the report; the caller considers it more informative. It never
	// changes the verdict.
	Expected *diag.Addendum
}

// GetTypeOfIndexedRecord resolves obj[key] access against a record
// type. The second result is false when the access shape is not one
// this path handles (the caller falls through to generic indexing).
func (c *Checker) GetTypeOfIndexedRecord(node *tree.IndexExpr, ct *tree.ClassType, usage IndexUsage) (tree.Type, bool) {
	common.Assert(ct.IsRecord(), "record type expected")

	if len(node.Args) != 1 || node.Args[0].Name != "" || node.TrailingComma {
		return nil, false
	}

	indexType := c.Eval.GetTypeOfExpression(node.Args[0].Value)

	switch indexType.Category() {
	case tree.CategoryAny, tree.CategoryUnknown:
		c.Eval.SetTypeResultForNode(node, indexType)
		return indexType, true
	}

	entries := c.GetRecordEntries(ct, true)

	localAddendum := diag.NewAddendum()
	hasError := false
	allNotRequired := true

	recordError := func(msg string, notRequired bool) {
		localAddendum.AddMessage(msg)
		localAddendum.AddTextRange(node.Range())
		hasError = true
		if !notRequired {
			allNotRequired = false
		}
	}

	var result tree.Type = tree.NewUnknown()

	keyClass, isClass := indexType.(*tree.ClassType)
	switch {
	case isClass && keyClass.LiteralValue != nil:
		name, ok := keyClass.LiteralValue.(string)
		if !ok {
			recordError(diag.RecordKeyMustBeStringLiteral(c.Eval.PrintType(ct)), false)
			break
		}
		entry, ok := entries.Get(name)
		if !ok {
			recordError(diag.RecordFieldUndefined(name, c.Eval.PrintType(ct)), false)
			break
		}
		result = entry.ValueType

		switch usage.Method {
		case diag.AccessGet:
			if !entry.IsRequired && !entry.IsProvided && !tree.WithinTry(node) {
				recordError(diag.RecordKeyPossiblyMissing(name, c.Eval.PrintType(ct)), true)
			}
		case diag.AccessSet:
			if entry.IsReadOnly {
				recordError(diag.RecordKeyReadOnly(name, c.Eval.PrintType(ct)), false)
			}
			if usage.SetType != nil {
				subAddendum := localAddendum.CreateAddendum()
				if !c.Eval.AssignType(entry.ValueType, usage.SetType, subAddendum, nil, 0) {
					subAddendum.AddMessage(diag.TypeAssignmentMismatch(
						c.Eval.PrintType(usage.SetType),
						c.Eval.PrintType(entry.ValueType)))
					hasError = true
					allNotRequired = false
				}
			}
		case diag.AccessDel:
			if entry.IsRequired {
				recordError(diag.RecordKeyRequiredDeleted(name, c.Eval.PrintType(ct)), false)
			} else if entry.IsReadOnly {
				recordError(diag.RecordKeyReadOnly(name, c.Eval.PrintType(ct)), false)
			}
		default:
			panic("unreachable")
		}

	case isClass && keyClass.Name == "str":
		// a dynamic string key cannot be narrowed further
		result = tree.NewUnknown()

	default:
		recordError(diag.RecordKeyMustBeStringLiteral(c.Eval.PrintType(ct)), false)
	}

	if hasError {
		reported := localAddendum
		if usage.Expected != nil && !usage.Expected.IsEmpty() {
			reported = usage.Expected
		}
		rule := diag.RuleGeneral
		if allNotRequired {
			rule = diag.RuleRecordNotRequiredAccess
		}
		msg := diag.AccessError(usage.Method.String(), c.Eval.PrintType(ct))
		if !reported.IsEmpty() {
			msg += "\n" + reported.String()
		}
		c.Eval.AddDiagnostic(rule, msg, node)
	}

	c.Eval.SetTypeResultForNode(node, result)
	return result, true
}
