package check

import (
	"github.com/lumen-lang/lumen/common"
	"github.com/lumen-lang/lumen/diag"
	"github.com/lumen-lang/lumen/tree"
)

// AssignRecordToRecord reports whether src is structurally assignable to
// dest. Field checks are independent: every failure lands in the
// addendum, and the verdict is the conjunction.
func (c *Checker) AssignRecordToRecord(dest, src *tree.ClassType, addendum *diag.Addendum, ctx *TypeVarContext, flags AssignTypeFlags) bool {
	common.Assert(dest.IsRecord() && src.IsRecord(), "record types expected")

	destEntries := c.GetRecordEntries(dest, false)
	srcEntries := c.GetRecordEntries(src, true)

	AssignPrintf("assign %v <- %v\n", dest, src)

	result := true
	for _, name := range destEntries.Keys() {
		destEntry, _ := destEntries.Get(name)
		srcEntry, ok := srcEntries.Get(name)

		if !ok {
			// A missing field is tolerable only through an optional
			// read-only view; it then reads as the top object type.
			if destEntry.IsRequired || !destEntry.IsReadOnly {
				if addendum != nil {
					addendum.CreateAddendum().AddMessage(
						diag.RecordFieldMissing(name, c.Eval.PrintType(src)))
				}
				result = false
			}
			continue
		}

		if srcEntry.IsRequired != destEntry.IsRequired && !destEntry.IsReadOnly {
			if addendum != nil {
				msg := diag.RecordFieldRequired(name, c.Eval.PrintType(dest))
				if !destEntry.IsRequired {
					msg = diag.RecordFieldNotRequired(name, c.Eval.PrintType(dest))
				}
				addendum.CreateAddendum().AddMessage(msg)
			}
			result = false
			continue
		}

		if srcEntry.IsReadOnly && !destEntry.IsReadOnly {
			if addendum != nil {
				addendum.CreateAddendum().AddMessage(
					diag.RecordFieldReadOnly(name, c.Eval.PrintType(src)))
			}
			result = false
			continue
		}

		subFlags := flags
		if !destEntry.IsReadOnly {
			// writing through dest must not observe a narrower src type
			subFlags |= AssignEnforceInvariance
		}
		var subAddendum *diag.Addendum
		if addendum != nil {
			subAddendum = addendum.CreateAddendum()
		}
		if !c.Eval.AssignType(destEntry.ValueType, srcEntry.ValueType, subAddendum, ctx, subFlags) {
			if subAddendum != nil {
				subAddendum.AddMessage(diag.RecordFieldTypeMismatch(name,
					c.Eval.PrintType(srcEntry.ValueType),
					c.Eval.PrintType(destEntry.ValueType)))
			}
			result = false
		}
	}

	return result
}

// KeyValuePair is one provided key/value of a record construction.
type KeyValuePair struct {
	KeyType   tree.Type
	ValueType tree.Type
	Node      tree.Node
}

// AssignToRecord validates a concrete key/value set against a record
// type. Checking continues across all keys so every problem surfaces in
// the addendum. On success the returned type carries narrowed entries
// for any provided non-required key.
func (c *Checker) AssignToRecord(ct *tree.ClassType, pairs []*KeyValuePair, addendum *diag.Addendum) (*tree.ClassType, bool) {
	common.Assert(ct.IsRecord(), "record type expected")

	entries := c.GetRecordEntries(ct, false)

	narrowed := map[string]*tree.Entry{}
	provided := common.NewSet[string]()
	matched := true

	for _, pair := range pairs {
		keyClass, ok := pair.KeyType.(*tree.ClassType)
		if !ok || keyClass.LiteralValue == nil {
			if addendum != nil {
				addendum.CreateAddendum().AddMessage(
					diag.RecordKeyMustBeStringLiteral(c.Eval.PrintType(ct)))
			}
			matched = false
			continue
		}
		name, ok := keyClass.LiteralValue.(string)
		if !ok {
			matched = false
			continue
		}

		entry, ok := entries.Get(name)
		if !ok {
			if addendum != nil {
				addendum.CreateAddendum().AddMessage(
					diag.RecordFieldUndefined(name, c.Eval.PrintType(ct)))
			}
			matched = false
			continue
		}
		provided.Add(name)

		var subAddendum *diag.Addendum
		if addendum != nil {
			subAddendum = addendum.CreateAddendum()
		}
		if !c.Eval.AssignType(entry.ValueType, pair.ValueType, subAddendum, nil, 0) {
			if subAddendum != nil {
				subAddendum.AddMessage(diag.RecordFieldTypeMismatch(name,
					c.Eval.PrintType(pair.ValueType),
					c.Eval.PrintType(entry.ValueType)))
			}
			matched = false
			continue
		}

		if !entry.IsRequired {
			narrowed[name] = &tree.Entry{
				ValueType:  pair.ValueType,
				IsRequired: entry.IsRequired,
				IsReadOnly: entry.IsReadOnly,
				IsProvided: true,
			}
		}
	}

	for _, name := range entries.Keys() {
		entry, _ := entries.Get(name)
		if entry.IsRequired && !provided.Contains(name) {
			if addendum != nil {
				addendum.CreateAddendum().AddMessage(
					diag.RecordFieldRequired(name, c.Eval.PrintType(ct)))
			}
			matched = false
		}
	}

	if !matched {
		return nil, false
	}

	if len(narrowed) > 0 {
		clone := ct.CloneForNarrowedEntries()
		for name, entry := range narrowed {
			clone.NarrowedEntries[name] = entry
		}
		return clone, true
	}
	return ct, true
}
