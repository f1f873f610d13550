package check

import (
	"github.com/lumen-lang/lumen/algos"
	"github.com/lumen-lang/lumen/common"
	"github.com/lumen-lang/lumen/tree"
)

// maxEntriesDepth bounds the base-class merge. Exceeding it stops
// descending; it never fails the resolution.
const maxEntriesDepth = 16

type EntryMap = common.OrderedMap[string, *tree.Entry]

// GetRecordEntries returns the flattened, specialized field table of a
// record type. The unspecialized table is computed once and memoized on
// the canonical class details; type-argument substitution and the
// partial-view projection are applied freshly per call. When
// allowNarrowed is set, per-binding narrowed entries overlay the result.
func (c *Checker) GetRecordEntries(ct *tree.ClassType, allowNarrowed bool) *EntryMap {
	common.Assert(ct.IsRecord(), "record type expected")

	canonical := ct.Details.ResolvedEntries
	if canonical == nil {
		if cycle := c.recordBaseCycle(ct); cycle != nil {
			EntriesPrintf("cyclic base-class chain at %v\n", ct.Name)
		}
		canonical = common.NewOrderedMap[string, *tree.Entry]()
		c.resolveRecordEntries(ct, canonical, common.NewSet[*tree.ClassDetails](), 0)
		ct.Details.ResolvedEntries = canonical
	}

	ctx := TypeVarContextForClass(ct)

	result := common.NewOrderedMap[string, *tree.Entry]()
	canonical.Iter(func(name string, entry *tree.Entry) {
		next := entry.Clone()
		if ctx != nil {
			next.ValueType = c.ApplySubst(next.ValueType, ctx)
		}
		if ct.IsPartialView() {
			// Bulk-update payloads may omit anything, must not write
			// through, and may never carry a read-only field.
			next.IsRequired = false
			if next.IsReadOnly {
				next.ValueType = tree.NewNever()
			} else {
				next.IsReadOnly = true
			}
		}
		result.Set(name, next)
	})

	if allowNarrowed && len(ct.NarrowedEntries) > 0 {
		for _, name := range result.Keys() {
			if narrowed, ok := ct.NarrowedEntries[name]; ok {
				result.Set(name, narrowed.Clone())
			}
		}
	}

	return result
}

// resolveRecordEntries merges base-class fields beneath the type's own
// fields, depth-first and base-first so derived declarations shadow
// inherited ones by name.
func (c *Checker) resolveRecordEntries(ct *tree.ClassType, entries *EntryMap, seen common.Set[*tree.ClassDetails], depth int) {
	if depth > maxEntriesDepth {
		return
	}
	if seen.Contains(ct.Details) {
		return
	}
	seen.Add(ct.Details)

	for _, base := range ct.Details.BaseClasses {
		baseClass, ok := base.(*tree.ClassType)
		if !ok || !baseClass.IsRecord() {
			continue
		}
		baseEntries := common.NewOrderedMap[string, *tree.Entry]()
		c.resolveRecordEntries(baseClass, baseEntries, seen, depth+1)

		baseCtx := TypeVarContextForClass(baseClass)
		baseEntries.Iter(func(name string, entry *tree.Entry) {
			next := entry.Clone()
			if baseCtx != nil {
				next.ValueType = c.ApplySubst(next.ValueType, baseCtx)
			}
			entries.Set(name, next)
		})
	}

	ct.Details.Fields.Iter(func(name string, sym *tree.Symbol) {
		if !sym.IsVariable() {
			return
		}
		if sym.Flags&tree.SymbolIgnoredForProtocolMatch != 0 {
			return
		}

		mods := classifyEntryModifiers(sym.LastDecl())
		required := !ct.ValuesOmittable()
		if mods.required != nil {
			required = *mods.required
		}

		entries.Set(name, &tree.Entry{
			ValueType:  c.Eval.GetEffectiveTypeOfSymbol(sym),
			IsRequired: required,
			IsReadOnly: mods.readOnly,
		})
	})
}

// entryModifiers is the classification of a field's annotation
// modifiers. A nil required means no explicit Required/NotRequired and
// the owning type's default applies.
type entryModifiers struct {
	required *bool
	readOnly bool
}

// classifyEntryModifiers scans an annotation expression for
// Required[...], NotRequired[...] and ReadOnly[...] wrappers, which may
// nest. The outermost Required/NotRequired wins.
func classifyEntryModifiers(decl *tree.Declaration) entryModifiers {
	var mods entryModifiers
	if decl == nil || decl.Annotation == nil {
		return mods
	}

	ann := decl.Annotation
	for {
		idx, ok := ann.(*tree.IndexExpr)
		if !ok {
			return mods
		}
		name, ok := idx.Base.(*tree.NameExpr)
		if !ok {
			return mods
		}
		switch name.Value {
		case "Required":
			if mods.required == nil {
				mods.required = common.Ptr(true)
			}
		case "NotRequired":
			if mods.required == nil {
				mods.required = common.Ptr(false)
			}
		case "ReadOnly":
			mods.readOnly = true
		default:
			return mods
		}
		if len(idx.Args) == 0 {
			return mods
		}
		ann = idx.Args[0].Value
	}
}

// recordBaseCycle returns one representative per cycle in the record
// base-class graph, or nil when the graph is acyclic. Resolution
// tolerates cycles either way; this only surfaces them for debugging.
func (c *Checker) recordBaseCycle(ct *tree.ClassType) []*tree.ClassType {
	nodes := common.NewMap[*tree.ClassDetails, *tree.ClassType]()

	var collect func(t *tree.ClassType)
	collect = func(t *tree.ClassType) {
		if nodes.Contains(t.Details) {
			return
		}
		nodes.Add(t.Details, t)
		for _, base := range t.Details.BaseClasses {
			if baseClass, ok := base.(*tree.ClassType); ok && baseClass.IsRecord() {
				collect(baseClass)
			}
		}
	}
	collect(ct)

	return algos.FindCycle(nodes, func(t *tree.ClassType) map[*tree.ClassDetails]struct{} {
		edges := map[*tree.ClassDetails]struct{}{}
		for _, base := range t.Details.BaseClasses {
			if baseClass, ok := base.(*tree.ClassType); ok && baseClass.IsRecord() {
				edges[baseClass.Details] = struct{}{}
			}
		}
		return edges
	})
}
