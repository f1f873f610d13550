package check

import (
	"github.com/lumen-lang/lumen/tree"
)

// NarrowForKeyAssignment records that a non-required key is known to be
// present after a write through a non-indexing mutation path. The result
// is a copy-on-write clone; narrowing the same key twice is a no-op.
func (c *Checker) NarrowForKeyAssignment(ct *tree.ClassType, key string) *tree.ClassType {
	// Entries may legitimately be unresolved under circular-dependency
	// resolution; return the type unchanged rather than forcing them.
	if !ct.IsRecord() || ct.Details.ResolvedEntries == nil {
		return ct
	}

	entry, ok := ct.Details.ResolvedEntries.Get(key)
	if !ok || entry.IsRequired {
		return ct
	}
	if narrowed, ok := ct.NarrowedEntries[key]; ok && narrowed.IsProvided {
		return ct
	}

	// the canonical table holds unspecialized value types
	valueType := entry.ValueType
	if ctx := TypeVarContextForClass(ct); ctx != nil {
		valueType = c.ApplySubst(valueType, ctx)
	}

	clone := ct.CloneForNarrowedEntries()
	clone.NarrowedEntries[key] = &tree.Entry{
		ValueType:  valueType,
		IsRequired: entry.IsRequired,
		IsReadOnly: entry.IsReadOnly,
		IsProvided: true,
	}
	return clone
}
