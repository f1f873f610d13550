package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/tree"
)

func TestEntryResolution(t *testing.T) {
	t.Run("RequirednessDefaults", func(t *testing.T) {
		checker, _ := newTestSetup()

		total := newTestRecord("Total", 0)
		addTestField(total, "x", nameExpr("int"))
		addTestField(total, "y", modifierExpr("NotRequired", nameExpr("int")))

		entries := checker.GetRecordEntries(total, false)
		x, ok := entries.Get("x")
		require.True(t, ok)
		assert.True(t, x.IsRequired)
		y, ok := entries.Get("y")
		require.True(t, ok)
		assert.False(t, y.IsRequired)

		nonTotal := newTestRecord("NonTotal", tree.ClassRecordValuesOmittable)
		addTestField(nonTotal, "x", nameExpr("int"))
		addTestField(nonTotal, "y", modifierExpr("Required", nameExpr("int")))

		entries = checker.GetRecordEntries(nonTotal, false)
		x, _ = entries.Get("x")
		assert.False(t, x.IsRequired)
		y, _ = entries.Get("y")
		assert.True(t, y.IsRequired)
	})

	t.Run("ReadOnlyModifierNests", func(t *testing.T) {
		checker, ev := newTestSetup()

		ct := newTestRecord("R", 0)
		addTestField(ct, "a", modifierExpr("ReadOnly", nameExpr("int")))
		addTestField(ct, "b", modifierExpr("ReadOnly", modifierExpr("NotRequired", nameExpr("int"))))

		entries := checker.GetRecordEntries(ct, false)
		a, _ := entries.Get("a")
		assert.True(t, a.IsReadOnly)
		assert.True(t, a.IsRequired)
		assert.Equal(t, ev.builtins["int"], a.ValueType)
		b, _ := entries.Get("b")
		assert.True(t, b.IsReadOnly)
		assert.False(t, b.IsRequired)
	})

	t.Run("BaseFirstMergeAndShadowing", func(t *testing.T) {
		checker, ev := newTestSetup()

		base := newTestRecord("Base", 0)
		addTestField(base, "a", nameExpr("int"))
		addTestField(base, "b", nameExpr("int"))

		derived := newTestRecord("Derived", 0)
		derived.Details.BaseClasses = []tree.Type{base}
		addTestField(derived, "b", nameExpr("str"))
		addTestField(derived, "c", nameExpr("int"))

		entries := checker.GetRecordEntries(derived, false)
		assert.Equal(t, []string{"a", "b", "c"}, entries.Keys())

		b, _ := entries.Get("b")
		assert.Equal(t, ev.builtins["str"], b.ValueType)
	})

	t.Run("MemoizedOncePerCanonicalType", func(t *testing.T) {
		checker, _ := newTestSetup()

		ct := newTestRecord("R", 0)
		addTestField(ct, "x", nameExpr("int"))

		first := checker.GetRecordEntries(ct, false)
		// later field declarations are invisible without re-resolution
		addTestField(ct, "late", nameExpr("int"))
		second := checker.GetRecordEntries(ct, false)

		assert.Equal(t, first.Keys(), second.Keys())
		assert.False(t, second.Contains("late"))
	})

	t.Run("SkipsNonVariableAndIgnoredMembers", func(t *testing.T) {
		checker, _ := newTestSetup()

		ct := newTestRecord("R", 0)
		addTestField(ct, "x", nameExpr("int"))

		method := tree.NewSynthesizedSymbol("helper", tree.SymbolClassMember, tree.NewFunction("helper", 0))
		ct.Details.Fields.Set("helper", method)

		ignored := tree.NewSymbol("hidden", tree.SymbolInstanceMember|tree.SymbolIgnoredForProtocolMatch)
		ignored.AddDecl(&tree.Declaration{Kind: tree.DeclVariable, Annotation: nameExpr("int")})
		ct.Details.Fields.Set("hidden", ignored)

		entries := checker.GetRecordEntries(ct, false)
		assert.Equal(t, []string{"x"}, entries.Keys())
	})

	t.Run("CyclicBasesTolerated", func(t *testing.T) {
		checker, _ := newTestSetup()

		a := newTestRecord("A", 0)
		addTestField(a, "x", nameExpr("int"))
		b := newTestRecord("B", 0)
		addTestField(b, "y", nameExpr("int"))

		a.Details.BaseClasses = []tree.Type{b}
		b.Details.BaseClasses = []tree.Type{a}

		entries := checker.GetRecordEntries(a, false)
		assert.True(t, entries.Contains("x"))
		assert.True(t, entries.Contains("y"))
	})

	t.Run("SpecializationSubstitutesPerCall", func(t *testing.T) {
		checker, ev := newTestSetup()

		tv := tree.NewTypeVar("T")
		ev.typeVars["T"] = tv

		generic := newTestRecord("Box", 0)
		generic.Details.TypeParams = []*tree.TypeVarType{tv}
		addTestField(generic, "item", nameExpr("T"))

		specialized := generic.CloneForSpecialization([]tree.Type{ev.builtins["int"]})

		entries := checker.GetRecordEntries(specialized, false)
		item, _ := entries.Get("item")
		assert.Equal(t, ev.builtins["int"], item.ValueType)

		// the canonical cache keeps the unspecialized type variable
		canonical, _ := generic.Details.ResolvedEntries.Get("item")
		assert.Equal(t, tree.Type(tv), canonical.ValueType)
	})

	t.Run("SpecializedBaseSubstitutedDuringMerge", func(t *testing.T) {
		checker, ev := newTestSetup()

		tv := tree.NewTypeVar("T")
		ev.typeVars["T"] = tv

		genericBase := newTestRecord("Base", 0)
		genericBase.Details.TypeParams = []*tree.TypeVarType{tv}
		addTestField(genericBase, "item", nameExpr("T"))

		derived := newTestRecord("Derived", 0)
		derived.Details.BaseClasses = []tree.Type{
			genericBase.CloneForSpecialization([]tree.Type{ev.builtins["str"]}),
		}

		entries := checker.GetRecordEntries(derived, false)
		item, _ := entries.Get("item")
		assert.Equal(t, ev.builtins["str"], item.ValueType)
	})

	t.Run("PartialViewProjection", func(t *testing.T) {
		checker, _ := newTestSetup()

		ct := newTestRecord("R", 0)
		addTestField(ct, "w", nameExpr("int"))
		addTestField(ct, "r", modifierExpr("ReadOnly", nameExpr("int")))

		partial := ct.CloneForPartialView()
		entries := checker.GetRecordEntries(partial, false)

		w, _ := entries.Get("w")
		assert.False(t, w.IsRequired)
		assert.True(t, w.IsReadOnly)

		r, _ := entries.Get("r")
		assert.False(t, r.IsRequired)
		assert.Equal(t, tree.CategoryNever, r.ValueType.Category())

		// the canonical table is untouched
		plain := checker.GetRecordEntries(ct, false)
		w, _ = plain.Get("w")
		assert.True(t, w.IsRequired)
		assert.False(t, w.IsReadOnly)
	})

	t.Run("NarrowedOverlayOnlyWhenAllowed", func(t *testing.T) {
		checker, ev := newTestSetup()

		ct := newTestRecord("R", 0)
		addTestField(ct, "opt", modifierExpr("NotRequired", nameExpr("int")))
		checker.GetRecordEntries(ct, false)

		narrowed := ct.CloneForNarrowedEntries()
		narrowed.NarrowedEntries["opt"] = &tree.Entry{
			ValueType:  ev.builtins["int"],
			IsProvided: true,
		}

		withOverlay := checker.GetRecordEntries(narrowed, true)
		opt, _ := withOverlay.Get("opt")
		assert.True(t, opt.IsProvided)

		withoutOverlay := checker.GetRecordEntries(narrowed, false)
		opt, _ = withoutOverlay.Get("opt")
		assert.False(t, opt.IsProvided)
	})
}
