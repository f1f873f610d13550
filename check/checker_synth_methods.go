package check

import (
	"github.com/lumen-lang/lumen/common"
	"github.com/lumen-lang/lumen/tree"
)

// SynthesizeRecordMethods builds the accessor method set of a record
// type from its fully resolved entry table: the constructor plus get,
// pop, setdefault, __delitem__, update, and (for sealed all-optional
// all-writable records) clear and popitem.
func (c *Checker) SynthesizeRecordMethods(node tree.Node, ct *tree.ClassType) {
	entries := c.GetRecordEntries(ct, false)

	strClass, ok := c.Eval.GetBuiltInType(node, "str").(*tree.ClassType)
	common.Assert(ok, "builtin str must be a class")
	noneType := c.Eval.GetBuiltInType(node, "None")

	s := &methodSynthesizer{
		checker:  c,
		node:     node,
		class:    ct,
		entries:  entries,
		strClass: strClass,
		noneType: noneType,
		tdVar:    tree.NewTypeVar("_TDefault"),
	}

	s.synthConstructor()
	s.synthGet()
	s.synthPop()
	s.synthSetdefault()
	s.synthDelItem()
	s.synthUpdate()
	s.synthClearAndPopItem()
}

type methodSynthesizer struct {
	checker  *Checker
	node     tree.Node
	class    *tree.ClassType
	entries  *EntryMap
	strClass *tree.ClassType
	noneType tree.Type
	tdVar    *tree.TypeVarType
}

func (s *methodSynthesizer) addMethod(name string, ty tree.Type) {
	s.class.Details.Fields.Set(name, tree.NewSynthesizedSymbol(name, tree.SymbolClassMember, ty))
}

func (s *methodSynthesizer) keyLiteral(name string) tree.Type {
	return s.strClass.CloneWithLiteral(name)
}

func (s *methodSynthesizer) newMethod(name string) *tree.FunctionType {
	fn := tree.NewFunction(name, tree.FunctionSynthesized)
	fn.AddParam(&tree.Param{Name: "self", Type: s.class})
	fn.ReturnType = s.noneType
	return fn
}

// synthConstructor builds the two constructor overloads: whole-object
// copy construction where every field may be omitted, and keyword
// construction where only required fields lack a default.
func (s *methodSynthesizer) synthConstructor() {
	copyCtor := s.newMethod("__init__")
	copyCtor.AddParam(&tree.Param{Name: "map", Type: s.class})
	copyCtor.AddParam(&tree.Param{Kind: tree.ParamSeparator})
	s.entries.Iter(func(name string, entry *tree.Entry) {
		copyCtor.AddParam(&tree.Param{
			Kind:       tree.ParamKeywordOnly,
			Name:       name,
			Type:       entry.ValueType,
			HasDefault: true,
		})
	})

	kwCtor := s.newMethod("__init__")
	kwCtor.AddParam(&tree.Param{Kind: tree.ParamSeparator})
	s.entries.Iter(func(name string, entry *tree.Entry) {
		kwCtor.AddParam(&tree.Param{
			Kind:       tree.ParamKeywordOnly,
			Name:       name,
			Type:       entry.ValueType,
			HasDefault: !entry.IsRequired,
		})
	})

	s.addMethod("__init__", overloaded(copyCtor, kwCtor))
}

func (s *methodSynthesizer) synthGet() {
	var overloads []*tree.FunctionType

	s.entries.Iter(func(name string, entry *tree.Entry) {
		bare := s.newMethod("get")
		bare.AddParam(&tree.Param{Name: "k", Type: s.keyLiteral(name)})
		if entry.IsRequired {
			bare.ReturnType = entry.ValueType
		} else {
			bare.ReturnType = tree.NewUnion(entry.ValueType, s.noneType)
		}

		withDefault := s.newMethod("get")
		withDefault.AddParam(&tree.Param{Name: "k", Type: s.keyLiteral(name)})
		if entry.IsRequired {
			withDefault.AddParam(&tree.Param{Name: "default", Type: entry.ValueType})
			withDefault.ReturnType = entry.ValueType
		} else {
			withDefault.AddParam(&tree.Param{Name: "default", Type: s.tdVar})
			withDefault.ReturnType = tree.NewUnion(entry.ValueType, s.tdVar)
		}

		overloads = append(overloads, bare, withDefault)
	})

	if s.class.IsClosed() {
		// unknown string-literal keys on a sealed record always miss
		bare := s.newMethod("get")
		bare.AddParam(&tree.Param{Name: "k", Type: s.strClass})
		bare.ReturnType = s.noneType

		withDefault := s.newMethod("get")
		withDefault.AddParam(&tree.Param{Name: "k", Type: s.strClass})
		withDefault.AddParam(&tree.Param{Name: "default", Type: s.tdVar})
		withDefault.ReturnType = s.tdVar

		overloads = append(overloads, bare, withDefault)
	}

	bare := s.newMethod("get")
	bare.AddParam(&tree.Param{Name: "k", Type: s.strClass})
	bare.ReturnType = tree.NewUnknown()

	withDefault := s.newMethod("get")
	withDefault.AddParam(&tree.Param{Name: "k", Type: s.strClass})
	withDefault.AddParam(&tree.Param{Name: "default", Type: s.tdVar})
	withDefault.ReturnType = tree.NewUnknown()

	overloads = append(overloads, bare, withDefault)

	s.addMethod("get", overloaded(overloads...))
}

// synthPop covers only fields that are both optional and writable;
// popping a required or read-only field is never legal.
func (s *methodSynthesizer) synthPop() {
	var overloads []*tree.FunctionType

	s.entries.Iter(func(name string, entry *tree.Entry) {
		if entry.IsRequired || entry.IsReadOnly {
			return
		}

		bare := s.newMethod("pop")
		bare.AddParam(&tree.Param{Name: "k", Type: s.keyLiteral(name)})
		bare.ReturnType = entry.ValueType

		withDefault := s.newMethod("pop")
		withDefault.AddParam(&tree.Param{Name: "k", Type: s.keyLiteral(name)})
		withDefault.AddParam(&tree.Param{Name: "default", Type: s.tdVar})
		withDefault.ReturnType = tree.NewUnion(entry.ValueType, s.tdVar)

		overloads = append(overloads, bare, withDefault)
	})

	if len(overloads) > 0 {
		s.addMethod("pop", overloaded(overloads...))
	}
}

func (s *methodSynthesizer) synthSetdefault() {
	var overloads []*tree.FunctionType

	s.entries.Iter(func(name string, entry *tree.Entry) {
		if entry.IsReadOnly {
			return
		}
		fn := s.newMethod("setdefault")
		fn.AddParam(&tree.Param{Name: "k", Type: s.keyLiteral(name)})
		fn.AddParam(&tree.Param{Name: "default", Type: entry.ValueType})
		fn.ReturnType = entry.ValueType
		overloads = append(overloads, fn)
	})

	if len(overloads) > 0 {
		s.addMethod("setdefault", overloaded(overloads...))
	}
}

func (s *methodSynthesizer) synthDelItem() {
	if !s.anyWritable() {
		return
	}
	fn := s.newMethod("__delitem__")
	fn.AddParam(&tree.Param{Name: "k", Type: s.strClass})
	s.addMethod("__delitem__", fn)
}

// synthUpdate builds three overloads. The whole-object form is declared
// after the iterable form so that overload-resolution failures surface
// its more informative signature.
func (s *methodSynthesizer) synthUpdate() {
	tupleClass, ok := s.checker.Eval.GetBuiltInType(s.node, "tuple").(*tree.ClassType)
	common.Assert(ok, "builtin tuple must be a class")
	iterableClass, ok := s.checker.Eval.GetTypingType(s.node, "Iterable").(*tree.ClassType)
	common.Assert(ok, "typing.Iterable must be a class")

	var pairTypes []tree.Type
	s.entries.Iter(func(name string, entry *tree.Entry) {
		if entry.IsReadOnly {
			return
		}
		pair := tupleClass.CloneForSpecialization([]tree.Type{s.keyLiteral(name), entry.ValueType})
		pair.TupleTypeArgs = pair.TypeArgs
		pairTypes = append(pairTypes, pair)
	})

	iterForm := s.newMethod("update")
	iterForm.AddParam(&tree.Param{
		Name: "items",
		Type: iterableClass.CloneForSpecialization([]tree.Type{tree.NewUnion(pairTypes...)}),
	})

	var objParamType tree.Type
	if s.anyWritable() {
		objParamType = s.class.CloneForPartialView()
	} else {
		// with every field read-only there is no legal update payload
		objParamType = tree.NewNever()
	}
	objForm := s.newMethod("update")
	objForm.AddParam(&tree.Param{Name: "m", Type: objParamType})

	kwForm := s.newMethod("update")
	kwForm.AddParam(&tree.Param{Kind: tree.ParamSeparator})
	s.entries.Iter(func(name string, entry *tree.Entry) {
		if entry.IsReadOnly {
			return
		}
		kwForm.AddParam(&tree.Param{
			Kind:       tree.ParamKeywordOnly,
			Name:       name,
			Type:       entry.ValueType,
			HasDefault: true,
		})
	})

	s.addMethod("update", overloaded(iterForm, objForm, kwForm))
}

// synthClearAndPopItem applies only when removal of an arbitrary field
// is sound: the record is sealed and every field is optional and
// writable.
func (s *methodSynthesizer) synthClearAndPopItem() {
	if !s.class.IsClosed() {
		return
	}
	sound := true
	s.entries.Iter(func(name string, entry *tree.Entry) {
		if entry.IsRequired || entry.IsReadOnly {
			sound = false
		}
	})
	if !sound {
		return
	}

	s.addMethod("clear", s.newMethod("clear"))

	tupleClass, ok := s.checker.Eval.GetBuiltInType(s.node, "tuple").(*tree.ClassType)
	common.Assert(ok, "builtin tuple must be a class")

	var keyTypes, valueTypes []tree.Type
	s.entries.Iter(func(name string, entry *tree.Entry) {
		keyTypes = append(keyTypes, s.keyLiteral(name))
		valueTypes = append(valueTypes, entry.ValueType)
	})

	popItem := s.newMethod("popitem")
	result := tupleClass.CloneForSpecialization([]tree.Type{
		tree.NewUnion(keyTypes...),
		tree.NewUnion(valueTypes...),
	})
	result.TupleTypeArgs = result.TypeArgs
	popItem.ReturnType = result
	s.addMethod("popitem", popItem)
}

func (s *methodSynthesizer) anyWritable() bool {
	writable := false
	s.entries.Iter(func(name string, entry *tree.Entry) {
		if !entry.IsReadOnly {
			writable = true
		}
	})
	return writable
}

func overloaded(fns ...*tree.FunctionType) tree.Type {
	if len(fns) == 1 {
		return fns[0]
	}
	result := &tree.OverloadedFunctionType{}
	for _, fn := range fns {
		result.AddOverload(fn)
	}
	return result
}
