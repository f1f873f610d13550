package tree

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumen/common"
)

type TypeCategory int

const (
	CategoryUnbound TypeCategory = iota
	CategoryAny
	CategoryUnknown
	CategoryNever
	CategoryFunction
	CategoryOverloadedFunction
	CategoryClass
	CategoryModule
	CategoryUnion
	CategoryTypeVar
	CategoryIntersection
)

func (c TypeCategory) String() string {
	switch c {
	case CategoryUnbound:
		return "Unbound"
	case CategoryAny:
		return "Any"
	case CategoryUnknown:
		return "Unknown"
	case CategoryNever:
		return "Never"
	case CategoryFunction:
		return "Function"
	case CategoryOverloadedFunction:
		return "OverloadedFunction"
	case CategoryClass:
		return "Class"
	case CategoryModule:
		return "Module"
	case CategoryUnion:
		return "Union"
	case CategoryTypeVar:
		return "TypeVar"
	case CategoryIntersection:
		return "Intersection"
	default:
		panic("unreachable")
	}
}

// AliasInfo records that a type was reached through a type alias. It is
// carried independently of the type's category.
type AliasInfo struct {
	Name     string
	TypeArgs []Type
}

type Type interface {
	_Type()
	Category() TypeCategory
	Alias() *AliasInfo
	SetAlias(*AliasInfo)
}

type TypeBase struct {
	aliasInfo *AliasInfo
}

func (*TypeBase) _Type() {}

func (b *TypeBase) Alias() *AliasInfo {
	return b.aliasInfo
}

func (b *TypeBase) SetAlias(info *AliasInfo) {
	b.aliasInfo = info
}

// ========================

type UnboundType struct {
	TypeBase
}

func NewUnbound() *UnboundType { return &UnboundType{} }

func (*UnboundType) Category() TypeCategory { return CategoryUnbound }

func (*UnboundType) String() string { return "Unbound" }

type AnyType struct {
	TypeBase
}

func NewAny() *AnyType { return &AnyType{} }

func (*AnyType) Category() TypeCategory { return CategoryAny }

func (*AnyType) String() string { return "Any" }

type UnknownType struct {
	TypeBase
}

func NewUnknown() *UnknownType { return &UnknownType{} }

func (*UnknownType) Category() TypeCategory { return CategoryUnknown }

func (*UnknownType) String() string { return "Unknown" }

type NeverType struct {
	TypeBase
}

func NewNever() *NeverType { return &NeverType{} }

func (*NeverType) Category() TypeCategory { return CategoryNever }

func (*NeverType) String() string { return "Never" }

type ModuleType struct {
	TypeBase
	Name string
}

func (*ModuleType) Category() TypeCategory { return CategoryModule }

func (t *ModuleType) String() string {
	return fmt.Sprintf("module(%s)", t.Name)
}

type TypeVarType struct {
	TypeBase
	Name  string
	Bound Type
}

func NewTypeVar(name string) *TypeVarType {
	return &TypeVarType{Name: name}
}

func (*TypeVarType) Category() TypeCategory { return CategoryTypeVar }

func (t *TypeVarType) String() string {
	return fmt.Sprintf("%sᵥ", t.Name)
}

// ========================

type ParamKind int

const (
	ParamStandard ParamKind = iota
	ParamKeywordOnly
	// ParamSeparator marks a bare positional/keyword separator. It has no
	// name and no type of its own.
	ParamSeparator
)

type Param struct {
	Kind        ParamKind
	Name        string
	Type        Type
	HasDefault  bool
	DefaultType Type
}

type FunctionFlags int

const (
	FunctionSynthesized FunctionFlags = 1 << iota
	FunctionOverloaded
)

type FunctionType struct {
	TypeBase
	Name       string
	Flags      FunctionFlags
	Params     []*Param
	ReturnType Type
}

func NewFunction(name string, flags FunctionFlags) *FunctionType {
	return &FunctionType{Name: name, Flags: flags}
}

func (t *FunctionType) AddParam(p *Param) {
	t.Params = append(t.Params, p)
}

func (*FunctionType) Category() TypeCategory { return CategoryFunction }

func (t *FunctionType) String() string {
	parts := make([]string, 0, len(t.Params))
	for _, p := range t.Params {
		switch p.Kind {
		case ParamSeparator:
			parts = append(parts, "*")
		default:
			s := p.Name
			if p.Type != nil {
				s = fmt.Sprintf("%s: %v", p.Name, p.Type)
			}
			if p.HasDefault {
				s += " = ..."
			}
			parts = append(parts, s)
		}
	}
	return fmt.Sprintf("%s(%s) -> %v", t.Name, strings.Join(parts, ", "), t.ReturnType)
}

type OverloadedFunctionType struct {
	TypeBase
	Overloads []*FunctionType
}

func NewOverloadedFunction(overloads ...*FunctionType) *OverloadedFunctionType {
	return &OverloadedFunctionType{Overloads: overloads}
}

func (t *OverloadedFunctionType) AddOverload(fn *FunctionType) {
	fn.Flags |= FunctionOverloaded
	t.Overloads = append(t.Overloads, fn)
}

func (*OverloadedFunctionType) Category() TypeCategory { return CategoryOverloadedFunction }

func (t *OverloadedFunctionType) String() string {
	return fmt.Sprintf("overloaded(%d)", len(t.Overloads))
}

// ========================

type UnionType struct {
	TypeBase
	Subtypes []Type
}

// NewUnion builds a union of the given subtypes. A single subtype is
// returned as-is; an empty union collapses to Never.
func NewUnion(subtypes ...Type) Type {
	switch len(subtypes) {
	case 0:
		return NewNever()
	case 1:
		return subtypes[0]
	default:
		return &UnionType{Subtypes: subtypes}
	}
}

func (*UnionType) Category() TypeCategory { return CategoryUnion }

func (t *UnionType) String() string {
	parts := make([]string, 0, len(t.Subtypes))
	for _, sub := range t.Subtypes {
		parts = append(parts, fmt.Sprintf("%v", sub))
	}
	return strings.Join(parts, " | ")
}

type IntersectionType struct {
	TypeBase
	Subtypes []Type
}

func (*IntersectionType) Category() TypeCategory { return CategoryIntersection }

func (t *IntersectionType) String() string {
	parts := make([]string, 0, len(t.Subtypes))
	for _, sub := range t.Subtypes {
		parts = append(parts, fmt.Sprintf("%v", sub))
	}
	return strings.Join(parts, " & ")
}

// ========================

type ClassFlags int

const (
	// ClassRecord marks a structural record type.
	ClassRecord ClassFlags = 1 << iota
	// ClassRecordClosed marks a record as sealed against extension.
	ClassRecordClosed
	// ClassRecordValuesOmittable makes fields optional by default
	// (declared total=False).
	ClassRecordValuesOmittable
	// ClassRecordPartialView marks the synthetic all-optional read-only
	// projection used to type bulk updates.
	ClassRecordPartialView
	// ClassPseudoGeneric marks classes whose type parameters are
	// implementation artifacts; walkers skip their type arguments.
	ClassPseudoGeneric
	ClassSynthesized
)

// ClassDetails is the canonical, shared portion of a class type. All
// specializations and narrowed clones of one declaration alias the same
// details; the resolved entry table is memoized here exactly once.
type ClassDetails struct {
	Fields      *SymbolTable
	BaseClasses []Type
	TypeParams  []*TypeVarType

	// ResolvedEntries is the write-once canonical field table of a record
	// type. It holds unspecialized entry types; specialization is applied
	// per query, never cached.
	ResolvedEntries *common.OrderedMap[string, *Entry]
}

type ClassType struct {
	TypeBase
	Name          string
	Flags         ClassFlags
	Details       *ClassDetails
	TypeArgs      []Type
	TupleTypeArgs []Type
	LiteralValue  any

	// NarrowedEntries overlays control-flow knowledge for one binding.
	// It never aliases the canonical table.
	NarrowedEntries map[string]*Entry
}

func NewClassType(name string, flags ClassFlags) *ClassType {
	return &ClassType{
		Name:  name,
		Flags: flags,
		Details: &ClassDetails{
			Fields: NewSymbolTable(),
		},
	}
}

func (*ClassType) Category() TypeCategory { return CategoryClass }

func (t *ClassType) String() string {
	if t.LiteralValue != nil {
		return fmt.Sprintf("%s[%#v]", t.Name, t.LiteralValue)
	}
	if len(t.TypeArgs) > 0 {
		parts := make([]string, 0, len(t.TypeArgs))
		for _, arg := range t.TypeArgs {
			parts = append(parts, fmt.Sprintf("%v", arg))
		}
		return fmt.Sprintf("%s[%s]", t.Name, strings.Join(parts, ", "))
	}
	return t.Name
}

func (t *ClassType) IsRecord() bool {
	return t.Flags&ClassRecord != 0
}

func (t *ClassType) IsClosed() bool {
	return t.Flags&ClassRecordClosed != 0
}

func (t *ClassType) ValuesOmittable() bool {
	return t.Flags&ClassRecordValuesOmittable != 0
}

func (t *ClassType) IsPartialView() bool {
	return t.Flags&ClassRecordPartialView != 0
}

func (t *ClassType) IsPseudoGeneric() bool {
	return t.Flags&ClassPseudoGeneric != 0
}

func (t *ClassType) IsSameClass(other *ClassType) bool {
	return t.Details == other.Details
}

// CloneForSpecialization produces a view of the class bound to the given
// type arguments. The canonical details (and entry cache) stay shared.
func (t *ClassType) CloneForSpecialization(typeArgs []Type) *ClassType {
	clone := *t
	clone.TypeArgs = typeArgs
	return &clone
}

// CloneWithLiteral produces a literal-valued instance of the class, e.g.
// a string literal as a specialization of str.
func (t *ClassType) CloneWithLiteral(value any) *ClassType {
	clone := *t
	clone.LiteralValue = value
	return &clone
}

// CloneForNarrowedEntries produces a copy whose narrowed overlay can be
// extended without affecting the receiver or any sibling clone.
func (t *ClassType) CloneForNarrowedEntries() *ClassType {
	clone := *t
	clone.NarrowedEntries = make(map[string]*Entry, len(t.NarrowedEntries))
	for name, entry := range t.NarrowedEntries {
		clone.NarrowedEntries[name] = entry.Clone()
	}
	return &clone
}

// CloneForPartialView produces the all-optional read-only projection of a
// record type used to type bulk-update payloads.
func (t *ClassType) CloneForPartialView() *ClassType {
	clone := *t
	clone.Flags |= ClassRecordPartialView
	clone.NarrowedEntries = nil
	return &clone
}

// ========================

// Entry is the resolved metadata for one field of a record type.
// IsProvided is transient: it is set on narrowed overlay entries during a
// single assignability or construction check and never persisted on the
// canonical table.
type Entry struct {
	ValueType  Type
	IsRequired bool
	IsReadOnly bool
	IsProvided bool
}

func (e *Entry) Clone() *Entry {
	clone := *e
	return &clone
}

func (e *Entry) String() string {
	mods := ""
	if e.IsRequired {
		mods += "!"
	}
	if e.IsReadOnly {
		mods += "="
	}
	return fmt.Sprintf("%v%s", e.ValueType, mods)
}
