package check

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/lumen-lang/lumen/tree"
)

// defaultMaxWalkDepth bounds recursion through self-referential type
// graphs. Exceeding it skips the offending subtree, not the whole walk.
const defaultMaxWalkDepth = 20

// TypeWalker is a depth-first visitor over every component type
// reachable from a root. It is safe on cyclic type graphs: a shared
// depth counter bounds recursion, and any visit may cancel the walk.
type TypeWalker struct {
	// MaxDepth overrides defaultMaxWalkDepth when positive.
	MaxDepth int
	// OnVisit is called for every visited type before its children.
	// Returning false cancels the remainder of the walk.
	OnVisit func(ty tree.Type) bool

	depth     int
	cancelled bool
	limitHit  bool
}

func (w *TypeWalker) Cancel() {
	w.cancelled = true
}

func (w *TypeWalker) IsWalkCanceled() bool {
	return w.cancelled
}

func (w *TypeWalker) IsRecursionLimitHit() bool {
	return w.limitHit
}

func (w *TypeWalker) Walk(ty tree.Type) {
	maxDepth := w.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxWalkDepth
	}

	w.depth++
	defer func() { w.depth-- }()

	if w.depth > maxDepth {
		w.limitHit = true
		return
	}
	if w.cancelled {
		return
	}

	if w.OnVisit != nil && !w.OnVisit(ty) {
		w.cancelled = true
		return
	}

	if alias := ty.Alias(); alias != nil {
		for _, arg := range alias.TypeArgs {
			w.Walk(arg)
			if w.cancelled {
				return
			}
		}
	}

	switch ty := ty.(type) {
	case *tree.UnboundType, *tree.AnyType, *tree.UnknownType, *tree.NeverType,
		*tree.ModuleType, *tree.TypeVarType:
		// leaf categories
	case *tree.FunctionType:
		w.walkFunction(ty)
	case *tree.OverloadedFunctionType:
		w.walkOverloadedFunction(ty)
	case *tree.ClassType:
		w.walkClass(ty)
	case *tree.UnionType:
		w.walkSubtypes(ty.Subtypes)
	case *tree.IntersectionType:
		w.walkSubtypes(ty.Subtypes)
	default:
		spew.Dump(ty)
		panic("unreachable")
	}
}

func (w *TypeWalker) walkFunction(ty *tree.FunctionType) {
	for _, param := range ty.Params {
		// separators carry no type of their own
		if param.Name == "" {
			continue
		}
		if param.Type != nil {
			w.Walk(param.Type)
			if w.cancelled {
				return
			}
		}
	}
	if ty.ReturnType != nil {
		w.Walk(ty.ReturnType)
	}
}

func (w *TypeWalker) walkOverloadedFunction(ty *tree.OverloadedFunctionType) {
	for _, overload := range ty.Overloads {
		w.Walk(overload)
		if w.cancelled {
			return
		}
	}
}

func (w *TypeWalker) walkClass(ty *tree.ClassType) {
	if ty.IsPseudoGeneric() {
		return
	}
	typeArgs := ty.TypeArgs
	if ty.TupleTypeArgs != nil {
		typeArgs = ty.TupleTypeArgs
	}
	w.walkSubtypes(typeArgs)
}

func (w *TypeWalker) walkSubtypes(subtypes []tree.Type) {
	for _, sub := range subtypes {
		w.Walk(sub)
		if w.cancelled {
			return
		}
	}
}

// ContainsTypeVar reports whether any component of the type is an
// unsolved type variable.
func ContainsTypeVar(ty tree.Type) bool {
	found := false
	walker := TypeWalker{
		OnVisit: func(ty tree.Type) bool {
			if _, ok := ty.(*tree.TypeVarType); ok {
				found = true
				return false
			}
			return true
		},
	}
	walker.Walk(ty)
	return found
}
