package check

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/lumen-lang/lumen/tree"
)

// ApplySubst replaces solved type variables throughout a type, producing
// a fresh specialized view. Types containing no type variables are
// returned as-is.
func (c *Checker) ApplySubst(ty tree.Type, ctx *TypeVarContext) tree.Type {
	if ctx.IsEmpty() || !ContainsTypeVar(ty) {
		return ty
	}
	return c.applySubst(ty, ctx)
}

func (c *Checker) applySubst(ty tree.Type, ctx *TypeVarContext) tree.Type {
	result := c.applySubstCategory(ty, ctx)

	// Solved type variables are shared; never attach alias metadata to them.
	if _, isTypeVar := ty.(*tree.TypeVarType); isTypeVar {
		return result
	}

	if alias := ty.Alias(); alias != nil && result != ty {
		args := make([]tree.Type, len(alias.TypeArgs))
		for i, arg := range alias.TypeArgs {
			args[i] = c.applySubst(arg, ctx)
		}
		result.SetAlias(&tree.AliasInfo{Name: alias.Name, TypeArgs: args})
	}

	return result
}

func (c *Checker) applySubstCategory(ty tree.Type, ctx *TypeVarContext) tree.Type {
	switch ty := ty.(type) {
	case *tree.TypeVarType:
		if solved, ok := ctx.TypeVar(ty.Name); ok {
			return solved
		}
		return ty
	case *tree.UnboundType, *tree.AnyType, *tree.UnknownType, *tree.NeverType, *tree.ModuleType:
		return ty
	case *tree.FunctionType:
		return c.applySubstFunction(ty, ctx)
	case *tree.OverloadedFunctionType:
		overloads := make([]*tree.FunctionType, len(ty.Overloads))
		for i, overload := range ty.Overloads {
			overloads[i] = c.applySubstFunction(overload, ctx)
		}
		return &tree.OverloadedFunctionType{Overloads: overloads}
	case *tree.ClassType:
		if len(ty.TypeArgs) == 0 && ty.TupleTypeArgs == nil {
			return ty
		}
		clone := ty.CloneForSpecialization(c.applySubstSlice(ty.TypeArgs, ctx))
		clone.TupleTypeArgs = c.applySubstSlice(ty.TupleTypeArgs, ctx)
		return clone
	case *tree.UnionType:
		return tree.NewUnion(c.applySubstSlice(ty.Subtypes, ctx)...)
	case *tree.IntersectionType:
		return &tree.IntersectionType{Subtypes: c.applySubstSlice(ty.Subtypes, ctx)}
	default:
		spew.Dump(ty)
		panic("unreachable")
	}
}

func (c *Checker) applySubstFunction(ty *tree.FunctionType, ctx *TypeVarContext) *tree.FunctionType {
	params := make([]*tree.Param, len(ty.Params))
	for i, param := range ty.Params {
		next := *param
		if param.Type != nil {
			next.Type = c.applySubst(param.Type, ctx)
		}
		if param.DefaultType != nil {
			next.DefaultType = c.applySubst(param.DefaultType, ctx)
		}
		params[i] = &next
	}
	result := &tree.FunctionType{
		Name:   ty.Name,
		Flags:  ty.Flags,
		Params: params,
	}
	if ty.ReturnType != nil {
		result.ReturnType = c.applySubst(ty.ReturnType, ctx)
	}
	return result
}

func (c *Checker) applySubstSlice(types []tree.Type, ctx *TypeVarContext) []tree.Type {
	if types == nil {
		return nil
	}
	result := make([]tree.Type, len(types))
	for i, ty := range types {
		result[i] = c.applySubst(ty, ctx)
	}
	return result
}
