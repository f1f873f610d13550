package tree

import (
	"github.com/lumen-lang/lumen/common"
)

type SymbolFlags int

const (
	SymbolClassMember SymbolFlags = 1 << iota
	SymbolInstanceMember
	// SymbolIgnoredForProtocolMatch excludes the member from structural
	// matching and from record entry resolution.
	SymbolIgnoredForProtocolMatch
)

type DeclKind int

const (
	DeclVariable DeclKind = iota
	DeclFunction
	DeclClass
)

// Declaration is one declaration site of a symbol. Annotation, when
// present, is the declared type expression; entry resolution scans it for
// Required/NotRequired/ReadOnly modifiers.
type Declaration struct {
	Kind       DeclKind
	Node       Node
	Annotation Expr
}

type Symbol struct {
	Name  string
	Flags SymbolFlags
	Decls []*Declaration

	// SynthesizedType is set for members fabricated by the checker, which
	// have no source declaration to infer a type from.
	SynthesizedType Type
}

func NewSymbol(name string, flags SymbolFlags) *Symbol {
	return &Symbol{Name: name, Flags: flags}
}

func NewSynthesizedSymbol(name string, flags SymbolFlags, ty Type) *Symbol {
	sym := &Symbol{Name: name, Flags: flags, SynthesizedType: ty}
	sym.AddDecl(&Declaration{Kind: DeclFunction})
	return sym
}

func (s *Symbol) AddDecl(decl *Declaration) {
	s.Decls = append(s.Decls, decl)
}

// LastDecl returns the most recent declaration, or nil for an undeclared
// symbol.
func (s *Symbol) LastDecl() *Declaration {
	if len(s.Decls) == 0 {
		return nil
	}
	return s.Decls[len(s.Decls)-1]
}

// IsVariable reports whether every declaration of the symbol is a
// variable declaration. Only such symbols become record entries.
func (s *Symbol) IsVariable() bool {
	if len(s.Decls) == 0 {
		return false
	}
	for _, decl := range s.Decls {
		if decl.Kind != DeclVariable {
			return false
		}
	}
	return true
}

type SymbolTable = common.OrderedMap[string, *Symbol]

func NewSymbolTable() *SymbolTable {
	return common.NewOrderedMap[string, *Symbol]()
}
