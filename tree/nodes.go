package tree

import (
	"github.com/lumen-lang/lumen/source"
)

type Node interface {
	_Node()
	Range() source.TextRange
	Parent() Node
	SetParent(Node)
}

type NodeBase struct {
	Span   source.TextRange
	parent Node
}

func (*NodeBase) _Node() {}

func (b *NodeBase) Range() source.TextRange { return b.Span }

func (b *NodeBase) Parent() Node { return b.parent }

func (b *NodeBase) SetParent(p Node) { b.parent = p }

// ========================

type Expr interface {
	Node
	_Expr()
}

type ExprBase struct {
	NodeBase
}

func (*ExprBase) _Expr() {}

type NameExpr struct {
	ExprBase
	Value string
}

type StringLit struct {
	ExprBase
	Value string
}

type BoolLit struct {
	ExprBase
	Value bool
}

type DictItem struct {
	Key   Expr
	Value Expr
}

type DictExpr struct {
	ExprBase
	Items []*DictItem
}

// Argument is one call or subscript argument; Name is empty for
// positional arguments.
type Argument struct {
	Name  string
	Value Expr
}

type CallExpr struct {
	ExprBase
	Func Expr
	Args []*Argument
}

type IndexExpr struct {
	ExprBase
	Base          Expr
	Args          []*Argument
	TrailingComma bool
}

// ========================

type Stmt interface {
	Node
	_Stmt()
}

type StmtBase struct {
	NodeBase
}

func (*StmtBase) _Stmt() {}

// AssignStmt is a simple single-target assignment. Synthesis consults it
// for the record name-consistency check.
type AssignStmt struct {
	StmtBase
	Target Expr
	Value  Expr
}

type TryStmt struct {
	StmtBase
	Body []Node
}

// WithinTry reports whether the node sits inside the body of a try
// statement, following parent links.
func WithinTry(n Node) bool {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if _, ok := cur.(*TryStmt); ok {
			return true
		}
	}
	return false
}

// EnclosingAssignment returns the simple assignment whose value the node
// is, or nil.
func EnclosingAssignment(n Node) *AssignStmt {
	assign, ok := n.Parent().(*AssignStmt)
	if !ok || assign.Value != n {
		return nil
	}
	return assign
}
