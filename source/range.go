package source

import "fmt"

// Pos is a zero-based position within a source file.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}

// TextRange delimits the extent of a syntax node.
type TextRange struct {
	Start Pos
	End   Pos
}

func NewTextRange(startLine, startCol, endLine, endCol int) TextRange {
	return TextRange{
		Start: Pos{Line: startLine, Col: startCol},
		End:   Pos{Line: endLine, Col: endCol},
	}
}

func (r TextRange) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}

func (r TextRange) Contains(p Pos) bool {
	if p.Line < r.Start.Line || p.Line > r.End.Line {
		return false
	}
	if p.Line == r.Start.Line && p.Col < r.Start.Col {
		return false
	}
	if p.Line == r.End.Line && p.Col > r.End.Col {
		return false
	}
	return true
}
