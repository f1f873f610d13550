package diag

import (
	"strings"

	"github.com/lumen-lang/lumen/source"
)

// maxAddendumDepth bounds how deep nested addenda are rendered.
const maxAddendumDepth = 16

// Addendum accumulates hierarchical supporting detail for one
// diagnostic. Child addenda indent one level deeper when rendered.
type Addendum struct {
	messages []string
	children []*Addendum
	ranges   []source.TextRange
}

func NewAddendum() *Addendum {
	return &Addendum{}
}

func (a *Addendum) CreateAddendum() *Addendum {
	child := NewAddendum()
	a.children = append(a.children, child)
	return child
}

func (a *Addendum) AddMessage(msg string) *Addendum {
	a.messages = append(a.messages, msg)
	return a
}

func (a *Addendum) AddTextRange(r source.TextRange) *Addendum {
	a.ranges = append(a.ranges, r)
	return a
}

// IsEmpty reports whether the addendum carries no messages at any depth.
func (a *Addendum) IsEmpty() bool {
	if len(a.messages) > 0 {
		return false
	}
	for _, child := range a.children {
		if !child.IsEmpty() {
			return false
		}
	}
	return true
}

// Ranges returns the text ranges attached at this level.
func (a *Addendum) Ranges() []source.TextRange {
	return a.ranges
}

func (a *Addendum) String() string {
	var sb strings.Builder
	a.write(&sb, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func (a *Addendum) write(sb *strings.Builder, depth int) {
	if depth > maxAddendumDepth {
		return
	}
	indent := strings.Repeat("  ", depth)
	for _, msg := range a.messages {
		sb.WriteString(indent)
		sb.WriteString(msg)
		sb.WriteString("\n")
	}
	for _, child := range a.children {
		if child.IsEmpty() {
			continue
		}
		child.write(sb, depth+1)
	}
}
