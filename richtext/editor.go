package richtext

import "github.com/iw2rmb/richdoc/document"

// Editor is the tree engine the commands run against. *tree.Session
// implements it.
type Editor interface {
	// Selection returns the current selection, if any.
	Selection() (document.Range, bool)
	// Marks returns the marks in effect at the selection.
	Marks() document.Marks
	AddMark(m document.Mark)
	RemoveMark(m document.Mark)

	// Nodes returns matching nodes overlapping the selection, ancestors
	// first, in document order.
	Nodes(match document.Match) []document.Entry
	SetNodes(props document.Props, match document.Match)
	WrapNodes(wrapper *document.Element, match document.Match)
	UnwrapNodes(match document.Match, split bool)
	InsertNodes(nodes ...document.Node)
	InsertNodesAt(at document.Path, nodes ...document.Node)
	RemoveNodes(match document.Match)
	RemoveNodeAt(at document.Path)
}
