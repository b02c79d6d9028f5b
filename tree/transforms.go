package tree

import (
	"github.com/iw2rmb/richdoc/document"
	"github.com/iw2rmb/richdoc/internal/grapheme"
)

// SetNodes applies props to the lowest matching elements in the selection.
// A nil match matches every element.
func (s *Session) SetNodes(props document.Props, match document.Match) {
	entries := elements(lowest(s.Nodes(orElement(match))))
	if len(entries) == 0 {
		return
	}
	s.begin()
	for _, e := range entries {
		el := e.Node.(*document.Element)
		if props.Apply(el) {
			s.record(OpSetNode, e.Path, string(el.Type))
		}
	}
	s.finish()
}

// WrapNodes moves the lowest matching elements in the selection under new
// elements shaped like wrapper (its type and alignment; its children are
// ignored). Each run of consecutive siblings gets its own wrapper.
func (s *Session) WrapNodes(wrapper *document.Element, match document.Match) {
	if wrapper == nil {
		return
	}
	runs := siblingRuns(elements(lowest(s.Nodes(orElement(match)))))
	if len(runs) == 0 {
		return
	}
	s.begin()
	for i := len(runs) - 1; i >= 0; i-- {
		run := runs[i]
		first := run[0].Path
		w := &document.Element{Type: wrapper.Type, Align: wrapper.Align}
		for _, e := range run {
			w.Children = append(w.Children, e.Node)
		}
		for range run[1:] {
			s.doc.Remove(first.Next())
		}
		s.doc.Replace(first, w)
		s.record(OpWrapNodes, first, string(wrapper.Type))
	}
	s.finish()
}

// UnwrapNodes lifts the children of the lowest matching elements in the
// selection into their parent. With split, only the children overlapping
// the selection are lifted; the others stay behind in copies of the
// container placed before and after them.
func (s *Session) UnwrapNodes(match document.Match, split bool) {
	r, ok := s.Selection()
	if !ok {
		return
	}
	r = s.unhang(r)
	entries := elements(lowest(s.nodesIn(r, orElement(match))))
	if len(entries) == 0 {
		return
	}
	s.begin()
	for i := len(entries) - 1; i >= 0; i-- {
		el := entries[i].Node.(*document.Element)
		p := entries[i].Path

		n := len(el.Children)
		lo, hi := 0, n-1
		if split {
			lo, hi = childSpan(r, p, n)
		}

		var repl []document.Node
		if lo > 0 {
			repl = append(repl, &document.Element{
				Type:     el.Type,
				Align:    el.Align,
				Children: append([]document.Node(nil), el.Children[:lo]...),
			})
		}
		if n > 0 {
			repl = append(repl, el.Children[lo:hi+1]...)
		}
		if hi < n-1 {
			repl = append(repl, &document.Element{
				Type:     el.Type,
				Align:    el.Align,
				Children: append([]document.Node(nil), el.Children[hi+1:]...),
			})
		}
		s.doc.Replace(p, repl...)
		s.record(OpUnwrapNodes, p, string(el.Type))
	}
	s.finish()
}

// childSpan returns the first and last child indexes of the node at p that
// overlap r.
func childSpan(r document.Range, p document.Path, n int) (lo, hi int) {
	start, end := r.Edges()
	lo, hi = 0, n-1
	if p.IsAncestor(start.Path) {
		lo = start.Path[len(p)]
	}
	if p.IsAncestor(end.Path) {
		hi = end.Path[len(p)]
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// InsertNodesAt inserts nodes at path at. The selection is not moved.
func (s *Session) InsertNodesAt(at document.Path, nodes ...document.Node) {
	if len(nodes) == 0 {
		return
	}
	s.begin()
	if s.doc.Insert(at, nodes...) {
		s.recordInserts(at, nodes)
	}
	s.finish()
}

// InsertNodes inserts nodes at the selection and moves the selection to the
// end of the inserted content.
//
// Block nodes go next to the top-level block holding the selection start:
// before it when the start is at the block's beginning, after it when at its
// end, and between the halves of a split text block otherwise. Leaves are
// inserted inline at the selection start.
func (s *Session) InsertNodes(nodes ...document.Node) {
	r, ok := s.Selection()
	if !ok || len(nodes) == 0 {
		return
	}
	start, _ := r.Edges()

	s.begin()
	var at document.Path
	if _, inline := nodes[0].(*document.Text); inline {
		at = s.inlineInsertionPath(start)
	} else {
		at = s.blockInsertionPath(start)
	}
	if !s.doc.Insert(at, nodes...) {
		s.finish()
		return
	}
	s.recordInserts(at, nodes)

	if leaves := document.LeavesUnder(nodes[len(nodes)-1]); len(leaves) > 0 {
		last := leaves[len(leaves)-1]
		s.collapseTo(last, grapheme.Count(last.Text))
		s.pending = nil
	}
	s.finish()
}

func (s *Session) recordInserts(at document.Path, nodes []document.Node) {
	p := at.Copy()
	for _, n := range nodes {
		detail := "text"
		if el, ok := n.(*document.Element); ok {
			detail = string(el.Type)
		}
		s.record(OpInsertNode, p, detail)
		p = p.Next()
	}
}

func (s *Session) blockInsertionPath(pt document.Point) document.Path {
	top := document.Path{pt.Path[0]}
	block := s.doc.Children[pt.Path[0]]
	leaves := document.LeavesUnder(block)
	n, _ := s.doc.Node(pt.Path)
	leaf, _ := n.(*document.Text)
	if leaf == nil || len(leaves) == 0 {
		return top.Next()
	}

	atEnd := leaf == leaves[len(leaves)-1] && pt.Offset >= grapheme.Count(leaf.Text)
	atStart := leaf == leaves[0] && pt.Offset == 0
	switch {
	case atEnd:
		return top.Next()
	case atStart:
		return top
	}

	if el, ok := block.(*document.Element); ok && el.Type.HoldsText() && len(pt.Path) == 2 {
		s.splitBlock(top, pt.Path[1], pt.Offset)
	}
	return top.Next()
}

func (s *Session) inlineInsertionPath(pt document.Point) document.Path {
	n, _ := s.doc.Node(pt.Path)
	leaf, ok := n.(*document.Text)
	if !ok {
		return pt.Path.Child(0)
	}
	switch {
	case pt.Offset <= 0:
		return pt.Path
	case pt.Offset >= grapheme.Count(leaf.Text):
		return pt.Path.Next()
	}
	s.splitLeaf(pt.Path, pt.Offset)
	return pt.Path.Next()
}

// RemoveNodeAt removes the node at path at with its subtree. A selection
// inside it moves to the end of the preceding leaf, or the start of the
// following one.
func (s *Session) RemoveNodeAt(at document.Path) {
	if _, ok := s.doc.Node(at); !ok {
		return
	}
	s.begin()
	s.removeAt(at)
	s.finish()
}

// RemoveNodes removes the lowest matching nodes in the selection.
func (s *Session) RemoveNodes(match document.Match) {
	entries := lowest(s.Nodes(match))
	if len(entries) == 0 {
		return
	}
	s.begin()
	for i := len(entries) - 1; i >= 0; i-- {
		s.removeAt(entries[i].Path)
	}
	s.finish()
}

func (s *Session) removeAt(at document.Path) {
	n, ok := s.doc.Node(at)
	if !ok {
		return
	}
	gone := make(map[*document.Text]bool)
	for _, t := range document.LeavesUnder(n) {
		gone[t] = true
	}

	var prev, next *document.Text
	for _, e := range s.doc.Leaves() {
		t := e.Node.(*document.Text)
		if gone[t] {
			continue
		}
		if document.ComparePath(e.Path, at) < 0 {
			prev = t
			continue
		}
		next = t
		break
	}

	s.doc.Remove(at)
	detail := "text"
	if el, ok := n.(*document.Element); ok {
		detail = string(el.Type)
	}
	s.record(OpRemoveNode, at, detail)

	for _, ref := range []*pointRef{&s.sel.anchor, &s.sel.focus} {
		if !gone[ref.leaf] {
			continue
		}
		switch {
		case prev != nil:
			*ref = pointRef{leaf: prev, offset: grapheme.Count(prev.Text)}
		case next != nil:
			*ref = pointRef{leaf: next}
		default:
			*ref = pointRef{}
		}
	}
}

// splitLeaf cuts the leaf at p before cluster off; the tail becomes a new
// sibling. Selection refs past off follow the tail.
func (s *Session) splitLeaf(p document.Path, off int) *document.Text {
	n, _ := s.doc.Node(p)
	t := n.(*document.Text)
	before, after := grapheme.Cut(t.Text, off)
	tail := &document.Text{Text: after, Marks: t.Marks}
	t.Text = before
	s.doc.Insert(p.Next(), tail)
	s.moveRefsPast(t, tail, off)
	s.record(OpSplitNode, p, "text")
	return tail
}

// splitBlock cuts the text block at p inside leaf k before cluster off. The
// second half becomes a new block of the same type and alignment right after
// p, which is returned.
func (s *Session) splitBlock(p document.Path, k, off int) *document.Element {
	block, _ := s.doc.Element(p)
	t := block.Children[k].(*document.Text)
	before, after := grapheme.Cut(t.Text, off)
	tail := &document.Text{Text: after, Marks: t.Marks}
	t.Text = before

	second := &document.Element{Type: block.Type, Align: block.Align}
	second.Children = append(second.Children, tail)
	second.Children = append(second.Children, block.Children[k+1:]...)
	block.Children = append([]document.Node(nil), block.Children[:k+1]...)

	s.doc.Insert(p.Next(), second)
	s.moveRefsPast(t, tail, off)
	s.record(OpSplitNode, p, string(block.Type))
	return second
}

func (s *Session) moveRefsPast(from, to *document.Text, off int) {
	for _, ref := range []*pointRef{&s.sel.anchor, &s.sel.focus} {
		if ref.leaf == from && ref.offset > off {
			ref.leaf = to
			ref.offset -= off
		}
	}
}

func orElement(match document.Match) document.Match {
	if match != nil {
		return match
	}
	return func(n document.Node, _ document.Path) bool {
		_, ok := n.(*document.Element)
		return ok
	}
}
