package tree

import (
	"github.com/iw2rmb/richdoc/document"
	"github.com/iw2rmb/richdoc/internal/grapheme"
)

// normalize restores the structural rules every mutation relies on:
//   - containers (lists, tables, rows) without children are removed;
//   - text-holding elements keep at least one leaf, drop empty leaves next to
//     other leaves and merge neighbouring leaves with equal marks;
//   - the document keeps at least one block.
func (s *Session) normalize() {
	kept := make([]document.Node, 0, len(s.doc.Children))
	for i, n := range s.doc.Children {
		p := document.Path{i}
		if el, ok := n.(*document.Element); ok && !s.normalizeElement(el, p) {
			s.record(OpRemoveNode, p, string(el.Type))
			continue
		}
		kept = append(kept, n)
	}
	if len(kept) == 0 {
		kept = append(kept, document.NewParagraph())
		s.record(OpInsertNode, document.Path{0}, string(document.TypeParagraph))
	}
	s.doc.Children = kept
}

// normalizeElement reports whether el should stay in the tree.
func (s *Session) normalizeElement(el *document.Element, p document.Path) bool {
	if el.Type.HoldsText() {
		el.Children = s.normalizeLeaves(el.Children, p)
		return true
	}
	kept := make([]document.Node, 0, len(el.Children))
	for i, c := range el.Children {
		cp := p.Child(i)
		if child, ok := c.(*document.Element); ok && !s.normalizeElement(child, cp) {
			s.record(OpRemoveNode, cp, string(child.Type))
			continue
		}
		kept = append(kept, c)
	}
	el.Children = kept
	return len(kept) > 0
}

func (s *Session) normalizeLeaves(children []document.Node, p document.Path) []document.Node {
	if len(children) == 0 {
		s.record(OpInsertNode, p.Child(0), "text")
		return []document.Node{document.NewText("")}
	}
	if len(children) > 1 {
		children = s.dropEmptyLeaves(children, p)
	}

	out := make([]document.Node, 0, len(children))
	for i, c := range children {
		t, ok := c.(*document.Text)
		if ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*document.Text); ok && prev.Marks == t.Marks {
				shift := grapheme.Count(prev.Text)
				s.moveRefs(t, prev, func(off int) int { return off + shift })
				prev.Text += t.Text
				s.record(OpMergeNode, p.Child(i), "text")
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// dropEmptyLeaves removes empty leaves while at least one leaf remains.
// Selection refs on a dropped leaf move to the end of the previous kept leaf,
// or the start of the next one.
func (s *Session) dropEmptyLeaves(children []document.Node, p document.Path) []document.Node {
	kept := make([]document.Node, 0, len(children))
	var dropped []int
	for i, c := range children {
		if t, ok := c.(*document.Text); ok && t.Text == "" {
			dropped = append(dropped, i)
			continue
		}
		kept = append(kept, c)
	}
	if len(dropped) == 0 {
		return children
	}
	if len(kept) == 0 {
		// All empty: keep the first leaf.
		first := children[0].(*document.Text)
		for _, i := range dropped[1:] {
			t := children[i].(*document.Text)
			s.moveRefs(t, first, func(int) int { return 0 })
			s.record(OpRemoveNode, p.Child(i), "text")
		}
		return children[:1:1]
	}

	for _, i := range dropped {
		t := children[i].(*document.Text)
		if prev := neighbourLeaf(children, i, -1); prev != nil {
			end := grapheme.Count(prev.Text)
			s.moveRefs(t, prev, func(int) int { return end })
		} else if next := neighbourLeaf(children, i, 1); next != nil {
			s.moveRefs(t, next, func(int) int { return 0 })
		}
		s.record(OpRemoveNode, p.Child(i), "text")
	}
	return kept
}

// neighbourLeaf finds the nearest non-empty leaf from i in direction dir.
func neighbourLeaf(children []document.Node, i, dir int) *document.Text {
	for j := i + dir; j >= 0 && j < len(children); j += dir {
		if t, ok := children[j].(*document.Text); ok && t.Text != "" {
			return t
		}
	}
	return nil
}
