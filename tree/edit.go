package tree

import (
	"github.com/iw2rmb/richdoc/document"
	"github.com/iw2rmb/richdoc/internal/grapheme"
)

// InsertText types text at the selection. An expanded selection has its text
// deleted first. Pending marks, if any, apply to the inserted text.
func (s *Session) InsertText(text string) {
	if text == "" {
		return
	}
	r, ok := s.Selection()
	if !ok {
		return
	}

	s.begin()
	if !r.IsCollapsed() {
		s.deleteRange(r)
	}
	ref := s.sel.anchor
	t := ref.leaf
	p, ok := s.pathOf(t)
	if !ok {
		s.finish()
		return
	}

	marks := t.Marks
	if s.pending != nil {
		marks = *s.pending
		s.pending = nil
	}

	before, after := grapheme.Cut(t.Text, ref.offset)
	if marks == t.Marks {
		t.Text = before + text + after
		s.collapseTo(t, grapheme.Count(before+text))
	} else {
		typed := &document.Text{Text: text, Marks: marks}
		tail := &document.Text{Text: after, Marks: t.Marks}
		t.Text = before
		s.doc.Replace(p, t, typed, tail)
		s.collapseTo(typed, grapheme.Count(text))
	}
	s.record(OpInsertText, p, text)
	s.finish()
}

// InsertBreak splits the text block at the selection in two and puts the
// cursor at the start of the second. Table cells are never split.
func (s *Session) InsertBreak() {
	r, ok := s.Selection()
	if !ok {
		return
	}
	start, _ := r.Edges()
	blockPath := start.Path.Parent()
	block, ok := s.doc.Element(blockPath)
	if !ok || !block.Type.IsTextBlock() {
		return
	}

	s.begin()
	if !r.IsCollapsed() {
		s.deleteRange(r)
	}
	p, ok := s.pathOf(s.sel.anchor.leaf)
	if !ok {
		s.finish()
		return
	}
	second := s.splitBlock(p.Parent(), p.Last(), s.sel.anchor.offset)
	s.collapseTo(second.Children[0].(*document.Text), 0)
	s.finish()
}

// DeleteBackward deletes the selected text, or the cluster before a
// collapsed selection. At the start of a text block the block merges into a
// preceding sibling text block.
func (s *Session) DeleteBackward() {
	r, ok := s.Selection()
	if !ok {
		return
	}
	if !r.IsCollapsed() {
		s.begin()
		s.deleteRange(r)
		s.finish()
		return
	}

	pt := r.Anchor
	t := s.sel.anchor.leaf
	if pt.Offset > 0 {
		s.begin()
		s.removeCluster(t, pt.Path, pt.Offset-1)
		s.finish()
		return
	}

	if prevPath, ok := pt.Path.Previous(); ok {
		n, _ := s.doc.Node(prevPath)
		prev, ok := n.(*document.Text)
		if !ok || prev.Text == "" {
			return
		}
		s.begin()
		s.removeCluster(prev, prevPath, grapheme.Count(prev.Text)-1)
		s.finish()
		return
	}

	blockPath := pt.Path.Parent()
	block, ok := s.doc.Element(blockPath)
	if !ok || !block.Type.IsTextBlock() {
		return
	}
	prevBlockPath, ok := blockPath.Previous()
	if !ok {
		return
	}
	prevBlock, ok := s.doc.Element(prevBlockPath)
	if !ok || !prevBlock.Type.IsTextBlock() {
		return
	}
	leaves := document.LeavesUnder(prevBlock)
	if len(leaves) == 0 {
		return
	}

	s.begin()
	last := leaves[len(leaves)-1]
	end := grapheme.Count(last.Text)
	prevBlock.Children = append(prevBlock.Children, block.Children...)
	s.doc.Remove(blockPath)
	s.record(OpMergeNode, blockPath, string(block.Type))
	s.collapseTo(last, end)
	s.finish()
}

// removeCluster deletes cluster i of t and collapses the selection there.
func (s *Session) removeCluster(t *document.Text, p document.Path, i int) {
	removed := grapheme.Slice(t.Text, i, i+1)
	t.Text = grapheme.Slice(t.Text, 0, i) + grapheme.Slice(t.Text, i+1, grapheme.Count(t.Text))
	s.record(OpRemoveText, p, removed)
	s.collapseTo(t, i)
}

// deleteRange removes the selected text inside every leaf of r without
// joining blocks, and collapses the selection to r's start.
func (s *Session) deleteRange(r document.Range) {
	segs := s.segments(r)
	start, _ := r.Edges()
	startRef, _ := s.refAt(start)
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		n := grapheme.Count(seg.leaf.Text)
		removed := grapheme.Slice(seg.leaf.Text, seg.lo, seg.hi)
		seg.leaf.Text = grapheme.Slice(seg.leaf.Text, 0, seg.lo) + grapheme.Slice(seg.leaf.Text, seg.hi, n)
		if p, ok := s.pathOf(seg.leaf); ok {
			s.record(OpRemoveText, p, removed)
		}
	}
	if startRef.leaf != nil {
		s.collapseTo(startRef.leaf, startRef.offset)
	}
}
