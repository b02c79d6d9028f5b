package tree

import (
	"github.com/iw2rmb/richdoc/document"
	"github.com/iw2rmb/richdoc/internal/grapheme"
)

// Nodes returns the nodes matching match that overlap the selection, in
// document order. Ancestors of the selection edges count as overlapping.
// The range is unhung first, so a selection ending at the very start of a
// block does not reach into it. A nil match matches every node.
func (s *Session) Nodes(match document.Match) []document.Entry {
	r, ok := s.Selection()
	if !ok {
		return nil
	}
	return s.nodesIn(s.unhang(r), match)
}

func (s *Session) nodesIn(r document.Range, match document.Match) []document.Entry {
	var out []document.Entry
	s.doc.Walk(func(n document.Node, p document.Path) bool {
		if !r.Includes(p) {
			return false
		}
		if match == nil || match(n, p) {
			out = append(out, document.Entry{Node: n, Path: p})
		}
		return true
	})
	return out
}

// Marks returns the marks in effect at the selection: pending marks if any,
// else the marks of the leaf holding a collapsed selection, else those of the
// first leaf with selected text.
func (s *Session) Marks() document.Marks {
	if s.pending != nil {
		return *s.pending
	}
	r, ok := s.Selection()
	if !ok {
		return document.Marks{}
	}
	if r.IsCollapsed() {
		if n, ok := s.doc.Node(r.Anchor.Path); ok {
			if t, ok := n.(*document.Text); ok {
				return t.Marks
			}
		}
		return document.Marks{}
	}
	if segs := s.segments(r); len(segs) > 0 {
		return segs[0].leaf.Marks
	}
	for _, e := range s.nodesIn(r, document.MatchText) {
		return e.Node.(*document.Text).Marks
	}
	return document.Marks{}
}

// unhang pulls the end of an expanded range that sits at offset 0 of a
// block's first leaf back to the end of the previous leaf.
func (s *Session) unhang(r document.Range) document.Range {
	start, end := r.Edges()
	out := document.Range{Anchor: start, Focus: end}
	if r.IsCollapsed() || start.Offset != 0 || end.Offset != 0 || end.Path.Last() != 0 {
		return out
	}
	leaves := s.doc.Leaves()
	for i := len(leaves) - 1; i >= 0; i-- {
		l := leaves[i]
		if document.ComparePath(l.Path, end.Path) >= 0 {
			continue
		}
		if document.ComparePath(l.Path, start.Path) < 0 {
			break
		}
		t := l.Node.(*document.Text)
		out.Focus = document.Point{Path: l.Path, Offset: grapheme.Count(t.Text)}
		return out
	}
	return out
}

// segment is the selected part [lo, hi) of one leaf.
type segment struct {
	leaf   *document.Text
	lo, hi int
}

func (s *Session) segments(r document.Range) []segment {
	start, end := r.Edges()
	var out []segment
	for _, e := range s.nodesIn(r, document.MatchText) {
		t := e.Node.(*document.Text)
		lo, hi := 0, grapheme.Count(t.Text)
		if e.Path.Equal(start.Path) {
			lo = grapheme.Clamp(t.Text, start.Offset)
		}
		if e.Path.Equal(end.Path) {
			hi = grapheme.Clamp(t.Text, end.Offset)
		}
		if lo >= hi {
			continue
		}
		out = append(out, segment{leaf: t, lo: lo, hi: hi})
	}
	return out
}

// lowest keeps the entries that have no matching descendant in entries.
func lowest(entries []document.Entry) []document.Entry {
	var out []document.Entry
	for i, e := range entries {
		covered := false
		for _, f := range entries[i+1:] {
			if e.Path.IsAncestor(f.Path) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, e)
		}
	}
	return out
}

// siblingRuns groups entries into runs of consecutive siblings.
func siblingRuns(entries []document.Entry) [][]document.Entry {
	var runs [][]document.Entry
	for _, e := range entries {
		if n := len(runs); n > 0 {
			run := runs[n-1]
			last := run[len(run)-1].Path
			if last.Parent().Equal(e.Path.Parent()) && last.Last()+1 == e.Path.Last() {
				runs[n-1] = append(run, e)
				continue
			}
		}
		runs = append(runs, []document.Entry{e})
	}
	return runs
}

func elements(entries []document.Entry) []document.Entry {
	var out []document.Entry
	for _, e := range entries {
		if _, ok := e.Node.(*document.Element); ok {
			out = append(out, e)
		}
	}
	return out
}
