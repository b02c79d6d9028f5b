package tree

import (
	"github.com/iw2rmb/richdoc/document"
	"github.com/iw2rmb/richdoc/internal/grapheme"
)

// AddMark sets m on the selected text. With a collapsed selection the mark
// becomes pending and applies to the next inserted text.
func (s *Session) AddMark(m document.Mark) { s.setMark(m, true) }

// RemoveMark clears m from the selected text, or from the pending marks when
// the selection is collapsed.
func (s *Session) RemoveMark(m document.Mark) { s.setMark(m, false) }

func (s *Session) setMark(m document.Mark, on bool) {
	r, ok := s.Selection()
	if !ok {
		return
	}

	if r.IsCollapsed() {
		cur := s.Marks()
		next := cur.With(m, on)
		if next == cur {
			return
		}
		s.begin()
		s.pending = &next
		s.record(OpSetMarks, r.Anchor.Path, m.String())
		s.finish()
		return
	}

	segs := s.segments(r)
	s.begin()
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if seg.leaf.Marks.Has(m) == on {
			continue
		}
		t := s.isolate(seg)
		t.Marks = t.Marks.With(m, on)
		if p, ok := s.pathOf(t); ok {
			s.record(OpSetMarks, p, m.String())
		}
	}
	s.finish()
}

// isolate splits seg.leaf so that exactly [lo, hi) stays in it; the text
// before and after moves to new sibling leaves with the same marks.
func (s *Session) isolate(seg segment) *document.Text {
	t := seg.leaf
	p, ok := s.pathOf(t)
	if !ok {
		return t
	}
	n := grapheme.Count(t.Text)

	var head, tail *document.Text
	if seg.lo > 0 {
		head = &document.Text{Text: grapheme.Slice(t.Text, 0, seg.lo), Marks: t.Marks}
	}
	if seg.hi < n {
		tail = &document.Text{Text: grapheme.Slice(t.Text, seg.hi, n), Marks: t.Marks}
	}
	if head == nil && tail == nil {
		return t
	}

	for _, ref := range []*pointRef{&s.sel.anchor, &s.sel.focus} {
		if ref.leaf != t {
			continue
		}
		switch {
		case ref.offset < seg.lo:
			ref.leaf = head
		case ref.offset > seg.hi:
			ref.leaf = tail
			ref.offset -= seg.hi
		default:
			ref.offset -= seg.lo
		}
	}
	t.Text = grapheme.Slice(t.Text, seg.lo, seg.hi)

	pieces := make([]document.Node, 0, 3)
	if head != nil {
		pieces = append(pieces, head)
	}
	pieces = append(pieces, t)
	if tail != nil {
		pieces = append(pieces, tail)
	}
	s.doc.Replace(p, pieces...)
	s.record(OpSplitNode, p, "text")
	return t
}
