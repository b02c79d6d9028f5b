package tree

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/richdoc/document"
	"github.com/iw2rmb/richdoc/internal/grapheme"
)

type Options struct {
	// Logger receives one debug entry per applied operation.
	// Default: zap.NewNop().
	Logger *zap.Logger
}

// pointRef anchors a selection point to a leaf so it survives edits that
// move the leaf around the tree.
type pointRef struct {
	leaf   *document.Text
	offset int
}

type selectionState struct {
	active bool
	anchor pointRef
	focus  pointRef
}

// Session is one editing session over a document: the tree, the selection
// and the marks pending for the next typed text.
type Session struct {
	doc     *document.Document
	version uint64

	sel     selectionState
	pending *document.Marks

	log    *zap.Logger
	change *changeBuilder

	lastChange    Change
	hasLastChange bool
}

// New starts a session over doc, which the session takes ownership of.
// A nil doc starts from one empty paragraph.
func New(doc *document.Document, opt Options) *Session {
	if doc == nil {
		doc = document.New()
	}
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{doc: doc, log: log}
	s.normalize()
	return s
}

// Document returns the live tree. Callers must not modify it.
func (s *Session) Document() *document.Document { return s.doc }

func (s *Session) Version() uint64 { return s.version }

// Selection returns the current selection with resolved paths.
func (s *Session) Selection() (document.Range, bool) {
	if !s.sel.active {
		return document.Range{}, false
	}
	anchor, ok := s.resolve(s.sel.anchor)
	if !ok {
		return document.Range{}, false
	}
	focus, ok := s.resolve(s.sel.focus)
	if !ok {
		return document.Range{}, false
	}
	return document.Range{Anchor: anchor, Focus: focus}, true
}

// Select sets the selection. Points addressing an element resolve to the
// start of its first leaf; offsets are clamped. Unresolvable ranges are
// ignored.
func (s *Session) Select(r document.Range) {
	anchor, ok := s.refAt(r.Anchor)
	if !ok {
		return
	}
	focus, ok := s.refAt(r.Focus)
	if !ok {
		return
	}
	s.setSelection(selectionState{active: true, anchor: anchor, focus: focus})
}

// Deselect clears the selection.
func (s *Session) Deselect() {
	if !s.sel.active {
		return
	}
	s.setSelection(selectionState{})
}

func (s *Session) setSelection(next selectionState) {
	if next == s.sel {
		return
	}
	s.sel = next
	s.pending = nil
	s.version++
}

func (s *Session) collapseTo(leaf *document.Text, offset int) {
	ref := pointRef{leaf: leaf, offset: offset}
	s.sel = selectionState{active: true, anchor: ref, focus: ref}
}

func (s *Session) refAt(p document.Point) (pointRef, bool) {
	n, ok := s.doc.Node(p.Path)
	if !ok {
		return pointRef{}, false
	}
	if t, ok := n.(*document.Text); ok {
		return pointRef{leaf: t, offset: grapheme.Clamp(t.Text, p.Offset)}, true
	}
	leaves := document.LeavesUnder(n)
	if len(leaves) == 0 {
		return pointRef{}, false
	}
	return pointRef{leaf: leaves[0]}, true
}

func (s *Session) resolve(ref pointRef) (document.Point, bool) {
	if ref.leaf == nil {
		return document.Point{}, false
	}
	p, ok := s.pathOf(ref.leaf)
	if !ok {
		return document.Point{}, false
	}
	return document.Point{Path: p, Offset: grapheme.Clamp(ref.leaf.Text, ref.offset)}, true
}

func (s *Session) pathOf(target document.Node) (document.Path, bool) {
	var found document.Path
	s.doc.Walk(func(n document.Node, p document.Path) bool {
		if found != nil {
			return false
		}
		if n == target {
			found = p
			return false
		}
		return true
	})
	return found, found != nil
}

// moveRefs points selection refs on from at to, rewriting their offsets.
func (s *Session) moveRefs(from, to *document.Text, offset func(int) int) {
	for _, ref := range []*pointRef{&s.sel.anchor, &s.sel.focus} {
		if ref.leaf == from {
			ref.leaf = to
			ref.offset = offset(ref.offset)
		}
	}
}

// repairSelection moves refs whose leaf left the tree to the document start.
func (s *Session) repairSelection() {
	if !s.sel.active {
		return
	}
	leaves := s.doc.Leaves()
	if len(leaves) == 0 {
		s.sel = selectionState{}
		return
	}
	first := leaves[0].Node.(*document.Text)
	for _, ref := range []*pointRef{&s.sel.anchor, &s.sel.focus} {
		if ref.leaf == nil {
			*ref = pointRef{leaf: first}
			continue
		}
		if _, ok := s.pathOf(ref.leaf); !ok {
			*ref = pointRef{leaf: first}
		}
	}
}
