package tree

import (
	"github.com/iw2rmb/richdoc/document"
	"github.com/iw2rmb/richdoc/internal/grapheme"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveBlock
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // block start (or doc start for MoveDoc)
	DirEnd  // block end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, moves only the focus; if false collapses the selection
}

// Move moves the selection focus. Without a selection it selects the start
// of the document.
func (s *Session) Move(m Move) {
	leaves := s.doc.Leaves()
	if len(leaves) == 0 {
		return
	}
	r, ok := s.Selection()
	if !ok {
		ref := pointRef{leaf: leaves[0].Node.(*document.Text)}
		s.setSelection(selectionState{active: true, anchor: ref, focus: ref})
		return
	}

	if !m.Extend && !r.IsCollapsed() && m.Unit == MoveGrapheme && (m.Dir == DirLeft || m.Dir == DirRight) {
		start, end := r.Edges()
		edge := start
		if m.Dir == DirRight {
			edge = end
		}
		ref, _ := s.refAt(edge)
		s.setSelection(selectionState{active: true, anchor: ref, focus: ref})
		return
	}

	focus, ok := s.refAt(movePoint(leaves, r.Focus, m))
	if !ok {
		return
	}
	anchor := s.sel.anchor
	if !m.Extend {
		anchor = focus
	}
	s.setSelection(selectionState{active: true, anchor: anchor, focus: focus})
}

func movePoint(leaves []document.Entry, p document.Point, m Move) document.Point {
	i := leafIndex(leaves, p.Path)
	if i < 0 {
		return p
	}
	switch m.Unit {
	case MoveGrapheme:
		return moveGrapheme(leaves, i, p, m.Dir)
	case MoveBlock:
		return moveBlock(leaves, i, p, m.Dir)
	case MoveDoc:
		return moveDoc(leaves, p, m.Dir)
	default:
		return p
	}
}

func moveGrapheme(leaves []document.Entry, i int, p document.Point, dir MoveDir) document.Point {
	n := leafLen(leaves[i])
	switch dir {
	case DirLeft:
		if p.Offset > 0 {
			return document.Point{Path: p.Path, Offset: p.Offset - 1}
		}
		if i == 0 {
			return p
		}
		prev := leaves[i-1]
		off := leafLen(prev)
		if sameBlock(prev.Path, p.Path) && off > 0 {
			off--
		}
		return document.Point{Path: prev.Path, Offset: off}
	case DirRight:
		if p.Offset < n {
			return document.Point{Path: p.Path, Offset: p.Offset + 1}
		}
		if i == len(leaves)-1 {
			return p
		}
		next := leaves[i+1]
		off := 0
		if sameBlock(next.Path, p.Path) && leafLen(next) > 0 {
			off = 1
		}
		return document.Point{Path: next.Path, Offset: off}
	default:
		return moveBlock(leaves, i, p, dir)
	}
}

func moveBlock(leaves []document.Entry, i int, p document.Point, dir MoveDir) document.Point {
	first, last := blockBounds(leaves, i)
	switch dir {
	case DirHome:
		return document.Point{Path: leaves[first].Path}
	case DirEnd:
		return document.Point{Path: leaves[last].Path, Offset: leafLen(leaves[last])}
	case DirUp, DirLeft:
		if first == 0 {
			return document.Point{Path: leaves[0].Path}
		}
		prevFirst, _ := blockBounds(leaves, first-1)
		return document.Point{Path: leaves[prevFirst].Path}
	case DirDown, DirRight:
		if last == len(leaves)-1 {
			return document.Point{Path: leaves[last].Path, Offset: leafLen(leaves[last])}
		}
		return document.Point{Path: leaves[last+1].Path}
	default:
		return p
	}
}

func moveDoc(leaves []document.Entry, p document.Point, dir MoveDir) document.Point {
	switch dir {
	case DirHome, DirUp, DirLeft:
		return document.Point{Path: leaves[0].Path}
	case DirEnd, DirDown, DirRight:
		last := leaves[len(leaves)-1]
		return document.Point{Path: last.Path, Offset: leafLen(last)}
	default:
		return p
	}
}

// blockBounds returns the indexes of the first and last leaf sharing a
// parent with leaves[i].
func blockBounds(leaves []document.Entry, i int) (first, last int) {
	first, last = i, i
	for first > 0 && sameBlock(leaves[first-1].Path, leaves[i].Path) {
		first--
	}
	for last < len(leaves)-1 && sameBlock(leaves[last+1].Path, leaves[i].Path) {
		last++
	}
	return first, last
}

func leafIndex(leaves []document.Entry, p document.Path) int {
	for i, e := range leaves {
		if e.Path.Equal(p) {
			return i
		}
	}
	return -1
}

func leafLen(e document.Entry) int {
	return grapheme.Count(e.Node.(*document.Text).Text)
}

func sameBlock(a, b document.Path) bool {
	return a.Parent().Equal(b.Parent())
}
