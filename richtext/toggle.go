package richtext

import "github.com/iw2rmb/richdoc/document"

// ToggleMark flips m on the selection.
func ToggleMark(e Editor, m document.Mark) {
	if IsMarkActive(e, m) {
		e.RemoveMark(m)
		return
	}
	e.AddMark(m)
}

// ToggleBlock switches the text blocks in the selection to or from format f.
//
// A Type toggles the block type: an active type falls back to paragraph, a
// list type turns the blocks into list items wrapped in a new list, any other
// type is set directly. List ancestors of the selection are split off and
// unwrapped first so no stale list survives a type change.
//
// An Align toggles the alignment and leaves types and list membership alone.
func ToggleBlock(e Editor, f document.Format) {
	if !toggleable(f) {
		return
	}
	if _, ok := e.Selection(); !ok {
		return
	}

	active := IsBlockActive(e, f)

	var props document.Props
	switch f := f.(type) {
	case document.Align:
		if active {
			props = document.ClearAlignProps()
		} else {
			props = document.AlignProps(f)
		}
		e.SetNodes(props, textBlocks)

	case document.Type:
		e.UnwrapNodes(lists, true)
		switch {
		case active:
			props = document.TypeProps(document.TypeParagraph)
		case f.IsList():
			props = document.TypeProps(document.TypeListItem)
		default:
			props = document.TypeProps(f)
		}
		e.SetNodes(props, textBlocks)

		if !active && f.IsList() {
			e.WrapNodes(document.NewElement(f), document.MatchType(document.TypeListItem))
		}
	}
}

// toggleable reports whether f can be passed to ToggleBlock. List items and
// table parts are structural and never toggled directly.
func toggleable(f document.Format) bool {
	switch f := f.(type) {
	case document.Align:
		return f.Valid()
	case document.Type:
		return f.IsList() || (f.IsTextBlock() && f != document.TypeListItem)
	default:
		return false
	}
}

var (
	textBlocks = document.MatchElement(func(el *document.Element) bool {
		return el.Type.IsTextBlock()
	})
	lists = document.MatchElement(func(el *document.Element) bool {
		return el.Type.IsList()
	})
)
