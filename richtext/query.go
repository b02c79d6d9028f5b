package richtext

import "github.com/iw2rmb/richdoc/document"

// IsMarkActive reports whether m is set in the marks at the selection.
func IsMarkActive(e Editor, m document.Mark) bool {
	return e.Marks().Has(m)
}

// IsBlockActive reports whether an element overlapping the selection carries
// f: its type when f is a Type, its alignment when f is an Align.
func IsBlockActive(e Editor, f document.Format) bool {
	if _, ok := e.Selection(); !ok {
		return false
	}
	match := matchFormat(f)
	if match == nil {
		return false
	}
	return len(e.Nodes(match)) > 0
}

// IsTableActive reports whether the selection is inside a table.
func IsTableActive(e Editor) bool {
	return IsBlockActive(e, document.TypeTable)
}

func matchFormat(f document.Format) document.Match {
	switch f := f.(type) {
	case document.Type:
		return document.MatchType(f)
	case document.Align:
		if f == document.AlignNone {
			return nil
		}
		return document.MatchElement(func(el *document.Element) bool {
			return el.Align == f
		})
	default:
		return nil
	}
}

// enclosing returns the outermost element of type t overlapping the
// selection.
func enclosing(e Editor, t document.Type) (*document.Element, document.Path, bool) {
	entries := e.Nodes(document.MatchType(t))
	if len(entries) == 0 {
		return nil, nil, false
	}
	el, ok := entries[0].Node.(*document.Element)
	if !ok {
		return nil, nil, false
	}
	return el, entries[0].Path, true
}
