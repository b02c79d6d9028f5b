package document

// Props is a partial set of element properties. A zero Type leaves the type
// unchanged; Align is only applied when SetAlign is true, and AlignNone then
// clears it.
type Props struct {
	Type     Type
	Align    Align
	SetAlign bool
}

func TypeProps(t Type) Props {
	return Props{Type: t}
}

func AlignProps(a Align) Props {
	return Props{Align: a, SetAlign: true}
}

// ClearAlignProps removes any alignment.
func ClearAlignProps() Props {
	return Props{SetAlign: true}
}

// Apply writes p onto el and reports whether anything changed.
func (p Props) Apply(el *Element) bool {
	changed := false
	if p.Type != "" && el.Type != p.Type {
		el.Type = p.Type
		changed = true
	}
	if p.SetAlign && el.Align != p.Align {
		el.Align = p.Align
		changed = true
	}
	return changed
}
