package document

// Mark is an inline formatting flag on a text leaf.
type Mark uint8

const (
	MarkBold Mark = iota
	MarkItalic
	MarkUnderline
	MarkCode
)

var markNames = [...]string{
	MarkBold:      "bold",
	MarkItalic:    "italic",
	MarkUnderline: "underline",
	MarkCode:      "code",
}

// AllMarks lists every mark in display order.
var AllMarks = []Mark{MarkBold, MarkItalic, MarkUnderline, MarkCode}

func (m Mark) String() string {
	if int(m) < len(markNames) {
		return markNames[m]
	}
	return "unknown"
}

// ParseMark maps a mark name to its Mark.
func ParseMark(s string) (Mark, bool) {
	for i, name := range markNames {
		if name == s {
			return Mark(i), true
		}
	}
	return 0, false
}

// Marks is the set of marks on a leaf. Any subset may be set.
type Marks struct {
	Bold      bool
	Italic    bool
	Underline bool
	Code      bool
}

// Has reports whether m is set.
func (ms Marks) Has(m Mark) bool {
	switch m {
	case MarkBold:
		return ms.Bold
	case MarkItalic:
		return ms.Italic
	case MarkUnderline:
		return ms.Underline
	case MarkCode:
		return ms.Code
	default:
		return false
	}
}

// With returns a copy of ms with m set to on.
func (ms Marks) With(m Mark, on bool) Marks {
	switch m {
	case MarkBold:
		ms.Bold = on
	case MarkItalic:
		ms.Italic = on
	case MarkUnderline:
		ms.Underline = on
	case MarkCode:
		ms.Code = on
	}
	return ms
}

// List returns the set marks in display order.
func (ms Marks) List() []Mark {
	var out []Mark
	for _, m := range AllMarks {
		if ms.Has(m) {
			out = append(out, m)
		}
	}
	return out
}
