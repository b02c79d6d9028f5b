package richtext

import (
	"fmt"
	"testing"

	"github.com/iw2rmb/richdoc/document"
)

func TestToggleMark_TwiceRestoresMarks(t *testing.T) {
	for _, m := range document.AllMarks {
		t.Run(m.String(), func(t *testing.T) {
			s := newSession(document.NewParagraph("hello"))
			s.Select(span(pt(1, 0, 0), pt(4, 0, 0)))
			before := s.Document().Clone()

			ToggleMark(s, m)
			if !IsMarkActive(s, m) {
				t.Fatalf("%s after first toggle: got inactive, want active", m)
			}
			ToggleMark(s, m)
			if IsMarkActive(s, m) {
				t.Fatalf("%s after second toggle: got active, want inactive", m)
			}
			assertDoc(t, s, before)
		})
	}
}

func TestToggleMark_SplitsLeavesAtSelectionEdges(t *testing.T) {
	s := newSession(document.NewParagraph("hello"))
	s.Select(span(pt(1, 0, 0), pt(4, 0, 0)))

	ToggleMark(s, document.MarkBold)

	want := document.New(document.NewElement(document.TypeParagraph,
		document.NewText("h"),
		&document.Text{Text: "ell", Marks: document.Marks{Bold: true}},
		document.NewText("o"),
	))
	assertDoc(t, s, want)

	r, ok := s.Selection()
	if !ok {
		t.Fatalf("expected selection to survive")
	}
	if got := document.PlainText(s.Document().Children[0]); got != "hello" {
		t.Fatalf("text: got %q, want %q", got, "hello")
	}
	if want := span(pt(0, 0, 1), pt(3, 0, 1)); !r.Anchor.Path.Equal(want.Anchor.Path) || r.Anchor.Offset != 0 || r.Focus.Offset != 3 {
		t.Fatalf("selection: got %+v, want %+v", r, want)
	}
}

func TestToggleMark_CollapsedSelectionIsPending(t *testing.T) {
	s := newSession(document.NewParagraph("ab"))
	s.Select(caret(1, 0, 0))

	ToggleMark(s, document.MarkItalic)
	if !IsMarkActive(s, document.MarkItalic) {
		t.Fatalf("italic: got inactive, want active")
	}
	s.InsertText("X")

	want := document.New(document.NewElement(document.TypeParagraph,
		document.NewText("a"),
		&document.Text{Text: "X", Marks: document.Marks{Italic: true}},
		document.NewText("b"),
	))
	assertDoc(t, s, want)

	ToggleMark(s, document.MarkItalic)
	ToggleMark(s, document.MarkItalic)
	if !IsMarkActive(s, document.MarkItalic) {
		t.Fatalf("italic after pair toggle: got inactive, want active")
	}
}

func TestToggleMark_MarksAreIndependent(t *testing.T) {
	s := newSession(document.NewParagraph("abc"))
	s.Select(span(pt(0, 0, 0), pt(3, 0, 0)))

	ToggleMark(s, document.MarkBold)
	ToggleMark(s, document.MarkUnderline)

	if !IsMarkActive(s, document.MarkBold) || !IsMarkActive(s, document.MarkUnderline) {
		t.Fatalf("bold and underline: want both active, got marks %+v", s.Marks())
	}
	if IsMarkActive(s, document.MarkCode) {
		t.Fatalf("code: got active, want inactive")
	}
}

func TestToggleBlock_HeadingOnAndOff(t *testing.T) {
	s := newSession()
	s.Select(caret(0, 0, 0))

	ToggleBlock(s, document.TypeHeadingOne)
	if got := s.Document().Children[0].(*document.Element).Type; got != document.TypeHeadingOne {
		t.Fatalf("type after first toggle: got %s, want %s", got, document.TypeHeadingOne)
	}

	ToggleBlock(s, document.TypeHeadingOne)
	if got := s.Document().Children[0].(*document.Element).Type; got != document.TypeParagraph {
		t.Fatalf("type after second toggle: got %s, want %s", got, document.TypeParagraph)
	}
}

func TestToggleBlock_TypesAreExclusive(t *testing.T) {
	types := []document.Type{
		document.TypeParagraph,
		document.TypeHeadingOne,
		document.TypeHeadingTwo,
		document.TypeBlockQuote,
		document.TypeBulletedList,
		document.TypeNumberedList,
	}
	for _, a := range types {
		for _, b := range types {
			if a == b {
				continue
			}
			t.Run(fmt.Sprintf("%s_then_%s", a, b), func(t *testing.T) {
				s := newSession(document.NewParagraph("x"))
				s.Select(caret(1, 0, 0))

				ToggleBlock(s, a)
				ToggleBlock(s, b)

				if IsBlockActive(s, a) {
					t.Fatalf("%s: got active, want inactive", a)
				}
				if !IsBlockActive(s, b) {
					t.Fatalf("%s: got inactive, want active", b)
				}
				assertValid(t, s)
			})
		}
	}
}

func TestToggleBlock_ListWrapsItems(t *testing.T) {
	s := newSession(
		document.NewParagraph("a"),
		document.NewParagraph("b"),
		document.NewParagraph("c"),
	)
	s.Select(span(pt(0, 0, 0), pt(1, 1, 0)))

	ToggleBlock(s, document.TypeBulletedList)

	want := document.New(
		document.NewElement(document.TypeBulletedList,
			document.NewElement(document.TypeListItem, document.NewText("a")),
			document.NewElement(document.TypeListItem, document.NewText("b")),
		),
		document.NewParagraph("c"),
	)
	assertDoc(t, s, want)
	assertEveryItemInList(t, s.Document(), document.TypeBulletedList)
}

func TestToggleBlock_HangingSelectionSkipsNextBlock(t *testing.T) {
	s := newSession(document.NewParagraph("a"), document.NewParagraph("b"))
	s.Select(span(pt(0, 0, 0), pt(0, 1, 0)))

	ToggleBlock(s, document.TypeNumberedList)

	want := document.New(
		document.NewElement(document.TypeNumberedList,
			document.NewElement(document.TypeListItem, document.NewText("a")),
		),
		document.NewParagraph("b"),
	)
	assertDoc(t, s, want)
}

func TestToggleBlock_LeavingListSplitsIt(t *testing.T) {
	s := newSession(document.NewElement(document.TypeBulletedList,
		document.NewElement(document.TypeListItem, document.NewText("a")),
		document.NewElement(document.TypeListItem, document.NewText("b")),
		document.NewElement(document.TypeListItem, document.NewText("c")),
	))
	s.Select(caret(0, 0, 1, 0))

	ToggleBlock(s, document.TypeBulletedList)

	want := document.New(
		document.NewElement(document.TypeBulletedList,
			document.NewElement(document.TypeListItem, document.NewText("a")),
		),
		document.NewParagraph("b"),
		document.NewElement(document.TypeBulletedList,
			document.NewElement(document.TypeListItem, document.NewText("c")),
		),
	)
	assertDoc(t, s, want)
	assertValid(t, s)
}

func TestToggleBlock_SwitchListKind(t *testing.T) {
	s := newSession(document.NewElement(document.TypeBulletedList,
		document.NewElement(document.TypeListItem, document.NewText("a")),
		document.NewElement(document.TypeListItem, document.NewText("b")),
	))
	s.Select(span(pt(0, 0, 0, 0), pt(1, 0, 1, 0)))

	ToggleBlock(s, document.TypeNumberedList)

	want := document.New(document.NewElement(document.TypeNumberedList,
		document.NewElement(document.TypeListItem, document.NewText("a")),
		document.NewElement(document.TypeListItem, document.NewText("b")),
	))
	assertDoc(t, s, want)
}

func TestToggleBlock_AlignmentIsIndependentOfType(t *testing.T) {
	s := newSession(document.NewParagraph("x"))
	s.Select(caret(0, 0, 0))
	ToggleBlock(s, document.TypeHeadingTwo)

	ToggleBlock(s, document.AlignCenter)
	if !IsBlockActive(s, document.TypeHeadingTwo) {
		t.Fatalf("heading-two after align: got inactive, want active")
	}
	if !IsBlockActive(s, document.AlignCenter) {
		t.Fatalf("center: got inactive, want active")
	}

	ToggleBlock(s, document.AlignRight)
	if IsBlockActive(s, document.AlignCenter) || !IsBlockActive(s, document.AlignRight) {
		t.Fatalf("align after switching to right: want right only")
	}

	ToggleBlock(s, document.AlignRight)
	if got := s.Document().Children[0].(*document.Element).Align; got != document.AlignNone {
		t.Fatalf("align after toggle off: got %q, want unset", got)
	}
	if !IsBlockActive(s, document.TypeHeadingTwo) {
		t.Fatalf("heading-two after align off: got inactive, want active")
	}
}

func TestToggleBlock_AlignmentKeepsListMembership(t *testing.T) {
	s := newSession(document.NewElement(document.TypeNumberedList,
		document.NewElement(document.TypeListItem, document.NewText("a")),
	))
	s.Select(caret(0, 0, 0, 0))

	ToggleBlock(s, document.AlignJustify)

	if !IsBlockActive(s, document.TypeNumberedList) {
		t.Fatalf("numbered-list after align: got inactive, want active")
	}
	list := s.Document().Children[0].(*document.Element)
	item := list.Children[0].(*document.Element)
	if item.Align != document.AlignJustify || list.Align != document.AlignNone {
		t.Fatalf("align: item=%q list=%q, want item justify and list unset", item.Align, list.Align)
	}
}

func TestToggleBlock_IgnoresTableCells(t *testing.T) {
	s := newSession(document.NewTable(1, 1))
	s.Select(caret(0, 0, 0, 0, 0))
	before := s.Document().Clone()

	ToggleBlock(s, document.TypeHeadingOne)
	ToggleBlock(s, document.AlignCenter)

	assertDoc(t, s, before)
}

func TestToggleBlock_RejectsStructuralFormats(t *testing.T) {
	s := newSession(document.NewParagraph("x"))
	s.Select(caret(0, 0, 0))
	v := s.Version()

	for _, f := range []document.Format{
		document.TypeListItem,
		document.TypeTable,
		document.TypeTableCell,
		document.AlignNone,
	} {
		ToggleBlock(s, f)
	}
	if got := s.Version(); got != v {
		t.Fatalf("version: got %d, want %d", got, v)
	}
}

func TestQueries_FalseWithoutSelection(t *testing.T) {
	s := newSession(document.NewElement(document.TypeHeadingOne, &document.Text{Text: "x", Marks: document.Marks{Bold: true}}))

	if IsBlockActive(s, document.TypeHeadingOne) {
		t.Fatalf("heading-one without selection: got active")
	}
	if IsMarkActive(s, document.MarkBold) {
		t.Fatalf("bold without selection: got active")
	}
	if IsTableActive(s) {
		t.Fatalf("table without selection: got active")
	}

	v := s.Version()
	ToggleBlock(s, document.TypeHeadingOne)
	ToggleMark(s, document.MarkBold)
	if got := s.Version(); got != v {
		t.Fatalf("version after toggles without selection: got %d, want %d", got, v)
	}
}

func assertEveryItemInList(t *testing.T, d *document.Document, list document.Type) {
	t.Helper()
	d.Walk(func(n document.Node, p document.Path) bool {
		el, ok := n.(*document.Element)
		if !ok || el.Type != document.TypeListItem {
			return true
		}
		parent, ok := d.Element(p.Parent())
		if !ok || parent.Type != list {
			t.Fatalf("list item at %v: parent is not %s", p, list)
		}
		return true
	})
}
