package tree

import (
	"testing"

	"github.com/iw2rmb/richdoc/document"
)

func TestInsertText(t *testing.T) {
	cases := []struct {
		name string
		text string
		sel  document.Range
		in   string
		want string
		at   document.Range
	}{
		{name: "middle", text: "ac", sel: caret(1, 0, 0), in: "b", want: "abc", at: caret(2, 0, 0)},
		{name: "replace selection", text: "hello", sel: span(pt(4, 0, 0), pt(1, 0, 0)), in: "i", want: "hio", at: caret(2, 0, 0)},
		{name: "after combining cluster", text: "e\u0301x", sel: caret(1, 0, 0), in: "!", want: "e\u0301!x", at: caret(2, 0, 0)},
		{name: "empty block", text: "", sel: caret(0, 0, 0), in: "hi", want: "hi", at: caret(2, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(document.NewParagraph(tc.text))
			s.Select(tc.sel)

			s.InsertText(tc.in)

			assertDoc(t, s, document.New(document.NewParagraph(tc.want)))
			assertSelection(t, s, tc.at)
		})
	}
}

func TestInsertText_PendingMarks(t *testing.T) {
	s := newSession(document.NewParagraph("ab"))
	s.Select(caret(2, 0, 0))

	s.AddMark(document.MarkBold)
	if !s.Marks().Bold {
		t.Fatalf("expected pending bold")
	}
	s.InsertText("c")
	s.InsertText("d")

	assertDoc(t, s, document.New(document.NewElement(document.TypeParagraph,
		document.NewText("ab"), bold("cd"),
	)))
	assertSelection(t, s, caret(2, 0, 1))

	// Moving the selection drops pending marks.
	s.AddMark(document.MarkCode)
	s.Select(caret(0, 0, 0))
	if s.Marks().Code {
		t.Fatalf("expected pending code cleared by selection change")
	}
}

func TestInsertBreak(t *testing.T) {
	s := newSession(document.NewElement(document.TypeHeadingOne, document.NewText("hello")))
	s.Select(caret(2, 0, 0))

	s.InsertBreak()

	assertDoc(t, s, document.New(
		document.NewElement(document.TypeHeadingOne, document.NewText("he")),
		document.NewElement(document.TypeHeadingOne, document.NewText("llo")),
	))
	assertSelection(t, s, caret(0, 1, 0))

	s.Select(caret(3, 1, 0))
	s.InsertBreak()
	assertDoc(t, s, document.New(
		document.NewElement(document.TypeHeadingOne, document.NewText("he")),
		document.NewElement(document.TypeHeadingOne, document.NewText("llo")),
		document.NewElement(document.TypeHeadingOne, document.NewText("")),
	))
	assertSelection(t, s, caret(0, 2, 0))
}

func TestInsertBreak_ListItemStaysInList(t *testing.T) {
	s := newSession(listOf(document.TypeNumberedList, "ab"))
	s.Select(caret(1, 0, 0, 0))

	s.InsertBreak()

	assertDoc(t, s, document.New(listOf(document.TypeNumberedList, "a", "b")))
	assertSelection(t, s, caret(0, 0, 1, 0))
}

func TestInsertBreak_TableCellIsNoop(t *testing.T) {
	s := newSession(document.NewTable(1, 1))
	s.Select(caret(0, 0, 0, 0, 0))
	v := s.Version()

	s.InsertBreak()

	assertDoc(t, s, document.New(document.NewTable(1, 1)))
	if s.Version() != v {
		t.Fatalf("expected version unchanged, got %d", s.Version())
	}
}

func TestDeleteBackward(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	cases := []struct {
		name   string
		blocks []document.Node
		sel    document.Range
		want   *document.Document
		at     document.Range
	}{
		{
			name:   "within leaf",
			blocks: []document.Node{document.NewParagraph("abc")},
			sel:    caret(2, 0, 0),
			want:   document.New(document.NewParagraph("ac")),
			at:     caret(1, 0, 0),
		},
		{
			name:   "whole cluster",
			blocks: []document.Node{document.NewParagraph("a" + family)},
			sel:    caret(2, 0, 0),
			want:   document.New(document.NewParagraph("a")),
			at:     caret(1, 0, 0),
		},
		{
			name:   "previous leaf",
			blocks: []document.Node{document.NewElement(document.TypeParagraph, document.NewText("ab"), bold("cd"))},
			sel:    caret(0, 0, 1),
			want:   document.New(document.NewElement(document.TypeParagraph, document.NewText("a"), bold("cd"))),
			at:     caret(1, 0, 0),
		},
		{
			name:   "merge blocks",
			blocks: []document.Node{document.NewParagraph("ab"), document.NewElement(document.TypeHeadingTwo, document.NewText("cd"))},
			sel:    caret(0, 1, 0),
			want:   document.New(document.NewParagraph("abcd")),
			at:     caret(2, 0, 0),
		},
		{
			name:   "expanded across blocks",
			blocks: []document.Node{document.NewParagraph("abc"), document.NewParagraph("def")},
			sel:    span(pt(1, 0, 0), pt(2, 1, 0)),
			want:   document.New(document.NewParagraph("a"), document.NewParagraph("f")),
			at:     caret(1, 0, 0),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(tc.blocks...)
			s.Select(tc.sel)

			s.DeleteBackward()

			assertDoc(t, s, tc.want)
			assertSelection(t, s, tc.at)
		})
	}
}

func TestDeleteBackward_Noops(t *testing.T) {
	cases := []struct {
		name   string
		blocks []document.Node
		sel    document.Range
	}{
		{name: "document start", blocks: []document.Node{document.NewParagraph("a")}, sel: caret(0, 0, 0)},
		{name: "first list item", blocks: []document.Node{document.NewParagraph("p"), listOf(document.TypeBulletedList, "a")}, sel: caret(0, 1, 0, 0)},
		{name: "after table", blocks: []document.Node{document.NewTable(1, 1), document.NewParagraph("a")}, sel: caret(0, 1, 0)},
		{name: "table cell start", blocks: []document.Node{document.NewTable(1, 2)}, sel: caret(0, 0, 0, 1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(tc.blocks...)
			s.Select(tc.sel)
			before := s.Document().Clone()
			v := s.Version()

			s.DeleteBackward()

			assertDoc(t, s, before)
			if s.Version() != v {
				t.Fatalf("expected version unchanged, got %d", s.Version())
			}
		})
	}
}
