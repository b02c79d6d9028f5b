package richtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/richdoc/document"
	"github.com/iw2rmb/richdoc/tree"
)

var _ Editor = (*tree.Session)(nil)

func newSession(blocks ...document.Node) *tree.Session {
	return tree.New(document.New(blocks...), tree.Options{})
}

func caret(off int, path ...int) document.Range {
	return document.Collapsed(document.Point{Path: path, Offset: off})
}

func span(from document.Point, to document.Point) document.Range {
	return document.Range{Anchor: from, Focus: to}
}

func pt(off int, path ...int) document.Point {
	return document.Point{Path: path, Offset: off}
}

func assertDoc(t *testing.T, s *tree.Session, want *document.Document) {
	t.Helper()
	if diff := cmp.Diff(want, s.Document()); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func assertValid(t *testing.T, s *tree.Session) {
	t.Helper()
	if err := document.Validate(s.Document()); err != nil {
		t.Fatalf("invalid document: %v", err)
	}
}

// tableShape returns the cell count of every row of the table at path.
func tableShape(t *testing.T, s *tree.Session, path ...int) []int {
	t.Helper()
	table, ok := s.Document().Element(path)
	if !ok || table.Type != document.TypeTable {
		t.Fatalf("no table at %v", path)
	}
	var shape []int
	for _, r := range table.Children {
		shape = append(shape, len(r.(*document.Element).Children))
	}
	return shape
}

func hasTable(s *tree.Session) bool {
	found := false
	s.Document().Walk(func(n document.Node, _ document.Path) bool {
		if el, ok := n.(*document.Element); ok && el.Type == document.TypeTable {
			found = true
		}
		return true
	})
	return found
}

// labelledTable builds a table whose cells hold "r<row>c<col>".
func labelledTable(rows, cols int) *document.Element {
	table := document.NewElement(document.TypeTable)
	for r := 0; r < rows; r++ {
		row := document.NewElement(document.TypeTableRow)
		for c := 0; c < cols; c++ {
			label := "r" + string(rune('0'+r)) + "c" + string(rune('0'+c))
			row.Children = append(row.Children, document.NewElement(document.TypeTableCell, document.NewText(label)))
		}
		table.Children = append(table.Children, row)
	}
	return table
}
