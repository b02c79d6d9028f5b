package playground

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/richdoc/document"
)

// Outline renders d as an indented outline, one node per line:
//
//	heading-one align=center
//	  "Title" [bold]
//	bulleted-list
//	  list-item
//	    "item"
func Outline(d *document.Document) string {
	var sb strings.Builder
	for _, n := range d.Children {
		writeOutline(&sb, n, 0)
	}
	return sb.String()
}

func writeOutline(sb *strings.Builder, n document.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	switch n := n.(type) {
	case *document.Text:
		fmt.Fprintf(sb, "%q", n.Text)
		if marks := n.Marks.List(); len(marks) > 0 {
			names := make([]string, len(marks))
			for i, m := range marks {
				names[i] = m.String()
			}
			fmt.Fprintf(sb, " [%s]", strings.Join(names, " "))
		}
		sb.WriteByte('\n')
	case *document.Element:
		sb.WriteString(string(n.Type))
		if n.Align != document.AlignNone {
			fmt.Fprintf(sb, " align=%s", n.Align)
		}
		sb.WriteByte('\n')
		for _, c := range n.Children {
			writeOutline(sb, c, depth+1)
		}
	}
}
