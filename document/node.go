package document

import "strings"

// Node is either a *Text leaf or an *Element.
type Node interface {
	node()
}

// Text is a leaf holding a run of text with uniform marks.
type Text struct {
	Text string
	Marks
}

func (*Text) node() {}

// Element is a block node. Depending on Type its children are text leaves or
// more elements.
type Element struct {
	Type     Type
	Align    Align
	Children []Node
}

func (*Element) node() {}

// Type discriminates element kinds.
type Type string

const (
	TypeParagraph    Type = "paragraph"
	TypeHeadingOne   Type = "heading-one"
	TypeHeadingTwo   Type = "heading-two"
	TypeBlockQuote   Type = "block-quote"
	TypeBulletedList Type = "bulleted-list"
	TypeNumberedList Type = "numbered-list"
	TypeListItem     Type = "list-item"
	TypeTable        Type = "table"
	TypeTableRow     Type = "table-row"
	TypeTableCell    Type = "table-cell"
)

var allTypes = []Type{
	TypeParagraph,
	TypeHeadingOne,
	TypeHeadingTwo,
	TypeBlockQuote,
	TypeBulletedList,
	TypeNumberedList,
	TypeListItem,
	TypeTable,
	TypeTableRow,
	TypeTableCell,
}

// ParseType maps a type name to its Type.
func ParseType(s string) (Type, bool) {
	for _, t := range allTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

func (t Type) Valid() bool {
	_, ok := ParseType(string(t))
	return ok
}

// IsList reports whether t is a list container.
func (t Type) IsList() bool {
	return t == TypeBulletedList || t == TypeNumberedList
}

// IsTextBlock reports whether t is a block that can be retyped or aligned by
// formatting commands.
func (t Type) IsTextBlock() bool {
	switch t {
	case TypeParagraph, TypeHeadingOne, TypeHeadingTwo, TypeBlockQuote, TypeListItem:
		return true
	default:
		return false
	}
}

// IsTablePart reports whether t is a table, row or cell.
func (t Type) IsTablePart() bool {
	return t == TypeTable || t == TypeTableRow || t == TypeTableCell
}

// AllowsAlign reports whether elements of type t may carry an alignment.
func (t Type) AllowsAlign() bool {
	return t.Valid() && !t.IsTablePart()
}

// HoldsText reports whether elements of type t hold text leaves directly.
func (t Type) HoldsText() bool {
	return t.IsTextBlock() || t == TypeTableCell
}

// ChildType returns the only element type allowed as a child of t. It
// returns false for types whose children are text leaves.
func (t Type) ChildType() (Type, bool) {
	switch t {
	case TypeBulletedList, TypeNumberedList:
		return TypeListItem, true
	case TypeTable:
		return TypeTableRow, true
	case TypeTableRow:
		return TypeTableCell, true
	default:
		return "", false
	}
}

// Align is the horizontal alignment of a block. The zero value means unset.
type Align string

const (
	AlignNone    Align = ""
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// ParseAlign maps an alignment name to its Align.
func ParseAlign(s string) (Align, bool) {
	switch a := Align(s); a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return a, true
	default:
		return AlignNone, false
	}
}

func (a Align) Valid() bool {
	_, ok := ParseAlign(string(a))
	return ok
}

// Format is a block format accepted by block toggling: either a Type or an
// Align.
type Format interface {
	format()
}

func (Type) format()  {}
func (Align) format() {}

// Axis is the element attribute a Format is matched against.
type Axis uint8

const (
	AxisType Axis = iota
	AxisAlign
)

// AxisOf returns the axis f is matched on.
func AxisOf(f Format) Axis {
	switch f.(type) {
	case Align:
		return AxisAlign
	default:
		return AxisType
	}
}

// ParseFormat maps a type or alignment name to a Format.
func ParseFormat(s string) (Format, bool) {
	if a, ok := ParseAlign(s); ok {
		return a, true
	}
	if t, ok := ParseType(s); ok {
		return t, true
	}
	return nil, false
}

// NewText returns a leaf without marks.
func NewText(s string) *Text {
	return &Text{Text: s}
}

// NewElement returns an element of type t with the given children.
func NewElement(t Type, children ...Node) *Element {
	return &Element{Type: t, Children: children}
}

// NewParagraph returns a paragraph holding text, or one empty leaf.
func NewParagraph(text ...string) *Element {
	return &Element{Type: TypeParagraph, Children: leaves(text)}
}

func leaves(text []string) []Node {
	if len(text) == 0 {
		return []Node{NewText("")}
	}
	out := make([]Node, 0, len(text))
	for _, s := range text {
		out = append(out, NewText(s))
	}
	return out
}

// NewTableCell returns a cell holding one empty leaf.
func NewTableCell() *Element {
	return &Element{Type: TypeTableCell, Children: []Node{NewText("")}}
}

// NewTableRow returns a row of cols empty cells.
func NewTableRow(cols int) *Element {
	row := &Element{Type: TypeTableRow, Children: make([]Node, 0, cols)}
	for i := 0; i < cols; i++ {
		row.Children = append(row.Children, NewTableCell())
	}
	return row
}

// NewTable returns a fully built rows x cols table of empty cells.
func NewTable(rows, cols int) *Element {
	table := &Element{Type: TypeTable, Children: make([]Node, 0, rows)}
	for i := 0; i < rows; i++ {
		table.Children = append(table.Children, NewTableRow(cols))
	}
	return table
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Text:
		c := *n
		return &c
	case *Element:
		return cloneElement(n)
	default:
		return nil
	}
}

func cloneElement(el *Element) *Element {
	c := &Element{Type: el.Type, Align: el.Align}
	if el.Children != nil {
		c.Children = cloneNodes(el.Children)
	}
	return c
}

func cloneNodes(in []Node) []Node {
	out := make([]Node, 0, len(in))
	for _, n := range in {
		out = append(out, Clone(n))
	}
	return out
}

// PlainText concatenates the text of every leaf under n.
func PlainText(n Node) string {
	var sb strings.Builder
	writePlain(&sb, n)
	return sb.String()
}

func writePlain(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Text:
		sb.WriteString(n.Text)
	case *Element:
		for _, c := range n.Children {
			writePlain(sb, c)
		}
	}
}
