package richtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/richdoc/document"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one toolbar action: it reports whether it is active at the
// selection and applies itself.
type Command interface {
	Name() string
	Active(e Editor) bool
	Apply(e Editor)
}

// MarkCommand toggles an inline mark.
type MarkCommand struct {
	Mark document.Mark
}

func (c MarkCommand) Name() string         { return c.Mark.String() }
func (c MarkCommand) Active(e Editor) bool { return IsMarkActive(e, c.Mark) }
func (c MarkCommand) Apply(e Editor)       { ToggleMark(e, c.Mark) }

// BlockCommand toggles a block type or alignment.
type BlockCommand struct {
	Format document.Format
}

func (c BlockCommand) Name() string {
	switch f := c.Format.(type) {
	case document.Type:
		return string(f)
	case document.Align:
		return "align-" + string(f)
	default:
		return ""
	}
}

func (c BlockCommand) Active(e Editor) bool { return IsBlockActive(e, c.Format) }
func (c BlockCommand) Apply(e Editor)       { ToggleBlock(e, c.Format) }

// TableOp names a table structure operation.
type TableOp uint8

const (
	TableInsert TableOp = iota
	TableDelete
	TableInsertRow
	TableInsertColumn
	TableDeleteRow
	TableDeleteColumn
)

var tableOpNames = [...]string{
	TableInsert:       "insert-table",
	TableDelete:       "delete-table",
	TableInsertRow:    "insert-row",
	TableInsertColumn: "insert-column",
	TableDeleteRow:    "delete-row",
	TableDeleteColumn: "delete-column",
}

func (op TableOp) String() string {
	if int(op) < len(tableOpNames) {
		return tableOpNames[op]
	}
	return "unknown"
}

// TableCommand runs a table operation. Rows and Cols size inserted tables;
// zero means the defaults.
type TableCommand struct {
	Op   TableOp
	Rows int
	Cols int
}

func (c TableCommand) Name() string { return c.Op.String() }

// Active reports whether the selection is inside a table, which is when the
// row, column and delete operations apply.
func (c TableCommand) Active(e Editor) bool { return IsTableActive(e) }

func (c TableCommand) Apply(e Editor) {
	switch c.Op {
	case TableInsert:
		rows, cols := c.Rows, c.Cols
		if rows == 0 {
			rows = DefaultTableRows
		}
		if cols == 0 {
			cols = DefaultTableCols
		}
		InsertTable(e, rows, cols)
	case TableDelete:
		DeleteTable(e)
	case TableInsertRow:
		InsertTableRow(e)
	case TableInsertColumn:
		InsertTableColumn(e)
	case TableDeleteRow:
		DeleteTableRow(e)
	case TableDeleteColumn:
		DeleteTableColumn(e)
	}
}

// ParseCommand resolves a toolbar command by name: a mark ("bold"), a block
// type ("heading-one"), an alignment ("align-center") or a table operation
// ("insert-table").
func ParseCommand(name string) (Command, error) {
	if m, ok := document.ParseMark(name); ok {
		return MarkCommand{Mark: m}, nil
	}
	for i, n := range tableOpNames {
		if n == name {
			return TableCommand{Op: TableOp(i)}, nil
		}
	}
	if rest, ok := strings.CutPrefix(name, "align-"); ok {
		if a, ok := document.ParseAlign(rest); ok {
			return BlockCommand{Format: a}, nil
		}
	}
	if t, ok := document.ParseType(name); ok && toggleable(t) {
		return BlockCommand{Format: t}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Toolbar returns the default command set in toolbar order.
func Toolbar() []Command {
	cmds := make([]Command, 0, 20)
	for _, m := range document.AllMarks {
		cmds = append(cmds, MarkCommand{Mark: m})
	}
	for _, t := range []document.Type{
		document.TypeHeadingOne,
		document.TypeHeadingTwo,
		document.TypeBlockQuote,
		document.TypeNumberedList,
		document.TypeBulletedList,
	} {
		cmds = append(cmds, BlockCommand{Format: t})
	}
	for _, a := range []document.Align{
		document.AlignLeft,
		document.AlignCenter,
		document.AlignRight,
		document.AlignJustify,
	} {
		cmds = append(cmds, BlockCommand{Format: a})
	}
	for i := range tableOpNames {
		cmds = append(cmds, TableCommand{Op: TableOp(i)})
	}
	return cmds
}
