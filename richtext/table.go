package richtext

import "github.com/iw2rmb/richdoc/document"

const (
	DefaultTableRows = 3
	DefaultTableCols = 3
)

// InsertTable inserts a rows x cols table of empty cells at the selection.
// Tables never nest: inside a table this does nothing.
func InsertTable(e Editor, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	if _, ok := e.Selection(); !ok {
		return
	}
	if IsTableActive(e) {
		return
	}
	e.InsertNodes(document.NewTable(rows, cols))
}

// InsertDefaultTable inserts a DefaultTableRows x DefaultTableCols table.
func InsertDefaultTable(e Editor) {
	InsertTable(e, DefaultTableRows, DefaultTableCols)
}

// DeleteTable removes the table holding the selection.
func DeleteTable(e Editor) {
	if _, ok := e.Selection(); !ok {
		return
	}
	e.RemoveNodes(document.MatchType(document.TypeTable))
}

// InsertTableRow inserts an empty row below the selected row, with as many
// cells as that row.
func InsertTableRow(e Editor) {
	if _, _, ok := enclosing(e, document.TypeTable); !ok {
		return
	}
	row, rowPath, ok := enclosing(e, document.TypeTableRow)
	if !ok {
		return
	}
	e.InsertNodesAt(rowPath.Next(), document.NewTableRow(len(row.Children)))
}

// InsertTableColumn inserts an empty cell right of the selected cell's
// column in every row of the table.
func InsertTableColumn(e Editor) {
	table, tablePath, ok := enclosing(e, document.TypeTable)
	if !ok {
		return
	}
	_, cellPath, ok := enclosing(e, document.TypeTableCell)
	if !ok {
		return
	}
	col := cellPath.Last()
	rows := len(table.Children)
	for i := 0; i < rows; i++ {
		e.InsertNodesAt(tablePath.Child(i).Child(col+1), document.NewTableCell())
	}
}

// DeleteTableRow removes the selected row. Removing the only row removes
// the table.
func DeleteTableRow(e Editor) {
	table, _, ok := enclosing(e, document.TypeTable)
	if !ok {
		return
	}
	if len(table.Children) == 1 {
		DeleteTable(e)
		return
	}
	_, rowPath, ok := enclosing(e, document.TypeTableRow)
	if !ok {
		return
	}
	e.RemoveNodeAt(rowPath)
}

// DeleteTableColumn removes the selected cell's column from every row.
// Removing the only column removes the table.
func DeleteTableColumn(e Editor) {
	table, tablePath, ok := enclosing(e, document.TypeTable)
	if !ok {
		return
	}
	_, cellPath, ok := enclosing(e, document.TypeTableCell)
	if !ok {
		return
	}
	if firstRowCells(table) == 1 {
		DeleteTable(e)
		return
	}
	col := cellPath.Last()
	// Last row first, so earlier paths stay valid.
	for i := len(table.Children) - 1; i >= 0; i-- {
		e.RemoveNodeAt(tablePath.Child(i).Child(col))
	}
}

func firstRowCells(table *document.Element) int {
	if len(table.Children) == 0 {
		return 0
	}
	row, ok := table.Children[0].(*document.Element)
	if !ok {
		return 0
	}
	return len(row.Children)
}
