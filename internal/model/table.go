package model

import "strings"

// Cell is a single spreadsheet cell. Present distinguishes a real value
// from an empty or absent cell, so "not yet known" is never an implicit
// missing key.
type Cell struct {
	Value   string
	Present bool
}

// NewCell builds a cell from a raw sheet value. Whitespace-only values
// count as absent.
func NewCell(raw string) Cell {
	v := strings.TrimSpace(raw)
	return Cell{Value: v, Present: v != ""}
}

// Column is one table column. Numeric marks columns whose cells hold a
// normalized integer, so serialization emits numbers instead of strings.
type Column struct {
	Name    string
	Numeric bool
}

// Table is an in-memory sheet: ordered columns and rows of cells.
// Every row has exactly len(Columns) cells.
type Table struct {
	Columns []Column
	Rows    [][]Cell
}

// NewTable builds a table from a header row and raw data rows. Short rows
// are padded with absent cells; cells beyond the header are dropped.
func NewTable(headers []string, rows [][]string) *Table {
	t := &Table{Columns: make([]Column, len(headers))}
	for i, h := range headers {
		t.Columns[i] = Column{Name: strings.TrimSpace(h)}
	}

	t.Rows = make([][]Cell, 0, len(rows))
	for _, raw := range rows {
		row := make([]Cell, len(headers))
		for i := range headers {
			if i < len(raw) {
				row[i] = NewCell(raw[i])
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) != -1
}

// AddColumn appends a column and fills every row with the given cell.
func (t *Table) AddColumn(col Column, fill Cell) {
	t.Columns = append(t.Columns, col)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], fill)
	}
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}
