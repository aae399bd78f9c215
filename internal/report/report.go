// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report models tabular status reports and serializes them to a
// spreadsheet workbook. The model is deliberately generic: any ordered
// set of tables can be rendered, not just the built-in project fixtures.
package report

// Table is one named sheet worth of data: a header row plus data rows.
// Columns carries the declared column order; every row must hold one
// cell per column, in the same order.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Workbook is an ordered sequence of tables, one sheet each.
type Workbook struct {
	Tables []Table
}

// SheetNames returns the sheet names in declaration order.
func (w Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.Tables))
	for _, tbl := range w.Tables {
		names = append(names, tbl.Name)
	}
	return names
}
