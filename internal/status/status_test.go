// SPDX-License-Identifier: AGPL-3.0-or-later

package status

import (
	"testing"
)

func TestWorkbookShape(t *testing.T) {
	wb := Workbook()

	if len(wb.Tables) != 3 {
		t.Fatalf("got %d tables, want 3", len(wb.Tables))
	}

	wantNames := []string{SheetFrontend, SheetBackend, SheetNextSteps}
	for i, name := range wantNames {
		if wb.Tables[i].Name != name {
			t.Errorf("table %d: got name %q, want %q", i, wb.Tables[i].Name, name)
		}
	}

	wantRows := map[string]int{
		SheetFrontend:  13,
		SheetBackend:   6,
		SheetNextSteps: 4,
	}
	for _, tbl := range wb.Tables {
		if got := len(tbl.Rows); got != wantRows[tbl.Name] {
			t.Errorf("%s: got %d rows, want %d", tbl.Name, got, wantRows[tbl.Name])
		}
	}
}

func TestWorkbookRowsMatchColumns(t *testing.T) {
	for _, tbl := range Workbook().Tables {
		for i, row := range tbl.Rows {
			if len(row) != len(tbl.Columns) {
				t.Errorf("%s row %d: %d cells for %d columns", tbl.Name, i, len(row), len(tbl.Columns))
			}
		}
	}
}
