// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Write serializes the workbook to an xlsx file at path. Missing parent
// directories are created; an existing file is overwritten whole, never
// merged. Each table becomes one sheet, in table order, with the column
// headers as the first row.
func Write(wb Workbook, path string) error {
	if len(wb.Tables) == 0 {
		return fmt.Errorf("writing workbook %s: no tables", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// The first table takes over the default sheet so the workbook ends
	// up with exactly the declared sheets, in the declared order.
	if err := f.SetSheetName(f.GetSheetName(0), wb.Tables[0].Name); err != nil {
		return fmt.Errorf("naming sheet %s: %w", wb.Tables[0].Name, err)
	}
	for _, tbl := range wb.Tables[1:] {
		if _, err := f.NewSheet(tbl.Name); err != nil {
			return fmt.Errorf("adding sheet %s: %w", tbl.Name, err)
		}
	}

	for _, tbl := range wb.Tables {
		if err := writeSheet(f, tbl); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, tbl Table) error {
	if err := setRow(f, tbl.Name, 1, tbl.Columns); err != nil {
		return err
	}
	for i, row := range tbl.Rows {
		if err := setRow(f, tbl.Name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	cell, err := excelize.JoinCellName("A", row)
	if err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, row, err)
	}
	return nil
}
