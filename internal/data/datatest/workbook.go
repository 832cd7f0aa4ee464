// Package datatest writes spreadsheet fixtures for tests.
package datatest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook saves rows (header first) to the first sheet of a new workbook at path.
func WriteWorkbook(t testing.TB, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		row := r
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to write row %d: %v", i, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook %s: %v", path, err)
	}
}

// StockRows returns a price table with one row per date.
func StockRows(dates ...string) [][]any {
	rows := [][]any{{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume"}}
	for i, d := range dates {
		base := 100.0 + float64(i)
		rows = append(rows, []any{d, base, base + 2.5, base - 1.25, base + 1, base + 0.75, 1000 * (i + 1)})
	}
	return rows
}

// StockDir creates a directory holding one workbook per symbol.
func StockDir(t testing.TB, tables map[string][][]any) string {
	t.Helper()
	dir := t.TempDir()
	for symbol, rows := range tables {
		WriteWorkbook(t, filepath.Join(dir, symbol+".xlsx"), rows)
	}
	return dir
}
