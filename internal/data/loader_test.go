package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"stock-data-api/internal/data/datatest"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	dir := t.TempDir()
	stocks := filepath.Join(dir, "Stock_Price")
	if err := os.MkdirAll(stocks, 0755); err != nil {
		t.Fatal(err)
	}
	datatest.WriteWorkbook(t, filepath.Join(stocks, "TCS.xlsx"),
		datatest.StockRows("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"))
	datatest.WriteWorkbook(t, filepath.Join(stocks, "INFY.xlsx"), datatest.StockRows("2024-02-01"))
	datatest.WriteWorkbook(t, filepath.Join(dir, "IIP_data_Nov_2024.xlsx"), [][]any{
		{"Sector", "Weight", "Index"},
		{"Mining", 14.37, 128.4},
		{"Manufacturing", 77.63, 146.9},
		{"Electricity", 7.99, 198.2},
	})
	return NewLoader(Config{
		IndicatorFile: filepath.Join(dir, "IIP_data_Nov_2024.xlsx"),
		StocksDir:     stocks,
	})
}

func TestLoadIndicatorData(t *testing.T) {
	l := newTestLoader(t)
	rows, err := l.LoadIndicatorData()
	if err != nil {
		t.Fatalf("LoadIndicatorData: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if v, _ := rows[1].Get("Sector"); v.String() != "Manufacturing" {
		t.Errorf("expected Manufacturing, got %q", v.String())
	}
}

func TestLoadIndicatorDataMissing(t *testing.T) {
	l := NewLoader(Config{IndicatorFile: filepath.Join(t.TempDir(), "missing.xlsx")})
	_, err := l.LoadIndicatorData()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		t.Errorf("not-found must not be reported as a LoadError")
	}
}

func TestLoadIndicatorDataUnconfigured(t *testing.T) {
	_, err := NewLoader(Config{}).LoadIndicatorData()
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

func TestLoadSeriesData(t *testing.T) {
	l := newTestLoader(t)
	rows, err := l.LoadSeriesData("TCS")
	if err != nil {
		t.Fatalf("LoadSeriesData: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	first, _ := rows[0].Get("Date")
	last, _ := rows[4].Get("Date")
	if first.String() != "2024-01-01" || last.String() != "2024-01-05" {
		t.Errorf("expected rows in sheet order, got %s..%s", first.String(), last.String())
	}
}

func TestLoadSeriesDataMissing(t *testing.T) {
	l := newTestLoader(t)
	if _, err := l.LoadSeriesData("WIPRO"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadSeriesDataCorrupt(t *testing.T) {
	l := newTestLoader(t)
	path := filepath.Join(l.Config().StocksDir, "BAD.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := l.LoadSeriesData("BAD")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.Path != path {
		t.Errorf("expected path %s, got %s", path, loadErr.Path)
	}
	if IsNotFound(err) {
		t.Error("corrupt file must not be reported as not found")
	}
}

func TestLoadSeriesDataDirectory(t *testing.T) {
	l := newTestLoader(t)
	if err := os.Mkdir(filepath.Join(l.Config().StocksDir, "DIR.xlsx"), 0755); err != nil {
		t.Fatal(err)
	}
	_, err := l.LoadSeriesData("DIR")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected LoadError for a directory, got %v", err)
	}
}

// TestPathTraversalPrevention checks that symbols never resolve outside the stock directory.
func TestPathTraversalPrevention(t *testing.T) {
	l := newTestLoader(t)
	// A workbook one level above the stock directory that traversal would reach.
	datatest.WriteWorkbook(t, filepath.Join(filepath.Dir(l.Config().StocksDir), "secret.xlsx"),
		datatest.StockRows("2024-01-01"))

	tests := []struct {
		name   string
		symbol string
	}{
		{"parent directory traversal", "../secret"},
		{"nested traversal", "../../etc/passwd"},
		{"Windows path traversal", `..\secret`},
		{"absolute path", "/etc/passwd"},
		{"double dot only", ".."},
		{"single dot", "."},
		{"hidden file", ".secret"},
		{"embedded separator", "TCS/../secret"},
		{"NUL byte", "TCS\x00"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := l.LoadSeriesData(tt.symbol)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound for %q, got %v", tt.symbol, err)
			}
			if rows != nil {
				t.Errorf("expected no rows for %q", tt.symbol)
			}
		})
	}
}

func TestSeriesPath(t *testing.T) {
	l := NewLoader(Config{StocksDir: "/srv/stocks/"})
	path, err := l.SeriesPath("RELIANCE.NS")
	if err != nil {
		t.Fatalf("SeriesPath: %v", err)
	}
	want := filepath.Join("/srv/stocks", "RELIANCE.NS.xlsx")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
}

func TestListSymbols(t *testing.T) {
	l := newTestLoader(t)
	dir := l.Config().StocksDir
	for _, name := range []string{"notes.txt", ".hidden.xlsx", "~$TCS.xlsx"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "archive"), 0755); err != nil {
		t.Fatal(err)
	}

	symbols, err := l.ListSymbols()
	if err != nil {
		t.Fatalf("ListSymbols: %v", err)
	}
	want := []string{"INFY", "TCS"}
	if len(symbols) != len(want) {
		t.Fatalf("expected %v, got %v", want, symbols)
	}
	for i := range want {
		if symbols[i] != want[i] {
			t.Errorf("symbol %d: expected %s, got %s", i, want[i], symbols[i])
		}
	}
}

func TestListSymbolsMissingDir(t *testing.T) {
	l := NewLoader(Config{StocksDir: filepath.Join(t.TempDir(), "nope")})
	symbols, err := l.ListSymbols()
	if err != nil {
		t.Fatalf("ListSymbols: %v", err)
	}
	if symbols == nil || len(symbols) != 0 {
		t.Errorf("expected empty list, got %v", symbols)
	}
}
