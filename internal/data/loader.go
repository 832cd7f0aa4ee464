package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stock-data-api/internal/model"
)

// SeriesExt is the file extension of per-symbol spreadsheets.
const SeriesExt = ".xlsx"

// Config locates the datasets on disk.
type Config struct {
	IndicatorFile string // the Index of Industrial Production workbook
	StocksDir     string // directory of {symbol}.xlsx workbooks
	Sheet         string // worksheet to read; empty means the first one
}

// Loader reads datasets from disk. Every call reads the file afresh.
type Loader struct {
	cfg Config
}

// NewLoader creates a loader bound to cfg.
func NewLoader(cfg Config) *Loader {
	return &Loader{cfg: cfg}
}

// Config returns the loader's configuration.
func (l *Loader) Config() Config {
	return l.cfg
}

// LoadIndicatorData reads the fixed economic indicator workbook.
func (l *Loader) LoadIndicatorData() ([]model.Row, error) {
	return l.load(l.cfg.IndicatorFile)
}

// LoadSeriesData reads the workbook for one stock symbol.
// The symbol is untrusted input and is rejected with ErrNotFound if it
// could name anything other than a file directly inside StocksDir.
func (l *Loader) LoadSeriesData(symbol string) ([]model.Row, error) {
	path, err := l.SeriesPath(symbol)
	if err != nil {
		return nil, err
	}
	return l.load(path)
}

// SeriesPath resolves a symbol to its workbook path without touching the disk.
func (l *Loader) SeriesPath(symbol string) (string, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return "", err
	}
	dir := filepath.Clean(l.cfg.StocksDir)
	path := filepath.Join(dir, symbol+SeriesExt)
	if filepath.Dir(path) != dir {
		return "", fmt.Errorf("%w: symbol %q escapes the stock directory", ErrNotFound, symbol)
	}
	return path, nil
}

// ValidateSymbol rejects symbols that are not a single plain path component.
func ValidateSymbol(symbol string) error {
	switch {
	case symbol == "":
		return fmt.Errorf("%w: empty symbol", ErrNotFound)
	case strings.ContainsAny(symbol, `/\`+"\x00"):
		return fmt.Errorf("%w: symbol %q contains a path separator", ErrNotFound, symbol)
	case strings.Contains(symbol, ".."), strings.HasPrefix(symbol, "."):
		return fmt.Errorf("%w: symbol %q is not a plain name", ErrNotFound, symbol)
	}
	return nil
}

func (l *Loader) load(path string) ([]model.Row, error) {
	if path == "" {
		return nil, &LoadError{Err: errors.New("dataset path is not configured")}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Path: path, Err: errors.New("is a directory")}
	}

	rows, err := ReadSheet(path, l.cfg.Sheet)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return rows, nil
}

// ListSymbols returns the symbols that have a workbook in StocksDir, sorted.
// A missing directory yields an empty list.
func (l *Loader) ListSymbols() ([]string, error) {
	entries, err := os.ReadDir(l.cfg.StocksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, &LoadError{Path: l.cfg.StocksDir, Err: err}
	}

	// ReadDir returns entries sorted by filename.
	symbols := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), SeriesExt) {
			continue
		}
		// Skip hidden files and Excel lock files.
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~$") {
			continue
		}
		symbols = append(symbols, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	return symbols, nil
}
