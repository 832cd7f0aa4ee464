package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"stock-data-api/internal/config"
	"stock-data-api/internal/data"
	"stock-data-api/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "iip":
		err = cmdIIP(os.Args[2:], os.Stdout)
	case "stock":
		err = cmdStock(os.Args[2:], os.Stdout)
	case "symbols":
		err = cmdSymbols(os.Args[2:], os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if data.IsNotFound(err) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli iip     [--config config.yaml] [--format json|csv]")
	fmt.Println("  cli stock   --symbol TCS [--start 2024-01-01 --end 2024-01-31] [--config config.yaml] [--format json|csv]")
	fmt.Println("  cli symbols [--config config.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - reads the same spreadsheets the API serves, using the same config and env overrides")
	fmt.Println("  - exits 3 when the requested dataset does not exist")
}

type commonFlags struct {
	config *string
	format *string
}

func newFlagSet(name string) (*flag.FlagSet, commonFlags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs, commonFlags{
		config: fs.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config (optional)"),
		format: fs.String("format", "json", "Output format: json or csv"),
	}
}

func (f commonFlags) loader() (*data.Loader, error) {
	cfg, err := config.Load(*f.config)
	if err != nil {
		return nil, err
	}
	return data.NewLoader(cfg.Data.LoaderConfig()), nil
}

func cmdIIP(args []string, out io.Writer) error {
	fs, common := newFlagSet("iip")
	_ = fs.Parse(args)

	loader, err := common.loader()
	if err != nil {
		return err
	}
	rows, err := loader.LoadIndicatorData()
	if err != nil {
		return err
	}
	return writeRows(out, *common.format, rows)
}

func cmdStock(args []string, out io.Writer) error {
	fs, common := newFlagSet("stock")
	symbol := fs.String("symbol", "", "Stock symbol (file name without .xlsx)")
	start := fs.String("start", "", "Optional: first Date to keep (YYYY-MM-DD)")
	end := fs.String("end", "", "Optional: last Date to keep (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *symbol == "" {
		return fmt.Errorf("--symbol is required")
	}
	loader, err := common.loader()
	if err != nil {
		return err
	}
	rows, err := loader.LoadSeriesData(*symbol)
	if err != nil {
		return err
	}
	rows, err = data.FilterByDateRange(rows, *start, *end)
	if err != nil {
		return err
	}
	return writeRows(out, *common.format, rows)
}

func cmdSymbols(args []string, out io.Writer) error {
	fs, common := newFlagSet("symbols")
	_ = fs.Parse(args)

	loader, err := common.loader()
	if err != nil {
		return err
	}
	symbols, err := loader.ListSymbols()
	if err != nil {
		return err
	}
	for _, s := range symbols {
		fmt.Fprintln(out, s)
	}
	return nil
}

func writeRows(out io.Writer, format string, rows []model.Row) error {
	switch format {
	case "json":
		if rows == nil {
			rows = []model.Row{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]model.Row{"data": rows})
	case "csv":
		return data.WriteRowsCSV(out, rows)
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
}
