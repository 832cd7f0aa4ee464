package data

import (
	"encoding/csv"
	"io"

	"stock-data-api/internal/model"
)

// WriteRowsCSV writes rows with a header made of every column, in first-seen order.
// Missing cells and nulls are written as empty fields.
func WriteRowsCSV(w io.Writer, rows []model.Row) error {
	cw := csv.NewWriter(w)

	header := []string{}
	seen := map[string]bool{}
	for _, r := range rows {
		for _, f := range r {
			if !seen[f.Name] {
				seen[f.Name] = true
				header = append(header, f.Name)
			}
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, r := range rows {
		for i, name := range header {
			v, _ := r.Get(name)
			record[i] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
