package data

import (
	"fmt"

	"stock-data-api/internal/model"
)

// FilterByDateRange keeps rows whose Date lies in [start, end], comparing strings.
// Dates must be ISO formatted (YYYY-MM-DD) for the comparison to order correctly.
// If either bound is empty the rows are returned unfiltered.
func FilterByDateRange(rows []model.Row, start, end string) ([]model.Row, error) {
	if start == "" || end == "" {
		return rows, nil
	}
	out := make([]model.Row, 0, len(rows))
	for i, row := range rows {
		v, ok := row.Get(model.DateColumn)
		if !ok {
			return nil, &LoadError{Err: fmt.Errorf("row %d has no %s column", i, model.DateColumn)}
		}
		d := v.String()
		if start <= d && d <= end {
			out = append(out, row)
		}
	}
	return out, nil
}
