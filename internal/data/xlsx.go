package data

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"stock-data-api/internal/model"

	"github.com/xuri/excelize/v2"
)

// ReadSheet decodes one worksheet of an .xlsx workbook into rows.
// Row 1 is the header; an empty sheet name selects the first worksheet.
func ReadSheet(path, sheet string) ([]model.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no worksheets")
		}
		sheet = sheets[0]
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return []model.Row{}, nil
	}

	r := &sheetReader{f: f, sheet: sheet, dateStyles: map[int]bool{}}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}

	width := 0
	for _, cells := range raw {
		if len(cells) > width {
			width = len(cells)
		}
	}
	head := make([]string, width)
	copy(head, raw[0])
	header := headerNames(head)
	rows := make([]model.Row, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		if blank(cells) {
			continue
		}
		row := make(model.Row, len(header))
		for col, name := range header {
			v := model.Null()
			if col < len(cells) {
				// Sheet rows are 1-based and the header occupies row 1.
				v, err = r.cell(col+1, i+2, cells[col])
				if err != nil {
					return nil, err
				}
			}
			row[col] = model.Field{Name: name, Value: v}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type sheetReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func (r *sheetReader) cell(col, rowNum int, raw string) (model.Value, error) {
	if raw == "" {
		return model.Null(), nil
	}
	axis, err := excelize.CoordinatesToCellName(col, rowNum)
	if err != nil {
		return model.Value{}, err
	}
	typ, err := r.f.GetCellType(r.sheet, axis)
	if err != nil {
		return model.Value{}, fmt.Errorf("cell %s: %w", axis, err)
	}

	switch typ {
	case excelize.CellTypeBool:
		return model.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return model.String(raw), nil
	}

	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return model.String(raw), nil
	}
	styleID, err := r.f.GetCellStyle(r.sheet, axis)
	if err == nil && r.isDateStyle(styleID) {
		t, err := excelize.ExcelDateToTime(num, r.date1904)
		if err == nil {
			return model.String(isoDate(t)), nil
		}
	}
	return model.Number(num), nil
}

func (r *sheetReader) isDateStyle(id int) bool {
	if id == 0 {
		return false
	}
	if known, ok := r.dateStyles[id]; ok {
		return known
	}
	isDate := false
	if style, err := r.f.GetStyle(id); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = isBuiltinDateFormat(style.NumFmt)
		}
	}
	r.dateStyles[id] = isDate
	return isDate
}

// isBuiltinDateFormat covers the built-in number format ids that render dates or times,
// including the CJK locale ranges.
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains date or time tokens
// outside of quoted literals, escapes and bracketed sections such as colours.
func isDateFormatCode(code string) bool {
	if strings.EqualFold(code, "general") {
		return false
	}
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			switch c | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}

// isoDate renders a sheet timestamp as YYYY-MM-DD, keeping the clock only when it is not midnight.
func isoDate(t time.Time) string {
	t = t.Round(time.Second)
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02T15:04:05")
}

// headerNames turns the first sheet row into unique column names.
func headerNames(cells []string) []string {
	names := make([]string, len(cells))
	seen := map[string]int{}
	for i, c := range cells {
		name := strings.TrimSpace(c)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
