package data

import (
	"bytes"
	"testing"

	"stock-data-api/internal/model"
)

func TestWriteRowsCSV(t *testing.T) {
	rows := []model.Row{
		{
			{Name: "Date", Value: model.String("2024-01-01")},
			{Name: "Close", Value: model.Number(101.5)},
		},
		{
			{Name: "Date", Value: model.String("2024-01-02")},
			{Name: "Close", Value: model.Null()},
			{Name: "Note", Value: model.String("halted, partial")},
		},
	}

	var buf bytes.Buffer
	if err := WriteRowsCSV(&buf, rows); err != nil {
		t.Fatalf("WriteRowsCSV: %v", err)
	}

	want := "Date,Close,Note\n" +
		"2024-01-01,101.5,\n" +
		"2024-01-02,,\"halted, partial\"\n"
	if buf.String() != want {
		t.Errorf("expected\n%q\ngot\n%q", want, buf.String())
	}
}

func TestWriteRowsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRowsCSV(&buf, nil); err != nil {
		t.Fatalf("WriteRowsCSV: %v", err)
	}
	if buf.String() != "\n" {
		t.Errorf("expected a blank header line, got %q", buf.String())
	}
}
