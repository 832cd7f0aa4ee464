package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestRowMarshalJSONKeepsColumnOrder(t *testing.T) {
	row := Row{
		{Name: "Date", Value: String("2024-01-01")},
		{Name: "Open", Value: Number(101.25)},
		{Name: "Volume", Value: Number(1200)},
		{Name: "Adj Close", Value: Null()},
		{Name: "Halted", Value: Bool(false)},
	}
	raw, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"Date":"2024-01-01","Open":101.25,"Volume":1200,"Adj Close":null,"Halted":false}`
	if string(raw) != want {
		t.Errorf("expected %s, got %s", want, raw)
	}
}

func TestValueMarshalNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		raw, err := json.Marshal(Number(f))
		if err != nil {
			t.Fatalf("Marshal(%v): %v", f, err)
		}
		if string(raw) != "null" {
			t.Errorf("expected null for %v, got %s", f, raw)
		}
	}
}

func TestValueZeroIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() {
		t.Error("expected zero Value to be null")
	}
	raw, _ := json.Marshal(v)
	if string(raw) != "null" {
		t.Errorf("expected null, got %s", raw)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{String("2024-01-01"), "2024-01-01"},
		{Number(3), "3"},
		{Number(0.1), "0.1"},
		{Bool(true), "true"},
		{Null(), ""},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestRowUnmarshalJSON(t *testing.T) {
	var row Row
	if err := json.Unmarshal([]byte(`{"Date":"2024-01-02","Close":7.5,"Note":null,"Core":true}`), &row); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	cols := row.Columns()
	want := []string{"Date", "Close", "Note", "Core"}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("column %d: expected %s, got %s", i, want[i], cols[i])
		}
	}
	if v, _ := row.Get("Close"); v.Kind != KindNumber || v.Num != 7.5 {
		t.Errorf("expected Close 7.5, got %+v", v)
	}
	if v, _ := row.Get("Note"); !v.IsNull() {
		t.Errorf("expected null Note, got %+v", v)
	}
	if _, ok := row.Get("Missing"); ok {
		t.Error("expected Missing column to be absent")
	}
}

func TestRowUnmarshalRejectsNested(t *testing.T) {
	var row Row
	if err := json.Unmarshal([]byte(`{"a":{"b":1}}`), &row); err == nil {
		t.Error("expected error for nested object")
	}
	if err := json.Unmarshal([]byte(`[1,2]`), &row); err == nil {
		t.Error("expected error for array")
	}
}
