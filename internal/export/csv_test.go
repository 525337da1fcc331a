package export

import (
	"strings"
	"testing"
)

func TestMarshalCSV(t *testing.T) {
	records := []Record{
		{{Name: "name", Value: "A"}, {Name: "rent", Value: "100"}},
		{{Name: "name", Value: "B"}, {Name: "rent", Value: "200"}},
	}

	got, err := MarshalCSV(records)
	if err != nil {
		t.Fatalf("MarshalCSV failed: %v", err)
	}

	want := "\"name\",\"rent\"\n\"A\",\"100\"\n\"B\",\"200\""
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarshalCSV_Empty(t *testing.T) {
	got, err := MarshalCSV(nil)
	if err != nil {
		t.Fatalf("empty input must not error, got %v", err)
	}

	if got != nil {
		t.Errorf("empty input must produce no bytes, got %q", got)
	}
}

func TestMarshalCSV_QuoteDoubling(t *testing.T) {
	records := []Record{
		{{Name: "name", Value: `say "hi"`}},
	}

	got, err := MarshalCSV(records)
	if err != nil {
		t.Fatalf("MarshalCSV failed: %v", err)
	}

	if !strings.Contains(string(got), `"say ""hi"""`) {
		t.Errorf("embedded quotes not doubled: %q", got)
	}
}

func TestMarshalCSV_FieldSetMismatch(t *testing.T) {
	type testCase struct {
		name    string
		records []Record
	}

	tests := []testCase{
		{
			name: "DifferentLength",
			records: []Record{
				{{Name: "name", Value: "A"}, {Name: "rent", Value: "100"}},
				{{Name: "name", Value: "B"}},
			},
		},
		{
			name: "DifferentNames",
			records: []Record{
				{{Name: "name", Value: "A"}, {Name: "rent", Value: "100"}},
				{{Name: "name", Value: "B"}, {Name: "amount", Value: "200"}},
			},
		},
		{
			name: "DifferentOrder",
			records: []Record{
				{{Name: "name", Value: "A"}, {Name: "rent", Value: "100"}},
				{{Name: "rent", Value: "200"}, {Name: "name", Value: "B"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MarshalCSV(tt.records); err == nil {
				t.Error("expected field-set mismatch error")
			}
		})
	}
}
