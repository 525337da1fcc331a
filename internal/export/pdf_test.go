package export

import (
	"bytes"
	"fmt"
	"testing"
)

func TestPaginate(t *testing.T) {
	const n = 100

	pos := paginate(n)

	if len(pos) != n {
		t.Fatalf("expected %d positions, got %d", n, len(pos))
	}

	if pos[0].page != 1 || pos[0].y != pdfBodyTop {
		t.Errorf("first line misplaced: %+v", pos[0])
	}

	breaks := 0

	for i := 1; i < len(pos); i++ {
		prev, cur := pos[i-1], pos[i]

		switch {
		case cur.page == prev.page:
			if cur.y != prev.y+pdfLineStep {
				t.Errorf("line %d: y %v does not follow %v", i, cur.y, prev.y)
			}
		case cur.page == prev.page+1:
			breaks++

			if cur.y != pdfContinued {
				t.Errorf("line %d: page break must reset cursor to %v, got %v", i, pdfContinued, cur.y)
			}

			if prev.y+pdfLineStep <= pdfPageLimit {
				t.Errorf("line %d: page break without threshold crossing (prev y %v)", i, prev.y)
			}
		default:
			t.Errorf("line %d: page jumped from %d to %d", i, prev.page, cur.page)
		}

		if cur.y > pdfPageLimit {
			t.Errorf("line %d: y %v beyond page limit", i, cur.y)
		}
	}

	// 31 lines fit on the first page, 32 on each continued page.
	if pos[31].page != 2 || pos[31].y != pdfContinued {
		t.Errorf("expected line 31 to open page 2, got %+v", pos[31])
	}

	if breaks == 0 {
		t.Error("expected at least one page break for 100 lines")
	}
}

func TestPaginate_SinglePage(t *testing.T) {
	for i, p := range paginate(10) {
		if p.page != 1 {
			t.Fatalf("line %d spilled to page %d", i, p.page)
		}
	}
}

func TestMarshalTablePDF(t *testing.T) {
	records := make([]Record, 0, 80)
	for i := 0; i < 80; i++ {
		records = append(records, Record{
			{Name: "name", Value: fmt.Sprintf("Tenant %d", i)},
			{Name: "rent", Value: "15000"},
		})
	}

	data, err := MarshalTablePDF(records, "Tenant Report")
	if err != nil {
		t.Fatalf("MarshalTablePDF failed: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output is not a PDF document")
	}
}

func TestMarshalTablePDF_EmptyStillRendersTitle(t *testing.T) {
	data, err := MarshalTablePDF(nil, "Tenant Report")
	if err != nil {
		t.Fatalf("MarshalTablePDF failed: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output is not a PDF document")
	}
}

func TestMarshalTablePDF_FieldSetMismatch(t *testing.T) {
	records := []Record{
		{{Name: "name", Value: "A"}},
		{{Name: "rent", Value: "100"}},
	}

	if _, err := MarshalTablePDF(records, "Report"); err == nil {
		t.Error("expected field-set mismatch error")
	}
}

func TestMarshalSummaryPDF(t *testing.T) {
	text := "CIBIL Score: 750\nOn-Time Streak: 5 months\nPayment Health: 92% On-Time"

	data, err := MarshalSummaryPDF("Credit Health Summary", text)
	if err != nil {
		t.Fatalf("MarshalSummaryPDF failed: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output is not a PDF document")
	}
}
