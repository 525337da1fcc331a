package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Layout constants of the report page, in millimeters on A4 portrait. A line
// past pageLimit starts a new page with the cursor reset to continuedTop.
const (
	pdfLeft      = 10.0
	pdfTitleY    = 16.0
	pdfBodyTop   = 30.0
	pdfLineStep  = 8.0
	pdfPageLimit = 270.0
	pdfContinued = 20.0

	pdfTitleSize = 16.0
	pdfBodySize  = 12.0
)

// linePos is the computed placement of one body line.
type linePos struct {
	page int
	y    float64
}

// paginate places n body lines on consecutive pages. Every line gets exactly
// one position; a page break happens exactly once per threshold crossing.
func paginate(n int) []linePos {
	pos := make([]linePos, 0, n)

	page, y := 1, pdfBodyTop

	for i := 0; i < n; i++ {
		pos = append(pos, linePos{page: page, y: y})

		y += pdfLineStep
		if y > pdfPageLimit {
			page++
			y = pdfContinued
		}
	}

	return pos
}

// MarshalTablePDF renders a titled tabular report: a pipe-delimited header
// line followed by one pipe-delimited line per record.
func MarshalTablePDF(records []Record, title string) ([]byte, error) {
	if err := validateUniform(records); err != nil {
		return nil, fmt.Errorf("pdf export: %w", err)
	}

	lines := make([]string, 0, len(records)+1)

	if len(records) > 0 {
		lines = append(lines, strings.Join(records[0].names(), " | "))
		for _, rec := range records {
			lines = append(lines, strings.Join(rec.values(), " | "))
		}
	}

	return renderPDF(title, lines)
}

// MarshalSummaryPDF renders a pre-formatted multi-line text verbatim below the
// title. Used for single-entity summaries rather than tabular data.
func MarshalSummaryPDF(title, text string) ([]byte, error) {
	return renderPDF(title, strings.Split(text, "\n"))
}

func renderPDF(title string, lines []string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", pdfTitleSize)
	doc.Text(pdfLeft, pdfTitleY, title)
	doc.SetFont("Helvetica", "", pdfBodySize)

	page := 1

	for i, pos := range paginate(len(lines)) {
		for page < pos.page {
			doc.AddPage()
			page++
		}

		doc.Text(pdfLeft, pos.y, lines[i])
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}

	return buf.Bytes(), nil
}
