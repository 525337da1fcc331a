// Package roster parses tenant roster CSV uploads into tenant create params.
// A roster is whatever spreadsheet the landlord already keeps: the parser
// locates a header row naming at least a name and a rent column, tolerates
// extra columns, and skips decorative rows around the table.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"

	enc "github.com/rentcredit/rentcredit/internal/encoding"
	"github.com/rentcredit/rentcredit/internal/tenant"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]tenant.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := detectHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no roster header found: expected columns %q and %q", colName, colRent)
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}
