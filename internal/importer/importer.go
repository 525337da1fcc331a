package importer

import (
	"io"

	"github.com/rentcredit/rentcredit/internal/tenant"
)

// Source identifies the upload format of a bulk tenant import.
type Source string

const (
	SourceRoster Source = "roster"
)

type Importer interface {
	Parse(r io.Reader) ([]tenant.CreateParams, error)
}
