package importer

import (
	"fmt"
	"io"

	"github.com/rentcredit/rentcredit/internal/importer/roster"
	"github.com/rentcredit/rentcredit/internal/tenant"
)

type Service struct {
	rosterImporter Importer
}

func NewService() *Service {
	return &Service{
		rosterImporter: roster.New(),
	}
}

func (s *Service) Import(src Source, r io.Reader) ([]tenant.CreateParams, error) {
	var imp Importer

	switch src {
	case SourceRoster:
		imp = s.rosterImporter
	default:
		return nil, fmt.Errorf("unknown import source: %s", src)
	}

	return imp.Parse(r)
}
