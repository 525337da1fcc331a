package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rentcredit/rentcredit/internal/payment"
	"github.com/rentcredit/rentcredit/internal/tenant"
)

const (
	MIMECSV = "text/csv"
	MIMEPDF = "application/pdf"
)

// Download is a rendered report ready to hand to the user: bytes plus the
// delivery metadata. A nil Download from the service means there was nothing
// to export and no download should happen.
type Download struct {
	Filename string
	MIME     string
	Data     []byte
}

// Service turns the currently visible entity subset into downloadable report
// files. Rendering failures surface as errors the caller must branch on; none
// are swallowed.
type Service struct {
	tenants   *tenant.Service
	payments  *payment.Service
	outputDir string
}

func NewService(tenants *tenant.Service, payments *payment.Service, outputDir string) *Service {
	return &Service{
		tenants:   tenants,
		payments:  payments,
		outputDir: outputDir,
	}
}

// TenantsCSV exports the tenants matching crit. Returns (nil, nil) when the
// subset is empty: an empty export is a documented no-op, not an error.
func (s *Service) TenantsCSV(ctx context.Context, crit tenant.FilterCriteria, filename string) (*Download, error) {
	tenants, err := s.tenants.List(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}

	data, err := MarshalCSV(TenantRecords(tenants))
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, nil
	}

	return &Download{Filename: filename, MIME: MIMECSV, Data: data}, nil
}

// TenantsPDF exports the tenants matching crit as a tabular report. An empty
// subset still produces a title-only document.
func (s *Service) TenantsPDF(ctx context.Context, crit tenant.FilterCriteria, filename, title string) (*Download, error) {
	tenants, err := s.tenants.List(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}

	data, err := MarshalTablePDF(TenantRecords(tenants), title)
	if err != nil {
		return nil, err
	}

	return &Download{Filename: filename, MIME: MIMEPDF, Data: data}, nil
}

// PaymentsCSV exports the payment history matching the status filter.
func (s *Service) PaymentsCSV(ctx context.Context, f payment.StatusFilter, filename string) (*Download, error) {
	payments, err := s.payments.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	data, err := MarshalCSV(PaymentRecords(payments))
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, nil
	}

	return &Download{Filename: filename, MIME: MIMECSV, Data: data}, nil
}

// PaymentsPDF exports the payment history matching the status filter.
func (s *Service) PaymentsPDF(ctx context.Context, f payment.StatusFilter, filename, title string) (*Download, error) {
	payments, err := s.payments.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	data, err := MarshalTablePDF(PaymentRecords(payments), title)
	if err != nil {
		return nil, err
	}

	return &Download{Filename: filename, MIME: MIMEPDF, Data: data}, nil
}

// SummaryPDF exports a pre-formatted text block, such as the tenant's credit
// health summary.
func (s *Service) SummaryPDF(title, text, filename string) (*Download, error) {
	data, err := MarshalSummaryPDF(title, text)
	if err != nil {
		return nil, err
	}

	return &Download{Filename: filename, MIME: MIMEPDF, Data: data}, nil
}

// Save writes the download under the configured output directory and returns
// the full path.
func (s *Service) Save(d *Download) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(s.outputDir, d.Filename)
	if err := os.WriteFile(path, d.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return path, nil
}

// TenantReportName names a landlord export after the current period, matching
// the dashboard's "tenants-Jun-2024.csv" convention.
func TenantReportName(ext string) string {
	return fmt.Sprintf("tenants-%s%s", time.Now().Format("Jan-2006"), ext)
}

// RentHistoryName names a tenant-side CSV export.
func RentHistoryName(user string) string {
	return fmt.Sprintf("rent-history-%s.csv", user)
}

// CreditSummaryName names a tenant-side credit summary PDF.
func CreditSummaryName(user string) string {
	return fmt.Sprintf("credit-summary-%s.pdf", user)
}
