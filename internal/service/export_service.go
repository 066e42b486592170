package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/enrolify/leads-api/internal/models"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
	"github.com/enrolify/leads-api/pkg/export"
)

type recordLister interface {
	List(ctx context.Context, start, limit int) ([]models.LeadRecord, error)
}

// ExportFormat identifies a supported export encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult carries rendered export content.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the record list into downloadable documents.
type ExportService struct {
	records recordLister
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	maxRows int
	logger  *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(records recordLister, maxRows int, logger *zap.Logger) *ExportService {
	if maxRows <= 0 {
		maxRows = 1000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		records: records,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		maxRows: maxRows,
		logger:  logger,
	}
}

var exportHeaders = []string{"id", "dni", "name", "email", "phone", "address", "subject", "class_duration", "enroll_times", "career", "year_enroll"}

// Export renders all records (up to the configured row cap) in the requested
// format.
func (s *ExportService) Export(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	records, err := s.records.List(ctx, 0, s.maxRows)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: exportHeaders, Rows: make([]map[string]string, 0, len(records))}
	for _, r := range records {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"id":             strconv.FormatInt(r.ID, 10),
			"dni":            r.DNI,
			"name":           r.Name,
			"email":          r.Email,
			"phone":          r.Phone,
			"address":        r.Address,
			"subject":        r.Subject,
			"class_duration": strconv.Itoa(r.ClassDuration),
			"enroll_times":   strconv.Itoa(r.EnrollTimes),
			"career":         r.Career,
			"year_enroll":    strconv.Itoa(r.YearEnroll),
		})
	}

	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: "records.csv"}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, "lead records")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: "records.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
