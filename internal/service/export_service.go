package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
	"github.com/qlhs-edu/dashboard-bff/pkg/export"
	"github.com/qlhs-edu/dashboard-bff/pkg/i18n"
)

type attendanceFilterer interface {
	Filtered(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecord, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

var exportHeaders = []string{
	"time", "day", "month", "year", "day_of_week",
	"student_id", "student_name", "subject_id", "subject_name",
	"status", "class_names",
}

// ExportResult carries the rendered bytes with download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the filtered attendance collection into downloadable
// files.
type ExportService struct {
	attendance attendanceFilterer
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
	now        func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(attendance attendanceFilterer, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		attendance: attendance,
		csv:        csv,
		pdf:        pdf,
		logger:     logger,
		now:        time.Now,
	}
}

// Attendance renders the records matching the filter. The CSV output matches
// the files already in circulation byte for byte; PDF is the printable
// variant of the same table.
func (s *ExportService) Attendance(ctx context.Context, filter models.AttendanceFilter, format ExportFormat, locale i18n.Locale) (*ExportResult, error) {
	records, err := s.attendance.Filtered(ctx, filter)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: exportHeaders,
		Rows:    make([][]string, 0, len(records)),
	}
	for _, r := range records {
		dataset.Rows = append(dataset.Rows, []string{
			r.Time,
			fmt.Sprintf("%d", r.Day),
			fmt.Sprintf("%d", r.Month),
			fmt.Sprintf("%d", r.Year),
			r.DayOfWeek,
			r.StudentID,
			scrubCommas(r.StudentName),
			r.SubjectID,
			scrubCommas(r.SubjectName),
			i18n.StatusLabel(locale, strings.ToLower(r.Remark)),
			scrubClassNames(r.ClassNames),
		})
	}

	date := s.now()
	stamp := fmt.Sprintf("%d-%02d-%02d", date.Year(), int(date.Month()), date.Day())

	switch format {
	case ExportFormatPDF:
		body, err := s.pdf.Render(dataset, fmt.Sprintf("Attendance %s", stamp))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("attendance_%s.pdf", stamp),
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	case ExportFormatCSV, "":
		body, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("attendance_%s.csv", stamp),
			ContentType: "text/csv; charset=utf-8",
			Body:        body,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// Commas collide with the delimiter inside quoted names in the legacy files,
// so they become spaces there too.
func scrubCommas(value string) string {
	return strings.ReplaceAll(value, ",", " ")
}

func scrubClassNames(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.ReplaceAll(value, ",", " |")
}
