package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusdesk/planner-api/internal/dto"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
	"github.com/campusdesk/planner-api/pkg/export"
)

// ExportResult is a rendered document ready to be served.
type ExportResult struct {
	FileName    string
	ContentType string
	Payload     []byte
}

// ExportService renders a schedule option into downloadable formats.
type ExportService struct {
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(validate *validator.Validate, logger *zap.Logger) *ExportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: validate,
		logger:    logger,
	}
}

// Render produces the schedule document in the requested format.
func (s *ExportService) Render(ctx context.Context, req dto.ExportScheduleRequest) (*ExportResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export payload")
	}
	if len(req.Option.Sections) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "schedule option has no sections")
	}

	rows := scheduleRows(req.Option)
	stamp := time.Now().UTC().Format("20060102")

	switch req.Format {
	case "csv":
		payload, err := s.csv.Render(rows)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("schedule-%s.csv", stamp),
			ContentType: "text/csv",
			Payload:     payload,
		}, nil
	case "pdf":
		title := req.Title
		if title == "" {
			title = "Weekly Schedule"
		}
		payload, err := s.pdf.Render(rows, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("schedule-%s.pdf", stamp),
			ContentType: "application/pdf",
			Payload:     payload,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrUnsupportedExport, fmt.Sprintf("unsupported export format %q", req.Format))
	}
}

func scheduleRows(option dto.ScheduleOption) []export.ScheduleRow {
	var rows []export.ScheduleRow
	for _, section := range option.Sections {
		for _, lecture := range section.Lectures {
			rows = append(rows, export.ScheduleRow{
				CourseCode:   section.CourseCode,
				CourseName:   section.CourseName,
				SectionLabel: section.SectionLabel,
				Day:          lecture.Day,
				StartTime:    lecture.StartTime,
				EndTime:      lecture.EndTime,
				Location:     lecture.Location,
			})
		}
	}
	return rows
}
