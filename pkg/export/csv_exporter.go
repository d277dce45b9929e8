package export

import (
	"fmt"

	"github.com/gocarina/gocsv"
)

// ScheduleRow is one lecture of an exported schedule.
type ScheduleRow struct {
	CourseCode   string `csv:"course_code"`
	CourseName   string `csv:"course_name"`
	SectionLabel string `csv:"section"`
	Day          string `csv:"day"`
	StartTime    string `csv:"start_time"`
	EndTime      string `csv:"end_time"`
	Location     string `csv:"location"`
}

// CSVExporter renders schedule rows into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the schedule.
func (e *CSVExporter) Render(rows []ScheduleRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv requires at least one row")
	}
	payload, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("marshal csv: %w", err)
	}
	return payload, nil
}
