package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/campusdesk/timetable-engine/pkg/model"
	"github.com/campusdesk/timetable-engine/pkg/timetable"
)

// ExportBlocks consolidates records and writes the block rows to the CSV
// file at path. The caller supplies the consolidator, so an export
// surface that wants a stricter span cap than the renderer just passes
// one in.
func ExportBlocks(c timetable.Consolidator, records []model.AllocationRecord, path string) error {
	rows := blockRows(c, records)

	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, os.ModePerm)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write export file %s: %w", path, err)
	}
	return nil
}

// ExportBlocksString renders the consolidated block rows as a CSV string
// for surfaces that serve the export over HTTP instead of a file.
func ExportBlocksString(c timetable.Consolidator, records []model.AllocationRecord) (string, error) {
	rows := blockRows(c, records)
	s, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	return s, nil
}

func blockRows(c timetable.Consolidator, records []model.AllocationRecord) []*model.BlockCSVRow {
	blocks, _ := c.Consolidate(records)
	rows := make([]*model.BlockCSVRow, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, &model.BlockCSVRow{
			CourseCode: b.CourseCode,
			CourseName: b.CourseName,
			Section:    b.Section,
			Room:       b.Room,
			Building:   b.Building,
			Teacher:    b.TeacherName,
			Day:        b.Day,
			StartTime:  timetable.FormatTimeOfDay(b.StartMinutes),
			EndTime:    timetable.FormatTimeOfDay(b.EndMinutes),
			Online:     b.IsOnline,
		})
	}
	return rows
}
