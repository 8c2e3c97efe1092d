package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/campusdesk/timetable-engine/pkg/model"
)

func setReader(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.TrimLeadingSpace = true
		return r
	})
}

// LoadAllocations reads allocation records from the CSV file at path.
// Records with malformed day or time fields load fine here; the engine
// drops them later, so one bad row never fails the whole file.
func LoadAllocations(path string, delim rune) ([]model.AllocationRecord, error) {
	setReader(delim)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open allocations file: %w", err)
	}
	defer f.Close()

	records := []model.AllocationRecord{}
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse allocations file %s: %w", path, err)
	}
	return records, nil
}

// ParseAllocations parses allocation records from raw CSV bytes. The
// upload surface hands these over without a disk round trip.
func ParseAllocations(data []byte, delim rune) ([]model.AllocationRecord, error) {
	setReader(delim)

	records := []model.AllocationRecord{}
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("parse allocations: %w", err)
	}
	return records, nil
}
