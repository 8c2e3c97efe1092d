package main

import (
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campusdesk/timetable-engine/internal/csvio"
	"github.com/campusdesk/timetable-engine/internal/logging"
	"github.com/campusdesk/timetable-engine/pkg/model"
	"github.com/campusdesk/timetable-engine/pkg/timetable"
)

var (
	input    = flag.String("in", "./res/allocations.csv", "allocations CSV file")
	output   = flag.String("out", "timetable.csv", "export CSV path")
	delim    = flag.String("delim", ",", "CSV delimiter")
	maxSpan  = flag.Int("cap", 0, "maximum merged block length in minutes (0 = no cap)")
	skipDump = flag.Bool("quiet", false, "skip printing the timetable to stdout")
)

func main() {
	flag.Parse()
	logger := logging.Init("development")
	defer logger.Sync()

	delimRune := ','
	if *delim != "" {
		delimRune = []rune(*delim)[0]
	}

	records, err := csvio.LoadAllocations(*input, delimRune)
	if err != nil {
		logger.Fatal("load allocations", zap.Error(err))
	}

	cons := timetable.Consolidator{MaxSpanMinutes: *maxSpan}
	blocks, dropped := cons.Consolidate(records)
	if dropped > 0 {
		logger.Warn("dropped records with malformed time ranges", zap.Int("count", dropped))
	}

	if !*skipDump {
		printTimetable(blocks)
	}

	if err := csvio.ExportBlocks(cons, records, *output); err != nil {
		logger.Fatal("export timetable", zap.Error(err))
	}
	fmt.Printf("Exported %d blocks to %s\n", len(blocks), *output)
}

// printTimetable prints the consolidated weekly timetable grouped by day.
func printTimetable(blocks []model.ConsolidatedBlock) {
	currentDay := ""
	for _, b := range blocks {
		if b.Day != currentDay {
			currentDay = b.Day
			pad := 32 - len(currentDay)
			fmt.Printf("\n%s %s %s\n",
				strings.Repeat("-", pad/2), currentDay, strings.Repeat("-", pad-pad/2))
		}
		where := b.Room
		if b.Building != "" {
			where = b.Building + " " + b.Room
		}
		if b.IsOnline {
			where = "online"
		}
		fmt.Printf("%-9s- %-9s %-10s %-4s %-18s %s\n",
			timetable.FormatTimeOfDay(b.StartMinutes), timetable.FormatTimeOfDay(b.EndMinutes),
			b.CourseCode, b.Section, where, b.TeacherName)
	}
	fmt.Printf("\nPrinted blocks: %d\n", len(blocks))
}
