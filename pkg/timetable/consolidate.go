package timetable

import (
	"sort"

	"github.com/campusdesk/timetable-engine/pkg/model"
)

// Consolidator merges back-to-back allocation records into renderable
// blocks. MaxSpanMinutes caps a merged block's length; zero, the
// default, means no cap. An export surface wanting a stricter cap
// passes its own value.
type Consolidator struct {
	MaxSpanMinutes int
}

type groupKey struct {
	courseCode string
	section    string
	room       string
	day        string
	teacher    string
	online     bool
}

// Expand resolves every record into one ExpandedRecord per weekday in
// its day code, with a parsed minute range. Records whose range fails to
// parse, or is degenerate, contribute nothing; the second return counts
// them for callers that want diagnostics.
func Expand(records []model.AllocationRecord) ([]model.ExpandedRecord, int) {
	expanded := make([]model.ExpandedRecord, 0, len(records))
	dropped := 0
	for _, r := range records {
		rng, err := ParseTimeRange(r.TimeRange)
		if err != nil || rng.Start >= rng.End {
			dropped++
			continue
		}
		for _, day := range ExpandDayCode(r.DayCode) {
			expanded = append(expanded, model.ExpandedRecord{
				AllocationRecord: r,
				Day:              day,
				StartMinutes:     rng.Start,
				EndMinutes:       rng.End,
			})
		}
	}
	return expanded, dropped
}

// Consolidate turns a flat record set into maximal contiguous blocks,
// one group per (course, section, room, day, teacher, online) tuple.
// Output is sorted by day, start time and course so the same input
// multiset always yields the same slice regardless of input order. The
// dropped-record count rides along as the second return.
func (c Consolidator) Consolidate(records []model.AllocationRecord) ([]model.ConsolidatedBlock, int) {
	expanded, dropped := Expand(records)

	groups := make(map[groupKey][]model.ExpandedRecord)
	for _, r := range expanded {
		k := groupKey{r.CourseCode, r.Section, r.Room, r.Day, r.TeacherName, r.IsOnline}
		groups[k] = append(groups[k], r)
	}

	blocks := make([]model.ConsolidatedBlock, 0, len(groups))
	for _, rs := range groups {
		sort.SliceStable(rs, func(i, j int) bool {
			if rs[i].StartMinutes != rs[j].StartMinutes {
				return rs[i].StartMinutes < rs[j].StartMinutes
			}
			return rs[i].EndMinutes < rs[j].EndMinutes
		})

		current := blockFrom(rs[0])
		for _, r := range rs[1:] {
			// Merge only exactly back-to-back intervals, and only while
			// the merged span stays within the cap.
			if r.StartMinutes == current.EndMinutes && c.withinCap(current.StartMinutes, r.EndMinutes) {
				current.EndMinutes = r.EndMinutes
				continue
			}
			blocks = append(blocks, current)
			current = blockFrom(r)
		}
		blocks = append(blocks, current)
	}

	sort.Slice(blocks, func(i, j int) bool {
		return lessBlocks(blocks[i], blocks[j])
	})
	return blocks, dropped
}

func (c Consolidator) withinCap(start, end int) bool {
	return c.MaxSpanMinutes <= 0 || end-start <= c.MaxSpanMinutes
}

func blockFrom(r model.ExpandedRecord) model.ConsolidatedBlock {
	return model.ConsolidatedBlock{
		CourseCode:   r.CourseCode,
		CourseName:   r.CourseName,
		Section:      r.Section,
		Room:         r.Room,
		Building:     r.Building,
		TeacherName:  r.TeacherName,
		Day:          r.Day,
		StartMinutes: r.StartMinutes,
		EndMinutes:   r.EndMinutes,
		IsOnline:     r.IsOnline,
	}
}

func lessBlocks(a, b model.ConsolidatedBlock) bool {
	if ai, bi := DayIndex(a.Day), DayIndex(b.Day); ai != bi {
		return ai < bi
	}
	if a.Day != b.Day { // both unknown days, keep them ordered too
		return a.Day < b.Day
	}
	if a.StartMinutes != b.StartMinutes {
		return a.StartMinutes < b.StartMinutes
	}
	if a.EndMinutes != b.EndMinutes {
		return a.EndMinutes < b.EndMinutes
	}
	if a.CourseCode != b.CourseCode {
		return a.CourseCode < b.CourseCode
	}
	if a.Section != b.Section {
		return a.Section < b.Section
	}
	if a.Room != b.Room {
		return a.Room < b.Room
	}
	if a.TeacherName != b.TeacherName {
		return a.TeacherName < b.TeacherName
	}
	return !a.IsOnline && b.IsOnline
}
