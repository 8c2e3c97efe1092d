package timetable

import (
	"math/rand"
	"testing"

	"github.com/campusdesk/timetable-engine/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(day, timeRange string) model.AllocationRecord {
	return model.AllocationRecord{
		CourseCode:  "CS101",
		CourseName:  "Intro to Computing",
		Section:     "A",
		Room:        "301",
		Building:    "Engineering",
		TeacherName: "Dela Cruz",
		DayCode:     day,
		TimeRange:   timeRange,
	}
}

func TestConsolidateMergesBackToBack(t *testing.T) {
	records := []model.AllocationRecord{
		slot("Monday", "09:00 - 10:30"),
		slot("Monday", "10:30 - 12:00"),
	}

	blocks, dropped := Consolidator{}.Consolidate(records)
	require.Len(t, blocks, 1)
	assert.Zero(t, dropped)
	assert.Equal(t, 540, blocks[0].StartMinutes)
	assert.Equal(t, 720, blocks[0].EndMinutes)
	assert.Equal(t, "monday", blocks[0].Day)
}

func TestConsolidateLeavesGapsSplit(t *testing.T) {
	records := []model.AllocationRecord{
		slot("Monday", "09:00 - 10:30"),
		slot("Monday", "11:00 - 12:30"),
	}

	blocks, _ := Consolidator{}.Consolidate(records)
	require.Len(t, blocks, 2)
	assert.Equal(t, 540, blocks[0].StartMinutes)
	assert.Equal(t, 630, blocks[0].EndMinutes)
	assert.Equal(t, 660, blocks[1].StartMinutes)
	assert.Equal(t, 750, blocks[1].EndMinutes)
}

func TestConsolidateEndToEndScenario(t *testing.T) {
	// Three 90-minute slots, the first two contiguous, the third after a
	// lunch gap. Exactly two blocks must come out.
	records := []model.AllocationRecord{
		slot("Monday", "07:00 - 08:30"),
		slot("Monday", "08:30 - 10:00"),
		slot("Monday", "13:00 - 14:30"),
	}

	blocks, dropped := Consolidator{}.Consolidate(records)
	require.Len(t, blocks, 2)
	assert.Zero(t, dropped)
	assert.Equal(t, 420, blocks[0].StartMinutes)
	assert.Equal(t, 600, blocks[0].EndMinutes)
	assert.Equal(t, 780, blocks[1].StartMinutes)
	assert.Equal(t, 870, blocks[1].EndMinutes)
}

func TestConsolidateMixedTimeNotations(t *testing.T) {
	// Producers emit 24-hour and 12-hour notation interchangeably; the
	// two still merge when contiguous.
	records := []model.AllocationRecord{
		slot("Monday", "9:00 AM - 10:30 AM"),
		slot("Monday", "10:30 - 12:00"),
	}

	blocks, _ := Consolidator{}.Consolidate(records)
	require.Len(t, blocks, 1)
	assert.Equal(t, 540, blocks[0].StartMinutes)
	assert.Equal(t, 720, blocks[0].EndMinutes)
}

func TestConsolidateIsOrderIndependent(t *testing.T) {
	records := []model.AllocationRecord{
		slot("Monday", "07:00 - 08:30"),
		slot("Monday", "08:30 - 10:00"),
		slot("MWF", "13:00 - 14:30"),
		slot("Tuesday", "09:00 - 10:30"),
	}
	want, wantDropped := Consolidator{}.Consolidate(records)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.AllocationRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got, gotDropped := Consolidator{}.Consolidate(shuffled)
		assert.Equal(t, want, got)
		assert.Equal(t, wantDropped, gotDropped)
	}
}

func TestConsolidateFansOutCompoundDays(t *testing.T) {
	records := []model.AllocationRecord{slot("MWF", "09:00 - 10:30")}

	blocks, _ := Consolidator{}.Consolidate(records)
	require.Len(t, blocks, 3)
	assert.Equal(t, "monday", blocks[0].Day)
	assert.Equal(t, "wednesday", blocks[1].Day)
	assert.Equal(t, "friday", blocks[2].Day)
}

func TestConsolidateDropsUnparseableRecords(t *testing.T) {
	bad := slot("Monday", "garbage")
	records := []model.AllocationRecord{
		slot("Monday", "09:00 - 10:30"),
		bad,
	}

	blocks, dropped := Consolidator{}.Consolidate(records)
	require.Len(t, blocks, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 540, blocks[0].StartMinutes)
	assert.Equal(t, 630, blocks[0].EndMinutes)
}

func TestConsolidateDropsDegenerateRanges(t *testing.T) {
	records := []model.AllocationRecord{
		slot("Monday", "10:00 - 10:00"),
		slot("Monday", "11:00 - 09:00"),
	}

	blocks, dropped := Consolidator{}.Consolidate(records)
	assert.Empty(t, blocks)
	assert.Equal(t, 2, dropped)
}

func TestConsolidateKeepsDistinctGroupsApart(t *testing.T) {
	other := slot("Monday", "10:30 - 12:00")
	other.Section = "B"
	records := []model.AllocationRecord{
		slot("Monday", "09:00 - 10:30"),
		other,
	}

	// Adjacent in time but different sections: no merge.
	blocks, _ := Consolidator{}.Consolidate(records)
	assert.Len(t, blocks, 2)
}

func TestConsolidateMaxSpanCap(t *testing.T) {
	records := []model.AllocationRecord{
		slot("Monday", "07:00 - 08:30"),
		slot("Monday", "08:30 - 10:00"),
		slot("Monday", "10:00 - 11:30"),
		slot("Monday", "11:30 - 13:00"),
	}

	t.Run("uncapped default merges everything", func(t *testing.T) {
		blocks, _ := Consolidator{}.Consolidate(records)
		require.Len(t, blocks, 1)
		assert.Equal(t, 360, blocks[0].Duration())
	})

	t.Run("cap closes the block and opens a new one", func(t *testing.T) {
		blocks, _ := Consolidator{MaxSpanMinutes: 240}.Consolidate(records)
		require.Len(t, blocks, 2)
		assert.Equal(t, 420, blocks[0].StartMinutes)
		assert.Equal(t, 600, blocks[0].EndMinutes)
		assert.Equal(t, 600, blocks[1].StartMinutes)
		assert.Equal(t, 780, blocks[1].EndMinutes)
	})
}
