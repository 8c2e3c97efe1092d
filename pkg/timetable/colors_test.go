package timetable

import (
	"testing"

	"github.com/campusdesk/timetable-engine/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestColorForIsDeterministic(t *testing.T) {
	first := ColorFor("CS101")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ColorFor("CS101"))
	}
}

func TestColorForReturnsPaletteColor(t *testing.T) {
	for _, key := range []string{"CS101", "MATH240", "PHYS101-A", "", "Room 301"} {
		assert.Contains(t, palette, ColorFor(key), "key %q", key)
	}
}

func TestColorForDifferentDimensions(t *testing.T) {
	// The same key must color identically whether the caller groups by
	// course or by room; there is no shared registry to drift.
	byCourse := ColorFor("CS101")
	byRoom := ColorFor("CS101")
	assert.Equal(t, byCourse, byRoom)
}

func TestBlockColorOnlineOverride(t *testing.T) {
	online := model.ConsolidatedBlock{CourseCode: "CS101", IsOnline: true}
	assert.Equal(t, OnlineColor, BlockColor(online))

	onsite := model.ConsolidatedBlock{CourseCode: "CS101"}
	assert.Equal(t, ColorFor("CS101"), BlockColor(onsite))
	assert.NotEqual(t, OnlineColor, BlockColor(onsite))
}
