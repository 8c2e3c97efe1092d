package timetable

import "github.com/campusdesk/timetable-engine/pkg/model"

// palette holds the visually distinct block colors. Order matters: the
// key hash indexes into it, so reordering would recolor every timetable.
var palette = []string{
	"#3b82f6", // blue
	"#ef4444", // red
	"#10b981", // emerald
	"#f59e0b", // amber
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#14b8a6", // teal
	"#f97316", // orange
	"#6366f1", // indigo
	"#84cc16", // lime
	"#06b6d4", // cyan
	"#e11d48", // rose
	"#a855f7", // purple
	"#65a30d", // olive
	"#0ea5e9", // sky
	"#d97706", // bronze
}

// OnlineColor is the reserved color for online classes; it bypasses the
// palette so online blocks read the same in every view.
const OnlineColor = "#64748b"

// ColorFor deterministically maps a key (a course code, or a room for a
// room-centric view) to a palette color. There is no memo table; the
// hash is recomputed every call, so the same key colors identically
// across independent render passes and views.
func ColorFor(key string) string {
	var h int32
	for _, ch := range key {
		h = (h << 5) - h + int32(ch)
	}
	if h < 0 {
		h = -h
	}
	return palette[int(uint32(h))%len(palette)]
}

// BlockColor picks the render color for a block keyed by course code,
// with the online override applied.
func BlockColor(b model.ConsolidatedBlock) string {
	if b.IsOnline {
		return OnlineColor
	}
	return ColorFor(b.CourseCode)
}
