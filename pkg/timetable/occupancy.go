package timetable

import (
	"slices"
	"strings"
	"time"

	"github.com/campusdesk/timetable-engine/pkg/model"
)

// State is the tri-state occupancy answer. Unknown means no record
// references the resource at all; callers must not collapse it into
// Free.
type State int

const (
	StateUnknown State = iota
	StateFree
	StateOccupied
)

func (s State) String() string {
	switch s {
	case StateFree:
		return "free"
	case StateOccupied:
		return "occupied"
	default:
		return "unknown"
	}
}

// Clock is a caller-supplied "now": a canonical weekday plus minutes
// since midnight. The oracle never reads the wall clock itself.
type Clock struct {
	Weekday string
	Minutes int
}

// ClockAt derives a Clock from a time.Time.
func ClockAt(t time.Time) Clock {
	return Clock{
		Weekday: strings.ToLower(t.Weekday().String()),
		Minutes: t.Hour()*60 + t.Minute(),
	}
}

// Occupancy is the oracle's answer for one resource. Current is set
// only when State is StateOccupied.
type Occupancy struct {
	State   State
	Current *model.AllocationRecord
}

// CheckRoom answers whether a room is busy at the given instant. A
// record occupies the half-open interval [start, end): a class ending
// exactly now leaves the room free. Day matching expands the record's
// day code and tests set membership, since a stored day field may be a
// composite like "MWF". The first matching record wins; records whose
// range fails to parse do not constrain availability.
func CheckRoom(room string, records []model.AllocationRecord, now Clock) Occupancy {
	state := StateUnknown
	for i := range records {
		r := &records[i]
		if r.Room != room {
			continue
		}
		state = StateFree
		if !slices.Contains(ExpandDayCode(r.DayCode), now.Weekday) {
			continue
		}
		rng, err := ParseTimeRange(r.TimeRange)
		if err != nil {
			continue
		}
		if now.Minutes >= rng.Start && now.Minutes < rng.End {
			return Occupancy{State: StateOccupied, Current: r}
		}
	}
	return Occupancy{State: state}
}
