package model

// AllocationRecord is one scheduled occupancy of a time slot by a
// course/section/room/teacher combination. Records arrive from the
// external scheduling service as plain data; DayCode and TimeRange keep
// whatever notation the producer used.
type AllocationRecord struct {
	CourseCode  string `csv:"course_code" json:"courseCode"`
	CourseName  string `csv:"course_name" json:"courseName"`
	Section     string `csv:"section" json:"section"`
	Room        string `csv:"room" json:"room"`
	Building    string `csv:"building" json:"building"`
	TeacherName string `csv:"teacher" json:"teacherName"`
	DayCode     string `csv:"day" json:"dayCode"`
	TimeRange   string `csv:"time" json:"timeRange"`
	IsOnline    bool   `csv:"is_online" json:"isOnline"`
}

// ExpandedRecord is an AllocationRecord resolved to exactly one canonical
// lowercase weekday and a parsed minute range. StartMinutes < EndMinutes
// always holds; degenerate ranges never make it this far.
type ExpandedRecord struct {
	AllocationRecord
	Day          string
	StartMinutes int
	EndMinutes   int
}
