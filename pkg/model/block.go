package model

// ConsolidatedBlock is a maximal run of back-to-back allocation records
// for the same course/section/room/teacher on one day, merged into a
// single renderable interval. Blocks are derived views: recomputed on
// demand, never mutated or stored.
type ConsolidatedBlock struct {
	CourseCode   string `json:"courseCode"`
	CourseName   string `json:"courseName"`
	Section      string `json:"section"`
	Room         string `json:"room"`
	Building     string `json:"building"`
	TeacherName  string `json:"teacherName"`
	Day          string `json:"day"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
	IsOnline     bool   `json:"isOnline"`
}

// Duration returns the block length in minutes.
func (b ConsolidatedBlock) Duration() int {
	return b.EndMinutes - b.StartMinutes
}

// BlockCSVRow is the export shape consumed by the printable timetable.
type BlockCSVRow struct {
	CourseCode string `csv:"course_code"`
	CourseName string `csv:"course_name"`
	Section    string `csv:"section"`
	Room       string `csv:"room"`
	Building   string `csv:"building"`
	Teacher    string `csv:"teacher"`
	Day        string `csv:"day"`
	StartTime  string `csv:"start_time"`
	EndTime    string `csv:"end_time"`
	Online     bool   `csv:"online"`
}
