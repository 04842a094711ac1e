package models

// CourseRecord is one raw row of the courses file.
// Optional columns (room, lecturer) may be absent from the header.
type CourseRecord struct {
	CourseCode  string `csv:"course_code"`
	CourseName  string `csv:"course_name"`
	Day         string `csv:"day"`
	StartTime   string `csv:"start_time"`
	EndTime     string `csv:"end_time"`
	ExamDate    string `csv:"exam_date"`
	ExamSession string `csv:"exam_session"`
	Room        string `csv:"room"`
	Lecturer    string `csv:"lecturer"`
}

// CourseSection is a normalized, scheduled meeting of a course.
type CourseSection struct {
	CourseCode  string
	CourseName  string
	DayCode     DayCode
	DayName     string
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	ExamDate    string
	ExamSession string
	Room        string
	Lecturer    string
	Type        string
}

// CourseRequiredColumns lists the header names every courses file must carry
var CourseRequiredColumns = []string{
	"course_code", "course_name", "day", "start_time", "end_time", "exam_date", "exam_session",
}
