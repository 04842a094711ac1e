package dto

// FilterCoursesRequest is the body of POST /get_courses_filtered
type FilterCoursesRequest struct {
	ProgramCode string   `json:"program_code" example:"CPE"`
	Days        []string `json:"days" example:"จันทร์,พุธ"`
	StartTime   string   `json:"startTime" example:"08:00"`
	EndTime     string   `json:"endTime" example:"12:00"`
}

// SectionResponse is one meeting of a course, reduced to the fields the page shows
type SectionResponse struct {
	DayFull   string `json:"day_full" example:"จันทร์"`
	StartTime string `json:"start_time" example:"09:00"`
	EndTime   string `json:"end_time" example:"10:30"`
	Room      string `json:"room" example:"E-204"`
	Lecturer  string `json:"lecturer" example:"อ.สมชาย"`
}

// CourseGroupResponse holds every selected section of one course
type CourseGroupResponse struct {
	CourseCode  string            `json:"course_code" example:"CS101"`
	CourseName  string            `json:"course_name" example:"Introduction to Programming"`
	Type        string            `json:"type" example:"core"`
	ExamDate    string            `json:"exam_date" example:"2025-03-10"`
	ExamSession string            `json:"exam_session" example:"เช้า"`
	Sections    []SectionResponse `json:"sections"`
}
