package models

// DayCode is the weekday abbreviation used in the courses file
type DayCode string

const (
	DayMonday    DayCode = "M"
	DayTuesday   DayCode = "TU"
	DayWednesday DayCode = "W"
	DayThursday  DayCode = "TH"
	DayFriday    DayCode = "F"
	DaySaturday  DayCode = "S"
)

// DefaultCourseType is assigned to sections whose course has no requirement row
const DefaultCourseType = "ทั่วไป"

// Day pairs a day code with its display name
type Day struct {
	Code DayCode `json:"code"`
	Name string  `json:"name"`
}

// weekDays is ordered Monday first; the page renders it in this order
var weekDays = []Day{
	{Code: DayMonday, Name: "จันทร์"},
	{Code: DayTuesday, Name: "อังคาร"},
	{Code: DayWednesday, Name: "พุธ"},
	{Code: DayThursday, Name: "พฤหัสบดี"},
	{Code: DayFriday, Name: "ศุกร์"},
	{Code: DaySaturday, Name: "เสาร์"},
}

// WeekDays returns a copy of the known days in week order
func WeekDays() []Day {
	days := make([]Day, len(weekDays))
	copy(days, weekDays)
	return days
}

// DayName translates a day code into its display name.
// The second return value is false for unknown codes.
func DayName(code DayCode) (string, bool) {
	for _, d := range weekDays {
		if d.Code == code {
			return d.Name, true
		}
	}
	return "", false
}

// IsDayName reports whether name is one of the display names
func IsDayName(name string) bool {
	for _, d := range weekDays {
		if d.Name == name {
			return true
		}
	}
	return false
}
