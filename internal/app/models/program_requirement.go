package models

// ProgramRequirement links a program to a course that counts toward it.
// ProgramCode is stored trimmed and uppercased.
type ProgramRequirement struct {
	ProgramCode string `csv:"program_code"`
	CourseCode  string `csv:"course_code"`
	Type        string `csv:"type"`
}

// RequirementRequiredColumns lists the header names every requirements file must carry
var RequirementRequiredColumns = []string{"program_code", "course_code", "type"}
