package repositories

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/yigit/coursefinder/internal/app/models"
	"github.com/yigit/coursefinder/internal/pkg/helpers"
)

const (
	coursesSource      = "courses_master.csv"
	requirementsSource = "program_requirements.csv"

	// maxLoggedConflicts caps the course codes listed in the conflict warning
	maxLoggedConflicts = 20
)

// CatalogSource produces a fresh catalog on every call
type CatalogSource interface {
	Load() (*Catalog, error)
}

// CSVCatalogLoader builds a Catalog from the two CSV input files
type CSVCatalogLoader struct {
	coursesPath      string
	requirementsPath string
	defaultType      string
	logger           zerolog.Logger
}

// NewCSVCatalogLoader creates a new CSVCatalogLoader.
// An empty defaultType falls back to models.DefaultCourseType.
func NewCSVCatalogLoader(coursesPath, requirementsPath, defaultType string, logger zerolog.Logger) *CSVCatalogLoader {
	if defaultType == "" {
		defaultType = models.DefaultCourseType
	}
	return &CSVCatalogLoader{
		coursesPath:      coursesPath,
		requirementsPath: requirementsPath,
		defaultType:      defaultType,
		logger:           logger,
	}
}

// Load reads, validates and normalizes both files.
// It returns an apperrors.ErrNotFound error for a missing file and a
// *apperrors.SchemaError when required columns are absent.
func (l *CSVCatalogLoader) Load() (*Catalog, error) {
	l.logger.Info().
		Str("courses", l.coursesPath).
		Str("requirements", l.requirementsPath).
		Msg("Loading course data")

	courseRows, err := readTable(l.coursesPath, coursesSource, models.CourseRequiredColumns)
	if err != nil {
		return nil, err
	}
	reqRows, err := readTable(l.requirementsPath, requirementsSource, models.RequirementRequiredColumns)
	if err != nil {
		return nil, err
	}
	l.logger.Debug().
		Strs("coursesColumns", courseRows[0]).
		Strs("requirementsColumns", reqRows[0]).
		Msg("Input columns")

	var records []*models.CourseRecord
	if len(courseRows) > 1 {
		if err := decodeTable(courseRows, coursesSource, &records); err != nil {
			return nil, err
		}
	}
	var rawReqs []*models.ProgramRequirement
	if len(reqRows) > 1 {
		if err := decodeTable(reqRows, requirementsSource, &rawReqs); err != nil {
			return nil, err
		}
	}

	requirements := make([]models.ProgramRequirement, 0, len(rawReqs))
	typeByCourse := make(map[string]string)
	for _, r := range rawReqs {
		req := models.ProgramRequirement{
			ProgramCode: helpers.NormalizeCode(r.ProgramCode),
			CourseCode:  helpers.NormalizeText(r.CourseCode),
			Type:        helpers.NormalizeText(r.Type),
		}
		requirements = append(requirements, req)
		// left join: the first requirement row for a course decides its type
		if _, seen := typeByCourse[req.CourseCode]; !seen {
			typeByCourse[req.CourseCode] = req.Type
		}
	}

	stats := LoadStats{RequirementRows: len(requirements)}
	sections := make([]models.CourseSection, 0, len(records))
	for _, rec := range records {
		section, reason := l.normalizeRecord(rec, typeByCourse)
		switch reason {
		case dropBadDay:
			stats.DroppedBadDay++
			continue
		case dropBadTime:
			stats.DroppedBadTime++
			continue
		}
		if typeByCourse[section.CourseCode] == "" {
			stats.DefaultedType++
		}
		sections = append(sections, section)
	}
	stats.CourseRows = len(sections)

	conflicts := findMetadataConflicts(sections)
	stats.ConflictingCodes = len(conflicts)
	if len(conflicts) > 0 {
		logged := conflicts
		if len(logged) > maxLoggedConflicts {
			logged = logged[:maxLoggedConflicts]
		}
		l.logger.Warn().
			Int("count", len(conflicts)).
			Strs("courseCodes", logged).
			Msg("Courses with conflicting name, type or exam data across rows; first row wins")
	}

	l.logger.Info().
		Int("sections", stats.CourseRows).
		Int("requirements", stats.RequirementRows).
		Int("droppedBadDay", stats.DroppedBadDay).
		Int("droppedBadTime", stats.DroppedBadTime).
		Int("defaultedType", stats.DefaultedType).
		Msg("Course data ready")

	return newCatalog(sections, requirements, stats), nil
}

type dropReason int

const (
	keep dropReason = iota
	dropBadDay
	dropBadTime
)

func (l *CSVCatalogLoader) normalizeRecord(rec *models.CourseRecord, typeByCourse map[string]string) (models.CourseSection, dropReason) {
	code := models.DayCode(helpers.NormalizeText(rec.Day))
	dayName, ok := models.DayName(code)
	if !ok {
		return models.CourseSection{}, dropBadDay
	}

	start, okStart := helpers.ParseClock(rec.StartTime)
	end, okEnd := helpers.ParseClock(rec.EndTime)
	if !okStart || !okEnd {
		return models.CourseSection{}, dropBadTime
	}

	courseCode := helpers.NormalizeText(rec.CourseCode)
	courseType := typeByCourse[courseCode]
	if courseType == "" {
		courseType = l.defaultType
	}

	return models.CourseSection{
		CourseCode:  courseCode,
		CourseName:  helpers.NormalizeText(rec.CourseName),
		DayCode:     code,
		DayName:     dayName,
		StartTime:   models.TimeOfDayFrom(start),
		EndTime:     models.TimeOfDayFrom(end),
		ExamDate:    helpers.NormalizeText(rec.ExamDate),
		ExamSession: helpers.NormalizeText(rec.ExamSession),
		Room:        helpers.NormalizeText(rec.Room),
		Lecturer:    helpers.NormalizeText(rec.Lecturer),
		Type:        courseType,
	}, keep
}

// findMetadataConflicts returns, sorted, the course codes whose course-level
// fields differ from the first row seen for that code.
func findMetadataConflicts(sections []models.CourseSection) []string {
	first := make(map[string]models.CourseSection)
	conflicting := make(map[string]struct{})
	for _, s := range sections {
		f, ok := first[s.CourseCode]
		if !ok {
			first[s.CourseCode] = s
			continue
		}
		if f.CourseName != s.CourseName || f.Type != s.Type || f.ExamDate != s.ExamDate || f.ExamSession != s.ExamSession {
			conflicting[s.CourseCode] = struct{}{}
		}
	}
	out := make([]string, 0, len(conflicting))
	for code := range conflicting {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
