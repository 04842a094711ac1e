package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coursefinder/internal/app/models"
	"github.com/yigit/coursefinder/internal/app/models/dto"
	"github.com/yigit/coursefinder/internal/app/repositories"
	"github.com/yigit/coursefinder/internal/pkg/apperrors"
	"github.com/yigit/coursefinder/internal/pkg/helpers"
)

const (
	defaultStartTime = "00:00"
	defaultEndTime   = "23:59"
)

// SectionFilter selects sections for one program within a day set and time window
type SectionFilter struct {
	ProgramCode string
	Days        []string // display names or day codes; empty means every day
	StartTime   string   // HH:MM, blank means 00:00
	EndTime     string   // HH:MM, blank means 23:59
}

// CourseService defines the interface for course lookup operations
type CourseService interface {
	ListPrograms(ctx context.Context) ([]string, error)
	FilterSections(ctx context.Context, filter SectionFilter) ([]models.CourseSection, error)
	FindCourses(ctx context.Context, filter SectionFilter) ([]dto.CourseGroupResponse, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	store  *repositories.CatalogStore
	logger zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(store *repositories.CatalogStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		store:  store,
		logger: logger,
	}
}

// ListPrograms returns the sorted, unique program codes
func (s *courseServiceImpl) ListPrograms(ctx context.Context) ([]string, error) {
	catalog, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return catalog.Programs(), nil
}

// FilterSections returns the sections of the program's courses that meet on one
// of the requested days and lie entirely inside the time window, in file order.
func (s *courseServiceImpl) FilterSections(ctx context.Context, filter SectionFilter) ([]models.CourseSection, error) {
	program := helpers.NormalizeCode(filter.ProgramCode)
	if program == "" {
		return []models.CourseSection{}, nil
	}

	from, err := parseWindowBound("startTime", filter.StartTime, defaultStartTime)
	if err != nil {
		return nil, err
	}
	to, err := parseWindowBound("endTime", filter.EndTime, defaultEndTime)
	if err != nil {
		return nil, err
	}

	catalog, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	days := dayNameSet(filter.Days)

	result := []models.CourseSection{}
	if !catalog.HasProgram(program) {
		return result, nil
	}
	for _, section := range catalog.Sections() {
		if !catalog.RequiresCourse(program, section.CourseCode) {
			continue
		}
		if len(days) > 0 {
			if _, ok := days[section.DayName]; !ok {
				continue
			}
		}
		if section.StartTime < from || section.EndTime > to {
			continue
		}
		result = append(result, section)
	}
	return result, nil
}

// FindCourses filters sections and groups them by course
func (s *courseServiceImpl) FindCourses(ctx context.Context, filter SectionFilter) ([]dto.CourseGroupResponse, error) {
	sections, err := s.FilterSections(ctx, filter)
	if err != nil {
		return nil, err
	}
	groups := GroupSections(sections)
	s.logger.Debug().
		Str("programCode", filter.ProgramCode).
		Strs("days", filter.Days).
		Str("startTime", filter.StartTime).
		Str("endTime", filter.EndTime).
		Int("sections", len(sections)).
		Int("courses", len(groups)).
		Msg("Filtered courses")
	return groups, nil
}

// GroupSections aggregates sections by course code in order of first appearance.
// The first section of a course supplies the course-level fields.
func GroupSections(sections []models.CourseSection) []dto.CourseGroupResponse {
	groups := []dto.CourseGroupResponse{}
	index := make(map[string]int)
	for _, section := range sections {
		i, ok := index[section.CourseCode]
		if !ok {
			i = len(groups)
			index[section.CourseCode] = i
			groups = append(groups, dto.CourseGroupResponse{
				CourseCode:  section.CourseCode,
				CourseName:  section.CourseName,
				Type:        section.Type,
				ExamDate:    section.ExamDate,
				ExamSession: section.ExamSession,
				Sections:    []dto.SectionResponse{},
			})
		}
		groups[i].Sections = append(groups[i].Sections, dto.SectionResponse{
			DayFull:   section.DayName,
			StartTime: section.StartTime.String(),
			EndTime:   section.EndTime.String(),
			Room:      section.Room,
			Lecturer:  section.Lecturer,
		})
	}
	return groups
}

// parseWindowBound parses an HH:MM filter bound; blank uses the default
func parseWindowBound(field, value, fallback string) (models.TimeOfDay, error) {
	if helpers.NormalizeText(value) == "" {
		value = fallback
	}
	t, err := helpers.ParseHourMinute(value)
	if err != nil {
		return 0, apperrors.NewBadTimeFormatError(field, value)
	}
	return models.TimeOfDayFrom(t), nil
}

// dayNameSet resolves requested days to display names; day codes are accepted too
func dayNameSet(days []string) map[string]struct{} {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		d = helpers.NormalizeText(d)
		if d == "" {
			continue
		}
		if name, ok := models.DayName(models.DayCode(d)); ok {
			d = name
		}
		set[d] = struct{}{}
	}
	return set
}
