package repositories

import (
	"sort"
	"time"

	"github.com/yigit/coursefinder/internal/app/models"
)

// LoadStats summarises what the loader kept and dropped
type LoadStats struct {
	CourseRows       int
	RequirementRows  int
	DroppedBadDay    int
	DroppedBadTime   int
	DefaultedType    int
	ConflictingCodes int
}

// Catalog is one loaded, immutable view of both input files.
// Slices returned by its methods must not be modified by callers.
type Catalog struct {
	sections       []models.CourseSection
	requirements   []models.ProgramRequirement
	programCourses map[string]map[string]struct{}
	programs       []string
	loadedAt       time.Time
	stats          LoadStats
}

func newCatalog(sections []models.CourseSection, requirements []models.ProgramRequirement, stats LoadStats) *Catalog {
	c := &Catalog{
		sections:       sections,
		requirements:   requirements,
		programCourses: make(map[string]map[string]struct{}),
		loadedAt:       time.Now(),
		stats:          stats,
	}
	for _, req := range requirements {
		if req.ProgramCode == "" {
			continue
		}
		courses, ok := c.programCourses[req.ProgramCode]
		if !ok {
			courses = make(map[string]struct{})
			c.programCourses[req.ProgramCode] = courses
			c.programs = append(c.programs, req.ProgramCode)
		}
		courses[req.CourseCode] = struct{}{}
	}
	sort.Strings(c.programs)
	return c
}

// Sections returns the loaded course sections in file order
func (c *Catalog) Sections() []models.CourseSection {
	return c.sections
}

// Requirements returns the loaded program requirements in file order
func (c *Catalog) Requirements() []models.ProgramRequirement {
	return c.requirements
}

// Programs returns the sorted, de-duplicated program codes
func (c *Catalog) Programs() []string {
	out := make([]string, len(c.programs))
	copy(out, c.programs)
	return out
}

// RequiresCourse reports whether courseCode counts toward programCode.
// programCode must already be normalized.
func (c *Catalog) RequiresCourse(programCode, courseCode string) bool {
	_, ok := c.programCourses[programCode][courseCode]
	return ok
}

// HasProgram reports whether any requirement row names programCode
func (c *Catalog) HasProgram(programCode string) bool {
	_, ok := c.programCourses[programCode]
	return ok
}

func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }
func (c *Catalog) Stats() LoadStats     { return c.stats }
