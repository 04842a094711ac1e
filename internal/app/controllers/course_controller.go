package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursefinder/internal/app/models"
	"github.com/yigit/coursefinder/internal/app/models/dto"
	"github.com/yigit/coursefinder/internal/app/services"
	"github.com/yigit/coursefinder/internal/middleware"
)

// IndexTemplate is the name of the program picker page template
const IndexTemplate = "index.html"

// CourseController handles the program picker page and the course filter
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// Index renders the program picker page
// @Summary Program picker page
// @Description Renders an HTML page listing every known program code
// @Tags courses
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 503 {string} string "Course data not loaded"
// @Router / [get]
func (c *CourseController) Index(ctx *gin.Context) {
	programs, err := c.courseService.ListPrograms(ctx)
	if err != nil {
		middleware.LoggerFrom(ctx).Error().Err(err).Msg("Cannot list programs")
		ctx.HTML(http.StatusServiceUnavailable, IndexTemplate, gin.H{
			"Error": "Error loading data: " + err.Error(),
			"Days":  models.WeekDays(),
		})
		return
	}

	ctx.HTML(http.StatusOK, IndexTemplate, gin.H{
		"Programs": programs,
		"Days":     models.WeekDays(),
	})
}

// GetCoursesFiltered returns the program's courses grouped by course code
// @Summary Filter course sections
// @Description Selects the sections of a program's courses by day and time window and groups them by course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.FilterCoursesRequest true "Filter parameters"
// @Success 200 {array} dto.CourseGroupResponse "Grouped courses, empty when no program is selected"
// @Failure 500 {object} dto.ErrorMessageResponse "Malformed body, bad time or unexpected failure"
// @Router /get_courses_filtered [post]
func (c *CourseController) GetCoursesFiltered(ctx *gin.Context) {
	var req dto.FilterCoursesRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	middleware.LoggerFrom(ctx).Debug().Interface("filters", req).Msg("Incoming filters")

	groups, err := c.courseService.FindCourses(ctx, services.SectionFilter{
		ProgramCode: req.ProgramCode,
		Days:        req.Days,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, groups)
}
