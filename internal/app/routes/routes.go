package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursefinder/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	healthController *controllers.HealthController,
) {
	router.GET("/", courseController.Index)
	router.POST("/get_courses_filtered", courseController.GetCoursesFiltered)

	router.GET("/ping", healthController.Ping)
}
