package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursefinder/internal/app/controllers"
	appRepos "github.com/yigit/coursefinder/internal/app/repositories"
	appRoutes "github.com/yigit/coursefinder/internal/app/routes"
	appServices "github.com/yigit/coursefinder/internal/app/services"
	"github.com/yigit/coursefinder/internal/config"
	appMiddleware "github.com/yigit/coursefinder/internal/middleware"
	"github.com/yigit/coursefinder/internal/pkg/logger"
	"github.com/yigit/coursefinder/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    appServices.CourseService
	CourseController *appControllers.CourseController
	HealthController *appControllers.HealthController
	Repos            *appRepos.Repositories
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// debug forces development mode, mirroring the -debug flag.
func LoadConfigAndSetupLogger(configPath string, debug bool) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}
	if debug {
		cfg.Server.Mode = "development"
		cfg.Logging.Level = string(logger.DebugLevel)
	}

	logLevel := logger.LogLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Str("mode", cfg.Server.Mode).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupCatalog loads both input files once. Startup fails when loading fails,
// so the server never serves without data.
func SetupCatalog(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	repos := appRepos.NewRepositories(
		cfg.Data.CoursesFile,
		cfg.Data.RequirementsFile,
		cfg.Data.DefaultType,
		logger.With("component", "catalog"),
	)

	if err := repos.CatalogStore.Reload(); err != nil {
		return nil, err
	}
	lgr.Info().Msg("Course catalog loaded.")
	return repos, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	deps.CourseService = appServices.NewCourseService(repos.CatalogStore, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.HealthController = appControllers.NewHealthController(repos.CatalogStore)

	return deps
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	appRoutes.SetupRouter(router, deps.CourseController, deps.HealthController)

	return router, nil
}
