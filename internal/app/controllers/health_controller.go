package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursefinder/internal/app/models/dto"
	"github.com/yigit/coursefinder/internal/app/repositories"
)

// HealthController reports liveness and whether course data is loaded
type HealthController struct {
	store *repositories.CatalogStore
}

// NewHealthController creates a new HealthController
func NewHealthController(store *repositories.CatalogStore) *HealthController {
	return &HealthController{store: store}
}

// Ping reports catalog sizes and what the last load dropped
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /ping [get]
func (h *HealthController) Ping(ctx *gin.Context) {
	catalog, err := h.store.Current()
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Message: err.Error(), Status: "error"})
		return
	}

	loadedAt := catalog.LoadedAt()
	stats := catalog.Stats()
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Message:      "pong",
		Status:       "success",
		Sections:     len(catalog.Sections()),
		Requirements: len(catalog.Requirements()),
		LoadedAt:     &loadedAt,
		Stats: &dto.LoadStatsResponse{
			DroppedBadDay:    stats.DroppedBadDay,
			DroppedBadTime:   stats.DroppedBadTime,
			DefaultedType:    stats.DefaultedType,
			ConflictingCodes: stats.ConflictingCodes,
		},
	})
}
