package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment-api/internal/app/models/dto"
	"github.com/yigit/enrollment-api/internal/app/services"
	"github.com/yigit/enrollment-api/internal/middleware"
)

// HealthController reports service health
type HealthController struct {
	healthService services.HealthService
}

// NewHealthController creates a new HealthController
func NewHealthController(healthService services.HealthService) *HealthController {
	return &HealthController{healthService: healthService}
}

// Health pings the database
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.healthService.Check(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
