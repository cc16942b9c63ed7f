package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praveen-sripati/society-backend/internal/domain/services"
	"github.com/praveen-sripati/society-backend/internal/domain/services/container"
	"github.com/praveen-sripati/society-backend/internal/error/response"
)

// HealthController reports service liveness
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler for the health endpoint
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		NewHealthController(ctx, container).Ping()
	}
}

// Ping reports database and redis connectivity
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/ping [get]
func (c *HealthController) Ping() {
	dbStatus := "up"
	if sqlDB, err := c.Container.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if err := redisService.Ping(); err != nil {
		redisStatus = "down"
	}

	response.Success(c.Ctx, "pong", gin.H{
		"time":     time.Now().UTC(),
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
