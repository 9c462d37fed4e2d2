package handler

import (
	"context"
	"time"

	"degree-compass/internal/database"
	"degree-compass/internal/infrastructure/cache"
	"degree-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, cacheClient *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cacheClient}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.GetHealth)
}

func (h *HealthHandler) GetHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	healthy := true
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbStatus = "down"
		healthy = false
	}

	// The cache is optional: a missing Redis degrades, it never fails health.
	cacheStatus := "up"
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		cacheStatus = "degraded"
	}

	data := fiber.Map{"database": dbStatus, "cache": cacheStatus}
	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
