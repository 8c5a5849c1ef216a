package handler

import (
	"context"
	"time"

	"portfolio-site/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cache Pinger
}

type healthResponse struct {
	Cache string `json:"cache"`
}

func NewHealthHandler(cache Pinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health always reports 200; a missing cache only degrades QR rendering.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	status := "bypassed"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err == nil {
			status = "up"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, healthResponse{Cache: status})
}
