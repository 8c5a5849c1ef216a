package handler

import (
	"portfolio-site/internal/delivery/http/dto"
	"portfolio-site/internal/domain/profile"
	"portfolio-site/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	store *profile.Store
}

func NewProfileHandler(store *profile.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Profile)
	r.Get("/projects", h.Projects)
	r.Get("/education", h.Education)
	r.Get("/achievements", h.Achievements)
	r.Get("/hobbies", h.Hobbies)
}

func (h *ProfileHandler) Profile(c fiber.Ctx) error {
	res := dto.ProfileResponse{
		Identity: h.store.Identity(),
		Contact:  h.store.Contact(),
		Theme:    h.store.Theme(),
		Stats:    h.store.Stats(),
		Download: dto.DownloadLinks{
			QRCode:         "/downloads/qr.png",
			QRFileName:     h.store.QRFileName(),
			Resume:         "/downloads/resume",
			ResumeFileName: h.store.ResumeFileName(),
		},
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ProfileHandler) Projects(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.store.Projects())
}

func (h *ProfileHandler) Education(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.store.Education())
}

func (h *ProfileHandler) Achievements(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AchievementsResponse{
		Certifications: h.store.Certifications(),
		Workshops:      h.store.Workshops(),
	})
}

func (h *ProfileHandler) Hobbies(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.store.Hobbies())
}
