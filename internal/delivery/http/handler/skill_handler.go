package handler

import (
	"strings"

	"portfolio-site/internal/delivery/http/dto"
	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/domain/skill"
	"portfolio-site/internal/pkg/response"
	"portfolio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.List)
	r.Get("/categories", h.Categories)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context(), categoryFromQuery(c))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.SkillResponse{
			Name:         it.Name,
			Category:     string(it.Category),
			CategoryIcon: it.CategoryIcon,
			Level:        string(it.Level),
			Tier:         it.Tier,
			Percentage:   it.Percentage,
			Icon:         it.Icon,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Categories(c fiber.Ctx) error {
	items := h.uc.ListCategories(categoryFromQuery(c))
	res := make([]dto.CategoryResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.CategoryResponse{Name: string(it.Category), Icon: it.Icon, Active: it.Active})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

// categoryFromQuery keeps the label verbatim apart from surrounding spaces;
// matching is case-sensitive.
func categoryFromQuery(c fiber.Ctx) skill.Category {
	raw := strings.TrimSpace(c.Query("category"))
	if raw == "" {
		return skill.CategoryAll
	}
	return skill.Category(raw)
}
