package handler

import (
	"degree-compass/internal/delivery/http/dto"
	"degree-compass/internal/pkg/response"
	"degree-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillGroupUsecase
}

func NewSkillHandler(uc usecase.SkillGroupUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/skills")
	grp.Get("/grouped-by-categories", h.GetGroupedByCategories)
	grp.Get("/grouped", h.GetGrouped)
}

func (h *SkillHandler) GetGroupedByCategories(c fiber.Ctx) error {
	groups, err := h.uc.GroupedByCategory(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", toSkillGroupResponses(groups))
}

func (h *SkillHandler) GetGrouped(c fiber.Ctx) error {
	groups, err := h.uc.GroupedByOccupation(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", toSkillGroupResponses(groups))
}

func toSkillGroupResponses(groups []usecase.SkillGroup) []dto.SkillGroupResponse {
	out := make([]dto.SkillGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.SkillGroupResponse{Group: g.Group, Skills: emptyIfNil(g.Skills)})
	}
	return out
}
