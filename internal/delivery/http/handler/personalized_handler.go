package handler

import (
	"degree-compass/internal/delivery/http/dto"
	"degree-compass/internal/delivery/http/middleware"
	"degree-compass/internal/pkg/response"
	"degree-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PersonalizedHandler struct {
	uc usecase.PersonalizedUsecase
}

func NewPersonalizedHandler(uc usecase.PersonalizedUsecase) *PersonalizedHandler {
	return &PersonalizedHandler{uc: uc}
}

func (h *PersonalizedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/recommend")
	grp.Post("/personalized", h.PostPersonalized)
	grp.Get("/general-search", h.GetGeneralSearch)
}

func (h *PersonalizedHandler) PostPersonalized(c fiber.Ctx) error {
	var req dto.PersonalizedRecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}

	res, err := h.uc.Recommend(c.Context(), usecase.PersonalizedParams{
		TargetSkillNames: req.TargetSkills,
		TargetSkillIDs:   req.SkillIDs,
		DegreeType:       req.DegreeType,
		Country:          req.Country,
		Language:         req.Language,
		TopN:             req.TopN,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", toPersonalizedResponse(res))
}

func (h *PersonalizedHandler) GetGeneralSearch(c fiber.Ctx) error {
	skillIDs, err := parseIntListQuery(c.Query("skill_ids"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid skill_ids", nil, err)
	}
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid top_n", nil, err)
	}

	res, err := h.uc.Recommend(c.Context(), usecase.PersonalizedParams{
		TargetSkillNames: parseListQuery(c.Query("target_skills")),
		TargetSkillIDs:   skillIDs,
		DegreeType:       c.Query("degree_type"),
		Country:          c.Query("country"),
		Language:         c.Query("language"),
		TopN:             topN,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", toPersonalizedResponse(res))
}
