package handler

import (
	"degree-compass/internal/delivery/http/dto"
	"degree-compass/internal/delivery/http/middleware"
	"degree-compass/internal/pkg/response"
	"degree-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UniversityProfileHandler struct {
	uc usecase.UniversityProfileUsecase
}

func NewUniversityProfileHandler(uc usecase.UniversityProfileUsecase) *UniversityProfileHandler {
	return &UniversityProfileHandler{uc: uc}
}

func (h *UniversityProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/profile/:universityId", h.GetProfile)
	r.Get("/similar/:universityId", h.GetSimilar)
}

func (h *UniversityProfileHandler) GetProfile(c fiber.Ctx) error {
	id, err := parseParamInt(c, "universityId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university id", nil, err)
	}

	profile, err := h.uc.Profile(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", dto.UniversityProfileResponse{
		Skills:  emptyIfNil(profile.Skills),
		Courses: emptyIfNil(profile.Courses),
		Degrees: emptyIfNil(profile.Degrees),
	})
}

func (h *UniversityProfileHandler) GetSimilar(c fiber.Ctx) error {
	id, err := parseParamInt(c, "universityId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university id", nil, err)
	}
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid top_n", nil, err)
	}

	similar, err := h.uc.Similar(c.Context(), id, topN)
	if err != nil {
		return err
	}

	out := make([]dto.SimilarUniversityResponse, 0, len(similar))
	for _, s := range similar {
		out = append(out, dto.SimilarUniversityResponse{
			UniversityID:    s.UniversityID,
			Name:            s.Name,
			Country:         s.Country,
			SimilarityScore: s.Score,
		})
	}
	return response.Success(c, fiber.StatusOK, "success", dto.SimilarUniversitiesResponse{
		TargetUniversityID:  id,
		SimilarUniversities: out,
	})
}
