package handler

import (
	"degree-compass/internal/delivery/http/dto"
	"degree-compass/internal/delivery/http/middleware"
	"degree-compass/internal/pkg/response"
	"degree-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UniversityHandler struct {
	uc usecase.UniversityUsecase
}

func NewUniversityHandler(uc usecase.UniversityUsecase) *UniversityHandler {
	return &UniversityHandler{uc: uc}
}

func (h *UniversityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/universities", h.GetUniversities)
	r.Get("/universities/:id/degrees", h.GetDegrees)
	r.Get("/metrics/:universityId", h.GetMetrics)
}

func (h *UniversityHandler) GetUniversities(c fiber.Ctx) error {
	list, err := h.uc.ListUniversities(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.UniversityResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UniversityResponse{ID: u.ID, Name: u.Name, Country: u.Country})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *UniversityHandler) GetDegrees(c fiber.Ctx) error {
	id, err := parseParamInt(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university id", nil, err)
	}

	degrees, err := h.uc.ListDegrees(c.Context(), id)
	if err != nil {
		return err
	}

	out := make([]dto.UniversityDegreeResponse, 0, len(degrees))
	for _, d := range degrees {
		out = append(out, dto.UniversityDegreeResponse{
			ProgramID:         d.ProgramID,
			DegreeTitles:      toDegreeTitleResponses(d.Titles),
			DegreeType:        d.DegreeType,
			Language:          d.Language,
			DurationSemesters: d.DurationSemesters,
			TotalECTS:         d.TotalECTS,
			CourseCount:       d.CourseCount,
		})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *UniversityHandler) GetMetrics(c fiber.Ctx) error {
	id, err := parseParamInt(c, "universityId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university id", nil, err)
	}

	m, err := h.uc.Metrics(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", dto.UniversityMetricsResponse{
		TotalPrograms:    m.TotalPrograms,
		RecognizedSkills: m.RecognizedSkills,
	})
}
