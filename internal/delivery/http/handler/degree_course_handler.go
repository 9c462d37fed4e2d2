package handler

import (
	"net/url"
	"strings"

	"degree-compass/internal/delivery/http/dto"
	"degree-compass/internal/delivery/http/middleware"
	"degree-compass/internal/pkg/response"
	"degree-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DegreeCourseHandler struct {
	uc usecase.DegreeCourseUsecase
}

func NewDegreeCourseHandler(uc usecase.DegreeCourseUsecase) *DegreeCourseHandler {
	return &DegreeCourseHandler{uc: uc}
}

func (h *DegreeCourseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommend/courses/:universityId/:degreeName", h.GetCoursesForDegree)
	r.Get("/recommend/new_degree/:degreeName", h.GetCoursesForNewDegree)
	r.Get("/recommendations/university/:universityId", h.GetUniversityRecommendations)
}

func (h *DegreeCourseHandler) GetCoursesForDegree(c fiber.Ctx) error {
	universityID, err := parseParamInt(c, "universityId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university id", nil, err)
	}
	degreeName, err := degreeNameParam(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid degree name", nil, err)
	}
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid top_n", nil, err)
	}

	res, err := h.uc.RecommendForDegree(c.Context(), universityID, degreeName, topN)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", dto.DegreeCourseRecommendationResponse{
		Degree:          res.Degree,
		Recommendations: toDegreeCourseResponses(res.Recommendations),
		Info:            res.Info,
	})
}

func (h *DegreeCourseHandler) GetCoursesForNewDegree(c fiber.Ctx) error {
	degreeName, err := degreeNameParam(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid degree name", nil, err)
	}
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid top_n", nil, err)
	}

	res, err := h.uc.RecommendForNewDegree(c.Context(), degreeName, topN)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", dto.DegreeCourseRecommendationResponse{
		Degree:          res.Degree,
		Recommendations: toDegreeCourseResponses(res.Recommendations),
		Info:            res.Info,
	})
}

func (h *DegreeCourseHandler) GetUniversityRecommendations(c fiber.Ctx) error {
	universityID, err := parseParamInt(c, "universityId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university id", nil, err)
	}
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid top_n", nil, err)
	}

	results, err := h.uc.RecommendForUniversity(c.Context(), universityID, topN)
	if err != nil {
		return err
	}

	out := make([]dto.UniversityDegreeRecommendationsResponse, 0, len(results))
	for _, entry := range results {
		out = append(out, dto.UniversityDegreeRecommendationsResponse{
			ProgramID:       entry.ProgramID,
			Degree:          entry.Degree,
			Recommendations: toDegreeCourseResponses(entry.Recommendations),
			Info:            entry.Info,
		})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

// Degree names arrive percent-encoded in the path.
func degreeNameParam(c fiber.Ctx) (string, error) {
	raw := c.Params("degreeName")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(decoded), nil
}
