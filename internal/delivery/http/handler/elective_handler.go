package handler

import (
	"degree-compass/internal/delivery/http/dto"
	"degree-compass/internal/delivery/http/middleware"
	"degree-compass/internal/pkg/response"
	"degree-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ElectiveHandler struct {
	uc usecase.ElectiveUsecase
}

func NewElectiveHandler(uc usecase.ElectiveUsecase) *ElectiveHandler {
	return &ElectiveHandler{uc: uc}
}

func (h *ElectiveHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommend/elective-courses", h.GetElectiveCourses)
	r.Post("/universities/:id/degrees/electives", h.PostElectives)
	r.Get("/universities/:id/degrees/:programId/elective-skills", h.GetElectiveSkills)
}

func (h *ElectiveHandler) GetElectiveCourses(c fiber.Ctx) error {
	programID, err := parseQueryIntStrict(c, "program_id", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid program_id", nil, err)
	}
	universityID, err := parseQueryIntStrict(c, "university_id", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university_id", nil, err)
	}
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid top_n", nil, err)
	}

	res, err := h.uc.RecommendElectives(c.Context(), usecase.ElectiveParams{
		UniversityID:     universityID,
		ProgramID:        programID,
		TargetSkillNames: parseListQuery(c.Query("target_skills")),
		TopN:             topN,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", toElectiveResponse(res))
}

func (h *ElectiveHandler) PostElectives(c fiber.Ctx) error {
	universityID, err := parseParamInt(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university id", nil, err)
	}

	var req dto.ElectiveRecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}

	res, err := h.uc.RecommendElectives(c.Context(), usecase.ElectiveParams{
		UniversityID:     universityID,
		ProgramID:        req.ProgramID,
		TargetSkillNames: req.TargetSkills,
		TargetSkillIDs:   req.SkillIDs,
		TopN:             req.TopN,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", toElectiveResponse(res))
}

func (h *ElectiveHandler) GetElectiveSkills(c fiber.Ctx) error {
	universityID, err := parseParamInt(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university id", nil, err)
	}
	programID, err := parseParamInt(c, "programId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid program id", nil, err)
	}

	skills, err := h.uc.ElectiveSkills(c.Context(), universityID, programID)
	if err != nil {
		return err
	}

	out := make([]dto.ElectiveSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, dto.ElectiveSkillResponse{SkillID: s.ID, SkillName: s.Name})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func toElectiveResponse(res usecase.ElectiveResult) dto.ElectiveRecommendationResponse {
	out := dto.ElectiveRecommendationResponse{
		Recommended: make([]dto.ElectiveCourseResponse, 0, len(res.Recommended)),
		Considered:  res.Considered,
	}
	for _, r := range res.Recommended {
		out.Recommended = append(out.Recommended, dto.ElectiveCourseResponse{
			CourseID:       r.CourseID,
			CourseName:     r.CourseName,
			University:     r.University,
			Score:          r.Score,
			Skills:         emptyIfNil(r.Skills),
			MatchingSkills: emptyIfNil(r.MatchingSkills),
			MissingSkills:  emptyIfNil(r.MissingSkills),
			Reason:         r.Reason,
		})
	}
	return out
}
