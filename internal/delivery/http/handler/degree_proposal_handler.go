package handler

import (
	"degree-compass/internal/delivery/http/dto"
	"degree-compass/internal/delivery/http/middleware"
	"degree-compass/internal/pkg/response"
	"degree-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DegreeProposalHandler struct {
	uc usecase.DegreeProposalUsecase
}

func NewDegreeProposalHandler(uc usecase.DegreeProposalUsecase) *DegreeProposalHandler {
	return &DegreeProposalHandler{uc: uc}
}

func (h *DegreeProposalHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommend/degrees/:universityId", h.GetProposals)
}

func (h *DegreeProposalHandler) GetProposals(c fiber.Ctx) error {
	universityID, err := parseParamInt(c, "universityId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid university id", nil, err)
	}
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid top_n", nil, err)
	}

	proposals, err := h.uc.ProposeDegrees(c.Context(), universityID, topN)
	if err != nil {
		return err
	}

	out := make([]dto.DegreeProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		skills := make([]dto.ProposalSkillResponse, 0, len(p.TopSkills))
		for _, s := range p.TopSkills {
			skills = append(skills, dto.ProposalSkillResponse{Name: s.Name, Count: s.Count})
		}
		courseIDs := p.CourseIDs
		if courseIDs == nil {
			courseIDs = []int{}
		}
		out = append(out, dto.DegreeProposalResponse{
			Degree:    p.Degree,
			Score:     p.Score,
			CourseIDs: courseIDs,
			TopSkills: skills,
			Metrics: dto.ProposalMetricsResponse{
				Frequency:       p.Metrics.Frequency,
				Compatibility:   p.Metrics.Compatibility,
				Novelty:         p.Metrics.Novelty,
				SkillEnrichment: p.Metrics.SkillEnrichment,
			},
		})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
