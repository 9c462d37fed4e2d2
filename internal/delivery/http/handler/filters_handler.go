package handler

import (
	"degree-compass/internal/delivery/http/dto"
	"degree-compass/internal/pkg/response"
	"degree-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FiltersHandler struct {
	filters      usecase.FiltersUsecase
	universities usecase.UniversityUsecase
}

func NewFiltersHandler(filters usecase.FiltersUsecase, universities usecase.UniversityUsecase) *FiltersHandler {
	return &FiltersHandler{filters: filters, universities: universities}
}

func (h *FiltersHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/filters")
	grp.Get("/degree-types", h.GetDegreeTypes)
	grp.Get("/countries", h.GetCountries)
	grp.Get("/languages", h.GetLanguages)
	grp.Get("/universities", h.GetUniversities)
}

func (h *FiltersHandler) GetDegreeTypes(c fiber.Ctx) error {
	opts, err := h.filters.Options(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", opts.DegreeTypes)
}

func (h *FiltersHandler) GetCountries(c fiber.Ctx) error {
	opts, err := h.filters.Options(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", opts.Countries)
}

func (h *FiltersHandler) GetLanguages(c fiber.Ctx) error {
	opts, err := h.filters.Options(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", opts.Languages)
}

func (h *FiltersHandler) GetUniversities(c fiber.Ctx) error {
	list, err := h.universities.ListUniversities(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.UniversityResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UniversityResponse{ID: u.ID, Name: u.Name, Country: u.Country})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
