package routes

import (
	"degree-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Registry owns every route of the service. All routes live at the app root;
// there is no version prefix in the public contract.
type Registry struct {
	health        *handler.HealthHandler
	filters       *handler.FiltersHandler
	universities  *handler.UniversityHandler
	profiles      *handler.UniversityProfileHandler
	skills        *handler.SkillHandler
	personalized  *handler.PersonalizedHandler
	electives     *handler.ElectiveHandler
	proposals     *handler.DegreeProposalHandler
	degreeCourses *handler.DegreeCourseHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	filters *handler.FiltersHandler,
	universities *handler.UniversityHandler,
	profiles *handler.UniversityProfileHandler,
	skills *handler.SkillHandler,
	personalized *handler.PersonalizedHandler,
	electives *handler.ElectiveHandler,
	proposals *handler.DegreeProposalHandler,
	degreeCourses *handler.DegreeCourseHandler,
) *Registry {
	return &Registry{
		health:        health,
		filters:       filters,
		universities:  universities,
		profiles:      profiles,
		skills:        skills,
		personalized:  personalized,
		electives:     electives,
		proposals:     proposals,
		degreeCourses: degreeCourses,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.filters.RegisterRoutes(app)
	r.universities.RegisterRoutes(app)
	r.profiles.RegisterRoutes(app)
	r.skills.RegisterRoutes(app)
	r.personalized.RegisterRoutes(app)
	r.electives.RegisterRoutes(app)
	r.proposals.RegisterRoutes(app)
	r.degreeCourses.RegisterRoutes(app)
}
