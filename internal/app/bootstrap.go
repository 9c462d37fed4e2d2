package app

import (
	"fmt"
	"log"
	"strings"

	"degree-compass/internal/config"
	"degree-compass/internal/delivery/http/handler"
	"degree-compass/internal/delivery/http/middleware"
	"degree-compass/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{})

	registerGlobalMiddleware(f)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(cfg, c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(log.Default())
	app.Use(accessMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		handler.NewFiltersHandler(c.Filters, c.Universities),
		handler.NewUniversityHandler(c.Universities),
		handler.NewUniversityProfileHandler(c.Profiles),
		handler.NewSkillHandler(c.SkillGroups),
		handler.NewPersonalizedHandler(c.Personalized),
		handler.NewElectiveHandler(c.Electives),
		handler.NewDegreeProposalHandler(c.Proposals),
		handler.NewDegreeCourseHandler(c.DegreeCourse),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
