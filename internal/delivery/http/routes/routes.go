package routes

import (
	"portfolio-site/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type Registry struct {
	StaticDir string

	Health   *handler.HealthHandler
	Pages    *handler.PageHandler
	Contact  *handler.ContactHandler
	Download *handler.DownloadHandler
	Skills   *handler.SkillHandler
	Profile  *handler.ProfileHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	r.registerHealth(app)
	r.registerSite(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerSite(app *fiber.App) {
	if r.StaticDir != "" {
		app.Use("/static", static.New(r.StaticDir))
	}
	if r.Pages != nil {
		r.Pages.RegisterRoutes(app)
	}
	if r.Contact != nil {
		r.Contact.RegisterRoutes(app)
	}
	if r.Download != nil {
		r.Download.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r)
}
