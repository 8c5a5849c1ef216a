package app

import (
	"fmt"
	"strings"

	"portfolio-site/internal/config"
	"portfolio-site/internal/delivery/http/handler"
	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/delivery/http/routes"
	"portfolio-site/internal/delivery/http/view"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/compress"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) (*App, error) {
	if c == nil {
		return nil, fmt.Errorf("nil container")
	}

	views, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c, views)

	return &App{Fiber: f, Container: c}, nil
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app, err := New(c)
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	c.Logger.Printf("[App] bootstrapped | name=%s env=%s skills=%d", cfg.App.AppName, cfg.App.Environment, len(c.Store.Skills()))
	return app, c.Close, nil
}

// registerGlobalMiddleware installs the access log outside the error handler
// so logged statuses reflect the rendered error page.
func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(c.Logger, "/static")
	app.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(c.Logger)
	app.Use(errMw.Middleware())

	app.Use(compress.New())
}

func registerRoutes(app *fiber.App, c *Container, views *view.Renderer) {
	if app == nil {
		return
	}

	registry := &routes.Registry{
		StaticDir: c.Config.Profile.StaticDir,
		Health:    handler.NewHealthHandler(c.Cache),
		Pages:     handler.NewPageHandler(c.Store, c.Skills, c.Contact, c.QR, views, c.Logger),
		Contact:   handler.NewContactHandler(c.Contact),
		Download:  handler.NewDownloadHandler(c.Store, c.QR, c.Config.Profile.StaticDir, c.Logger),
		Skills:    handler.NewSkillHandler(c.Skills),
		Profile:   handler.NewProfileHandler(c.Store),
	}
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
