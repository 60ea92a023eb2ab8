// Package server assembles the Fiber application: middleware chain, routes,
// and the central error translator.
package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/devport/portfolio-api/internal/config"
	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/handlers"
	"github.com/devport/portfolio-api/internal/middleware"
)

// Deps carries the constructed handlers and the auth gate collaborators.
type Deps struct {
	Tokens middleware.TokenVerifier
	Users  middleware.UserResolver

	Auth    *handlers.AuthHandler
	Project *handlers.ProjectHandler
	Skill   *handlers.SkillHandler
	About   *handlers.AboutHandler
	Contact *handlers.ContactHandler
	Upload  *handlers.UploadHandler
	Health  *handlers.HealthHandler
}

// New builds the Fiber app with all middleware and routes registered.
func New(cfg *config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "portfolio-api",
		BodyLimit:    cfg.BodyLimitMB << 20,
		ErrorHandler: newErrorHandler(cfg.IsProduction()),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Origins(), ","),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", deps.Health.Welcome)
	app.Get("/health", deps.Health.Health)

	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        1000,
		Expiration: 15 * time.Minute,
	}))

	protected := middleware.RequireAuth(deps.Tokens, deps.Users)

	// Login and registration get a much tighter abuse window.
	authLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
	})
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authLimiter, deps.Auth.Register)
	authGroup.Post("/login", authLimiter, deps.Auth.Login)
	authGroup.Get("/me", protected, deps.Auth.Me)
	authGroup.Put("/me", protected, deps.Auth.UpdateMe)

	projects := api.Group("/projects")
	projects.Get("/featured", deps.Project.Featured)
	projects.Get("/", deps.Project.List)
	projects.Get("/:id", deps.Project.Get)
	projects.Post("/", protected, deps.Project.Create)
	projects.Put("/:id", protected, deps.Project.Update)
	projects.Delete("/:id", protected, deps.Project.Delete)

	skills := api.Group("/skills")
	skills.Get("/", deps.Skill.List)
	skills.Get("/:id", deps.Skill.Get)
	skills.Post("/", protected, deps.Skill.Create)
	skills.Put("/:id", protected, deps.Skill.Update)
	skills.Delete("/:id", protected, deps.Skill.Delete)

	about := api.Group("/about")
	about.Get("/", deps.About.Get)
	about.Put("/", protected, deps.About.Update)
	about.Post("/experience", protected, deps.About.AddExperience)
	about.Post("/education", protected, deps.About.AddEducation)

	contact := api.Group("/contact")
	contact.Post("/", deps.Contact.Submit)
	contact.Get("/", protected, deps.Contact.List)
	contact.Get("/:id", protected, deps.Contact.Get)
	contact.Put("/:id/read", protected, deps.Contact.MarkRead)
	contact.Delete("/:id", protected, deps.Contact.Delete)

	upload := api.Group("/upload", protected)
	upload.Post("/", deps.Upload.UploadOne)
	upload.Post("/multiple", deps.Upload.UploadMany)

	app.Use(func(c *fiber.Ctx) error {
		return errs.NotFound("route " + c.Path())
	})

	return app
}
