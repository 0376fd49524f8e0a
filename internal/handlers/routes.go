package handlers

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/config"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/middleware"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/realtime"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
)

type Deps struct {
	Config config.Config
	Svc    *marketplace.Service
	Hub    *realtime.Hub
	// Notify defaults to Hub when nil.
	Notify realtime.Publisher
	Log    *slog.Logger
	Now    func() time.Time
}

// NewApp builds the fiber app with every /api route mounted.
func NewApp(d Deps) *fiber.App {
	if d.Notify == nil {
		d.Notify = d.Hub
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	cfg := d.Config

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(d.Log),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSOrigins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	authH := &AuthHandler{
		Svc:          d.Svc,
		JWTSecret:    cfg.JWTSecret,
		Expires:      cfg.JWTExpiresMin,
		CookieSecure: cfg.CookieSecure,
		Log:          d.Log,
	}
	categoryH := NewCategoryHandler(d.Svc)
	projectH := NewProjectHandler(d.Svc, d.Log)
	proposalH := NewProposalHandler(d.Svc, d.Notify, d.Log)
	portfolioH := NewPortfolioHandler(d.Svc, d.Log)
	chatH := NewChatHandler(d.Svc, d.Hub, d.Notify, d.Log)
	dashboardH := NewDashboardHandler(d.Svc, d.Log)

	api := app.Group("/api",
		middleware.OptionalJWTFromCookie(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	// public
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/categories", categoryH.GetCategories)
	api.Get("/projects/featured", projectH.Featured)
	api.Get("/projects", projectH.Browse)
	if cfg.EnableSeed {
		seedH := &SeedHandler{Svc: d.Svc, Now: d.Now, Log: d.Log}
		api.Post("/dev/seed", seedH.Seed)
	}

	// websocket upgrade authenticates with the same cookie
	api.Get("/ws/chat", RequireUpgrade(), websocket.New(chatH.WebSocketHandler))

	// protected (JWT); mounted per prefix so unknown /api paths still 404
	requireJWT := middleware.JWTFromCookie(cfg.JWTSecret)
	attach := middleware.AttachJWTLocals()

	api.Get("/me", requireJWT, attach, authH.Me)
	api.Get("/projects/:id", requireJWT, attach, projectH.Show)
	api.Get("/portfolio/:freelancerId", requireJWT, attach, portfolioH.Show)

	messages := api.Group("/messages", requireJWT, attach)
	messages.Post("/", chatH.SendMessage)
	messages.Get("/", chatH.Inbox)
	messages.Get("/:userId", chatH.Conversation)

	// client only
	client := api.Group("/client", requireJWT, attach, middleware.RequireRoles(models.RoleClient))
	client.Get("/dashboard", dashboardH.Client)
	client.Post("/projects", projectH.Create)
	client.Get("/projects/:id/proposals", projectH.Proposals)
	client.Post("/proposals/:id/accept", proposalH.Accept)
	client.Post("/proposals/:id/reject", proposalH.Reject)

	// freelancer only
	freelancer := api.Group("/freelancer", requireJWT, attach, middleware.RequireRoles(models.RoleFreelancer))
	freelancer.Get("/dashboard", dashboardH.Freelancer)
	freelancer.Post("/projects/:id/proposals", proposalH.Submit)
	freelancer.Get("/portfolio", portfolioH.ListMine)
	freelancer.Post("/portfolio", portfolioH.Create)

	return app
}

// errorHandler renders fiber errors and unexpected ones in the
// {success, message} envelope.
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			log.Error("unhandled error", "method", c.Method(), "path", c.Path(), "err", err)
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}
}
