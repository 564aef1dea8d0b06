package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/config"
	"github.com/campus-hq/college-admin-api/internal/handler"
	"github.com/campus-hq/college-admin-api/internal/middleware"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/observability"
)

// Dependencies carries everything the route tree needs.
type Dependencies struct {
	Config config.Config
	Logger zerolog.Logger

	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Academics     *handler.AcademicHandler
	Attendance    *handler.AttendanceHandler
	Leaves        *handler.LeaveHandler
	Feedback      *handler.FeedbackHandler
	Notifications *handler.NotificationHandler
	Results       *handler.ResultHandler
	Dashboard     *handler.DashboardHandler
}

// Register wires the public and protected route groups.
func Register(app *fiber.App, deps Dependencies) {
	app.Get("/health", handler.HealthCheck(deps.Config))
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1")

	deps.Auth.Register(api.Group("/auth"))

	protected := api.Use(middleware.JWTProtected(deps.Config.JWTSecret))

	adminOnly := middleware.RequireRole(models.RoleAdmin)
	staffUp := middleware.RequireRole(models.RoleAdmin, models.RoleStaff)
	anyRole := middleware.RequireRole(models.RoleAdmin, models.RoleStaff, models.RoleStudent)

	deps.Users.Register(protected.Group("/users", adminOnly))
	deps.Academics.Register(protected.Group("/academics", adminOnly))

	deps.Attendance.Register(protected.Group("/attendance", staffUp))
	deps.Notifications.Register(protected.Group("/notifications", staffUp))

	deps.Leaves.RegisterStudent(protected.Group("/leaves/students", anyRole), staffUp)
	deps.Leaves.RegisterStaff(protected.Group("/leaves/staff", staffUp), adminOnly)
	deps.Feedback.RegisterStudent(protected.Group("/feedback/students", anyRole), staffUp)
	deps.Feedback.RegisterStaff(protected.Group("/feedback/staff", staffUp), adminOnly)

	deps.Results.Register(protected.Group("/results", anyRole), staffUp)
	deps.Dashboard.Register(protected.Group("/dashboard", anyRole))
}
