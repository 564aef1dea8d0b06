package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/service"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

// DashboardHandler serves cached aggregate views.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register binds the dashboard routes.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/attendance/:studentID/:subjectID", h.attendanceSummary)
}

func (h *DashboardHandler) attendanceSummary(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	subjectID, err := parseIDParam(c, "subjectID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	summary, err := h.service.AttendanceSummary(requestContext(c), studentID, subjectID)
	if err != nil {
		h.logger.Error().Err(err).Msg("attendance summary failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal error")
	}
	return utils.SendSuccess(c, "attendance summary", summary)
}
