package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/service"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

// AttendanceHandler manages attendance sheets and per-student reports.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register binds the attendance routes.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Post("/", h.take)
	router.Get("/subject/:subjectID", h.listBySubject)
	router.Get("/:id/reports", h.reports)
	router.Get("/student/:studentID/reports", h.studentReports)
	router.Put("/reports/:id", h.updateReport)
}

func (h *AttendanceHandler) take(c *fiber.Ctx) error {
	var payload dto.AttendanceCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	attendance, reports, err := h.service.Take(requestContext(c), payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "attendance recorded", fiber.Map{
		"attendance": attendance,
		"reports":    reports,
	})
}

func (h *AttendanceHandler) listBySubject(c *fiber.Ctx) error {
	subjectID, err := parseIDParam(c, "subjectID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	sessionID, err := queryUintPtr(c, "session_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	sheets, err := h.service.ListBySubject(requestContext(c), subjectID, sessionID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "attendance", sheets)
}

func (h *AttendanceHandler) reports(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	reports, err := h.service.Reports(requestContext(c), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "reports", reports)
}

func (h *AttendanceHandler) studentReports(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	reports, err := h.service.StudentReports(requestContext(c), studentID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "reports", reports)
}

func (h *AttendanceHandler) updateReport(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.AttendanceReportUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	report, err := h.service.UpdateReport(requestContext(c), id, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "report updated", report)
}

func (h *AttendanceHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "subject not found")
	case errors.Is(err, service.ErrAttendanceNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "attendance not found")
	case errors.Is(err, service.ErrReportNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "attendance report not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error().Err(err).Msg("attendance operation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal error")
	}
}
