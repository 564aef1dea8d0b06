package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/service"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

// NotificationHandler sends and lists staff and student notifications.
type NotificationHandler struct {
	service service.NotificationService
	logger  zerolog.Logger
}

func NewNotificationHandler(service service.NotificationService, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger.With().Str("component", "notification_handler").Logger(),
	}
}

// Register binds the notification routes.
func (h *NotificationHandler) Register(router fiber.Router) {
	router.Post("/staff", h.notifyStaff)
	router.Post("/students", h.notifyStudent)
	router.Get("/staff/:staffID", h.listStaff)
	router.Get("/students/:studentID", h.listStudent)
}

func (h *NotificationHandler) notifyStaff(c *fiber.Ctx) error {
	var payload dto.StaffNotificationRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	notification, err := h.service.NotifyStaff(requestContext(c), payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "notification sent", notification)
}

func (h *NotificationHandler) notifyStudent(c *fiber.Ctx) error {
	var payload dto.StudentNotificationRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	notification, err := h.service.NotifyStudent(requestContext(c), payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "notification sent", notification)
}

func (h *NotificationHandler) listStaff(c *fiber.Ctx) error {
	staffID, err := parseIDParam(c, "staffID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	notifications, err := h.service.ListStaff(requestContext(c), staffID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "notifications", notifications)
}

func (h *NotificationHandler) listStudent(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	notifications, err := h.service.ListStudent(requestContext(c), studentID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "notifications", notifications)
}

func (h *NotificationHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotificationTargetNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "notification target not found")
	case errors.Is(err, service.ErrMissingPhone):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrEmptyMessage):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error().Err(err).Msg("notification dispatch failed")
		return utils.SendError(c, fiber.StatusBadGateway, "notification could not be delivered")
	}
}
