package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/service"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

// LeaveHandler manages staff and student leave requests.
type LeaveHandler struct {
	service service.LeaveService
	logger  zerolog.Logger
}

func NewLeaveHandler(service service.LeaveService, logger zerolog.Logger) *LeaveHandler {
	return &LeaveHandler{
		service: service,
		logger:  logger.With().Str("component", "leave_handler").Logger(),
	}
}

// RegisterStudent binds the student leave routes. Listing and reviewing other
// students' requests goes through the extra guard.
func (h *LeaveHandler) RegisterStudent(router fiber.Router, review fiber.Handler) {
	router.Post("/", h.submitStudent)
	router.Get("/mine", h.listOwnStudent)
	router.Get("/", review, h.listStudent)
	router.Put("/:id/review", review, h.reviewStudent)
}

// RegisterStaff binds the staff leave routes. Reviewing goes through the
// extra guard so staff cannot approve their own requests.
func (h *LeaveHandler) RegisterStaff(router fiber.Router, review fiber.Handler) {
	router.Post("/", h.submitStaff)
	router.Get("/mine", h.listOwnStaff)
	router.Get("/", review, h.listStaff)
	router.Put("/:id/review", review, h.reviewStaff)
}

func (h *LeaveHandler) submitStudent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload dto.LeaveCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	leave, err := h.service.SubmitStudent(requestContext(c), userID, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "leave request submitted", leave)
}

func (h *LeaveHandler) submitStaff(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload dto.LeaveCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	leave, err := h.service.SubmitStaff(requestContext(c), userID, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "leave request submitted", leave)
}

func (h *LeaveHandler) listStudent(c *fiber.Ctx) error {
	studentID, err := queryUintPtr(c, "student_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	leaves, err := h.service.ListStudent(requestContext(c), studentID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "leave requests", leaves)
}

func (h *LeaveHandler) listStaff(c *fiber.Ctx) error {
	staffID, err := queryUintPtr(c, "staff_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	leaves, err := h.service.ListStaff(requestContext(c), staffID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "leave requests", leaves)
}

func (h *LeaveHandler) listOwnStudent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	leaves, err := h.service.ListOwnStudent(requestContext(c), userID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "leave requests", leaves)
}

func (h *LeaveHandler) listOwnStaff(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	leaves, err := h.service.ListOwnStaff(requestContext(c), userID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "leave requests", leaves)
}

func (h *LeaveHandler) reviewStudent(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.LeaveReviewRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	leave, err := h.service.ReviewStudent(requestContext(c), id, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "leave request reviewed", leave)
}

func (h *LeaveHandler) reviewStaff(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.LeaveReviewRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	leave, err := h.service.ReviewStaff(requestContext(c), id, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "leave request reviewed", leave)
}

func (h *LeaveHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrLeaveNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "leave request not found")
	case errors.Is(err, service.ErrProfileNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "role profile not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error().Err(err).Msg("leave operation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal error")
	}
}
