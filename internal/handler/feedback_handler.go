package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/service"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

// FeedbackHandler manages staff and student feedback threads.
type FeedbackHandler struct {
	service service.FeedbackService
	logger  zerolog.Logger
}

func NewFeedbackHandler(service service.FeedbackService, logger zerolog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		logger:  logger.With().Str("component", "feedback_handler").Logger(),
	}
}

// RegisterStudent binds the student feedback routes. Listing the full queue
// and replying go through the extra guard.
func (h *FeedbackHandler) RegisterStudent(router fiber.Router, reply fiber.Handler) {
	router.Post("/", h.submitStudent)
	router.Get("/mine", h.listOwnStudent)
	router.Get("/", reply, h.listStudent)
	router.Put("/:id/reply", reply, h.replyStudent)
}

// RegisterStaff binds the staff feedback routes. Replying goes through the
// extra guard.
func (h *FeedbackHandler) RegisterStaff(router fiber.Router, reply fiber.Handler) {
	router.Post("/", h.submitStaff)
	router.Get("/mine", h.listOwnStaff)
	router.Get("/", reply, h.listStaff)
	router.Put("/:id/reply", reply, h.replyStaff)
}

func (h *FeedbackHandler) submitStudent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload dto.FeedbackCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	feedback, err := h.service.SubmitStudent(requestContext(c), userID, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "feedback submitted", feedback)
}

func (h *FeedbackHandler) submitStaff(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload dto.FeedbackCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	feedback, err := h.service.SubmitStaff(requestContext(c), userID, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "feedback submitted", feedback)
}

func (h *FeedbackHandler) listStudent(c *fiber.Ctx) error {
	studentID, err := queryUintPtr(c, "student_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	feedbacks, err := h.service.ListStudent(requestContext(c), studentID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "feedback", feedbacks)
}

func (h *FeedbackHandler) listStaff(c *fiber.Ctx) error {
	staffID, err := queryUintPtr(c, "staff_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	feedbacks, err := h.service.ListStaff(requestContext(c), staffID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "feedback", feedbacks)
}

func (h *FeedbackHandler) listOwnStudent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	feedbacks, err := h.service.ListOwnStudent(requestContext(c), userID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "feedback", feedbacks)
}

func (h *FeedbackHandler) listOwnStaff(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	feedbacks, err := h.service.ListOwnStaff(requestContext(c), userID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "feedback", feedbacks)
}

func (h *FeedbackHandler) replyStudent(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.FeedbackReplyRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	feedback, err := h.service.ReplyStudent(requestContext(c), id, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "feedback replied", feedback)
}

func (h *FeedbackHandler) replyStaff(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.FeedbackReplyRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	feedback, err := h.service.ReplyStaff(requestContext(c), id, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "feedback replied", feedback)
}

func (h *FeedbackHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrFeedbackNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "feedback not found")
	case errors.Is(err, service.ErrProfileNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "role profile not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error().Err(err).Msg("feedback operation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal error")
	}
}
