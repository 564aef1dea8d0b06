package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/service"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

// ResultHandler manages exam result entry and retrieval.
type ResultHandler struct {
	service service.ResultService
	logger  zerolog.Logger
}

func NewResultHandler(service service.ResultService, logger zerolog.Logger) *ResultHandler {
	return &ResultHandler{
		service: service,
		logger:  logger.With().Str("component", "result_handler").Logger(),
	}
}

// Register binds the result routes. Score entry and cross-student listings go
// through the extra guard.
func (h *ResultHandler) Register(router fiber.Router, manage fiber.Handler) {
	router.Post("/", manage, h.upsert)
	router.Get("/mine", h.listOwn)
	router.Get("/student/:studentID", manage, h.listByStudent)
	router.Get("/subject/:subjectID", manage, h.listBySubject)
}

func (h *ResultHandler) upsert(c *fiber.Ctx) error {
	var payload dto.ResultUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Upsert(requestContext(c), payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "result saved", result)
}

func (h *ResultHandler) listOwn(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	results, err := h.service.ListForUser(requestContext(c), userID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "results", results)
}

func (h *ResultHandler) listByStudent(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	results, err := h.service.ListByStudent(requestContext(c), studentID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "results", results)
}

func (h *ResultHandler) listBySubject(c *fiber.Ctx) error {
	subjectID, err := parseIDParam(c, "subjectID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	results, err := h.service.ListBySubject(requestContext(c), subjectID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "results", results)
}

func (h *ResultHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrResultNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "result not found")
	case errors.Is(err, service.ErrProfileNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "role profile not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error().Err(err).Msg("result operation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal error")
	}
}
