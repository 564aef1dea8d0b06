package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/service"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

// AcademicHandler manages sessions, departments, courses and subjects.
type AcademicHandler struct {
	service service.AcademicService
	logger  zerolog.Logger
}

func NewAcademicHandler(service service.AcademicService, logger zerolog.Logger) *AcademicHandler {
	return &AcademicHandler{
		service: service,
		logger:  logger.With().Str("component", "academic_handler").Logger(),
	}
}

// Register binds the academic structure routes.
func (h *AcademicHandler) Register(router fiber.Router) {
	router.Post("/sessions", h.createSession)
	router.Get("/sessions", h.listSessions)
	router.Delete("/sessions/:id", h.deleteSession)

	router.Post("/departments", h.createDepartment)
	router.Get("/departments", h.listDepartments)
	router.Put("/departments/:id", h.updateDepartment)
	router.Delete("/departments/:id", h.deleteDepartment)

	router.Post("/courses", h.createCourse)
	router.Get("/courses", h.listCourses)
	router.Put("/courses/:id", h.updateCourse)
	router.Delete("/courses/:id", h.deleteCourse)

	router.Post("/subjects", h.createSubject)
	router.Get("/subjects", h.listSubjects)
	router.Put("/subjects/:id", h.updateSubject)
	router.Delete("/subjects/:id", h.deleteSubject)
}

func (h *AcademicHandler) createSession(c *fiber.Ctx) error {
	var payload dto.SessionCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := h.service.CreateSession(requestContext(c), payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "session created", session)
}

func (h *AcademicHandler) listSessions(c *fiber.Ctx) error {
	sessions, err := h.service.ListSessions(requestContext(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "sessions", sessions)
}

func (h *AcademicHandler) deleteSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.service.DeleteSession(requestContext(c), id); err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "session deleted", nil)
}

func (h *AcademicHandler) createDepartment(c *fiber.Ctx) error {
	var payload dto.DepartmentRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	department, err := h.service.CreateDepartment(requestContext(c), payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "department created", department)
}

func (h *AcademicHandler) listDepartments(c *fiber.Ctx) error {
	departments, err := h.service.ListDepartments(requestContext(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "departments", departments)
}

func (h *AcademicHandler) updateDepartment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.DepartmentRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	department, err := h.service.UpdateDepartment(requestContext(c), id, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "department updated", department)
}

func (h *AcademicHandler) deleteDepartment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.service.DeleteDepartment(requestContext(c), id); err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "department deleted", nil)
}

func (h *AcademicHandler) createCourse(c *fiber.Ctx) error {
	var payload dto.CourseRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	course, err := h.service.CreateCourse(requestContext(c), payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "course created", course)
}

func (h *AcademicHandler) listCourses(c *fiber.Ctx) error {
	departmentID, err := queryUintPtr(c, "department_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	courses, err := h.service.ListCourses(requestContext(c), departmentID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "courses", courses)
}

func (h *AcademicHandler) updateCourse(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.CourseRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	course, err := h.service.UpdateCourse(requestContext(c), id, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "course updated", course)
}

func (h *AcademicHandler) deleteCourse(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.service.DeleteCourse(requestContext(c), id); err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "course deleted", nil)
}

func (h *AcademicHandler) createSubject(c *fiber.Ctx) error {
	var payload dto.SubjectRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	subject, err := h.service.CreateSubject(requestContext(c), payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendCreated(c, "subject created", subject)
}

func (h *AcademicHandler) listSubjects(c *fiber.Ctx) error {
	courseID, err := queryUintPtr(c, "course_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	staffID, err := queryUintPtr(c, "staff_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	subjects, err := h.service.ListSubjects(requestContext(c), courseID, staffID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "subjects", subjects)
}

func (h *AcademicHandler) updateSubject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.SubjectRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	subject, err := h.service.UpdateSubject(requestContext(c), id, payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "subject updated", subject)
}

func (h *AcademicHandler) deleteSubject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.service.DeleteSubject(requestContext(c), id); err != nil {
		return h.mapError(c, err)
	}
	return utils.SendSuccess(c, "subject deleted", nil)
}

func (h *AcademicHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrAcademicNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "record not found")
	case errors.Is(err, service.ErrSessionDates):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error().Err(err).Msg("academic operation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal error")
	}
}
