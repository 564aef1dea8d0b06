package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

var (
	// ErrAcademicNotFound indicates the referenced academic entity does not exist.
	ErrAcademicNotFound = errors.New("academic record not found")
	// ErrSessionDates indicates the session interval is inverted.
	ErrSessionDates = errors.New("session end date precedes start date")
)

// AcademicService manages sessions, departments, courses and subjects.
type AcademicService interface {
	CreateSession(ctx context.Context, payload dto.SessionCreateRequest) (dto.SessionResponse, error)
	ListSessions(ctx context.Context) ([]dto.SessionResponse, error)
	DeleteSession(ctx context.Context, id uint) error

	CreateDepartment(ctx context.Context, payload dto.DepartmentRequest) (dto.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id uint, payload dto.DepartmentRequest) (dto.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id uint) error

	CreateCourse(ctx context.Context, payload dto.CourseRequest) (dto.CourseResponse, error)
	ListCourses(ctx context.Context, departmentID *uint) ([]dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, id uint, payload dto.CourseRequest) (dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id uint) error

	CreateSubject(ctx context.Context, payload dto.SubjectRequest) (dto.SubjectResponse, error)
	ListSubjects(ctx context.Context, courseID, staffID *uint) ([]dto.SubjectResponse, error)
	UpdateSubject(ctx context.Context, id uint, payload dto.SubjectRequest) (dto.SubjectResponse, error)
	DeleteSubject(ctx context.Context, id uint) error
}

type academicService struct {
	repo      repository.AcademicRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAcademicService constructs an academic service.
func NewAcademicService(repo repository.AcademicRepository, validate *validator.Validate, logger zerolog.Logger) AcademicService {
	return &academicService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "academic_service").Logger(),
	}
}

func (s *academicService) CreateSession(ctx context.Context, payload dto.SessionCreateRequest) (dto.SessionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SessionResponse{}, err
	}

	start, err := time.Parse("2006-01-02", payload.StartDate)
	if err != nil {
		return dto.SessionResponse{}, err
	}
	end, err := time.Parse("2006-01-02", payload.EndDate)
	if err != nil {
		return dto.SessionResponse{}, err
	}
	if end.Before(start) {
		return dto.SessionResponse{}, ErrSessionDates
	}

	session := models.Session{StartDate: datatypes.Date(start), EndDate: datatypes.Date(end)}
	if err := s.repo.CreateSession(ctx, &session); err != nil {
		return dto.SessionResponse{}, err
	}
	return dto.NewSessionResponse(session), nil
}

func (s *academicService) ListSessions(ctx context.Context) ([]dto.SessionResponse, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, dto.NewSessionResponse(session))
	}
	return responses, nil
}

func (s *academicService) DeleteSession(ctx context.Context, id uint) error {
	return s.mapNotFound(s.repo.DeleteSession(ctx, id))
}

func (s *academicService) CreateDepartment(ctx context.Context, payload dto.DepartmentRequest) (dto.DepartmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.DepartmentResponse{}, err
	}

	department := models.Department{Name: strings.TrimSpace(payload.Name)}
	if err := s.repo.CreateDepartment(ctx, &department); err != nil {
		return dto.DepartmentResponse{}, err
	}
	return dto.NewDepartmentResponse(department), nil
}

func (s *academicService) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		responses = append(responses, dto.NewDepartmentResponse(department))
	}
	return responses, nil
}

func (s *academicService) UpdateDepartment(ctx context.Context, id uint, payload dto.DepartmentRequest) (dto.DepartmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.DepartmentResponse{}, err
	}

	department, err := s.repo.GetDepartment(ctx, id)
	if err != nil {
		return dto.DepartmentResponse{}, s.mapNotFound(err)
	}

	department.Name = strings.TrimSpace(payload.Name)
	if err := s.repo.UpdateDepartment(ctx, &department); err != nil {
		return dto.DepartmentResponse{}, err
	}
	return dto.NewDepartmentResponse(department), nil
}

func (s *academicService) DeleteDepartment(ctx context.Context, id uint) error {
	return s.mapNotFound(s.repo.DeleteDepartment(ctx, id))
}

func (s *academicService) CreateCourse(ctx context.Context, payload dto.CourseRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	course := models.Course{Name: strings.TrimSpace(payload.Name), DepartmentID: payload.DepartmentID}
	if err := s.repo.CreateCourse(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}
	return dto.NewCourseResponse(course), nil
}

func (s *academicService) ListCourses(ctx context.Context, departmentID *uint) ([]dto.CourseResponse, error) {
	courses, err := s.repo.ListCourses(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.NewCourseResponse(course))
	}
	return responses, nil
}

func (s *academicService) UpdateCourse(ctx context.Context, id uint, payload dto.CourseRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	course, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return dto.CourseResponse{}, s.mapNotFound(err)
	}

	course.Name = strings.TrimSpace(payload.Name)
	course.DepartmentID = payload.DepartmentID
	if err := s.repo.UpdateCourse(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}
	return dto.NewCourseResponse(course), nil
}

func (s *academicService) DeleteCourse(ctx context.Context, id uint) error {
	return s.mapNotFound(s.repo.DeleteCourse(ctx, id))
}

func (s *academicService) CreateSubject(ctx context.Context, payload dto.SubjectRequest) (dto.SubjectResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubjectResponse{}, err
	}

	subject := models.Subject{
		Name:         strings.TrimSpace(payload.Name),
		StaffID:      payload.StaffID,
		DepartmentID: payload.DepartmentID,
		CourseID:     payload.CourseID,
		SessionID:    payload.SessionID,
	}
	if err := s.repo.CreateSubject(ctx, &subject); err != nil {
		return dto.SubjectResponse{}, err
	}
	return dto.NewSubjectResponse(subject), nil
}

func (s *academicService) ListSubjects(ctx context.Context, courseID, staffID *uint) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.ListSubjects(ctx, courseID, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, dto.NewSubjectResponse(subject))
	}
	return responses, nil
}

func (s *academicService) UpdateSubject(ctx context.Context, id uint, payload dto.SubjectRequest) (dto.SubjectResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubjectResponse{}, err
	}

	subject, err := s.repo.GetSubject(ctx, id)
	if err != nil {
		return dto.SubjectResponse{}, s.mapNotFound(err)
	}

	subject.Name = strings.TrimSpace(payload.Name)
	subject.StaffID = payload.StaffID
	subject.DepartmentID = payload.DepartmentID
	subject.CourseID = payload.CourseID
	subject.SessionID = payload.SessionID
	if err := s.repo.UpdateSubject(ctx, &subject); err != nil {
		return dto.SubjectResponse{}, err
	}
	return dto.NewSubjectResponse(subject), nil
}

func (s *academicService) DeleteSubject(ctx context.Context, id uint) error {
	return s.mapNotFound(s.repo.DeleteSubject(ctx, id))
}

func (s *academicService) mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAcademicNotFound
	}
	return err
}
