package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

var (
	// ErrLeaveNotFound indicates the leave request does not exist.
	ErrLeaveNotFound = errors.New("leave request not found")
	// ErrProfileNotFound indicates the acting user has no matching role profile.
	ErrProfileNotFound = errors.New("role profile not found")
)

// LeaveService manages leave requests for students and staff.
type LeaveService interface {
	SubmitStudent(ctx context.Context, userID uint, payload dto.LeaveCreateRequest) (dto.LeaveResponse, error)
	SubmitStaff(ctx context.Context, userID uint, payload dto.LeaveCreateRequest) (dto.LeaveResponse, error)
	ListStudent(ctx context.Context, studentID *uint) ([]dto.LeaveResponse, error)
	ListStaff(ctx context.Context, staffID *uint) ([]dto.LeaveResponse, error)
	ListOwnStudent(ctx context.Context, userID uint) ([]dto.LeaveResponse, error)
	ListOwnStaff(ctx context.Context, userID uint) ([]dto.LeaveResponse, error)
	ReviewStudent(ctx context.Context, id uint, payload dto.LeaveReviewRequest) (dto.LeaveResponse, error)
	ReviewStaff(ctx context.Context, id uint, payload dto.LeaveReviewRequest) (dto.LeaveResponse, error)
}

type leaveService struct {
	repo      repository.LeaveRepository
	users     repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewLeaveService constructs a leave service.
func NewLeaveService(repo repository.LeaveRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) LeaveService {
	return &leaveService{
		repo:      repo,
		users:     users,
		validator: validate,
		logger:    logger.With().Str("component", "leave_service").Logger(),
	}
}

// SubmitStudent files a leave request for the student owning the user account.
func (s *leaveService) SubmitStudent(ctx context.Context, userID uint, payload dto.LeaveCreateRequest) (dto.LeaveResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LeaveResponse{}, err
	}

	profile, err := s.users.StudentProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LeaveResponse{}, ErrProfileNotFound
		}
		return dto.LeaveResponse{}, err
	}

	request := models.StudentLeaveRequest{
		StudentID: profile.ID,
		Date:      payload.Date,
		Message:   payload.Message,
		Status:    models.LeaveStatusPending,
	}
	if err := s.repo.CreateStudent(ctx, &request); err != nil {
		return dto.LeaveResponse{}, err
	}
	return dto.NewStudentLeaveResponse(request), nil
}

// SubmitStaff files a leave request for the staff member owning the user account.
func (s *leaveService) SubmitStaff(ctx context.Context, userID uint, payload dto.LeaveCreateRequest) (dto.LeaveResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LeaveResponse{}, err
	}

	profile, err := s.users.StaffProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LeaveResponse{}, ErrProfileNotFound
		}
		return dto.LeaveResponse{}, err
	}

	request := models.StaffLeaveRequest{
		StaffID: profile.ID,
		Date:    payload.Date,
		Message: payload.Message,
		Status:  models.LeaveStatusPending,
	}
	if err := s.repo.CreateStaff(ctx, &request); err != nil {
		return dto.LeaveResponse{}, err
	}
	return dto.NewStaffLeaveResponse(request), nil
}

func (s *leaveService) ListStudent(ctx context.Context, studentID *uint) ([]dto.LeaveResponse, error) {
	requests, err := s.repo.ListStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, dto.NewStudentLeaveResponse(request))
	}
	return responses, nil
}

func (s *leaveService) ListStaff(ctx context.Context, staffID *uint) ([]dto.LeaveResponse, error) {
	requests, err := s.repo.ListStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, dto.NewStaffLeaveResponse(request))
	}
	return responses, nil
}

// ListOwnStudent lists the leave requests of the student owning the user account.
func (s *leaveService) ListOwnStudent(ctx context.Context, userID uint) ([]dto.LeaveResponse, error) {
	profile, err := s.users.StudentProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.ListStudent(ctx, &profile.ID)
}

// ListOwnStaff lists the leave requests of the staff member owning the user account.
func (s *leaveService) ListOwnStaff(ctx context.Context, userID uint) ([]dto.LeaveResponse, error) {
	profile, err := s.users.StaffProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.ListStaff(ctx, &profile.ID)
}

func (s *leaveService) ReviewStudent(ctx context.Context, id uint, payload dto.LeaveReviewRequest) (dto.LeaveResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LeaveResponse{}, err
	}

	request, err := s.repo.SetStudentStatus(ctx, id, decisionStatus(payload.Decision))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LeaveResponse{}, ErrLeaveNotFound
		}
		return dto.LeaveResponse{}, err
	}
	return dto.NewStudentLeaveResponse(request), nil
}

func (s *leaveService) ReviewStaff(ctx context.Context, id uint, payload dto.LeaveReviewRequest) (dto.LeaveResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LeaveResponse{}, err
	}

	request, err := s.repo.SetStaffStatus(ctx, id, decisionStatus(payload.Decision))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LeaveResponse{}, ErrLeaveNotFound
		}
		return dto.LeaveResponse{}, err
	}
	return dto.NewStaffLeaveResponse(request), nil
}

func decisionStatus(decision string) int16 {
	if decision == "approved" {
		return models.LeaveStatusApproved
	}
	return models.LeaveStatusRejected
}
