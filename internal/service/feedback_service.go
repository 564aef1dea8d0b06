package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

// ErrFeedbackNotFound indicates the feedback entry does not exist.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackService manages feedback messages and replies.
type FeedbackService interface {
	SubmitStudent(ctx context.Context, userID uint, payload dto.FeedbackCreateRequest) (dto.FeedbackResponse, error)
	SubmitStaff(ctx context.Context, userID uint, payload dto.FeedbackCreateRequest) (dto.FeedbackResponse, error)
	ListStudent(ctx context.Context, studentID *uint) ([]dto.FeedbackResponse, error)
	ListStaff(ctx context.Context, staffID *uint) ([]dto.FeedbackResponse, error)
	ListOwnStudent(ctx context.Context, userID uint) ([]dto.FeedbackResponse, error)
	ListOwnStaff(ctx context.Context, userID uint) ([]dto.FeedbackResponse, error)
	ReplyStudent(ctx context.Context, id uint, payload dto.FeedbackReplyRequest) (dto.FeedbackResponse, error)
	ReplyStaff(ctx context.Context, id uint, payload dto.FeedbackReplyRequest) (dto.FeedbackResponse, error)
}

type feedbackService struct {
	repo      repository.FeedbackRepository
	users     repository.UserRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewFeedbackService constructs a feedback service.
func NewFeedbackService(repo repository.FeedbackRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) FeedbackService {
	return &feedbackService{
		repo:      repo,
		users:     users,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "feedback_service").Logger(),
	}
}

func (s *feedbackService) SubmitStudent(ctx context.Context, userID uint, payload dto.FeedbackCreateRequest) (dto.FeedbackResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.FeedbackResponse{}, err
	}

	profile, err := s.users.StudentProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FeedbackResponse{}, ErrProfileNotFound
		}
		return dto.FeedbackResponse{}, err
	}

	feedback := models.StudentFeedback{
		StudentID: profile.ID,
		Message:   strings.TrimSpace(s.sanitizer.Sanitize(payload.Message)),
	}
	if err := s.repo.CreateStudent(ctx, &feedback); err != nil {
		return dto.FeedbackResponse{}, err
	}
	return dto.NewStudentFeedbackResponse(feedback), nil
}

func (s *feedbackService) SubmitStaff(ctx context.Context, userID uint, payload dto.FeedbackCreateRequest) (dto.FeedbackResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.FeedbackResponse{}, err
	}

	profile, err := s.users.StaffProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FeedbackResponse{}, ErrProfileNotFound
		}
		return dto.FeedbackResponse{}, err
	}

	feedback := models.StaffFeedback{
		StaffID: profile.ID,
		Message: strings.TrimSpace(s.sanitizer.Sanitize(payload.Message)),
	}
	if err := s.repo.CreateStaff(ctx, &feedback); err != nil {
		return dto.FeedbackResponse{}, err
	}
	return dto.NewStaffFeedbackResponse(feedback), nil
}

func (s *feedbackService) ListStudent(ctx context.Context, studentID *uint) ([]dto.FeedbackResponse, error) {
	feedback, err := s.repo.ListStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FeedbackResponse, 0, len(feedback))
	for _, entry := range feedback {
		responses = append(responses, dto.NewStudentFeedbackResponse(entry))
	}
	return responses, nil
}

func (s *feedbackService) ListStaff(ctx context.Context, staffID *uint) ([]dto.FeedbackResponse, error) {
	feedback, err := s.repo.ListStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FeedbackResponse, 0, len(feedback))
	for _, entry := range feedback {
		responses = append(responses, dto.NewStaffFeedbackResponse(entry))
	}
	return responses, nil
}

// ListOwnStudent lists the feedback of the student owning the user account.
func (s *feedbackService) ListOwnStudent(ctx context.Context, userID uint) ([]dto.FeedbackResponse, error) {
	profile, err := s.users.StudentProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.ListStudent(ctx, &profile.ID)
}

// ListOwnStaff lists the feedback of the staff member owning the user account.
func (s *feedbackService) ListOwnStaff(ctx context.Context, userID uint) ([]dto.FeedbackResponse, error) {
	profile, err := s.users.StaffProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.ListStaff(ctx, &profile.ID)
}

func (s *feedbackService) ReplyStudent(ctx context.Context, id uint, payload dto.FeedbackReplyRequest) (dto.FeedbackResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.FeedbackResponse{}, err
	}

	feedback, err := s.repo.ReplyStudent(ctx, id, strings.TrimSpace(s.sanitizer.Sanitize(payload.Reply)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FeedbackResponse{}, ErrFeedbackNotFound
		}
		return dto.FeedbackResponse{}, err
	}
	return dto.NewStudentFeedbackResponse(feedback), nil
}

func (s *feedbackService) ReplyStaff(ctx context.Context, id uint, payload dto.FeedbackReplyRequest) (dto.FeedbackResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.FeedbackResponse{}, err
	}

	feedback, err := s.repo.ReplyStaff(ctx, id, strings.TrimSpace(s.sanitizer.Sanitize(payload.Reply)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FeedbackResponse{}, ErrFeedbackNotFound
		}
		return dto.FeedbackResponse{}, err
	}
	return dto.NewStaffFeedbackResponse(feedback), nil
}
