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

// ErrResultNotFound indicates no result exists for the student and subject.
var ErrResultNotFound = errors.New("result not found")

// ResultService records and serves exam results.
type ResultService interface {
	Upsert(ctx context.Context, payload dto.ResultUpsertRequest) (dto.ResultResponse, error)
	ListByStudent(ctx context.Context, studentID uint) ([]dto.ResultResponse, error)
	ListForUser(ctx context.Context, userID uint) ([]dto.ResultResponse, error)
	ListBySubject(ctx context.Context, subjectID uint) ([]dto.ResultResponse, error)
}

type resultService struct {
	repo      repository.ResultRepository
	users     repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewResultService constructs a result service.
func NewResultService(repo repository.ResultRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) ResultService {
	return &resultService{
		repo:      repo,
		users:     users,
		validator: validate,
		logger:    logger.With().Str("component", "result_service").Logger(),
	}
}

// Upsert records the scores, replacing any previous row for the pair.
func (s *resultService) Upsert(ctx context.Context, payload dto.ResultUpsertRequest) (dto.ResultResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ResultResponse{}, err
	}

	result := models.StudentResult{
		StudentID: payload.StudentID,
		SubjectID: payload.SubjectID,
		TestScore: payload.TestScore,
		ExamScore: payload.ExamScore,
	}
	if err := s.repo.Upsert(ctx, &result); err != nil {
		return dto.ResultResponse{}, err
	}

	s.logger.Info().
		Uint("student_id", result.StudentID).
		Uint("subject_id", result.SubjectID).
		Msg("result recorded")

	return dto.NewResultResponse(result), nil
}

func (s *resultService) ListByStudent(ctx context.Context, studentID uint) ([]dto.ResultResponse, error) {
	results, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.NewResultResponseSlice(results), nil
}

// ListForUser resolves the student profile owned by the user and lists its results.
func (s *resultService) ListForUser(ctx context.Context, userID uint) ([]dto.ResultResponse, error) {
	profile, err := s.users.StudentProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.ListByStudent(ctx, profile.ID)
}

func (s *resultService) ListBySubject(ctx context.Context, subjectID uint) ([]dto.ResultResponse, error) {
	results, err := s.repo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return dto.NewResultResponseSlice(results), nil
}
