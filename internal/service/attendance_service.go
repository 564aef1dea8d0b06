package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/observability"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

var (
	// ErrAttendanceNotFound indicates the attendance event does not exist.
	ErrAttendanceNotFound = errors.New("attendance not found")
	// ErrSubjectNotFound indicates the subject the attendance targets does not exist.
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrReportNotFound indicates the attendance report does not exist.
	ErrReportNotFound = errors.New("attendance report not found")
)

// AttendanceService records and corrects attendance.
type AttendanceService interface {
	Take(ctx context.Context, payload dto.AttendanceCreateRequest) (dto.AttendanceResponse, []dto.AttendanceReportResponse, error)
	ListBySubject(ctx context.Context, subjectID uint, sessionID *uint) ([]dto.AttendanceResponse, error)
	Reports(ctx context.Context, attendanceID uint) ([]dto.AttendanceReportResponse, error)
	StudentReports(ctx context.Context, studentID uint) ([]dto.AttendanceReportResponse, error)
	UpdateReport(ctx context.Context, reportID uint, payload dto.AttendanceReportUpdateRequest) (dto.AttendanceReportResponse, error)
}

type attendanceService struct {
	repo      repository.AttendanceRepository
	academics repository.AcademicRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAttendanceService constructs an attendance service.
func NewAttendanceService(repo repository.AttendanceRepository, academics repository.AcademicRepository, validate *validator.Validate, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		repo:      repo,
		academics: academics,
		validator: validate,
		logger:    logger.With().Str("component", "attendance_service").Logger(),
	}
}

// Take creates one attendance event plus a report per student, atomically.
func (s *attendanceService) Take(ctx context.Context, payload dto.AttendanceCreateRequest) (dto.AttendanceResponse, []dto.AttendanceReportResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AttendanceResponse{}, nil, err
	}

	if _, err := s.academics.GetSubject(ctx, payload.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AttendanceResponse{}, nil, ErrSubjectNotFound
		}
		return dto.AttendanceResponse{}, nil, err
	}

	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return dto.AttendanceResponse{}, nil, err
	}

	attendance := models.Attendance{
		SubjectID: payload.SubjectID,
		SessionID: payload.SessionID,
		Date:      datatypes.Date(date),
	}

	reports := make([]models.AttendanceReport, 0, len(payload.Entries))
	for _, entry := range payload.Entries {
		reports = append(reports, models.AttendanceReport{
			StudentID: entry.StudentID,
			Present:   entry.Present,
		})
	}

	if err := s.repo.CreateWithReports(ctx, &attendance, reports); err != nil {
		return dto.AttendanceResponse{}, nil, err
	}

	observability.AttendanceRecorded().Inc()
	s.logger.Info().
		Uint("attendance_id", attendance.ID).
		Uint("subject_id", attendance.SubjectID).
		Int("students", len(reports)).
		Msg("attendance recorded")

	return dto.NewAttendanceResponse(attendance), dto.NewAttendanceReportResponseSlice(reports), nil
}

func (s *attendanceService) ListBySubject(ctx context.Context, subjectID uint, sessionID *uint) ([]dto.AttendanceResponse, error) {
	attendances, err := s.repo.ListBySubject(ctx, subjectID, sessionID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AttendanceResponse, 0, len(attendances))
	for _, attendance := range attendances {
		responses = append(responses, dto.NewAttendanceResponse(attendance))
	}
	return responses, nil
}

func (s *attendanceService) Reports(ctx context.Context, attendanceID uint) ([]dto.AttendanceReportResponse, error) {
	if _, err := s.repo.GetByID(ctx, attendanceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}

	reports, err := s.repo.ListReports(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	return dto.NewAttendanceReportResponseSlice(reports), nil
}

func (s *attendanceService) StudentReports(ctx context.Context, studentID uint) ([]dto.AttendanceReportResponse, error) {
	reports, err := s.repo.ListReportsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.NewAttendanceReportResponseSlice(reports), nil
}

func (s *attendanceService) UpdateReport(ctx context.Context, reportID uint, payload dto.AttendanceReportUpdateRequest) (dto.AttendanceReportResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AttendanceReportResponse{}, err
	}

	report, err := s.repo.UpdateReport(ctx, reportID, *payload.Present)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AttendanceReportResponse{}, ErrReportNotFound
		}
		return dto.AttendanceReportResponse{}, err
	}
	return dto.NewAttendanceReportResponse(report), nil
}
