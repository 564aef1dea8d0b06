package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/config"
	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/observability"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

var (
	// ErrNotificationTargetNotFound indicates the addressed profile does not exist.
	ErrNotificationTargetNotFound = errors.New("notification target not found")
	// ErrMissingPhone indicates the target profile has no phone number on record.
	ErrMissingPhone = errors.New("target profile has no phone number")
	// ErrEmptyMessage indicates nothing was left of the message after sanitization.
	ErrEmptyMessage = errors.New("notification message empty after sanitization")
)

// MessageDispatcher submits text messages to the provider. Implementations
// must be synchronous: a nil return means the provider accepted the message.
type MessageDispatcher interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
	SendWhatsApp(ctx context.Context, to, body string) (string, error)
}

// NotificationService persists notifications and dispatches them to the
// target's phone. Persistence and dispatch succeed or fail together.
type NotificationService interface {
	NotifyStaff(ctx context.Context, payload dto.StaffNotificationRequest) (dto.NotificationResponse, error)
	NotifyStudent(ctx context.Context, payload dto.StudentNotificationRequest) (dto.NotificationResponse, error)
	ListStaff(ctx context.Context, staffID uint) ([]dto.NotificationResponse, error)
	ListStudent(ctx context.Context, studentID uint) ([]dto.NotificationResponse, error)
}

type notificationService struct {
	repo           repository.NotificationRepository
	users          repository.UserRepository
	dispatcher     MessageDispatcher
	staffChannel   string
	studentChannel string
	countryCode    string
	validator      *validator.Validate
	sanitizer      *bluemonday.Policy
	logger         zerolog.Logger
	tracer         trace.Tracer
}

// NewNotificationService constructs a notification service. The channel per
// audience and the country calling code come from configuration.
func NewNotificationService(repo repository.NotificationRepository, users repository.UserRepository, dispatcher MessageDispatcher, cfg config.Config, validate *validator.Validate, logger zerolog.Logger) NotificationService {
	return &notificationService{
		repo:           repo,
		users:          users,
		dispatcher:     dispatcher,
		staffChannel:   cfg.StaffNotifyChannel,
		studentChannel: cfg.StudentNotifyChannel,
		countryCode:    cfg.CountryCallingCode,
		validator:      validate,
		sanitizer:      bluemonday.StrictPolicy(),
		logger:         logger.With().Str("component", "notification_service").Logger(),
		tracer:         otel.Tracer("github.com/campus-hq/college-admin-api/internal/service/notification"),
	}
}

func (s *notificationService) NotifyStaff(ctx context.Context, payload dto.StaffNotificationRequest) (dto.NotificationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.NotificationResponse{}, err
	}

	message, err := s.cleanMessage(payload.Message)
	if err != nil {
		return dto.NotificationResponse{}, err
	}

	profile, err := s.users.StaffProfileByID(ctx, payload.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NotificationResponse{}, ErrNotificationTargetNotFound
		}
		return dto.NotificationResponse{}, err
	}

	destination, err := s.destination(profile.Phone)
	if err != nil {
		return dto.NotificationResponse{}, err
	}

	spanCtx, span := s.tracer.Start(ctx, "notifications.staff", trace.WithAttributes(
		attribute.Int("notification.staff_id", int(payload.StaffID)),
		attribute.String("notification.channel", s.staffChannel),
	))
	defer span.End()

	notification := models.StaffNotification{StaffID: profile.ID, Message: message}

	var sid string
	err = s.repo.CreateStaff(spanCtx, &notification, func(ctx context.Context) error {
		var dispatchErr error
		sid, dispatchErr = s.dispatch(ctx, s.staffChannel, "staff", destination, message)
		return dispatchErr
	})
	if err != nil {
		span.RecordError(err)
		return dto.NotificationResponse{}, err
	}

	response := dto.NewStaffNotificationResponse(notification)
	response.Channel = s.staffChannel
	response.SID = sid
	return response, nil
}

func (s *notificationService) NotifyStudent(ctx context.Context, payload dto.StudentNotificationRequest) (dto.NotificationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.NotificationResponse{}, err
	}

	message, err := s.cleanMessage(payload.Message)
	if err != nil {
		return dto.NotificationResponse{}, err
	}

	profile, err := s.users.StudentProfileByID(ctx, payload.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NotificationResponse{}, ErrNotificationTargetNotFound
		}
		return dto.NotificationResponse{}, err
	}

	destination, err := s.destination(profile.Phone)
	if err != nil {
		return dto.NotificationResponse{}, err
	}

	spanCtx, span := s.tracer.Start(ctx, "notifications.student", trace.WithAttributes(
		attribute.Int("notification.student_id", int(payload.StudentID)),
		attribute.String("notification.channel", s.studentChannel),
	))
	defer span.End()

	notification := models.StudentNotification{StudentID: profile.ID, Message: message}

	var sid string
	err = s.repo.CreateStudent(spanCtx, &notification, func(ctx context.Context) error {
		var dispatchErr error
		sid, dispatchErr = s.dispatch(ctx, s.studentChannel, "student", destination, message)
		return dispatchErr
	})
	if err != nil {
		span.RecordError(err)
		return dto.NotificationResponse{}, err
	}

	response := dto.NewStudentNotificationResponse(notification)
	response.Channel = s.studentChannel
	response.SID = sid
	return response, nil
}

func (s *notificationService) ListStaff(ctx context.Context, staffID uint) ([]dto.NotificationResponse, error) {
	notifications, err := s.repo.ListStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, dto.NewStaffNotificationResponse(notification))
	}
	return responses, nil
}

func (s *notificationService) ListStudent(ctx context.Context, studentID uint) ([]dto.NotificationResponse, error) {
	notifications, err := s.repo.ListStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, dto.NewStudentNotificationResponse(notification))
	}
	return responses, nil
}

// dispatch hands the message to the provider over the configured channel.
func (s *notificationService) dispatch(ctx context.Context, channel, audience, destination, message string) (string, error) {
	body := "Hi, " + message

	var sid string
	var err error
	switch channel {
	case config.ChannelWhatsApp:
		sid, err = s.dispatcher.SendWhatsApp(ctx, destination, body)
	default:
		sid, err = s.dispatcher.SendSMS(ctx, destination, body)
	}
	if err != nil {
		observability.NotificationsFailed().WithLabelValues(channel, audience).Inc()
		s.logger.Error().Err(err).Str("channel", channel).Msg("notification dispatch failed")
		return "", fmt.Errorf("notification dispatch failed: %w", err)
	}

	observability.NotificationsSent().WithLabelValues(channel, audience).Inc()
	return sid, nil
}

func (s *notificationService) cleanMessage(message string) (string, error) {
	clean := strings.TrimSpace(s.sanitizer.Sanitize(message))
	if clean == "" {
		return "", ErrEmptyMessage
	}
	return clean, nil
}

// destination builds the E.164 destination from the configured country
// calling code and the profile's stored digits.
func (s *notificationService) destination(phone string) (string, error) {
	digits := strings.TrimSpace(phone)
	if digits == "" {
		return "", ErrMissingPhone
	}
	return s.countryCode + digits, nil
}
