package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

var (
	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates another user already owns the email address.
	ErrEmailTaken = errors.New("email already registered")
	// ErrSuperuserFlags indicates a superuser was requested with a privilege flag explicitly disabled.
	ErrSuperuserFlags = errors.New("superuser must have staff and superuser flags set")
	// ErrInvalidCredentials indicates the email/password pair did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPhotoTooLarge indicates the uploaded photo exceeded the configured limit.
	ErrPhotoTooLarge = errors.New("photo exceeds maximum allowed size")
	// ErrPhotoTypeNotAllowed indicates the uploaded file is not an image.
	ErrPhotoTypeNotAllowed = errors.New("photo must be an image")
)

// PhotoStorage abstracts profile photo destinations.
type PhotoStorage interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// UserService manages user accounts and their role profiles.
type UserService interface {
	Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error)
	CreateSuperuser(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error)
	Get(ctx context.Context, id uint) (dto.UserResponse, error)
	List(ctx context.Context, role string) ([]dto.UserResponse, error)
	Update(ctx context.Context, id uint, payload dto.UserUpdateRequest) (dto.UserResponse, error)
	Delete(ctx context.Context, id uint) error
	Authenticate(ctx context.Context, payload dto.LoginRequest) (models.User, error)
	UploadPhoto(ctx context.Context, userID uint, file *multipart.FileHeader) (dto.PhotoResponse, error)
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.Validate
	storage   PhotoStorage
	maxPhoto  int64
	logger    zerolog.Logger
}

// NewUserService constructs a user service.
func NewUserService(repo repository.UserRepository, validate *validator.Validate, storage PhotoStorage, maxPhotoMB int, logger zerolog.Logger) UserService {
	if maxPhotoMB <= 0 {
		maxPhotoMB = 5
	}
	return &userService{
		repo:      repo,
		validator: validate,
		storage:   storage,
		maxPhoto:  int64(maxPhotoMB) * 1024 * 1024,
		logger:    logger.With().Str("component", "user_service").Logger(),
	}
}

// Create registers a non-privileged user. The matching role profile is
// provisioned in the same transaction as the user row.
func (s *userService) Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error) {
	if payload.IsStaff == nil {
		payload.IsStaff = boolPtr(false)
	}
	if payload.IsSuperuser == nil {
		payload.IsSuperuser = boolPtr(false)
	}
	return s.create(ctx, payload)
}

// CreateSuperuser registers a privileged admin user. Explicitly disabling
// either privilege flag fails before anything is persisted.
func (s *userService) CreateSuperuser(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error) {
	if payload.IsStaff == nil {
		payload.IsStaff = boolPtr(true)
	}
	if payload.IsSuperuser == nil {
		payload.IsSuperuser = boolPtr(true)
	}
	if !*payload.IsStaff || !*payload.IsSuperuser {
		return dto.UserResponse{}, ErrSuperuserFlags
	}

	payload.Role = models.RoleAdmin
	return s.create(ctx, payload)
}

func (s *userService) create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	email := NormalizeEmail(payload.Email)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return dto.UserResponse{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         payload.Role,
		FirstName:    strings.TrimSpace(payload.FirstName),
		LastName:     strings.TrimSpace(payload.LastName),
		Gender:       payload.Gender,
		Address:      payload.Address,
		Phone:        payload.Phone,
		NationalID:   payload.NationalID,
		FCMToken:     payload.FCMToken,
		DateOfBirth:  parseDate(payload.DateOfBirth),
		IsStaff:      *payload.IsStaff,
		IsSuperuser:  *payload.IsSuperuser,
	}

	if err := s.repo.CreateWithProfile(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", user.Role).Msg("user created")

	return dto.NewUserResponse(user), nil
}

func (s *userService) Get(ctx context.Context, id uint) (dto.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) List(ctx context.Context, role string) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx, strings.ToLower(strings.TrimSpace(role)))
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponseSlice(users), nil
}

// Update saves the user and re-saves the associated role profile once per save.
func (s *userService) Update(ctx context.Context, id uint, payload dto.UserUpdateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	if payload.FirstName != nil {
		user.FirstName = strings.TrimSpace(*payload.FirstName)
	}
	if payload.LastName != nil {
		user.LastName = strings.TrimSpace(*payload.LastName)
	}
	if payload.Gender != nil {
		user.Gender = *payload.Gender
	}
	if payload.Address != nil {
		user.Address = *payload.Address
	}
	if payload.Phone != nil {
		user.Phone = *payload.Phone
	}
	if payload.NationalID != nil {
		user.NationalID = *payload.NationalID
	}
	if payload.FCMToken != nil {
		user.FCMToken = *payload.FCMToken
	}
	if payload.DateOfBirth != nil {
		user.DateOfBirth = parseDate(*payload.DateOfBirth)
	}

	if err := s.repo.SaveWithProfile(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	return dto.NewUserResponse(user), nil
}

// Delete removes the user. The role profile and everything the profile owns
// go with it; referenced departments and courses stay.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.logger.Info().Uint("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) Authenticate(ctx context.Context, payload dto.LoginRequest) (models.User, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.User{}, err
	}

	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(payload.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// UploadPhoto validates and stores a profile photo, then records its URL on
// the user row.
func (s *userService) UploadPhoto(ctx context.Context, userID uint, file *multipart.FileHeader) (dto.PhotoResponse, error) {
	if s.storage == nil {
		return dto.PhotoResponse{}, fmt.Errorf("photo storage not configured")
	}
	if file == nil {
		return dto.PhotoResponse{}, fmt.Errorf("no file provided")
	}
	if file.Size > s.maxPhoto {
		return dto.PhotoResponse{}, ErrPhotoTooLarge
	}

	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PhotoResponse{}, ErrUserNotFound
		}
		return dto.PhotoResponse{}, err
	}

	source, err := file.Open()
	if err != nil {
		return dto.PhotoResponse{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer source.Close()

	data, err := io.ReadAll(io.LimitReader(source, s.maxPhoto+1))
	if err != nil {
		return dto.PhotoResponse{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxPhoto {
		return dto.PhotoResponse{}, ErrPhotoTooLarge
	}

	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		return dto.PhotoResponse{}, ErrPhotoTypeNotAllowed
	}

	url, err := s.storage.Upload(ctx, fmt.Sprintf("user-%d", userID), bytes.NewReader(data))
	if err != nil {
		return dto.PhotoResponse{}, err
	}

	if err := s.repo.UpdateProfilePhoto(ctx, userID, url); err != nil {
		return dto.PhotoResponse{}, err
	}

	return dto.PhotoResponse{UserID: userID, URL: url}, nil
}

// NormalizeEmail trims whitespace and lowercases the domain part of the
// address. The local part is preserved as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func parseDate(value string) *datatypes.Date {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	date := datatypes.Date(parsed)
	return &date
}

func boolPtr(v bool) *bool {
	return &v
}
