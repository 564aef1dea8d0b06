package dto

import (
	"time"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// UserCreateRequest is the payload for registering a user of any role.
type UserCreateRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,oneof=admin staff student"`
	FirstName   string `json:"first_name" validate:"omitempty,max=120"`
	LastName    string `json:"last_name" validate:"omitempty,max=120"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string `json:"address"`
	Phone       string `json:"phone" validate:"omitempty,numeric,max=12"`
	NationalID  string `json:"national_id" validate:"omitempty,numeric,max=16"`
	FCMToken    string `json:"fcm_token"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	IsStaff     *bool  `json:"is_staff"`
	IsSuperuser *bool  `json:"is_superuser"`
}

// UserUpdateRequest carries optional field updates for an existing user.
type UserUpdateRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=120"`
	LastName    *string `json:"last_name" validate:"omitempty,max=120"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone" validate:"omitempty,numeric,max=12"`
	NationalID  *string `json:"national_id" validate:"omitempty,numeric,max=16"`
	FCMToken    *string `json:"fcm_token"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID              uint      `json:"id"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Gender          string    `json:"gender"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	ProfilePhotoURL string    `json:"profile_photo_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewUserResponse maps a user model to its response payload.
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Role:            user.Role,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Gender:          user.Gender,
		Address:         user.Address,
		Phone:           user.Phone,
		ProfilePhotoURL: user.ProfilePhotoURL,
		CreatedAt:       user.CreatedAt,
	}
}

// NewUserResponseSlice maps a slice of users to response payloads.
func NewUserResponseSlice(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}

// PhotoResponse carries the stored profile photo location.
type PhotoResponse struct {
	UserID uint   `json:"user_id"`
	URL    string `json:"url"`
}
