package models

import (
	"time"

	"gorm.io/datatypes"
)

// Roles recognised by the platform. The role decides which profile a user owns.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// User is the base identity record. Every user owns exactly one role profile
// (AdminProfile, StaffProfile or StudentProfile) selected by Role.
type User struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Email           string          `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash    string          `gorm:"size:255;not null" json:"-"`
	Role            string          `gorm:"size:16;not null;default:admin" json:"role"`
	FirstName       string          `gorm:"size:120" json:"first_name"`
	LastName        string          `gorm:"size:120" json:"last_name"`
	Gender          string          `gorm:"size:1" json:"gender"`
	Address         string          `gorm:"type:text" json:"address"`
	ProfilePhotoURL string          `gorm:"size:512" json:"profile_photo_url"`
	FCMToken        string          `gorm:"type:text" json:"fcm_token"`
	Phone           string          `gorm:"size:20" json:"phone"`
	NationalID      string          `gorm:"size:20" json:"national_id"`
	DateOfBirth     *datatypes.Date `json:"date_of_birth"`
	IsStaff         bool            `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser     bool            `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// FullName concatenates the user's first and last names.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
