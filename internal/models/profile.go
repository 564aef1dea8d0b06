package models

import (
	"time"

	"gorm.io/datatypes"
)

// AdminProfile is the role profile owned by users with RoleAdmin.
type AdminProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StaffProfile is the role profile owned by users with RoleStaff. Department
// and Course are plain references: deleting either leaves the profile intact.
type StaffProfile struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"uniqueIndex;not null" json:"user_id"`
	User          User        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DepartmentID  *uint       `json:"department_id"`
	Department    *Department `json:"department,omitempty"`
	CourseID      *uint       `json:"course_id"`
	Course        *Course     `json:"course,omitempty"`
	Phone         string      `gorm:"size:20" json:"phone"`
	Qualification string      `gorm:"size:120" json:"qualification"`
	NationalID    string      `gorm:"size:20" json:"national_id"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// StudentProfile is the role profile owned by users with RoleStudent.
type StudentProfile struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	User            User            `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DepartmentID    *uint           `json:"department_id"`
	Department      *Department     `json:"department,omitempty"`
	CourseID        *uint           `json:"course_id"`
	Course          *Course         `json:"course,omitempty"`
	SessionID       *uint           `json:"session_id"`
	Session         *Session        `json:"session,omitempty"`
	Phone           string          `gorm:"size:20" json:"phone"`
	NationalID      string          `gorm:"size:20" json:"national_id"`
	DateOfBirth     *datatypes.Date `json:"date_of_birth"`
	Religion        string          `gorm:"size:40" json:"religion"`
	RegisterNumber  string          `gorm:"size:20" json:"register_number"`
	AdmissionNumber string          `gorm:"size:20" json:"admission_number"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
