package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session is an academic-year interval. Overlapping sessions are allowed.
type Session struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StartDate datatypes.Date `gorm:"not null" json:"start_date"`
	EndDate   datatypes.Date `gorm:"not null" json:"end_date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Department groups courses, subjects and people.
type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Course belongs to a department. Deleting the department leaves the course
// dangling rather than removing it.
type Course struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"size:120;not null" json:"name"`
	DepartmentID *uint       `json:"department_id"`
	Department   *Department `json:"department,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Subject is taught by a staff member within a course. It disappears with its
// staff member or course, but survives department and session deletion.
type Subject struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"size:120;not null" json:"name"`
	StaffID      uint         `gorm:"not null" json:"staff_id"`
	Staff        StaffProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DepartmentID *uint        `json:"department_id"`
	Department   *Department  `json:"department,omitempty"`
	CourseID     uint         `gorm:"not null" json:"course_id"`
	Course       Course       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SessionID    *uint        `json:"session_id"`
	Session      *Session     `json:"session,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
