package models

import (
	"time"

	"gorm.io/datatypes"
)

// Attendance is a single taken-attendance event for a subject on a date.
type Attendance struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SessionID uint           `gorm:"not null" json:"session_id"`
	Session   Session        `json:"-"`
	SubjectID uint           `gorm:"not null" json:"subject_id"`
	Subject   Subject        `json:"-"`
	Date      datatypes.Date `gorm:"not null" json:"date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// AttendanceReport records one student's presence against an attendance event.
type AttendanceReport struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	StudentID    uint           `gorm:"not null;index" json:"student_id"`
	Student      StudentProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AttendanceID uint           `gorm:"not null;index" json:"attendance_id"`
	Attendance   Attendance     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Present      bool           `gorm:"not null;default:false" json:"present"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
