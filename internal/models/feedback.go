package models

import "time"

// StudentFeedback is a free-text message from a student with an optional reply.
type StudentFeedback struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StudentID uint           `gorm:"not null;index" json:"student_id"`
	Student   StudentProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Reply     string         `gorm:"type:text" json:"reply"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// StaffFeedback is a free-text message from a staff member with an optional reply.
type StaffFeedback struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	StaffID   uint         `gorm:"not null;index" json:"staff_id"`
	Staff     StaffProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Message   string       `gorm:"type:text;not null" json:"message"`
	Reply     string       `gorm:"type:text" json:"reply"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
