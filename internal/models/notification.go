package models

import "time"

// StaffNotification is a message for a staff member. Creating one also
// dispatches an outbound text message to the staff member's phone.
type StaffNotification struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	StaffID   uint         `gorm:"not null;index" json:"staff_id"`
	Staff     StaffProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Message   string       `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// StudentNotification is a message for a student. Creating one also
// dispatches an outbound text message to the student's phone.
type StudentNotification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StudentID uint           `gorm:"not null;index" json:"student_id"`
	Student   StudentProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
