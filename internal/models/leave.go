package models

import "time"

// Leave request review states.
const (
	LeaveStatusPending  int16 = 0
	LeaveStatusApproved int16 = 1
	LeaveStatusRejected int16 = 2
)

// StudentLeaveRequest is a leave application filed by a student.
type StudentLeaveRequest struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StudentID uint           `gorm:"not null;index" json:"student_id"`
	Student   StudentProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date      string         `gorm:"size:60;not null" json:"date"`
	Message   string         `gorm:"type:text" json:"message"`
	Status    int16          `gorm:"not null;default:0" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// StaffLeaveRequest is a leave application filed by a staff member.
type StaffLeaveRequest struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	StaffID   uint         `gorm:"not null;index" json:"staff_id"`
	Staff     StaffProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date      string       `gorm:"size:60;not null" json:"date"`
	Message   string       `gorm:"type:text" json:"message"`
	Status    int16        `gorm:"not null;default:0" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
