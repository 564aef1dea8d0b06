package dto

import (
	"time"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// StaffNotificationRequest sends a message to one staff member.
type StaffNotificationRequest struct {
	StaffID uint   `json:"staff_id" validate:"required"`
	Message string `json:"message" validate:"required,max=1600"`
}

// StudentNotificationRequest sends a message to one student.
type StudentNotificationRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Message   string `json:"message" validate:"required,max=1600"`
}

// NotificationResponse is the public view of a stored notification. SID is
// the provider identifier of the dispatched message.
type NotificationResponse struct {
	ID        uint      `json:"id"`
	TargetID  uint      `json:"target_id"`
	Message   string    `json:"message"`
	Channel   string    `json:"channel,omitempty"`
	SID       string    `json:"sid,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStaffNotificationResponse maps a staff notification to its response payload.
func NewStaffNotificationResponse(notification models.StaffNotification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		TargetID:  notification.StaffID,
		Message:   notification.Message,
		CreatedAt: notification.CreatedAt,
	}
}

// NewStudentNotificationResponse maps a student notification to its response payload.
func NewStudentNotificationResponse(notification models.StudentNotification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		TargetID:  notification.StudentID,
		Message:   notification.Message,
		CreatedAt: notification.CreatedAt,
	}
}
