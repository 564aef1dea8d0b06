package dto

import (
	"time"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// LeaveCreateRequest files a leave application.
type LeaveCreateRequest struct {
	Date    string `json:"date" validate:"required,max=60"`
	Message string `json:"message" validate:"required"`
}

// LeaveReviewRequest approves or rejects a pending leave application.
type LeaveReviewRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

// LeaveResponse is the public view of a leave request of either kind.
type LeaveResponse struct {
	ID        uint      `json:"id"`
	OwnerID   uint      `json:"owner_id"`
	Date      string    `json:"date"`
	Message   string    `json:"message"`
	Status    int16     `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStudentLeaveResponse maps a student leave request to its response payload.
func NewStudentLeaveResponse(request models.StudentLeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:        request.ID,
		OwnerID:   request.StudentID,
		Date:      request.Date,
		Message:   request.Message,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
	}
}

// NewStaffLeaveResponse maps a staff leave request to its response payload.
func NewStaffLeaveResponse(request models.StaffLeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:        request.ID,
		OwnerID:   request.StaffID,
		Date:      request.Date,
		Message:   request.Message,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
	}
}
