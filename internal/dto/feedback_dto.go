package dto

import (
	"time"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// FeedbackCreateRequest submits a feedback message.
type FeedbackCreateRequest struct {
	Message string `json:"message" validate:"required"`
}

// FeedbackReplyRequest answers a feedback message.
type FeedbackReplyRequest struct {
	Reply string `json:"reply" validate:"required"`
}

// FeedbackResponse is the public view of feedback of either kind.
type FeedbackResponse struct {
	ID        uint      `json:"id"`
	OwnerID   uint      `json:"owner_id"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStudentFeedbackResponse maps student feedback to its response payload.
func NewStudentFeedbackResponse(feedback models.StudentFeedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        feedback.ID,
		OwnerID:   feedback.StudentID,
		Message:   feedback.Message,
		Reply:     feedback.Reply,
		CreatedAt: feedback.CreatedAt,
	}
}

// NewStaffFeedbackResponse maps staff feedback to its response payload.
func NewStaffFeedbackResponse(feedback models.StaffFeedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        feedback.ID,
		OwnerID:   feedback.StaffID,
		Message:   feedback.Message,
		Reply:     feedback.Reply,
		CreatedAt: feedback.CreatedAt,
	}
}
