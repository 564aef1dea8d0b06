package dto

import (
	"time"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// ResultUpsertRequest records or corrects a student's scores for a subject.
type ResultUpsertRequest struct {
	StudentID uint    `json:"student_id" validate:"required"`
	SubjectID uint    `json:"subject_id" validate:"required"`
	TestScore float64 `json:"test_score" validate:"gte=0,lte=100"`
	ExamScore float64 `json:"exam_score" validate:"gte=0,lte=100"`
}

// ResultResponse is the public view of a student result.
type ResultResponse struct {
	ID        uint      `json:"id"`
	StudentID uint      `json:"student_id"`
	SubjectID uint      `json:"subject_id"`
	TestScore float64   `json:"test_score"`
	ExamScore float64   `json:"exam_score"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewResultResponse maps a result model to its response payload.
func NewResultResponse(result models.StudentResult) ResultResponse {
	return ResultResponse{
		ID:        result.ID,
		StudentID: result.StudentID,
		SubjectID: result.SubjectID,
		TestScore: result.TestScore,
		ExamScore: result.ExamScore,
		UpdatedAt: result.UpdatedAt,
	}
}

// NewResultResponseSlice maps result models to response payloads.
func NewResultResponseSlice(results []models.StudentResult) []ResultResponse {
	responses := make([]ResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, NewResultResponse(result))
	}
	return responses
}
