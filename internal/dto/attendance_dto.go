package dto

import (
	"time"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// AttendanceEntry marks one student present or absent.
type AttendanceEntry struct {
	StudentID uint `json:"student_id" validate:"required"`
	Present   bool `json:"present"`
}

// AttendanceCreateRequest records attendance for a subject on a date.
type AttendanceCreateRequest struct {
	SubjectID uint              `json:"subject_id" validate:"required"`
	SessionID uint              `json:"session_id" validate:"required"`
	Date      string            `json:"date" validate:"required,datetime=2006-01-02"`
	Entries   []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// AttendanceReportUpdateRequest corrects a single report.
type AttendanceReportUpdateRequest struct {
	Present *bool `json:"present" validate:"required"`
}

// AttendanceResponse is the public view of an attendance event.
type AttendanceResponse struct {
	ID        uint      `json:"id"`
	SubjectID uint      `json:"subject_id"`
	SessionID uint      `json:"session_id"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAttendanceResponse maps an attendance model to its response payload.
func NewAttendanceResponse(attendance models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        attendance.ID,
		SubjectID: attendance.SubjectID,
		SessionID: attendance.SessionID,
		Date:      time.Time(attendance.Date).Format("2006-01-02"),
		CreatedAt: attendance.CreatedAt,
	}
}

// AttendanceReportResponse is the public view of a student's report.
type AttendanceReportResponse struct {
	ID           uint `json:"id"`
	StudentID    uint `json:"student_id"`
	AttendanceID uint `json:"attendance_id"`
	Present      bool `json:"present"`
}

// NewAttendanceReportResponse maps a report model to its response payload.
func NewAttendanceReportResponse(report models.AttendanceReport) AttendanceReportResponse {
	return AttendanceReportResponse{
		ID:           report.ID,
		StudentID:    report.StudentID,
		AttendanceID: report.AttendanceID,
		Present:      report.Present,
	}
}

// NewAttendanceReportResponseSlice maps report models to response payloads.
func NewAttendanceReportResponseSlice(reports []models.AttendanceReport) []AttendanceReportResponse {
	responses := make([]AttendanceReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, NewAttendanceReportResponse(report))
	}
	return responses
}
