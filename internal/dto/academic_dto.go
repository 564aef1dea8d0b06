package dto

import (
	"time"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// SessionCreateRequest defines an academic-year interval.
type SessionCreateRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// SessionResponse is the public view of a session.
type SessionResponse struct {
	ID        uint   `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// NewSessionResponse maps a session model to its response payload.
func NewSessionResponse(session models.Session) SessionResponse {
	return SessionResponse{
		ID:        session.ID,
		StartDate: time.Time(session.StartDate).Format("2006-01-02"),
		EndDate:   time.Time(session.EndDate).Format("2006-01-02"),
	}
}

// DepartmentRequest creates or renames a department.
type DepartmentRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// DepartmentResponse is the public view of a department.
type DepartmentResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDepartmentResponse maps a department model to its response payload.
func NewDepartmentResponse(department models.Department) DepartmentResponse {
	return DepartmentResponse{ID: department.ID, Name: department.Name, CreatedAt: department.CreatedAt}
}

// CourseRequest creates or updates a course.
type CourseRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	DepartmentID *uint  `json:"department_id"`
}

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	DepartmentID *uint     `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewCourseResponse maps a course model to its response payload.
func NewCourseResponse(course models.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID,
		Name:         course.Name,
		DepartmentID: course.DepartmentID,
		CreatedAt:    course.CreatedAt,
	}
}

// SubjectRequest creates or updates a subject.
type SubjectRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	StaffID      uint   `json:"staff_id" validate:"required"`
	DepartmentID *uint  `json:"department_id"`
	CourseID     uint   `json:"course_id" validate:"required"`
	SessionID    *uint  `json:"session_id"`
}

// SubjectResponse is the public view of a subject.
type SubjectResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	StaffID      uint      `json:"staff_id"`
	DepartmentID *uint     `json:"department_id"`
	CourseID     uint      `json:"course_id"`
	SessionID    *uint     `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSubjectResponse maps a subject model to its response payload.
func NewSubjectResponse(subject models.Subject) SubjectResponse {
	return SubjectResponse{
		ID:           subject.ID,
		Name:         subject.Name,
		StaffID:      subject.StaffID,
		DepartmentID: subject.DepartmentID,
		CourseID:     subject.CourseID,
		SessionID:    subject.SessionID,
		CreatedAt:    subject.CreatedAt,
	}
}
