package dto

// AttendanceSummary aggregates a student's attendance for one subject.
type AttendanceSummary struct {
	StudentID  uint    `json:"student_id"`
	SubjectID  uint    `json:"subject_id"`
	Total      int64   `json:"total"`
	Present    int64   `json:"present"`
	Percentage float64 `json:"percentage"`
}
