package models

import "time"

// StudentResult holds a student's test and exam scores for one subject.
// At most one row exists per (student, subject) pair.
type StudentResult struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StudentID uint           `gorm:"not null;uniqueIndex:idx_student_subject" json:"student_id"`
	Student   StudentProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SubjectID uint           `gorm:"not null;uniqueIndex:idx_student_subject" json:"subject_id"`
	Subject   Subject        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TestScore float64        `gorm:"not null;default:0" json:"test_score"`
	ExamScore float64        `gorm:"not null;default:0" json:"exam_score"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
