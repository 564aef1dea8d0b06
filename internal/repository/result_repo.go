package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// ResultRepository handles persistence for exam results.
type ResultRepository interface {
	Upsert(ctx context.Context, result *models.StudentResult) error
	GetByStudentSubject(ctx context.Context, studentID, subjectID uint) (models.StudentResult, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.StudentResult, error)
	ListBySubject(ctx context.Context, subjectID uint) ([]models.StudentResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository constructs a result repository.
func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// Upsert writes the scores for the (student, subject) pair, updating the
// existing row when one is present.
func (r *resultRepository) Upsert(ctx context.Context, result *models.StudentResult) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.StudentResult
		err := tx.Where("student_id = ? AND subject_id = ?", result.StudentID, result.SubjectID).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(result).Error
		}
		if err != nil {
			return err
		}

		existing.TestScore = result.TestScore
		existing.ExamScore = result.ExamScore
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		*result = existing
		return nil
	})
}

func (r *resultRepository) GetByStudentSubject(ctx context.Context, studentID, subjectID uint) (models.StudentResult, error) {
	var result models.StudentResult
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND subject_id = ?", studentID, subjectID).
		First(&result).Error; err != nil {
		return models.StudentResult{}, err
	}
	return result, nil
}

func (r *resultRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.StudentResult, error) {
	var results []models.StudentResult
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) ListBySubject(ctx context.Context, subjectID uint) ([]models.StudentResult, error) {
	var results []models.StudentResult
	if err := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
