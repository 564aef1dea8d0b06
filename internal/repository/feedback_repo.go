package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// FeedbackRepository handles persistence for student and staff feedback.
type FeedbackRepository interface {
	CreateStudent(ctx context.Context, feedback *models.StudentFeedback) error
	CreateStaff(ctx context.Context, feedback *models.StaffFeedback) error
	ListStudent(ctx context.Context, studentID *uint) ([]models.StudentFeedback, error)
	ListStaff(ctx context.Context, staffID *uint) ([]models.StaffFeedback, error)
	ReplyStudent(ctx context.Context, id uint, reply string) (models.StudentFeedback, error)
	ReplyStaff(ctx context.Context, id uint, reply string) (models.StaffFeedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository constructs a feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateStudent(ctx context.Context, feedback *models.StudentFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) CreateStaff(ctx context.Context, feedback *models.StaffFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) ListStudent(ctx context.Context, studentID *uint) ([]models.StudentFeedback, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if studentID != nil {
		query = query.Where("student_id = ?", *studentID)
	}

	var feedback []models.StudentFeedback
	if err := query.Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *feedbackRepository) ListStaff(ctx context.Context, staffID *uint) ([]models.StaffFeedback, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if staffID != nil {
		query = query.Where("staff_id = ?", *staffID)
	}

	var feedback []models.StaffFeedback
	if err := query.Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *feedbackRepository) ReplyStudent(ctx context.Context, id uint, reply string) (models.StudentFeedback, error) {
	var feedback models.StudentFeedback
	if err := r.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		return models.StudentFeedback{}, err
	}

	feedback.Reply = reply
	if err := r.db.WithContext(ctx).Save(&feedback).Error; err != nil {
		return models.StudentFeedback{}, err
	}
	return feedback, nil
}

func (r *feedbackRepository) ReplyStaff(ctx context.Context, id uint, reply string) (models.StaffFeedback, error) {
	var feedback models.StaffFeedback
	if err := r.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		return models.StaffFeedback{}, err
	}

	feedback.Reply = reply
	if err := r.db.WithContext(ctx).Save(&feedback).Error; err != nil {
		return models.StaffFeedback{}, err
	}
	return feedback, nil
}
