package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// DispatchFunc performs the outbound message delivery tied to a notification
// insert. It runs inside the insert transaction: a delivery error rolls the
// row back.
type DispatchFunc func(ctx context.Context) error

// NotificationRepository handles persistence for notification entities.
type NotificationRepository interface {
	CreateStaff(ctx context.Context, notification *models.StaffNotification, dispatch DispatchFunc) error
	CreateStudent(ctx context.Context, notification *models.StudentNotification, dispatch DispatchFunc) error
	ListStaff(ctx context.Context, staffID uint) ([]models.StaffNotification, error)
	ListStudent(ctx context.Context, studentID uint) ([]models.StudentNotification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository constructs a repository backed by GORM.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateStaff(ctx context.Context, notification *models.StaffNotification, dispatch DispatchFunc) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notification).Error; err != nil {
			return err
		}
		if dispatch != nil {
			return dispatch(ctx)
		}
		return nil
	})
}

func (r *notificationRepository) CreateStudent(ctx context.Context, notification *models.StudentNotification, dispatch DispatchFunc) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notification).Error; err != nil {
			return err
		}
		if dispatch != nil {
			return dispatch(ctx)
		}
		return nil
	})
}

func (r *notificationRepository) ListStaff(ctx context.Context, staffID uint) ([]models.StaffNotification, error) {
	var notifications []models.StaffNotification
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) ListStudent(ctx context.Context, studentID uint) ([]models.StudentNotification, error) {
	var notifications []models.StudentNotification
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
