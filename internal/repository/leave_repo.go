package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// LeaveRepository handles persistence for student and staff leave requests.
type LeaveRepository interface {
	CreateStudent(ctx context.Context, request *models.StudentLeaveRequest) error
	CreateStaff(ctx context.Context, request *models.StaffLeaveRequest) error
	ListStudent(ctx context.Context, studentID *uint) ([]models.StudentLeaveRequest, error)
	ListStaff(ctx context.Context, staffID *uint) ([]models.StaffLeaveRequest, error)
	SetStudentStatus(ctx context.Context, id uint, status int16) (models.StudentLeaveRequest, error)
	SetStaffStatus(ctx context.Context, id uint, status int16) (models.StaffLeaveRequest, error)
}

type leaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository constructs a leave repository.
func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) CreateStudent(ctx context.Context, request *models.StudentLeaveRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *leaveRepository) CreateStaff(ctx context.Context, request *models.StaffLeaveRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *leaveRepository) ListStudent(ctx context.Context, studentID *uint) ([]models.StudentLeaveRequest, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if studentID != nil {
		query = query.Where("student_id = ?", *studentID)
	}

	var requests []models.StudentLeaveRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRepository) ListStaff(ctx context.Context, staffID *uint) ([]models.StaffLeaveRequest, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if staffID != nil {
		query = query.Where("staff_id = ?", *staffID)
	}

	var requests []models.StaffLeaveRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRepository) SetStudentStatus(ctx context.Context, id uint, status int16) (models.StudentLeaveRequest, error) {
	var request models.StudentLeaveRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return models.StudentLeaveRequest{}, err
	}

	request.Status = status
	if err := r.db.WithContext(ctx).Save(&request).Error; err != nil {
		return models.StudentLeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRepository) SetStaffStatus(ctx context.Context, id uint, status int16) (models.StaffLeaveRequest, error) {
	var request models.StaffLeaveRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return models.StaffLeaveRequest{}, err
	}

	request.Status = status
	if err := r.db.WithContext(ctx).Save(&request).Error; err != nil {
		return models.StaffLeaveRequest{}, err
	}
	return request, nil
}
