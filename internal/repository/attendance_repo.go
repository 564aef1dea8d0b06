package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// AttendanceRepository handles persistence for attendance events and the
// per-student reports attached to them.
type AttendanceRepository interface {
	CreateWithReports(ctx context.Context, attendance *models.Attendance, reports []models.AttendanceReport) error
	GetByID(ctx context.Context, id uint) (models.Attendance, error)
	ListBySubject(ctx context.Context, subjectID uint, sessionID *uint) ([]models.Attendance, error)
	ListReports(ctx context.Context, attendanceID uint) ([]models.AttendanceReport, error)
	ListReportsByStudent(ctx context.Context, studentID uint) ([]models.AttendanceReport, error)
	UpdateReport(ctx context.Context, reportID uint, present bool) (models.AttendanceReport, error)
	StudentSubjectCounts(ctx context.Context, studentID, subjectID uint) (total int64, present int64, err error)
	Delete(ctx context.Context, id uint) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository constructs an attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// CreateWithReports persists the attendance event and all student reports in
// one transaction.
func (r *attendanceRepository) CreateWithReports(ctx context.Context, attendance *models.Attendance, reports []models.AttendanceReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attendance).Error; err != nil {
			return err
		}

		for i := range reports {
			reports[i].AttendanceID = attendance.ID
		}
		if len(reports) == 0 {
			return nil
		}
		return tx.Create(&reports).Error
	})
}

func (r *attendanceRepository) GetByID(ctx context.Context, id uint) (models.Attendance, error) {
	var attendance models.Attendance
	if err := r.db.WithContext(ctx).First(&attendance, id).Error; err != nil {
		return models.Attendance{}, err
	}
	return attendance, nil
}

func (r *attendanceRepository) ListBySubject(ctx context.Context, subjectID uint, sessionID *uint) ([]models.Attendance, error) {
	query := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).Order("date DESC")
	if sessionID != nil {
		query = query.Where("session_id = ?", *sessionID)
	}

	var attendances []models.Attendance
	if err := query.Find(&attendances).Error; err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *attendanceRepository) ListReports(ctx context.Context, attendanceID uint) ([]models.AttendanceReport, error) {
	var reports []models.AttendanceReport
	if err := r.db.WithContext(ctx).Where("attendance_id = ?", attendanceID).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *attendanceRepository) ListReportsByStudent(ctx context.Context, studentID uint) ([]models.AttendanceReport, error) {
	var reports []models.AttendanceReport
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *attendanceRepository) UpdateReport(ctx context.Context, reportID uint, present bool) (models.AttendanceReport, error) {
	var report models.AttendanceReport
	if err := r.db.WithContext(ctx).First(&report, reportID).Error; err != nil {
		return models.AttendanceReport{}, err
	}

	report.Present = present
	if err := r.db.WithContext(ctx).Save(&report).Error; err != nil {
		return models.AttendanceReport{}, err
	}
	return report, nil
}

func (r *attendanceRepository) StudentSubjectCounts(ctx context.Context, studentID, subjectID uint) (int64, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.AttendanceReport{}).
		Joins("JOIN attendances ON attendances.id = attendance_reports.attendance_id").
		Where("attendance_reports.student_id = ?", studentID).
		Where("attendances.subject_id = ?", subjectID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var present int64
	if err := base.Session(&gorm.Session{}).Where("attendance_reports.present = ?", true).Count(&present).Error; err != nil {
		return 0, 0, err
	}

	return total, present, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Attendance{}, id)
}
