package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// AcademicRepository handles persistence for the academic reference
// entities: sessions, departments, courses and subjects.
type AcademicRepository interface {
	CreateSession(ctx context.Context, session *models.Session) error
	ListSessions(ctx context.Context) ([]models.Session, error)
	GetSession(ctx context.Context, id uint) (models.Session, error)
	DeleteSession(ctx context.Context, id uint) error

	CreateDepartment(ctx context.Context, department *models.Department) error
	ListDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartment(ctx context.Context, id uint) (models.Department, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, id uint) error

	CreateCourse(ctx context.Context, course *models.Course) error
	ListCourses(ctx context.Context, departmentID *uint) ([]models.Course, error)
	GetCourse(ctx context.Context, id uint) (models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id uint) error

	CreateSubject(ctx context.Context, subject *models.Subject) error
	ListSubjects(ctx context.Context, courseID, staffID *uint) ([]models.Subject, error)
	GetSubject(ctx context.Context, id uint) (models.Subject, error)
	UpdateSubject(ctx context.Context, subject *models.Subject) error
	DeleteSubject(ctx context.Context, id uint) error
}

type academicRepository struct {
	db *gorm.DB
}

// NewAcademicRepository constructs the academic repository.
func NewAcademicRepository(db *gorm.DB) AcademicRepository {
	return &academicRepository{db: db}
}

func (r *academicRepository) CreateSession(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *academicRepository) ListSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *academicRepository) GetSession(ctx context.Context, id uint) (models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *academicRepository) DeleteSession(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Session{}, id)
}

func (r *academicRepository) CreateDepartment(ctx context.Context, department *models.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *academicRepository) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	if err := r.db.WithContext(ctx).Order("name").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *academicRepository) GetDepartment(ctx context.Context, id uint) (models.Department, error) {
	var department models.Department
	if err := r.db.WithContext(ctx).First(&department, id).Error; err != nil {
		return models.Department{}, err
	}
	return department, nil
}

func (r *academicRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

func (r *academicRepository) DeleteDepartment(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Department{}, id)
}

func (r *academicRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *academicRepository) ListCourses(ctx context.Context, departmentID *uint) ([]models.Course, error) {
	query := r.db.WithContext(ctx).Order("name")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *academicRepository) GetCourse(ctx context.Context, id uint) (models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (r *academicRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *academicRepository) DeleteCourse(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Course{}, id)
}

func (r *academicRepository) CreateSubject(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *academicRepository) ListSubjects(ctx context.Context, courseID, staffID *uint) ([]models.Subject, error) {
	query := r.db.WithContext(ctx).Order("name")
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}
	if staffID != nil {
		query = query.Where("staff_id = ?", *staffID)
	}

	var subjects []models.Subject
	if err := query.Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *academicRepository) GetSubject(ctx context.Context, id uint) (models.Subject, error) {
	var subject models.Subject
	if err := r.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return models.Subject{}, err
	}
	return subject, nil
}

func (r *academicRepository) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *academicRepository) DeleteSubject(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Subject{}, id)
}

func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
