package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/database"
	"github.com/campus-hq/college-admin-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCreateWithProfileProvisionsByRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	admin := models.User{Email: "admin@campus.edu", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, repo.CreateWithProfile(context.Background(), &admin))

	staff := models.User{Email: "staff@campus.edu", PasswordHash: "x", Role: models.RoleStaff, Phone: "9111111111", NationalID: "1234"}
	require.NoError(t, repo.CreateWithProfile(context.Background(), &staff))

	unknown := models.User{Email: "odd@campus.edu", PasswordHash: "x", Role: "janitor"}
	require.Error(t, repo.CreateWithProfile(context.Background(), &unknown))

	var adminProfile models.AdminProfile
	require.NoError(t, db.Where("user_id = ?", admin.ID).First(&adminProfile).Error)

	staffProfile, err := repo.StaffProfileByUserID(context.Background(), staff.ID)
	require.NoError(t, err)
	require.Equal(t, "9111111111", staffProfile.Phone, "contact fields carry over to the profile")
	require.Equal(t, "1234", staffProfile.NationalID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "odd@campus.edu").Count(&count).Error)
	require.Zero(t, count, "a failed provisioning must roll back the user row")
}

func TestDeleteUserCascadesOwnedRecords(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	teacher := models.User{Email: "teacher@campus.edu", PasswordHash: "x", Role: models.RoleStaff}
	require.NoError(t, repo.CreateWithProfile(context.Background(), &teacher))
	staffProfile, err := repo.StaffProfileByUserID(context.Background(), teacher.ID)
	require.NoError(t, err)

	student := models.User{Email: "alice@campus.edu", PasswordHash: "x", Role: models.RoleStudent}
	require.NoError(t, repo.CreateWithProfile(context.Background(), &student))
	studentProfile, err := repo.StudentProfileByUserID(context.Background(), student.ID)
	require.NoError(t, err)

	department := models.Department{Name: "Physics"}
	require.NoError(t, db.Create(&department).Error)
	course := models.Course{Name: "Mechanics", DepartmentID: &department.ID}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Model(&models.StudentProfile{}).Where("id = ?", studentProfile.ID).
		Updates(map[string]interface{}{"department_id": department.ID, "course_id": course.ID}).Error)

	subject := models.Subject{Name: "Statics", StaffID: staffProfile.ID, CourseID: course.ID}
	require.NoError(t, db.Create(&subject).Error)

	attendance := models.Attendance{SubjectID: subject.ID, SessionID: mustSession(t, db)}
	require.NoError(t, db.Create(&attendance).Error)
	require.NoError(t, db.Create(&models.AttendanceReport{StudentID: studentProfile.ID, AttendanceID: attendance.ID, Present: true}).Error)
	require.NoError(t, db.Create(&models.StudentLeaveRequest{StudentID: studentProfile.ID, Date: "2026-03-10"}).Error)
	require.NoError(t, db.Create(&models.StudentFeedback{StudentID: studentProfile.ID, Message: "hi"}).Error)
	require.NoError(t, db.Create(&models.StudentResult{StudentID: studentProfile.ID, SubjectID: subject.ID, TestScore: 50}).Error)

	require.NoError(t, repo.Delete(context.Background(), student.ID))

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"student profile", &models.StudentProfile{}},
		{"attendance report", &models.AttendanceReport{}},
		{"leave request", &models.StudentLeaveRequest{}},
		{"feedback", &models.StudentFeedback{}},
		{"result", &models.StudentResult{}},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Count(&count).Error)
		require.Zero(t, count, "%s must be removed with the user", probe.name)
	}

	var departments, courses int64
	require.NoError(t, db.Model(&models.Department{}).Count(&departments).Error)
	require.NoError(t, db.Model(&models.Course{}).Count(&courses).Error)
	require.EqualValues(t, 1, departments, "referenced department survives the user")
	require.EqualValues(t, 1, courses, "referenced course survives the user")
}

func TestDeleteUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	require.ErrorIs(t, repo.Delete(context.Background(), 42), gorm.ErrRecordNotFound)
}

func TestDuplicateEmailRejectedByIndex(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	first := models.User{Email: "dup@campus.edu", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, repo.CreateWithProfile(context.Background(), &first))

	second := models.User{Email: "dup@campus.edu", PasswordHash: "x", Role: models.RoleAdmin}
	require.Error(t, repo.CreateWithProfile(context.Background(), &second))
}

func mustSession(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	session := models.Session{}
	require.NoError(t, db.Create(&session).Error)
	return session.ID
}
