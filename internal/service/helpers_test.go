package service

import (
	"fmt"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/database"
	"github.com/campus-hq/college-admin-api/internal/models"
)

// setupTestDB opens a private in-memory database with foreign keys enforced,
// so cascade behaviour matches production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func seedStudent(t *testing.T, db *gorm.DB, email, phone string) (models.User, models.StudentProfile) {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x", Role: models.RoleStudent, Phone: phone}
	require.NoError(t, db.Create(&user).Error)
	profile := models.StudentProfile{UserID: user.ID, Phone: phone}
	require.NoError(t, db.Create(&profile).Error)
	return user, profile
}

func seedStaff(t *testing.T, db *gorm.DB, email, phone string) (models.User, models.StaffProfile) {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x", Role: models.RoleStaff, Phone: phone}
	require.NoError(t, db.Create(&user).Error)
	profile := models.StaffProfile{UserID: user.ID, Phone: phone}
	require.NoError(t, db.Create(&profile).Error)
	return user, profile
}

func seedSubject(t *testing.T, db *gorm.DB, staffID uint) (models.Session, models.Subject) {
	t.Helper()
	session := models.Session{}
	require.NoError(t, db.Create(&session).Error)
	course := models.Course{Name: "Computer Science"}
	require.NoError(t, db.Create(&course).Error)
	subject := models.Subject{Name: "Algorithms", StaffID: staffID, CourseID: course.ID, SessionID: &session.ID}
	require.NoError(t, db.Create(&subject).Error)
	return session, subject
}
