package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// ConnectPostgres establishes a connection to the PostgreSQL database using the provided DSN.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn must not be empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity. Parents are listed
// before dependents so foreign keys resolve on first run.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Department{},
		&models.Course{},
		&models.AdminProfile{},
		&models.StaffProfile{},
		&models.StudentProfile{},
		&models.Subject{},
		&models.Attendance{},
		&models.AttendanceReport{},
		&models.StudentLeaveRequest{},
		&models.StaffLeaveRequest{},
		&models.StudentFeedback{},
		&models.StaffFeedback{},
		&models.StaffNotification{},
		&models.StudentNotification{},
		&models.StudentResult{},
	)
}
