package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

func seedAttendanceForStudent(t *testing.T, db *gorm.DB, studentID, subjectID, sessionID uint, presence []bool) {
	t.Helper()
	for _, present := range presence {
		attendance := models.Attendance{SubjectID: subjectID, SessionID: sessionID}
		require.NoError(t, db.Create(&attendance).Error)
		require.NoError(t, db.Create(&models.AttendanceReport{
			StudentID:    studentID,
			AttendanceID: attendance.ID,
			Present:      present,
		}).Error)
	}
}

func TestAttendanceSummaryComputesPercentage(t *testing.T) {
	db := setupTestDB(t)
	_, staff := seedStaff(t, db, "teacher@campus.edu", "9000000001")
	session, subject := seedSubject(t, db, staff.ID)
	_, alice := seedStudent(t, db, "alice@campus.edu", "9000000002")
	seedAttendanceForStudent(t, db, alice.ID, subject.ID, session.ID, []bool{true, false, true, true})

	svc := NewDashboardService(repository.NewAttendanceRepository(db), nil, time.Minute, testLogger())

	summary, err := svc.AttendanceSummary(context.Background(), alice.ID, subject.ID)
	require.NoError(t, err)
	require.EqualValues(t, 4, summary.Total)
	require.EqualValues(t, 3, summary.Present)
	require.InDelta(t, 75.0, summary.Percentage, 0.01)
}

func TestAttendanceSummaryServedFromCache(t *testing.T) {
	db := setupTestDB(t)
	_, staff := seedStaff(t, db, "teacher@campus.edu", "9000000001")
	session, subject := seedSubject(t, db, staff.ID)
	_, alice := seedStudent(t, db, "alice@campus.edu", "9000000002")
	seedAttendanceForStudent(t, db, alice.ID, subject.ID, session.ID, []bool{true, false})

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewDashboardService(repository.NewAttendanceRepository(db), client, time.Minute, testLogger())

	first, err := svc.AttendanceSummary(context.Background(), alice.ID, subject.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, first.Total)

	// New rows do not show up until the cached entry expires.
	seedAttendanceForStudent(t, db, alice.ID, subject.ID, session.ID, []bool{true})

	second, err := svc.AttendanceSummary(context.Background(), alice.ID, subject.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, second.Total)

	mr.FlushAll()

	third, err := svc.AttendanceSummary(context.Background(), alice.ID, subject.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, third.Total)
}

func TestAttendanceSummaryEmpty(t *testing.T) {
	db := setupTestDB(t)

	svc := NewDashboardService(repository.NewAttendanceRepository(db), nil, time.Minute, testLogger())

	summary, err := svc.AttendanceSummary(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Equal(t, dto.AttendanceSummary{StudentID: 1, SubjectID: 1}, summary)
}
