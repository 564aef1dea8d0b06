package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

func TestTakeAttendanceRecordsEventAndReports(t *testing.T) {
	db := setupTestDB(t)
	_, staff := seedStaff(t, db, "teacher@campus.edu", "9000000001")
	session, subject := seedSubject(t, db, staff.ID)
	_, alice := seedStudent(t, db, "alice@campus.edu", "9000000002")
	_, bob := seedStudent(t, db, "bob@campus.edu", "9000000003")

	svc := NewAttendanceService(repository.NewAttendanceRepository(db), repository.NewAcademicRepository(db), newValidator(), testLogger())

	attendance, reports, err := svc.Take(context.Background(), dto.AttendanceCreateRequest{
		SubjectID: subject.ID,
		SessionID: session.ID,
		Date:      "2026-03-02",
		Entries: []dto.AttendanceEntry{
			{StudentID: alice.ID, Present: true},
			{StudentID: bob.ID, Present: false},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "2026-03-02", attendance.Date)
	require.Len(t, reports, 2)

	var stored []models.AttendanceReport
	require.NoError(t, db.Where("attendance_id = ?", attendance.ID).Order("id").Find(&stored).Error)
	require.Len(t, stored, 2)
	require.True(t, stored[0].Present)
	require.False(t, stored[1].Present)
}

func TestTakeAttendanceUnknownSubject(t *testing.T) {
	db := setupTestDB(t)
	_, profile := seedStudent(t, db, "alice@campus.edu", "9000000002")

	svc := NewAttendanceService(repository.NewAttendanceRepository(db), repository.NewAcademicRepository(db), newValidator(), testLogger())

	_, _, err := svc.Take(context.Background(), dto.AttendanceCreateRequest{
		SubjectID: 77,
		SessionID: 1,
		Date:      "2026-03-02",
		Entries:   []dto.AttendanceEntry{{StudentID: profile.ID, Present: true}},
	})
	require.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestUpdateAttendanceReport(t *testing.T) {
	db := setupTestDB(t)
	_, staff := seedStaff(t, db, "teacher@campus.edu", "9000000001")
	session, subject := seedSubject(t, db, staff.ID)
	_, alice := seedStudent(t, db, "alice@campus.edu", "9000000002")

	svc := NewAttendanceService(repository.NewAttendanceRepository(db), repository.NewAcademicRepository(db), newValidator(), testLogger())

	_, reports, err := svc.Take(context.Background(), dto.AttendanceCreateRequest{
		SubjectID: subject.ID,
		SessionID: session.ID,
		Date:      "2026-03-02",
		Entries:   []dto.AttendanceEntry{{StudentID: alice.ID, Present: false}},
	})
	require.NoError(t, err)

	present := true
	updated, err := svc.UpdateReport(context.Background(), reports[0].ID, dto.AttendanceReportUpdateRequest{Present: &present})
	require.NoError(t, err)
	require.True(t, updated.Present)

	_, err = svc.UpdateReport(context.Background(), 999, dto.AttendanceReportUpdateRequest{Present: &present})
	require.ErrorIs(t, err, ErrReportNotFound)
}

func TestStudentReportsListsAcrossEvents(t *testing.T) {
	db := setupTestDB(t)
	_, staff := seedStaff(t, db, "teacher@campus.edu", "9000000001")
	session, subject := seedSubject(t, db, staff.ID)
	_, alice := seedStudent(t, db, "alice@campus.edu", "9000000002")

	svc := NewAttendanceService(repository.NewAttendanceRepository(db), repository.NewAcademicRepository(db), newValidator(), testLogger())

	for _, day := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
		_, _, err := svc.Take(context.Background(), dto.AttendanceCreateRequest{
			SubjectID: subject.ID,
			SessionID: session.ID,
			Date:      day,
			Entries:   []dto.AttendanceEntry{{StudentID: alice.ID, Present: day != "2026-03-03"}},
		})
		require.NoError(t, err)
	}

	reports, err := svc.StudentReports(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, reports, 3)
}
