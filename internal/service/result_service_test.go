package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

func TestResultUpsertKeepsOneRowPerPair(t *testing.T) {
	db := setupTestDB(t)
	_, staff := seedStaff(t, db, "teacher@campus.edu", "9000000001")
	_, subject := seedSubject(t, db, staff.ID)
	_, alice := seedStudent(t, db, "alice@campus.edu", "9000000002")

	svc := NewResultService(repository.NewResultRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	first, err := svc.Upsert(context.Background(), dto.ResultUpsertRequest{
		StudentID: alice.ID,
		SubjectID: subject.ID,
		TestScore: 40,
		ExamScore: 55,
	})
	require.NoError(t, err)

	second, err := svc.Upsert(context.Background(), dto.ResultUpsertRequest{
		StudentID: alice.ID,
		SubjectID: subject.ID,
		TestScore: 45,
		ExamScore: 60,
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID, "re-entering scores must update the existing row")
	require.Equal(t, 45.0, second.TestScore)

	var count int64
	require.NoError(t, db.Model(&models.StudentResult{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestResultListForUser(t *testing.T) {
	db := setupTestDB(t)
	_, staff := seedStaff(t, db, "teacher@campus.edu", "9000000001")
	_, subject := seedSubject(t, db, staff.ID)
	aliceUser, alice := seedStudent(t, db, "alice@campus.edu", "9000000002")

	svc := NewResultService(repository.NewResultRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	_, err := svc.Upsert(context.Background(), dto.ResultUpsertRequest{
		StudentID: alice.ID,
		SubjectID: subject.ID,
		TestScore: 70,
		ExamScore: 80,
	})
	require.NoError(t, err)

	results, err := svc.ListForUser(context.Background(), aliceUser.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 80.0, results[0].ExamScore)

	_, err = svc.ListForUser(context.Background(), 999)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestResultUpsertRejectsOutOfRangeScores(t *testing.T) {
	db := setupTestDB(t)

	svc := NewResultService(repository.NewResultRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	_, err := svc.Upsert(context.Background(), dto.ResultUpsertRequest{
		StudentID: 1,
		SubjectID: 1,
		TestScore: 140,
	})
	require.Error(t, err)
}
