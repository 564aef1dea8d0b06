package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

func TestSubmitStudentLeaveResolvesProfile(t *testing.T) {
	db := setupTestDB(t)
	user, profile := seedStudent(t, db, "alice@campus.edu", "9000000002")

	svc := NewLeaveService(repository.NewLeaveRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	leave, err := svc.SubmitStudent(context.Background(), user.ID, dto.LeaveCreateRequest{
		Date:    "2026-03-10",
		Message: "family function",
	})
	require.NoError(t, err)
	require.Equal(t, profile.ID, leave.OwnerID)
	require.Equal(t, models.LeaveStatusPending, leave.Status)
}

func TestSubmitLeaveWithoutProfile(t *testing.T) {
	db := setupTestDB(t)

	svc := NewLeaveService(repository.NewLeaveRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	_, err := svc.SubmitStudent(context.Background(), 404, dto.LeaveCreateRequest{Date: "2026-03-10", Message: "x"})
	require.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.SubmitStaff(context.Background(), 404, dto.LeaveCreateRequest{Date: "2026-03-10", Message: "x"})
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestReviewStudentLeave(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedStudent(t, db, "alice@campus.edu", "9000000002")

	svc := NewLeaveService(repository.NewLeaveRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	leave, err := svc.SubmitStudent(context.Background(), user.ID, dto.LeaveCreateRequest{Date: "2026-03-10", Message: "sick"})
	require.NoError(t, err)

	approved, err := svc.ReviewStudent(context.Background(), leave.ID, dto.LeaveReviewRequest{Decision: "approved"})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, approved.Status)

	rejected, err := svc.ReviewStudent(context.Background(), leave.ID, dto.LeaveReviewRequest{Decision: "rejected"})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRejected, rejected.Status)

	_, err = svc.ReviewStudent(context.Background(), 999, dto.LeaveReviewRequest{Decision: "approved"})
	require.ErrorIs(t, err, ErrLeaveNotFound)
}

func TestReviewStaffLeave(t *testing.T) {
	db := setupTestDB(t)
	user, profile := seedStaff(t, db, "mark@campus.edu", "9000000004")

	svc := NewLeaveService(repository.NewLeaveRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	leave, err := svc.SubmitStaff(context.Background(), user.ID, dto.LeaveCreateRequest{Date: "2026-04-01", Message: "conference"})
	require.NoError(t, err)
	require.Equal(t, profile.ID, leave.OwnerID)

	approved, err := svc.ReviewStaff(context.Background(), leave.ID, dto.LeaveReviewRequest{Decision: "approved"})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, approved.Status)
}

func TestListOwnStudentLeaves(t *testing.T) {
	db := setupTestDB(t)
	alice, _ := seedStudent(t, db, "alice@campus.edu", "9000000002")
	bob, _ := seedStudent(t, db, "bob@campus.edu", "9000000003")

	svc := NewLeaveService(repository.NewLeaveRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	_, err := svc.SubmitStudent(context.Background(), alice.ID, dto.LeaveCreateRequest{Date: "2026-03-10", Message: "a"})
	require.NoError(t, err)
	_, err = svc.SubmitStudent(context.Background(), bob.ID, dto.LeaveCreateRequest{Date: "2026-03-11", Message: "b"})
	require.NoError(t, err)

	mine, err := svc.ListOwnStudent(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "a", mine[0].Message)

	all, err := svc.ListStudent(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
