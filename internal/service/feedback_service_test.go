package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

func TestSubmitStudentFeedbackSanitizes(t *testing.T) {
	db := setupTestDB(t)
	user, profile := seedStudent(t, db, "alice@campus.edu", "9000000002")

	svc := NewFeedbackService(repository.NewFeedbackRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	feedback, err := svc.SubmitStudent(context.Background(), user.ID, dto.FeedbackCreateRequest{
		Message: "<b>Projector</b> in room 12 is broken",
	})
	require.NoError(t, err)
	require.Equal(t, profile.ID, feedback.OwnerID)
	require.Equal(t, "Projector in room 12 is broken", feedback.Message)
	require.Empty(t, feedback.Reply)
}

func TestReplyStaffFeedback(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedStaff(t, db, "mark@campus.edu", "9000000004")

	svc := NewFeedbackService(repository.NewFeedbackRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	feedback, err := svc.SubmitStaff(context.Background(), user.ID, dto.FeedbackCreateRequest{Message: "need more lab hours"})
	require.NoError(t, err)

	replied, err := svc.ReplyStaff(context.Background(), feedback.ID, dto.FeedbackReplyRequest{Reply: "approved for next term"})
	require.NoError(t, err)
	require.Equal(t, "approved for next term", replied.Reply)

	_, err = svc.ReplyStaff(context.Background(), 999, dto.FeedbackReplyRequest{Reply: "x"})
	require.ErrorIs(t, err, ErrFeedbackNotFound)
}

func TestListOwnStudentFeedback(t *testing.T) {
	db := setupTestDB(t)
	alice, _ := seedStudent(t, db, "alice@campus.edu", "9000000002")
	bob, _ := seedStudent(t, db, "bob@campus.edu", "9000000003")

	svc := NewFeedbackService(repository.NewFeedbackRepository(db), repository.NewUserRepository(db), newValidator(), testLogger())

	_, err := svc.SubmitStudent(context.Background(), alice.ID, dto.FeedbackCreateRequest{Message: "from alice"})
	require.NoError(t, err)
	_, err = svc.SubmitStudent(context.Background(), bob.ID, dto.FeedbackCreateRequest{Message: "from bob"})
	require.NoError(t, err)

	mine, err := svc.ListOwnStudent(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "from alice", mine[0].Message)
}
