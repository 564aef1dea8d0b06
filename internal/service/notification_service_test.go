package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campus-hq/college-admin-api/internal/config"
	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

type stubDispatcher struct {
	channel string
	to      string
	body    string
	err     error
}

func (d *stubDispatcher) SendSMS(_ context.Context, to, body string) (string, error) {
	d.channel, d.to, d.body = config.ChannelSMS, to, body
	if d.err != nil {
		return "", d.err
	}
	return "SM123", nil
}

func (d *stubDispatcher) SendWhatsApp(_ context.Context, to, body string) (string, error) {
	d.channel, d.to, d.body = config.ChannelWhatsApp, to, body
	if d.err != nil {
		return "", d.err
	}
	return "WA456", nil
}

func notifyConfig() config.Config {
	return config.Config{
		StaffNotifyChannel:   config.ChannelSMS,
		StudentNotifyChannel: config.ChannelWhatsApp,
		CountryCallingCode:   "+91",
	}
}

func TestNotifyStudentDispatchesWhatsAppWithCountryCode(t *testing.T) {
	db := setupTestDB(t)
	_, profile := seedStudent(t, db, "student@campus.edu", "9876543210")

	dispatcher := &stubDispatcher{}
	svc := NewNotificationService(repository.NewNotificationRepository(db), repository.NewUserRepository(db), dispatcher, notifyConfig(), newValidator(), testLogger())

	response, err := svc.NotifyStudent(context.Background(), dto.StudentNotificationRequest{
		StudentID: profile.ID,
		Message:   "Exam starts Monday",
	})
	require.NoError(t, err)
	require.Equal(t, config.ChannelWhatsApp, dispatcher.channel)
	require.Equal(t, "+919876543210", dispatcher.to)
	require.Contains(t, dispatcher.body, "Exam starts Monday")
	require.Equal(t, "WA456", response.SID)

	var count int64
	require.NoError(t, db.Model(&models.StudentNotification{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestNotifyStaffDispatchesSMS(t *testing.T) {
	db := setupTestDB(t)
	_, profile := seedStaff(t, db, "staff@campus.edu", "9123456780")

	dispatcher := &stubDispatcher{}
	svc := NewNotificationService(repository.NewNotificationRepository(db), repository.NewUserRepository(db), dispatcher, notifyConfig(), newValidator(), testLogger())

	response, err := svc.NotifyStaff(context.Background(), dto.StaffNotificationRequest{
		StaffID: profile.ID,
		Message: "Staff meeting at noon",
	})
	require.NoError(t, err)
	require.Equal(t, config.ChannelSMS, dispatcher.channel)
	require.Equal(t, "+919123456780", dispatcher.to)
	require.Equal(t, "SM123", response.SID)
}

func TestNotifyDispatchFailureRollsBackRecord(t *testing.T) {
	db := setupTestDB(t)
	_, profile := seedStaff(t, db, "staff@campus.edu", "9123456780")

	dispatcher := &stubDispatcher{err: errors.New("provider unavailable")}
	svc := NewNotificationService(repository.NewNotificationRepository(db), repository.NewUserRepository(db), dispatcher, notifyConfig(), newValidator(), testLogger())

	_, err := svc.NotifyStaff(context.Background(), dto.StaffNotificationRequest{
		StaffID: profile.ID,
		Message: "never delivered",
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.StaffNotification{}).Count(&count).Error)
	require.Zero(t, count, "failed dispatch must not leave a stored notification")
}

func TestNotifySanitizesMessage(t *testing.T) {
	db := setupTestDB(t)
	_, profile := seedStudent(t, db, "student@campus.edu", "9876543210")

	dispatcher := &stubDispatcher{}
	svc := NewNotificationService(repository.NewNotificationRepository(db), repository.NewUserRepository(db), dispatcher, notifyConfig(), newValidator(), testLogger())

	response, err := svc.NotifyStudent(context.Background(), dto.StudentNotificationRequest{
		StudentID: profile.ID,
		Message:   "<script>alert(1)</script>Results posted",
	})
	require.NoError(t, err)
	require.Equal(t, "Results posted", response.Message)
	require.NotContains(t, dispatcher.body, "<script>")
}

func TestNotifyEmptyAfterSanitization(t *testing.T) {
	db := setupTestDB(t)
	_, profile := seedStudent(t, db, "student@campus.edu", "9876543210")

	svc := NewNotificationService(repository.NewNotificationRepository(db), repository.NewUserRepository(db), &stubDispatcher{}, notifyConfig(), newValidator(), testLogger())

	_, err := svc.NotifyStudent(context.Background(), dto.StudentNotificationRequest{
		StudentID: profile.ID,
		Message:   "<script>alert(1)</script>",
	})
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestNotifyMissingPhone(t *testing.T) {
	db := setupTestDB(t)
	_, profile := seedStudent(t, db, "student@campus.edu", "")

	svc := NewNotificationService(repository.NewNotificationRepository(db), repository.NewUserRepository(db), &stubDispatcher{}, notifyConfig(), newValidator(), testLogger())

	_, err := svc.NotifyStudent(context.Background(), dto.StudentNotificationRequest{
		StudentID: profile.ID,
		Message:   "hello",
	})
	require.ErrorIs(t, err, ErrMissingPhone)
}

func TestNotifyUnknownTarget(t *testing.T) {
	db := setupTestDB(t)

	svc := NewNotificationService(repository.NewNotificationRepository(db), repository.NewUserRepository(db), &stubDispatcher{}, notifyConfig(), newValidator(), testLogger())

	_, err := svc.NotifyStaff(context.Background(), dto.StaffNotificationRequest{
		StaffID: 42,
		Message: "hello",
	})
	require.ErrorIs(t, err, ErrNotificationTargetNotFound)
}
