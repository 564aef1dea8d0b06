package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COLLEGE_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, ChannelSMS, cfg.StaffNotifyChannel)
	require.Equal(t, ChannelWhatsApp, cfg.StudentNotifyChannel)
	require.Equal(t, "+91", cfg.CountryCallingCode)
	require.Equal(t, 12*time.Hour, cfg.JWTTokenTTL)
	require.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
	require.Equal(t, 5, cfg.PhotoMaxSizeMB)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("COLLEGE_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownChannel(t *testing.T) {
	t.Setenv("COLLEGE_JWT_SECRET", "test-secret")
	t.Setenv("COLLEGE_NOTIFY_STAFF_CHANNEL", "pigeon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverridesChannels(t *testing.T) {
	t.Setenv("COLLEGE_JWT_SECRET", "test-secret")
	t.Setenv("COLLEGE_NOTIFY_STAFF_CHANNEL", "WHATSAPP")
	t.Setenv("COLLEGE_NOTIFY_STUDENT_CHANNEL", "sms")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ChannelWhatsApp, cfg.StaffNotifyChannel)
	require.Equal(t, ChannelSMS, cfg.StudentNotifyChannel)
}

func TestHTTPAddressAcceptsColonPrefix(t *testing.T) {
	cfg := Config{AppPort: ":9000"}
	require.Equal(t, ":9000", cfg.HTTPAddress())
}
