package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Messaging channels supported for outbound notifications.
const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

// Config holds runtime configuration values for the API service. It is loaded
// once at startup and treated as immutable afterwards.
type Config struct {
	AppName                string
	AppEnv                 string
	AppPort                string
	DatabaseURL            string
	RedisURL               string
	JWTSecret              string
	JWTTokenTTL            time.Duration
	TwilioAccountSID       string
	TwilioAuthToken        string
	TwilioSMSFrom          string
	TwilioWhatsAppFrom     string
	CountryCallingCode     string
	StaffNotifyChannel     string
	StudentNotifyChannel   string
	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string
	PhotoMaxSizeMB         int
	DashboardCacheTTL      time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("COLLEGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "College Admin API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("jwt.token_ttl", "12h")
	v.SetDefault("country.calling_code", "+91")
	v.SetDefault("notify.staff_channel", ChannelSMS)
	v.SetDefault("notify.student_channel", ChannelWhatsApp)
	v.SetDefault("cloudinary.folder", "college/profiles")
	v.SetDefault("photo.max_size_mb", 5)
	v.SetDefault("dashboard.cache_ttl", "5m")

	tokenTTL, err := time.ParseDuration(v.GetString("jwt.token_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid jwt token ttl: %w", err)
	}

	cacheTTL, err := time.ParseDuration(v.GetString("dashboard.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	cfg := Config{
		AppName:                v.GetString("app.name"),
		AppEnv:                 v.GetString("app.env"),
		AppPort:                v.GetString("app.port"),
		DatabaseURL:            v.GetString("database.url"),
		RedisURL:               v.GetString("redis.url"),
		JWTSecret:              v.GetString("jwt.secret"),
		JWTTokenTTL:            tokenTTL,
		TwilioAccountSID:       v.GetString("twilio.account_sid"),
		TwilioAuthToken:        v.GetString("twilio.auth_token"),
		TwilioSMSFrom:          v.GetString("twilio.sms_from"),
		TwilioWhatsAppFrom:     v.GetString("twilio.whatsapp_from"),
		CountryCallingCode:     v.GetString("country.calling_code"),
		StaffNotifyChannel:     strings.ToLower(v.GetString("notify.staff_channel")),
		StudentNotifyChannel:   strings.ToLower(v.GetString("notify.student_channel")),
		CloudinaryCloudName:    v.GetString("cloudinary.cloud_name"),
		CloudinaryAPIKey:       v.GetString("cloudinary.api_key"),
		CloudinaryAPISecret:    v.GetString("cloudinary.api_secret"),
		CloudinaryUploadFolder: v.GetString("cloudinary.folder"),
		PhotoMaxSizeMB:         v.GetInt("photo.max_size_mb"),
		DashboardCacheTTL:      cacheTTL,
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	for _, channel := range []string{cfg.StaffNotifyChannel, cfg.StudentNotifyChannel} {
		if channel != ChannelSMS && channel != ChannelWhatsApp {
			return Config{}, fmt.Errorf("unknown notification channel %q", channel)
		}
	}

	if cfg.PhotoMaxSizeMB <= 0 {
		cfg.PhotoMaxSizeMB = 5
	}

	return cfg, nil
}
