package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/config"
	"github.com/campus-hq/college-admin-api/internal/database"
	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/models"
	"github.com/campus-hq/college-admin-api/internal/repository"
	"github.com/campus-hq/college-admin-api/internal/service"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func authTestApp(t *testing.T) (*fiber.App, service.UserService) {
	t.Helper()
	db := setupTestDB(t)
	validate := validator.New(validator.WithRequiredStructEnabled())
	users := service.NewUserService(repository.NewUserRepository(db), validate, nil, 5, zerolog.New(io.Discard))

	cfg := config.Config{JWTSecret: "handler-test-secret", JWTTokenTTL: time.Hour}
	app := fiber.New()
	NewAuthHandler(users, cfg, zerolog.New(io.Discard)).Register(app.Group("/auth"))
	return app, users
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, utils.APIResponse) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed utils.APIResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestLoginIssuesToken(t *testing.T) {
	app, users := authTestApp(t)

	_, err := users.Create(context.Background(), dto.UserCreateRequest{
		Email:    "login@campus.edu",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	status, parsed := postJSON(t, app, "/auth/login", dto.LoginRequest{
		Email:    "login@campus.edu",
		Password: "supersecret",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, parsed.Success)

	data, ok := parsed.Data.(map[string]interface{})
	require.True(t, ok)
	require.NotEmpty(t, data["token"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app, users := authTestApp(t)

	_, err := users.Create(context.Background(), dto.UserCreateRequest{
		Email:    "login@campus.edu",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	status, parsed := postJSON(t, app, "/auth/login", dto.LoginRequest{
		Email:    "login@campus.edu",
		Password: "wrongpass1",
	})
	require.Equal(t, fiber.StatusUnauthorized, status)
	require.False(t, parsed.Success)
}
