package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campus-hq/college-admin-api/internal/config"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	app.Get("/health", HealthCheck(config.Config{AppName: "College Admin API", AppEnv: "test"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed utils.APIResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.True(t, parsed.Success)

	data, ok := parsed.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "ok", data["status"])
	require.Equal(t, "test", data["environment"])
}
