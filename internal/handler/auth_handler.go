package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/config"
	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/service"
	"github.com/campus-hq/college-admin-api/internal/utils"
)

// AuthHandler issues access tokens for valid credentials.
type AuthHandler struct {
	users  service.UserService
	cfg    config.Config
	logger zerolog.Logger
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(users service.UserService, cfg config.Config, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		cfg:    cfg,
		logger: logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register binds the auth routes.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/login", h.login)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.users.Authenticate(requestContext(c), payload)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return utils.SendError(c, fiber.StatusInternalServerError, "login failed")
	}

	expiresAt := time.Now().Add(h.cfg.JWTTokenTTL)
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to sign token")
		return utils.SendError(c, fiber.StatusInternalServerError, "login failed")
	}

	return utils.SendSuccess(c, "login successful", dto.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.NewUserResponse(user),
	})
}
