package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/salonelidia/salon-system/internal/api/metrics"
	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  domain.Profile `json:"user"`
}

// Login authenticates a user and returns a session token valid for 7 days.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	// A missing or oversized field is just another failed login.
	if c.Echo().Validator != nil {
		if err := c.Validate(&req); err != nil {
			return h.reject(c)
		}
	}

	session, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return h.reject(c)
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.log.Info().
		Int64("user_id", session.User.ID).
		Str("role", session.User.Role.String()).
		Msg("login succeeded")

	return c.JSON(http.StatusOK, loginResponse{Token: session.Token, User: session.User})
}

// reject answers every failed login with the same 401 body.
func (h *AuthHandler) reject(c echo.Context) error {
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	h.log.Warn().
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("ip", c.RealIP()).
		Msg("login rejected")
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
}
