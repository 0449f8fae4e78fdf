package handler

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"backoffice/internal/auth"
	"backoffice/internal/model"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	sessions *auth.SessionManager
	appURL   string
}

// NewAuthHandler creates a new auth handler. appURL is the front-end origin used for the
// clear-session redirect.
func NewAuthHandler(sessions *auth.SessionManager, appURL string) *AuthHandler {
	return &AuthHandler{sessions: sessions, appURL: strings.TrimRight(appURL, "/")}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// IdentityResponse carries the authenticated user.
type IdentityResponse struct {
	Success bool            `json:"success"`
	User    *model.Identity `json:"user"`
}

// Login godoc
// @Summary Login user
// @Description Verifies credentials and sets the auth-token session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} IdentityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return fail(http.StatusBadRequest, "Email and password are required", "VALIDATION_FAILED")
	}

	result, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, auth.ErrInvalidCredentials) {
			return fail(http.StatusUnauthorized, auth.InvalidCredentialsMessage, "INVALID_CREDENTIALS")
		}
		slog.ErrorContext(c.Request().Context(), "login failed", slog.Any("error", err))
		return fail(http.StatusServiceUnavailable, "Service temporarily unavailable", "STORAGE_UNAVAILABLE")
	}

	h.sessions.SetSessionCookie(c, result.Token)
	return c.JSON(http.StatusOK, IdentityResponse{Success: true, User: result.Identity})
}

// Me godoc
// @Summary Current user
// @Description Resolves the session cookie to the live account identity.
// @Tags auth
// @Produce json
// @Success 200 {object} IdentityResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := h.sessions.CurrentIdentity(c)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "session lookup failed", slog.Any("error", err))
		return fail(http.StatusServiceUnavailable, "Service temporarily unavailable", "STORAGE_UNAVAILABLE")
	}
	if identity == nil {
		return fail(http.StatusUnauthorized, "Not authenticated", "UNAUTHORIZED")
	}
	return c.JSON(http.StatusOK, IdentityResponse{Success: true, User: identity})
}

// Logout godoc
// @Summary Logout user
// @Description Clears the session cookie. Always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c)
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Logged out successfully"})
}

// ClearSession drops the session cookie and sends the browser to the login page.
func (h *AuthHandler) ClearSession(c echo.Context) error {
	h.sessions.ClearSessionCookie(c)
	return c.Redirect(http.StatusFound, h.appURL+"/login")
}
