package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
)

type AuthController struct {
	Content  *services.ContentService
	Sessions *session.Manager
}

func NewAuthController(content *services.ContentService, sessions *session.Manager) *AuthController {
	return &AuthController{Content: content, Sessions: sessions}
}

// Login exchanges admin credentials for an upstream token and opens a
// console session. Upstream rejection messages are surfaced verbatim.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A valid email and a password are required",
		})
	}

	result, err := ac.Content.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var apiErr *services.APIError
		if errors.As(err, &apiErr) {
			message := apiErr.Message
			if message == "" {
				message = "Login failed"
			}
			return c.JSON(apiErr.StatusCode, models.Response{
				Status:  apiErr.StatusCode,
				Message: message,
			})
		}
		return c.JSON(http.StatusBadGateway, models.Response{
			Status:  http.StatusBadGateway,
			Message: "Failed to reach the platform API",
		})
	}

	if !result.Status || result.Token == "" {
		message := result.Message
		if message == "" {
			message = "Login failed"
		}
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: message,
		})
	}

	sess, cookieValue, err := ac.Sessions.Create(c.Request().Context(), req.Email, result.Token)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create session",
		})
	}

	setSessionCookie(c, cookieValue, sess.ExpiresAt)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: models.SessionInfo{
			Valid:     true,
			Email:     sess.Email,
			ExpiresAt: sess.ExpiresAt,
		},
	})
}

// Logout destroys the stored session and expires the cookie. Logging out
// without a session is not an error.
func (ac *AuthController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		_ = ac.Sessions.Destroy(c.Request().Context(), cookie.Value)
	}
	clearSessionCookie(c)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out",
	})
}

// CheckSession reports whether the caller still holds a live session. It is
// mounted outside the auth gate so the UI can probe without triggering a 401.
func (ac *AuthController) CheckSession(c echo.Context) error {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "No active session",
			Data:    models.SessionInfo{Valid: false},
		})
	}

	sess, err := ac.Sessions.Resolve(c.Request().Context(), cookie.Value)
	if err != nil {
		clearSessionCookie(c)
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "Session expired",
			Data:    models.SessionInfo{Valid: false},
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Session active",
		Data: models.SessionInfo{
			Valid:     true,
			Email:     sess.Email,
			ExpiresAt: sess.ExpiresAt,
		},
	})
}
