package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
)

// clearSessionCookie expires the console session cookie in the browser.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// setSessionCookie installs the signed session cookie for a fresh login.
func setSessionCookie(c echo.Context, value string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	})
}

// upstreamError maps an upstream client failure onto the console's response
// envelope. A stale admin token destroys the local session so the UI returns
// to the login screen.
func upstreamError(c echo.Context, sessions *session.Manager, err error) error {
	if errors.Is(err, services.ErrUnauthorized) {
		if sess := middleware.SessionFromContext(c); sess != nil {
			_ = sessions.DestroyID(context.Background(), sess.ID)
		}
		clearSessionCookie(c)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Admin session is no longer valid. Please log in again.",
		})
	}

	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = "The platform API rejected the request"
		}
		return c.JSON(apiErr.StatusCode, models.Response{
			Status:  apiErr.StatusCode,
			Message: message,
		})
	}

	if errors.Is(err, context.Canceled) {
		// The browser abandoned the screen; there is nobody to answer.
		return nil
	}

	return c.JSON(http.StatusBadGateway, models.Response{
		Status:  http.StatusBadGateway,
		Message: "Failed to reach the platform API",
	})
}
