// middleware/session_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/session"
)

const sessionContextKey = "consoleSession"

// SessionMiddleware gates admin screens on a valid console session. On
// success the resolved session (with the upstream token) is stashed in the
// echo context for the controllers.
func SessionMiddleware(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "No active session. Please log in.",
				})
			}

			sess, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Session expired or invalid. Please log in again.",
				})
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext returns the session stored by SessionMiddleware, or nil
// outside the protected group.
func SessionFromContext(c echo.Context) *models.Session {
	sess, ok := c.Get(sessionContextKey).(*models.Session)
	if !ok {
		return nil
	}
	return sess
}

// AdminToken returns the upstream admin token for the current request, empty
// when no session is attached.
func AdminToken(c echo.Context) string {
	if sess := SessionFromContext(c); sess != nil {
		return sess.Token
	}
	return ""
}
