package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"branding-agent/internal/application/interfaces"
)

const userIDContextKey = "user_id"

// AuthRequired validates the Bearer token and stores the caller's user id in
// the request context. Every owner-scoped route sits behind it.
func AuthRequired(tokens interfaces.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, fail("missing bearer token"))
			}

			userID, err := tokens.ParseToken(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, fail("invalid or expired token"))
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

func currentUserID(c echo.Context) (uuid.UUID, error) {
	raw, _ := c.Get(userIDContextKey).(string)
	return uuid.Parse(raw)
}
