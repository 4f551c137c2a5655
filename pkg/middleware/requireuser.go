package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUser is an optional guard. When enabled=true, it insists a user id
// was resolved upstream (header set by the identity service, or cookie) and
// returns 401 without one. When enabled=false, it simply passes through
// (use DevLogin instead).
func RequireUser(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c) // bypass in development
			}
			uid := c.Request().Header.Get("X-Farm-Uid")
			if uid == "" {
				if ck, err := c.Cookie("FARM_UID"); err == nil { uid = ck.Value }
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "sign-in required: missing UID"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
