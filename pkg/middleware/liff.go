package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LIFF requires a caller id from the X-Line-Uid or X-User-Id header or the
// LINE_UID cookie and answers 401 without one. Disabled, it passes through.
func LIFF(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			h := c.Request().Header
			uid := h.Get("X-Line-Uid")
			if uid == "" {
				uid = h.Get(uidHeader)
			}
			if uid == "" {
				if ck, err := c.Cookie(uidCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "LIFF required: missing UID"})
			}
			c.Set(uidKey, uid)
			return next(c)
		}
	}
}
