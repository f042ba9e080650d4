package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	uidKey     = "uid"
	uidCookie  = "LINE_UID"
	uidHeader  = "X-User-Id"
	DefaultUID = "U_DEV_DEFAULT"
)

// DevLogin resolves the caller from the X-User-Id header, the LINE_UID cookie
// or ?uid=, in that order, and falls back to DefaultUID. A uid taken from the
// query is remembered in the cookie.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := c.Request().Header.Get(uidHeader)
			if uid == "" {
				if ck, err := c.Cookie(uidCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				uid = c.QueryParam("uid")
				if uid == "" {
					uid = DefaultUID
				}
				c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
			}
			c.Set(uidKey, uid)
			return next(c)
		}
	}
}

// UID returns the caller id set by DevLogin or LIFF.
func UID(c echo.Context) string {
	uid, _ := c.Get(uidKey).(string)
	return uid
}
