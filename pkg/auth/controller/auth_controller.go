package controller

import "github.com/labstack/echo/v4"

// AuthController serves the identity endpoints.
type AuthController interface {
	// DevLogin stores ?uid= (or the default user) in the LINE_UID cookie.
	// It answers 404 when LIFF is on.
	DevLogin(c echo.Context) error
	// WhoAmI reports the resolved user id and whether LIFF is on.
	WhoAmI(c echo.Context) error
}
