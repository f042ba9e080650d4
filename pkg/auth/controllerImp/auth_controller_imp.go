package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"rotaplan/pkg/auth/controller"
	"rotaplan/pkg/middleware"
)

type authCtrl struct{ liff bool }

// NewAuthController returns the identity endpoints. With liff set, DevLogin
// is disabled.
func NewAuthController(liff bool) controller.AuthController { return &authCtrl{liff: liff} }

func (h *authCtrl) DevLogin(c echo.Context) error {
	if h.liff {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "dev login disabled"})
	}
	uid := strings.TrimSpace(c.QueryParam("uid"))
	if uid == "" {
		uid = middleware.DefaultUID
	}
	c.SetCookie(&http.Cookie{Name: "LINE_UID", Value: uid, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"uid": middleware.UID(c), "liff": h.liff})
}
